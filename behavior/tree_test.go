package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBehaviorTreeTicksAndCounts(t *testing.T) {
	ah := newScriptedActions(map[int][]Status{0: {Running, Success}})
	ch := newScriptedConditions(nil)
	tree := NewBehaviorTree(ActionNode[int, int](0))

	require.Equal(t, Running, tree.Tick(ah, ch, nil))
	assert.Equal(t, uint64(1), tree.TickCount())
	require.Equal(t, Success, tree.Tick(ah, ch, nil))
	assert.Equal(t, uint64(2), tree.TickCount())
}

func TestBehaviorTreeBlackboardPersistsAcrossTicks(t *testing.T) {
	const key = 1
	ah := ActionHandlerFunc[int](func(action int, ctx *Context) Status {
		v, _ := ctx.Blackboard().GetInt(key)
		ctx.BlackboardMut().SetInt(key, v+1)
		return Success
	})
	tree := NewBehaviorTree(ActionNode[int, int](0))
	tree.Blackboard().SetInt(key, 0)

	tree.Tick(ah, ConditionHandlerFunc[int](func(int, *Context) bool { return true }), nil)
	tree.Tick(ah, ConditionHandlerFunc[int](func(int, *Context) bool { return true }), nil)

	v, ok := tree.Blackboard().GetInt(key)
	require.True(t, ok)
	assert.Equal(t, int32(2), v)
}

func TestBehaviorTreeResetClearsRunningStateButNotBlackboard(t *testing.T) {
	ch := newScriptedConditions(nil)
	tree := NewBehaviorTree(SequenceNode[int, int](ActionNode[int, int](0), ActionNode[int, int](1)))

	ah := newScriptedActions(map[int][]Status{0: {Success}, 1: {Running}})
	require.Equal(t, Running, tree.Tick(ah, ch, nil))
	require.Equal(t, 1, tree.states[0].RunningChild, "sequence resumed at its second child")

	const key = 1
	tree.Blackboard().SetInt(key, 42)

	tree.Reset()
	assert.Equal(t, 0, tree.states[0].RunningChild, "reset zeroes every NodeState")

	v, ok := tree.Blackboard().GetInt(key)
	assert.True(t, ok, "Reset must not touch the blackboard")
	assert.Equal(t, int32(42), v)
}

func TestBehaviorTreeResetAllClearsRunningStateAndBlackboard(t *testing.T) {
	ch := newScriptedConditions(nil)
	tree := NewBehaviorTree(SequenceNode[int, int](ActionNode[int, int](0), ActionNode[int, int](1)))

	ah := newScriptedActions(map[int][]Status{0: {Success}, 1: {Running}})
	require.Equal(t, Running, tree.Tick(ah, ch, nil))

	const key = 1
	tree.Blackboard().SetInt(key, 42)

	tree.ResetAll()
	assert.Equal(t, 0, tree.states[0].RunningChild, "reset zeroes every NodeState")

	_, ok := tree.Blackboard().GetInt(key)
	assert.False(t, ok, "ResetAll must clear the blackboard")
}

func TestBehaviorTreeNodeCountMatchesSubtreeSize(t *testing.T) {
	root := SequenceNode[int, int](ActionNode[int, int](0), ConditionNode[int, int](0))
	tree := NewBehaviorTree(root)
	assert.Equal(t, SubtreeSize(root), tree.NodeCount())
}
