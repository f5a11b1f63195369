package preset

import (
	"testing"

	"github.com/joeycumines/behaviortree-utility/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	lastAction Action
	statuses   map[Action]behavior.Status
	conditions map[Condition]bool
}

func (h *recordingHandler) Execute(action Action, ctx *behavior.Context) behavior.Status {
	h.lastAction = action
	if s, ok := h.statuses[action]; ok {
		return s
	}
	return behavior.Success
}

func (h *recordingHandler) Check(condition Condition, ctx *behavior.Context) bool {
	return h.conditions[condition]
}

func TestPatrolAttacksWhenEnemyVisible(t *testing.T) {
	root := Patrol()
	states := behavior.NewStateTable(root)
	h := &recordingHandler{conditions: map[Condition]bool{ConditionEnemyVisible: true}}
	ctx := behavior.NewContext(0, 1, behavior.NewBlackboard(), nil)

	status := behavior.TickNode(root, 0, states, ctx, h, h, behavior.NoOpObserver{})
	require.Equal(t, behavior.Success, status)
	assert.Equal(t, ActionAttack, h.lastAction)
}

func TestPatrolWalksRouteWhenNothingElseApplies(t *testing.T) {
	root := Patrol()
	states := behavior.NewStateTable(root)
	h := &recordingHandler{}
	ctx := behavior.NewContext(0, 1, behavior.NewBlackboard(), nil)

	behavior.TickNode(root, 0, states, ctx, h, h, behavior.NoOpObserver{})
	assert.Equal(t, ActionPatrol, h.lastAction)
}

func TestCombatMeleeFleesAtLowHealth(t *testing.T) {
	root := CombatMelee()
	states := behavior.NewStateTable(root)
	h := &recordingHandler{conditions: map[Condition]bool{ConditionHealthLow: true, ConditionEnemyVisible: true}}
	ctx := behavior.NewContext(0, 1, behavior.NewBlackboard(), nil)

	behavior.TickNode(root, 0, states, ctx, h, h, behavior.NoOpObserver{})
	assert.Equal(t, ActionFlee, h.lastAction)
}

func TestCombatMeleeMovesToTargetOutOfRange(t *testing.T) {
	root := CombatMelee()
	states := behavior.NewStateTable(root)
	h := &recordingHandler{conditions: map[Condition]bool{ConditionEnemyVisible: true}}
	ctx := behavior.NewContext(0, 1, behavior.NewBlackboard(), nil)

	behavior.TickNode(root, 0, states, ctx, h, h, behavior.NoOpObserver{})
	assert.Equal(t, ActionMoveToTarget, h.lastAction)
}

func TestGuardPostHoldsPositionByDefault(t *testing.T) {
	root := GuardPost()
	states := behavior.NewStateTable(root)
	h := &recordingHandler{}
	ctx := behavior.NewContext(0, 1, behavior.NewBlackboard(), nil)

	status := behavior.TickNode(root, 0, states, ctx, h, h, behavior.NoOpObserver{})
	assert.Equal(t, behavior.Success, status, "ForceSuccess must mask the guard's own selector result")
	assert.Equal(t, ActionWaitAtPosition, h.lastAction)
}
