// Package preset provides ready-made behavior trees over a small, documented
// action/condition vocabulary, useful as worked examples and as a starting
// point for embedders wiring their own agent trees.
package preset

import "github.com/joeycumines/behaviortree-utility/behavior"

// Action is the shared action-tag vocabulary the preset trees are built
// against. Embedders providing an ActionHandler[Action] give each of these
// concrete game behavior.
type Action int

const (
	ActionIdle Action = iota
	ActionMoveToTarget
	ActionAttack
	ActionFlee
	ActionPatrol
	ActionWaitAtPosition
)

// Condition is the shared condition-tag vocabulary the preset trees are
// built against.
type Condition int

const (
	ConditionEnemyVisible Condition = iota
	ConditionEnemyInRange
	ConditionHealthLow
	ConditionAtWaypoint
	ConditionHasTarget
)

// Node is a convenience alias so callers of this package don't need to
// spell out the shared type parameters.
type Node = behavior.Node[Action, Condition]

// Patrol builds a tree that walks a patrol route until an enemy becomes
// visible, at which point it breaks off to engage.
func Patrol() Node {
	return behavior.SelectorNode[Action, Condition](
		behavior.SequenceNode[Action, Condition](
			behavior.ConditionNode[Action, Condition](ConditionEnemyVisible),
			behavior.ActionNode[Action, Condition](ActionAttack),
		),
		behavior.SequenceNode[Action, Condition](
			behavior.ConditionNode[Action, Condition](ConditionAtWaypoint),
			behavior.ActionNode[Action, Condition](ActionWaitAtPosition),
		),
		behavior.ActionNode[Action, Condition](ActionPatrol),
	)
}

// CombatMelee builds a tree for a melee combatant: flee at low health,
// otherwise close to range and attack, otherwise idle.
func CombatMelee() Node {
	return behavior.SelectorNode[Action, Condition](
		behavior.SequenceNode[Action, Condition](
			behavior.ConditionNode[Action, Condition](ConditionHealthLow),
			behavior.ActionNode[Action, Condition](ActionFlee),
		),
		behavior.SequenceNode[Action, Condition](
			behavior.ConditionNode[Action, Condition](ConditionEnemyVisible),
			behavior.SelectorNode[Action, Condition](
				behavior.SequenceNode[Action, Condition](
					behavior.ConditionNode[Action, Condition](ConditionEnemyInRange),
					behavior.ActionNode[Action, Condition](ActionAttack),
				),
				behavior.ActionNode[Action, Condition](ActionMoveToTarget),
			),
		),
		behavior.ActionNode[Action, Condition](ActionIdle),
	)
}

// GuardPost builds a tree for a guard: flee on low health, otherwise attack
// anything in range, move toward a visible enemy that is out of range, and
// hold position when no enemy is visible.
func GuardPost() Node {
	return behavior.DecoratorNode[Action, Condition](
		behavior.NewForceSuccess(),
		behavior.SelectorNode[Action, Condition](
			behavior.SequenceNode[Action, Condition](
				behavior.ConditionNode[Action, Condition](ConditionHealthLow),
				behavior.ActionNode[Action, Condition](ActionFlee),
			),
			behavior.SequenceNode[Action, Condition](
				behavior.ConditionNode[Action, Condition](ConditionEnemyInRange),
				behavior.ActionNode[Action, Condition](ActionAttack),
			),
			behavior.SequenceNode[Action, Condition](
				behavior.ConditionNode[Action, Condition](ConditionEnemyVisible),
				behavior.ActionNode[Action, Condition](ActionMoveToTarget),
			),
			behavior.ActionNode[Action, Condition](ActionWaitAtPosition),
		),
	)
}
