// Command btdemo runs a preset behavior tree for a handful of ticks against
// a toy simulated world, logging every decision. It exists as a runnable,
// end-to-end demonstration of wiring an ActionHandler/ConditionHandler pair
// and an Observer around a BehaviorTree, not as a game itself.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/joeycumines/behaviortree-utility/behavior"
	"github.com/joeycumines/behaviortree-utility/preset"
)

const (
	keyEnemyDistance uint32 = iota
	keyHealth
)

// worldHandler is a minimal, self-contained ActionHandler/ConditionHandler
// pair driving a toy simulation: an enemy whose distance shrinks by 2 each
// time the agent moves toward it, and a health pool that never actually changes (there's nothing to fight
// back in this demo).
type worldHandler struct {
	logger *slog.Logger
}

func (h worldHandler) Execute(action preset.Action, ctx *behavior.Context) behavior.Status {
	switch action {
	case preset.ActionAttack:
		h.logger.Info("attacking")
		return behavior.Success
	case preset.ActionMoveToTarget:
		dist, _ := ctx.Blackboard().GetInt(keyEnemyDistance)
		dist -= 2
		if dist < 0 {
			dist = 0
		}
		ctx.BlackboardMut().SetInt(keyEnemyDistance, dist)
		h.logger.Info("moving to target", slog.Int("distance", int(dist)))
		return behavior.Success
	case preset.ActionFlee:
		h.logger.Info("fleeing")
		return behavior.Success
	case preset.ActionPatrol:
		h.logger.Info("patrolling")
		return behavior.Success
	case preset.ActionWaitAtPosition:
		h.logger.Info("holding position")
		return behavior.Success
	default:
		h.logger.Info("idle")
		return behavior.Success
	}
}

func (h worldHandler) Check(condition preset.Condition, ctx *behavior.Context) bool {
	switch condition {
	case preset.ConditionEnemyVisible:
		dist, ok := ctx.Blackboard().GetInt(keyEnemyDistance)
		return ok && dist < 20
	case preset.ConditionEnemyInRange:
		dist, ok := ctx.Blackboard().GetInt(keyEnemyDistance)
		return ok && dist <= 2
	case preset.ConditionHealthLow:
		health, ok := ctx.Blackboard().GetInt(keyHealth)
		return ok && health < 20
	default:
		return false
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	runID := uuid.New()
	logger = logger.With(slog.String("run_id", runID.String()))

	tree := behavior.NewBehaviorTree(preset.CombatMelee())
	tree.Blackboard().SetInt(keyEnemyDistance, 15)
	tree.Blackboard().SetInt(keyHealth, 100)

	handler := worldHandler{logger: logger}
	observer := behavior.NewLoggingObserver(logger)

	for i := 0; i < 12; i++ {
		status := tree.Tick(handler, handler, observer)
		logger.Info("tick complete", slog.Uint64("tick", tree.TickCount()), slog.String("status", status.String()))
	}
}
