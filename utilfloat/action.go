package utilfloat

import (
	"math"

	"github.com/joeycumines/behaviortree-utility/behavior"
)

// UtilityAction pairs an embedder-chosen action tag with the considerations
// that score it. Score is the geometric mean of every consideration's
// output (so any consideration scoring zero vetoes the whole action),
// scaled by Weight, with Momentum added when the action is already the
// current selection — biasing the reasoner toward sticking with what it's
// already doing rather than flip-flopping between near-equal scores.
type UtilityAction[F Float, A any] struct {
	ActionID       A
	Considerations []Consideration[F]
	Weight         F
	Momentum       F
}

// NewUtilityAction returns a UtilityAction over considerations, scaled by
// weight, with momentum added while it remains the current selection.
func NewUtilityAction[F Float, A any](actionID A, weight, momentum F, considerations ...Consideration[F]) UtilityAction[F, A] {
	return UtilityAction[F, A]{
		ActionID:       actionID,
		Considerations: considerations,
		Weight:         weight,
		Momentum:       momentum,
	}
}

// Score evaluates every consideration against bb, combines them by
// geometric mean, applies Weight, and adds Momentum if isCurrent. An
// action with no considerations scores Weight (plus momentum).
func (a UtilityAction[F, A]) Score(bb *behavior.Blackboard, isCurrent bool) F {
	var product F = 1
	for _, c := range a.Considerations {
		score := c.Evaluate(bb)
		if score <= 0 {
			product = 0
			break
		}
		product *= score
	}

	var geoMean F
	if len(a.Considerations) == 0 {
		geoMean = 1
	} else if product == 0 {
		geoMean = 0
	} else {
		geoMean = F(math.Pow(float64(product), 1/float64(len(a.Considerations))))
	}

	score := clamp01(geoMean) * a.Weight
	if isCurrent {
		score += a.Momentum
	}
	return score
}
