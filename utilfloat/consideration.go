package utilfloat

import "github.com/joeycumines/behaviortree-utility/behavior"

// Consideration reads one blackboard input, normalizes it into [0, 1]
// against [InputMin, InputMax], passes it through Curve, and scales the
// result by Weight. A missing blackboard key scores zero.
type Consideration[F Float] struct {
	InputKey             uint32
	Curve                ResponseCurve[F]
	Weight               F
	InputMin, InputMax   F
}

// NewConsideration returns a Consideration reading inputKey, normalized over
// [inputMin, inputMax], scored by curve, and scaled by weight.
func NewConsideration[F Float](inputKey uint32, curve ResponseCurve[F], weight, inputMin, inputMax F) Consideration[F] {
	return Consideration[F]{
		InputKey: inputKey,
		Curve:    curve,
		Weight:   weight,
		InputMin: inputMin,
		InputMax: inputMax,
	}
}

// Evaluate reads c.InputKey from bb, normalizes it, scores it through the
// curve, and returns the weighted result.
func (c Consideration[F]) Evaluate(bb *behavior.Blackboard) F {
	v, ok := bb.Get(c.InputKey)
	if !ok {
		return 0
	}
	normalized := c.normalize(F(v.Score()))
	return c.Curve.Evaluate(normalized) * c.Weight
}

func (c Consideration[F]) normalize(raw F) F {
	span := c.InputMax - c.InputMin
	if span == 0 {
		return 0
	}
	return clamp01((raw - c.InputMin) / span)
}
