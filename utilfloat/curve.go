// Package utilfloat implements the floating-point utility-scoring layer:
// response curves, considerations, scored actions, and a reasoner that
// selects among them. It is deliberately isolated from the integer-tick
// behavior package — nothing here is deterministic across platforms, and
// nothing in behavior depends on it.
package utilfloat

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Float is the numeric type a curve, consideration, or reasoner is
// parameterized over. golang.org/x/exp/constraints.Float (float32 | float64)
// is sufficient here; Go's standard math package covers every operation the
// curves below need, so no additional numeric library is pulled in.
type Float = constraints.Float

// CurveKind tags which response-curve family a ResponseCurve applies.
type CurveKind int

const (
	CurveLinear CurveKind = iota
	CurvePolynomial
	CurveLogistic
	CurveStep
	CurveInverse
	CurveConstant
	CurveCustomPoints
)

// Point is one knot of a CustomPoints curve.
type Point[F Float] struct {
	X, Y F
}

// ResponseCurve maps a normalized input in [0, 1] to a score in [0, 1].
// Only the fields relevant to Kind are populated.
type ResponseCurve[F Float] struct {
	Kind CurveKind

	// Linear
	Slope, Intercept F

	// Polynomial, Inverse
	Exponent, Offset F

	// Logistic
	LogisticK, LogisticMidpoint F

	// Step
	StepThreshold F

	// Constant
	ConstantValue F

	// CustomPoints, sorted ascending by X.
	Points []Point[F]
}

// NewLinearCurve returns Linear(slope, intercept): y = slope*x + intercept.
func NewLinearCurve[F Float](slope, intercept F) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurveLinear, Slope: slope, Intercept: intercept}
}

// NewPolynomialCurve returns Polynomial(exponent, offset):
// y = max(0, x+offset)^exponent.
func NewPolynomialCurve[F Float](exponent, offset F) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurvePolynomial, Exponent: exponent, Offset: offset}
}

// NewLogisticCurve returns Logistic(k, midpoint): a sigmoid centered at midpoint.
func NewLogisticCurve[F Float](k, midpoint F) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurveLogistic, LogisticK: k, LogisticMidpoint: midpoint}
}

// NewStepCurve returns Step(threshold): 0 below threshold, 1 at or above it.
func NewStepCurve[F Float](threshold F) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurveStep, StepThreshold: threshold}
}

// NewInverseCurve returns Inverse(offset): y = 1/(x+offset), or 1 when
// x+offset is non-positive.
func NewInverseCurve[F Float](offset F) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurveInverse, Offset: offset}
}

// NewConstantCurve returns Constant(value), ignoring the input entirely.
func NewConstantCurve[F Float](value F) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurveConstant, ConstantValue: value}
}

// NewCustomPointsCurve returns a piecewise-linear curve through points,
// which must be sorted ascending by X. Input below the first point's X or
// above the last point's X clamps to the nearest endpoint's Y.
func NewCustomPointsCurve[F Float](points ...Point[F]) ResponseCurve[F] {
	return ResponseCurve[F]{Kind: CurveCustomPoints, Points: points}
}

func clamp01[F Float](x F) F {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Evaluate clamps x to [0, 1], applies the curve, and clamps the result to
// [0, 1] as well.
func (c ResponseCurve[F]) Evaluate(x F) F {
	x = clamp01(x)
	var y F
	switch c.Kind {
	case CurveLinear:
		y = c.Slope*x + c.Intercept
	case CurvePolynomial:
		base := x + c.Offset
		if base < 0 {
			base = 0
		}
		y = F(math.Pow(float64(base), float64(c.Exponent)))
	case CurveLogistic:
		y = F(1 / (1 + math.Exp(-float64(c.LogisticK)*(float64(x)-float64(c.LogisticMidpoint)))))
	case CurveStep:
		if x >= c.StepThreshold {
			y = 1
		} else {
			y = 0
		}
	case CurveInverse:
		denom := x + c.Offset
		if denom <= 0 {
			y = 1
		} else {
			y = 1 / denom
		}
	case CurveConstant:
		y = c.ConstantValue
	case CurveCustomPoints:
		y = evaluateCustomPoints(c.Points, x)
	default:
		y = 0
	}
	return clamp01(y)
}

func evaluateCustomPoints[F Float](points []Point[F], x F) F {
	if len(points) == 0 {
		return 0
	}
	if len(points) == 1 {
		return points[0].Y
	}
	if x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	idx := sort.Search(len(points), func(i int) bool { return points[i].X >= x })
	hi := points[idx]
	lo := points[idx-1]
	if hi.X == lo.X {
		return lo.Y
	}
	t := (x - lo.X) / (hi.X - lo.X)
	return lo.Y + t*(hi.Y-lo.Y)
}
