package utilfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearCurve(t *testing.T) {
	c := NewLinearCurve[float64](0.5, 0.25)
	assert.InDelta(t, 0.25, c.Evaluate(0), 1e-9)
	assert.InDelta(t, 0.75, c.Evaluate(1), 1e-9)
}

func TestLinearCurveClampsToUnitRange(t *testing.T) {
	c := NewLinearCurve[float64](2, 0)
	assert.Equal(t, 1.0, c.Evaluate(10))
	c2 := NewLinearCurve[float64](-1, 0)
	assert.Equal(t, 0.0, c2.Evaluate(10))
}

func TestPolynomialCurve(t *testing.T) {
	c := NewPolynomialCurve[float64](2, 0)
	assert.InDelta(t, 0.25, c.Evaluate(0.5), 1e-9)
	assert.InDelta(t, 1.0, c.Evaluate(1), 1e-9)
}

func TestPolynomialCurveSqrt(t *testing.T) {
	c := NewPolynomialCurve[float64](0.5, 0)
	assert.InDelta(t, 0.5, c.Evaluate(0.25), 1e-9)
}

func TestPolynomialCurveOffsetClampsNegativeBaseToZero(t *testing.T) {
	c := NewPolynomialCurve[float64](2, -0.5)
	assert.Equal(t, 0.0, c.Evaluate(0.2), "x+offset is negative, so the base clamps to 0 before the power")
}

func TestLogisticCurveMidpoint(t *testing.T) {
	c := NewLogisticCurve[float64](10, 0.5)
	assert.InDelta(t, 0.5, c.Evaluate(0.5), 1e-9)
	assert.Greater(t, c.Evaluate(0.9), c.Evaluate(0.1))
}

func TestStepCurve(t *testing.T) {
	c := NewStepCurve[float64](0.5)
	assert.Equal(t, 0.0, c.Evaluate(0.49))
	assert.Equal(t, 1.0, c.Evaluate(0.5))
}

func TestInverseCurve(t *testing.T) {
	// Scenario: distance normalized to [0, 1], Inverse(0.1) — a close target
	// (x=0) scores high, a maximally distant one (x=1) still scores
	// moderately, since the curve never reaches zero.
	c := NewInverseCurve[float64](0.1)
	assert.InDelta(t, 1.0, c.Evaluate(0), 1e-9, "1/(0+0.1) = 10, clamped to 1")
	assert.InDelta(t, 1.0/1.1, c.Evaluate(1), 1e-9)
}

func TestInverseCurveNonPositiveDenominatorReturnsOne(t *testing.T) {
	c := NewInverseCurve[float64](0)
	assert.Equal(t, 1.0, c.Evaluate(0), "x+offset == 0 must not divide by zero")
}

func TestConstantCurve(t *testing.T) {
	c := NewConstantCurve[float64](0.42)
	assert.Equal(t, 0.42, c.Evaluate(0))
	assert.Equal(t, 0.42, c.Evaluate(1))
}

func TestCustomPointsCurveInterpolatesBetweenKnots(t *testing.T) {
	c := NewCustomPointsCurve(
		Point[float64]{X: 0, Y: 0},
		Point[float64]{X: 0.5, Y: 1},
		Point[float64]{X: 1, Y: 0.2},
	)
	assert.InDelta(t, 0.5, c.Evaluate(0.25), 1e-9)
	assert.InDelta(t, 1.0, c.Evaluate(0.5), 1e-9)
	assert.InDelta(t, 0.6, c.Evaluate(0.75), 1e-9)
}

func TestCustomPointsCurveClampsOutsideRange(t *testing.T) {
	c := NewCustomPointsCurve(
		Point[float64]{X: 0.2, Y: 0.3},
		Point[float64]{X: 0.8, Y: 0.9},
	)
	assert.Equal(t, 0.3, c.Evaluate(-5))
	assert.Equal(t, 0.9, c.Evaluate(5))
}

func TestCustomPointsCurveSinglePoint(t *testing.T) {
	c := NewCustomPointsCurve(Point[float64]{X: 0.5, Y: 0.7})
	assert.Equal(t, 0.7, c.Evaluate(0))
	assert.Equal(t, 0.7, c.Evaluate(1))
}
