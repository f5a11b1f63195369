package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackboardSetGetInt(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 42)
	v, ok := bb.GetInt(1)
	require.True(t, ok)
	assert.Equal(t, int32(42), v)
}

func TestBlackboardSetGetFixed(t *testing.T) {
	bb := NewBlackboard()
	bb.SetFloat(1, 1.25)
	v, ok := bb.GetFloat(1)
	require.True(t, ok)
	assert.InDelta(t, 1.25, v, 1e-6)
}

func TestBlackboardSetGetBool(t *testing.T) {
	bb := NewBlackboard()
	bb.SetBool(1, true)
	v, ok := bb.GetBool(1)
	require.True(t, ok)
	assert.True(t, v)
}

func TestBlackboardSetGetEntity(t *testing.T) {
	bb := NewBlackboard()
	bb.SetEntity(1, 99)
	v, ok := bb.GetEntity(1)
	require.True(t, ok)
	assert.Equal(t, uint32(99), v)
}

func TestBlackboardSetGetVec2(t *testing.T) {
	bb := NewBlackboard()
	bb.SetVec2(1, 4, -2)
	x, y, ok := bb.GetVec2(1)
	require.True(t, ok)
	assert.Equal(t, int32(4), x)
	assert.Equal(t, int32(-2), y)
}

func TestBlackboardTypeMismatchReturnsAbsent(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 7)
	_, ok := bb.GetBool(1)
	assert.False(t, ok)
}

func TestBlackboardOverwrite(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 10)
	bb.SetInt(1, 20)
	v, _ := bb.GetInt(1)
	assert.Equal(t, int32(20), v)
}

func TestBlackboardRemove(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 7)
	removed, ok := bb.Remove(1)
	require.True(t, ok)
	assert.Equal(t, IntValue(7), removed)
	assert.False(t, bb.Has(1))
}

func TestBlackboardClear(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 1)
	bb.SetInt(2, 2)
	bb.Clear()
	assert.Equal(t, 0, bb.Len())
}

func TestBlackboardHas(t *testing.T) {
	bb := NewBlackboard()
	bb.SetBool(9, true)
	assert.True(t, bb.Has(9))
	assert.False(t, bb.Has(8))
}

func TestBlackboardIsTruthy(t *testing.T) {
	assert.False(t, IntValue(0).IsTruthy())
	assert.True(t, IntValue(-3).IsTruthy())
	assert.False(t, FixedValue(0).IsTruthy())
	assert.True(t, FixedValue(1).IsTruthy())
	assert.False(t, BoolValue(false).IsTruthy())
	assert.True(t, BoolValue(true).IsTruthy())
	assert.False(t, EntityValue(0).IsTruthy())
	assert.True(t, EntityValue(44).IsTruthy())
	assert.False(t, Vec2Value(0, 0).IsTruthy())
	assert.True(t, Vec2Value(0, 1).IsTruthy())
}

func TestBlackboardIsTruthyMissingKey(t *testing.T) {
	bb := NewBlackboard()
	assert.False(t, bb.IsTruthy(42))
}

func TestFixedFromFloat(t *testing.T) {
	assert.Equal(t, FixedValue(1500), FixedFromFloat(1.5))
}

func TestBlackboardScoreF32Vec2Magnitude(t *testing.T) {
	bb := NewBlackboard()
	bb.SetVec2(1, 3, 4)
	v, _ := bb.Get(1)
	assert.InDelta(t, 5.0, float64(v.scoreF32()), 1e-6)
}
