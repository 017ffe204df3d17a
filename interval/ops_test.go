package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isurf/ivaluate/interval"
)

func TestAddSubMul(t *testing.T) {
	a := interval.Interval{Lo: -1, Hi: 2}
	b := interval.Interval{Lo: 3, Hi: 4}

	assert.Equal(t, interval.Interval{Lo: 2, Hi: 6}, interval.Add(a, b))
	assert.Equal(t, interval.Interval{Lo: -5, Hi: -1}, interval.Sub(a, b))
	assert.Equal(t, interval.Interval{Lo: -4, Hi: 8}, interval.Mul(a, b))
}

func TestDivStraddlingZero(t *testing.T) {
	a := interval.Interval{Lo: 1, Hi: 2}
	b := interval.Interval{Lo: -1, Hi: 1}
	got := interval.Div(a, b)
	assert.True(t, math.IsInf(got.Lo, -1))
	assert.True(t, math.IsInf(got.Hi, 1))
}

func TestDivSound(t *testing.T) {
	a := interval.Interval{Lo: 4, Hi: 8}
	b := interval.Interval{Lo: 2, Hi: 4}
	got := interval.Div(a, b)
	assert.Equal(t, 1.0, got.Lo)
	assert.Equal(t, 4.0, got.Hi)
}

func TestSqrtDomain(t *testing.T) {
	neg := interval.Interval{Lo: -4, Hi: -1}
	got := interval.Sqrt(neg)
	assert.True(t, got.IsNaN())

	mixed := interval.Interval{Lo: -4, Hi: 4}
	got = interval.Sqrt(mixed)
	assert.Equal(t, 0.0, got.Lo)
	assert.Equal(t, 2.0, got.Hi)
}

func TestAbsAndSquareTightAtCrossing(t *testing.T) {
	mixed := interval.Interval{Lo: -3, Hi: 1}
	gotAbs := interval.Abs(mixed)
	assert.Equal(t, interval.Interval{Lo: 0, Hi: 3}, gotAbs)

	gotSq := interval.Square(mixed)
	assert.Equal(t, interval.Interval{Lo: 0, Hi: 9}, gotSq)
}

func TestNanfill(t *testing.T) {
	nan := interval.NaNInterval()
	fallback := interval.Point(7)
	assert.Equal(t, fallback, interval.Nanfill(nan, fallback))

	ok := interval.Point(3)
	assert.Equal(t, ok, interval.Nanfill(ok, fallback))
}

func TestPowRequiresDegenerateExponent(t *testing.T) {
	base := interval.Interval{Lo: 1, Hi: 2}
	nonDegenerate := interval.Interval{Lo: 1, Hi: 2}
	_, err := interval.Pow(base, nonDegenerate)
	require.ErrorIs(t, err, interval.ErrInvalidOperand)

	got, err := interval.Pow(base, interval.Point(2))
	require.NoError(t, err)
	assert.Equal(t, interval.Interval{Lo: 1, Hi: 4}, got)
}

func TestModCoarseEnvelope(t *testing.T) {
	a := interval.Interval{Lo: -5, Hi: 5}
	b := interval.Interval{Lo: 2, Hi: 3}
	got := interval.Mod(a, b)
	// Documented, intentionally unsound coarse envelope: (0, b.Hi).
	assert.Equal(t, interval.Interval{Lo: 0, Hi: 3}, got)
}

func TestContainsSoundness(t *testing.T) {
	a := interval.Interval{Lo: -2, Hi: 3}
	b := interval.Interval{Lo: 1, Hi: 5}
	sum := interval.Add(a, b)
	for _, x := range []float64{-2, 0, 3} {
		for _, y := range []float64{1, 2, 5} {
			assert.True(t, sum.Contains(x+y))
		}
	}
}
