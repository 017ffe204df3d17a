package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOperand is returned by operations whose interval semantics
// require a degenerate (point) operand — POW and NTH_ROOT's exponent/degree,
// per spec.md §4.1 — when that operand is not degenerate.
var ErrInvalidOperand = errors.New("interval: operand must be a degenerate (point) interval")

// Interval is a closed pair [Lo, Hi]. Lo <= Hi holds for every well-formed,
// defined interval; an undefined interval (domain error, e.g. Sqrt of a
// strictly-negative range) is represented by both bounds set to NaN.
type Interval struct {
	Lo, Hi float64
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval {
	return Interval{Lo: v, Hi: v}
}

// Full returns (-Inf, +Inf), the maximally conservative envelope.
func Full() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// NaNInterval returns the undefined interval (NaN, NaN).
func NaNInterval() Interval {
	return Interval{Lo: math.NaN(), Hi: math.NaN()}
}

// IsNaN reports whether either bound is NaN — spec.md's definition of
// "undefined" for an interval.
func (iv Interval) IsNaN() bool {
	return math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi)
}

// Degenerate reports whether the interval is a single point (Lo == Hi).
// NaN intervals are never degenerate.
func (iv Interval) Degenerate() bool {
	return !iv.IsNaN() && iv.Lo == iv.Hi
}

// Contains reports whether x lies within [Lo, Hi]. NaN never contains
// anything, including another NaN — this is used by property tests to
// check interval soundness (spec.md §8).
func (iv Interval) Contains(x float64) bool {
	if iv.IsNaN() || math.IsNaN(x) {
		return false
	}
	return x >= iv.Lo && x <= iv.Hi
}

// String renders "[lo, hi]" for debug output and test failure messages.
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}
