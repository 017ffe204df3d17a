package interval

import "math"

// Add returns the sound enclosure of a+b: [a.Lo+b.Lo, a.Hi+b.Hi].
func Add(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: a.Lo + b.Lo, Hi: a.Hi + b.Hi}
}

// Sub returns the sound enclosure of a-b: [a.Lo-b.Hi, a.Hi-b.Lo].
func Sub(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: a.Lo - b.Hi, Hi: a.Hi - b.Lo}
}

// Mul returns the sound enclosure of a*b over all four corner products.
func Mul(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	p1, p2, p3, p4 := a.Lo*b.Lo, a.Lo*b.Hi, a.Hi*b.Lo, a.Hi*b.Hi
	return Interval{
		Lo: math.Min(math.Min(p1, p2), math.Min(p3, p4)),
		Hi: math.Max(math.Max(p1, p2), math.Max(p3, p4)),
	}
}

// Div returns the sound enclosure of a/b. When the divisor straddles zero
// (b.Lo < 0 < b.Hi, or either bound is exactly zero with the other of
// opposite sign) the result is unbounded — per spec.md §4.1, DIV returns
// (-Inf, +Inf) in that case rather than attempting a two-sided split.
func Div(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	if b.Lo <= 0 && b.Hi >= 0 {
		return Full()
	}
	return Mul(a, Interval{Lo: 1 / b.Hi, Hi: 1 / b.Lo})
}

// Min returns the componentwise minimum of endpoints (spec.md §4.1).
func Min(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: math.Min(a.Lo, b.Lo), Hi: math.Min(a.Hi, b.Hi)}
}

// Max returns the componentwise maximum of endpoints (spec.md §4.1).
func Max(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: math.Max(a.Lo, b.Lo), Hi: math.Max(a.Hi, b.Hi)}
}

// Neg returns the enclosure of -a.
func Neg(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: -a.Hi, Hi: -a.Lo}
}

// Abs returns the enclosure of |a|, tight at the sign crossing.
func Abs(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	if a.Lo >= 0 {
		return a
	}
	if a.Hi <= 0 {
		return Interval{Lo: -a.Hi, Hi: -a.Lo}
	}
	return Interval{Lo: 0, Hi: math.Max(-a.Lo, a.Hi)}
}

// Square returns the enclosure of a*a, tight at the sign crossing (matches
// the cache identity square(x) == x*x, but Square avoids the looser bound
// Mul would give when a straddles zero).
func Square(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	lo2, hi2 := a.Lo*a.Lo, a.Hi*a.Hi
	if a.Lo >= 0 {
		return Interval{Lo: lo2, Hi: hi2}
	}
	if a.Hi <= 0 {
		return Interval{Lo: hi2, Hi: lo2}
	}
	return Interval{Lo: 0, Hi: math.Max(lo2, hi2)}
}

// Sqrt: if a.Hi < 0 the domain is empty and the result is undefined (NaN
// interval); otherwise [sqrt(max(0,a.Lo)), sqrt(a.Hi)] — per spec.md §4.1.
func Sqrt(a Interval) Interval {
	if a.IsNaN() || a.Hi < 0 {
		return NaNInterval()
	}
	lo := a.Lo
	if lo < 0 {
		lo = 0
	}
	return Interval{Lo: math.Sqrt(lo), Hi: math.Sqrt(a.Hi)}
}

// Sin bounds sine conservatively: exact at a degenerate point, else the
// trivial [-1, 1] envelope — monotone-branch analysis is skipped because the
// extra precision rarely matters for subdivision pruning and an incorrect
// branch would be unsound (spec.md §1 Non-goals: exact transcendental
// intervals are out of scope).
func Sin(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	if a.Degenerate() {
		return Point(math.Sin(a.Lo))
	}
	return Interval{Lo: -1, Hi: 1}
}

// Cos mirrors Sin's conservative bounding.
func Cos(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	if a.Degenerate() {
		return Point(math.Cos(a.Lo))
	}
	return Interval{Lo: -1, Hi: 1}
}

// Tan is unbounded near its asymptotes; exact at a degenerate point, else
// the full conservative envelope.
func Tan(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	if a.Degenerate() {
		return Point(math.Tan(a.Lo))
	}
	return Full()
}

// Asin is monotone increasing over its domain [-1, 1]; bounds are clamped
// into the domain before evaluation. An interval entirely outside [-1,1] is
// undefined.
func Asin(a Interval) Interval {
	if a.IsNaN() || a.Hi < -1 || a.Lo > 1 {
		return NaNInterval()
	}
	lo, hi := clamp(a.Lo, -1, 1), clamp(a.Hi, -1, 1)
	return Interval{Lo: math.Asin(lo), Hi: math.Asin(hi)}
}

// Acos is monotone decreasing over its domain [-1, 1].
func Acos(a Interval) Interval {
	if a.IsNaN() || a.Hi < -1 || a.Lo > 1 {
		return NaNInterval()
	}
	lo, hi := clamp(a.Lo, -1, 1), clamp(a.Hi, -1, 1)
	return Interval{Lo: math.Acos(hi), Hi: math.Acos(lo)}
}

// Atan is monotone increasing over all reals; no domain restriction.
func Atan(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: math.Atan(a.Lo), Hi: math.Atan(a.Hi)}
}

// Exp is monotone increasing over all reals.
func Exp(a Interval) Interval {
	if a.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: math.Exp(a.Lo), Hi: math.Exp(a.Hi)}
}

// Atan2 is exact when both operands are degenerate points, and the full
// conservative envelope (-Pi, Pi] otherwise — quadrant-aware tightening is
// not attempted (spec.md §1 Non-goals).
func Atan2(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	if a.Degenerate() && b.Degenerate() {
		return Point(math.Atan2(a.Lo, b.Lo))
	}
	return Interval{Lo: -math.Pi, Hi: math.Pi}
}

// Pow requires the exponent b to be a degenerate interval — a non-constant
// exponent cannot be reasoned about monotonically in general — per spec.md
// §4.1 and §7 (InvalidOperand).
func Pow(a, b Interval) (Interval, error) {
	if !b.Degenerate() {
		if b.IsNaN() {
			return NaNInterval(), nil
		}
		return Interval{}, ErrInvalidOperand
	}
	if a.IsNaN() {
		return NaNInterval(), nil
	}
	exp := b.Lo
	lo, hi := math.Pow(a.Lo, exp), math.Pow(a.Hi, exp)
	if lo > hi {
		lo, hi = hi, lo
	}
	// Even integer exponents are non-monotone across zero: widen to include 0.
	if exp == math.Trunc(exp) && int64(exp)%2 == 0 && a.Lo < 0 && a.Hi > 0 {
		lo = math.Min(0, lo)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// NthRoot requires the degree b to be a degenerate interval, mirroring Pow.
// A wholly negative radicand under an even or non-integer degree is
// undefined (NaN interval), matching the scalar
// kernel and the documented open question in spec.md §9 (NTH_ROOT's
// semantics under MIN/MAX pruning are intentionally left as the source
// describes them, not "fixed").
func NthRoot(a, b Interval) (Interval, error) {
	if !b.Degenerate() {
		if b.IsNaN() {
			return NaNInterval(), nil
		}
		return Interval{}, ErrInvalidOperand
	}
	if a.IsNaN() {
		return NaNInterval(), nil
	}
	n := b.Lo
	if !(n == math.Trunc(n) && int64(n)%2 != 0) && a.Hi < 0 {
		return NaNInterval(), nil
	}
	lo, hi := nthRoot(a.Lo, n), nthRoot(a.Hi, n)
	if lo > hi {
		lo, hi = hi, lo
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

func nthRoot(x, n float64) float64 {
	if x < 0 {
		return -math.Pow(-x, 1/n)
	}
	return math.Pow(x, 1/n)
}

// Mod returns the coarse, deliberately unsound envelope (0, b.Hi) described
// in spec.md §4.1 and flagged as an open question in §9: it is wrong when a
// can be negative or b can be negative. It is preserved exactly as specified
// rather than "fixed" without upstream guidance.
func Mod(a, b Interval) Interval {
	if a.IsNaN() || b.IsNaN() {
		return NaNInterval()
	}
	return Interval{Lo: 0, Hi: b.Hi}
}

// Nanfill returns b if either bound of a is NaN, else a — spec.md §4.1.
func Nanfill(a, b Interval) Interval {
	if math.IsNaN(a.Lo) || math.IsNaN(a.Hi) {
		return b
	}
	return a
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
