package eval

import (
	"math"

	"github.com/isurf/ivaluate/opcode"
)

// vec3 is a (dx, dy, dz) gradient.
type vec3 struct{ x, y, z float64 }

func scale(v vec3, k float64) vec3 { return vec3{v.x * k, v.y * k, v.z * k} }
func add(u, v vec3) vec3           { return vec3{u.x + v.x, u.y + v.y, u.z + v.z} }
func sub(u, v vec3) vec3           { return vec3{u.x - v.x, u.y - v.y, u.z - v.z} }
func neg(v vec3) vec3              { return vec3{-v.x, -v.y, -v.z} }

// valueAndGrad computes a clause's (value, gradient) from its operands'
// values and gradients via forward-mode differentiation — product,
// quotient and chain rules per opcode, per spec.md §4.4 "Derivatives".
//
// op is the clause's effective op (DUMMY_A/DUMMY_B substituted by the
// caller when pruning has disabled an operand).
func valueAndGrad(op opcode.Op, av, bv float64, ag, bg vec3, x, y, z float64) (float64, vec3) {
	switch op {
	case opcode.VAR_X:
		return x, vec3{1, 0, 0}
	case opcode.VAR_Y:
		return y, vec3{0, 1, 0}
	case opcode.VAR_Z:
		return z, vec3{0, 0, 1}
	case opcode.CONST:
		return av, vec3{}
	case opcode.SQUARE:
		return av * av, scale(ag, 2*av)
	case opcode.SQRT:
		v := math.Sqrt(av)
		if av <= 0 {
			return v, vec3{}
		}
		return v, scale(ag, 0.5/v)
	case opcode.NEG:
		return -av, neg(ag)
	case opcode.ABS:
		if av < 0 {
			return -av, neg(ag)
		}
		return av, ag
	case opcode.SIN:
		return math.Sin(av), scale(ag, math.Cos(av))
	case opcode.COS:
		return math.Cos(av), scale(ag, -math.Sin(av))
	case opcode.TAN:
		c := math.Cos(av)
		return math.Tan(av), scale(ag, 1/(c*c))
	case opcode.ASIN:
		return math.Asin(av), scale(ag, 1/math.Sqrt(1-av*av))
	case opcode.ACOS:
		return math.Acos(av), scale(ag, -1/math.Sqrt(1-av*av))
	case opcode.ATAN:
		return math.Atan(av), scale(ag, 1/(1+av*av))
	case opcode.EXP:
		v := math.Exp(av)
		return v, scale(ag, v)
	case opcode.ADD:
		return av + bv, add(ag, bg)
	case opcode.SUB:
		return av - bv, sub(ag, bg)
	case opcode.MUL:
		return av * bv, add(scale(ag, bv), scale(bg, av))
	case opcode.DIV:
		return av / bv, scale(sub(scale(ag, bv), scale(bg, av)), 1/(bv*bv))
	case opcode.MIN:
		// Ties break toward b (spec.md §4.4 "Derivatives").
		if av < bv {
			return av, ag
		}
		return bv, bg
	case opcode.MAX:
		// Ties break toward b (spec.md §4.4 "Derivatives").
		if bv >= av {
			return bv, bg
		}
		return av, ag
	case opcode.ATAN2:
		d := av*av + bv*bv
		return math.Atan2(av, bv), vec3{
			x: (bv*ag.x - av*bg.x) / d,
			y: (bv*ag.y - av*bg.y) / d,
			z: (bv*ag.z - av*bg.z) / d,
		}
	case opcode.POW:
		v := math.Pow(av, bv)
		if av == 0 {
			return v, vec3{}
		}
		return v, scale(ag, bv*math.Pow(av, bv-1))
	case opcode.NTH_ROOT:
		v := nthRootValue(av, bv)
		if av == 0 {
			return v, vec3{}
		}
		return v, scale(ag, math.Pow(math.Abs(av), 1/bv-1)/bv)
	case opcode.MOD:
		// Gradient approximated as the a-operand's gradient (spec.md §4.4).
		return math.Mod(av, bv), ag
	case opcode.NANFILL:
		if math.IsNaN(av) {
			return bv, bg
		}
		return av, ag
	case opcode.DUMMY_A:
		return av, ag
	case opcode.DUMMY_B:
		return bv, bg
	default:
		panic("eval: unknown opcode in valueAndGrad")
	}
}

func nthRootValue(a, n float64) float64 {
	if a < 0 {
		if n == math.Trunc(n) && int64(n)%2 != 0 {
			return -math.Pow(-a, 1/n)
		}
		return math.NaN()
	}
	return math.Pow(a, 1/n)
}
