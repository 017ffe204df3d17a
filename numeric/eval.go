package numeric

import (
	"fmt"
	"math"

	"github.com/isurf/ivaluate/opcode"
)

// Eval computes op's scalar result at operand values a and b. b is ignored
// for nullary/unary opcodes. x, y, z are the point's coordinates, needed
// only for VAR_X/Y/Z.
func Eval(op opcode.Op, a, b, x, y, z float64) float64 {
	switch op {
	case opcode.VAR_X:
		return x
	case opcode.VAR_Y:
		return y
	case opcode.VAR_Z:
		return z
	case opcode.CONST:
		return a
	case opcode.SQUARE:
		return a * a
	case opcode.SQRT:
		return math.Sqrt(a)
	case opcode.NEG:
		return -a
	case opcode.ABS:
		return math.Abs(a)
	case opcode.SIN:
		return math.Sin(a)
	case opcode.COS:
		return math.Cos(a)
	case opcode.TAN:
		return math.Tan(a)
	case opcode.ASIN:
		return math.Asin(a)
	case opcode.ACOS:
		return math.Acos(a)
	case opcode.ATAN:
		return math.Atan(a)
	case opcode.EXP:
		return math.Exp(a)
	case opcode.ADD:
		return a + b
	case opcode.MUL:
		return a * b
	case opcode.MIN:
		return math.Min(a, b)
	case opcode.MAX:
		return math.Max(a, b)
	case opcode.SUB:
		return a - b
	case opcode.DIV:
		return a / b
	case opcode.ATAN2:
		return math.Atan2(a, b)
	case opcode.POW:
		return math.Pow(a, b)
	case opcode.NTH_ROOT:
		return nthRoot(a, b)
	case opcode.MOD:
		return math.Mod(a, b)
	case opcode.NANFILL:
		if math.IsNaN(a) {
			return b
		}
		return a
	case opcode.DUMMY_A:
		return a
	case opcode.DUMMY_B:
		return b
	default:
		panic(fmt.Sprintf("numeric: unknown opcode %s", op))
	}
}

// nthRoot returns a^(1/n), preserving sign for odd integer n (so that e.g.
// nthRoot(-8, 3) == -2 instead of NaN).
func nthRoot(a, n float64) float64 {
	if a < 0 {
		if n == math.Trunc(n) && int64(n)%2 != 0 {
			return -math.Pow(-a, 1/n)
		}
		return math.NaN()
	}
	return math.Pow(a, 1/n)
}
