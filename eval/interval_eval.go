package eval

import (
	"fmt"

	"github.com/isurf/ivaluate/interval"
	"github.com/isurf/ivaluate/opcode"
)

// SetInterval loads the interval inputs for X, Y, Z, applying the
// evaluator's transform (if any) the same way SetPoints does for
// point batches — spec.md §4.4 "Setting inputs".
func (e *Evaluator) SetInterval(ix, iy, iz interval.Interval) {
	if cap(e.iv) < len(e.clauses) {
		e.iv = make([]interval.Interval, len(e.clauses))
	} else {
		e.iv = e.iv[:len(e.clauses)]
	}
	if e.hasTransform {
		m := e.transform.Dense()
		row := func(r int) interval.Interval {
			m0, _ := m.At(r, 0)
			m1, _ := m.At(r, 1)
			m2, _ := m.At(r, 2)
			m3, _ := m.At(r, 3)
			return interval.Add(interval.Add(interval.Mul(interval.Point(m0), ix), interval.Add(interval.Mul(interval.Point(m1), iy), interval.Mul(interval.Point(m2), iz))), interval.Point(m3))
		}
		ix, iy, iz = row(0), row(1), row(2)
	}
	e.iv[e.xIdx] = ix
	e.iv[e.yIdx] = iy
	e.iv[e.zIdx] = iz
}

// EvalInterval runs one pass over the tape computing every clause's
// interval result from its operands', in rank order — spec.md §4.4
// "Interval evaluation". Call SetInterval first. Returns the root's
// interval, or ErrInvalidOperand if a POW/NTH_ROOT clause's exponent
// operand is not a degenerate interval.
func (e *Evaluator) EvalInterval() (interval.Interval, error) {
	for i, cl := range e.clauses {
		if cl.op == opcode.CONST {
			e.iv[i] = interval.Point(cl.constVal)
		}
	}

	for _, row := range e.rows {
		for _, idx := range row {
			cl := e.clauses[idx]
			if e.disabled[idx] {
				continue
			}
			aDisabled := cl.a != noOperand && e.disabled[cl.a]
			bDisabled := cl.b != noOperand && e.disabled[cl.b]
			iv, err := e.intervalOf(cl, effectiveOp(cl, aDisabled, bDisabled))
			if err != nil {
				return interval.Interval{}, fmt.Errorf("eval.EvalInterval: %w", err)
			}
			e.iv[idx] = iv
		}
	}
	return e.iv[e.root], nil
}

func (e *Evaluator) intervalOf(cl clause, op opcode.Op) (interval.Interval, error) {
	var a, b interval.Interval
	if cl.a != noOperand {
		a = e.iv[cl.a]
	}
	if cl.b != noOperand {
		b = e.iv[cl.b]
	}
	switch op {
	case opcode.SQUARE:
		return interval.Square(a), nil
	case opcode.SQRT:
		return interval.Sqrt(a), nil
	case opcode.NEG:
		return interval.Neg(a), nil
	case opcode.ABS:
		return interval.Abs(a), nil
	case opcode.SIN:
		return interval.Sin(a), nil
	case opcode.COS:
		return interval.Cos(a), nil
	case opcode.TAN:
		return interval.Tan(a), nil
	case opcode.ASIN:
		return interval.Asin(a), nil
	case opcode.ACOS:
		return interval.Acos(a), nil
	case opcode.ATAN:
		return interval.Atan(a), nil
	case opcode.EXP:
		return interval.Exp(a), nil
	case opcode.ADD:
		return interval.Add(a, b), nil
	case opcode.SUB:
		return interval.Sub(a, b), nil
	case opcode.MUL:
		return interval.Mul(a, b), nil
	case opcode.DIV:
		return interval.Div(a, b), nil
	case opcode.MIN:
		return interval.Min(a, b), nil
	case opcode.MAX:
		return interval.Max(a, b), nil
	case opcode.ATAN2:
		return interval.Atan2(a, b), nil
	case opcode.POW:
		iv, err := interval.Pow(a, b)
		if err != nil {
			return iv, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}
		return iv, nil
	case opcode.NTH_ROOT:
		iv, err := interval.NthRoot(a, b)
		if err != nil {
			return iv, fmt.Errorf("%w: %w", ErrInvalidOperand, err)
		}
		return iv, nil
	case opcode.MOD:
		return interval.Mod(a, b), nil
	case opcode.NANFILL:
		return interval.Nanfill(a, b), nil
	case opcode.DUMMY_A:
		return a, nil
	case opcode.DUMMY_B:
		return b, nil
	default:
		return interval.Interval{}, fmt.Errorf("%w: unsupported opcode %s", ErrInvalidOperand, cl.op)
	}
}
