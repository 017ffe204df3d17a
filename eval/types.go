package eval

import (
	"github.com/isurf/ivaluate/interval"
	"github.com/isurf/ivaluate/matrix"
	"github.com/isurf/ivaluate/opcode"
)

// pruneState classifies, per clause, which operand (if any) the push phase
// may skip descending into — spec.md §4.4 step 1.
type pruneState uint8

const (
	pruneNone pruneState = iota
	pruneIgnoreA
	pruneIgnoreB
)

// noOperand marks a clause slot index that does not exist (nullary clauses,
// or the unused second operand of a unary clause).
const noOperand = -1

// clause is one compiled tape entry. X, Y, Z and CONST clauses carry no
// row membership (rank 0, not present in any rows[] bucket); every other
// clause belongs to rows[rank-1].
type clause struct {
	op       opcode.Op
	a, b     int // indices into Evaluator.clauses, noOperand if absent
	constVal float64
	rank     int
	prune    pruneState
}

// Evaluator holds a compiled clause tape plus per-batch scratch buffers.
// Not safe for concurrent use (spec.md §5).
//
// Pruning is tracked as a disabled bool per clause rather than by
// physically permuting each row's backing slice: the spec's row
// permutation exists to keep SIMD sweeps cache-dense, a concern that does
// not apply to this implementation's scalar/chunked kernels (see
// DESIGN.md). Utilization is derived by counting, which is equivalent.
type Evaluator struct {
	clauses  []clause
	rows     [][]int // rows[r] holds clause indices of rank r+1
	disabled []bool  // disabled[i] reports whether the current Push pruned clauses[i]
	stack    [][]bool

	root int
	xIdx int
	yIdx int
	zIdx int

	transform    matrix.Transform4
	hasTransform bool
	invLinear    *matrix.Dense // inverse of transform.LinearPart(), for gradients

	n          int
	f          []float64
	dx, dy, dz []float64
	iv         []interval.Interval
}

// Option configures a new Evaluator.
type Option func(*Evaluator)

// WithTransform sets the world-to-evaluator transform applied to point
// inputs by SetPoints and SetInterval, and whose inverse linear part is applied to
// gradients so DerivsBatch returns world-space normals (spec.md §4.4).
func WithTransform(t matrix.Transform4) Option {
	return func(e *Evaluator) {
		e.transform = t
		e.hasTransform = !t.IsIdentity()
	}
}
