package eval

import (
	"fmt"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/matrix"
	"github.com/isurf/ivaluate/matrix/ops"
	"github.com/isurf/ivaluate/opcode"
	"github.com/isurf/ivaluate/tree"
)

// New compiles t into a flat, rank-ordered clause tape (spec.md §4.4):
//
//  1. Collapse the tree so no AFFINE_VEC node remains.
//  2. Compute the connected set and visit it in (rank, id) order.
//  3. Instantiate X, Y, Z at fixed positions 0, 1, 2.
//  4. Emplace every other connected node: CONST gets a row-less slot,
//     everything else is appended to rows[rank-1] with operand indices
//     resolved from already-emplaced clauses.
//  5. Locate the root; ErrMalformedTree if the scan never produced it.
func New(t tree.Tree, opts ...Option) (*Evaluator, error) {
	collapsed, err := t.Collapse()
	if err != nil {
		return nil, err
	}
	c := collapsed.Cache()

	connected, err := c.FindConnected(collapsed.Root())
	if err != nil {
		return nil, err
	}
	order := c.CompileOrder(connected)

	e := &Evaluator{
		transform: matrix.NewTransform4Identity(),
		root:      noOperand,
	}

	index := make(map[cache.NodeID]int, len(order)+3)

	// Step 3: X, Y, Z always occupy 0, 1, 2, whether or not this particular
	// tree references them — batch input setters rely on fixed positions.
	e.xIdx = e.emplaceLeaf(opcode.VAR_X, 0)
	e.yIdx = e.emplaceLeaf(opcode.VAR_Y, 0)
	e.zIdx = e.emplaceLeaf(opcode.VAR_Z, 0)
	index[axisIDIfPresent(c, opcode.VAR_X)] = e.xIdx
	index[axisIDIfPresent(c, opcode.VAR_Y)] = e.yIdx
	index[axisIDIfPresent(c, opcode.VAR_Z)] = e.zIdx

	for _, id := range order {
		if _, already := index[id]; already {
			continue
		}
		op := c.Op(id)
		switch op {
		case opcode.CONST:
			idx := e.emplaceLeaf(opcode.CONST, c.Value(id))
			index[id] = idx
		default:
			lhsID, rhsID := c.Operands(id)
			a := index[lhsID]
			b := noOperand
			if op.Arity() == 2 {
				b = index[rhsID]
			}
			rank := c.Rank(id)
			idx := e.emplaceRow(op, a, b, rank)
			index[id] = idx
		}
	}

	rootIdx, ok := index[collapsed.Root()]
	if !ok {
		return nil, fmt.Errorf("eval.New: %w", ErrMalformedTree)
	}
	e.root = rootIdx

	e.disabled = make([]bool, len(e.clauses))

	for _, opt := range opts {
		opt(e)
	}
	if e.hasTransform {
		inv, err := ops.Inverse(e.transform.LinearPart())
		if err != nil {
			return nil, fmt.Errorf("eval.New: transform is not invertible: %w", err)
		}
		e.invLinear = inv
	}

	return e, nil
}

// axisIDIfPresent returns the cache's memoized id for the given axis
// opcode, so the index map agrees with X/Y/Z's fixed tape slots even if
// the compiled order never visits them (X()/Y()/Z() are idempotent: if the
// tree already built one, this just returns the existing id).
func axisIDIfPresent(c *cache.Cache, op opcode.Op) cache.NodeID {
	switch op {
	case opcode.VAR_X:
		return c.X()
	case opcode.VAR_Y:
		return c.Y()
	case opcode.VAR_Z:
		return c.Z()
	default:
		return 0
	}
}

// emplaceLeaf appends a rank-0, row-less clause (X/Y/Z/CONST) and returns
// its index.
func (e *Evaluator) emplaceLeaf(op opcode.Op, constVal float64) int {
	e.clauses = append(e.clauses, clause{op: op, a: noOperand, b: noOperand, constVal: constVal, rank: 0})
	return len(e.clauses) - 1
}

// emplaceRow appends a rank>=1 clause and registers it in rows[rank-1].
func (e *Evaluator) emplaceRow(op opcode.Op, a, b, rank int) int {
	idx := len(e.clauses)
	e.clauses = append(e.clauses, clause{op: op, a: a, b: b, rank: rank})
	for len(e.rows) < rank {
		e.rows = append(e.rows, nil)
	}
	e.rows[rank-1] = append(e.rows[rank-1], idx)
	return idx
}
