package cache

import (
	"github.com/isurf/ivaluate/numeric"
	"github.com/isurf/ivaluate/opcode"
)

// tryFold implements spec.md §4.2 step 3: when every operand of op is a
// CONST node, compute the result with the shared numeric core and return
// the (deduplicated) id of that constant. Caller must hold c.mu (write).
func (c *Cache) tryFold(op opcode.Op, lhs, rhs NodeID) (NodeID, bool) {
	if op.Arity() == 1 {
		if v, ok := c.constValue(lhs); ok {
			return c.constantLocked(numeric.Eval(op, v, 0, 0, 0, 0)), true
		}
		return 0, false
	}
	av, aok := c.constValue(lhs)
	bv, bok := c.constValue(rhs)
	if aok && bok {
		return c.constantLocked(numeric.Eval(op, av, bv, 0, 0, 0)), true
	}
	return 0, false
}
