package cache

import "github.com/isurf/ivaluate/opcode"

// trySimplify implements the algebraic identity table from spec.md §3:
// x+0=x, 0+x=x, x*1=x, x*0=0, x-x=0, x-0=x, min(x,x)=x, max(x,x)=x, -(-x)=x,
// abs(abs(x))=abs(x). x/x=1 is deliberately NOT applied — spec.md says it is
// "guarded by non-zero analysis if cheap; else not applied", and proving x
// non-zero is not cheap in general, so DIV only benefits from constant
// folding. square(x) == x*x is handled in Operation itself (MUL with equal
// operands is canonicalized to SQUARE before identities run), since it
// changes the opcode rather than resolving to an existing operand.
//
// Caller must hold c.mu (write) and must have already applied commutative
// operand normalization.
func (c *Cache) trySimplify(op opcode.Op, lhs, rhs NodeID) (NodeID, bool) {
	switch op {
	case opcode.ADD:
		if c.isConstZero(rhs) {
			return lhs, true
		}
		if c.isConstZero(lhs) {
			return rhs, true
		}
	case opcode.SUB:
		if lhs == rhs {
			return c.constantLocked(0), true
		}
		if c.isConstZero(rhs) {
			return lhs, true
		}
	case opcode.MUL:
		if c.isConstOne(rhs) {
			return lhs, true
		}
		if c.isConstOne(lhs) {
			return rhs, true
		}
		if c.isConstZero(rhs) {
			return rhs, true
		}
		if c.isConstZero(lhs) {
			return lhs, true
		}
	case opcode.MIN, opcode.MAX:
		if lhs == rhs {
			return lhs, true
		}
	case opcode.NEG:
		if n := c.nodes[lhs]; n.op == opcode.NEG {
			return n.lhs, true
		}
	case opcode.ABS:
		if n := c.nodes[lhs]; n.op == opcode.ABS {
			return lhs, true
		}
	}
	return 0, false
}

// isConstZero reports whether id is the constant 0. Caller must hold c.mu.
func (c *Cache) isConstZero(id NodeID) bool {
	v, ok := c.constValue(id)
	return ok && v == 0
}

// isConstOne reports whether id is the constant 1. Caller must hold c.mu.
func (c *Cache) isConstOne(id NodeID) bool {
	v, ok := c.constValue(id)
	return ok && v == 1
}
