package cache

import "github.com/isurf/ivaluate/opcode"

// asAffine reports whether id's node can be read as a·X + b·Y + c·Z + d, and
// if so returns the coefficients. CONST, VAR_X/Y/Z and AFFINE_VEC are all
// affine; everything else is not. Caller must hold c.mu.
func (c *Cache) asAffine(id NodeID) (a, b, d2, d float64, ok bool) {
	n := c.nodes[id]
	switch n.op {
	case opcode.CONST:
		return 0, 0, 0, n.value, true
	case opcode.VAR_X:
		return 1, 0, 0, 0, true
	case opcode.VAR_Y:
		return 0, 1, 0, 0, true
	case opcode.VAR_Z:
		return 0, 0, 1, 0, true
	case opcode.AFFINE_VEC:
		return n.affine[0], n.affine[1], n.affine[2], n.affine[3], true
	default:
		return 0, 0, 0, 0, false
	}
}

// tryAffinePromote implements spec.md §4.2 step 4: ADD and SUB of two
// affine-able operands, and MUL of an affine-able operand by a CONST, all
// fold into a single AFFINE_VEC node instead of a generic binary node.
// Caller must hold c.mu (write — Affine may insert a new node).
func (c *Cache) tryAffinePromote(op opcode.Op, lhs, rhs NodeID) (NodeID, bool) {
	switch op {
	case opcode.ADD, opcode.SUB:
		a1, b1, c1, d1, ok1 := c.asAffine(lhs)
		a2, b2, c2, d2, ok2 := c.asAffine(rhs)
		if !ok1 || !ok2 {
			return 0, false
		}
		sign := 1.0
		if op == opcode.SUB {
			sign = -1.0
		}
		return c.affineLocked(a1+sign*a2, b1+sign*b2, c1+sign*c2, d1+sign*d2), true
	case opcode.MUL:
		if k, ok := c.constValue(rhs); ok {
			if a, b, cc, d, ok2 := c.asAffine(lhs); ok2 {
				return c.affineLocked(a*k, b*k, cc*k, d*k), true
			}
		}
		if k, ok := c.constValue(lhs); ok {
			if a, b, cc, d, ok2 := c.asAffine(rhs); ok2 {
				return c.affineLocked(a*k, b*k, cc*k, d*k), true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// constValue reports whether id is a CONST node and, if so, its value.
// Caller must hold c.mu.
func (c *Cache) constValue(id NodeID) (float64, bool) {
	n := c.nodes[id]
	if n.op == opcode.CONST {
		return n.value, true
	}
	return 0, false
}

// affineLocked constructs (or dedups) an AFFINE_VEC node, collapsing to a
// plain CONST when every linear coefficient is zero. Caller must hold c.mu
// (write).
func (c *Cache) affineLocked(a, b, cc, d float64) NodeID {
	if a == 0 && b == 0 && cc == 0 {
		return c.constantLocked(d)
	}
	key := affineKey(a, b, cc, d)
	if id, ok := c.lookup(key); ok {
		return id
	}
	return c.insert(key, node{op: opcode.AFFINE_VEC, affine: [4]float64{a, b, cc, d}, rank: 0})
}
