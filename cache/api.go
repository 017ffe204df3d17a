// File: api.go
// Role: public, deterministic facade over the Cache's node store —
// constructors (X/Y/Z/Constant/Affine/Operation) and read-only accessors
// (Op/Value/Operands/Rank/GetAffine). No algorithmic complexity lives here
// beyond the insertion pipeline Operation documents; locking is the only
// concern this file owns directly.
package cache

import (
	"math"

	"github.com/isurf/ivaluate/opcode"
)

// X returns the id of the VAR_X leaf, constructing it on first use.
func (c *Cache) X() NodeID { return c.axis(&c.xID, opcode.VAR_X) }

// Y returns the id of the VAR_Y leaf, constructing it on first use.
func (c *Cache) Y() NodeID { return c.axis(&c.yID, opcode.VAR_Y) }

// Z returns the id of the VAR_Z leaf, constructing it on first use.
func (c *Cache) Z() NodeID { return c.axis(&c.zID, opcode.VAR_Z) }

func (c *Cache) axis(slot *NodeID, op opcode.Op) NodeID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if *slot != 0 {
		return *slot
	}
	key := opKey(op, 0, 0)
	if id, ok := c.lookup(key); ok {
		*slot = id
		return id
	}
	*slot = c.insert(key, node{op: op, value: math.NaN(), rank: 0})
	return *slot
}

// Constant returns the id of CONST(v), deduplicating by bit-exact value
// (NaN collapses to a single canonical NaN constant — spec.md §3).
func (c *Cache) Constant(v float64) NodeID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.constantLocked(v)
}

// constantLocked is Constant's body, reusable by identities.go and
// affine.go which already hold c.mu.
func (c *Cache) constantLocked(v float64) NodeID {
	key := constKey(v)
	if id, ok := c.lookup(key); ok {
		return id
	}
	return c.insert(key, node{op: opcode.CONST, value: v, rank: 0})
}

// Affine returns the id of AFFINE_VEC(a,b,c,d), representing a·X+b·Y+c·Z+d
// as a single leaf node. It collapses to Constant(d) when a=b=c=0
// (spec.md §4.2).
func (c *Cache) Affine(a, b, cc, d float64) NodeID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.affineLocked(a, b, cc, d)
}

// Operation constructs or returns the existing id for op(lhs, rhs),
// following the six-step pipeline of spec.md §4.2:
//
//  1. commutative normalization (swap lhs/rhs if op is commutative and
//     lhs > rhs by id),
//  2. MUL(x,x) canonicalizes to SQUARE(x) (square(x) == x*x, spec.md §3),
//  3. algebraic identity simplification,
//  4. constant folding when every operand is CONST,
//  5. affine promotion for ADD/SUB/MUL-by-CONST,
//  6. hash-consing on the final (op, lhs, rhs) key.
//
// rhs is ignored (and should be 0) for unary and nullary opcodes.
// Operation rejects opcode.INVALID, opcode.LAST_OP and the evaluator-only
// DUMMY_A/DUMMY_B pseudo-opcodes with ErrInvalidOperand — those never
// belong in a cache-built DAG.
func (c *Cache) Operation(op opcode.Op, lhs, rhs NodeID) (NodeID, error) {
	return c.buildOperation(op, lhs, rhs, true)
}

// RawOperation runs the same pipeline as Operation but skips step 5, affine
// promotion. tree.Collapse is its only intended caller: collapse expands
// an AFFINE_VEC into an explicit ((a*X)+(b*Y)+(c*Z)+d) structure, and
// ordinary Operation calls would immediately re-fold that structure back
// into the very AFFINE_VEC node collapse exists to eliminate. Identity
// simplification and constant folding still apply, so zero-coefficient
// terms still vanish (spec.md §4.3) — only the affine re-promotion is
// suppressed.
func (c *Cache) RawOperation(op opcode.Op, lhs, rhs NodeID) (NodeID, error) {
	return c.buildOperation(op, lhs, rhs, false)
}

func (c *Cache) buildOperation(op opcode.Op, lhs, rhs NodeID, allowAffine bool) (NodeID, error) {
	if !op.Valid() || op == opcode.DUMMY_A || op == opcode.DUMMY_B {
		return 0, ErrInvalidOperand
	}
	if err := c.checkOperands(op, lhs, rhs); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Step 1: commutative normalization.
	if op.Commutative() && lhs > rhs {
		lhs, rhs = rhs, lhs
	}

	// Step 2: x*x canonicalizes to square(x) before any other simplification
	// runs, so later identity/fold/affine logic only ever sees SQUARE.
	if op == opcode.MUL && lhs == rhs {
		return c.operationLocked(opcode.SQUARE, lhs, 0, allowAffine)
	}

	return c.operationLocked(op, lhs, rhs, allowAffine)
}

// operationLocked runs steps 3-6 of Operation. Caller must hold c.mu
// (write) and must have already applied steps 1-2.
func (c *Cache) operationLocked(op opcode.Op, lhs, rhs NodeID, allowAffine bool) (NodeID, error) {
	// Step 3: identities.
	if id, ok := c.trySimplify(op, lhs, rhs); ok {
		return id, nil
	}

	// Step 4: constant folding.
	if id, ok := c.tryFold(op, lhs, rhs); ok {
		return id, nil
	}

	// Step 5: affine promotion.
	if allowAffine {
		if id, ok := c.tryAffinePromote(op, lhs, rhs); ok {
			return id, nil
		}
	}

	// Step 6: hash-cons.
	key := opKey(op, lhs, rhs)
	if id, ok := c.lookup(key); ok {
		return id, nil
	}
	rank := 1 + max(c.rankOf(lhs), c.rankOf(rhs))
	return c.insert(key, node{op: op, value: math.NaN(), lhs: lhs, rhs: rhs, rank: rank}), nil
}

// checkOperands validates arity and id range before taking the lock, so
// malformed input fails fast with a cheap read lock instead of corrupting
// state under the write lock.
func (c *Cache) checkOperands(op opcode.Op, lhs, rhs NodeID) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(lhs); err != nil {
		return err
	}
	if op.Arity() == 2 {
		if err := c.checkID(rhs); err != nil {
			return err
		}
	}
	return nil
}

// GetAffine reports whether id is an AFFINE_VEC node and, if so, its
// (a, b, c, d) coefficients.
func (c *Cache) GetAffine(id NodeID) (a, b, cc, d float64, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(id); err != nil {
		return 0, 0, 0, 0, false
	}
	n := c.nodes[id]
	if n.op != opcode.AFFINE_VEC {
		return 0, 0, 0, 0, false
	}
	return n.affine[0], n.affine[1], n.affine[2], n.affine[3], true
}

// Op returns id's opcode.
func (c *Cache) Op(id NodeID) opcode.Op {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(id); err != nil {
		return opcode.INVALID
	}
	return c.nodes[id].op
}

// Value returns id's constant value, or NaN if id is not a CONST node.
func (c *Cache) Value(id NodeID) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(id); err != nil {
		return math.NaN()
	}
	n := c.nodes[id]
	if n.op != opcode.CONST {
		return math.NaN()
	}
	return n.value
}

// Operands returns id's (lhs, rhs) operand ids, 0 for operands an opcode of
// that arity does not have.
func (c *Cache) Operands(id NodeID) (lhs, rhs NodeID) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(id); err != nil {
		return 0, 0
	}
	n := c.nodes[id]
	return n.lhs, n.rhs
}

// Rank returns id's rank: the longest path length from any leaf to id.
func (c *Cache) Rank(id NodeID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkID(id); err != nil {
		return 0
	}
	return c.nodes[id].rank
}
