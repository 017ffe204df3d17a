package tree

import (
	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/opcode"
)

// Tree is an owning reference to a root node inside a cache.Cache. It
// remains valid only as long as c.Generation() == generation; any method
// called after the cache has been Reset returns cache.ErrCacheInvalidated.
type Tree struct {
	c          *cache.Cache
	root       cache.NodeID
	generation uint64
}

// New returns a Tree rooted at id within c. It does not validate id beyond
// capturing the cache's current generation — Collapse (and so eval.New)
// surfaces cache.ErrCacheInvalidated if c has been Reset since, and
// cache.ErrUnknownNode if id is null or outside c's node table.
func New(c *cache.Cache, id cache.NodeID) Tree {
	return Tree{c: c, root: id, generation: c.Generation()}
}

// Cache returns the cache this tree's root lives in.
func (t Tree) Cache() *cache.Cache { return t.c }

// Root returns the id of this tree's root node.
func (t Tree) Root() cache.NodeID { return t.root }

// checkGeneration reports cache.ErrCacheInvalidated if the cache has been
// Reset since this Tree was constructed.
func (t Tree) checkGeneration() error {
	return t.c.ValidateGeneration(t.generation)
}

// Collapse returns a new Tree, rooted in the same cache, whose root (and
// every node reachable from it) contains no AFFINE_VEC node: each one is
// rewritten to ((a*X) + (b*Y) + (c*Z) + d) via cache.RawOperation, which
// still re-simplifies any zero-coefficient terms away (spec.md §4.3)
// without re-folding the result back into AFFINE_VEC. This guarantees an
// evaluator built from the result only ever sees opcodes it has numeric
// kernels for.
func (t Tree) Collapse() (Tree, error) {
	if err := t.checkGeneration(); err != nil {
		return Tree{}, err
	}
	newRoot, err := t.collapseNode(t.root, make(map[cache.NodeID]cache.NodeID))
	if err != nil {
		return Tree{}, err
	}
	return Tree{c: t.c, root: newRoot, generation: t.generation}, nil
}

// collapseNode rewrites id and everything beneath it, memoizing by id so a
// node shared by multiple parents is rebuilt at most once.
func (t Tree) collapseNode(id cache.NodeID, memo map[cache.NodeID]cache.NodeID) (cache.NodeID, error) {
	if rebuilt, ok := memo[id]; ok {
		return rebuilt, nil
	}

	op := t.c.Op(id)
	if op == opcode.INVALID {
		return 0, cache.ErrUnknownNode
	}
	if op == opcode.AFFINE_VEC {
		a, b, cc, d, _ := t.c.GetAffine(id)
		rebuilt, err := t.expandAffine(a, b, cc, d)
		if err != nil {
			return 0, err
		}
		memo[id] = rebuilt
		return rebuilt, nil
	}
	if op == opcode.CONST || op == opcode.VAR_X || op == opcode.VAR_Y || op == opcode.VAR_Z {
		memo[id] = id
		return id, nil
	}

	lhs, rhs := t.c.Operands(id)
	newLhs, err := t.collapseNode(lhs, memo)
	if err != nil {
		return 0, err
	}
	var newRhs cache.NodeID
	if op.Arity() == 2 {
		newRhs, err = t.collapseNode(rhs, memo)
		if err != nil {
			return 0, err
		}
	}

	rebuilt, err := t.c.RawOperation(op, newLhs, newRhs)
	if err != nil {
		return 0, err
	}
	memo[id] = rebuilt
	return rebuilt, nil
}

// expandAffine builds ((a*X) + (b*Y) + (c*Z) + d) using RawOperation, so
// the result is never immediately re-promoted back into an AFFINE_VEC node.
// Zero-coefficient terms still vanish via identity simplification.
func (t Tree) expandAffine(a, b, cc, d float64) (cache.NodeID, error) {
	sum := t.c.Constant(d)
	terms := []struct {
		coef float64
		axis cache.NodeID
	}{
		{a, t.c.X()},
		{b, t.c.Y()},
		{cc, t.c.Z()},
	}
	for _, term := range terms {
		scaled, err := t.c.RawOperation(opcode.MUL, t.c.Constant(term.coef), term.axis)
		if err != nil {
			return 0, err
		}
		sum, err = t.c.RawOperation(opcode.ADD, sum, scaled)
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}
