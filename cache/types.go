package cache

import (
	"sync"

	"github.com/isurf/ivaluate/opcode"
)

// NodeID uniquely identifies a node within one Cache generation. The zero
// value is the null id and never refers to a real node.
type NodeID uint32

// null is the reserved, always-invalid id occupying slot 0 of every Cache's
// node slice — this lets unary/nullary clauses use 0 as "no operand" without
// a separate "has operand" flag.
const null NodeID = 0

// node is the cache's internal representation of one DAG vertex. Only
// AFFINE_VEC nodes populate affine; only CONST nodes populate value with a
// meaningful (non-NaN-sentinel) number, though value is also used to store
// the canonical NaN-as-constant bit pattern.
type node struct {
	op     opcode.Op
	value  float64 // meaningful iff op == opcode.CONST
	lhs    NodeID  // unused (null) for nullary ops
	rhs    NodeID  // unused (null) for nullary/unary ops
	rank   int
	affine [4]float64 // (a, b, c, d) iff op == opcode.AFFINE_VEC
}

// Cache is a hash-consed, append-only arena of expression DAG nodes.
// See doc.go for the concurrency and invalidation contract.
type Cache struct {
	mu         sync.RWMutex
	nodes      []node
	index      map[uint64][]NodeID
	generation uint64

	xID, yID, zID NodeID // memoized once constructed
}

// NewCache returns an empty Cache. Slot 0 of the node table is reserved as
// the permanent null sentinel, so the first real NodeID returned is 1.
func NewCache() *Cache {
	c := &Cache{
		nodes: make([]node, 1), // index 0 == null sentinel
		index: make(map[uint64][]NodeID),
	}
	return c
}

// Generation returns a counter bumped by Reset. Tree captures it at
// construction and compares on later use (Collapse, and so eval.New),
// surfacing ErrCacheInvalidated
// instead of silently reading nonsense after a reset (spec.md §5, §7).
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// ValidateGeneration returns ErrCacheInvalidated if gen does not match the
// Cache's current generation — i.e. a Reset happened since gen was
// captured.
func (c *Cache) ValidateGeneration(gen uint64) error {
	if c.Generation() != gen {
		return ErrCacheInvalidated
	}
	return nil
}

// Reset discards every node this Cache has ever produced. Any NodeID minted
// before Reset is permanently invalid afterward — the caller must ensure no
// live Tree or Evaluator still references this Cache (spec.md §5).
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = make([]node, 1)
	c.index = make(map[uint64][]NodeID)
	c.xID, c.yID, c.zID = 0, 0, 0
	c.generation++
}

// rankOf returns the rank of id, treating the null id as rank 0 so unary
// clauses (whose rhs is null) compute 1+max(rank(lhs), 0) correctly without
// a special case. Caller must hold c.mu.
func (c *Cache) rankOf(id NodeID) int {
	if id == null {
		return 0
	}
	return c.nodes[id].rank
}

// nodeAt returns the node stored at id. Caller must hold c.mu and must have
// already validated id with checkID.
func (c *Cache) nodeAt(id NodeID) node {
	return c.nodes[id]
}

// checkID validates that id is not null and is in range of the current node
// table. It does not check the generation: an id minted before a Reset that
// is still in range passes. Caller must hold c.mu (read or write).
func (c *Cache) checkID(id NodeID) error {
	if id == null || int(id) >= len(c.nodes) {
		return ErrUnknownNode
	}
	return nil
}
