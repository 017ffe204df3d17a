package cache

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/isurf/ivaluate/opcode"
)

// canonicalNaNBits is the single bit pattern every NaN constant collapses to
// before hash-consing, so that "CONST(v1) and CONST(v2) share an id iff
// v1 == v2 bitwise (or both NaN)" (spec.md §3) holds regardless of which NaN
// payload the caller happened to pass in.
var canonicalNaNBits = math.Float64bits(math.NaN())

// floatBits returns v's exact bit pattern, canonicalizing NaN the same way
// constKey does, so two NaN coefficients always compare equal.
func floatBits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaNBits
	}
	return math.Float64bits(v)
}

// nodeKey is the structural identity of a node: everything Operation,
// Constant and Affine need to decide "have I already built this exact
// node". Exactly one of (bits), (lhs,rhs) or (affine) is meaningful,
// selected by op; the rest are left zero. Equality is plain struct
// equality — xxhash only buckets candidates, it never decides equality.
type nodeKey struct {
	op       opcode.Op
	bits     uint64    // CONST's value, bit-exact
	lhs, rhs NodeID    // operator operands
	affine   [4]uint64 // AFFINE_VEC's (a, b, c, d), bit-exact
}

func constKey(v float64) nodeKey {
	return nodeKey{op: opcode.CONST, bits: floatBits(v)}
}

func opKey(op opcode.Op, lhs, rhs NodeID) nodeKey {
	return nodeKey{op: op, lhs: lhs, rhs: rhs}
}

func affineKey(a, b, c, d float64) nodeKey {
	return nodeKey{op: opcode.AFFINE_VEC, affine: [4]uint64{floatBits(a), floatBits(b), floatBits(c), floatBits(d)}}
}

// hash returns a 64-bit digest of the key via xxhash, used to bucket
// candidates in Cache.index; full struct equality is still checked on
// lookup since xxhash is not collision-free.
func (k nodeKey) hash() uint64 {
	var buf [49]byte
	buf[0] = byte(k.op)
	binary.LittleEndian.PutUint64(buf[1:9], k.bits)
	binary.LittleEndian.PutUint32(buf[9:13], uint32(k.lhs))
	binary.LittleEndian.PutUint32(buf[13:17], uint32(k.rhs))
	for i, v := range k.affine {
		binary.LittleEndian.PutUint64(buf[17+i*8:25+i*8], v)
	}
	return xxhash.Sum64(buf[:])
}

// keyOf reconstructs the structural key of an already-inserted node, used to
// verify a hash-bucket candidate is an exact match rather than a collision.
// Caller must hold c.mu.
func (c *Cache) keyOf(id NodeID) nodeKey {
	n := c.nodes[id]
	switch n.op {
	case opcode.CONST:
		return constKey(n.value)
	case opcode.AFFINE_VEC:
		return affineKey(n.affine[0], n.affine[1], n.affine[2], n.affine[3])
	default:
		return opKey(n.op, n.lhs, n.rhs)
	}
}

// lookup returns the existing id matching key, if any. Caller must hold
// c.mu (read or write).
func (c *Cache) lookup(key nodeKey) (NodeID, bool) {
	for _, candidate := range c.index[key.hash()] {
		if c.keyOf(candidate) == key {
			return candidate, true
		}
	}
	return 0, false
}

// insert appends n as a brand-new node and records it under key's hash
// bucket. Caller must hold c.mu (write).
func (c *Cache) insert(key nodeKey, n node) NodeID {
	id := NodeID(len(c.nodes))
	c.nodes = append(c.nodes, n)
	h := key.hash()
	c.index[h] = append(c.index[h], id)
	return id
}
