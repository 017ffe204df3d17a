package cache

import "errors"

// Sentinel errors for the cache package. Every message is prefixed
// "cache: ..." for consistent grepping, matched at call sites with
// errors.Is (the base dependency's matrix/errors.go convention).
var (
	// ErrInvalidOperand is returned when Operation or RawOperation receives an
	// opcode that never belongs on a cache node: opcode.INVALID,
	// opcode.LAST_OP or any value outside the opcode range, and the
	// evaluator-only DUMMY_A/DUMMY_B. Per-clause numeric degeneracy of a
	// non-constant exponent is a spec.md §7 concern handled by eval, not by
	// construction.
	ErrInvalidOperand = errors.New("cache: invalid operand for opcode")

	// ErrUnknownNode is returned when a NodeID does not (or no longer)
	// resolve to a node in this Cache.
	ErrUnknownNode = errors.New("cache: unknown node id")

	// ErrCacheInvalidated is returned when a NodeID minted before a Reset is
	// used against the Cache afterward (spec.md §7, §5: "the caller is
	// responsible for ensuring no live evaluator references the cache
	// across a reset" — this error is the cache's half of that contract,
	// raised on read rather than silently returning garbage).
	ErrCacheInvalidated = errors.New("cache: node id invalidated by reset")
)
