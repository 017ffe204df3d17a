// Package cache implements the hash-consed expression DAG store described in
// spec.md §3 and §4.2: a process-or-thread-local arena that deduplicates
// structurally identical subexpressions, canonicalizes affine combinations
// of X/Y/Z into a single node, and applies a small, fixed set of algebraic
// identities on insert.
//
// What:
//
//   - Cache owns all node storage, keyed by a dense NodeID (0 == null).
//   - Operation(op, lhs, rhs) is the single insertion path: it normalizes
//     commutative operand order, applies identities, folds constants,
//     attempts affine promotion, and only then hash-conses a new node.
//   - FindConnected(root) walks the transitive closure of operands reachable
//     from a root id.
//
// Why:
//
//   - Hash-consing turns "is this the same expression" into "is this the
//     same id", which the evaluator relies on for its rank-ordered tape
//     (spec.md §4.4) and for sharing subexpressions across a whole scene.
//
// Concurrency (one sync.RWMutex guards all node storage):
//
//   - Cache is safe for concurrent Operation/Constant/Affine/X/Y/Z calls —
//     writers serialize on a single sync.RWMutex because insertion can both
//     read (dedup lookup) and write (append) the backing slice, and the two
//     must be atomic together.
//   - Once construction quiesces, FindConnected and GetAffine only read and
//     may be called concurrently with each other; they still take the read
//     lock for safety against a racing writer the caller forgot to stop.
//   - Growth is strictly append-only: an id, once returned, is valid for the
//     lifetime of the Cache (or until Reset, which invalidates every id —
//     see errors.go's ErrCacheInvalidated and spec.md §5).
package cache
