// Package opcode defines the closed set of operations an expression DAG node
// may carry, plus the metadata (arity, commutativity, ordering) that the
// cache and the evaluator both need to agree on.
//
// What:
//
//   - Op is a small integer enum, stable across the cache and the evaluator —
//     callers must never depend on a numeric value surviving a rebuild, but
//     within one build the same Op value means the same operation everywhere.
//   - Arity(), Commutative() and rank-class ordering are each one small
//     switch in opcode.go, kept beside the Op constants they classify.
//
// Why:
//
//   - The cache needs Commutative() to normalize operand order before
//     hash-consing (core/doc.go's determinism discipline, applied here to
//     expression shape instead of vertex IDs).
//   - The evaluator needs Arity() to know how many operand pointers a clause
//     carries, and the nullary/unary/binary ordering to discover constants
//     with one linear scan of the cache's keys (spec.md §4.1).
//
// Complexity: every function here is O(1).
package opcode
