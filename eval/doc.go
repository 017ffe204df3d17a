// Package eval compiles a collapsed tree.Tree into a flat, rank-ordered
// clause tape and evaluates it in three modes: scalar/vectorized value
// batches, value+gradient batches (forward-mode chain rule), and interval
// batches, plus the push/pop subtree-pruning protocol that disables clauses
// whose output cannot affect the root over the current interval box.
//
// Construction (New) is the expensive, one-time step; every other method is
// meant to run in a render's inner loop. An Evaluator is not safe for
// concurrent use — callers wanting parallel evaluation construct one
// Evaluator per worker goroutine over the same cache (see the workerpool
// package). New is not read-only on the cache: collapsing the tree may
// insert nodes, under the cache's own lock.
//
// The tape is organized into rows, one per positive rank; row r holds every
// clause of rank r+1. Pruning marks clauses disabled in place (a bool per
// clause) rather than permuting each row's backing slice into an
// active/inactive prefix split — see DESIGN.md for why.
package eval
