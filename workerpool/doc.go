// Package workerpool schedules point-batch evaluation across goroutines.
//
// eval.Evaluator is explicitly single-threaded (it owns mutable scratch
// buffers and a push/pop stack with no internal locking); parallelism
// comes from running one Evaluator per goroutine, each built fresh from
// the same collapsed tree.Tree, over disjoint tiles of the input batch.
// EvaluateTiles implements that pattern with golang.org/x/sync/errgroup
// for fan-out and first-error propagation.
package workerpool
