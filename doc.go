// Package ivaluate evaluates implicit-surface expressions — DAGs built
// from x, y, z and a fixed opcode set — over points, interval boxes, and
// value+gradient batches.
//
// Construction happens through cache.Cache, a hash-consing node store with
// algebraic identity simplification, constant folding, and affine
// canonicalization. A tree.Tree is an owning reference to a root node
// inside a Cache; eval.New compiles a Tree into a flat clause tape an
// Evaluator can run repeatedly over point batches, interval boxes, or
// both, including the push/pop subtree-pruning protocol that disables
// branches an interval evaluation has proven cannot affect the result.
// workerpool fans batch evaluation out across goroutines, one Evaluator
// per worker, over the same collapsed Tree.
//
// Subpackages:
//
//	opcode/      — the closed opcode set: arity, commutativity, ordering
//	interval/    — closed interval arithmetic over the opcode set
//	cache/       — hash-consed DAG construction
//	tree/        — owning root reference, AFFINE_VEC collapse
//	matrix/      — dense matrices and the world<->evaluator transform
//	eval/        — compiled tape, scalar/batch/interval kernels, push/pop
//	workerpool/  — one-evaluator-per-goroutine batch scheduler
//	cmd/ivaluate-cli/ — interactive expression REPL over the above
package ivaluate
