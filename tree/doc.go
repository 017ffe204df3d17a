// Package tree provides a lightweight, owning handle onto a single rooted
// subDAG inside a cache.Cache.
//
// A Tree is a value object: it pairs a *cache.Cache with the NodeID of the
// subDAG's root and the cache generation that id was minted under. It owns
// no node storage — all nodes live in the cache — so copying a Tree is
// cheap and Trees never diverge from the cache they reference.
//
// Collapse rewrites the one opcode the evaluator package never executes
// directly, AFFINE_VEC, back into the explicit ADD/MUL/CONST structure it
// abbreviates, re-running the cache's own simplification rules along the
// way (spec.md §4.3). Evaluator construction always collapses first.
package tree
