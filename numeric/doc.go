// Package numeric is the single pointwise arithmetic core shared by the
// cache's constant folding (cache/foldconst.go) and the evaluator's scalar
// value kernel (eval/batch.go's evalClauseValue). Both need "what does this opcode
// compute at one point" — factoring it once is what keeps
// "evaluating via an evaluator agrees with a direct structural
// interpretation of the DAG" (spec.md §8) true by construction instead of
// by coincidence between two hand-written copies.
//
// Eval panics on an unknown/invalid opcode (an implementation bug, not a
// caller error — spec.md §7) and otherwise never raises: domain errors
// (negative sqrt, asin out of range, divide by zero) propagate as NaN/±Inf,
// exactly like the tape does at runtime.
package numeric
