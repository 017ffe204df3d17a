// Package matrix provides small, dense linear-algebra primitives used by the
// evaluator's world-to-evaluator coordinate transform.
//
// What & Why:
//
//	Dense is a row-major float64 matrix with bounds-checked access. The
//	evaluator needs exactly two things from it: a 4x4 homogeneous transform
//	(rotation/scale/translation applied to points before evaluation) and the
//	inverse of that transform's linear 3x3 part (to carry gradients, i.e.
//	surface normals, back from evaluator space into world space). The ops
//	subpackage supplies general-purpose LU decomposition and inversion so
//	the evaluator is not limited to hand-derived 3x3/4x4 cofactor formulas.
//
// Complexity:
//
//	Rows/Cols are O(1); At/Set are O(1) with bounds checking; Clone is
//	O(rows*cols).
package matrix
