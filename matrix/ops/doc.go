// Package ops provides LU decomposition and matrix inversion over
// matrix.Dense, following the teacher package's Doolittle-with-substitution
// approach, generalized to any square size rather than hard-coded 3x3/4x4
// cofactor formulas.
package ops
