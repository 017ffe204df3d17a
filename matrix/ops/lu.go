package ops

import (
	"fmt"
	"math"

	"github.com/isurf/ivaluate/matrix"
)

// LU decomposes square m into lower-triangular L (unit diagonal) and
// upper-triangular U via Doolittle's method with partial (row) pivoting,
// so that L*U equals m with its rows permuted according to perm: row i of
// L*U equals row perm[i] of m.
//
// Partial pivoting is required, not cosmetic: a plain Doolittle pass reads
// the pivot straight off m's diagonal and a rotation matrix can carry a
// structural zero there (a 90-degree rotation about Z has a zero (0,0)
// entry) despite being perfectly invertible.
//
// Stage 1 (Validate): m must be square.
// Stage 2 (Decompose): at each step k, swap row k with whichever remaining
// row has the largest-magnitude entry in column k, then eliminate as usual.
func LU(m *matrix.Dense) (L, U *matrix.Dense, perm []int, err error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, nil, fmt.Errorf("ops.LU: non-square %dx%d: %w", n, m.Cols(), matrix.ErrDimensionMismatch)
	}
	L, err = matrix.Identity(n)
	if err != nil {
		return nil, nil, nil, err
	}
	U, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			_ = U.Set(i, j, v)
		}
	}

	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		maxRow, maxVal := k, math.Abs(at(U, k, k))
		for i := k + 1; i < n; i++ {
			if v := math.Abs(at(U, i, k)); v > maxVal {
				maxRow, maxVal = i, v
			}
		}
		if maxVal == 0 {
			return nil, nil, nil, fmt.Errorf("ops.LU: %w", matrix.ErrSingular)
		}
		if maxRow != k {
			swapRowRange(U, k, maxRow, 0, n)
			swapRowRange(L, k, maxRow, 0, k)
			perm[k], perm[maxRow] = perm[maxRow], perm[k]
		}

		pivot := at(U, k, k)
		for i := k + 1; i < n; i++ {
			factor := at(U, i, k) / pivot
			_ = L.Set(i, k, factor)
			for j := k; j < n; j++ {
				_ = U.Set(i, j, at(U, i, j)-factor*at(U, k, j))
			}
		}
	}
	return L, U, perm, nil
}

func at(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// swapRowRange swaps rows i and j of m across columns [lo, hi). Used to
// swap all of U's row but only L's already-computed multiplier columns.
func swapRowRange(m *matrix.Dense, i, j, lo, hi int) {
	for c := lo; c < hi; c++ {
		a, _ := m.At(i, c)
		b, _ := m.At(j, c)
		_ = m.Set(i, c, b)
		_ = m.Set(j, c, a)
	}
}
