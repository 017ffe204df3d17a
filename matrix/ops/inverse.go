package ops

import (
	"fmt"

	"github.com/isurf/ivaluate/matrix"
)

// Inverse returns the inverse of square m, computed via LU decomposition
// followed by forward/backward substitution against each basis column.
//
// Stage 1 (Decompose): m = L*U, up to LU's row permutation perm.
// Stage 2 (Solve): for each basis vector e_col, solve L*y=P*e_col then
// U*x=y, where (P*e_col)[i] is 1 when perm[i]==col and 0 otherwise.
// Stage 3 (Assemble): column x becomes column col of the inverse.
//
// Complexity: O(n^3) time, O(n^2) memory.
func Inverse(m *matrix.Dense) (*matrix.Dense, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("ops.Inverse: non-square %dx%d: %w", n, m.Cols(), matrix.ErrDimensionMismatch)
	}
	L, U, perm, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("ops.Inverse: %w", err)
	}

	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	y := make([]float64, n)
	x := make([]float64, n)

	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				lik, _ := L.At(i, k)
				sum += lik * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for k := i + 1; k < n; k++ {
				uik, _ := U.At(i, k)
				sum += uik * x[k]
			}
			uii, _ := U.At(i, i)
			if uii == 0 {
				return nil, fmt.Errorf("ops.Inverse: %w", matrix.ErrSingular)
			}
			x[i] = (y[i] - sum) / uii
		}
		for i := 0; i < n; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}
	return inv, nil
}
