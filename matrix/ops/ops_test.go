package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isurf/ivaluate/matrix"
	"github.com/isurf/ivaluate/matrix/ops"
)

func rotationZ90() *matrix.Dense {
	m, _ := matrix.NewDense(3, 3)
	// 90-degree rotation about Z: (x,y) -> (-y, x)
	_ = m.Set(0, 0, 0)
	_ = m.Set(0, 1, -1)
	_ = m.Set(1, 0, 1)
	_ = m.Set(1, 1, 0)
	_ = m.Set(2, 2, 1)
	return m
}

func TestInverseOfRotationIsTranspose(t *testing.T) {
	r := rotationZ90()
	inv, err := ops.Inverse(r)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, _ := inv.At(i, j)
			want, _ := r.At(j, i)
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestInverseOfSingularFails(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_, err := ops.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLUReconstructsOriginal(t *testing.T) {
	m, _ := matrix.NewDense(3, 3)
	vals := []float64{4, 3, 2, 6, 3, 4, 2, 1, 3}
	for i, v := range vals {
		_ = m.Set(i/3, i%3, v)
	}
	L, U, perm, err := ops.LU(m)
	require.NoError(t, err)
	product, err := L.Mul(U)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := m.At(perm[i], j)
			got, _ := product.At(i, j)
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestLUPivotsAroundZeroDiagonal(t *testing.T) {
	r := rotationZ90()
	L, U, perm, err := ops.LU(r)
	require.NoError(t, err)
	product, err := L.Mul(U)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := r.At(perm[i], j)
			got, _ := product.At(i, j)
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}
