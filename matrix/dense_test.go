package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isurf/ivaluate/matrix"
)

func TestDenseAtSetRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestDenseOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(5, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestIdentityMul(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_ = m.Set(i, j, float64(i*3+j))
		}
	}
	product, err := id.Mul(m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := m.At(i, j)
			got, _ := product.At(i, j)
			assert.Equal(t, want, got)
		}
	}
}

func TestTransform4IdentityApplyIsNoop(t *testing.T) {
	tr := matrix.NewTransform4Identity()
	assert.True(t, tr.IsIdentity())
	x, y, z := tr.Apply(1, 2, 3)
	assert.Equal(t, [3]float64{1, 2, 3}, [3]float64{x, y, z})
}
