package workerpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/eval"
	"github.com/isurf/ivaluate/opcode"
	"github.com/isurf/ivaluate/tree"
	"github.com/isurf/ivaluate/workerpool"
)

func sphereTree(t *testing.T) tree.Tree {
	t.Helper()
	c := cache.NewCache()
	x2, err := c.Operation(opcode.MUL, c.X(), c.X())
	require.NoError(t, err)
	y2, err := c.Operation(opcode.MUL, c.Y(), c.Y())
	require.NoError(t, err)
	sum, err := c.Operation(opcode.ADD, x2, y2)
	require.NoError(t, err)
	root, err := c.Operation(opcode.SQRT, sum, 0)
	require.NoError(t, err)
	root, err = c.Operation(opcode.SUB, root, c.Constant(1))
	require.NoError(t, err)
	return tree.New(c, root)
}

func TestEvaluateTilesMatchesSingleEvaluator(t *testing.T) {
	tr := sphereTree(t)

	n := 37
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i) * 0.5
	}

	want, err := eval.New(tr)
	require.NoError(t, err)
	want.SetPoints(xs, ys, zs)
	expected := append([]float64(nil), want.ValuesBatch(false)...)

	got, err := workerpool.EvaluateTiles(tr, xs, ys, zs, nil, workerpool.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, len(expected), len(got))
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], 1e-9)
	}
}

func TestEvaluateDerivsMatchesSingleEvaluator(t *testing.T) {
	tr := sphereTree(t)

	xs := []float64{1, 0, 0.5, -2, 3}
	ys := []float64{0, 1, 0.5, 1, -1}
	zs := []float64{0, 0, 0.5, 0, 2}

	want, err := eval.New(tr)
	require.NoError(t, err)
	want.SetPoints(xs, ys, zs)
	ef, edx, edy, edz := want.DerivsBatch(false)

	f, dx, dy, dz, err := workerpool.EvaluateDerivs(tr, xs, ys, zs, nil, workerpool.WithWorkers(3))
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, ef[i], f[i], 1e-9)
		assert.InDelta(t, edx[i], dx[i], 1e-9)
		assert.InDelta(t, edy[i], dy[i], 1e-9)
		assert.InDelta(t, edz[i], dz[i], 1e-9)
	}
}

func TestEvaluateTilesRejectsMismatchedLengths(t *testing.T) {
	tr := sphereTree(t)
	_, err := workerpool.EvaluateTiles(tr, []float64{1, 2}, []float64{1}, []float64{1}, nil)
	assert.ErrorIs(t, err, workerpool.ErrMismatchedLengths)
}

func TestEvaluateTilesEmptyBatch(t *testing.T) {
	tr := sphereTree(t)
	got, err := workerpool.EvaluateTiles(tr, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
