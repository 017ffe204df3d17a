package eval_test

import (
	"testing"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/eval"
	"github.com/isurf/ivaluate/opcode"
	"github.com/isurf/ivaluate/tree"
)

var (
	benchSinkF  float64
	benchSinkFs []float64
)

func buildSphere(b *testing.B) (*cache.Cache, cache.NodeID) {
	b.Helper()
	c := cache.NewCache()
	x2, _ := c.Operation(opcode.MUL, c.X(), c.X())
	y2, _ := c.Operation(opcode.MUL, c.Y(), c.Y())
	z2, _ := c.Operation(opcode.MUL, c.Z(), c.Z())
	sum, _ := c.Operation(opcode.ADD, x2, y2)
	sum, _ = c.Operation(opcode.ADD, sum, z2)
	root, _ := c.Operation(opcode.SQRT, sum, 0)
	root, _ = c.Operation(opcode.SUB, root, c.Constant(1))
	return c, root
}

// BenchmarkEvalPoint measures single-point evaluation throughput.
func BenchmarkEvalPoint(b *testing.B) {
	c, root := buildSphere(b)
	ev, err := eval.New(tree.New(c, root))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSinkF = ev.EvalPoint(1, 2, 3)
	}
}

// BenchmarkValuesBatch_Scalar measures a 1024-point scalar sweep.
func BenchmarkValuesBatch_Scalar(b *testing.B) {
	c, root := buildSphere(b)
	ev, err := eval.New(tree.New(c, root))
	if err != nil {
		b.Fatal(err)
	}
	const n = 1024
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.SetPoints(xs, ys, zs)
		benchSinkFs = ev.ValuesBatch(false)
	}
}

// BenchmarkValuesBatch_Vectorized measures the same sweep with chunked
// (width-8) evaluation.
func BenchmarkValuesBatch_Vectorized(b *testing.B) {
	c, root := buildSphere(b)
	ev, err := eval.New(tree.New(c, root))
	if err != nil {
		b.Fatal(err)
	}
	const n = 1024
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.SetPoints(xs, ys, zs)
		benchSinkFs = ev.ValuesBatch(true)
	}
}

// BenchmarkDerivsBatch measures value+gradient throughput over the same
// 1024-point sweep.
func BenchmarkDerivsBatch(b *testing.B) {
	c, root := buildSphere(b)
	ev, err := eval.New(tree.New(c, root))
	if err != nil {
		b.Fatal(err)
	}
	const n = 1024
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.SetPoints(xs, ys, zs)
		benchSinkFs, _, _, _ = ev.DerivsBatch(false)
	}
}
