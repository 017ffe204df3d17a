// Package cache_test provides benchmarks for Cache construction and lookup.
package cache_test

import (
	"testing"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/opcode"
)

// Benchmark sinks prevent accidental dead-code elimination in microbenchmarks.
var (
	benchSinkID    cache.NodeID
	benchSinkValue float64
)

// BenchmarkOperation_ColdInsert measures Operation throughput when every
// call mints a genuinely new node (no hash-cons hit, no identity or fold
// shortcut fires).
func BenchmarkOperation_ColdInsert(b *testing.B) {
	c := cache.NewCache()
	consts := make([]cache.NodeID, b.N)
	for i := 0; i < b.N; i++ {
		consts[i] = c.Constant(float64(i) + 0.5)
	}
	x := c.X()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id, _ := c.Operation(opcode.ADD, x, consts[i])
		benchSinkID = id
	}
}

// BenchmarkOperation_HashConsHit measures Operation throughput on the
// already-built path, where every call resolves to the same node.
func BenchmarkOperation_HashConsHit(b *testing.B) {
	c := cache.NewCache()
	x, y := c.X(), c.Y()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id, _ := c.Operation(opcode.ADD, x, y)
		benchSinkID = id
	}
}

// BenchmarkValue measures the read-path cost of Value under RLock.
func BenchmarkValue(b *testing.B) {
	c := cache.NewCache()
	id := c.Constant(3.14159)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkValue = c.Value(id)
	}
}

// BenchmarkCompileOrder measures traversal+sort cost over a chain of
// increasing rank, the shape a deeply nested expression produces.
func BenchmarkCompileOrder(b *testing.B) {
	c := cache.NewCache()
	cur := c.X()
	for i := 0; i < 500; i++ {
		cur, _ = c.Operation(opcode.MAX, cur, c.Constant(float64(i)))
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		connected, err := c.FindConnected(cur)
		if err != nil {
			b.Fatalf("FindConnected: %v", err)
		}
		order := c.CompileOrder(connected)
		benchSinkID = order[len(order)-1]
	}
}

// BenchmarkConstant_Dedup measures Constant's dedup path under repeated
// insertion of the same small set of values, simulating a parser that
// re-emits shared literals (e.g. 0, 1, 2).
func BenchmarkConstant_Dedup(b *testing.B) {
	c := cache.NewCache()
	values := []float64{0, 1, 2, 0.5, -1}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchSinkID = c.Constant(values[i%len(values)])
	}
}
