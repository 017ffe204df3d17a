// Package cache_test verifies thread-safety of Cache under concurrent
// readers and writers, per the single-writer/many-reader contract doc.go
// documents.
package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/opcode"
)

// TestConcurrentOperationHashCons fires many goroutines at the same
// Operation call and expects every one of them to resolve to the single
// hash-consed node, never a distinct copy.
func TestConcurrentOperationHashCons(t *testing.T) {
	c := cache.NewCache()
	x, y := c.X(), c.Y()

	const num = 200
	ids := make([]cache.NodeID, num)
	errs := make([]error, num)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(idx int) {
			defer wg.Done()
			ids[idx], errs[idx] = c.Operation(opcode.ADD, x, y)
		}(i)
	}
	wg.Wait()

	for i := 0; i < num; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], ids[i], "every concurrent Operation call must resolve to the same node")
	}
}

// TestConcurrentConstantDedup mixes distinct and repeated constant values
// across goroutines and checks the node count settles at the number of
// distinct values, not the number of calls.
func TestConcurrentConstantDedup(t *testing.T) {
	c := cache.NewCache()
	values := []float64{1, 2, 3, 1, 2, 3, 1, 2, 3}

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(rounds * len(values))

	seen := make([][]cache.NodeID, rounds)
	for r := 0; r < rounds; r++ {
		seen[r] = make([]cache.NodeID, len(values))
		for i, v := range values {
			go func(r, i int, v float64) {
				defer wg.Done()
				seen[r][i] = c.Constant(v)
			}(r, i, v)
		}
	}
	wg.Wait()

	firstForValue := map[float64]cache.NodeID{}
	for r := 0; r < rounds; r++ {
		for i, v := range values {
			if id, ok := firstForValue[v]; ok {
				require.Equal(t, id, seen[r][i])
			} else {
				firstForValue[v] = seen[r][i]
			}
		}
	}
}

// TestConcurrentReadsDuringWrites exercises read-only accessors racing with
// new Operation calls — it exists to be run under `go test -race`; a clean
// pass (no panics, no races reported) is the assertion.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	c := cache.NewCache()
	x := c.X()
	root, err := c.Operation(opcode.ADD, x, c.Constant(1))
	require.NoError(t, err)

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		cur := root
		for i := 0; i < 500; i++ {
			cur, _ = c.Operation(opcode.ADD, cur, c.Constant(float64(i)))
		}
	}()

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = c.Op(root)
			_ = c.Rank(root)
			lhs, rhs := c.Operands(root)
			_, _ = lhs, rhs
		}()
	}
	wg.Wait()
}
