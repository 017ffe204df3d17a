package workerpool

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/isurf/ivaluate/eval"
	"github.com/isurf/ivaluate/tree"
)

// config holds EvaluateTiles' tunables, set via Option.
type config struct {
	workers   int
	vectorize bool
}

// Option configures EvaluateTiles/EvaluateDerivs.
type Option func(*config)

// WithWorkers overrides the goroutine count (default runtime.GOMAXPROCS(0)).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithVectorize selects chunked (width-8) evaluation within each tile,
// passed straight through to the per-tile Evaluator.
func WithVectorize(v bool) Option {
	return func(c *config) { c.vectorize = v }
}

func newConfig(opts []Option) config {
	c := config{workers: runtime.GOMAXPROCS(0), vectorize: false}
	for _, opt := range opts {
		opt(&c)
	}
	if c.workers < 1 {
		c.workers = 1
	}
	return c
}

// tile is a contiguous [start, end) slice of the input batch.
type tile struct{ start, end int }

func tiles(n, workers int) []tile {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	var ts []tile
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		ts = append(ts, tile{start, end})
	}
	return ts
}

func checkLengths(xs, ys, zs []float64) error {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return ErrMismatchedLengths
	}
	return nil
}

// EvaluateTiles partitions (xs, ys, zs) across goroutines, each
// constructing its own eval.Evaluator from t (spec.md §5: "one evaluator
// per worker thread, each over its own clone of the DAG root"), and
// returns the values in input order. The first tile error is returned
// once every tile has finished; the other tiles are not cancelled.
func EvaluateTiles(t tree.Tree, xs, ys, zs []float64, evalOpts []eval.Option, opts ...Option) ([]float64, error) {
	if err := checkLengths(xs, ys, zs); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	out := make([]float64, len(xs))

	var g errgroup.Group
	for _, tl := range tiles(len(xs), cfg.workers) {
		tl := tl
		g.Go(func() error {
			ev, err := eval.New(t, evalOpts...)
			if err != nil {
				return fmt.Errorf("workerpool: tile [%d,%d): %w", tl.start, tl.end, err)
			}
			ev.SetPoints(xs[tl.start:tl.end], ys[tl.start:tl.end], zs[tl.start:tl.end])
			copy(out[tl.start:tl.end], ev.ValuesBatch(cfg.vectorize))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateDerivs is EvaluateTiles' value+gradient counterpart, returning
// (value, dx, dy, dz) in input order.
func EvaluateDerivs(t tree.Tree, xs, ys, zs []float64, evalOpts []eval.Option, opts ...Option) (value, dx, dy, dz []float64, err error) {
	if err := checkLengths(xs, ys, zs); err != nil {
		return nil, nil, nil, nil, err
	}
	cfg := newConfig(opts)
	n := len(xs)
	value = make([]float64, n)
	dx = make([]float64, n)
	dy = make([]float64, n)
	dz = make([]float64, n)

	var g errgroup.Group
	for _, tl := range tiles(n, cfg.workers) {
		tl := tl
		g.Go(func() error {
			ev, err := eval.New(t, evalOpts...)
			if err != nil {
				return fmt.Errorf("workerpool: tile [%d,%d): %w", tl.start, tl.end, err)
			}
			ev.SetPoints(xs[tl.start:tl.end], ys[tl.start:tl.end], zs[tl.start:tl.end])
			f, gx, gy, gz := ev.DerivsBatch(cfg.vectorize)
			copy(value[tl.start:tl.end], f)
			copy(dx[tl.start:tl.end], gx)
			copy(dy[tl.start:tl.end], gy)
			copy(dz[tl.start:tl.end], gz)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, nil, err
	}
	return value, dx, dy, dz, nil
}
