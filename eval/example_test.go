package eval_test

import (
	"fmt"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/eval"
	"github.com/isurf/ivaluate/interval"
	"github.com/isurf/ivaluate/opcode"
	"github.com/isurf/ivaluate/tree"
)

// ExampleEvaluator_EvalPoint evaluates sqrt(x^2+y^2)-1, the distance from
// the unit circle, at a single point.
func ExampleEvaluator_EvalPoint() {
	c := cache.NewCache()
	x2, _ := c.Operation(opcode.MUL, c.X(), c.X())
	y2, _ := c.Operation(opcode.MUL, c.Y(), c.Y())
	sum, _ := c.Operation(opcode.ADD, x2, y2)
	root, _ := c.Operation(opcode.SQRT, sum, 0)
	root, _ = c.Operation(opcode.SUB, root, c.Constant(1))

	ev, _ := eval.New(tree.New(c, root))
	fmt.Println(ev.EvalPoint(3, 4, 0))
	// Output:
	// 4
}

// ExampleEvaluator_Push shows that MIN(x-10, y) evaluated over a box where
// y is provably below x-10 prunes the x-10 subtree, dropping utilization
// below 1.
func ExampleEvaluator_Push() {
	c := cache.NewCache()
	xMinus10, _ := c.Operation(opcode.SUB, c.X(), c.Constant(10))
	root, _ := c.Operation(opcode.MIN, xMinus10, c.Y())

	ev, _ := eval.New(tree.New(c, root))
	ev.SetInterval(interval.Point(100), interval.Interval{Lo: 0, Hi: 1}, interval.Point(0))
	ev.EvalInterval()

	ev.Push()
	fmt.Println(ev.Utilization() < 1)
	ev.Pop()
	// Output:
	// true
}
