package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isurf/ivaluate/cache"
	"github.com/isurf/ivaluate/eval"
	"github.com/isurf/ivaluate/opcode"
	"github.com/isurf/ivaluate/tree"
)

func evalExpr(t *testing.T, src string, x, y, z float64) float64 {
	t.Helper()
	c := cache.NewCache()
	root, err := parseExpression(c, src)
	require.NoError(t, err)
	ev, err := eval.New(tree.New(c, root))
	require.NoError(t, err)
	return ev.EvalPoint(x, y, z)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	assert.InDelta(t, 14.0, evalExpr(t, "2 + 3 * 4", 0, 0, 0), 1e-9)
	assert.InDelta(t, 20.0, evalExpr(t, "(2 + 3) * 4", 0, 0, 0), 1e-9)
	assert.InDelta(t, 8.0, evalExpr(t, "2 ^ 3", 0, 0, 0), 1e-9)
	assert.InDelta(t, -8.0, evalExpr(t, "-2 ^ 3", 0, 0, 0), 1e-9)
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	// 2^(3^2) = 2^9 = 512, not (2^3)^2 = 64.
	assert.InDelta(t, 512.0, evalExpr(t, "2^3^2", 0, 0, 0), 1e-9)
}

func TestParseVariables(t *testing.T) {
	assert.InDelta(t, 5.0, evalExpr(t, "x + y + z", 1, 2, 2), 1e-9)
}

func TestParseSphereExpression(t *testing.T) {
	got := evalExpr(t, "sqrt(x*x + y*y + z*z) - 1", 3, 4, 0)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestParseFunctionCalls(t *testing.T) {
	assert.InDelta(t, 3.0, evalExpr(t, "max(min(x, 10), 3)", 1, 0, 0), 1e-9)
	assert.InDelta(t, 2.0, evalExpr(t, "abs(-2)", 0, 0, 0), 1e-9)
}

func TestParseArityMismatch(t *testing.T) {
	c := cache.NewCache()
	_, err := parseExpression(c, "sin(x, y)")
	assert.Error(t, err)
}

func TestParseUnknownFunction(t *testing.T) {
	c := cache.NewCache()
	_, err := parseExpression(c, "wat(x)")
	assert.Error(t, err)
}

func TestParseUnbalancedParens(t *testing.T) {
	c := cache.NewCache()
	_, err := parseExpression(c, "(x + 1")
	assert.Error(t, err)
}

func TestParseCallTableHasNoUnaryBinaryMismatch(t *testing.T) {
	unary := map[string]bool{"sqrt": true, "square": true, "abs": true, "sin": true, "cos": true, "tan": true, "asin": true, "acos": true, "atan": true, "exp": true}
	for name, op := range callTable {
		if unary[name] {
			assert.Equal(t, 1, op.Arity(), name)
		} else {
			assert.Equal(t, 2, op.Arity(), name)
		}
	}
}

func TestParseInvalidNumber(t *testing.T) {
	_, err := lex("1.2.3")
	// "1.2.3" lexes as a single malformed numeric token; ParseFloat rejects it.
	assert.Error(t, err)
}

func TestParseAffineFoldsThroughParser(t *testing.T) {
	c := cache.NewCache()
	root, err := parseExpression(c, "2*x + 3")
	require.NoError(t, err)
	assert.Equal(t, opcode.AFFINE_VEC, c.Op(root))
}
