package opcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isurf/ivaluate/opcode"
)

func TestArity(t *testing.T) {
	cases := []struct {
		op   opcode.Op
		want int
	}{
		{opcode.VAR_X, 0},
		{opcode.VAR_Y, 0},
		{opcode.VAR_Z, 0},
		{opcode.CONST, 0},
		{opcode.AFFINE_VEC, 0},
		{opcode.SQUARE, 1},
		{opcode.SQRT, 1},
		{opcode.NEG, 1},
		{opcode.EXP, 1},
		{opcode.ADD, 2},
		{opcode.POW, 2},
		{opcode.NANFILL, 2},
		{opcode.DUMMY_A, 2},
		{opcode.DUMMY_B, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.op.Arity(), c.op.String())
	}
}

func TestCommutative(t *testing.T) {
	commutative := map[opcode.Op]bool{
		opcode.ADD: true, opcode.MUL: true, opcode.MIN: true, opcode.MAX: true,
		opcode.SUB: false, opcode.DIV: false, opcode.ATAN2: false, opcode.POW: false,
		opcode.NTH_ROOT: false, opcode.MOD: false, opcode.NANFILL: false,
	}
	for op, want := range commutative {
		assert.Equal(t, want, op.Commutative(), op.String())
	}
}

func TestOrdering(t *testing.T) {
	// Nullary < unary < binary.
	assert.True(t, opcode.VAR_X.Less(opcode.SQRT))
	assert.True(t, opcode.SQRT.Less(opcode.ADD))
	assert.False(t, opcode.ADD.Less(opcode.VAR_X))

	// CONST sorts before every other nullary opcode.
	for _, other := range []opcode.Op{opcode.VAR_X, opcode.VAR_Y, opcode.VAR_Z, opcode.AFFINE_VEC} {
		assert.True(t, opcode.CONST.Less(other), "CONST should precede %s", other)
		assert.False(t, other.Less(opcode.CONST), "%s should not precede CONST", other)
	}
}

func TestValid(t *testing.T) {
	assert.False(t, opcode.INVALID.Valid())
	assert.False(t, opcode.LAST_OP.Valid())
	assert.True(t, opcode.ADD.Valid())
	assert.True(t, opcode.VAR_X.Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "ADD", opcode.ADD.String())
	assert.Equal(t, "UNKNOWN_OP", opcode.Op(200).String())
}
