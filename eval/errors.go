package eval

import "errors"

// Sentinel errors for the eval package (spec.md §7).
var (
	// ErrInvalidOperand is returned when evaluating POW/NTH_ROOT with a
	// non-degenerate exponent interval, or when a clause carries opcode.INVALID.
	ErrInvalidOperand = errors.New("eval: invalid operand for opcode")

	// ErrMalformedTree is returned by New when the tree's root cannot be
	// located among the compiled clauses.
	ErrMalformedTree = errors.New("eval: root not found among compiled clauses")

	// ErrUnbalancedStack is returned by Pop when called with push depth zero.
	ErrUnbalancedStack = errors.New("eval: pop with no matching push")
)
