package matrix

import "errors"

// Sentinel errors for the matrix package.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates two matrices have incompatible shapes for an operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a zero pivot is encountered during LU decomposition or inversion.
	ErrSingular = errors.New("matrix: singular matrix")
)
