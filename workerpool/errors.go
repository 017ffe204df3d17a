package workerpool

import "errors"

// ErrMismatchedLengths is returned when the X, Y, Z input slices passed to
// EvaluateTiles do not all have the same length.
var ErrMismatchedLengths = errors.New("workerpool: x, y, z must have equal length")
