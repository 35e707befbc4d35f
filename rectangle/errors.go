package rectangle

import "errors"

// Sentinel errors for rectangle operations. Every exported function that
// can fail returns one of these (optionally %w-wrapped with context);
// none of them panic on caller-supplied data.
var (
	// ErrDimensionMismatch indicates two rectangles, or a rectangle and a
	// point, have differing dimension k.
	ErrDimensionMismatch = errors.New("rectangle: dimension mismatch")

	// ErrInvalidBounds indicates a rectangle was built with L[i] > U[i]
	// for some dimension i.
	ErrInvalidBounds = errors.New("rectangle: lower bound exceeds upper bound")
)
