package plot

import "errors"

// ErrDimensionMismatch is returned when the data's column count disagrees
// with the rectangle's dimension, or featureNames has the wrong length.
var ErrDimensionMismatch = errors.New("plot: dimension mismatch")
