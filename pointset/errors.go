package pointset

import "errors"

// Sentinel errors for pointset construction and access.
var (
	// ErrEmptyDataset indicates a Matrix with zero rows or zero columns.
	// Fatal at Engine construction (spec: EmptyDataset).
	ErrEmptyDataset = errors.New("pointset: dataset has zero points or zero dimensions")

	// ErrRaggedRows indicates NewMatrix received rows of differing length.
	ErrRaggedRows = errors.New("pointset: rows must all have the same length")

	// ErrNonFinite indicates a NaN or +/-Inf value in the input data.
	ErrNonFinite = errors.New("pointset: data must consist of finite values")

	// ErrIndexOutOfRange indicates a row/column access outside the
	// matrix's bounds (Matrix.At).
	ErrIndexOutOfRange = errors.New("pointset: index out of range")
)
