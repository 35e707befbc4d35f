package mehr

import "errors"

// Sentinel errors for engine construction and search. Input-validation
// errors are raised eagerly, at the earliest call (NewEngine or Search);
// duplicate rectangles and empty batches are never errors, they drive the
// convergence counter c instead.
var (
	// ErrInvalidStrategy indicates an unrecognized Strategy value was
	// passed to NewEngine. Fatal at construction.
	ErrInvalidStrategy = errors.New("mehr: unrecognized expansion strategy")

	// ErrNonPositiveIteration indicates Search was called with maxItr <= 0.
	// Fatal at the call.
	ErrNonPositiveIteration = errors.New("mehr: maxItr must be > 0")

	// ErrWorkerFailure indicates a search worker raised an unexpected
	// condition (a panic recovered at the task boundary). Fatal to the
	// driver: Search returns immediately with whatever Hall of Fame was
	// assembled from prior, fully-admitted batches.
	ErrWorkerFailure = errors.New("mehr: worker failed")
)
