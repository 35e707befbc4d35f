// Package pointset holds the MEHR engine's view of the input data: an
// immutable n*k, row-major point-cloud Matrix, and the Index built over
// it — per-dimension sorted, duplicate-free projection tables with an
// inverse lookup from table position back to the point indices sharing
// that coordinate.
//
// Both types are built once and shared by reference across every search
// worker; neither is ever mutated after construction, so no locking is
// needed on the read path.
package pointset
