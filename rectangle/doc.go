// Package rectangle defines the axis-aligned hyper-rectangle type the MEHR
// engine manipulates: a pair of k-dimensional bound vectors plus the
// geometric predicates (volume, interior containment, intersection, the
// in-way obstruction test) the expansion strategies and driver rely on.
//
// A Rectangle is immutable from the caller's perspective once built: all
// methods are read-only except the SetLower/SetUpper mutators the mehr
// package uses while growing a seed. Two rectangles with componentwise
// equal bounds compare equal and hash equal (Key), which threshold-mode
// deduplication in mehr depends on.
package rectangle
