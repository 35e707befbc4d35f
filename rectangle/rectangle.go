package rectangle

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// emptyInterior is what IsEmpty consults; it only needs Contains, so it is
// declared as a minimal interface rather than importing the pointset
// package's concrete Matrix type, keeping rectangle free of a dependency
// edge back up to the data-cloud package.
type emptyInterior interface {
	Rows() int
	Row(i int) []float64
}

// Rectangle is an axis-aligned hyper-rectangle in k-dimensional space,
// described by lower bound L and upper bound U vectors with L[i] <= U[i]
// for every dimension i. The interior is the open box strictly between L
// and U; points lying exactly on a face are not contained.
//
// Rectangle is built once (New / NewFromBounds) and then, while still
// owned by a single expansion goroutine, grown face by face via SetLower /
// SetUpper. Once handed to the driver it must not be mutated further.
type Rectangle struct {
	l, u []float64
}

// New allocates a degenerate k-dimensional rectangle with all bounds at
// zero. The seed generator uses this only as scratch space before
// immediately assigning seed bounds; it is never returned to a caller
// as-is.
func New(k int) Rectangle {
	return Rectangle{l: make([]float64, k), u: make([]float64, k)}
}

// NewFromBounds builds a Rectangle from explicit bound vectors, copying
// both so the caller's slices remain theirs to mutate. Returns
// ErrDimensionMismatch if the vectors differ in length, ErrInvalidBounds
// if L[i] > U[i] for any i.
func NewFromBounds(l, u []float64) (Rectangle, error) {
	if len(l) != len(u) {
		return Rectangle{}, fmt.Errorf("NewFromBounds: %w", ErrDimensionMismatch)
	}
	for i := range l {
		if l[i] > u[i] {
			return Rectangle{}, fmt.Errorf("NewFromBounds: dim %d: %w", i, ErrInvalidBounds)
		}
	}
	lc := make([]float64, len(l))
	uc := make([]float64, len(u))
	copy(lc, l)
	copy(uc, u)

	return Rectangle{l: lc, u: uc}, nil
}

// Dim returns the rectangle's dimension k.
func (r Rectangle) Dim() int { return len(r.l) }

// L returns the lower bound vector. The returned slice is the rectangle's
// own backing storage; callers must treat it as read-only.
func (r Rectangle) L() []float64 { return r.l }

// U returns the upper bound vector, read-only per the same convention as L.
func (r Rectangle) U() []float64 { return r.u }

// SetLower sets the lower bound of dimension d. Used by the expansion
// strategies while growing a seed; never called once a Rectangle has been
// admitted to a Hall of Fame.
func (r Rectangle) SetLower(d int, v float64) { r.l[d] = v }

// SetUpper sets the upper bound of dimension d, mirroring SetLower.
func (r Rectangle) SetUpper(d int, v float64) { r.u[d] = v }

// Volume returns the product of the rectangle's per-dimension widths.
// A degenerate rectangle (some width == 0) has volume 0, which is legal.
func (r Rectangle) Volume() float64 {
	v := 1.0
	for i := range r.l {
		v *= r.u[i] - r.l[i]
	}

	return v
}

// Contains reports whether p lies strictly inside the rectangle: every
// coordinate strictly between the corresponding L and U. A point sitting
// exactly on any face is not contained.
func (r Rectangle) Contains(p []float64) bool {
	for i := range r.l {
		if !(r.l[i] < p[i] && p[i] < r.u[i]) {
			return false
		}
	}

	return true
}

// InWay reports whether p would obstruct a further outward push of the
// face normal to dimension d: true iff p lies strictly inside the
// rectangle along every dimension other than d. Dimension d itself is
// exempt, and a point lying exactly on a non-d face does not obstruct the
// push — this mirrors Contains's strict-interior test and must stay
// strict; a non-strict "fix" here silently shrinks every returned
// rectangle.
func (r Rectangle) InWay(p []float64, d int) bool {
	for i := range r.l {
		if i == d {
			continue
		}
		if !(r.l[i] < p[i] && p[i] < r.u[i]) {
			return false
		}
	}

	return true
}

// Intersect computes the pointwise intersection of r and other: L =
// max(r.L, other.L), U = min(r.U, other.U). It returns ok == false (no
// error) when the resulting box has a negative width on some axis, and
// ErrDimensionMismatch when the two rectangles have different k.
func (r Rectangle) Intersect(other Rectangle) (result Rectangle, ok bool, err error) {
	if r.Dim() != other.Dim() {
		return Rectangle{}, false, fmt.Errorf("Intersect: %w", ErrDimensionMismatch)
	}

	k := r.Dim()
	l := make([]float64, k)
	u := make([]float64, k)
	for i := 0; i < k; i++ {
		l[i] = math.Max(r.l[i], other.l[i])
		u[i] = math.Min(r.u[i], other.u[i])
		if u[i]-l[i] < 0 {
			return Rectangle{}, false, nil
		}
	}

	return Rectangle{l: l, u: u}, true, nil
}

// IsEmpty reports whether no point in data lies in the rectangle's
// interior. O(k*n).
func (r Rectangle) IsEmpty(data emptyInterior) bool {
	n := data.Rows()
	for i := 0; i < n; i++ {
		if r.Contains(data.Row(i)) {
			return false
		}
	}

	return true
}

// Equal reports componentwise equality of L and U.
func (r Rectangle) Equal(other Rectangle) bool {
	if r.Dim() != other.Dim() {
		return false
	}
	for i := range r.l {
		if r.l[i] != other.l[i] || r.u[i] != other.u[i] {
			return false
		}
	}

	return true
}

// bytesImage writes the raw bit patterns of L then U into a single byte
// slice, the canonical byte image Key and Hash are both derived from.
func (r Rectangle) bytesImage() []byte {
	buf := make([]byte, 0, 16*len(r.l))
	var tmp [8]byte
	for _, v := range r.l {
		if v == 0 {
			v = 0 // -0.0 == 0.0 under Equal, so both map to the same bits
		}
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		buf = append(buf, tmp[:]...)
	}
	for _, v := range r.u {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		buf = append(buf, tmp[:]...)
	}

	return buf
}

// Key returns a content-addressed, comparable map key derived from the
// exact byte image of L and U. Two rectangles with componentwise equal
// bounds always produce equal keys and vice versa, which is what
// threshold-mode Hall of Fame deduplication relies on (map keys compare
// exactly, so this never suffers hash collisions the way a fixed-width
// hash would).
func (r Rectangle) Key() string {
	return string(r.bytesImage())
}

// Hash returns a 64-bit FNV-1a digest of the same byte image Key uses.
// a.Equal(b) implies a.Hash() == b.Hash(); the converse is not guaranteed
// (Hash alone is not used for deduplication — Key is).
func (r Rectangle) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(r.bytesImage())

	return h.Sum64()
}

// String renders the rectangle as "[l0 l1 ...]..[u0 u1 ...]".
func (r Rectangle) String() string {
	return fmt.Sprintf("%v..%v", r.l, r.u)
}
