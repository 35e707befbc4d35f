package mehr

import (
	"math/rand"

	"github.com/arkedion/mehr/pointset"
	"github.com/arkedion/mehr/rectangle"
)

// tryPushUpper attempts to advance the upper face of dimension d by one
// projection notch. It is the shared face-push primitive all three
// expansion strategies are built from (spec §4.D).
//
// T = uNdxs[d] names the current candidate position in P_d. If any point
// bucketed at T is InWay along d, or T already sits at the last
// projection entry, the face locks at its current value and the call
// reports locked=true (hitBoundary distinguishes a point-obstruction lock
// from a data-boundary lock). Otherwise the face advances to T+1 and the
// rectangle's upper bound is updated immediately — not just once the face
// finally locks — because the Even and Random strategies interleave
// pushes across dimensions and need every axis's bound current at all
// times for InWay to test correctly against the other axes.
func tryPushUpper(data pointset.Matrix, idx *pointset.Index, rect rectangle.Rectangle, uNdxs []int, d int) (locked, hitBoundary bool) {
	t := uNdxs[d]
	blocked := false
	for _, pt := range idx.Bucket(d, t) {
		if rect.InWay(data.Row(pt), d) {
			blocked = true
			break
		}
	}

	atBoundary := t == idx.ProjectionLen(d)-1
	if blocked || atBoundary {
		rect.SetUpper(d, idx.ProjectionAt(d, t))

		return true, atBoundary
	}

	uNdxs[d] = t + 1
	rect.SetUpper(d, idx.ProjectionAt(d, t+1))

	return false, false
}

// tryPushLower mirrors tryPushUpper on the lower face, anchored at
// lNdxs[d] with the boundary at projection position 0.
func tryPushLower(data pointset.Matrix, idx *pointset.Index, rect rectangle.Rectangle, lNdxs []int, d int) (locked, hitBoundary bool) {
	t := lNdxs[d]
	blocked := false
	for _, pt := range idx.Bucket(d, t) {
		if rect.InWay(data.Row(pt), d) {
			blocked = true
			break
		}
	}

	atBoundary := t == 0
	if blocked || atBoundary {
		rect.SetLower(d, idx.ProjectionAt(d, t))

		return true, atBoundary
	}

	lNdxs[d] = t - 1
	rect.SetLower(d, idx.ProjectionAt(d, t-1))

	return false, false
}

// pushUpperUntilLocked repeatedly pushes the upper face of d until it
// locks, returning whether the final lock was against the data boundary.
func pushUpperUntilLocked(data pointset.Matrix, idx *pointset.Index, rect rectangle.Rectangle, uNdxs []int, d int) bool {
	for {
		locked, hitBoundary := tryPushUpper(data, idx, rect, uNdxs, d)
		if locked {
			return hitBoundary
		}
	}
}

// pushLowerUntilLocked mirrors pushUpperUntilLocked on the lower face.
func pushLowerUntilLocked(data pointset.Matrix, idx *pointset.Index, rect rectangle.Rectangle, lNdxs []int, d int) bool {
	for {
		locked, hitBoundary := tryPushLower(data, idx, rect, lNdxs, d)
		if locked {
			return hitBoundary
		}
	}
}

// expandFunc is the shared contract every expansion strategy implements:
// grow seed in place using the upper/lower projection-position vectors
// the seed generator produced, and report whether every locked face
// locked against a point rather than the data's extreme value.
type expandFunc func(data pointset.Matrix, idx *pointset.Index, seed rectangle.Rectangle, uNdxs, lNdxs []int, rng *rand.Rand, interiorOnly bool) (rectangle.Rectangle, bool)

// strategyFunc dispatches on Strategy, a tagged switch rather than a
// virtual method on Rectangle (spec §9's polymorphic-strategy note).
func strategyFunc(s Strategy) expandFunc {
	switch s {
	case Sequential:
		return expandSequential
	case Even:
		return expandEven
	case Random:
		return expandRandom
	default:
		panic("mehr: strategyFunc: unreachable, strategy validated at NewEngine")
	}
}
