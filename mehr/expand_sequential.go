package mehr

import (
	"math/rand"

	"github.com/arkedion/mehr/pointset"
	"github.com/arkedion/mehr/rectangle"
)

// expandSequential grows seed one dimension at a time, in a uniformly
// random dimension order: for each dimension, push the upper face until
// it locks, then the lower face until it locks, then move on. Because
// the rectangle starts small and narrow, early dimensions tend to grow
// unobstructed and later ones get squeezed — this strategy tends to
// produce long, narrow rectangles. O(k^2*n).
func expandSequential(data pointset.Matrix, idx *pointset.Index, seed rectangle.Rectangle, uNdxs, lNdxs []int, rng *rand.Rand, interiorOnly bool) (rectangle.Rectangle, bool) {
	interior := true
	order := rng.Perm(idx.Dim())

	for _, d := range order {
		if interiorOnly && !interior {
			break
		}

		hitBoundary := pushUpperUntilLocked(data, idx, seed, uNdxs, d)
		interior = interior && !hitBoundary

		hitBoundary = pushLowerUntilLocked(data, idx, seed, lNdxs, d)
		interior = interior && !hitBoundary
	}

	return seed, interior
}
