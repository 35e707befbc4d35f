package mehr

import (
	"math/rand"

	"github.com/arkedion/mehr/pointset"
	"github.com/arkedion/mehr/rectangle"
)

// expandEven cycles through a fixed random dimension order, and at each
// dimension flips a coin to decide whether to attempt a single upper or
// lower push, until every one of the 2k faces has locked (or, under
// interior-only, until the rectangle is known to not be interior).
// Because no axis is ever allowed to sprint ahead of the others, this
// strategy tends to produce rectangles with comparable widths across all
// dimensions. O(k^2*n).
func expandEven(data pointset.Matrix, idx *pointset.Index, seed rectangle.Rectangle, uNdxs, lNdxs []int, rng *rand.Rand, interiorOnly bool) (rectangle.Rectangle, bool) {
	k := idx.Dim()
	order := rng.Perm(k)
	uLocked := make([]bool, k)
	lLocked := make([]bool, k)
	interior := true

	allLocked := func() bool {
		for d := 0; d < k; d++ {
			if !uLocked[d] || !lLocked[d] {
				return false
			}
		}

		return true
	}

	for !allLocked() && (interior || !interiorOnly) {
		for _, d := range order {
			coin := rng.Intn(2)

			switch {
			case coin == 1 && !uLocked[d]:
				locked, hitBoundary := tryPushUpper(data, idx, seed, uNdxs, d)
				if locked {
					uLocked[d] = true
					interior = interior && !hitBoundary
				}
			case coin == 0 && !lLocked[d]:
				locked, hitBoundary := tryPushLower(data, idx, seed, lNdxs, d)
				if locked {
					lLocked[d] = true
					interior = interior && !hitBoundary
				}
			}
			// A dimension whose chosen direction is already locked just
			// falls through and waits for its next turn in the fixed
			// cycle; every dimension is guaranteed to come up again.
		}
	}

	return seed, interior
}
