package mehr

import (
	"math"
	"math/rand"

	"github.com/arkedion/mehr/pointset"
	"github.com/arkedion/mehr/rectangle"
)

// direction identifies which face a (dimension, direction) pair in the
// expandRandom work queue refers to.
type direction int

const (
	down direction = iota
	up
)

type dimDir struct {
	d   int
	dir direction
}

// expandRandom maintains a multiset of (dimension, direction) pairs,
// initially all 2k combinations. It repeatedly samples a pair uniformly,
// draws a burst length floor(|N(0,1)|)+1, and attempts that many
// consecutive pushes of that face; if the face locks mid-burst the pair
// is retired from the multiset. Continues until the multiset is empty
// (or, under interior-only, until the rectangle is known to not be
// interior).
func expandRandom(data pointset.Matrix, idx *pointset.Index, seed rectangle.Rectangle, uNdxs, lNdxs []int, rng *rand.Rand, interiorOnly bool) (rectangle.Rectangle, bool) {
	k := idx.Dim()
	pairs := make([]dimDir, 0, 2*k)
	for d := 0; d < k; d++ {
		pairs = append(pairs, dimDir{d: d, dir: down}, dimDir{d: d, dir: up})
	}
	interior := true

	for len(pairs) > 0 && (interior || !interiorOnly) {
		r := rng.Intn(len(pairs))
		pick := pairs[r]
		steps := int(math.Abs(rng.NormFloat64())) + 1

		locked := false
		hitBoundary := false
		for i := 0; i < steps && !locked; i++ {
			if pick.dir == up {
				locked, hitBoundary = tryPushUpper(data, idx, seed, uNdxs, pick.d)
			} else {
				locked, hitBoundary = tryPushLower(data, idx, seed, lNdxs, pick.d)
			}
		}

		if locked {
			pairs = append(pairs[:r], pairs[r+1:]...)
			interior = interior && !hitBoundary
		}
	}

	return seed, interior
}
