package mehr

import (
	"math/rand"

	"github.com/arkedion/mehr/pointset"
	"github.com/arkedion/mehr/rectangle"
)

// newSeed produces a guaranteed-empty micro-rectangle around a uniformly
// random point in the data's bounding box, plus the upper/lower
// projection-position vectors the expansion strategies grow from.
//
// For each dimension i, a value r is drawn uniformly from [low_i, high_i]
// and located in P_i via binary search, clamped to [1, |P_i|-1]; U[i] and
// L[i] become the two projection entries straddling r. Because those two
// values are adjacent distinct observations in dimension i, no data point
// can fall strictly between them on that axis, so the seed's interior is
// guaranteed empty (the empty-seed property) regardless of what the other
// dimensions do.
//
// A dimension with only one distinct observed value (|P_i|==1) has
// nothing to straddle; both faces are pinned to that single value (both
// position vectors at 0), a degenerate but still-empty seed on that axis.
// The first push of either face then locks at once against the data
// boundary.
func newSeed(idx *pointset.Index, rng *rand.Rand) (seed rectangle.Rectangle, uNdxs, lNdxs []int) {
	k := idx.Dim()
	seed = rectangle.New(k)
	uNdxs = make([]int, k)
	lNdxs = make([]int, k)

	for i := 0; i < k; i++ {
		if idx.ProjectionLen(i) == 1 {
			uNdxs[i] = 0
			lNdxs[i] = 0
			seed.SetUpper(i, idx.ProjectionAt(i, 0))
			seed.SetLower(i, idx.ProjectionAt(i, 0))

			continue
		}

		r := idx.Low(i) + rng.Float64()*(idx.High(i)-idx.Low(i))
		t := idx.SearchSorted(i, r)
		if t < 1 {
			t = 1
		}
		if last := idx.ProjectionLen(i) - 1; t > last {
			t = last
		}

		uNdxs[i] = t
		lNdxs[i] = t - 1
		seed.SetUpper(i, idx.ProjectionAt(i, t))
		seed.SetLower(i, idx.ProjectionAt(i, t-1))
	}

	return seed, uNdxs, lNdxs
}
