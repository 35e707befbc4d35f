package pointset

import "sort"

// Index is the projection index built once over a Matrix: for every
// dimension, a strictly ascending, duplicate-free vector of the values
// observed in that dimension, plus an inverse map from a position in that
// vector back to the indices of every point sharing the value at that
// position. It also caches the data's bounding box (lows/highs), the
// per-dimension min/max, which are just the first and last projection
// entries.
//
// Index is built once at engine construction and never mutated again;
// every search worker reads it through the same pointer without any
// synchronization.
type Index struct {
	k           int
	projections [][]float64 // projections[d] is ascending and duplicate-free
	buckets     []map[int][]int
	lows, highs []float64
}

// Build constructs an Index over data. O(k*n*log(n)) time, O(k*n) space.
// Returns ErrEmptyDataset if data has zero rows or columns (mirrors the
// same guard at engine construction, so a caller driving pointset
// directly gets the same eager validation).
func Build(data Matrix) (*Index, error) {
	if data.Rows() == 0 || data.Cols() == 0 {
		return nil, ErrEmptyDataset
	}

	k := data.Cols()
	idx := &Index{
		k:           k,
		projections: make([][]float64, k),
		buckets:     make([]map[int][]int, k),
		lows:        make([]float64, k),
		highs:       make([]float64, k),
	}

	for d := 0; d < k; d++ {
		col := data.Column(d)

		// Pair each value with its originating point index, sort by
		// value, then walk once to deduplicate and bucket.
		type pair struct {
			v   float64
			pt  int
		}
		pairs := make([]pair, len(col))
		for i, v := range col {
			pairs[i] = pair{v: v, pt: i}
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

		proj := make([]float64, 0, len(pairs))
		bucket := make(map[int][]int)
		for _, p := range pairs {
			if len(proj) == 0 || proj[len(proj)-1] != p.v {
				proj = append(proj, p.v)
			}
			pos := len(proj) - 1
			bucket[pos] = append(bucket[pos], p.pt)
		}

		idx.projections[d] = proj
		idx.buckets[d] = bucket
		idx.lows[d] = proj[0]
		idx.highs[d] = proj[len(proj)-1]
	}

	return idx, nil
}

// Dim returns k.
func (idx *Index) Dim() int { return idx.k }

// ProjectionLen returns |P_d|, the number of unique values observed in
// dimension d.
func (idx *Index) ProjectionLen(d int) int { return len(idx.projections[d]) }

// ProjectionAt returns P_d[pos], the pos'th unique value in dimension d.
func (idx *Index) ProjectionAt(d, pos int) float64 { return idx.projections[d][pos] }

// Bucket returns the indices of every point whose d-th coordinate equals
// P_d[pos]. The returned slice is shared, read-only backing storage.
func (idx *Index) Bucket(d, pos int) []int { return idx.buckets[d][pos] }

// SearchSorted returns the position at which v would be inserted into
// P_d to keep it sorted (the first index i such that P_d[i] >= v),
// equivalent to numpy.searchsorted(P_d, v, side="left").
func (idx *Index) SearchSorted(d int, v float64) int {
	proj := idx.projections[d]

	return sort.Search(len(proj), func(i int) bool { return proj[i] >= v })
}

// Low returns the data's minimum observed value in dimension d.
func (idx *Index) Low(d int) float64 { return idx.lows[d] }

// High returns the data's maximum observed value in dimension d.
func (idx *Index) High(d int) float64 { return idx.highs[d] }
