package pointset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkedion/mehr/pointset"
)

func cubeCorners() [][]float64 {
	return [][]float64{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
}

func TestNewMatrixRejectsEmpty(t *testing.T) {
	_, err := pointset.NewMatrix(nil)
	require.ErrorIs(t, err, pointset.ErrEmptyDataset)

	_, err = pointset.NewMatrix([][]float64{{}})
	require.ErrorIs(t, err, pointset.ErrEmptyDataset)
}

func TestNewMatrixRejectsRagged(t *testing.T) {
	_, err := pointset.NewMatrix([][]float64{{0, 1}, {0}})
	require.ErrorIs(t, err, pointset.ErrRaggedRows)
}

func TestNewMatrixRejectsNonFinite(t *testing.T) {
	_, err := pointset.NewMatrix([][]float64{{math.NaN(), 1}})
	require.ErrorIs(t, err, pointset.ErrNonFinite)

	_, err = pointset.NewMatrix([][]float64{{math.Inf(1), 1}})
	require.ErrorIs(t, err, pointset.ErrNonFinite)
}

func TestMatrixRowAndColumn(t *testing.T) {
	m, err := pointset.NewMatrix(cubeCorners())
	require.NoError(t, err)
	require.Equal(t, 8, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []float64{0, 0, 0}, m.Row(0))
	require.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, m.Column(0))
}

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := pointset.Build(pointset.Matrix{})
	require.ErrorIs(t, err, pointset.ErrEmptyDataset)
}

func TestBuildProjectionsSortedAndDeduped(t *testing.T) {
	m, err := pointset.NewMatrix([][]float64{{3}, {1}, {1}, {2}})
	require.NoError(t, err)
	idx, err := pointset.Build(m)
	require.NoError(t, err)

	require.Equal(t, 3, idx.ProjectionLen(0))
	require.Equal(t, 1.0, idx.ProjectionAt(0, 0))
	require.Equal(t, 2.0, idx.ProjectionAt(0, 1))
	require.Equal(t, 3.0, idx.ProjectionAt(0, 2))
	require.Equal(t, 1.0, idx.Low(0))
	require.Equal(t, 3.0, idx.High(0))
}

func TestBuildBucketsCoverEveryPoint(t *testing.T) {
	m, err := pointset.NewMatrix([][]float64{{3}, {1}, {1}, {2}})
	require.NoError(t, err)
	idx, err := pointset.Build(m)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for pos := 0; pos < idx.ProjectionLen(0); pos++ {
		for _, pt := range idx.Bucket(0, pos) {
			require.False(t, seen[pt], "point %d appears in more than one bucket", pt)
			seen[pt] = true
		}
	}
	require.Len(t, seen, m.Rows())
}

func TestSearchSorted(t *testing.T) {
	m, err := pointset.NewMatrix([][]float64{{1}, {3}, {5}})
	require.NoError(t, err)
	idx, err := pointset.Build(m)
	require.NoError(t, err)

	require.Equal(t, 0, idx.SearchSorted(0, 0))
	require.Equal(t, 1, idx.SearchSorted(0, 2))
	require.Equal(t, 2, idx.SearchSorted(0, 4))
	require.Equal(t, 3, idx.SearchSorted(0, 6))
	// exact match lands at its own position (side="left").
	require.Equal(t, 1, idx.SearchSorted(0, 3))
}
