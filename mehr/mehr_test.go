package mehr_test

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkedion/mehr"
	"github.com/arkedion/mehr/pointset"
)

// chdir switches into dir for the duration of the test, restoring the
// working directory on cleanup. Search writes its persistence artifact
// relative to the current directory, so tests isolate it with a temp dir.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func randomCloud(t *testing.T, n, k int, seed int64) pointset.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, k)
		for d := range row {
			row[d] = rng.Float64() * 10
		}
		rows[i] = row
	}
	m, err := pointset.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

func TestNewEngineRejectsEmptyDataset(t *testing.T) {
	_, err := mehr.NewEngine(pointset.Matrix{}, mehr.Sequential, false)
	require.ErrorIs(t, err, pointset.ErrEmptyDataset)
}

func TestNewEngineRejectsInvalidStrategy(t *testing.T) {
	data := randomCloud(t, 20, 2, 1)
	_, err := mehr.NewEngine(data, mehr.Strategy(99), false)
	require.ErrorIs(t, err, mehr.ErrInvalidStrategy)
}

func TestSearchRejectsNonPositiveIteration(t *testing.T) {
	data := randomCloud(t, 20, 2, 1)
	eng, err := mehr.NewEngine(data, mehr.Sequential, false)
	require.NoError(t, err)

	_, err = eng.Search(context.Background(), 0, nil, false)
	require.ErrorIs(t, err, mehr.ErrNonPositiveIteration)
}

func TestSearchTopModeVolumesStrictlyIncrease(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	data := randomCloud(t, 150, 3, 2)
	eng, err := mehr.NewEngine(data, mehr.Even, false, mehr.WithWorkers(2))
	require.NoError(t, err)

	hof, err := eng.Search(context.Background(), 40, nil, false)
	require.NoError(t, err)
	require.False(t, hof.ThresholdMode())

	rects := hof.Rectangles()
	require.NotEmpty(t, rects)
	prev := -1.0
	for _, r := range rects {
		require.Greater(t, r.Volume(), prev)
		prev = r.Volume()
	}
}

func TestSearchThresholdModeDedupesAndClearsBar(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	data := randomCloud(t, 150, 3, 3)
	eng, err := mehr.NewEngine(data, mehr.Random, false, mehr.WithWorkers(2))
	require.NoError(t, err)

	threshold := 0.0
	hof, err := eng.Search(context.Background(), 40, &threshold, false)
	require.NoError(t, err)
	require.True(t, hof.ThresholdMode())

	seen := make(map[string]bool)
	for _, r := range hof.Rectangles() {
		require.Greater(t, r.Volume(), threshold)
		require.False(t, seen[r.Key()], "threshold-mode Hall of Fame holds a duplicate key")
		seen[r.Key()] = true
	}
}

func TestSearchHonorsContextCancellationAtBatchBoundary(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	data := randomCloud(t, 150, 3, 4)
	eng, err := mehr.NewEngine(data, mehr.Sequential, false, mehr.WithWorkers(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hof, err := eng.Search(ctx, 1000, nil, false)
	require.Error(t, err)
	require.NotNil(t, hof)
}

func TestSearchInteriorOnlyRejectsBoundaryRectangles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	const n, k = 150, 3
	rng := rand.New(rand.NewSource(5))
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, k)
		for d := range row {
			row[d] = rng.Float64() * 10
		}
		rows[i] = row
	}
	data, err := pointset.NewMatrix(rows)
	require.NoError(t, err)

	low := make([]float64, k)
	high := make([]float64, k)
	copy(low, rows[0])
	copy(high, rows[0])
	for _, row := range rows {
		for d := 0; d < k; d++ {
			if row[d] < low[d] {
				low[d] = row[d]
			}
			if row[d] > high[d] {
				high[d] = row[d]
			}
		}
	}

	eng, err := mehr.NewEngine(data, mehr.Sequential, true, mehr.WithWorkers(2))
	require.NoError(t, err)

	hof, err := eng.Search(context.Background(), 40, nil, false)
	require.NoError(t, err)

	for _, r := range hof.Rectangles() {
		for d := 0; d < k; d++ {
			require.Greater(t, r.L()[d], low[d])
			require.Less(t, r.U()[d], high[d])
		}
	}
}

func TestEngineArtifactPersistenceFileExists(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	data := randomCloud(t, 100, 2, 6)
	eng, err := mehr.NewEngine(data, mehr.Even, false, mehr.WithWorkers(2))
	require.NoError(t, err)

	_, err = eng.Search(context.Background(), 20, nil, false)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "MEHRS_*"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "Search did not write a persistence artifact")
}
