package mehr

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/arkedion/mehr/persist"
	"github.com/arkedion/mehr/rectangle"
)

// workerResult is what one seed-and-expand task reports back to the
// driver.
type workerResult struct {
	rect     rectangle.Rectangle
	interior bool
}

// Search runs the batched, parallel MEHR search described by spec §4.E:
// repeatedly dispatch seed-and-expand tasks across the engine's worker
// pool, admit results into a Hall of Fame (threshold mode if threshold is
// non-nil, top mode otherwise), and persist the Hall of Fame after every
// batch, until maxItr consecutive trials (counted by c) fail to contribute
// a new rectangle.
//
// ctx is checked at batch boundaries only: a cancelled context stops the
// search after the in-flight batch finishes its barrier, so the returned
// Hall of Fame always reflects a whole number of admitted batches. The
// Hall of Fame gathered so far is returned alongside a non-nil error in
// that case, and on PersistenceFailure or ErrWorkerFailure — the caller
// decides whether "best effort so far" is good enough.
func (e *Engine) Search(ctx context.Context, maxItr int, threshold *float64, verbose bool) (*HallOfFame, error) {
	if maxItr <= 0 {
		return nil, fmt.Errorf("Search: %w", ErrNonPositiveIteration)
	}

	hof := newHallOfFame(threshold)
	strategy := strategyFunc(e.strategy)

	var bar *progressbar.ProgressBar
	if verbose {
		bar = progressbar.Default(int64(maxItr), "searching for MEHRs")
	}

	c := 0
	batches := 0
	for c < maxItr {
		select {
		case <-ctx.Done():
			return hof, fmt.Errorf("Search: cancelled after %d batches: %w", batches, ctx.Err())
		default:
		}

		batchSize := maxItr - c
		if cap := 10 * e.workers; cap < batchSize {
			batchSize = cap
		}

		results, err := e.runBatch(batchSize, strategy)
		if err != nil {
			e.logger.Error().Err(err).Int("batch", batches).Msg("worker failed")

			return hof, fmt.Errorf("Search: %w", err)
		}

		exterior := 0
		for _, res := range results {
			if !res.interior {
				exterior++
			}
			if hof.admit(res.rect, res.interior, e.interiorOnly) {
				c = 0
			} else {
				c++
			}
		}
		hof.recordSize()
		batches++

		if verbose {
			_ = bar.Set(c)
			pctExterior := 0.0
			if len(results) > 0 {
				pctExterior = float64(exterior) * 100.0 / float64(len(results))
			}
			e.logger.Info().
				Int("c", c).
				Int("maxItr", maxItr).
				Float64("pctExterior", pctExterior).
				Ints("last10HofSizes", lastN(hof.Sizes(), 10)).
				Int("batches", batches).
				Msg("batch complete")
		} else {
			e.logger.Debug().Int("c", c).Int("hofSize", hof.Len()).Msg("batch complete")
		}

		if err := e.persistHOF(hof); err != nil {
			return hof, fmt.Errorf("Search: %w", err)
		}
	}

	return hof, nil
}

// runBatch dispatches n independent seed-and-expand tasks across the
// engine's worker pool and blocks until every task completes (a barrier
// per batch, per spec §5): workers are read-only consumers of e.data and
// e.index, and results are collected into a slice only the calling
// goroutine touches once wg.Wait returns.
func (e *Engine) runBatch(n int, strategy expandFunc) ([]workerResult, error) {
	results := make([]workerResult, n)
	tasks := make(chan int, n)
	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)

	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for taskID := range tasks {
				e.runTask(workerID, taskID, strategy, results, errCh)
			}
		}(w)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// runTask executes a single seed-and-expand task, recovering from any
// panic and reporting it as ErrWorkerFailure instead of taking down the
// whole batch's goroutines uncontrolled.
func (e *Engine) runTask(workerID, taskID int, strategy expandFunc, results []workerResult, errCh chan<- error) {
	defer func() {
		if r := recover(); r != nil {
			errCh <- fmt.Errorf("task %d: %v: %w", taskID, r, ErrWorkerFailure)
		}
	}()

	rng := newWorkerRand(workerID, taskID)
	seed, uNdxs, lNdxs := newSeed(e.index, rng)
	rect, interior := strategy(e.data, e.index, seed, uNdxs, lNdxs, rng, e.interiorOnly)
	results[taskID] = workerResult{rect: rect, interior: interior}
}

// newWorkerRand seeds a *rand.Rand for one task from a mix of OS entropy,
// wall-clock time, and the (worker, task) identity, so distinct tasks
// never share a sequence even if dispatched in the same instant — a task
// must never inherit a parent's RNG state (spec §5).
func newWorkerRand(workerID, taskID int) *rand.Rand {
	var entropy [8]byte
	_, _ = cryptorand.Read(entropy[:])
	seed := int64(binary.LittleEndian.Uint64(entropy[:]))
	seed ^= time.Now().UnixNano()
	seed ^= int64(workerID) << 32
	seed ^= int64(taskID)

	return rand.New(rand.NewSource(seed))
}

// persistHOF snapshots hof to this engine's timestamped artifact path.
func (e *Engine) persistHOF(hof *HallOfFame) error {
	mode := persist.TopMode
	if hof.ThresholdMode() {
		mode = persist.ThresholdMode
	}

	entries := make([]persist.Entry, 0, hof.Len())
	if hof.ThresholdMode() {
		for _, entry := range hof.byKey {
			entries = append(entries, persist.Entry{L: entry.rect.L(), U: entry.rect.U(), Volume: entry.volume})
		}
	} else {
		for _, rect := range hof.ordered {
			entries = append(entries, persist.Entry{L: rect.L(), U: rect.U(), Volume: rect.Volume()})
		}
	}

	if err := persist.Save(e.artifactName(), persist.Artifact{Mode: mode, Entries: entries}); err != nil {
		return err
	}

	return nil
}

func lastN(s []int, n int) []int {
	if len(s) <= n {
		return s
	}

	return s[len(s)-n:]
}
