package mehr

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arkedion/mehr/pointset"
)

// Strategy selects which expansion procedure grows a seed into a maximal
// empty rectangle. Dispatch is a tagged switch over this enum, not a
// runtime method lookup on the rectangle — the three strategies are
// functions, not rectangle behaviors.
type Strategy int

const (
	// Sequential expands one dimension fully before moving to the next,
	// in a random dimension order, producing long, narrow rectangles.
	Sequential Strategy = iota
	// Even cycles through a fixed random dimension order, nudging one
	// face at a time, producing rectangles of comparable width on every
	// axis.
	Even
	// Random repeatedly bursts a randomly chosen (dimension, direction)
	// pair forward by a randomly drawn step count.
	Random
)

// String renders the strategy name, the same name ParseStrategy accepts.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Even:
		return "even"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name ("sequential", "even", "random") to
// its Strategy value. Returns ErrInvalidStrategy for anything else.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "sequential":
		return Sequential, nil
	case "even":
		return Even, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrInvalidStrategy)
	}
}

// Engine holds the immutable, shared state of a MEHR search: the point
// cloud, its projection index, and the construction-time parameters that
// never change across a Search call. An Engine is safe for concurrent
// Search calls to share the read-only state (data, index); it does not,
// however, support two Search calls running at once (each owns its own
// Hall of Fame and batch loop).
type Engine struct {
	data         pointset.Matrix
	index        *pointset.Index
	strategy     Strategy
	interiorOnly bool
	workers      int
	logger       zerolog.Logger
	constructed  time.Time
}

// NewEngine builds an Engine over data with the given expansion strategy
// and interior-only policy. The projection index is built once here and
// shared, unsynchronized, by every future worker. Returns
// pointset.ErrEmptyDataset if data has zero points or dimensions, and
// ErrInvalidStrategy if strategy is not one of Sequential, Even, Random.
func NewEngine(data pointset.Matrix, strategy Strategy, interiorOnly bool, opts ...Option) (*Engine, error) {
	if strategy != Sequential && strategy != Even && strategy != Random {
		return nil, fmt.Errorf("NewEngine: %w", ErrInvalidStrategy)
	}

	index, err := pointset.Build(data)
	if err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		data:         data,
		index:        index,
		strategy:     strategy,
		interiorOnly: interiorOnly,
		workers:      cfg.workers,
		logger:       cfg.logger,
		constructed:  time.Now(),
	}, nil
}

// Dim returns the dimension k of the engine's point cloud.
func (e *Engine) Dim() int { return e.data.Cols() }

// artifactName returns the persistence file name for this engine's
// construction-time timestamp, per spec: an ISO-like timestamp with
// spaces replaced by underscores, prefixed "MEHRS_".
func (e *Engine) artifactName() string {
	ts := e.constructed.Format("2006-01-02 15:04:05.999999999")
	ts = replaceSpaces(ts)

	return "MEHRS_" + ts
}

func replaceSpaces(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == ' ' {
			b[i] = '_'
		}
	}

	return string(b)
}
