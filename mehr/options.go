package mehr

import (
	"runtime"

	"github.com/rs/zerolog"
)

// engineConfig holds everything an Option may tune, separate from Engine
// itself so construction stays a two-step gather-then-validate sequence.
type engineConfig struct {
	workers int
	logger  zerolog.Logger
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		workers: runtime.NumCPU(),
		logger:  zerolog.Nop(), // silent by default; callers opt in via WithLogger
	}
}

// Option customizes Engine construction. Option constructors validate
// and panic on nonsensical input (a programmer error, not a caller-data
// error) rather than threading an error return through every With* call.
type Option func(*engineConfig)

// WithWorkers overrides the worker pool size (default runtime.NumCPU()).
// Panics if n is not positive.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("mehr: WithWorkers: n must be > 0")
	}
	return func(c *engineConfig) {
		c.workers = n
	}
}

// WithLogger attaches a zerolog.Logger the search driver emits
// diagnostics through (batch summaries and worker failures). The default is a disabled logger, so a caller who
// never sets this pays nothing for logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
