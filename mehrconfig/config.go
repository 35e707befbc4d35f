package mehrconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arkedion/mehr"
)

// Config is the YAML-loadable shape of a search's parameters: the
// NewEngine arguments (Strategy, InteriorOnly, Workers), the Search
// arguments (MaxIterations, Threshold, Verbose), and nothing else —
// mehrconfig does no flag parsing and knows nothing about how a caller's
// point cloud is loaded.
type Config struct {
	MaxIterations int      `yaml:"maxIterations"`
	Threshold     *float64 `yaml:"threshold"`
	Strategy      string   `yaml:"strategy"`
	InteriorOnly  bool     `yaml:"interiorOnly"`
	Workers       int      `yaml:"workers"`
	Verbose       bool     `yaml:"verbose"`
}

// Load reads and YAML-decodes the Config at path. It does not validate
// Strategy; call ParseStrategy to do that at the point NewEngine is
// actually constructed.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w: %w", path, err, ErrLoadFailure)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("Load(%q): %w: %w", path, err, ErrLoadFailure)
	}

	return &cfg, nil
}

// ParseStrategy resolves c.Strategy into a mehr.Strategy, per
// mehr.ParseStrategy's own rules (and its own ErrInvalidStrategy on a
// bad name).
func (c *Config) ParseStrategy() (mehr.Strategy, error) {
	return mehr.ParseStrategy(c.Strategy)
}

// Options translates the engine-construction-time fields of c into
// mehr.Options. Strategy and InteriorOnly are NewEngine's own positional
// arguments, not Options, so they are not included here — callers
// resolve them via ParseStrategy and c.InteriorOnly directly.
func (c *Config) Options() []mehr.Option {
	var opts []mehr.Option
	if c.Workers > 0 {
		opts = append(opts, mehr.WithWorkers(c.Workers))
	}

	return opts
}
