package mehrconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkedion/mehr"
	"github.com/arkedion/mehr/mehrconfig"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadParsesAllFields(t *testing.T) {
	path := writeConfig(t, `
maxIterations: 500
threshold: 1.5
strategy: even
interiorOnly: true
workers: 4
verbose: true
`)

	cfg, err := mehrconfig.Load(path)
	require.NoError(t, err)
	require.Equal(t, 500, cfg.MaxIterations)
	require.NotNil(t, cfg.Threshold)
	require.InDelta(t, 1.5, *cfg.Threshold, 1e-9)
	require.Equal(t, "even", cfg.Strategy)
	require.True(t, cfg.InteriorOnly)
	require.Equal(t, 4, cfg.Workers)
	require.True(t, cfg.Verbose)

	strategy, err := cfg.ParseStrategy()
	require.NoError(t, err)
	require.Equal(t, mehr.Even, strategy)

	opts := cfg.Options()
	require.Len(t, opts, 1)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := mehrconfig.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.ErrorIs(t, err, mehrconfig.ErrLoadFailure)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "strategy: [this, is, not, a, scalar\n")
	_, err := mehrconfig.Load(path)
	require.ErrorIs(t, err, mehrconfig.ErrLoadFailure)
}

func TestParseStrategyRejectsUnknownName(t *testing.T) {
	path := writeConfig(t, "strategy: nonsense\n")
	cfg, err := mehrconfig.Load(path)
	require.NoError(t, err)

	_, err = cfg.ParseStrategy()
	require.ErrorIs(t, err, mehr.ErrInvalidStrategy)
}

func TestOptionsOmitsWorkersWhenUnset(t *testing.T) {
	path := writeConfig(t, "strategy: sequential\n")
	cfg, err := mehrconfig.Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Options())
}
