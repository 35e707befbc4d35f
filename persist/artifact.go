package persist

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one Hall of Fame rectangle: its bound vectors, each of length
// k, and its volume. Volume is meaningful in threshold mode and carried
// (but unused for ordering) in top mode, so a reader never has to
// recompute it.
type Entry struct {
	L      []float64 `msgpack:"l"`
	U      []float64 `msgpack:"u"`
	Volume float64   `msgpack:"volume"`
}

// Mode names which admission policy produced the entries, for a reader
// that wants to distinguish a threshold-mode run (unordered, deduplicated
// by key) from a top-mode run (ordered, strictly increasing volume).
type Mode string

const (
	ThresholdMode Mode = "threshold"
	TopMode       Mode = "top"
)

// Artifact is the full, self-describing snapshot written after every
// search batch.
type Artifact struct {
	Mode    Mode    `msgpack:"mode"`
	Entries []Entry `msgpack:"entries"`
}

// Save msgpack-encodes artifact and writes it to path, replacing any
// existing file. Returns ErrPersistenceFailure (wrapping the underlying
// cause) on any marshal or write error.
func Save(path string, artifact Artifact) error {
	data, err := msgpack.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("Save: encode: %w: %w", ErrPersistenceFailure, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save: write %s: %w: %w", path, ErrPersistenceFailure, err)
	}

	return nil
}

// Load reads and msgpack-decodes the artifact at path, reconstructing the
// full Hall of Fame from the file alone.
func Load(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("Load: read %s: %w: %w", path, ErrPersistenceFailure, err)
	}

	var artifact Artifact
	if err := msgpack.Unmarshal(data, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("Load: decode %s: %w: %w", path, ErrPersistenceFailure, err)
	}

	return artifact, nil
}
