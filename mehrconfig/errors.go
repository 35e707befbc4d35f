package mehrconfig

import "errors"

// ErrLoadFailure wraps any I/O or YAML-decoding failure encountered by
// Load, so callers can test for it with errors.Is regardless of which
// underlying cause (missing file, malformed YAML) produced it.
var ErrLoadFailure = errors.New("mehrconfig: failed to load configuration")
