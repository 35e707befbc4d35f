// Package mehrconfig lets a caller drive a search from a YAML file
// instead of hand-built mehr.Options, keeping declarative construction
// separate from the engine itself. Load reads and decodes a Config
// without validating it (ParseStrategy checks the strategy name);
// Options translates its engine-level fields into the mehr.Option values
// NewEngine expects.
package mehrconfig
