// Package persist serializes a MEHR search's Hall of Fame to a
// self-describing artifact so a reader can reconstruct it without any
// out-of-band schema. The artifact is msgpack-encoded: a mode tag plus a
// flat list of entries, each carrying its rectangle's lower and upper
// bound vectors and its volume (written in both modes).
package persist
