package persist

import "errors"

// ErrPersistenceFailure indicates writing or reading the Hall of Fame
// artifact failed. Surfaced to the caller; in-memory search state is
// unaffected by a failed Save.
var ErrPersistenceFailure = errors.New("persist: hall of fame artifact failure")
