package dasl

import "errors"

// Sentinel errors, declared as package-level vars so callers can compare
// with errors.Is.
var (
	// ErrNoPredecessor is returned by FindPredecessor when k is smaller
	// than every key currently in the index.
	ErrNoPredecessor = errors.New("dasl: no key less than target")

	// ErrEmpty is returned by operations that require at least one key
	// and find the index empty.
	ErrEmpty = errors.New("dasl: index is empty")
)
