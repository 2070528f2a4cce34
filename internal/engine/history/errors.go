package history

import "errors"

// Errors returned by history operations.
var (
	// ErrMaxActions indicates the log was configured with a non-positive
	// capacity.
	ErrMaxActions = errors.New("max actions must be at least 1")
)
