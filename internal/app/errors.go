package app

import "errors"

// Errors returned by application operations.
var (
	// ErrQuit indicates the user requested a normal exit.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")
)
