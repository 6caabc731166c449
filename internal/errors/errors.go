// Package errors provides centralized error definitions and classification
// for the sigmaterm codebase.
//
// The package defines sentinel errors for the conditions the engine treats
// specially, domain error types that carry pane context, and classification
// helpers. Every failure in the engine is local and non-fatal: operations
// either return a usable result or degrade as their contract specifies, so
// callers mostly use these types for logging and for the few decisions the
// spec requires (capacity rejection, would-block reads).
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors.
var (
	// ErrCapacity is returned by the multiplexer when adding a pane would
	// exceed the maximum pane count. It is a rejection, never a crash.
	ErrCapacity = New("pane capacity reached")

	// ErrNoSuchPane indicates that a slot index does not address a live pane.
	ErrNoSuchPane = New("no such pane")

	// ErrSpawnFailed indicates that the child shell could not be started.
	// The owning session stays valid but inert.
	ErrSpawnFailed = New("shell spawn failed")

	// ErrNotRunning indicates an operation that requires a live child
	// process was invoked on an inert or terminated session.
	ErrNotRunning = New("child process not running")

	// ErrTerminate indicates that the child did not exit cleanly on
	// termination. Resources are released regardless.
	ErrTerminate = New("child did not exit cleanly")
)

// SessionError represents an error from a single PTY session.
type SessionError struct {
	// Slot is the session's slot index at the time of the error.
	Slot int
	// Op is the failing operation ("spawn", "read", "write", "terminate", "resize").
	Op string
	// Err is the underlying cause.
	Err error
}

// NewSessionError creates a SessionError wrapping the given cause.
func NewSessionError(slot int, op string, err error) *SessionError {
	return &SessionError{Slot: slot, Op: op, Err: err}
}

// Error returns the error message.
func (e *SessionError) Error() string {
	return fmt.Sprintf("session %d: %s: %v", e.Slot, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// MuxError represents an error from the pane multiplexer.
type MuxError struct {
	// Op is the failing operation ("add", "remove", "dispatch").
	Op string
	// Err is the underlying cause.
	Err error
}

// NewMuxError creates a MuxError wrapping the given cause.
func NewMuxError(op string, err error) *MuxError {
	return &MuxError{Op: op, Err: err}
}

// Error returns the error message.
func (e *MuxError) Error() string {
	return fmt.Sprintf("mux: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *MuxError) Unwrap() error {
	return e.Err
}

// IsCapacity reports whether err is a capacity rejection from Add.
func IsCapacity(err error) bool {
	return Is(err, ErrCapacity)
}

// IsSpawnFailure reports whether err indicates the child shell never started.
func IsSpawnFailure(err error) bool {
	return Is(err, ErrSpawnFailed)
}
