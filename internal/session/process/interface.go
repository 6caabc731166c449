package process

import "errors"

// Common errors returned by PTY implementations.
var (
	// ErrWouldBlock is returned by Read when the child has produced no
	// output. It is the normal idle case, not a failure.
	ErrWouldBlock = errors.New("pty read would block")

	// ErrClosed is returned by operations on a terminated PTY.
	ErrClosed = errors.New("pty closed")
)

// Command describes the child process to spawn for a pane.
type Command struct {
	// Path is the shell executable.
	Path string
	// Args are extra arguments passed to the shell.
	Args []string
	// Cols and Rows are the initial terminal dimensions.
	Cols int
	Rows int
}

// PTY is the capability a session holds over its child process and
// pseudo-terminal. Any provider meeting this contract is interchangeable
// with the default creack/pty implementation.
type PTY interface {
	// Read fills p with available output bytes without blocking.
	// Returns ErrWouldBlock when no data is available, io.EOF when the
	// child has exited and the stream is drained.
	Read(p []byte) (int, error)

	// Write sends input bytes to the child.
	Write(p []byte) (int, error)

	// Resize changes the terminal dimensions in character cells.
	Resize(cols, rows int) error

	// Terminate stops the child and releases the PTY. When force is true
	// the child is killed outright; otherwise it is asked to exit first.
	// Terminate blocks until the child is reaped. A non-clean exit is
	// reported as an error, but resources are released regardless.
	Terminate(force bool) error
}

// Spawner creates a PTY bound to a freshly started child process.
type Spawner interface {
	Spawn(cmd Command) (PTY, error)
}
