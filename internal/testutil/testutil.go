// Package testutil provides testing utilities for sigmaterm tests.
package testutil

import (
	"io"
	"sync"

	"github.com/sigmaterm/sigmaterm/internal/session/process"
)

// FakePTY is a scripted process.PTY for tests. Output is queued with Feed
// and handed out chunk by chunk; writes, resizes and termination are
// recorded for assertions. It is safe for concurrent use.
type FakePTY struct {
	mu sync.Mutex

	output     [][]byte
	eof        bool
	readErr    error
	writeErr   error
	terminated bool
	forceKill  bool
	termErr    error

	Written []byte
	Cols    int
	Rows    int
}

// NewFakePTY returns an empty FakePTY. Reads return process.ErrWouldBlock
// until output is fed.
func NewFakePTY() *FakePTY {
	return &FakePTY{}
}

// Feed queues one chunk of child output. Each chunk is returned by exactly
// one Read call, mirroring how PTY reads deliver whatever is buffered.
func (f *FakePTY) Feed(chunk string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.output = append(f.output, []byte(chunk))
}

// CloseOutput makes Read return io.EOF once the queued output is drained,
// simulating child exit.
func (f *FakePTY) CloseOutput() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eof = true
}

// FailReads makes every Read return err.
func (f *FakePTY) FailReads(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

// FailWrites makes every Write return err.
func (f *FakePTY) FailWrites(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErr = err
}

// FailTerminate makes Terminate return err after recording the call.
func (f *FakePTY) FailTerminate(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.termErr = err
}

// Terminated reports whether Terminate has been called, and whether it was
// forced.
func (f *FakePTY) Terminated() (called, force bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.terminated, f.forceKill
}

// Read implements process.PTY.
func (f *FakePTY) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.output) == 0 {
		if f.eof {
			return 0, io.EOF
		}
		return 0, process.ErrWouldBlock
	}

	chunk := f.output[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		f.output[0] = chunk[n:]
	} else {
		f.output = f.output[1:]
	}
	return n, nil
}

// Write implements process.PTY.
func (f *FakePTY) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.Written = append(f.Written, p...)
	return len(p), nil
}

// Resize implements process.PTY.
func (f *FakePTY) Resize(cols, rows int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cols, f.Rows = cols, rows
	return nil
}

// Terminate implements process.PTY.
func (f *FakePTY) Terminate(force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = true
	f.forceKill = force
	return f.termErr
}

// WrittenString returns everything written to the fake as a string.
func (f *FakePTY) WrittenString() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.Written)
}

// FakeSpawner is a process.Spawner that hands out pre-built fakes, or fails
// when Err is set.
type FakeSpawner struct {
	mu sync.Mutex

	// PTYs are returned in order by successive Spawn calls. When exhausted,
	// fresh empty fakes are returned.
	PTYs []*FakePTY
	// Err, when non-nil, makes every Spawn call fail.
	Err error

	// Spawned records the commands passed to Spawn.
	Spawned []process.Command
}

// Spawn implements process.Spawner.
func (s *FakeSpawner) Spawn(cmd process.Command) (process.PTY, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Spawned = append(s.Spawned, cmd)
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.PTYs) > 0 {
		p := s.PTYs[0]
		s.PTYs = s.PTYs[1:]
		return p, nil
	}
	return NewFakePTY(), nil
}
