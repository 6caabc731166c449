package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// UnixSpawner is the production Spawner backed by creack/pty.
type UnixSpawner struct{}

// Spawn starts cmd.Path under a new pseudo-terminal sized to cmd.Cols x
// cmd.Rows and returns a non-blocking handle to it.
func (UnixSpawner) Spawn(cmd Command) (PTY, error) {
	c := exec.Command(cmd.Path, cmd.Args...)
	c.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(c, &pty.Winsize{
		Cols: uint16(cmd.Cols),
		Rows: uint16(cmd.Rows),
	})
	if err != nil {
		return nil, fmt.Errorf("starting %s: %w", cmd.Path, err)
	}

	// StartWithSize touches Fd(), which puts the descriptor into blocking
	// mode; flip it back so reads can return EAGAIN.
	if err := unix.SetNonblock(int(ptmx.Fd()), true); err != nil {
		_ = c.Process.Kill()
		_ = c.Wait()
		ptmx.Close()
		return nil, fmt.Errorf("setting ptmx non-blocking: %w", err)
	}

	return &unixPTY{ptmx: ptmx, cmd: c}, nil
}

// unixPTY owns one child process and its PTY master.
type unixPTY struct {
	mu     sync.Mutex
	ptmx   *os.File
	cmd    *exec.Cmd
	closed bool
}

func (p *unixPTY) Read(buf []byte) (int, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0, ErrClosed
	}
	ptmx := p.ptmx
	p.mu.Unlock()

	n, err := ptmx.Read(buf)
	if err != nil {
		if errors.Is(err, syscall.EAGAIN) {
			return n, ErrWouldBlock
		}
		// A closed slave side surfaces as EIO on Linux once the child
		// exits; normalize it to end-of-stream.
		if errors.Is(err, syscall.EIO) {
			return n, io.EOF
		}
		return n, err
	}
	return n, nil
}

func (p *unixPTY) Write(buf []byte) (int, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return 0, ErrClosed
	}
	ptmx := p.ptmx
	p.mu.Unlock()

	return ptmx.Write(buf)
}

func (p *unixPTY) Resize(cols, rows int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	if err := pty.Setsize(p.ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)}); err != nil {
		return fmt.Errorf("resizing pty: %w", err)
	}
	// Setsize goes through Fd(); restore non-blocking mode.
	return unix.SetNonblock(int(p.ptmx.Fd()), true)
}

func (p *unixPTY) Terminate(force bool) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	ptmx := p.ptmx
	cmd := p.cmd
	p.mu.Unlock()

	var errs []error
	if !force {
		if err := cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
			errs = append(errs, fmt.Errorf("signaling child: %w", err))
		}
	}
	// SIGKILL cannot be ignored, which guarantees the reap below returns.
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		errs = append(errs, fmt.Errorf("killing child: %w", err))
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || !exitedBySignal(exitErr) {
			errs = append(errs, fmt.Errorf("reaping child: %w", err))
		}
	}
	if err := ptmx.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing ptmx: %w", err))
	}

	return errors.Join(errs...)
}

// exitedBySignal reports whether the child died from our own termination
// signal, which is the expected outcome and not an error worth surfacing.
func exitedBySignal(err *exec.ExitError) bool {
	status, ok := err.Sys().(syscall.WaitStatus)
	if !ok {
		return false
	}
	return status.Signaled()
}
