// Package session implements the per-pane PTY session: child process
// lifecycle, output buffering and decoding, input dispatch in line-edit and
// raw modes, and command history.
//
// A session is driven by the multiplexer's tick: Snapshot polls for output
// and returns everything the presentation layer needs to draw the pane.
// Sessions never fail their tick; a dead or never-started child simply
// produces no output until the pane is closed.
package session

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sigmaterm/sigmaterm/internal/ansi"
	"github.com/sigmaterm/sigmaterm/internal/logging"
	"github.com/sigmaterm/sigmaterm/internal/palette"
	"github.com/sigmaterm/sigmaterm/internal/session/process"
)

// InputMode selects how keyboard events are handled. The two modes are
// mutually exclusive by construction.
type InputMode int

const (
	// ModeLineEdit buffers input locally with history, submitting whole
	// lines on Enter.
	ModeLineEdit InputMode = iota
	// ModeRaw passes every key straight through to the child as its
	// canonical terminal byte sequence.
	ModeRaw
)

// String returns a human-readable name for the mode.
func (m InputMode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "line-edit"
}

// DefaultTitle is the title of a freshly created pane.
const DefaultTitle = "Untitled Terminal"

// Raw-mode markers. Full-screen programs enter the alternate screen or hide
// the cursor on startup and undo both on exit; spotting those sequences in
// the output stream is a workable approximation of "an interactive program
// is running". It is a heuristic, not terminal emulation.
const (
	markAltScreenEnter = "\x1b[?1049h"
	markAltScreenExit  = "\x1b[?1049l"
	markCursorHide     = "\x1b[?25l"
)

const readChunkSize = 4096

// Config carries the session-level settings the engine needs.
type Config struct {
	// Shell is the child shell executable.
	Shell string
	// ShellArgs are extra arguments passed to the shell.
	ShellArgs []string
	// BufferSize is the output buffer cap in bytes.
	BufferSize int
	// CursorBlink is the cursor blink half-period.
	CursorBlink time.Duration
}

// Snapshot is everything the presentation layer needs to render one pane.
// Segments are recomputed from the output buffer on every call; the buffer
// cap bounds the cost.
type Snapshot struct {
	Slot          int
	Title         string
	Accent        palette.Set
	Segments      []ansi.Segment
	Input         string
	CursorVisible bool
	Mode          InputMode
	Active        bool
	Cols          int
	Rows          int
}

// Session owns one child shell process behind a PTY, its output buffer, and
// its input state. All methods are called from the single tick goroutine.
type Session struct {
	slot   int
	handle uint64
	title  string
	accent palette.Set

	pty    process.PTY
	exited bool

	output *OutputBuffer
	editor *lineEditor
	mode   InputMode
	active bool
	dark   bool

	cols, rows int

	blinkEvery    time.Duration
	cursorVisible bool
	lastBlink     time.Time
	now           func() time.Time

	pending Signal

	logBase *logging.Logger // component-scoped, without pane attr
	log     *logging.Logger
}

var nextHandle uint64

// New creates a session for the given slot and spawns its shell. If the
// spawn fails the session is still returned, inert: reads and writes no-op
// until the pane is closed. The failure is logged, never propagated.
func New(cfg Config, spawner process.Spawner, slot, cols, rows int, hue float64, log *logging.Logger) *Session {
	nextHandle++
	s := &Session{
		slot:          slot,
		handle:        nextHandle,
		title:         DefaultTitle,
		accent:        palette.FromHue(hue),
		output:        NewOutputBuffer(cfg.BufferSize),
		editor:        newLineEditor(),
		mode:          ModeLineEdit,
		dark:          true,
		cols:          cols,
		rows:          rows,
		blinkEvery:    cfg.CursorBlink,
		cursorVisible: true,
		now:           time.Now,
		logBase:       log.WithComponent("session"),
	}
	s.log = s.logBase.WithPane(slot)
	s.lastBlink = s.now()

	pty, err := spawner.Spawn(process.Command{
		Path: cfg.Shell,
		Args: cfg.ShellArgs,
		Cols: cols,
		Rows: rows,
	})
	if err != nil {
		s.log.Error("shell spawn failed, pane is inert", "shell", cfg.Shell, "error", err)
		return s
	}
	s.pty = pty
	s.log.Info("shell spawned", "shell", cfg.Shell, "cols", cols, "rows", rows)
	return s
}

// Slot returns the session's current slot index.
func (s *Session) Slot() int { return s.slot }

// SetSlot reassigns the slot index after the multiplexer renumbers panes.
func (s *Session) SetSlot(slot int) {
	s.slot = slot
	s.log = s.logBase.WithPane(slot)
}

// Handle returns the session's stable identity, which survives renumbering.
func (s *Session) Handle() uint64 { return s.handle }

// Title returns the pane title.
func (s *Session) Title() string { return s.title }

// SetTitle renames the pane. Empty titles are ignored.
func (s *Session) SetTitle(title string) {
	if strings.TrimSpace(title) != "" {
		s.title = title
	}
}

// Accent returns the pane's palette.
func (s *Session) Accent() palette.Set { return s.accent }

// Active reports whether this pane has input focus.
func (s *Session) Active() bool { return s.active }

// SetActive sets or clears input focus.
func (s *Session) SetActive(active bool) { s.active = active }

// Mode returns the current input mode.
func (s *Session) Mode() InputMode { return s.mode }

// SetDarkMode selects which side of the palette's on-light/on-dark pair is
// used as the default text color.
func (s *Session) SetDarkMode(dark bool) { s.dark = dark }

// Running reports whether the child shell is live.
func (s *Session) Running() bool { return s.pty != nil && !s.exited }

// History returns the command history, oldest first.
func (s *Session) History() []string { return s.editor.History() }

// Resize stores the pane geometry and forwards it to the PTY.
func (s *Session) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	if !s.Running() {
		return
	}
	if err := s.pty.Resize(cols, rows); err != nil {
		s.log.Warn("pty resize failed", "cols", cols, "rows", rows, "error", err)
	}
}

// PollOutput reads whatever the child has produced without blocking and
// appends it to the output buffer. Read errors other than would-block are
// treated as "no output this tick"; child exit queues a close request.
func (s *Session) PollOutput() {
	if !s.Running() {
		return
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			s.output.Write(chunk)
			s.scanModeMarkers(string(chunk))
		}
		if err == nil {
			continue
		}
		if errors.Is(err, process.ErrWouldBlock) {
			return
		}
		if errors.Is(err, io.EOF) {
			s.log.Info("child shell exited")
			s.exited = true
			s.queueSignal(SignalCloseRequested)
			return
		}
		s.log.Debug("transient pty read error", "error", err)
		return
	}
}

// scanModeMarkers flips the input mode when known full-screen-program
// markers appear in a chunk of output. Markers split across read boundaries
// are missed; the scan is a heuristic and must never panic.
func (s *Session) scanModeMarkers(chunk string) {
	if strings.Contains(chunk, markAltScreenEnter) || strings.Contains(chunk, markCursorHide) {
		if s.mode != ModeRaw {
			s.mode = ModeRaw
			s.log.Debug("raw mode on")
		}
	}
	if strings.Contains(chunk, markAltScreenExit) {
		if s.mode != ModeLineEdit {
			s.mode = ModeLineEdit
			s.log.Debug("raw mode off")
		}
	}
}

// SubmitInput consumes one keyboard event. In raw mode the event is
// translated to its terminal byte sequence and written straight to the
// child; in line-edit mode it edits the local buffer, with Enter submitting
// the whole line.
func (s *Session) SubmitInput(ev KeyEvent) {
	if s.mode == ModeRaw {
		if seq, ok := encodeRaw(ev); ok {
			s.write(seq)
		}
		return
	}

	switch {
	case isInterrupt(ev):
		s.write([]byte{0x03})
		s.editor.clear()
	case isPrintable(ev):
		s.editor.insert(ev.Rune)
	case ev.Key == KeyEnter:
		line := s.editor.submit()
		s.write([]byte(line + "\n"))
	case ev.Key == KeyBackspace:
		s.editor.backspace()
	case ev.Key == KeyUp:
		s.editor.historyUp()
	case ev.Key == KeyDown:
		s.editor.historyDown()
	}
}

// write sends bytes to the child, degrading silently when the child is gone.
func (s *Session) write(p []byte) {
	if !s.Running() {
		return
	}
	if _, err := s.pty.Write(p); err != nil {
		s.log.Debug("pty write failed", "error", err)
	}
}

// Snapshot polls for new output and returns the render state for this pane.
// Polling is its only side effect beyond the cursor blink timer.
func (s *Session) Snapshot() Snapshot {
	s.PollOutput()

	if elapsed := s.now().Sub(s.lastBlink); elapsed > s.blinkEvery {
		s.cursorVisible = !s.cursorVisible
		s.lastBlink = s.now()
	}

	def := s.accent.Foreground(s.dark)
	return Snapshot{
		Slot:          s.slot,
		Title:         s.title,
		Accent:        s.accent,
		Segments:      ansi.Parse(s.output.String(), s.accent, def),
		Input:         s.editor.Input(),
		CursorVisible: s.cursorVisible,
		Mode:          s.mode,
		Active:        s.active,
		Cols:          s.cols,
		Rows:          s.rows,
	}
}

// queueSignal records an outbound signal, keeping the earliest when several
// arrive in one tick.
func (s *Session) queueSignal(sig Signal) {
	if s.pending == SignalNone {
		s.pending = sig
	}
}

// RequestClose queues a close-requested signal for the next tick.
func (s *Session) RequestClose() { s.queueSignal(SignalCloseRequested) }

// TakeSignal returns the pending signal, if any, and clears it.
func (s *Session) TakeSignal() Signal {
	sig := s.pending
	s.pending = SignalNone
	return sig
}

// Terminate stops the child shell and releases the PTY, blocking until the
// child is reaped. A non-clean exit is logged; resources are released
// regardless.
func (s *Session) Terminate() {
	if s.pty == nil {
		return
	}
	if err := s.pty.Terminate(true); err != nil {
		s.log.Warn("child did not exit cleanly", "error", err)
	} else {
		s.log.Info("child terminated")
	}
	s.pty = nil
	s.exited = true
}
