package mux

import (
	"github.com/sigmaterm/sigmaterm/internal/errors"
	"github.com/sigmaterm/sigmaterm/internal/event"
	"github.com/sigmaterm/sigmaterm/internal/logging"
	"github.com/sigmaterm/sigmaterm/internal/session"
	"github.com/sigmaterm/sigmaterm/internal/session/process"
)

// DisplayMode selects how panes are presented.
type DisplayMode int

const (
	// DisplayGrid shows every pane in the two-row grid.
	DisplayGrid DisplayMode = iota
	// DisplaySingle shows one pane full-size.
	DisplaySingle
)

// String returns a human-readable name for the display mode.
func (d DisplayMode) String() string {
	if d == DisplaySingle {
		return "single"
	}
	return "grid"
}

// Config carries the multiplexer settings.
type Config struct {
	// MaxPanes caps the number of live panes.
	MaxPanes int
	// HueStart is the accent hue of the first pane, in degrees.
	HueStart float64
	// HueStep is added to the accent hue on every pane creation.
	HueStep float64
	// Session is passed through to every new session.
	Session session.Config
}

// Multiplexer owns the live sessions and their on-screen arrangement. All
// methods are called from the single tick goroutine; there is no locking.
type Multiplexer struct {
	cfg     Config
	spawner process.Spawner
	bus     *event.Bus
	log     *logging.Logger

	// sessions is dense: a session's index is its slot.
	sessions []*session.Session
	topRow   int // pane count in the top row; the rest are in the bottom row
	active   int // focused slot, -1 when no panes exist

	display    DisplayMode
	singleSlot int // slot filling the view in single mode

	hue        float64
	cols, rows int
	dark       bool

	// lastMode tracks each session's input mode by handle so mode flips can
	// be published once, on the tick that observes them.
	lastMode map[uint64]session.InputMode
}

// New creates an empty multiplexer. A nil bus disables event publication.
func New(cfg Config, spawner process.Spawner, bus *event.Bus, log *logging.Logger) *Multiplexer {
	if bus == nil {
		bus = event.NewBus(log)
	}
	return &Multiplexer{
		cfg:        cfg,
		spawner:    spawner,
		bus:        bus,
		log:        log.WithComponent("mux"),
		active:     -1,
		singleSlot: -1,
		hue:        cfg.HueStart,
		dark:       true,
		lastMode:   make(map[uint64]session.InputMode),
	}
}

// Count returns the number of live panes.
func (m *Multiplexer) Count() int { return len(m.sessions) }

// Active returns the focused slot, or -1 when no panes exist.
func (m *Multiplexer) Active() int { return m.active }

// Display returns the current display mode.
func (m *Multiplexer) Display() DisplayMode { return m.display }

// SingleSlot returns the slot filling the view in single mode, or -1.
func (m *Multiplexer) SingleSlot() int {
	if m.display != DisplaySingle {
		return -1
	}
	return m.singleSlot
}

// Session returns the session at slot, or nil when the slot is not live.
func (m *Multiplexer) Session(slot int) *session.Session {
	if slot < 0 || slot >= len(m.sessions) {
		return nil
	}
	return m.sessions[slot]
}

// TopRowCount returns how many panes occupy the top row.
func (m *Multiplexer) TopRowCount() int { return m.topRow }

// Add creates a new pane, spawning its shell. The first pane is activated
// automatically. At capacity the add is rejected and the live set is
// unchanged.
func (m *Multiplexer) Add(cols, rows int) (int, error) {
	if len(m.sessions) >= m.cfg.MaxPanes {
		m.log.Warn("pane rejected at capacity", "max", m.cfg.MaxPanes)
		m.bus.Publish(event.NewCapacityRejectedEvent(m.cfg.MaxPanes))
		return -1, errors.NewMuxError("add", errors.ErrCapacity)
	}

	slot := len(m.sessions)
	s := session.New(m.cfg.Session, m.spawner, slot, cols, rows, m.hue, m.log)
	s.SetDarkMode(m.dark)
	m.hue += m.cfg.HueStep

	m.sessions = append(m.sessions, s)
	m.lastMode[s.Handle()] = s.Mode()

	if len(m.sessions) == 1 {
		m.activate(slot)
	}

	m.arrange()
	m.Resize(cols, rows)
	m.log.Info("pane added", "slot", slot, "count", len(m.sessions))
	m.bus.Publish(event.NewPaneAddedEvent(slot, s.Handle(), s.Title()))
	return slot, nil
}

// Remove terminates and removes the pane at slot, renumbering the remaining
// panes densely. If the removed pane was focused, slot 0 becomes focused, or
// nothing when no panes remain. A focused slot above the removed one keeps
// its pane by decrementing.
func (m *Multiplexer) Remove(slot, cols, rows int) error {
	if slot < 0 || slot >= len(m.sessions) {
		return errors.NewMuxError("remove", errors.ErrNoSuchPane)
	}

	removed := m.sessions[slot]
	removed.Terminate()
	delete(m.lastMode, removed.Handle())

	m.sessions = append(m.sessions[:slot], m.sessions[slot+1:]...)
	for i, s := range m.sessions {
		s.SetSlot(i)
	}

	switch {
	case m.active == slot:
		if len(m.sessions) > 0 {
			m.active = -1
			m.activate(0)
		} else {
			m.active = -1
		}
	case m.active > slot:
		m.active--
	}

	if m.display == DisplaySingle {
		switch {
		case len(m.sessions) == 0:
			m.setDisplay(DisplayGrid, -1)
		case m.singleSlot == slot:
			m.singleSlot = m.active
		case m.singleSlot > slot:
			m.singleSlot--
		}
	}

	m.arrange()
	m.Resize(cols, rows)
	m.log.Info("pane removed", "slot", slot, "count", len(m.sessions))
	m.bus.Publish(event.NewPaneRemovedEvent(slot, removed.Handle()))
	return nil
}

// Activate moves input focus to slot.
func (m *Multiplexer) Activate(slot int) error {
	if slot < 0 || slot >= len(m.sessions) {
		return errors.NewMuxError("activate", errors.ErrNoSuchPane)
	}
	m.activate(slot)
	return nil
}

func (m *Multiplexer) activate(slot int) {
	if m.active == slot {
		return
	}
	if m.active >= 0 && m.active < len(m.sessions) {
		m.sessions[m.active].SetActive(false)
	}
	m.active = slot
	m.sessions[slot].SetActive(true)
	m.bus.Publish(event.NewPaneActivatedEvent(slot))
}

// arrange recomputes the row partition. Run on every pane count change.
func (m *Multiplexer) arrange() {
	m.topRow, _ = splitRows(len(m.sessions))
}

// Resize stores the terminal geometry and gives every pane its share: height
// split evenly across populated rows, each row's width split evenly among
// its occupants minus the per-pane frame allowance. In single mode the
// displayed pane gets the full area instead.
func (m *Multiplexer) Resize(cols, rows int) {
	m.cols, m.rows = cols, rows
	if len(m.sessions) == 0 {
		return
	}

	if m.display == DisplaySingle {
		if s := m.Session(m.singleSlot); s != nil {
			s.Resize(paneCols(cols, 1), paneRows(rows, 1))
		}
		return
	}

	top, bottom := splitRows(len(m.sessions))
	rowCount := 1
	if bottom > 0 {
		rowCount = 2
	}
	height := paneRows(rows, rowCount)

	topWidth := paneCols(cols, top)
	for i := 0; i < top; i++ {
		m.sessions[i].Resize(topWidth, height)
	}
	if bottom > 0 {
		bottomWidth := paneCols(cols, bottom)
		for i := top; i < len(m.sessions); i++ {
			m.sessions[i].Resize(bottomWidth, height)
		}
	}
}

// Dispatch consumes one per-tick session signal.
func (m *Multiplexer) Dispatch(slot int, sig session.Signal) error {
	if slot < 0 || slot >= len(m.sessions) {
		return errors.NewMuxError("dispatch", errors.ErrNoSuchPane)
	}

	switch sig {
	case session.SignalActivated:
		m.activate(slot)
	case session.SignalCloseRequested:
		s := m.sessions[slot]
		if !s.Running() {
			m.bus.Publish(event.NewSessionExitedEvent(slot, s.Handle()))
		}
		return m.Remove(slot, m.cols, m.rows)
	case session.SignalMaximizeRequested:
		m.setDisplay(DisplaySingle, slot)
	case session.SignalMinimizeRequested:
		m.setDisplay(DisplayGrid, -1)
	}
	return nil
}

// setDisplay switches the display mode, republishing on change and
// reapplying geometry for the new arrangement.
func (m *Multiplexer) setDisplay(mode DisplayMode, slot int) {
	if m.display == mode && m.singleSlot == slot {
		return
	}
	m.display = mode
	m.singleSlot = slot
	m.log.Debug("display mode changed", "mode", mode.String(), "slot", slot)
	m.bus.Publish(event.NewDisplayModeChangedEvent(mode.String(), slot))
	m.Resize(m.cols, m.rows)
}

// CycleSingle moves the single-mode view delta panes forward (or backward
// when negative), wrapping, without leaving single mode. The shown pane also
// takes focus.
func (m *Multiplexer) CycleSingle(delta int) {
	if m.display != DisplaySingle || len(m.sessions) == 0 {
		return
	}
	n := len(m.sessions)
	slot := ((m.singleSlot+delta)%n + n) % n
	if slot == m.singleSlot {
		return
	}
	m.singleSlot = slot
	m.activate(slot)
	m.bus.Publish(event.NewDisplayModeChangedEvent(m.display.String(), slot))
	m.Resize(m.cols, m.rows)
}

// Tick drives one engine step: every live session is polled and
// snapshotted, then pending signals are collected and dispatched after the
// walk so no session mutates the pane list mid-iteration. The returned
// snapshots are in slot order and reflect the state before dispatch.
func (m *Multiplexer) Tick() []session.Snapshot {
	snaps := make([]session.Snapshot, 0, len(m.sessions))
	type pending struct {
		handle uint64
		sig    session.Signal
	}
	var signals []pending

	for _, s := range m.sessions {
		snaps = append(snaps, s.Snapshot())

		if mode := s.Mode(); m.lastMode[s.Handle()] != mode {
			m.lastMode[s.Handle()] = mode
			m.bus.Publish(event.NewModeChangedEvent(s.Slot(), mode.String()))
		}
		if sig := s.TakeSignal(); sig != session.SignalNone {
			signals = append(signals, pending{s.Handle(), sig})
		}
	}

	for _, p := range signals {
		slot := m.slotOf(p.handle)
		if slot < 0 {
			continue // pane already gone this tick
		}
		if err := m.Dispatch(slot, p.sig); err != nil {
			m.log.Warn("signal dispatch failed", "slot", slot, "signal", p.sig.String(), "error", err)
		}
	}
	return snaps
}

// slotOf resolves a stable handle to its current slot, -1 when gone.
func (m *Multiplexer) slotOf(handle uint64) int {
	for i, s := range m.sessions {
		if s.Handle() == handle {
			return i
		}
	}
	return -1
}

// SetDarkMode propagates the color mode to every session, present and
// future.
func (m *Multiplexer) SetDarkMode(dark bool) {
	m.dark = dark
	for _, s := range m.sessions {
		s.SetDarkMode(dark)
	}
}

// Rename sets the title of the pane at slot.
func (m *Multiplexer) Rename(slot int, title string) error {
	if slot < 0 || slot >= len(m.sessions) {
		return errors.NewMuxError("rename", errors.ErrNoSuchPane)
	}
	m.sessions[slot].SetTitle(title)
	return nil
}

// Shutdown terminates every session. Used on application exit.
func (m *Multiplexer) Shutdown() {
	for _, s := range m.sessions {
		s.Terminate()
	}
	m.sessions = nil
	m.active = -1
	m.singleSlot = -1
	m.display = DisplayGrid
	m.lastMode = make(map[uint64]session.InputMode)
}
