package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sigmaterm/sigmaterm/internal/errors"
	"github.com/sigmaterm/sigmaterm/internal/logging"
	"github.com/sigmaterm/sigmaterm/internal/mux"
	"github.com/sigmaterm/sigmaterm/internal/session"
)

// footerHeight is the rows reserved below the pane area for the status line
// and the help bar.
const footerHeight = 2

// tickMsg drives one engine step.
type tickMsg time.Time

// Model is the bubbletea model: it owns the multiplexer and translates
// terminal events into engine calls.
type Model struct {
	mux  *mux.Multiplexer
	keys KeyMap
	help help.Model
	log  *logging.Logger

	tick   time.Duration
	rename textinput.Model

	width, height int
	snaps         []session.Snapshot
	status        string
	renaming      bool
	quitting      bool
}

// NewModel creates the TUI model around an existing multiplexer.
func NewModel(m *mux.Multiplexer, tick time.Duration, log *logging.Logger) Model {
	rename := textinput.New()
	rename.Prompt = "rename: "
	rename.CharLimit = 64

	return Model{
		mux:    m,
		keys:   DefaultKeyMap,
		help:   help.New(),
		log:    log.WithComponent("tui"),
		tick:   tick,
		rename: rename,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.mux.Resize(msg.Width, msg.Height-footerHeight)
		if m.mux.Count() == 0 {
			m.addPane()
		}
		return m, nil

	case tickMsg:
		m.snaps = m.mux.Tick()
		if m.mux.Count() == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.renaming {
		return m.updateRename(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.mux.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewPane):
		m.addPane()
		return m, nil

	case key.Matches(msg, m.keys.ClosePane):
		if slot := m.mux.Active(); slot >= 0 {
			if err := m.mux.Remove(slot, m.paneAreaWidth(), m.paneAreaHeight()); err != nil {
				m.log.Warn("close pane failed", "slot", slot, "error", err)
			}
		}
		if m.mux.Count() == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPane):
		m.focusStep(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPane):
		m.focusStep(-1)
		return m, nil

	case key.Matches(msg, m.keys.Maximize):
		m.toggleMaximize()
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if s := m.mux.Session(m.mux.Active()); s != nil {
			m.renaming = true
			m.rename.SetValue(s.Title())
			m.rename.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Everything else goes to the focused pane's shell.
	if s := m.mux.Session(m.mux.Active()); s != nil {
		for _, ev := range toKeyEvents(msg) {
			s.SubmitInput(ev)
		}
	}
	return m, nil
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if err := m.mux.Rename(m.mux.Active(), m.rename.Value()); err != nil {
			m.log.Warn("rename failed", "error", err)
		}
		m.renaming = false
		m.rename.Blur()
		return m, nil
	case tea.KeyEsc:
		m.renaming = false
		m.rename.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

// addPane creates a pane, surfacing a capacity rejection on the status line
// instead of treating it as a failure.
func (m *Model) addPane() {
	if _, err := m.mux.Add(m.paneAreaWidth(), m.paneAreaHeight()); err != nil {
		if errors.IsCapacity(err) {
			m.status = "pane limit reached"
			return
		}
		m.log.Warn("add pane failed", "error", err)
		return
	}
	m.status = ""
}

// focusStep moves focus (or the single-mode view) delta panes over.
func (m *Model) focusStep(delta int) {
	n := m.mux.Count()
	if n == 0 {
		return
	}
	if m.mux.Display() == mux.DisplaySingle {
		m.mux.CycleSingle(delta)
		return
	}
	slot := ((m.mux.Active()+delta)%n + n) % n
	if err := m.mux.Activate(slot); err != nil {
		m.log.Warn("focus change failed", "slot", slot, "error", err)
	}
}

// toggleMaximize flips between the grid and a single view of the focused
// pane, reusing the same signals full-screen programs emit.
func (m *Model) toggleMaximize() {
	slot := m.mux.Active()
	if slot < 0 {
		return
	}
	sig := session.SignalMaximizeRequested
	if m.mux.Display() == mux.DisplaySingle {
		sig = session.SignalMinimizeRequested
	}
	if err := m.mux.Dispatch(slot, sig); err != nil {
		m.log.Warn("display toggle failed", "slot", slot, "error", err)
	}
}

func (m Model) paneAreaWidth() int  { return m.width }
func (m Model) paneAreaHeight() int { return m.height - footerHeight }
