// Package tui provides the terminal user interface for sigmaterm: a
// bubbletea program that renders the pane grid and routes keyboard input to
// the multiplexer and the focused session.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sigmaterm/sigmaterm/internal/ansi"
	"github.com/sigmaterm/sigmaterm/internal/mux"
	"github.com/sigmaterm/sigmaterm/internal/session"
	"github.com/sigmaterm/sigmaterm/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || len(m.snaps) == 0 {
		return "starting shell..."
	}

	var body string
	if m.mux.Display() == mux.DisplaySingle {
		body = m.viewSingle()
	} else {
		body = m.viewGrid()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter())
}

// viewSingle renders only the maximized pane.
func (m Model) viewSingle() string {
	slot := m.mux.SingleSlot()
	for _, snap := range m.snaps {
		if snap.Slot == slot {
			return m.renderPane(snap)
		}
	}
	return ""
}

// viewGrid renders the two-row pane grid.
func (m Model) viewGrid() string {
	top := m.mux.TopRowCount()
	if top > len(m.snaps) {
		top = len(m.snaps)
	}

	rows := []string{renderRow(m.snaps[:top], m.renderPane)}
	if top < len(m.snaps) {
		rows = append(rows, renderRow(m.snaps[top:], m.renderPane))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderRow(snaps []session.Snapshot, render func(session.Snapshot) string) string {
	panes := make([]string, len(snaps))
	for i, snap := range snaps {
		panes[i] = render(snap)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

// renderPane draws one pane: accent-colored frame, title bar, the decoded
// output tail, and the input line when the pane is in line-edit mode.
func (m Model) renderPane(snap session.Snapshot) string {
	accent := snap.Accent

	border := lipgloss.RoundedBorder()
	borderColor := accent.Dark
	if snap.Active {
		border = lipgloss.ThickBorder()
		borderColor = accent.Primary
	}

	title := lipgloss.NewStyle().
		Foreground(accent.OnPrimary).
		Background(accent.Primary).
		Padding(0, 1).
		Render(util.TruncateANSI(snap.Title, snap.Cols-2))

	contentRows := snap.Rows - 1 // title bar
	if snap.Mode == session.ModeLineEdit {
		contentRows-- // input line
	}
	lines := util.TailLines(segmentLines(snap.Segments), contentRows)
	for i, line := range lines {
		lines[i] = util.ClipANSI(line, snap.Cols)
	}
	content := strings.Join(lines, "\n")

	sections := []string{title, content}
	if snap.Mode == session.ModeLineEdit {
		sections = append(sections, m.renderInputLine(snap))
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Width(snap.Cols).
		Height(snap.Rows).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderInputLine draws the local line-edit buffer with its blinking cursor.
func (m Model) renderInputLine(snap session.Snapshot) string {
	cursor := " "
	if snap.CursorVisible && snap.Active {
		cursor = "█"
	}
	prompt := lipgloss.NewStyle().Foreground(snap.Accent.Primary).Render("> ")
	line := prompt + snap.Input + cursor
	if m.renaming && snap.Active {
		line = m.rename.View()
	}
	return util.ClipANSI(line, snap.Cols)
}

// viewFooter draws the status line and the help bar.
func (m Model) viewFooter() string {
	status := m.status
	if m.renaming {
		status = "renaming pane - enter to confirm, esc to cancel"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Faint(true).Render(status),
		m.help.View(m.keys),
	)
}

// segmentLines converts decoded output segments into styled render lines,
// splitting on newlines while carrying each segment's style across the
// split.
func segmentLines(segments []ansi.Segment) []string {
	var lines []string
	var current strings.Builder

	for _, seg := range segments {
		style := lipgloss.NewStyle().Foreground(seg.Color).Bold(seg.Bold)
		parts := strings.Split(seg.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current.String())
				current.Reset()
			}
			part = strings.ReplaceAll(part, "\r", "")
			if part != "" {
				current.WriteString(style.Render(part))
			}
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
