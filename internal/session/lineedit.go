package session

import "strings"

// lineEditor holds the local line-editing state used while a session is in
// ModeLineEdit: the pending input buffer, the append-only command history,
// and an optional cursor into that history while the operator browses it.
//
// History browsing follows shell conventions: Up moves toward older entries
// and stops at the oldest; Down moves toward newer entries, and moving past
// the newest clears the buffer and ends browsing. Any edit cancels browsing.
type lineEditor struct {
	buffer  []rune
	history []string
	// cursor indexes history while browsing; -1 means not browsing.
	cursor int
}

func newLineEditor() *lineEditor {
	return &lineEditor{cursor: -1}
}

// Input returns the pending input buffer.
func (e *lineEditor) Input() string {
	return string(e.buffer)
}

// History returns the command history, oldest first.
func (e *lineEditor) History() []string {
	return e.history
}

// insert appends a printable character and cancels history browsing.
func (e *lineEditor) insert(r rune) {
	e.buffer = append(e.buffer, r)
	e.cursor = -1
}

// backspace drops the last character and cancels history browsing.
func (e *lineEditor) backspace() {
	if len(e.buffer) > 0 {
		e.buffer = e.buffer[:len(e.buffer)-1]
	}
	e.cursor = -1
}

// submit returns the pending line, records it in history when its trimmed
// form is non-empty, and resets the editor.
func (e *lineEditor) submit() string {
	line := string(e.buffer)
	if strings.TrimSpace(line) != "" {
		e.history = append(e.history, line)
	}
	e.buffer = e.buffer[:0]
	e.cursor = -1
	return line
}

// clear discards the pending buffer and ends browsing, leaving history
// intact. Used on interrupt.
func (e *lineEditor) clear() {
	e.buffer = e.buffer[:0]
	e.cursor = -1
}

// historyUp loads the previous (older) history entry into the buffer,
// stopping at the oldest.
func (e *lineEditor) historyUp() {
	if len(e.history) == 0 {
		return
	}
	switch {
	case e.cursor < 0:
		e.cursor = len(e.history) - 1
	case e.cursor > 0:
		e.cursor--
	default:
		return // already at the oldest entry
	}
	e.buffer = []rune(e.history[e.cursor])
}

// historyDown loads the next (newer) history entry into the buffer. Moving
// past the newest entry clears the buffer and ends browsing.
func (e *lineEditor) historyDown() {
	if e.cursor < 0 {
		return
	}
	if e.cursor < len(e.history)-1 {
		e.cursor++
		e.buffer = []rune(e.history[e.cursor])
		return
	}
	e.cursor = -1
	e.buffer = e.buffer[:0]
}
