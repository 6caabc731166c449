package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sigmaterm/sigmaterm/internal/session"
)

// toKeyEvents translates a bubbletea key message into session key events.
// A rune message may carry several runes (paste); named keys yield exactly
// one event. Keys with no session meaning return nil.
func toKeyEvents(msg tea.KeyMsg) []session.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		events := make([]session.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, session.KeyEvent{Key: session.KeyRune, Rune: r, Alt: msg.Alt})
		}
		return events
	case tea.KeySpace:
		return []session.KeyEvent{{Key: session.KeyRune, Rune: ' ', Alt: msg.Alt}}
	case tea.KeyEnter:
		return []session.KeyEvent{{Key: session.KeyEnter}}
	case tea.KeyBackspace:
		return []session.KeyEvent{{Key: session.KeyBackspace}}
	case tea.KeyTab:
		return []session.KeyEvent{{Key: session.KeyTab}}
	case tea.KeyEsc:
		return []session.KeyEvent{{Key: session.KeyEscape}}
	case tea.KeyUp:
		return []session.KeyEvent{{Key: session.KeyUp}}
	case tea.KeyDown:
		return []session.KeyEvent{{Key: session.KeyDown}}
	case tea.KeyLeft:
		return []session.KeyEvent{{Key: session.KeyLeft}}
	case tea.KeyRight:
		return []session.KeyEvent{{Key: session.KeyRight}}
	case tea.KeyHome:
		return []session.KeyEvent{{Key: session.KeyHome}}
	case tea.KeyEnd:
		return []session.KeyEvent{{Key: session.KeyEnd}}
	case tea.KeyPgUp:
		return []session.KeyEvent{{Key: session.KeyPageUp}}
	case tea.KeyPgDown:
		return []session.KeyEvent{{Key: session.KeyPageDown}}
	case tea.KeyDelete:
		return []session.KeyEvent{{Key: session.KeyDelete}}
	}

	// Remaining control chords arrive as their C0 key type. The aliased
	// types (tab, enter, backspace, escape) were handled above.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := rune('a' + int(msg.Type) - int(tea.KeyCtrlA))
		return []session.KeyEvent{{Key: session.KeyRune, Rune: r, Ctrl: true}}
	}
	return nil
}
