package session

import "unicode"

// Key identifies a named key in a KeyEvent. Printable characters use
// KeyRune with the character in the Rune field.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "escape"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// KeyEvent is one keyboard input event delivered by the presentation layer:
// either a printable character or a named key, plus modifiers.
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
	Alt  bool
}

// encodeRaw translates a key event into the canonical byte sequence an
// interactive full-screen program expects on its input stream. The second
// return is false for keys with no mapping; those are dropped in raw mode.
func encodeRaw(ev KeyEvent) ([]byte, bool) {
	if ev.Ctrl && ev.Key == KeyRune && unicode.IsLetter(ev.Rune) {
		// Ctrl+letter is the corresponding C0 control code.
		c := byte(unicode.ToLower(ev.Rune)) - 'a' + 1
		return []byte{c}, true
	}

	switch ev.Key {
	case KeyRune:
		if ev.Ctrl || ev.Alt {
			return nil, false
		}
		return []byte(string(ev.Rune)), true
	case KeyEnter:
		return []byte{'\r'}, true
	case KeyBackspace:
		return []byte{0x7f}, true
	case KeyTab:
		return []byte{'\t'}, true
	case KeyEscape:
		return []byte{0x1b}, true
	case KeyUp:
		return []byte("\x1b[A"), true
	case KeyDown:
		return []byte("\x1b[B"), true
	case KeyRight:
		return []byte("\x1b[C"), true
	case KeyLeft:
		return []byte("\x1b[D"), true
	case KeyHome:
		return []byte("\x1b[H"), true
	case KeyEnd:
		return []byte("\x1b[F"), true
	case KeyPageUp:
		return []byte("\x1b[5~"), true
	case KeyPageDown:
		return []byte("\x1b[6~"), true
	case KeyDelete:
		return []byte("\x1b[3~"), true
	default:
		return nil, false
	}
}

// isInterrupt reports whether ev is the Ctrl+C interrupt chord.
func isInterrupt(ev KeyEvent) bool {
	return ev.Ctrl && ev.Key == KeyRune && (ev.Rune == 'c' || ev.Rune == 'C')
}

// isPrintable reports whether ev should be treated as literal text in
// line-edit mode.
func isPrintable(ev KeyEvent) bool {
	return ev.Key == KeyRune && !ev.Ctrl && !ev.Alt && unicode.IsPrint(ev.Rune)
}
