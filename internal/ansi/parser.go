// Package ansi decodes a raw terminal byte stream into styled text segments.
//
// The parser understands just enough ANSI/VT to color shell output: SGR
// color and bold codes are mapped onto semantic palette roles, other CSI
// sequences are consumed invisibly, and OSC sequences (window titles and the
// like) are skipped entirely. It is not a terminal-grid emulator; cursor
// addressing and screen manipulation have no effect on the output.
//
// Parsing is stateless across calls. Callers re-parse the full output buffer
// on every render; the buffer is bounded, so the cost is too.
package ansi

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sigmaterm/sigmaterm/internal/palette"
)

// Segment is a run of text with a resolved color and bold flag.
type Segment struct {
	Text  string
	Color lipgloss.Color
	Bold  bool
}

const (
	esc = '\x1b'
	bel = '\x07'
)

// Parse scans raw terminal output and returns its styled segments in input
// order. Styling state (current color, bold) starts at def/non-bold and is
// local to the call.
//
// Malformed or truncated escape sequences never fail the call; the parser
// skips what it cannot decode and continues with the remaining input.
func Parse(raw string, set palette.Set, def lipgloss.Color) []Segment {
	var segments []Segment
	var text strings.Builder
	color := def
	bold := false

	flush := func() {
		if text.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: text.String(), Color: color, Bold: bold})
		text.Reset()
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		if runes[i] != esc {
			text.WriteRune(runes[i])
			continue
		}

		// A pending segment always ends at an escape marker, even when the
		// sequence turns out to have no visual effect.
		flush()

		if i+1 >= len(runes) {
			break
		}

		switch runes[i+1] {
		case '[':
			i++ // consume '['
			var params strings.Builder
			for i+1 < len(runes) {
				next := runes[i+1]
				i++
				if isAlpha(next) {
					break
				}
				params.WriteRune(next)
			}
			color, bold = applySGR(params.String(), set, def, color, bold)

		case ']':
			i++ // consume ']'
			for i+1 < len(runes) {
				next := runes[i+1]
				i++
				if next == bel {
					break
				}
				if next == esc && i+1 < len(runes) && runes[i+1] == '\\' {
					i++
					break
				}
			}

		default:
			// Unknown escape: skip exactly one character.
			i++
		}
	}

	flush()
	return segments
}

// applySGR interprets a CSI parameter string as SGR codes. Parameter strings
// containing anything other than digits and ';' belong to non-SGR sequences
// and leave the styling state untouched. Later codes override earlier ones.
func applySGR(params string, set palette.Set, def, color lipgloss.Color, bold bool) (lipgloss.Color, bool) {
	if !isSGRParams(params) {
		return color, bold
	}
	for _, code := range strings.Split(params, ";") {
		switch code {
		case "0", "00":
			color = def
			bold = false
		case "1", "01":
			bold = true
		case "31":
			color = set.Alert
		case "32":
			color = set.Primary
		case "33":
			color = set.Warning
		case "34":
			color = set.Alternate1
		case "35":
			color = set.Alternate2
		case "36":
			color = set.Alternate3
		}
	}
	return color, bold
}

func isSGRParams(params string) bool {
	for _, r := range params {
		if (r < '0' || r > '9') && r != ';' {
			return false
		}
	}
	return true
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
