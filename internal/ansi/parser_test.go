package ansi

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/sigmaterm/sigmaterm/internal/palette"
)

var (
	testSet = palette.FromHue(180)
	testDef = lipgloss.Color("#aabbcc")
)

func TestParsePlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple", "hello world"},
		{"multiline", "line one\nline two\r\nline three"},
		{"unicode", "héllo wörld ≈ 终端"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, testSet, testDef)
			want := []Segment{{Text: tt.input, Color: testDef, Bold: false}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, want)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	if got := Parse("", testSet, testDef); got != nil {
		t.Errorf("Parse(\"\") = %+v, want nil", got)
	}
}

func TestParseSGRColors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "red then reset",
			input: "\x1b[31mHELLO\x1b[0mWORLD",
			want: []Segment{
				{Text: "HELLO", Color: testSet.Alert},
				{Text: "WORLD", Color: testDef},
			},
		},
		{
			name:  "bold composes with color",
			input: "\x1b[1m\x1b[32mX",
			want: []Segment{
				{Text: "X", Color: testSet.Primary, Bold: true},
			},
		},
		{
			name:  "combined params in one sequence",
			input: "\x1b[1;33mwarn",
			want: []Segment{
				{Text: "warn", Color: testSet.Warning, Bold: true},
			},
		},
		{
			name:  "later code overrides earlier",
			input: "\x1b[31;34mblue",
			want: []Segment{
				{Text: "blue", Color: testSet.Alternate1},
			},
		},
		{
			name:  "two-digit reset clears bold",
			input: "\x1b[1mB\x1b[00mplain",
			want: []Segment{
				{Text: "B", Color: testDef, Bold: true},
				{Text: "plain", Color: testDef},
			},
		},
		{
			name:  "all mapped colors",
			input: "\x1b[31mr\x1b[32mg\x1b[33my\x1b[34mb\x1b[35mm\x1b[36mc",
			want: []Segment{
				{Text: "r", Color: testSet.Alert},
				{Text: "g", Color: testSet.Primary},
				{Text: "y", Color: testSet.Warning},
				{Text: "b", Color: testSet.Alternate1},
				{Text: "m", Color: testSet.Alternate2},
				{Text: "c", Color: testSet.Alternate3},
			},
		},
		{
			name:  "unknown SGR code ignored",
			input: "\x1b[95mtext",
			want: []Segment{
				{Text: "text", Color: testDef},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, testSet, testDef)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNonSGRSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "erase line is invisible",
			input: "A\x1b[KB",
			want: []Segment{
				{Text: "A", Color: testDef},
				{Text: "B", Color: testDef},
			},
		},
		{
			name:  "cursor movement is invisible",
			input: "A\x1b[2JB",
			want: []Segment{
				{Text: "A", Color: testDef},
				{Text: "B", Color: testDef},
			},
		},
		{
			name:  "private mode sequence leaves style untouched",
			input: "\x1b[31mred\x1b[?25lstill red",
			want: []Segment{
				{Text: "red", Color: testSet.Alert},
				{Text: "still red", Color: testSet.Alert},
			},
		},
		{
			name:  "osc title skipped via BEL",
			input: "A\x1b]0;my title\x07B",
			want: []Segment{
				{Text: "A", Color: testDef},
				{Text: "B", Color: testDef},
			},
		},
		{
			name:  "osc skipped via ESC backslash",
			input: "A\x1b]0;my title\x1b\\B",
			want: []Segment{
				{Text: "A", Color: testDef},
				{Text: "B", Color: testDef},
			},
		},
		{
			name:  "bare escape skips one character",
			input: "A\x1b7B",
			want: []Segment{
				{Text: "A", Color: testDef},
				{Text: "B", Color: testDef},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, testSet, testDef)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMalformedInput(t *testing.T) {
	// None of these may panic, and text before the damage must survive.
	tests := []struct {
		name  string
		input string
	}{
		{"trailing escape", "text\x1b"},
		{"trailing CSI intro", "text\x1b["},
		{"unterminated CSI params", "text\x1b[31;4"},
		{"unterminated OSC", "text\x1b]0;never ends"},
		{"escape at start", "\x1b[mtext"},
		{"only escapes", "\x1b\x1b\x1b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, testSet, testDef)
			joined := ""
			for _, seg := range got {
				joined += seg.Text
			}
			if want := "text"; strings.HasPrefix(tt.input, "text") && joined != want {
				t.Errorf("Parse(%q) visible text = %q, want %q", tt.input, joined, want)
			}
		})
	}
}

func TestParseStatelessAcrossCalls(t *testing.T) {
	// A color left open in one call must not leak into the next.
	Parse("\x1b[31mred with no reset", testSet, testDef)
	got := Parse("plain", testSet, testDef)
	want := []Segment{{Text: "plain", Color: testDef}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("second Parse = %+v, want %+v", got, want)
	}
}
