package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sigmaterm/sigmaterm/internal/session"
)

func TestToKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []session.KeyEvent
	}{
		{
			name: "single rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}},
			want: []session.KeyEvent{{Key: session.KeyRune, Rune: 'a'}},
		},
		{
			name: "pasted runes fan out",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls")},
			want: []session.KeyEvent{
				{Key: session.KeyRune, Rune: 'l'},
				{Key: session.KeyRune, Rune: 's'},
			},
		},
		{
			name: "alt rune keeps modifier",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			want: []session.KeyEvent{{Key: session.KeyRune, Rune: 'x', Alt: true}},
		},
		{
			name: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace},
			want: []session.KeyEvent{{Key: session.KeyRune, Rune: ' '}},
		},
		{
			name: "enter",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: []session.KeyEvent{{Key: session.KeyEnter}},
		},
		{
			name: "backspace",
			msg:  tea.KeyMsg{Type: tea.KeyBackspace},
			want: []session.KeyEvent{{Key: session.KeyBackspace}},
		},
		{
			name: "escape",
			msg:  tea.KeyMsg{Type: tea.KeyEsc},
			want: []session.KeyEvent{{Key: session.KeyEscape}},
		},
		{
			name: "arrow up",
			msg:  tea.KeyMsg{Type: tea.KeyUp},
			want: []session.KeyEvent{{Key: session.KeyUp}},
		},
		{
			name: "page down",
			msg:  tea.KeyMsg{Type: tea.KeyPgDown},
			want: []session.KeyEvent{{Key: session.KeyPageDown}},
		},
		{
			name: "delete",
			msg:  tea.KeyMsg{Type: tea.KeyDelete},
			want: []session.KeyEvent{{Key: session.KeyDelete}},
		},
		{
			name: "ctrl chord becomes ctrl rune",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlC},
			want: []session.KeyEvent{{Key: session.KeyRune, Rune: 'c', Ctrl: true}},
		},
		{
			name: "unmapped key dropped",
			msg:  tea.KeyMsg{Type: tea.KeyF1},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toKeyEvents(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
