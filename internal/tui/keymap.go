package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the multiplexer chords. Everything not bound here is
// forwarded to the focused pane's shell, so every chord uses a control
// modifier to stay out of the way of ordinary typing.
type KeyMap struct {
	NewPane   key.Binding
	ClosePane key.Binding
	NextPane  key.Binding
	PrevPane  key.Binding
	Maximize  key.Binding // Toggle between grid and single display.
	Rename    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NewPane: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "new pane"),
	),
	ClosePane: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("C-w", "close pane"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "next pane"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("C-p", "prev pane"),
	),
	Maximize: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("C-f", "maximize/restore"),
	),
	Rename: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "rename pane"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("C-q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewPane, k.ClosePane, k.Maximize, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewPane, k.ClosePane, k.Rename},
		{k.NextPane, k.PrevPane, k.Maximize},
		{k.Help, k.Quit},
	}
}
