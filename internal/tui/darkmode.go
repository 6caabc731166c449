package tui

import "github.com/muesli/termenv"

// ResolveDarkMode maps the configured color mode to a boolean. "dark" and
// "light" are taken at face value; anything else probes the terminal
// background, defaulting to dark when the probe is inconclusive.
func ResolveDarkMode(mode string) bool {
	switch mode {
	case "dark":
		return true
	case "light":
		return false
	default:
		return termenv.HasDarkBackground()
	}
}
