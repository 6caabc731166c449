package session

// Signal is a session's outbound request to the multiplexer. Each session
// holds at most one pending signal per tick; the multiplexer collects and
// applies them after all panes have been processed, so no pane mutates the
// pane set while it is being walked.
type Signal int

const (
	// SignalNone means no pending signal.
	SignalNone Signal = iota
	// SignalActivated asks the multiplexer to make this pane active.
	SignalActivated
	// SignalCloseRequested asks the multiplexer to remove this pane.
	// Sessions emit it themselves when the child shell exits.
	SignalCloseRequested
	// SignalMaximizeRequested asks for single-pane display of this pane.
	SignalMaximizeRequested
	// SignalMinimizeRequested asks to return to the grid display.
	SignalMinimizeRequested
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalActivated:
		return "activated"
	case SignalCloseRequested:
		return "close-requested"
	case SignalMaximizeRequested:
		return "maximize-requested"
	case SignalMinimizeRequested:
		return "minimize-requested"
	default:
		return "unknown"
	}
}
