// Package event defines event types for decoupling components in sigmaterm.
// These events enable communication between the multiplexer, sessions, and
// the presentation layer without requiring direct dependencies.
package event

import "time"

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "pane.added", "session.exited")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Pane Lifecycle Events
// -----------------------------------------------------------------------------

// PaneAddedEvent is emitted when a new pane is created.
type PaneAddedEvent struct {
	baseEvent
	Slot   int    // Slot index assigned to the pane
	Handle uint64 // Stable pane identity, survives renumbering
	Title  string // Initial pane title
}

// NewPaneAddedEvent creates a PaneAddedEvent.
func NewPaneAddedEvent(slot int, handle uint64, title string) PaneAddedEvent {
	return PaneAddedEvent{
		baseEvent: newBaseEvent("pane.added"),
		Slot:      slot,
		Handle:    handle,
		Title:     title,
	}
}

// PaneRemovedEvent is emitted when a pane is closed and its slot reclaimed.
// Remaining panes are renumbered densely before the event is published.
type PaneRemovedEvent struct {
	baseEvent
	Slot   int    // Slot index the pane held when it was removed
	Handle uint64 // Stable pane identity
}

// NewPaneRemovedEvent creates a PaneRemovedEvent.
func NewPaneRemovedEvent(slot int, handle uint64) PaneRemovedEvent {
	return PaneRemovedEvent{
		baseEvent: newBaseEvent("pane.removed"),
		Slot:      slot,
		Handle:    handle,
	}
}

// PaneActivatedEvent is emitted when input focus moves to a pane.
type PaneActivatedEvent struct {
	baseEvent
	Slot int // Slot index of the newly focused pane
}

// NewPaneActivatedEvent creates a PaneActivatedEvent.
func NewPaneActivatedEvent(slot int) PaneActivatedEvent {
	return PaneActivatedEvent{
		baseEvent: newBaseEvent("pane.activated"),
		Slot:      slot,
	}
}

// -----------------------------------------------------------------------------
// Session State Events
// -----------------------------------------------------------------------------

// ModeChangedEvent is emitted when a pane's input mode flips between
// line-edit and raw.
type ModeChangedEvent struct {
	baseEvent
	Slot int    // Slot index of the pane
	Mode string // New mode name, "line-edit" or "raw"
}

// NewModeChangedEvent creates a ModeChangedEvent.
func NewModeChangedEvent(slot int, mode string) ModeChangedEvent {
	return ModeChangedEvent{
		baseEvent: newBaseEvent("session.mode_changed"),
		Slot:      slot,
		Mode:      mode,
	}
}

// SessionExitedEvent is emitted when a pane's child shell exits on its own,
// as opposed to the pane being closed by the operator.
type SessionExitedEvent struct {
	baseEvent
	Slot   int    // Slot index of the pane whose shell exited
	Handle uint64 // Stable pane identity
}

// NewSessionExitedEvent creates a SessionExitedEvent.
func NewSessionExitedEvent(slot int, handle uint64) SessionExitedEvent {
	return SessionExitedEvent{
		baseEvent: newBaseEvent("session.exited"),
		Slot:      slot,
		Handle:    handle,
	}
}

// -----------------------------------------------------------------------------
// Multiplexer State Events
// -----------------------------------------------------------------------------

// DisplayModeChangedEvent is emitted when the view switches between the grid
// of all panes and a single maximized pane.
type DisplayModeChangedEvent struct {
	baseEvent
	Mode string // New display mode name, "grid" or "single"
	Slot int    // Maximized slot in single mode, -1 in grid mode
}

// NewDisplayModeChangedEvent creates a DisplayModeChangedEvent.
func NewDisplayModeChangedEvent(mode string, slot int) DisplayModeChangedEvent {
	return DisplayModeChangedEvent{
		baseEvent: newBaseEvent("mux.display_changed"),
		Mode:      mode,
		Slot:      slot,
	}
}

// CapacityRejectedEvent is emitted when pane creation is refused because the
// multiplexer is at its pane cap.
type CapacityRejectedEvent struct {
	baseEvent
	Max int // The pane cap that was hit
}

// NewCapacityRejectedEvent creates a CapacityRejectedEvent.
func NewCapacityRejectedEvent(max int) CapacityRejectedEvent {
	return CapacityRejectedEvent{
		baseEvent: newBaseEvent("mux.capacity_rejected"),
		Max:       max,
	}
}
