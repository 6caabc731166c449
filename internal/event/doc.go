// Package event provides a pub-sub event bus for decoupled inter-component
// communication in sigmaterm.
//
// The multiplexer publishes pane lifecycle events without knowing who will
// receive them; the presentation layer and logging subscribe without knowing
// who produced them.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
// Pane Lifecycle:
//   - [PaneAddedEvent]: Emitted when a pane is created
//   - [PaneRemovedEvent]: Emitted when a pane is closed and its slot reclaimed
//   - [PaneActivatedEvent]: Emitted when input focus moves to a pane
//
// Session State:
//   - [ModeChangedEvent]: Emitted when a pane flips between line-edit and raw input
//   - [SessionExitedEvent]: Emitted when a pane's child shell exits on its own
//
// Multiplexer State:
//   - [DisplayModeChangedEvent]: Emitted when the view switches between grid and single
//   - [CapacityRejectedEvent]: Emitted when pane creation is refused at the cap
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously and protected against panics - a panicking handler will not
// prevent other handlers from being called.
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - pane.added, pane.removed, pane.activated
//   - session.mode_changed, session.exited
//   - mux.display_changed, mux.capacity_rejected
package event
