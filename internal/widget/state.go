// Package widget models the chat widget lifecycle as an explicit finite
// state machine instead of loose open/minimized booleans.
package widget

// State is the widget's visible state.
type State string

const (
	StateClosed    State = "closed"
	StateOpen      State = "open"
	StateMinimized State = "minimized"
)

// Open shows the widget. Opening from minimized restores it fully.
func (s State) Open() State {
	return StateOpen
}

// Minimize collapses an open widget. No-op unless open.
func (s State) Minimize() State {
	if s == StateOpen {
		return StateMinimized
	}
	return s
}

// Restore expands a minimized widget. No-op unless minimized.
func (s State) Restore() State {
	if s == StateMinimized {
		return StateOpen
	}
	return s
}

// Close hides the widget from any visible state.
func (s State) Close() State {
	return StateClosed
}

// CanSend reports whether sending a message is permitted. Sends are only
// allowed while the widget is fully open.
func (s State) CanSend() bool {
	return s == StateOpen
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	switch s {
	case StateClosed, StateOpen, StateMinimized:
		return true
	}
	return false
}
