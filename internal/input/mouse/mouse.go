package mouse

import (
	"time"

	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
)

// Button represents a pointer button using DOM button numbering.
type Button uint8

const (
	// ButtonPrimary is the main (usually left) button.
	ButtonPrimary Button = iota
	// ButtonAuxiliary is the middle button (wheel click).
	ButtonAuxiliary
	// ButtonSecondary is the context-menu (usually right) button.
	ButtonSecondary
	// ButtonBack is the back navigation button.
	ButtonBack
	// ButtonForward is the forward navigation button.
	ButtonForward
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonSecondary:
		return "secondary"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Action represents the type of pointer action.
type Action uint8

const (
	// ActionPress indicates a button press (pointerdown).
	ActionPress Action = iota
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates pointer movement.
	ActionMove
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	default:
		return "unknown"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Event represents a pointer input event.
type Event struct {
	// Target is the innermost element under the pointer.
	Target dom.Element

	// Position is the screen coordinates.
	Position Position

	// Button is the pointer button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of pointer action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented   bool
	propagationStopped bool
}

// NewPress creates a primary-button press on target.
func NewPress(target dom.Element, mods key.Modifier) *Event {
	return &Event{
		Target:    target,
		Button:    ButtonPrimary,
		Modifiers: mods,
		Action:    ActionPress,
		Timestamp: time.Now(),
	}
}

// Mods returns the event's modifier mask.
func (e *Event) Mods() key.Modifier {
	return e.Modifiers
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation stops the event from reaching outer handlers.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}
