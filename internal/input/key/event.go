package key

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/listkit/internal/dom"
)

// Event represents a single key press event.
type Event struct {
	// Key is the DOM-style key value ("ArrowDown", "a", " ").
	Key string

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Target is the element that had focus when the key was pressed.
	Target dom.Element

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(k string, mods Modifier) *Event {
	return &Event{
		Key:       k,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Mods returns the event's modifier mask.
func (e *Event) Mods() Modifier {
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

// IsPrintable returns true if the key is a single character.
func (e *Event) IsPrintable() bool {
	return len([]rune(e.Key)) == 1
}

// WithTarget returns the event with its target set.
func (e *Event) WithTarget(target dom.Element) *Event {
	e.Target = target
	return e
}

// String returns a canonical representation like "Ctrl+Shift+Home".
func (e *Event) String() string {
	if e.Modifiers == ModNone {
		return DisplayName(e.Key)
	}
	return strings.Join([]string{e.Modifiers.String(), DisplayName(e.Key)}, "+")
}

// GoString implements fmt.GoStringer for debugging.
func (e *Event) GoString() string {
	return fmt.Sprintf("Event{Key: %q, Modifiers: %s}", e.Key, e.Modifiers.String())
}
