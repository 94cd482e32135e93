// Package event dispatches keyboard and pointer events to ordered handler
// registrations.
//
// A Manager evaluates every registration against an event, in the order
// they were added, and runs each one that matches. Registrations are not
// mutually exclusive: when two matchers accept the same event both handlers
// fire. Callers that need single-firing must register disjoint matchers.
package event

import "github.com/dshills/listkit/internal/input/key"

// Event is the part of a keyboard or pointer event the managers need.
type Event interface {
	Mods() key.Modifier
	PreventDefault()
	StopPropagation()
}

// Registration pairs a matcher with a handler and the side effects applied
// after the handler runs.
type Registration[E Event] struct {
	Matcher         func(E) bool
	Handler         func(E)
	PreventDefault  bool
	StopPropagation bool
}

// Manager holds an ordered list of registrations.
type Manager[E Event] struct {
	registrations []Registration[E]
}

// Register appends a registration and returns the manager for chaining.
// Registrations without a matcher or handler are ignored.
func (m *Manager[E]) Register(r Registration[E]) *Manager[E] {
	if r.Matcher == nil || r.Handler == nil {
		return m
	}
	m.registrations = append(m.registrations, r)
	return m
}

// Handle runs every matching registration in order and reports whether any
// matched.
func (m *Manager[E]) Handle(e E) bool {
	handled := false
	for _, r := range m.registrations {
		if !r.Matcher(e) {
			continue
		}
		handled = true
		r.Handler(e)
		if r.PreventDefault {
			e.PreventDefault()
		}
		if r.StopPropagation {
			e.StopPropagation()
		}
	}
	return handled
}

// Len returns the number of registrations.
func (m *Manager[E]) Len() int {
	return len(m.registrations)
}
