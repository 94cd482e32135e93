// Package list implements the primitive behaviors shared by list-like
// widgets: focus tracking, directional navigation, selection and expansion.
//
// The behaviors never own items. Each one reads a live Items accessor on
// every call and derives an item's index by looking it up by id, so items
// may be added, removed or reordered between calls.
package list

import (
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
)

// Item is the capability every list item has.
type Item interface {
	// ID is stable and unique across the document.
	ID() string
	// Element is the rendered element, used for imperative focus.
	Element() dom.Element
	Disabled() bool
}

// SelectableItem is an item whose value can be part of a selection.
type SelectableItem[V comparable] interface {
	Item
	Value() V
}

// ExpandableItem is an item that owns a show/hide region.
type ExpandableItem interface {
	Item
	ExpansionID() string
	Expandable() bool
}

// FocusMode selects how the active item is exposed to assistive tech.
type FocusMode int

const (
	// Roving moves native focus between items; only the active item is a
	// tab stop.
	Roving FocusMode = iota
	// ActiveDescendant keeps native focus on the container and announces
	// the active item by id.
	ActiveDescendant
)

// String returns the attribute spelling of the mode.
func (m FocusMode) String() string {
	if m == ActiveDescendant {
		return "activedescendant"
	}
	return "roving"
}

// ParseFocusMode converts "roving" or "activedescendant".
func ParseFocusMode(s string) (FocusMode, bool) {
	switch s {
	case "roving", "":
		return Roving, true
	case "activedescendant":
		return ActiveDescendant, true
	}
	return Roving, false
}

// Orientation is the main navigation axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation converts "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "vertical", "":
		return Vertical, true
	case "horizontal":
		return Horizontal, true
	}
	return Vertical, false
}

// Direction is the text direction, which flips horizontal arrow keys.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection converts "ltr" or "rtl".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "ltr", "":
		return LTR, true
	case "rtl":
		return RTL, true
	}
	return LTR, false
}

// PrevKey returns the key that moves to the previous item along o.
func PrevKey(o Orientation, d Direction) string {
	if o == Vertical {
		return key.ArrowUp
	}
	if d == RTL {
		return key.ArrowRight
	}
	return key.ArrowLeft
}

// NextKey returns the key that moves to the next item along o.
func NextKey(o Orientation, d Direction) string {
	if o == Vertical {
		return key.ArrowDown
	}
	if d == RTL {
		return key.ArrowLeft
	}
	return key.ArrowRight
}

// AltPrevKey returns the previous key on the axis orthogonal to o.
func AltPrevKey(o Orientation, d Direction) string {
	if o == Vertical {
		return PrevKey(Horizontal, d)
	}
	return key.ArrowUp
}

// AltNextKey returns the next key on the axis orthogonal to o.
func AltNextKey(o Orientation, d Direction) string {
	if o == Vertical {
		return NextKey(Horizontal, d)
	}
	return key.ArrowDown
}

// IndexOf returns the position of the item with the same id, or -1.
func IndexOf[T Item](items []T, item T) int {
	id := item.ID()
	for i, it := range items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// ItemForTarget resolves the item whose element is the closest ancestor of
// target with the given role.
func ItemForTarget[T Item](items []T, target dom.Element, role string) (T, bool) {
	var zero T
	el := dom.Closest(target, role)
	if el == nil {
		return zero, false
	}
	for _, it := range items {
		if dom.SameElement(it.Element(), el) {
			return it, true
		}
	}
	return zero, false
}

func boolOr(fn func() bool, def bool) func() bool {
	if fn != nil {
		return fn
	}
	return func() bool { return def }
}
