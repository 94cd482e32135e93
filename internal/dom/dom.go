// Package dom models the element handles that a host rendering layer hands
// to the behavior engine.
//
// The engine never creates or destroys elements. It only reads an element's
// identity and role, walks up its parent chain to resolve pointer targets,
// and asks an element to take native focus in roving-tabindex mode.
package dom

// Element is a non-owning handle to a rendered element.
type Element interface {
	// ID returns the element id. Ids are unique within a document.
	ID() string

	// Role returns the element's interaction role ("option", "radio", "tab").
	Role() string

	// Parent returns the containing element, or nil at the root.
	Parent() Element

	// Focus moves native focus to the element.
	Focus()
}

// Closest walks from el up through its ancestors and returns the first
// element with the given role, including el itself. Returns nil if none.
func Closest(el Element, role string) Element {
	return ClosestFunc(el, func(e Element) bool {
		return e.Role() == role
	})
}

// ClosestFunc walks from el up through its ancestors and returns the first
// element accepted by match.
func ClosestFunc(el Element, match func(Element) bool) Element {
	for e := el; e != nil; e = e.Parent() {
		if match(e) {
			return e
		}
	}
	return nil
}

// SameElement reports whether a and b refer to the same element.
// Elements are compared by id so that handle wrappers compare equal.
func SameElement(a, b Element) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
