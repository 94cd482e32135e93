package radiogroup

import "github.com/dshills/listkit/internal/dom"

// RadioInputs describe one radio button.
type RadioInputs[V comparable] struct {
	ID       string
	Value    V
	Label    string
	Disabled func() bool
	Element  dom.Element
}

// RadioButton is one radio in a group. The group reference is a lookup
// handle; the button does not own the group.
type RadioButton[V comparable] struct {
	inputs RadioInputs[V]
	group  *Group[V]
}

// ID returns the radio button id.
func (r *RadioButton[V]) ID() string {
	return r.inputs.ID
}

// Value returns the radio button value.
func (r *RadioButton[V]) Value() V {
	return r.inputs.Value
}

// Label returns the display label.
func (r *RadioButton[V]) Label() string {
	return r.inputs.Label
}

// Disabled reports whether the radio button is disabled.
func (r *RadioButton[V]) Disabled() bool {
	return r.inputs.Disabled()
}

// Element returns the element that receives focus.
func (r *RadioButton[V]) Element() dom.Element {
	return r.inputs.Element
}

// Group returns the owning group.
func (r *RadioButton[V]) Group() *Group[V] {
	return r.group
}

// Index returns the radio's current position, or -1.
func (r *RadioButton[V]) Index() int {
	return r.group.focus.IndexOf(r)
}

// Active reports whether the radio is the group's active item.
func (r *RadioButton[V]) Active() bool {
	active, ok := r.group.focus.ActiveItem()
	return ok && active == r
}

// Selected reports whether the radio is checked.
func (r *RadioButton[V]) Selected() bool {
	return r.group.selection.IsSelected(r)
}

// Tabindex is the radio's tabindex.
func (r *RadioButton[V]) Tabindex() int {
	return r.group.focus.ItemTabindex(r)
}
