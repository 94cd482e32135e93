package listbox

import "github.com/dshills/listkit/internal/dom"

// OptionInputs describe one option.
type OptionInputs[V comparable] struct {
	ID       string
	Value    V
	Label    string
	Disabled func() bool
	Element  dom.Element
}

// Option is a listbox option. It keeps a non-owning reference to its
// listbox for lookups.
type Option[V comparable] struct {
	inputs  OptionInputs[V]
	listbox *Listbox[V]
}

// ID returns the option id.
func (o *Option[V]) ID() string {
	return o.inputs.ID
}

// Value returns the option value.
func (o *Option[V]) Value() V {
	return o.inputs.Value
}

// Label returns the display label.
func (o *Option[V]) Label() string {
	return o.inputs.Label
}

// Disabled reports whether the option is disabled.
func (o *Option[V]) Disabled() bool {
	return o.inputs.Disabled()
}

// Element returns the element that receives focus.
func (o *Option[V]) Element() dom.Element {
	return o.inputs.Element
}

// Listbox returns the owning listbox.
func (o *Option[V]) Listbox() *Listbox[V] {
	return o.listbox
}

// Index returns the option's current position, or -1.
func (o *Option[V]) Index() int {
	return o.listbox.focus.IndexOf(o)
}

// Active reports whether the option is the active one.
func (o *Option[V]) Active() bool {
	active, ok := o.listbox.focus.ActiveItem()
	return ok && active == o
}

// Selected reports whether the option's value is selected.
func (o *Option[V]) Selected() bool {
	return o.listbox.selection.IsSelected(o)
}

// Tabindex is the option's tabindex.
func (o *Option[V]) Tabindex() int {
	return o.listbox.focus.ItemTabindex(o)
}
