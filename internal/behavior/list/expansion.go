package list

import (
	"slices"

	"github.com/dshills/listkit/internal/signal"
)

// ExpansionInputs are the accessors an Expansion reads.
type ExpansionInputs[T ExpandableItem] struct {
	Items           func() []T
	Disabled        func() bool
	MultiExpandable func() bool

	// ExpandedIDs is lent to the Expansion, which both reads and writes it.
	ExpandedIDs *signal.Signal[[]string]
}

// Expansion manages which expansion units are open. A nil item argument
// means the active item of the focus tracker.
type Expansion[T ExpandableItem] struct {
	inputs ExpansionInputs[T]
	focus  *Focus[T]
}

// NewExpansion creates an expansion manager. focus supplies the active item
// and may be nil when callers always pass an item.
func NewExpansion[T ExpandableItem](focus *Focus[T], in ExpansionInputs[T]) *Expansion[T] {
	if in.Items == nil {
		if focus != nil {
			in.Items = focus.Items
		} else {
			in.Items = func() []T { return nil }
		}
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.MultiExpandable = boolOr(in.MultiExpandable, false)
	if in.ExpandedIDs == nil {
		in.ExpandedIDs = signal.New[[]string](nil)
	}
	return &Expansion[T]{inputs: in, focus: focus}
}

// ExpandedIDs returns the open expansion ids.
func (x *Expansion[T]) ExpandedIDs() []string {
	return x.inputs.ExpandedIDs.Get()
}

func (x *Expansion[T]) resolve(item *T) (T, bool) {
	if item != nil {
		return *item, true
	}
	if x.focus == nil {
		var zero T
		return zero, false
	}
	return x.focus.ActiveItem()
}

// IsExpandable reports whether item may be opened or closed.
func (x *Expansion[T]) IsExpandable(item T) bool {
	return !x.inputs.Disabled() && !item.Disabled() && item.Expandable()
}

// IsExpanded reports whether item's region is open.
func (x *Expansion[T]) IsExpanded(item T) bool {
	return slices.Contains(x.inputs.ExpandedIDs.Get(), item.ExpansionID())
}

// Open expands item. When only one unit may be open the result is exactly
// that unit, even if a disabled unit was open before.
func (x *Expansion[T]) Open(item *T) bool {
	it, ok := x.resolve(item)
	if !ok || !x.IsExpandable(it) || x.IsExpanded(it) {
		return false
	}

	id := it.ExpansionID()
	if !x.inputs.MultiExpandable() {
		x.CloseAll()
		x.inputs.ExpandedIDs.Set([]string{id})
		return true
	}
	x.inputs.ExpandedIDs.Update(func(ids []string) []string {
		return append(slices.Clone(ids), id)
	})
	return true
}

// Close collapses item.
func (x *Expansion[T]) Close(item *T) bool {
	it, ok := x.resolve(item)
	if !ok || !x.IsExpandable(it) || !x.IsExpanded(it) {
		return false
	}
	id := it.ExpansionID()
	x.inputs.ExpandedIDs.Set(slices.DeleteFunc(slices.Clone(x.inputs.ExpandedIDs.Peek()), func(s string) bool {
		return s == id
	}))
	return true
}

// Toggle opens a closed item and closes an open one.
func (x *Expansion[T]) Toggle(item *T) bool {
	it, ok := x.resolve(item)
	if !ok {
		return false
	}
	if x.IsExpanded(it) {
		return x.Close(&it)
	}
	return x.Open(&it)
}

// OpenAll expands every expandable item. No-op unless multi-expandable.
func (x *Expansion[T]) OpenAll() {
	if !x.inputs.MultiExpandable() {
		return
	}
	for _, it := range x.inputs.Items() {
		x.Open(&it)
	}
}

// CloseAll collapses every expandable item.
func (x *Expansion[T]) CloseAll() {
	for _, it := range x.inputs.Items() {
		x.Close(&it)
	}
}
