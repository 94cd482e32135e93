package list

import "github.com/dshills/listkit/internal/signal"

// FocusInputs are the accessors a Focus reads. Nil accessors take their
// defaults: enabled, skip disabled items, roving focus.
type FocusInputs[T Item] struct {
	Items        func() []T
	Disabled     func() bool
	SkipDisabled func() bool
	FocusMode    func() FocusMode

	// ActiveIndex is lent to the Focus, which both reads and writes it.
	// A nil cell is replaced with a private one starting at -1.
	ActiveIndex *signal.Signal[int]
}

// Focus tracks the active item and derives tab stops from the focus mode.
type Focus[T Item] struct {
	inputs          FocusInputs[T]
	prevActiveIndex int
}

// NewFocus creates a focus tracker.
func NewFocus[T Item](in FocusInputs[T]) *Focus[T] {
	if in.Items == nil {
		in.Items = func() []T { return nil }
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.SkipDisabled = boolOr(in.SkipDisabled, true)
	if in.FocusMode == nil {
		in.FocusMode = signal.Static(Roving)
	}
	if in.ActiveIndex == nil {
		in.ActiveIndex = signal.New(-1)
	}
	return &Focus[T]{inputs: in, prevActiveIndex: -1}
}

// Items returns the current item sequence.
func (f *Focus[T]) Items() []T {
	return f.inputs.Items()
}

// ActiveIndexCell returns the active index cell.
func (f *Focus[T]) ActiveIndexCell() *signal.Signal[int] {
	return f.inputs.ActiveIndex
}

// ActiveIndex returns the index of the active item, or -1.
func (f *Focus[T]) ActiveIndex() int {
	return f.inputs.ActiveIndex.Get()
}

// PrevActiveIndex returns the index that was active before the last move.
func (f *Focus[T]) PrevActiveIndex() int {
	return f.prevActiveIndex
}

// ActiveItem returns the active item. ok is false when no item is active or
// the index no longer fits the item sequence.
func (f *Focus[T]) ActiveItem() (item T, ok bool) {
	items := f.inputs.Items()
	i := f.inputs.ActiveIndex.Get()
	if i < 0 || i >= len(items) {
		return item, false
	}
	return items[i], true
}

// IndexOf returns the current index of item, or -1.
func (f *Focus[T]) IndexOf(item T) int {
	return IndexOf(f.inputs.Items(), item)
}

// FocusMode returns the configured mode.
func (f *Focus[T]) FocusMode() FocusMode {
	return f.inputs.FocusMode()
}

// SkipDisabled reports whether disabled items are skipped.
func (f *Focus[T]) SkipDisabled() bool {
	return f.inputs.SkipDisabled()
}

// IsListDisabled reports whether the list is disabled or has no enabled
// items. An empty list counts as disabled.
func (f *Focus[T]) IsListDisabled() bool {
	if f.inputs.Disabled() {
		return true
	}
	for _, it := range f.inputs.Items() {
		if !it.Disabled() {
			return false
		}
	}
	return true
}

// IsFocusable reports whether item can become active.
func (f *Focus[T]) IsFocusable(item T) bool {
	return !item.Disabled() || !f.inputs.SkipDisabled()
}

// ListTabindex is the container's tabindex. A disabled list stays in the tab
// order so its state can be announced.
func (f *Focus[T]) ListTabindex() int {
	if f.IsListDisabled() || f.inputs.FocusMode() == ActiveDescendant {
		return 0
	}
	return -1
}

// ItemTabindex is item's tabindex. Only the active item is a tab stop, and
// only in roving mode.
func (f *Focus[T]) ItemTabindex(item T) int {
	if f.IsListDisabled() || f.inputs.FocusMode() == ActiveDescendant {
		return -1
	}
	if f.IndexOf(item) == f.inputs.ActiveIndex.Get() {
		return 0
	}
	return -1
}

// ActiveDescendant returns the id of the active item in activedescendant
// mode.
func (f *Focus[T]) ActiveDescendant() (string, bool) {
	if f.IsListDisabled() || f.inputs.FocusMode() == Roving {
		return "", false
	}
	item, ok := f.ActiveItem()
	if !ok {
		return "", false
	}
	return item.ID(), true
}

// Focus makes item active. In roving mode native focus moves to the item's
// element. Returns false when the list is disabled, the item is not
// focusable, or it is not in the list.
func (f *Focus[T]) Focus(item T) bool {
	if f.IsListDisabled() || !f.IsFocusable(item) {
		return false
	}
	i := f.IndexOf(item)
	if i < 0 {
		return false
	}

	f.prevActiveIndex = f.inputs.ActiveIndex.Peek()
	f.inputs.ActiveIndex.Set(i)

	if f.inputs.FocusMode() == Roving {
		if el := item.Element(); el != nil {
			el.Focus()
		}
	}
	return true
}

// SetDefaultState picks the initial active item: the first focusable item
// that is selected, else the first focusable item. Native focus is not
// moved.
func (f *Focus[T]) SetDefaultState(selected func(T) bool) {
	first := -1
	for i, it := range f.inputs.Items() {
		if !f.IsFocusable(it) {
			continue
		}
		if first < 0 {
			first = i
		}
		if selected != nil && selected(it) {
			f.inputs.ActiveIndex.Set(i)
			return
		}
	}
	if first >= 0 {
		f.inputs.ActiveIndex.Set(first)
	}
}
