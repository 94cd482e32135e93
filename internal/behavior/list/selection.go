package list

import (
	"slices"

	"github.com/dshills/listkit/internal/signal"
)

// SelectOptions tune a selection call.
type SelectOptions struct {
	// Anchor re-establishes the range anchor at the selected item.
	Anchor bool
}

var (
	// Anchored is the default: selecting moves the range anchor.
	Anchored = SelectOptions{Anchor: true}
	// Unanchored leaves the range anchor where it is.
	Unanchored = SelectOptions{}
)

// SelectionInputs are the accessors a Selection reads.
type SelectionInputs[V comparable] struct {
	Multi func() bool

	// Value is lent to the Selection, which both reads and writes it.
	Value *signal.Signal[[]V]
}

// Selection manages the selected values of a list. A nil item argument
// always means the active item.
type Selection[T SelectableItem[V], V comparable] struct {
	focus           *Focus[T]
	inputs          SelectionInputs[V]
	rangeStartIndex int
	rangeEndIndex   int
}

// NewSelection creates a selection manager over focus.
func NewSelection[T SelectableItem[V], V comparable](focus *Focus[T], in SelectionInputs[V]) *Selection[T, V] {
	in.Multi = boolOr(in.Multi, false)
	if in.Value == nil {
		in.Value = signal.New[[]V](nil)
	}
	return &Selection[T, V]{focus: focus, inputs: in}
}

// Multi reports whether more than one value may be selected.
func (s *Selection[T, V]) Multi() bool {
	return s.inputs.Multi()
}

// Values returns the selected values.
func (s *Selection[T, V]) Values() []V {
	return s.inputs.Value.Get()
}

// RangeStartIndex returns the range anchor.
func (s *Selection[T, V]) RangeStartIndex() int {
	return s.rangeStartIndex
}

// RangeEndIndex returns the far end of the last applied range.
func (s *Selection[T, V]) RangeEndIndex() int {
	return s.rangeEndIndex
}

// IsSelected reports whether item's value is selected.
func (s *Selection[T, V]) IsSelected(item T) bool {
	return slices.Contains(s.inputs.Value.Get(), item.Value())
}

// SelectedItems returns the items whose values are selected, in list order.
func (s *Selection[T, V]) SelectedItems() []T {
	var out []T
	for _, it := range s.focus.Items() {
		if s.IsSelected(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Selection[T, V]) resolve(item *T) (T, bool) {
	if item != nil {
		return *item, true
	}
	return s.focus.ActiveItem()
}

// Select adds item's value. Disabled or already selected items are
// ignored. In single mode the previous selection is cleared first.
func (s *Selection[T, V]) Select(item *T, opts SelectOptions) {
	it, ok := s.resolve(item)
	if !ok || it.Disabled() || s.IsSelected(it) {
		return
	}
	if !s.inputs.Multi() {
		s.DeselectAll()
		// A disabled item set from outside cannot be cleared; keep at most one.
		if len(s.inputs.Value.Peek()) > 0 {
			return
		}
	}
	if opts.Anchor {
		s.BeginRangeSelection(s.focus.IndexOf(it))
	}
	v := it.Value()
	s.inputs.Value.Update(func(values []V) []V {
		return append(slices.Clone(values), v)
	})
}

// Deselect removes item's value unless the item is disabled.
func (s *Selection[T, V]) Deselect(item *T) {
	it, ok := s.resolve(item)
	if !ok || it.Disabled() {
		return
	}
	s.removeValue(it.Value())
}

func (s *Selection[T, V]) removeValue(v V) {
	values := s.inputs.Value.Peek()
	if !slices.Contains(values, v) {
		return
	}
	s.inputs.Value.Set(slices.DeleteFunc(slices.Clone(values), func(x V) bool { return x == v }))
}

// Toggle flips the selection state of item.
func (s *Selection[T, V]) Toggle(item *T) {
	it, ok := s.resolve(item)
	if !ok {
		return
	}
	if s.IsSelected(it) {
		s.Deselect(&it)
	} else {
		s.Select(&it, Anchored)
	}
}

// ToggleOne deselects the active item if selected, otherwise collapses the
// selection to it.
func (s *Selection[T, V]) ToggleOne() {
	it, ok := s.focus.ActiveItem()
	if !ok {
		return
	}
	if s.IsSelected(it) {
		s.Deselect(&it)
	} else {
		s.SelectOne()
	}
}

// SelectAll selects every enabled item. No-op in single mode.
func (s *Selection[T, V]) SelectAll() {
	if !s.inputs.Multi() {
		return
	}
	for _, it := range s.focus.Items() {
		s.Select(&it, Unanchored)
	}
	s.BeginRangeSelection(s.focus.ActiveIndex())
}

// DeselectAll clears every value that belongs to an enabled item and every
// value that matches no current item. Values of disabled items remain.
func (s *Selection[T, V]) DeselectAll() {
	items := s.focus.Items()
	for _, v := range slices.Clone(s.inputs.Value.Peek()) {
		i := slices.IndexFunc(items, func(it T) bool { return it.Value() == v })
		if i < 0 {
			s.removeValue(v)
			continue
		}
		s.Deselect(&items[i])
	}
}

// ToggleAll selects every enabled item unless they already are all
// selected, in which case it deselects them.
func (s *Selection[T, V]) ToggleAll() {
	for _, it := range s.focus.Items() {
		if !it.Disabled() && !s.IsSelected(it) {
			s.SelectAll()
			return
		}
	}
	s.DeselectAll()
}

// SelectOne collapses the selection to the active item.
func (s *Selection[T, V]) SelectOne() {
	it, ok := s.focus.ActiveItem()
	if !ok || it.Disabled() {
		return
	}
	s.DeselectAll()
	if len(s.inputs.Value.Peek()) > 0 && !s.inputs.Multi() {
		return
	}
	s.Select(&it, Anchored)
}

// SelectRange selects the span between the anchor and the active item and
// deselects whatever the previous span covered beyond it, so reversing
// direction shrinks the range.
func (s *Selection[T, V]) SelectRange(opts SelectOptions) {
	prev := s.focus.PrevActiveIndex()
	if opts.Anchor && prev == s.rangeStartIndex {
		s.BeginRangeSelection(prev)
	}

	inRange := s.itemsFromIndex(s.rangeStartIndex)
	var outOfRange []T
	for _, it := range s.itemsFromIndex(s.rangeEndIndex) {
		if !containsItem(inRange, it) {
			outOfRange = append(outOfRange, it)
		}
	}

	for i := range outOfRange {
		s.Deselect(&outOfRange[i])
	}
	for i := range inRange {
		s.Select(&inRange[i], Unanchored)
	}

	if len(inRange) > 0 {
		s.rangeEndIndex = s.focus.IndexOf(inRange[len(inRange)-1])
	}
}

// BeginRangeSelection anchors a new range at index.
func (s *Selection[T, V]) BeginRangeSelection(index int) {
	s.rangeStartIndex = index
	s.rangeEndIndex = index
}

// itemsFromIndex returns the inclusive span between index and the active
// item, ordered outward from index.
func (s *Selection[T, V]) itemsFromIndex(index int) []T {
	items := s.focus.Items()
	active := s.focus.ActiveIndex()
	if index < 0 || active < 0 || index >= len(items) || active >= len(items) {
		return nil
	}

	lower, upper := min(index, active), max(index, active)
	span := slices.Clone(items[lower : upper+1])
	if active < index {
		slices.Reverse(span)
	}
	return span
}

func containsItem[T Item](items []T, item T) bool {
	return IndexOf(items, item) >= 0
}
