// Package listbox implements the listbox interaction pattern: a list of
// options supporting single or multiple selection, selection that follows
// focus or is explicit, range extension with Shift, and a typeahead hook.
package listbox

import (
	"fmt"

	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/signal"
)

// SelectionMode controls whether moving focus changes the selection.
type SelectionMode int

const (
	// Follow collapses the selection to the active option on navigation.
	Follow SelectionMode = iota
	// Explicit only changes the selection on Space, Enter or click.
	Explicit
)

// String returns "follow" or "explicit".
func (m SelectionMode) String() string {
	if m == Explicit {
		return "explicit"
	}
	return "follow"
}

// ParseSelectionMode converts "follow" or "explicit".
func ParseSelectionMode(s string) (SelectionMode, bool) {
	switch s {
	case "follow", "":
		return Follow, true
	case "explicit":
		return Explicit, true
	}
	return Follow, false
}

// Typeahead is the hook for character search. Search returns the index of
// the option to move to.
type Typeahead interface {
	IsTyping() bool
	Search(char string) (int, bool)
}

// Inputs are the accessors and cells a Listbox reads. Nil accessors take
// their defaults: enabled, editable, single-select, no wrap, skip disabled,
// vertical, left-to-right, roving focus, follow selection.
type Inputs[V comparable] struct {
	Items         func() []*Option[V]
	Value         *signal.Signal[[]V]
	ActiveIndex   *signal.Signal[int]
	Disabled      func() bool
	Readonly      func() bool
	Multi         func() bool
	Wrap          func() bool
	SkipDisabled  func() bool
	Orientation   func() list.Orientation
	TextDirection func() list.Direction
	FocusMode     func() list.FocusMode
	SelectionMode func() SelectionMode
	Typeahead     Typeahead
}

// NavOptions describe the selection side effect of a navigation.
type NavOptions struct {
	SelectOne   bool
	SelectRange bool
	Toggle      bool
	// Unanchored keeps the range anchor in place for SelectRange.
	Unanchored bool
}

// Listbox wires focus, navigation and selection into the listbox contract.
type Listbox[V comparable] struct {
	inputs    Inputs[V]
	focus     *list.Focus[*Option[V]]
	nav       *list.Navigation[*Option[V]]
	selection *list.Selection[*Option[V], V]

	// Range navigation never wraps.
	rangeNav bool

	keydown     *signal.Computed[*event.KeyboardManager]
	pointerdown *signal.Computed[*event.PointerManager]
}

func boolOr(fn func() bool, def bool) func() bool {
	if fn != nil {
		return fn
	}
	return signal.Static(def)
}

// New creates a listbox.
func New[V comparable](in Inputs[V]) *Listbox[V] {
	if in.Items == nil {
		in.Items = func() []*Option[V] { return nil }
	}
	if in.Value == nil {
		in.Value = signal.New[[]V](nil)
	}
	if in.ActiveIndex == nil {
		in.ActiveIndex = signal.New(-1)
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.Readonly = boolOr(in.Readonly, false)
	in.Multi = boolOr(in.Multi, false)
	in.Wrap = boolOr(in.Wrap, false)
	in.SkipDisabled = boolOr(in.SkipDisabled, true)
	if in.Orientation == nil {
		in.Orientation = signal.Static(list.Vertical)
	}
	if in.TextDirection == nil {
		in.TextDirection = signal.Static(list.LTR)
	}
	if in.FocusMode == nil {
		in.FocusMode = signal.Static(list.Roving)
	}
	if in.SelectionMode == nil {
		in.SelectionMode = signal.Static(Follow)
	}

	lb := &Listbox[V]{inputs: in}
	lb.focus = list.NewFocus(list.FocusInputs[*Option[V]]{
		Items:        in.Items,
		Disabled:     in.Disabled,
		SkipDisabled: in.SkipDisabled,
		FocusMode:    in.FocusMode,
		ActiveIndex:  in.ActiveIndex,
	})
	lb.nav = list.NewNavigation(lb.focus, func() bool {
		return !lb.rangeNav && in.Wrap()
	})
	lb.selection = list.NewSelection(lb.focus, list.SelectionInputs[V]{
		Multi: in.Multi,
		Value: in.Value,
	})
	lb.keydown = signal.NewComputed(lb.buildKeydown)
	lb.pointerdown = signal.NewComputed(lb.buildPointerdown)
	return lb
}

// NewOption creates an option owned by this listbox.
func (lb *Listbox[V]) NewOption(in OptionInputs[V]) *Option[V] {
	if in.Disabled == nil {
		in.Disabled = signal.Static(false)
	}
	return &Option[V]{inputs: in, listbox: lb}
}

// Items returns the current options.
func (lb *Listbox[V]) Items() []*Option[V] {
	return lb.inputs.Items()
}

// Disabled reports whether the listbox is disabled or has no enabled option.
func (lb *Listbox[V]) Disabled() bool {
	return lb.focus.IsListDisabled()
}

// Readonly reports whether selection changes are blocked.
func (lb *Listbox[V]) Readonly() bool {
	return lb.inputs.Readonly()
}

// Multi reports whether several options may be selected.
func (lb *Listbox[V]) Multi() bool {
	return lb.inputs.Multi()
}

// FollowFocus reports whether selection follows focus.
func (lb *Listbox[V]) FollowFocus() bool {
	return lb.inputs.SelectionMode() == Follow
}

// Orientation returns the navigation axis.
func (lb *Listbox[V]) Orientation() list.Orientation {
	return lb.inputs.Orientation()
}

// Tabindex is the container tabindex.
func (lb *Listbox[V]) Tabindex() int {
	return lb.focus.ListTabindex()
}

// ActiveDescendant returns the active option id in activedescendant mode.
func (lb *Listbox[V]) ActiveDescendant() (string, bool) {
	return lb.focus.ActiveDescendant()
}

// ActiveIndex returns the index of the active option, or -1.
func (lb *Listbox[V]) ActiveIndex() int {
	return lb.focus.ActiveIndex()
}

// ActiveItem returns the active option.
func (lb *Listbox[V]) ActiveItem() (*Option[V], bool) {
	return lb.focus.ActiveItem()
}

// Value returns the selected values.
func (lb *Listbox[V]) Value() []V {
	return lb.inputs.Value.Get()
}

// Selection exposes the selection manager for programmatic use.
func (lb *Listbox[V]) Selection() *list.Selection[*Option[V], V] {
	return lb.selection
}

func (lb *Listbox[V]) prevKey() string {
	return list.PrevKey(lb.inputs.Orientation(), lb.inputs.TextDirection())
}

func (lb *Listbox[V]) nextKey() string {
	return list.NextKey(lb.inputs.Orientation(), lb.inputs.TextDirection())
}

// Next moves to the next option.
func (lb *Listbox[V]) Next(opts NavOptions) bool {
	return lb.navigate(opts, lb.nav.Next)
}

// Prev moves to the previous option.
func (lb *Listbox[V]) Prev(opts NavOptions) bool {
	return lb.navigate(opts, lb.nav.Prev)
}

// First moves to the first option.
func (lb *Listbox[V]) First(opts NavOptions) bool {
	return lb.navigate(opts, lb.nav.First)
}

// Last moves to the last option.
func (lb *Listbox[V]) Last(opts NavOptions) bool {
	return lb.navigate(opts, lb.nav.Last)
}

// Goto moves to opt.
func (lb *Listbox[V]) Goto(opt *Option[V], opts NavOptions) bool {
	return lb.navigate(opts, func() bool { return lb.nav.Goto(opt) })
}

func (lb *Listbox[V]) navigate(opts NavOptions, op func() bool) bool {
	if opts.SelectRange {
		lb.rangeNav = true
		defer func() { lb.rangeNav = false }()
	}
	moved := op()
	if moved {
		lb.updateSelection(opts)
	}
	return moved
}

func (lb *Listbox[V]) updateSelection(opts NavOptions) {
	if opts.Toggle {
		lb.selection.Toggle(nil)
	}
	if opts.SelectOne {
		lb.selection.SelectOne()
	}
	if opts.SelectRange {
		lb.selection.SelectRange(list.SelectOptions{Anchor: !opts.Unanchored})
	}
}

// anchor starts a new range at index.
func (lb *Listbox[V]) anchor(index int) {
	lb.selection.BeginRangeSelection(index)
}

// search hands a typed character to the typeahead hook. A blank only
// searches while the user is already typing.
func (lb *Listbox[V]) search(char string, opts NavOptions) bool {
	ta := lb.inputs.Typeahead
	if ta == nil {
		return false
	}
	if char == " " && !ta.IsTyping() {
		return false
	}
	i, ok := ta.Search(char)
	items := lb.inputs.Items()
	if !ok || i < 0 || i >= len(items) {
		return false
	}
	return lb.Goto(items[i], opts)
}

// SetDefaultState makes the first selected focusable option active, or the
// first focusable option when none is selected.
func (lb *Listbox[V]) SetDefaultState() {
	lb.focus.SetDefaultState(lb.selection.IsSelected)
}

// Validate returns accessibility problems in the current configuration.
func (lb *Listbox[V]) Validate() []string {
	var violations []string
	values := lb.inputs.Value.Peek()
	if !lb.inputs.Multi() && len(values) > 1 {
		violations = append(violations, fmt.Sprintf(
			"a single-select listbox should not have multiple selected options; selected: %v", values))
	}

	items := lb.inputs.Items()
	if i := lb.inputs.ActiveIndex.Peek(); i < -1 || i >= len(items) {
		violations = append(violations, fmt.Sprintf(
			"active index %d is out of bounds for %d options", i, len(items)))
	}

	if lb.inputs.SkipDisabled() {
		for _, opt := range items {
			if opt.Disabled() && lb.selection.IsSelected(opt) {
				violations = append(violations, fmt.Sprintf(
					"option %q is selected and disabled while skipDisabled is set; it cannot be reached by keyboard", opt.ID()))
			}
		}
	}
	return violations
}
