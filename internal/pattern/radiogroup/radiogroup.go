// Package radiogroup implements the radio group interaction pattern: a
// single-select list where arrow keys move focus and selection together.
//
// A Group can also be hosted inside a toolbar. In that case the toolbar
// calls NavigateNext, NavigatePrev, SelectActive and GotoElement instead of
// routing events to OnKeydown and OnPointerdown.
package radiogroup

import (
	"fmt"

	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/signal"
)

// Inputs are the accessors and cells a Group reads. Nil accessors take
// their defaults: enabled, editable, no wrap, skip disabled, vertical,
// left-to-right, roving focus.
type Inputs[V comparable] struct {
	Items         func() []*RadioButton[V]
	Value         *signal.Signal[[]V]
	ActiveIndex   *signal.Signal[int]
	Disabled      func() bool
	Readonly      func() bool
	Wrap          func() bool
	SkipDisabled  func() bool
	Orientation   func() list.Orientation
	TextDirection func() list.Direction
	FocusMode     func() list.FocusMode
}

// Group is a radio group.
type Group[V comparable] struct {
	inputs    Inputs[V]
	focus     *list.Focus[*RadioButton[V]]
	nav       *list.Navigation[*RadioButton[V]]
	selection *list.Selection[*RadioButton[V], V]

	keydown     *signal.Computed[*event.KeyboardManager]
	pointerdown *signal.Computed[*event.PointerManager]
}

func boolOr(fn func() bool, def bool) func() bool {
	if fn != nil {
		return fn
	}
	return signal.Static(def)
}

// New creates a radio group.
func New[V comparable](in Inputs[V]) *Group[V] {
	if in.Items == nil {
		in.Items = func() []*RadioButton[V] { return nil }
	}
	if in.Value == nil {
		in.Value = signal.New[[]V](nil)
	}
	if in.ActiveIndex == nil {
		in.ActiveIndex = signal.New(-1)
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.Readonly = boolOr(in.Readonly, false)
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

	g := &Group[V]{inputs: in}
	g.focus = list.NewFocus(list.FocusInputs[*RadioButton[V]]{
		Items:        in.Items,
		Disabled:     in.Disabled,
		SkipDisabled: in.SkipDisabled,
		FocusMode:    in.FocusMode,
		ActiveIndex:  in.ActiveIndex,
	})
	g.nav = list.NewNavigation(g.focus, in.Wrap)
	g.selection = list.NewSelection(g.focus, list.SelectionInputs[V]{
		Multi: signal.Static(false),
		Value: in.Value,
	})
	g.keydown = signal.NewComputed(g.buildKeydown)
	g.pointerdown = signal.NewComputed(g.buildPointerdown)
	return g
}

// NewRadioButton creates a radio button owned by this group.
func (g *Group[V]) NewRadioButton(in RadioInputs[V]) *RadioButton[V] {
	if in.Disabled == nil {
		in.Disabled = signal.Static(false)
	}
	return &RadioButton[V]{inputs: in, group: g}
}

// Items returns the current radio buttons.
func (g *Group[V]) Items() []*RadioButton[V] {
	return g.inputs.Items()
}

// Disabled reports whether the group is disabled or has no enabled radio.
func (g *Group[V]) Disabled() bool {
	return g.focus.IsListDisabled()
}

// SelectedItem returns the radio whose value is selected.
func (g *Group[V]) SelectedItem() (*RadioButton[V], bool) {
	selected := g.selection.SelectedItems()
	if len(selected) == 0 {
		return nil, false
	}
	return selected[0], true
}

// Readonly reports whether the selection is locked, either by input or
// because the selected radio is disabled.
func (g *Group[V]) Readonly() bool {
	if sel, ok := g.SelectedItem(); ok && sel.Disabled() {
		return true
	}
	return g.inputs.Readonly()
}

// Tabindex is the container tabindex.
func (g *Group[V]) Tabindex() int {
	return g.focus.ListTabindex()
}

// ActiveDescendant returns the active radio id in activedescendant mode.
func (g *Group[V]) ActiveDescendant() (string, bool) {
	return g.focus.ActiveDescendant()
}

// ActiveIndex returns the index of the active radio, or -1.
func (g *Group[V]) ActiveIndex() int {
	return g.focus.ActiveIndex()
}

// ActiveItem returns the active radio.
func (g *Group[V]) ActiveItem() (*RadioButton[V], bool) {
	return g.focus.ActiveItem()
}

// Value returns the selected value.
func (g *Group[V]) Value() (V, bool) {
	values := g.inputs.Value.Get()
	if len(values) == 0 {
		var zero V
		return zero, false
	}
	return values[0], true
}

func (g *Group[V]) prevKey() string {
	return list.PrevKey(g.inputs.Orientation(), g.inputs.TextDirection())
}

func (g *Group[V]) nextKey() string {
	return list.NextKey(g.inputs.Orientation(), g.inputs.TextDirection())
}

// navigate runs op and, when it moved and selectOne is set, selects the new
// active radio.
func (g *Group[V]) navigate(selectOne bool, op func() bool) bool {
	moved := op()
	if moved && selectOne {
		g.selection.SelectOne()
	}
	return moved
}

// Next moves to the next radio, selecting it when selectOne is set.
func (g *Group[V]) Next(selectOne bool) bool { return g.navigate(selectOne, g.nav.Next) }

// Prev moves to the previous radio.
func (g *Group[V]) Prev(selectOne bool) bool { return g.navigate(selectOne, g.nav.Prev) }

// First moves to the first radio.
func (g *Group[V]) First(selectOne bool) bool { return g.navigate(selectOne, g.nav.First) }

// Last moves to the last radio.
func (g *Group[V]) Last(selectOne bool) bool { return g.navigate(selectOne, g.nav.Last) }

// Goto moves to rb.
func (g *Group[V]) Goto(rb *RadioButton[V], selectOne bool) bool {
	return g.navigate(selectOne, func() bool { return g.nav.Goto(rb) })
}

// NavigateNext moves focus to the next radio without selecting it.
func (g *Group[V]) NavigateNext() bool {
	if g.Disabled() {
		return false
	}
	return g.nav.Next()
}

// NavigatePrev moves focus to the previous radio without selecting it.
func (g *Group[V]) NavigatePrev() bool {
	if g.Disabled() {
		return false
	}
	return g.nav.Prev()
}

// SelectActive selects the active radio unless the group is disabled or
// readonly.
func (g *Group[V]) SelectActive() bool {
	if g.Disabled() || g.Readonly() {
		return false
	}
	item, ok := g.focus.ActiveItem()
	if !ok {
		return false
	}
	g.selection.SelectOne()
	return g.selection.IsSelected(item)
}

// GotoElement moves to the radio whose element contains el, selecting it
// when selectIt is set and the group is editable.
func (g *Group[V]) GotoElement(el dom.Element, selectIt bool) bool {
	if g.Disabled() {
		return false
	}
	rb, ok := list.ItemForTarget(g.inputs.Items(), el, "radio")
	if !ok {
		return false
	}
	return g.Goto(rb, selectIt && !g.Readonly())
}

// SetDefaultState makes the selected radio active, or the first focusable
// one when nothing is selected.
func (g *Group[V]) SetDefaultState() {
	g.focus.SetDefaultState(g.selection.IsSelected)
}

// Validate returns accessibility problems in the current configuration.
func (g *Group[V]) Validate() []string {
	var violations []string
	if sel, ok := g.SelectedItem(); ok && sel.Disabled() && g.inputs.SkipDisabled() {
		violations = append(violations, fmt.Sprintf(
			"the selected radio button (value %v) is disabled while skipDisabled is set, making the selection unreachable by keyboard",
			sel.Value()))
	}
	if values := g.inputs.Value.Peek(); len(values) > 1 {
		violations = append(violations, fmt.Sprintf(
			"a radio group should not have more than one selected value; selected: %v", values))
	}
	return violations
}
