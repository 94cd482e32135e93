// Package toolbar implements the toolbar interaction pattern. A toolbar is
// a row of widgets with a single tab stop. A widget may host a nested group
// (a radio group); the keys on the axis orthogonal to the toolbar move
// within that group, and Space or Enter select through it.
package toolbar

import (
	"fmt"

	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/signal"
)

// Group is the part of a nested pattern a toolbar drives. The toolbar only
// calls these methods and never touches the group's state directly.
type Group interface {
	Disabled() bool
	Readonly() bool
	NavigateNext() bool
	NavigatePrev() bool
	SelectActive() bool
	GotoElement(el dom.Element, selectIt bool) bool
	SetDefaultState()
	Validate() []string
}

// Inputs are the accessors and cells a Toolbar reads. Nil accessors take
// their defaults: enabled, no wrap, skip disabled, horizontal,
// left-to-right, roving focus.
type Inputs struct {
	Items         func() []*Widget
	ActiveIndex   *signal.Signal[int]
	Disabled      func() bool
	Wrap          func() bool
	SkipDisabled  func() bool
	Orientation   func() list.Orientation
	TextDirection func() list.Direction
	FocusMode     func() list.FocusMode
}

// Toolbar is a toolbar.
type Toolbar struct {
	inputs Inputs
	focus  *list.Focus[*Widget]
	nav    *list.Navigation[*Widget]

	keydown     *signal.Computed[*event.KeyboardManager]
	pointerdown *signal.Computed[*event.PointerManager]
}

func boolOr(fn func() bool, def bool) func() bool {
	if fn != nil {
		return fn
	}
	return signal.Static(def)
}

// New creates a toolbar.
func New(in Inputs) *Toolbar {
	if in.Items == nil {
		in.Items = func() []*Widget { return nil }
	}
	if in.ActiveIndex == nil {
		in.ActiveIndex = signal.New(-1)
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.Wrap = boolOr(in.Wrap, false)
	in.SkipDisabled = boolOr(in.SkipDisabled, true)
	if in.Orientation == nil {
		in.Orientation = signal.Static(list.Horizontal)
	}
	if in.TextDirection == nil {
		in.TextDirection = signal.Static(list.LTR)
	}
	if in.FocusMode == nil {
		in.FocusMode = signal.Static(list.Roving)
	}

	tb := &Toolbar{inputs: in}
	tb.focus = list.NewFocus(list.FocusInputs[*Widget]{
		Items:        in.Items,
		Disabled:     in.Disabled,
		SkipDisabled: in.SkipDisabled,
		FocusMode:    in.FocusMode,
		ActiveIndex:  in.ActiveIndex,
	})
	tb.nav = list.NewNavigation(tb.focus, in.Wrap)
	tb.keydown = signal.NewComputed(tb.buildKeydown)
	tb.pointerdown = signal.NewComputed(tb.buildPointerdown)
	return tb
}

// Items returns the current widgets.
func (tb *Toolbar) Items() []*Widget {
	return tb.inputs.Items()
}

// Disabled reports whether the toolbar is disabled or has no enabled widget.
func (tb *Toolbar) Disabled() bool {
	return tb.focus.IsListDisabled()
}

// Tabindex is the container tabindex.
func (tb *Toolbar) Tabindex() int {
	return tb.focus.ListTabindex()
}

// ActiveDescendant returns the active widget id in activedescendant mode.
func (tb *Toolbar) ActiveDescendant() (string, bool) {
	return tb.focus.ActiveDescendant()
}

// ActiveIndex returns the index of the active widget, or -1.
func (tb *Toolbar) ActiveIndex() int {
	return tb.focus.ActiveIndex()
}

// ActiveItem returns the active widget.
func (tb *Toolbar) ActiveItem() (*Widget, bool) {
	return tb.focus.ActiveItem()
}

// Next moves to the next widget.
func (tb *Toolbar) Next() bool { return tb.nav.Next() }

// Prev moves to the previous widget.
func (tb *Toolbar) Prev() bool { return tb.nav.Prev() }

// First moves to the first widget.
func (tb *Toolbar) First() bool { return tb.nav.First() }

// Last moves to the last widget.
func (tb *Toolbar) Last() bool { return tb.nav.Last() }

// Goto moves to w.
func (tb *Toolbar) Goto(w *Widget) bool { return tb.nav.Goto(w) }

// activeGroup returns the nested group of the active widget.
func (tb *Toolbar) activeGroup() (Group, bool) {
	w, ok := tb.focus.ActiveItem()
	if !ok || w.inputs.Group == nil {
		return nil, false
	}
	return w.inputs.Group, true
}

func (tb *Toolbar) orientation() (list.Orientation, list.Direction) {
	return tb.inputs.Orientation(), tb.inputs.TextDirection()
}

func (tb *Toolbar) prevKey() string    { return list.PrevKey(tb.orientation()) }
func (tb *Toolbar) nextKey() string    { return list.NextKey(tb.orientation()) }
func (tb *Toolbar) altPrevKey() string { return list.AltPrevKey(tb.orientation()) }
func (tb *Toolbar) altNextKey() string { return list.AltNextKey(tb.orientation()) }

// groupKey returns k only when the active widget hosts a group, so Space
// and Enter on a plain widget keep their native behavior.
func (tb *Toolbar) groupKey(k string) func() string {
	return func() string {
		if _, ok := tb.activeGroup(); ok {
			return k
		}
		return ""
	}
}

// groupAltKey returns fn's key only when the active widget hosts a group.
func (tb *Toolbar) groupAltKey(fn func() string) func() string {
	return func() string {
		if _, ok := tb.activeGroup(); !ok {
			return ""
		}
		return fn()
	}
}

// groupPrev moves within the active widget's group.
func (tb *Toolbar) groupPrev() {
	if g, ok := tb.activeGroup(); ok && !g.Disabled() {
		g.NavigatePrev()
	}
}

// groupNext moves within the active widget's group.
func (tb *Toolbar) groupNext() {
	if g, ok := tb.activeGroup(); ok && !g.Disabled() {
		g.NavigateNext()
	}
}

// groupSelect selects the active radio of the active widget's group.
func (tb *Toolbar) groupSelect() {
	if g, ok := tb.activeGroup(); ok && !g.Disabled() && !g.Readonly() {
		g.SelectActive()
	}
}

// OnKeydown handles a keyboard event unless the toolbar is disabled.
func (tb *Toolbar) OnKeydown(e *key.Event) bool {
	if tb.Disabled() {
		return false
	}
	return tb.keydown.Get().Handle(e)
}

// OnPointerdown handles a pointer press unless the toolbar is disabled.
func (tb *Toolbar) OnPointerdown(e *mouse.Event) bool {
	if tb.Disabled() {
		return false
	}
	return tb.pointerdown.Get().Handle(e)
}

func (tb *Toolbar) buildKeydown() *event.KeyboardManager {
	return event.NewKeyboardManager().
		On(event.KeyFunc(tb.prevKey), func(*key.Event) { tb.Prev() }).
		On(event.KeyFunc(tb.nextKey), func(*key.Event) { tb.Next() }).
		On(event.KeyFunc(tb.groupAltKey(tb.altPrevKey)), func(*key.Event) { tb.groupPrev() }).
		On(event.KeyFunc(tb.groupAltKey(tb.altNextKey)), func(*key.Event) { tb.groupNext() }).
		On(event.KeyFunc(tb.groupKey(key.Space)), func(*key.Event) { tb.groupSelect() }).
		On(event.KeyFunc(tb.groupKey(key.Enter)), func(*key.Event) { tb.groupSelect() }).
		On(event.Key(key.Home), func(*key.Event) { tb.First() }).
		On(event.Key(key.End), func(*key.Event) { tb.Last() })
}

func (tb *Toolbar) buildPointerdown() *event.PointerManager {
	return event.NewPointerManager().On(func(e *mouse.Event) {
		w, ok := tb.widgetFor(e.Target)
		if !ok || !tb.nav.Goto(w) {
			return
		}
		g := w.inputs.Group
		if g == nil {
			return
		}
		if radio := dom.Closest(e.Target, "radio"); radio != nil {
			g.GotoElement(radio, true)
		}
	})
}

// widgetFor returns the widget whose element is target or its nearest
// ancestor.
func (tb *Toolbar) widgetFor(target dom.Element) (*Widget, bool) {
	items := tb.inputs.Items()
	var found *Widget
	dom.ClosestFunc(target, func(el dom.Element) bool {
		for _, w := range items {
			if dom.SameElement(w.Element(), el) {
				found = w
				return true
			}
		}
		return false
	})
	return found, found != nil
}

// SetDefaultState makes the first focusable widget active and resets every
// nested group.
func (tb *Toolbar) SetDefaultState() {
	tb.focus.SetDefaultState(nil)
	for _, w := range tb.inputs.Items() {
		if w.inputs.Group != nil {
			w.inputs.Group.SetDefaultState()
		}
	}
}

// Validate returns accessibility problems of the toolbar and its nested
// groups.
func (tb *Toolbar) Validate() []string {
	var violations []string
	items := tb.inputs.Items()
	if i := tb.inputs.ActiveIndex.Peek(); i < -1 || i >= len(items) {
		violations = append(violations, fmt.Sprintf(
			"active index %d is out of bounds for %d widgets", i, len(items)))
	}
	for _, w := range items {
		if w.inputs.Group == nil {
			continue
		}
		for _, v := range w.inputs.Group.Validate() {
			violations = append(violations, fmt.Sprintf("%s: %s", w.ID(), v))
		}
	}
	return violations
}
