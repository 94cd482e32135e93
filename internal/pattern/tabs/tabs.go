// Package tabs implements the tab list interaction pattern. Selecting a tab
// also expands its panel: the selected value cell doubles as the set of
// expanded panel ids, so exactly one panel is shown.
package tabs

import (
	"fmt"

	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/signal"
)

// Inputs are the accessors and cells a TabList reads. Nil accessors take
// their defaults: enabled, no wrap, skip disabled, horizontal,
// left-to-right, roving focus, selection follows focus.
type Inputs struct {
	Items         func() []*Tab
	Value         *signal.Signal[[]string]
	ActiveIndex   *signal.Signal[int]
	Disabled      func() bool
	Wrap          func() bool
	SkipDisabled  func() bool
	Orientation   func() list.Orientation
	TextDirection func() list.Direction
	FocusMode     func() list.FocusMode
	FollowFocus   func() bool
}

// TabList is a list of tabs controlling panels.
type TabList struct {
	inputs    Inputs
	focus     *list.Focus[*Tab]
	nav       *list.Navigation[*Tab]
	selection *list.Selection[*Tab, string]
	expansion *list.Expansion[*Tab]

	keydown     *signal.Computed[*event.KeyboardManager]
	pointerdown *signal.Computed[*event.PointerManager]
}

func boolOr(fn func() bool, def bool) func() bool {
	if fn != nil {
		return fn
	}
	return signal.Static(def)
}

// New creates a tab list.
func New(in Inputs) *TabList {
	if in.Items == nil {
		in.Items = func() []*Tab { return nil }
	}
	if in.Value == nil {
		in.Value = signal.New[[]string](nil)
	}
	if in.ActiveIndex == nil {
		in.ActiveIndex = signal.New(-1)
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.Wrap = boolOr(in.Wrap, false)
	in.SkipDisabled = boolOr(in.SkipDisabled, true)
	in.FollowFocus = boolOr(in.FollowFocus, true)
	if in.Orientation == nil {
		in.Orientation = signal.Static(list.Horizontal)
	}
	if in.TextDirection == nil {
		in.TextDirection = signal.Static(list.LTR)
	}
	if in.FocusMode == nil {
		in.FocusMode = signal.Static(list.Roving)
	}

	tl := &TabList{inputs: in}
	tl.focus = list.NewFocus(list.FocusInputs[*Tab]{
		Items:        in.Items,
		Disabled:     in.Disabled,
		SkipDisabled: in.SkipDisabled,
		FocusMode:    in.FocusMode,
		ActiveIndex:  in.ActiveIndex,
	})
	tl.nav = list.NewNavigation(tl.focus, in.Wrap)
	tl.selection = list.NewSelection(tl.focus, list.SelectionInputs[string]{
		Multi: signal.Static(false),
		Value: in.Value,
	})
	tl.expansion = list.NewExpansion(tl.focus, list.ExpansionInputs[*Tab]{
		Disabled:        in.Disabled,
		MultiExpandable: signal.Static(false),
		ExpandedIDs:     in.Value,
	})
	tl.keydown = signal.NewComputed(tl.buildKeydown)
	tl.pointerdown = signal.NewComputed(tl.buildPointerdown)
	return tl
}

// Items returns the current tabs.
func (tl *TabList) Items() []*Tab {
	return tl.inputs.Items()
}

// Disabled reports whether the tab list is disabled or has no enabled tab.
func (tl *TabList) Disabled() bool {
	return tl.focus.IsListDisabled()
}

// Tabindex is the container tabindex.
func (tl *TabList) Tabindex() int {
	return tl.focus.ListTabindex()
}

// ActiveDescendant returns the active tab id in activedescendant mode.
func (tl *TabList) ActiveDescendant() (string, bool) {
	return tl.focus.ActiveDescendant()
}

// ActiveIndex returns the index of the active tab, or -1.
func (tl *TabList) ActiveIndex() int {
	return tl.focus.ActiveIndex()
}

// Value returns the selected tab value.
func (tl *TabList) Value() (string, bool) {
	values := tl.inputs.Value.Get()
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (tl *TabList) prevKey() string {
	return list.PrevKey(tl.inputs.Orientation(), tl.inputs.TextDirection())
}

func (tl *TabList) nextKey() string {
	return list.NextKey(tl.inputs.Orientation(), tl.inputs.TextDirection())
}

// selectActive selects the active tab and shows its panel when sel is set.
func (tl *TabList) selectActive(sel bool) {
	if !sel {
		return
	}
	tl.selection.SelectOne()
	tl.expansion.Open(nil)
}

func (tl *TabList) navigate(sel bool, op func() bool) bool {
	moved := op()
	if moved {
		tl.selectActive(sel)
	}
	return moved
}

// Next moves to the next tab, selecting it when selection follows focus.
func (tl *TabList) Next() bool { return tl.navigate(tl.inputs.FollowFocus(), tl.nav.Next) }

// Prev moves to the previous tab.
func (tl *TabList) Prev() bool { return tl.navigate(tl.inputs.FollowFocus(), tl.nav.Prev) }

// First moves to the first tab.
func (tl *TabList) First() bool { return tl.navigate(tl.inputs.FollowFocus(), tl.nav.First) }

// Last moves to the last tab.
func (tl *TabList) Last() bool { return tl.navigate(tl.inputs.FollowFocus(), tl.nav.Last) }

// Goto moves to t and selects it.
func (tl *TabList) Goto(t *Tab) bool {
	return tl.navigate(true, func() bool { return tl.nav.Goto(t) })
}

// OnKeydown handles a keyboard event unless the tab list is disabled.
func (tl *TabList) OnKeydown(e *key.Event) bool {
	if tl.Disabled() {
		return false
	}
	return tl.keydown.Get().Handle(e)
}

// OnPointerdown handles a pointer press unless the tab list is disabled.
func (tl *TabList) OnPointerdown(e *mouse.Event) bool {
	if tl.Disabled() {
		return false
	}
	return tl.pointerdown.Get().Handle(e)
}

func (tl *TabList) buildKeydown() *event.KeyboardManager {
	return event.NewKeyboardManager().
		On(event.KeyFunc(tl.prevKey), func(*key.Event) { tl.Prev() }).
		On(event.KeyFunc(tl.nextKey), func(*key.Event) { tl.Next() }).
		On(event.Key(key.Home), func(*key.Event) { tl.First() }).
		On(event.Key(key.End), func(*key.Event) { tl.Last() }).
		On(event.Key(key.Space), func(*key.Event) { tl.selectActive(true) }).
		On(event.Key(key.Enter), func(*key.Event) { tl.selectActive(true) })
}

func (tl *TabList) buildPointerdown() *event.PointerManager {
	return event.NewPointerManager().On(func(e *mouse.Event) {
		if t, ok := list.ItemForTarget(tl.inputs.Items(), e.Target, "tab"); ok {
			tl.Goto(t)
		}
	})
}

// SetDefaultState makes the selected tab active, or the first focusable
// tab when none is selected.
func (tl *TabList) SetDefaultState() {
	tl.focus.SetDefaultState(tl.selection.IsSelected)
}

// Validate returns accessibility problems in the current configuration.
func (tl *TabList) Validate() []string {
	var violations []string
	if values := tl.inputs.Value.Peek(); len(values) > 1 {
		violations = append(violations, fmt.Sprintf(
			"a tab list should have at most one selected tab; selected: %v", values))
	}
	if tl.inputs.SkipDisabled() {
		for _, t := range tl.selection.SelectedItems() {
			if t.Disabled() {
				violations = append(violations, fmt.Sprintf(
					"tab %q is selected and disabled while skipDisabled is set; it cannot be reached by keyboard", t.ID()))
			}
		}
	}
	return violations
}
