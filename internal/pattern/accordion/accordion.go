// Package accordion implements the accordion interaction pattern: a list of
// triggers that show and hide their panels.
//
// The expanded-id cell doubles as the selection value. When selection
// follows focus, moving to a trigger collapses the others and opens it.
package accordion

import (
	"fmt"

	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/signal"
)

// Role is the role triggers are resolved by under the pointer.
const Role = "button"

// Inputs are the accessors and cells a Group reads. Nil accessors take
// their defaults: enabled, single expansion, no wrap, skip disabled,
// vertical, left-to-right, roving focus, explicit expansion.
type Inputs struct {
	Items           func() []*Trigger
	ExpandedIDs     *signal.Signal[[]string]
	ActiveIndex     *signal.Signal[int]
	Disabled        func() bool
	MultiExpandable func() bool
	Wrap            func() bool
	SkipDisabled    func() bool
	Orientation     func() list.Orientation
	TextDirection   func() list.Direction
	FocusMode       func() list.FocusMode
	FollowFocus     func() bool
}

// Group is an accordion group.
type Group struct {
	inputs    Inputs
	focus     *list.Focus[*Trigger]
	nav       *list.Navigation[*Trigger]
	selection *list.Selection[*Trigger, string]
	expansion *list.Expansion[*Trigger]

	keydown     *signal.Computed[*event.KeyboardManager]
	pointerdown *signal.Computed[*event.PointerManager]
}

func boolOr(fn func() bool, def bool) func() bool {
	if fn != nil {
		return fn
	}
	return signal.Static(def)
}

// New creates an accordion group.
func New(in Inputs) *Group {
	if in.Items == nil {
		in.Items = func() []*Trigger { return nil }
	}
	if in.ExpandedIDs == nil {
		in.ExpandedIDs = signal.New[[]string](nil)
	}
	if in.ActiveIndex == nil {
		in.ActiveIndex = signal.New(-1)
	}
	in.Disabled = boolOr(in.Disabled, false)
	in.MultiExpandable = boolOr(in.MultiExpandable, false)
	in.Wrap = boolOr(in.Wrap, false)
	in.SkipDisabled = boolOr(in.SkipDisabled, true)
	in.FollowFocus = boolOr(in.FollowFocus, false)
	if in.Orientation == nil {
		in.Orientation = signal.Static(list.Vertical)
	}
	if in.TextDirection == nil {
		in.TextDirection = signal.Static(list.LTR)
	}
	if in.FocusMode == nil {
		in.FocusMode = signal.Static(list.Roving)
	}

	g := &Group{inputs: in}
	g.focus = list.NewFocus(list.FocusInputs[*Trigger]{
		Items:        in.Items,
		Disabled:     in.Disabled,
		SkipDisabled: in.SkipDisabled,
		FocusMode:    in.FocusMode,
		ActiveIndex:  in.ActiveIndex,
	})
	g.nav = list.NewNavigation(g.focus, in.Wrap)
	g.selection = list.NewSelection(g.focus, list.SelectionInputs[string]{
		Multi: in.MultiExpandable,
		Value: in.ExpandedIDs,
	})
	g.expansion = list.NewExpansion(g.focus, list.ExpansionInputs[*Trigger]{
		Disabled:        in.Disabled,
		MultiExpandable: in.MultiExpandable,
		ExpandedIDs:     in.ExpandedIDs,
	})
	g.keydown = signal.NewComputed(g.buildKeydown)
	g.pointerdown = signal.NewComputed(g.buildPointerdown)
	return g
}

// Items returns the current triggers.
func (g *Group) Items() []*Trigger {
	return g.inputs.Items()
}

// Disabled reports whether the group is disabled or has no enabled trigger.
func (g *Group) Disabled() bool {
	return g.focus.IsListDisabled()
}

// Tabindex is the container tabindex.
func (g *Group) Tabindex() int {
	return g.focus.ListTabindex()
}

// ActiveDescendant returns the active trigger id in activedescendant mode.
func (g *Group) ActiveDescendant() (string, bool) {
	return g.focus.ActiveDescendant()
}

// ActiveIndex returns the index of the active trigger, or -1.
func (g *Group) ActiveIndex() int {
	return g.focus.ActiveIndex()
}

// ActiveItem returns the active trigger.
func (g *Group) ActiveItem() (*Trigger, bool) {
	return g.focus.ActiveItem()
}

// ExpandedIDs returns the ids of the open panels.
func (g *Group) ExpandedIDs() []string {
	return g.expansion.ExpandedIDs()
}

func (g *Group) prevKey() string {
	return list.PrevKey(g.inputs.Orientation(), g.inputs.TextDirection())
}

func (g *Group) nextKey() string {
	return list.NextKey(g.inputs.Orientation(), g.inputs.TextDirection())
}

// selectActive collapses to the active trigger and opens it when sel is
// set.
func (g *Group) selectActive(sel bool) {
	if !sel {
		return
	}
	g.selection.SelectOne()
	g.expansion.Open(nil)
}

func (g *Group) navigate(op func() bool) bool {
	moved := op()
	if moved {
		g.selectActive(g.inputs.FollowFocus())
	}
	return moved
}

// Next moves to the next trigger.
func (g *Group) Next() bool { return g.navigate(g.nav.Next) }

// Prev moves to the previous trigger.
func (g *Group) Prev() bool { return g.navigate(g.nav.Prev) }

// First moves to the first trigger.
func (g *Group) First() bool { return g.navigate(g.nav.First) }

// Last moves to the last trigger.
func (g *Group) Last() bool { return g.navigate(g.nav.Last) }

// Goto moves to t.
func (g *Group) Goto(t *Trigger) bool {
	return g.navigate(func() bool { return g.nav.Goto(t) })
}

// Expand opens t, or the active trigger when t is nil.
func (g *Group) Expand(t *Trigger) bool {
	if t == nil {
		return g.expansion.Open(nil)
	}
	return g.expansion.Open(&t)
}

// Collapse closes t, or the active trigger when t is nil.
func (g *Group) Collapse(t *Trigger) bool {
	if t == nil {
		return g.expansion.Close(nil)
	}
	return g.expansion.Close(&t)
}

// Toggle flips t, or the active trigger when t is nil.
func (g *Group) Toggle(t *Trigger) bool {
	if t == nil {
		return g.expansion.Toggle(nil)
	}
	return g.expansion.Toggle(&t)
}

// ExpandAll opens every trigger. No-op unless multi-expandable.
func (g *Group) ExpandAll() { g.expansion.OpenAll() }

// CollapseAll closes every trigger.
func (g *Group) CollapseAll() { g.expansion.CloseAll() }

// OnKeydown handles a keyboard event unless the group is disabled.
func (g *Group) OnKeydown(e *key.Event) bool {
	if g.Disabled() {
		return false
	}
	return g.keydown.Get().Handle(e)
}

// OnPointerdown handles a pointer press unless the group is disabled.
func (g *Group) OnPointerdown(e *mouse.Event) bool {
	if g.Disabled() {
		return false
	}
	return g.pointerdown.Get().Handle(e)
}

func (g *Group) buildKeydown() *event.KeyboardManager {
	return event.NewKeyboardManager().
		On(event.KeyFunc(g.prevKey), func(*key.Event) { g.Prev() }).
		On(event.KeyFunc(g.nextKey), func(*key.Event) { g.Next() }).
		On(event.Key(key.Home), func(*key.Event) { g.First() }).
		On(event.Key(key.End), func(*key.Event) { g.Last() }).
		On(event.Key(key.Space), func(*key.Event) { g.Toggle(nil) }).
		On(event.Key(key.Enter), func(*key.Event) { g.Toggle(nil) })
}

func (g *Group) buildPointerdown() *event.PointerManager {
	return event.NewPointerManager().On(func(e *mouse.Event) {
		t, ok := list.ItemForTarget(g.inputs.Items(), e.Target, Role)
		if !ok {
			return
		}
		if g.nav.Goto(t) {
			g.Toggle(t)
		}
	})
}

// SetDefaultState makes the first expanded trigger active, or the first
// focusable trigger when none is expanded.
func (g *Group) SetDefaultState() {
	g.focus.SetDefaultState(g.expansion.IsExpanded)
}

// Validate returns accessibility problems in the current configuration.
func (g *Group) Validate() []string {
	var violations []string
	ids := g.inputs.ExpandedIDs.Peek()
	if !g.inputs.MultiExpandable() && len(ids) > 1 {
		violations = append(violations, fmt.Sprintf(
			"an accordion without multiExpandable should have at most one open panel; open: %v", ids))
	}
	items := g.inputs.Items()
	if i := g.inputs.ActiveIndex.Peek(); i < -1 || i >= len(items) {
		violations = append(violations, fmt.Sprintf(
			"active index %d is out of bounds for %d triggers", i, len(items)))
	}
	if g.inputs.SkipDisabled() {
		for _, t := range items {
			if t.Disabled() && g.expansion.IsExpanded(t) {
				violations = append(violations, fmt.Sprintf(
					"trigger %q is expanded and disabled while skipDisabled is set; it cannot be collapsed by keyboard", t.ID()))
			}
		}
	}
	return violations
}
