package accordion

import (
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
)

// TriggerInputs describe one trigger and its panel. Value is the expansion
// id; it defaults to ID.
type TriggerInputs struct {
	ID       string
	Value    string
	Label    string
	Disabled func() bool
	Element  dom.Element
	PanelID  string
}

// Trigger is the header that shows and hides one panel.
type Trigger struct {
	inputs TriggerInputs
	group  *Group
	panel  *Panel
}

// Panel is the region a trigger controls.
type Panel struct {
	id      string
	trigger *Trigger
}

// NewTrigger creates a trigger owned by this group, together with its panel.
func (g *Group) NewTrigger(in TriggerInputs) *Trigger {
	if in.Disabled == nil {
		in.Disabled = func() bool { return false }
	}
	if in.Value == "" {
		in.Value = in.ID
	}
	t := &Trigger{inputs: in, group: g}
	t.panel = &Panel{id: in.PanelID, trigger: t}
	return t
}

// ID returns the trigger id.
func (t *Trigger) ID() string {
	return t.inputs.ID
}

// Value returns the trigger value.
func (t *Trigger) Value() string {
	return t.inputs.Value
}

// Label returns the display label.
func (t *Trigger) Label() string {
	return t.inputs.Label
}

// Disabled reports whether the trigger is disabled.
func (t *Trigger) Disabled() bool {
	return t.inputs.Disabled()
}

// Element returns the element that receives focus.
func (t *Trigger) Element() dom.Element {
	return t.inputs.Element
}

// ExpansionID returns the id used to track expansion, which is the trigger value.
func (t *Trigger) ExpansionID() string {
	return t.inputs.Value
}

// Expandable reports true; every trigger can expand its panel.
func (t *Trigger) Expandable() bool {
	return true
}

// Group returns the owning group.
func (t *Trigger) Group() *Group {
	return t.group
}

// Index returns the trigger's current position, or -1.
func (t *Trigger) Index() int {
	return t.group.focus.IndexOf(t)
}

// Active reports whether the trigger is the group's active item.
func (t *Trigger) Active() bool {
	active, ok := t.group.focus.ActiveItem()
	return ok && active == t
}

// Expanded reports whether the trigger's panel is open.
func (t *Trigger) Expanded() bool {
	return t.group.expansion.IsExpanded(t)
}

// Tabindex is the trigger's tabindex.
func (t *Trigger) Tabindex() int {
	return t.group.focus.ItemTabindex(t)
}

// Controls returns the id of the panel this trigger controls.
func (t *Trigger) Controls() string {
	return t.panel.id
}

// Panel returns the trigger's panel.
func (t *Trigger) Panel() *Panel {
	return t.panel
}

// OnKeydown routes a keyboard event received by the trigger to its group.
func (t *Trigger) OnKeydown(e *key.Event) bool {
	return t.group.OnKeydown(e)
}

// ID returns the panel id.
func (p *Panel) ID() string {
	return p.id
}

// Hidden reports whether the panel is collapsed.
func (p *Panel) Hidden() bool {
	return !p.trigger.Expanded()
}

// LabelledBy returns the id of the trigger labelling this panel.
func (p *Panel) LabelledBy() string {
	return p.trigger.ID()
}
