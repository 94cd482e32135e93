package tabs

import "github.com/dshills/listkit/internal/dom"

// TabInputs describe one tab and its panel.
type TabInputs struct {
	ID       string
	Value    string
	Label    string
	Disabled func() bool
	Element  dom.Element
	PanelID  string
}

// Tab is one tab in a TabList.
type Tab struct {
	inputs  TabInputs
	tablist *TabList
	panel   *TabPanel
}

// TabPanel is the region a tab controls.
type TabPanel struct {
	id  string
	tab *Tab
}

// NewTab creates a tab owned by this tab list, together with its panel.
func (tl *TabList) NewTab(in TabInputs) *Tab {
	if in.Disabled == nil {
		in.Disabled = func() bool { return false }
	}
	t := &Tab{inputs: in, tablist: tl}
	t.panel = &TabPanel{id: in.PanelID, tab: t}
	return t
}

// ID returns the tab id.
func (t *Tab) ID() string {
	return t.inputs.ID
}

// Value returns the tab value.
func (t *Tab) Value() string {
	return t.inputs.Value
}

// Label returns the display label.
func (t *Tab) Label() string {
	return t.inputs.Label
}

// Disabled reports whether the tab is disabled.
func (t *Tab) Disabled() bool {
	return t.inputs.Disabled()
}

// Element returns the element that receives focus.
func (t *Tab) Element() dom.Element {
	return t.inputs.Element
}

// ExpansionID is the tab value, which is also the selection value.
func (t *Tab) ExpansionID() string { return t.inputs.Value }

// Expandable is always true: every tab owns a panel.
func (t *Tab) Expandable() bool { return true }

// Index returns the tab's current position, or -1.
func (t *Tab) Index() int {
	return t.tablist.focus.IndexOf(t)
}

// Active reports whether the tab is the active one.
func (t *Tab) Active() bool {
	active, ok := t.tablist.focus.ActiveItem()
	return ok && active == t
}

// Selected reports whether the tab is selected.
func (t *Tab) Selected() bool {
	return t.tablist.selection.IsSelected(t)
}

// Expanded reports whether the tab's panel is shown.
func (t *Tab) Expanded() bool {
	return t.tablist.expansion.IsExpanded(t)
}

// Tabindex is the tab's tabindex.
func (t *Tab) Tabindex() int {
	return t.tablist.focus.ItemTabindex(t)
}

// Controls returns the id of the panel this tab controls.
func (t *Tab) Controls() string {
	return t.panel.id
}

// Panel returns the tab's panel.
func (t *Tab) Panel() *TabPanel {
	return t.panel
}

// ID returns the panel id.
func (p *TabPanel) ID() string {
	return p.id
}

// Hidden reports whether the panel is collapsed.
func (p *TabPanel) Hidden() bool {
	return !p.tab.Expanded()
}

// LabelledBy returns the id of the tab labelling this panel.
func (p *TabPanel) LabelledBy() string {
	return p.tab.ID()
}
