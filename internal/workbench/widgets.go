package workbench

import (
	"slices"

	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/pattern/accordion"
	"github.com/dshills/listkit/internal/pattern/listbox"
	"github.com/dshills/listkit/internal/pattern/radiogroup"
	"github.com/dshills/listkit/internal/pattern/tabs"
	"github.com/dshills/listkit/internal/pattern/toolbar"
	"github.com/dshills/listkit/internal/signal"
)

// Widget is one pattern instance hosted by a workbench.
type Widget interface {
	ID() string
	Kind() config.Kind
	Label() string
	Element() *dom.Node
	FocusMode() list.FocusMode

	OnKeydown(e *key.Event) bool
	OnPointerdown(e *mouse.Event) bool
	SetDefaultState()
	Validate() []string

	// State is a read-only view of the widget for rendering and snapshots.
	State() State
}

// State describes a widget at one point in time.
type State struct {
	ID               string
	Kind             config.Kind
	Label            string
	Disabled         bool
	Tabindex         int
	ActiveIndex      int
	ActiveDescendant string
	Value            []string
	Expanded         []string
	Items            []ItemState
}

// ItemState describes one item of a widget.
type ItemState struct {
	ID       string
	Label    string
	Active   bool
	Selected bool
	Expanded bool
	Disabled bool
	Tabindex int

	// Group is the nested radio group of a toolbar item.
	Group *State
}

// base holds what every adapter shares.
type base struct {
	cfg      config.Widget
	settings config.Settings
	node     *dom.Node
}

func (b *base) ID() string                { return b.cfg.ID }
func (b *base) Kind() config.Kind         { return b.cfg.Kind }
func (b *base) Element() *dom.Node        { return b.node }
func (b *base) FocusMode() list.FocusMode { return b.settings.FocusMode }

func (b *base) Label() string {
	if b.cfg.Label != "" {
		return b.cfg.Label
	}
	return b.cfg.ID
}

func (b *base) state(tabindex, active int, activedescendant string, disabled bool) State {
	return State{
		ID:               b.cfg.ID,
		Kind:             b.cfg.Kind,
		Label:            b.Label(),
		Disabled:         disabled,
		Tabindex:         tabindex,
		ActiveIndex:      active,
		ActiveDescendant: activedescendant,
	}
}

func selectedValues(items []config.Item) []string {
	var values []string
	for _, it := range items {
		if it.Selected {
			values = append(values, it.ItemValue())
		}
	}
	return values
}

func itemDisabled(it config.Item) func() bool {
	return signal.Static(it.Disabled)
}

func orientation(s config.Settings) func() list.Orientation {
	return signal.Static(s.Orientation)
}

func direction(s config.Settings) func() list.Direction {
	return signal.Static(s.TextDirection)
}

func focusMode(s config.Settings) func() list.FocusMode {
	return signal.Static(s.FocusMode)
}

type listboxWidget struct {
	base
	lb    *listbox.Listbox[string]
	value *signal.Signal[[]string]
}

func newListbox(doc *dom.Document, cfg config.Widget, s config.Settings) *listboxWidget {
	w := &listboxWidget{
		base:  base{cfg: cfg, settings: s, node: doc.NewNode(cfg.ID, "listbox", nil)},
		value: signal.New(selectedValues(cfg.Items)),
	}
	mode, _ := listbox.ParseSelectionMode(cfg.SelectionMode)
	options := signal.New[[]*listbox.Option[string]](nil)
	w.lb = listbox.New(listbox.Inputs[string]{
		Items:         options.Get,
		Value:         w.value,
		Disabled:      signal.Static(cfg.Disabled),
		Readonly:      signal.Static(cfg.Readonly),
		Multi:         signal.Static(cfg.Multi),
		Wrap:          signal.Static(s.Wrap),
		SkipDisabled:  signal.Static(s.SkipDisabled),
		Orientation:   orientation(s),
		TextDirection: direction(s),
		FocusMode:     focusMode(s),
		SelectionMode: signal.Static(mode),
	})
	var opts []*listbox.Option[string]
	for _, it := range cfg.Items {
		opts = append(opts, w.lb.NewOption(listbox.OptionInputs[string]{
			ID:       it.ID,
			Value:    it.ItemValue(),
			Label:    it.Text(),
			Disabled: itemDisabled(it),
			Element:  doc.NewNode(it.ID, "option", w.node),
		}))
	}
	options.Set(opts)
	return w
}

func (w *listboxWidget) OnKeydown(e *key.Event) bool       { return w.lb.OnKeydown(e) }
func (w *listboxWidget) OnPointerdown(e *mouse.Event) bool { return w.lb.OnPointerdown(e) }
func (w *listboxWidget) SetDefaultState()                  { w.lb.SetDefaultState() }
func (w *listboxWidget) Validate() []string                { return w.lb.Validate() }

func (w *listboxWidget) State() State {
	ad, _ := w.lb.ActiveDescendant()
	st := w.state(w.lb.Tabindex(), w.lb.ActiveIndex(), ad, w.lb.Disabled())
	st.Value = slices.Clone(w.value.Peek())
	for _, o := range w.lb.Items() {
		st.Items = append(st.Items, ItemState{
			ID:       o.ID(),
			Label:    o.Label(),
			Active:   o.Active(),
			Selected: o.Selected(),
			Disabled: o.Disabled(),
			Tabindex: o.Tabindex(),
		})
	}
	return st
}

type radioWidget struct {
	base
	group *radiogroup.Group[string]
	value *signal.Signal[[]string]
}

// newRadioGroup builds a radio group whose radios are children of node.
func newRadioGroup(doc *dom.Document, cfg config.Widget, s config.Settings, node *dom.Node) *radioWidget {
	w := &radioWidget{
		base:  base{cfg: cfg, settings: s, node: node},
		value: signal.New(selectedValues(cfg.Items)),
	}
	radios := signal.New[[]*radiogroup.RadioButton[string]](nil)
	w.group = radiogroup.New(radiogroup.Inputs[string]{
		Items:         radios.Get,
		Value:         w.value,
		Disabled:      signal.Static(cfg.Disabled),
		Readonly:      signal.Static(cfg.Readonly),
		Wrap:          signal.Static(s.Wrap),
		SkipDisabled:  signal.Static(s.SkipDisabled),
		Orientation:   orientation(s),
		TextDirection: direction(s),
		FocusMode:     focusMode(s),
	})
	var rbs []*radiogroup.RadioButton[string]
	for _, it := range cfg.Items {
		rbs = append(rbs, w.group.NewRadioButton(radiogroup.RadioInputs[string]{
			ID:       it.ID,
			Value:    it.ItemValue(),
			Label:    it.Text(),
			Disabled: itemDisabled(it),
			Element:  doc.NewNode(it.ID, "radio", node),
		}))
	}
	radios.Set(rbs)
	return w
}

func (w *radioWidget) OnKeydown(e *key.Event) bool       { return w.group.OnKeydown(e) }
func (w *radioWidget) OnPointerdown(e *mouse.Event) bool { return w.group.OnPointerdown(e) }
func (w *radioWidget) SetDefaultState()                  { w.group.SetDefaultState() }
func (w *radioWidget) Validate() []string                { return w.group.Validate() }

func (w *radioWidget) State() State {
	ad, _ := w.group.ActiveDescendant()
	st := w.state(w.group.Tabindex(), w.group.ActiveIndex(), ad, w.group.Disabled())
	st.Value = slices.Clone(w.value.Peek())
	for _, rb := range w.group.Items() {
		st.Items = append(st.Items, ItemState{
			ID:       rb.ID(),
			Label:    rb.Label(),
			Active:   rb.Active(),
			Selected: rb.Selected(),
			Disabled: rb.Disabled(),
			Tabindex: rb.Tabindex(),
		})
	}
	return st
}

type tabsWidget struct {
	base
	tl    *tabs.TabList
	value *signal.Signal[[]string]
}

func newTabs(doc *dom.Document, cfg config.Widget, s config.Settings) *tabsWidget {
	w := &tabsWidget{
		base:  base{cfg: cfg, settings: s, node: doc.NewNode(cfg.ID, "tablist", nil)},
		value: signal.New(selectedValues(cfg.Items)),
	}
	followFocus := true
	if cfg.FollowFocus != nil {
		followFocus = *cfg.FollowFocus
	}
	items := signal.New[[]*tabs.Tab](nil)
	w.tl = tabs.New(tabs.Inputs{
		Items:         items.Get,
		Value:         w.value,
		Disabled:      signal.Static(cfg.Disabled),
		Wrap:          signal.Static(s.Wrap),
		SkipDisabled:  signal.Static(s.SkipDisabled),
		FollowFocus:   signal.Static(followFocus),
		Orientation:   orientation(s),
		TextDirection: direction(s),
		FocusMode:     focusMode(s),
	})
	var ts []*tabs.Tab
	for _, it := range cfg.Items {
		ts = append(ts, w.tl.NewTab(tabs.TabInputs{
			ID:       it.ID,
			Value:    it.ItemValue(),
			Label:    it.Text(),
			Disabled: itemDisabled(it),
			Element:  doc.NewNode(it.ID, "tab", w.node),
			PanelID:  it.ID + "-panel",
		}))
	}
	items.Set(ts)
	return w
}

func (w *tabsWidget) OnKeydown(e *key.Event) bool       { return w.tl.OnKeydown(e) }
func (w *tabsWidget) OnPointerdown(e *mouse.Event) bool { return w.tl.OnPointerdown(e) }
func (w *tabsWidget) SetDefaultState()                  { w.tl.SetDefaultState() }
func (w *tabsWidget) Validate() []string                { return w.tl.Validate() }

func (w *tabsWidget) State() State {
	ad, _ := w.tl.ActiveDescendant()
	st := w.state(w.tl.Tabindex(), w.tl.ActiveIndex(), ad, w.tl.Disabled())
	st.Value = slices.Clone(w.value.Peek())
	st.Expanded = slices.Clone(w.value.Peek())
	for _, t := range w.tl.Items() {
		st.Items = append(st.Items, ItemState{
			ID:       t.ID(),
			Label:    t.Label(),
			Active:   t.Active(),
			Selected: t.Selected(),
			Expanded: t.Expanded(),
			Disabled: t.Disabled(),
			Tabindex: t.Tabindex(),
		})
	}
	return st
}

type toolbarWidget struct {
	base
	tb     *toolbar.Toolbar
	groups map[string]*radioWidget
}

func newToolbar(doc *dom.Document, cfg config.Widget, s config.Settings) *toolbarWidget {
	w := &toolbarWidget{
		base:   base{cfg: cfg, settings: s, node: doc.NewNode(cfg.ID, "toolbar", nil)},
		groups: make(map[string]*radioWidget),
	}
	items := signal.New[[]*toolbar.Widget](nil)
	w.tb = toolbar.New(toolbar.Inputs{
		Items:         items.Get,
		Disabled:      signal.Static(cfg.Disabled),
		Wrap:          signal.Static(s.Wrap),
		SkipDisabled:  signal.Static(s.SkipDisabled),
		Orientation:   orientation(s),
		TextDirection: direction(s),
		FocusMode:     focusMode(s),
	})

	// A nested group takes the orthogonal orientation so that its keys are
	// the toolbar's alternate keys.
	groupSettings := s
	groupSettings.Orientation = list.Vertical
	if s.Orientation == list.Vertical {
		groupSettings.Orientation = list.Horizontal
	}

	var ws []*toolbar.Widget
	for _, it := range cfg.Items {
		in := toolbar.WidgetInputs{
			ID:       it.ID,
			Label:    it.Text(),
			Disabled: itemDisabled(it),
		}
		if len(it.Group) > 0 {
			node := doc.NewNode(it.ID, "radiogroup", w.node)
			g := newRadioGroup(doc, config.Widget{
				Kind:     config.KindRadioGroup,
				ID:       it.ID,
				Label:    it.Text(),
				Readonly: cfg.Readonly,
				Items:    it.Group,
			}, groupSettings, node)
			w.groups[it.ID] = g
			in.Element = node
			in.Group = g.group
		} else {
			in.Element = doc.NewNode(it.ID, "button", w.node)
		}
		ws = append(ws, w.tb.NewWidget(in))
	}
	items.Set(ws)
	return w
}

func (w *toolbarWidget) OnKeydown(e *key.Event) bool       { return w.tb.OnKeydown(e) }
func (w *toolbarWidget) OnPointerdown(e *mouse.Event) bool { return w.tb.OnPointerdown(e) }
func (w *toolbarWidget) SetDefaultState()                  { w.tb.SetDefaultState() }
func (w *toolbarWidget) Validate() []string                { return w.tb.Validate() }

func (w *toolbarWidget) State() State {
	ad, _ := w.tb.ActiveDescendant()
	st := w.state(w.tb.Tabindex(), w.tb.ActiveIndex(), ad, w.tb.Disabled())
	for _, tw := range w.tb.Items() {
		is := ItemState{
			ID:       tw.ID(),
			Label:    tw.Label(),
			Active:   tw.Active(),
			Disabled: tw.Disabled(),
			Tabindex: tw.Tabindex(),
		}
		if g, ok := w.groups[tw.ID()]; ok {
			gs := g.State()
			is.Group = &gs
			st.Value = append(st.Value, gs.Value...)
		}
		st.Items = append(st.Items, is)
	}
	return st
}

type accordionWidget struct {
	base
	group    *accordion.Group
	expanded *signal.Signal[[]string]
}

func newAccordion(doc *dom.Document, cfg config.Widget, s config.Settings) *accordionWidget {
	var expanded []string
	for _, it := range cfg.Items {
		if it.Expanded {
			expanded = append(expanded, it.ItemValue())
		}
	}
	w := &accordionWidget{
		base:     base{cfg: cfg, settings: s, node: doc.NewNode(cfg.ID, "region", nil)},
		expanded: signal.New(expanded),
	}
	followFocus := false
	if cfg.FollowFocus != nil {
		followFocus = *cfg.FollowFocus
	}
	items := signal.New[[]*accordion.Trigger](nil)
	w.group = accordion.New(accordion.Inputs{
		Items:           items.Get,
		ExpandedIDs:     w.expanded,
		Disabled:        signal.Static(cfg.Disabled),
		MultiExpandable: signal.Static(cfg.MultiExpandable),
		Wrap:            signal.Static(s.Wrap),
		SkipDisabled:    signal.Static(s.SkipDisabled),
		FollowFocus:     signal.Static(followFocus),
		Orientation:     orientation(s),
		TextDirection:   direction(s),
		FocusMode:       focusMode(s),
	})
	var ts []*accordion.Trigger
	for _, it := range cfg.Items {
		ts = append(ts, w.group.NewTrigger(accordion.TriggerInputs{
			ID:       it.ID,
			Value:    it.ItemValue(),
			Label:    it.Text(),
			Disabled: itemDisabled(it),
			Element:  doc.NewNode(it.ID, accordion.Role, w.node),
			PanelID:  it.ID + "-panel",
		}))
	}
	items.Set(ts)
	return w
}

func (w *accordionWidget) OnKeydown(e *key.Event) bool       { return w.group.OnKeydown(e) }
func (w *accordionWidget) OnPointerdown(e *mouse.Event) bool { return w.group.OnPointerdown(e) }
func (w *accordionWidget) SetDefaultState()                  { w.group.SetDefaultState() }
func (w *accordionWidget) Validate() []string                { return w.group.Validate() }

func (w *accordionWidget) State() State {
	ad, _ := w.group.ActiveDescendant()
	st := w.state(w.group.Tabindex(), w.group.ActiveIndex(), ad, w.group.Disabled())
	st.Expanded = slices.Clone(w.expanded.Peek())
	for _, t := range w.group.Items() {
		st.Items = append(st.Items, ItemState{
			ID:       t.ID(),
			Label:    t.Label(),
			Active:   t.Active(),
			Expanded: t.Expanded(),
			Disabled: t.Disabled(),
			Tabindex: t.Tabindex(),
		})
	}
	return st
}
