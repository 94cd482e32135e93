package toolbar

import "github.com/dshills/listkit/internal/dom"

// WidgetInputs describe one toolbar widget.
type WidgetInputs struct {
	ID       string
	Label    string
	Disabled func() bool
	Element  dom.Element

	// Group is the nested pattern hosted by this widget, if any.
	Group Group
}

// Widget is one item in a toolbar.
type Widget struct {
	inputs  WidgetInputs
	toolbar *Toolbar
}

// NewWidget creates a widget owned by this toolbar.
func (tb *Toolbar) NewWidget(in WidgetInputs) *Widget {
	if in.Disabled == nil {
		in.Disabled = func() bool { return false }
	}
	return &Widget{inputs: in, toolbar: tb}
}

// ID returns the widget id.
func (w *Widget) ID() string {
	return w.inputs.ID
}

// Label returns the display label.
func (w *Widget) Label() string {
	return w.inputs.Label
}

// Disabled reports whether the widget is disabled.
func (w *Widget) Disabled() bool {
	return w.inputs.Disabled()
}

// Element returns the element that receives focus.
func (w *Widget) Element() dom.Element {
	return w.inputs.Element
}

// Group returns the nested group, or nil.
func (w *Widget) Group() Group {
	return w.inputs.Group
}

// Index returns the widget's current position, or -1.
func (w *Widget) Index() int {
	return w.toolbar.focus.IndexOf(w)
}

// Active reports whether the widget is the toolbar's active item.
func (w *Widget) Active() bool {
	active, ok := w.toolbar.focus.ActiveItem()
	return ok && active == w
}

// Tabindex is the widget's tabindex.
func (w *Widget) Tabindex() int {
	return w.toolbar.focus.ItemTabindex(w)
}
