package toolbar

import (
	"strings"
	"testing"

	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/pattern/radiogroup"
	"github.com/dshills/listkit/internal/signal"
)

type fixture struct {
	doc      *dom.Document
	toolbar  *Toolbar
	group    *radiogroup.Group[string]
	radios   []*dom.Node
	widgets  []*dom.Node
	readonly *signal.Signal[bool]
}

// newFixture builds a toolbar of [bold, align(left|center|right), italic].
func newFixture(in Inputs) *fixture {
	f := &fixture{doc: dom.NewDocument(), readonly: signal.New(false)}
	root := f.doc.NewNode("tb", "toolbar", nil)
	bold := f.doc.NewNode("bold", "button", root)
	align := f.doc.NewNode("align", "radiogroup", root)
	italic := f.doc.NewNode("italic", "button", root)
	f.widgets = []*dom.Node{bold, align, italic}

	radios := signal.New[[]*radiogroup.RadioButton[string]](nil)
	f.group = radiogroup.New(radiogroup.Inputs[string]{
		Items:    radios.Get,
		Readonly: f.readonly.Get,
	})
	var rbs []*radiogroup.RadioButton[string]
	for _, id := range []string{"left", "center", "right"} {
		node := f.doc.NewNode(id, "radio", align)
		f.radios = append(f.radios, node)
		rbs = append(rbs, f.group.NewRadioButton(radiogroup.RadioInputs[string]{
			ID: id, Value: id, Element: node,
		}))
	}
	radios.Set(rbs)

	widgets := signal.New[[]*Widget](nil)
	in.Items = widgets.Get
	f.toolbar = New(in)
	widgets.Set([]*Widget{
		f.toolbar.NewWidget(WidgetInputs{ID: "bold", Element: bold}),
		f.toolbar.NewWidget(WidgetInputs{ID: "align", Element: align, Group: f.group}),
		f.toolbar.NewWidget(WidgetInputs{ID: "italic", Element: italic}),
	})
	f.toolbar.SetDefaultState()
	return f
}

func (f *fixture) press(k string) *key.Event {
	ev := key.NewEvent(k, key.ModNone)
	f.toolbar.OnKeydown(ev)
	return ev
}

func TestOrthogonalKeyDelegatesToGroup(t *testing.T) {
	f := newFixture(Inputs{})
	f.toolbar.Goto(f.toolbar.Items()[1])
	f.group.Goto(f.group.Items()[1], false)

	f.press(key.ArrowDown)

	if got := f.group.ActiveIndex(); got != 2 {
		t.Errorf("group ActiveIndex() = %d, want 2", got)
	}
	if got := f.toolbar.ActiveIndex(); got != 1 {
		t.Errorf("toolbar ActiveIndex() = %d, want 1 (unchanged)", got)
	}
	if _, ok := f.group.Value(); ok {
		t.Error("delegated navigation selected a radio")
	}
	if !f.radios[2].HasFocus() {
		t.Error("native focus did not move to the right radio")
	}
}

func TestToolbarNavigation(t *testing.T) {
	f := newFixture(Inputs{Wrap: signal.Static(true)})

	f.press(key.ArrowRight)
	if got := f.toolbar.ActiveIndex(); got != 1 {
		t.Fatalf("ActiveIndex() = %d, want 1", got)
	}
	f.press(key.End)
	f.press(key.ArrowRight)
	if got := f.toolbar.ActiveIndex(); got != 0 {
		t.Errorf("wrap from the end = %d, want 0", got)
	}

	// Orthogonal keys on a plain widget are not handled.
	ev := f.press(key.ArrowDown)
	if ev.DefaultPrevented() {
		t.Error("ArrowDown on a button was handled")
	}
	ev = f.press(key.Space)
	if ev.DefaultPrevented() {
		t.Error("Space on a button was handled")
	}
}

func TestSpaceSelectsThroughGroup(t *testing.T) {
	f := newFixture(Inputs{})
	f.toolbar.Goto(f.toolbar.Items()[1])
	f.press(key.ArrowDown)
	f.press(key.Space)

	if v, _ := f.group.Value(); v != "center" {
		t.Errorf("group Value() = %q, want center", v)
	}

	f.readonly.Set(true)
	f.press(key.ArrowDown)
	f.press(key.Enter)
	if v, _ := f.group.Value(); v != "center" {
		t.Errorf("readonly group Value() = %q, want center", v)
	}
}

func TestPointerOnRadio(t *testing.T) {
	f := newFixture(Inputs{})
	f.toolbar.OnPointerdown(mouse.NewPress(f.radios[2], key.ModNone))

	if got := f.toolbar.ActiveIndex(); got != 1 {
		t.Errorf("toolbar ActiveIndex() = %d, want 1", got)
	}
	if v, _ := f.group.Value(); v != "right" {
		t.Errorf("group Value() = %q, want right", v)
	}

	f.toolbar.OnPointerdown(mouse.NewPress(f.widgets[2], key.ModNone))
	if got := f.toolbar.ActiveIndex(); got != 2 {
		t.Errorf("toolbar ActiveIndex() = %d, want 2", got)
	}
}

func TestVerticalToolbarAltKeys(t *testing.T) {
	f := newFixture(Inputs{Orientation: signal.Static(list.Vertical)})
	f.toolbar.Goto(f.toolbar.Items()[1])

	f.press(key.ArrowRight)
	if got := f.group.ActiveIndex(); got != 1 {
		t.Errorf("group ActiveIndex() = %d, want 1", got)
	}
	f.press(key.ArrowDown)
	if got := f.toolbar.ActiveIndex(); got != 2 {
		t.Errorf("toolbar ActiveIndex() = %d, want 2", got)
	}
}

func TestValidateIncludesGroup(t *testing.T) {
	f := newFixture(Inputs{})
	f.group.GotoElement(f.radios[0], true)
	if v := f.toolbar.Validate(); len(v) != 0 {
		t.Errorf("Validate() = %v, want none", v)
	}

	// A radio group holding two values is reported under its widget id.
	g := radiogroup.New(radiogroup.Inputs[string]{Value: signal.New([]string{"left", "right"})})
	var widgets []*Widget
	tb := New(Inputs{Items: func() []*Widget { return widgets }})
	widgets = append(widgets, tb.NewWidget(WidgetInputs{ID: "extra", Group: g}))

	v := tb.Validate()
	if len(v) != 1 || !strings.HasPrefix(v[0], "extra: ") {
		t.Errorf("Validate() = %v, want one violation from extra", v)
	}
}
