package tabs

import (
	"fmt"
	"slices"
	"testing"

	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/signal"
)

func newTabList(n int, in Inputs, disabled ...int) (*TabList, []*dom.Node) {
	items := signal.New[[]*Tab](nil)
	in.Items = items.Get
	tl := New(in)

	doc := dom.NewDocument()
	root := doc.NewNode("tablist", "tablist", nil)
	var tabs []*Tab
	var nodes []*dom.Node
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("tab-%d", i)
		node := doc.NewNode(id, "tab", root)
		nodes = append(nodes, node)
		isDisabled := slices.Contains(disabled, i)
		tabs = append(tabs, tl.NewTab(TabInputs{
			ID:       id,
			Value:    fmt.Sprintf("t%d", i),
			Disabled: func() bool { return isDisabled },
			Element:  node,
			PanelID:  fmt.Sprintf("panel-%d", i),
		}))
	}
	items.Set(tabs)
	tl.SetDefaultState()
	return tl, nodes
}

func TestFollowFocusSelectsAndExpands(t *testing.T) {
	tl, _ := newTabList(3, Inputs{})
	tl.OnKeydown(key.NewEvent(key.ArrowRight, key.ModNone))

	if v, _ := tl.Value(); v != "t1" {
		t.Errorf("Value() = %q, want t1", v)
	}
	tab := tl.Items()[1]
	if !tab.Selected() || !tab.Expanded() || tab.Panel().Hidden() {
		t.Errorf("tab-1 Selected=%v Expanded=%v Hidden=%v", tab.Selected(), tab.Expanded(), tab.Panel().Hidden())
	}
	if !tl.Items()[0].Panel().Hidden() {
		t.Error("panel-0 should be hidden")
	}
	if tab.Controls() != "panel-1" || tab.Panel().LabelledBy() != "tab-1" {
		t.Errorf("Controls() = %q, LabelledBy() = %q", tab.Controls(), tab.Panel().LabelledBy())
	}
}

func TestExplicitSelection(t *testing.T) {
	tl, _ := newTabList(3, Inputs{FollowFocus: signal.Static(false), Wrap: signal.Static(true)})

	tl.OnKeydown(key.NewEvent(key.ArrowLeft, key.ModNone))
	if got := tl.ActiveIndex(); got != 2 {
		t.Fatalf("ActiveIndex() = %d, want 2 after wrapping", got)
	}
	if _, ok := tl.Value(); ok {
		t.Error("explicit tab list selected on navigation")
	}
	tl.OnKeydown(key.NewEvent(key.Enter, key.ModNone))
	if v, _ := tl.Value(); v != "t2" {
		t.Errorf("Value() = %q, want t2", v)
	}
	tl.OnKeydown(key.NewEvent(key.Home, key.ModNone))
	tl.OnKeydown(key.NewEvent(key.Space, key.ModNone))
	if v, _ := tl.Value(); v != "t0" {
		t.Errorf("Value() = %q, want t0", v)
	}
}

func TestPointerSelectsTab(t *testing.T) {
	tl, nodes := newTabList(3, Inputs{}, 1)

	tl.OnPointerdown(mouse.NewPress(nodes[1], key.ModNone))
	if v, _ := tl.Value(); v != "" {
		t.Errorf("clicking a disabled tab selected %q", v)
	}
	tl.OnPointerdown(mouse.NewPress(nodes[2], key.ModNone))
	if v, _ := tl.Value(); v != "t2" {
		t.Errorf("Value() = %q, want t2", v)
	}
}

func TestSkipsDisabledTabs(t *testing.T) {
	tl, _ := newTabList(3, Inputs{}, 1)
	tl.OnKeydown(key.NewEvent(key.ArrowRight, key.ModNone))
	if got := tl.ActiveIndex(); got != 2 {
		t.Errorf("ActiveIndex() = %d, want 2", got)
	}
	if tl.Items()[1].Tabindex() != -1 || tl.Items()[2].Tabindex() != 0 {
		t.Error("only the active tab should be a tab stop")
	}
}

func TestVerticalTabs(t *testing.T) {
	tl, _ := newTabList(3, Inputs{Orientation: signal.Static(list.Vertical)})
	tl.OnKeydown(key.NewEvent(key.ArrowRight, key.ModNone))
	if got := tl.ActiveIndex(); got != 0 {
		t.Errorf("ArrowRight moved a vertical tab list to %d", got)
	}
	tl.OnKeydown(key.NewEvent(key.ArrowDown, key.ModNone))
	if got := tl.ActiveIndex(); got != 1 {
		t.Errorf("ArrowDown = %d, want 1", got)
	}
}

func TestDefaultStateAndValidate(t *testing.T) {
	tl, _ := newTabList(3, Inputs{Value: signal.New([]string{"t1", "t2"})}, 2)
	if got := tl.ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex() = %d, want 1", got)
	}
	if v := tl.Validate(); len(v) != 2 {
		t.Errorf("Validate() = %v, want 2 violations", v)
	}
}
