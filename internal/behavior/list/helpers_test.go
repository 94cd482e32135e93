package list

import (
	"fmt"

	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/signal"
)

type testItem struct {
	id         string
	value      string
	disabled   bool
	expandable bool
	el         *dom.Node
}

func (t *testItem) ID() string           { return t.id }
func (t *testItem) Element() dom.Element { return t.el }
func (t *testItem) Disabled() bool       { return t.disabled }
func (t *testItem) Value() string        { return t.value }
func (t *testItem) ExpansionID() string  { return t.id }
func (t *testItem) Expandable() bool     { return t.expandable }

// newItems builds n items; indexes listed in disabled are disabled.
func newItems(doc *dom.Document, n int, disabled ...int) []*testItem {
	parent := doc.NewNode("list", "listbox", nil)
	items := make([]*testItem, n)
	for i := range items {
		id := fmt.Sprintf("item-%d", i)
		items[i] = &testItem{
			id:         id,
			value:      fmt.Sprintf("v%d", i),
			expandable: true,
			el:         doc.NewNode(id, "option", parent),
		}
	}
	for _, i := range disabled {
		items[i].disabled = true
	}
	return items
}

type fixture struct {
	doc       *dom.Document
	items     []*testItem
	active    *signal.Signal[int]
	value     *signal.Signal[[]string]
	focus     *Focus[*testItem]
	nav       *Navigation[*testItem]
	selection *Selection[*testItem, string]
}

func newFixture(n int, multi, wrap bool, disabled ...int) *fixture {
	f := &fixture{doc: dom.NewDocument(), active: signal.New(-1), value: signal.New[[]string](nil)}
	f.items = newItems(f.doc, n, disabled...)
	f.focus = NewFocus(FocusInputs[*testItem]{
		Items:       func() []*testItem { return f.items },
		ActiveIndex: f.active,
	})
	f.nav = NewNavigation(f.focus, signal.Static(wrap))
	f.selection = NewSelection(f.focus, SelectionInputs[string]{
		Multi: signal.Static(multi),
		Value: f.value,
	})
	return f
}

func (f *fixture) gotoIndex(i int) {
	f.nav.Goto(f.items[i])
}
