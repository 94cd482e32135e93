package listbox

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/signal"
)

type fixture struct {
	doc   *dom.Document
	items *signal.Signal[[]*Option[string]]
	nodes []*dom.Node
	lb    *Listbox[string]
}

// newFixture builds a listbox of n options with values "v0".."v<n-1>".
func newFixture(n int, in Inputs[string], disabled ...int) *fixture {
	f := &fixture{doc: dom.NewDocument(), items: signal.New[[]*Option[string]](nil)}
	in.Items = f.items.Get
	if in.Value == nil {
		in.Value = signal.New[[]string](nil)
	}
	f.lb = New(in)

	root := f.doc.NewNode("lb", "listbox", nil)
	opts := make([]*Option[string], n)
	for i := range opts {
		id := fmt.Sprintf("opt-%d", i)
		node := f.doc.NewNode(id, "option", root)
		f.nodes = append(f.nodes, node)
		isDisabled := slices.Contains(disabled, i)
		opts[i] = f.lb.NewOption(OptionInputs[string]{
			ID:       id,
			Value:    fmt.Sprintf("v%d", i),
			Label:    fmt.Sprintf("Option %d", i),
			Disabled: signal.Static(isDisabled),
			Element:  node,
		})
	}
	f.items.Set(opts)
	f.lb.SetDefaultState()
	return f
}

func (f *fixture) press(k string, mods key.Modifier) *key.Event {
	ev := key.NewEvent(k, mods)
	f.lb.OnKeydown(ev)
	return ev
}

func (f *fixture) click(i int, mods key.Modifier) {
	// Click the option's label so the target has to be resolved upward.
	label := f.doc.NewNode(fmt.Sprintf("label-%d-%d", i, f.doc.FocusCount()), "presentation", f.nodes[i])
	f.lb.OnPointerdown(mouse.NewPress(label, mods))
}

func (f *fixture) value() []string {
	return f.lb.Value()
}

func TestScenarioSingleSelectArrowsThenEnter(t *testing.T) {
	f := newFixture(5, Inputs[string]{})

	f.press(key.ArrowDown, key.ModNone)
	f.press(key.ArrowDown, key.ModNone)
	ev := f.press(key.Enter, key.ModNone)

	if got := f.lb.ActiveIndex(); got != 2 {
		t.Errorf("ActiveIndex() = %d, want 2", got)
	}
	if got := f.value(); !slices.Equal(got, []string{"v2"}) {
		t.Errorf("Value() = %v, want [v2]", got)
	}
	if ev.DefaultPrevented() {
		t.Error("Enter matched a registration in follow single mode")
	}
	if !f.nodes[2].HasFocus() {
		t.Error("roving focus did not move to opt-2")
	}
}

func TestScenarioShiftClickRange(t *testing.T) {
	f := newFixture(5, Inputs[string]{Multi: signal.Static(true)})

	f.click(0, key.ModNone)
	f.click(3, key.ModShift)
	if got := f.value(); !slices.Equal(got, []string{"v0", "v1", "v2", "v3"}) {
		t.Fatalf("after Shift+click 3: Value() = %v, want [v0 v1 v2 v3]", got)
	}

	f.click(1, key.ModShift)
	if got := f.value(); !slices.Equal(got, []string{"v0", "v1"}) {
		t.Errorf("after Shift+click 1: Value() = %v, want [v0 v1]", got)
	}
}

func TestMultiFollowKeyboard(t *testing.T) {
	f := newFixture(6, Inputs[string]{Multi: signal.Static(true), Wrap: signal.Static(true)})

	f.press(key.ArrowDown, key.ModNone)
	if got := f.value(); !slices.Equal(got, []string{"v1"}) {
		t.Fatalf("Value() = %v, want [v1]", got)
	}

	f.press(key.Shift, key.ModShift)
	f.press(key.ArrowDown, key.ModShift)
	f.press(key.ArrowDown, key.ModShift)
	if got := f.value(); !slices.Equal(got, []string{"v1", "v2", "v3"}) {
		t.Fatalf("after Shift+Down x2: Value() = %v, want [v1 v2 v3]", got)
	}

	// Ctrl moves without touching the selection.
	f.press(key.ArrowDown, key.ModCtrl)
	if got := f.lb.ActiveIndex(); got != 4 {
		t.Errorf("ActiveIndex() = %d, want 4", got)
	}
	if got := f.value(); len(got) != 3 {
		t.Errorf("Ctrl+Down changed selection to %v", got)
	}
	f.press(key.Space, key.ModCtrl)
	if got := f.value(); !slices.Contains(got, "v4") {
		t.Errorf("Ctrl+Space did not toggle v4: %v", got)
	}

	f.press("a", key.ModMeta)
	if got := f.value(); len(got) != 6 {
		t.Errorf("Meta+A: Value() = %v, want all six", got)
	}
	f.press("a", key.ModCtrl)
	if got := f.value(); !slices.Equal(got, []string{"v4"}) {
		t.Errorf("second Ctrl+A: Value() = %v, want only the active v4", got)
	}
}

func TestShiftEndExtendsWithoutReanchoring(t *testing.T) {
	f := newFixture(5, Inputs[string]{Multi: signal.Static(true)})
	f.press(key.ArrowDown, key.ModNone)
	f.press(key.ArrowDown, key.ModNone)

	f.press(key.End, key.ModCtrl|key.ModShift)
	if got := f.value(); !slices.Equal(got, []string{"v2", "v3", "v4"}) {
		t.Fatalf("Ctrl+Shift+End: Value() = %v, want [v2 v3 v4]", got)
	}
	f.press(key.Home, key.ModMeta|key.ModShift)
	got := slices.Sorted(slices.Values(f.value()))
	if !slices.Equal(got, []string{"v0", "v1", "v2"}) {
		t.Errorf("Meta+Shift+Home: Value() = %v, want [v0 v1 v2]", got)
	}
}

func TestPlainShiftHomeEnd(t *testing.T) {
	f := newFixture(5, Inputs[string]{Multi: signal.Static(true)})
	f.press(key.ArrowDown, key.ModNone)
	f.press(key.ArrowDown, key.ModNone)

	ev := f.press(key.End, key.ModShift)
	if got := f.lb.ActiveIndex(); got != 4 {
		t.Errorf("Shift+End: ActiveIndex() = %d, want 4", got)
	}
	if got := f.value(); !slices.Equal(got, []string{"v2", "v3", "v4"}) {
		t.Errorf("Shift+End: Value() = %v, want [v2 v3 v4]", got)
	}
	if !ev.DefaultPrevented() {
		t.Error("Shift+End should prevent default")
	}

	f = newFixture(4, Inputs[string]{
		Multi:         signal.Static(true),
		SelectionMode: signal.Static(Explicit),
	})
	f.press(key.ArrowDown, key.ModNone)
	f.press(key.Space, key.ModNone)
	f.press(key.Home, key.ModShift)
	if got := f.value(); !slices.Equal(got, []string{"v1", "v0"}) {
		t.Errorf("explicit Shift+Home: Value() = %v, want [v1 v0]", got)
	}
}

func TestRangeNavigationDoesNotWrap(t *testing.T) {
	f := newFixture(3, Inputs[string]{Multi: signal.Static(true), Wrap: signal.Static(true)})
	f.press(key.End, key.ModNone)

	f.press(key.ArrowDown, key.ModShift)
	if got := f.lb.ActiveIndex(); got != 2 {
		t.Errorf("Shift+Down at the end moved to %d", got)
	}
	f.press(key.ArrowDown, key.ModNone)
	if got := f.lb.ActiveIndex(); got != 0 {
		t.Errorf("plain Down at the end = %d, want wrap to 0", got)
	}
}

func TestExplicitMulti(t *testing.T) {
	f := newFixture(4, Inputs[string]{
		Multi:         signal.Static(true),
		SelectionMode: signal.Static(Explicit),
	}, 3)

	f.press(key.ArrowDown, key.ModNone)
	if got := f.value(); len(got) != 0 {
		t.Fatalf("navigation selected %v in explicit mode", got)
	}
	f.press(key.Space, key.ModNone)
	f.press(key.ArrowDown, key.ModNone)
	f.press(key.Enter, key.ModNone)
	if got := f.value(); !slices.Equal(got, []string{"v1", "v2"}) {
		t.Errorf("Value() = %v, want [v1 v2]", got)
	}

	f.press("A", key.ModCtrl)
	if got := f.value(); len(got) != 3 {
		t.Errorf("Ctrl+A: Value() = %v, want the three enabled values", got)
	}

	f.click(0, key.ModNone)
	if got := f.value(); slices.Contains(got, "v0") {
		t.Errorf("click did not toggle v0 off: %v", got)
	}
}

func TestExplicitSingle(t *testing.T) {
	f := newFixture(3, Inputs[string]{SelectionMode: signal.Static(Explicit)})

	f.press(key.ArrowDown, key.ModNone)
	f.press(key.Space, key.ModNone)
	if got := f.value(); !slices.Equal(got, []string{"v1"}) {
		t.Fatalf("Value() = %v, want [v1]", got)
	}
	f.press(key.ArrowDown, key.ModNone)
	f.press(key.Enter, key.ModNone)
	if got := f.value(); !slices.Equal(got, []string{"v2"}) {
		t.Errorf("Value() = %v, want [v2]", got)
	}
	f.press(key.Enter, key.ModNone)
	if got := f.value(); len(got) != 0 {
		t.Errorf("second Enter: Value() = %v, want []", got)
	}
}

func TestReadonly(t *testing.T) {
	f := newFixture(3, Inputs[string]{Readonly: signal.Static(true)})
	f.press(key.ArrowDown, key.ModNone)
	f.press(key.Space, key.ModNone)
	f.click(2, key.ModNone)

	if got := f.lb.ActiveIndex(); got != 2 {
		t.Errorf("ActiveIndex() = %d, want 2", got)
	}
	if got := f.value(); len(got) != 0 {
		t.Errorf("readonly listbox selected %v", got)
	}
}

func TestDisabledListboxIgnoresEvents(t *testing.T) {
	f := newFixture(3, Inputs[string]{Disabled: signal.Static(true)})
	if f.lb.OnKeydown(key.NewEvent(key.ArrowDown, key.ModNone)) {
		t.Error("OnKeydown() = true on a disabled listbox")
	}
	if got := f.lb.Tabindex(); got != 0 {
		t.Errorf("Tabindex() = %d, want 0", got)
	}
}

func TestActiveDescendantListbox(t *testing.T) {
	f := newFixture(3, Inputs[string]{FocusMode: signal.Static(list.ActiveDescendant)})
	f.press(key.ArrowDown, key.ModNone)

	id, ok := f.lb.ActiveDescendant()
	if !ok || id != "opt-1" {
		t.Errorf("ActiveDescendant() = %q, %v, want opt-1", id, ok)
	}
	for _, opt := range f.lb.Items() {
		if opt.Tabindex() != -1 {
			t.Errorf("%s Tabindex() = %d, want -1", opt.ID(), opt.Tabindex())
		}
	}
	if f.doc.FocusCount() != 0 {
		t.Error("native focus moved in activedescendant mode")
	}
}

func TestHorizontalRTL(t *testing.T) {
	f := newFixture(3, Inputs[string]{
		Orientation:   signal.Static(list.Horizontal),
		TextDirection: signal.Static(list.RTL),
	})
	f.press(key.ArrowLeft, key.ModNone)
	if got := f.lb.ActiveIndex(); got != 1 {
		t.Errorf("ArrowLeft in RTL = %d, want 1", got)
	}
	f.press(key.ArrowDown, key.ModNone)
	if got := f.lb.ActiveIndex(); got != 1 {
		t.Errorf("ArrowDown in a horizontal listbox moved to %d", got)
	}
}

type fakeTypeahead struct {
	typing bool
	labels []string
	chars  []string
}

func (f *fakeTypeahead) IsTyping() bool { return f.typing }

func (f *fakeTypeahead) Search(char string) (int, bool) {
	f.chars = append(f.chars, char)
	for i, l := range f.labels {
		if strings.HasPrefix(strings.ToLower(l), strings.ToLower(char)) {
			return i, true
		}
	}
	return -1, false
}

func TestTypeaheadHook(t *testing.T) {
	ta := &fakeTypeahead{labels: []string{"apple", "banana", "cherry"}}
	f := newFixture(3, Inputs[string]{Typeahead: ta})

	f.press("c", key.ModNone)
	if got := f.lb.ActiveIndex(); got != 2 {
		t.Errorf("typeahead c = %d, want 2", got)
	}
	if got := f.value(); !slices.Equal(got, []string{"v2"}) {
		t.Errorf("typeahead in follow mode: Value() = %v, want [v2]", got)
	}

	f.press(key.Space, key.ModNone)
	if slices.Contains(ta.chars, " ") {
		t.Error("blank reached the search while not typing")
	}

	ta.typing = true
	f.press(key.Space, key.ModNone)
	if !slices.Contains(ta.chars, " ") {
		t.Error("blank did not reach the search while typing")
	}
}

func TestKeydownManagerMemoized(t *testing.T) {
	multi := signal.New(false)
	f := newFixture(3, Inputs[string]{Multi: multi.Get})

	f.press(key.ArrowDown, key.ModNone)
	f.press(key.ArrowDown, key.ModNone)
	if runs := f.lb.keydown.Runs(); runs != 1 {
		t.Errorf("keydown built %d times, want 1", runs)
	}

	multi.Set(true)
	f.press(key.ArrowUp, key.ModShift)
	if runs := f.lb.keydown.Runs(); runs != 2 {
		t.Errorf("keydown built %d times after a mode change, want 2", runs)
	}
	if got := f.value(); len(got) != 2 {
		t.Errorf("Shift+Up after switching to multi: Value() = %v, want two values", got)
	}
}

func TestOptionDerivedState(t *testing.T) {
	f := newFixture(3, Inputs[string]{})
	f.press(key.ArrowDown, key.ModNone)

	opt := f.lb.Items()[1]
	if !opt.Active() || !opt.Selected() || opt.Tabindex() != 0 || opt.Index() != 1 {
		t.Errorf("opt-1 Active=%v Selected=%v Tabindex=%d Index=%d", opt.Active(), opt.Selected(), opt.Tabindex(), opt.Index())
	}
	if opt.Listbox() != f.lb {
		t.Error("Listbox() back-reference lost")
	}
	if f.lb.Items()[0].Active() {
		t.Error("opt-0 still active")
	}
}

func TestSetDefaultStatePrefersSelected(t *testing.T) {
	f := newFixture(4, Inputs[string]{Value: signal.New([]string{"v2"})})
	if got := f.lb.ActiveIndex(); got != 2 {
		t.Errorf("ActiveIndex() = %d, want 2", got)
	}
}

func TestValidate(t *testing.T) {
	f := newFixture(3, Inputs[string]{Value: signal.New([]string{"v0", "v2"})}, 2)
	violations := f.lb.Validate()
	if len(violations) != 2 {
		t.Fatalf("Validate() = %v, want 2 violations", violations)
	}
	if !strings.Contains(violations[0], "single-select") {
		t.Errorf("violations[0] = %q", violations[0])
	}
	if !strings.Contains(violations[1], "opt-2") {
		t.Errorf("violations[1] = %q", violations[1])
	}

	clean := newFixture(3, Inputs[string]{})
	if v := clean.lb.Validate(); len(v) != 0 {
		t.Errorf("Validate() = %v, want none", v)
	}
}
