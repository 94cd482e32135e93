// Package workbench hosts several interaction patterns built from a
// configuration file. It owns the element document, moves keyboard focus
// between widgets with Tab and Shift+Tab, and routes every other key and
// pointer event to the widget that should receive it.
//
// A Workbench is driven from one goroutine, the front-end event loop.
package workbench

import (
	"errors"
	"fmt"

	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/dom"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/logging"
)

// Errors returned by workbench lookups.
var (
	ErrUnknownWidget  = errors.New("unknown widget")
	ErrUnknownElement = errors.New("unknown element")
)

// Violation is one Validate warning.
type Violation struct {
	Widget  string
	Message string
}

func (v Violation) String() string {
	return v.Widget + ": " + v.Message
}

// Workbench is a set of widgets sharing one document.
type Workbench struct {
	cfg     *config.Workbench
	log     *logging.Logger
	doc     *dom.Document
	widgets []Widget
	focused int
}

// New builds every widget in cfg and puts each in its default state.
func New(cfg *config.Workbench, log *logging.Logger) (*Workbench, error) {
	if log == nil {
		log = logging.Null()
	}
	wb := &Workbench{
		cfg:     cfg,
		log:     log.WithComponent("workbench"),
		doc:     dom.NewDocument(),
		focused: -1,
	}
	for _, wc := range cfg.Widgets {
		w, err := wb.build(wc)
		if err != nil {
			return nil, err
		}
		w.SetDefaultState()
		wb.widgets = append(wb.widgets, w)
	}
	wb.log.Debug("built %d widgets from %s", len(wb.widgets), cfg.Source)
	if len(wb.widgets) > 0 {
		wb.FocusWidget(0)
	}
	return wb, nil
}

func (wb *Workbench) build(wc config.Widget) (Widget, error) {
	s := wb.cfg.Settings(wc)
	switch wc.Kind {
	case config.KindListbox:
		return newListbox(wb.doc, wc, s), nil
	case config.KindRadioGroup:
		return newRadioGroup(wb.doc, wc, s, wb.doc.NewNode(wc.ID, "radiogroup", nil)), nil
	case config.KindTabs:
		return newTabs(wb.doc, wc, s), nil
	case config.KindToolbar:
		return newToolbar(wb.doc, wc, s), nil
	case config.KindAccordion:
		return newAccordion(wb.doc, wc, s), nil
	}
	return nil, fmt.Errorf("building %s: %w: %q", wc.ID, config.ErrUnknownKind, wc.Kind)
}

// Title returns the workbench title.
func (wb *Workbench) Title() string {
	if wb.cfg.Title != "" {
		return wb.cfg.Title
	}
	return "listkit"
}

// Document returns the element document.
func (wb *Workbench) Document() *dom.Document {
	return wb.doc
}

// Widgets returns the widgets in configuration order.
func (wb *Workbench) Widgets() []Widget {
	return wb.widgets
}

// Widget returns the widget with the given id.
func (wb *Workbench) Widget(id string) (Widget, error) {
	for _, w := range wb.widgets {
		if w.ID() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, id)
}

// Focused returns the widget holding keyboard focus.
func (wb *Workbench) Focused() (Widget, bool) {
	if wb.focused < 0 || wb.focused >= len(wb.widgets) {
		return nil, false
	}
	return wb.widgets[wb.focused], true
}

// FocusWidget gives keyboard focus to the i-th widget. In roving mode
// native focus lands on its active item, otherwise on its container.
func (wb *Workbench) FocusWidget(i int) {
	if i < 0 || i >= len(wb.widgets) {
		return
	}
	wb.focused = i
	w := wb.widgets[i]
	st := w.State()
	if w.FocusMode() == list.Roving && st.ActiveIndex >= 0 && st.ActiveIndex < len(st.Items) {
		if n, ok := wb.doc.Lookup(st.Items[st.ActiveIndex].ID); ok {
			n.Focus()
			return
		}
	}
	w.Element().Focus()
}

// cycle moves keyboard focus by delta widgets, wrapping around and
// skipping disabled widgets.
func (wb *Workbench) cycle(delta int) bool {
	n := len(wb.widgets)
	for step := 1; step <= n; step++ {
		i := ((wb.focused+delta*step)%n + n) % n
		if !wb.widgets[i].State().Disabled {
			wb.FocusWidget(i)
			return true
		}
	}
	return false
}

// HandleKey routes a key event. Tab and Shift+Tab move between widgets;
// everything else goes to the focused widget with the active element as
// its target.
func (wb *Workbench) HandleKey(e *key.Event) bool {
	if e.Key == key.Tab {
		switch e.Mods() {
		case key.ModNone:
			return wb.cycle(1)
		case key.ModShift:
			return wb.cycle(-1)
		}
	}
	w, ok := wb.Focused()
	if !ok {
		return false
	}
	if e.Target == nil {
		if active := wb.doc.ActiveElement(); active != nil {
			e.Target = active
		}
	}
	handled := w.OnKeydown(e)
	wb.log.Debug("key %s -> %s handled=%v", e, w.ID(), handled)
	return handled
}

// HandlePointer routes a pointer event to the widget containing its
// target, which also takes keyboard focus.
func (wb *Workbench) HandlePointer(e *mouse.Event) bool {
	if e.Target == nil {
		return false
	}
	for i, w := range wb.widgets {
		root := w.Element()
		if dom.ClosestFunc(e.Target, func(el dom.Element) bool { return dom.SameElement(el, root) }) == nil {
			continue
		}
		wb.focused = i
		handled := w.OnPointerdown(e)
		if !handled {
			wb.FocusWidget(i)
		}
		wb.log.Debug("pointer %s on %s -> %s handled=%v", e.Action, e.Target.ID(), w.ID(), handled)
		return handled
	}
	return false
}

// Press parses spec ("Shift+ArrowDown", "<C-a>", "Space") and handles it.
func (wb *Workbench) Press(spec string) (bool, error) {
	e, err := key.Parse(spec)
	if err != nil {
		return false, fmt.Errorf("press %q: %w", spec, err)
	}
	return wb.HandleKey(e), nil
}

// Click presses the primary button on the element with the given id.
func (wb *Workbench) Click(id string, mods key.Modifier) (bool, error) {
	n, ok := wb.doc.Lookup(id)
	if !ok {
		return false, fmt.Errorf("click: %w: %q", ErrUnknownElement, id)
	}
	return wb.HandlePointer(mouse.NewPress(n, mods)), nil
}

// States returns the state of every widget.
func (wb *Workbench) States() []State {
	states := make([]State, 0, len(wb.widgets))
	for _, w := range wb.widgets {
		states = append(states, w.State())
	}
	return states
}

// Validate collects every widget's warnings and logs each one.
func (wb *Workbench) Validate() []Violation {
	var violations []Violation
	for _, w := range wb.widgets {
		for _, msg := range w.Validate() {
			violations = append(violations, Violation{Widget: w.ID(), Message: msg})
			wb.log.WithComponent(w.ID()).Warn("%s", msg)
		}
	}
	return violations
}

// SetDefaultState re-runs the initial active-item rule on every widget.
func (wb *Workbench) SetDefaultState() {
	for _, w := range wb.widgets {
		w.SetDefaultState()
	}
}
