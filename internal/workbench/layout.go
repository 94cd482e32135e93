package workbench

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/dom"
)

// LineKind tells a front-end how to style a line.
type LineKind int

const (
	LineHeader LineKind = iota
	LineItem
	LineBlank
)

// Line is one rendered row. Target is the element a click on the line
// presses.
type Line struct {
	Kind    LineKind
	Widget  string
	Target  dom.Element
	Text    string
	Focused bool // the line's widget has keyboard focus
	Cursor  bool // the line's element has native focus or is the active descendant

	Active   bool
	Selected bool
	Expanded bool
	Disabled bool
}

// Layout renders every widget as rows no wider than width cells.
func (wb *Workbench) Layout(width int) []Line {
	var lines []Line
	active := wb.doc.ActiveElement()
	for i, w := range wb.widgets {
		st := w.State()
		focused := i == wb.focused
		if i > 0 {
			lines = append(lines, Line{Kind: LineBlank})
		}
		header := st.Label + " (" + string(st.Kind) + ")"
		if st.Disabled {
			header += " disabled"
		}
		lines = append(lines, Line{
			Kind:     LineHeader,
			Widget:   st.ID,
			Target:   w.Element(),
			Text:     Truncate(header, width),
			Focused:  focused,
			Cursor:   active != nil && active.ID() == st.ID,
			Disabled: st.Disabled,
		})
		lines = wb.itemLines(lines, st, st, 1, focused, width)
	}
	return lines
}

func (wb *Workbench) itemLines(lines []Line, owner, st State, depth int, focused bool, width int) []Line {
	active := wb.doc.ActiveElement()
	for _, it := range st.Items {
		var target dom.Element
		if n, ok := wb.doc.Lookup(it.ID); ok {
			target = n
		}
		text := strings.Repeat("  ", depth) + marker(st.Kind, it) + it.Label
		lines = append(lines, Line{
			Kind:     LineItem,
			Widget:   owner.ID,
			Target:   target,
			Text:     Truncate(text, width),
			Focused:  focused,
			Cursor:   (active != nil && active.ID() == it.ID) || st.ActiveDescendant == it.ID,
			Active:   it.Active,
			Selected: it.Selected,
			Expanded: it.Expanded,
			Disabled: it.Disabled,
		})
		if it.Group != nil {
			lines = wb.itemLines(lines, owner, *it.Group, depth+1, focused, width)
		}
	}
	return lines
}

func marker(kind config.Kind, it ItemState) string {
	switch kind {
	case config.KindListbox:
		if it.Selected {
			return "[x] "
		}
		return "[ ] "
	case config.KindRadioGroup:
		if it.Selected {
			return "(*) "
		}
		return "( ) "
	case config.KindTabs:
		if it.Selected {
			return "| "
		}
		return "  "
	case config.KindAccordion:
		if it.Expanded {
			return "v "
		}
		return "> "
	}
	return ""
}

// Truncate shortens s to at most width terminal cells, cutting between
// grapheme clusters and marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	b.WriteString("…")
	return b.String()
}
