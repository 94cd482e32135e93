// Package snapshot serializes workbench state to JSON and answers path
// queries against it.
//
// The document has one object per widget under "widgets", keyed by widget
// id, plus "focused" and "active":
//
//	{"title":"demo","focused":"fruits","active":"apple",
//	 "widgets":{"fruits":{"kind":"listbox","activeIndex":0,"value":[], ...}}}
//
// Widget ids may contain characters that are special in paths; they are
// escaped with Escape before use.
package snapshot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/listkit/internal/workbench"
)

// ErrNoMatch is returned by Query when the path selects nothing.
var ErrNoMatch = errors.New("no match")

// Take builds the JSON snapshot of wb.
func Take(wb *workbench.Workbench) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, v)
	}

	set("title", wb.Title())
	if w, ok := wb.Focused(); ok {
		set("focused", w.ID())
	}
	if active := wb.Document().ActiveElement(); active != nil {
		set("active", active.ID())
	}
	set("widgets", map[string]any{})
	for _, st := range wb.States() {
		setState(set, "widgets."+Escape(st.ID), st)
	}
	if err != nil {
		return nil, fmt.Errorf("building snapshot: %w", err)
	}
	return doc, nil
}

func setState(set func(string, any), prefix string, st workbench.State) {
	set(prefix+".kind", string(st.Kind))
	set(prefix+".label", st.Label)
	set(prefix+".disabled", st.Disabled)
	set(prefix+".tabindex", st.Tabindex)
	set(prefix+".activeIndex", st.ActiveIndex)
	if st.ActiveDescendant != "" {
		set(prefix+".activeDescendant", st.ActiveDescendant)
	}
	set(prefix+".value", nonNil(st.Value))
	set(prefix+".expanded", nonNil(st.Expanded))
	set(prefix+".items", []any{})
	for i, it := range st.Items {
		p := fmt.Sprintf("%s.items.%d", prefix, i)
		set(p+".id", it.ID)
		set(p+".label", it.Label)
		set(p+".active", it.Active)
		set(p+".selected", it.Selected)
		set(p+".expanded", it.Expanded)
		set(p+".disabled", it.Disabled)
		set(p+".tabindex", it.Tabindex)
		if it.Group != nil {
			setState(set, p+".group", *it.Group)
		}
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Escape makes an id safe as a single path component.
func Escape(id string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		".", `\.`,
		"*", `\*`,
		"?", `\?`,
		"|", `\|`,
		"#", `\#`,
		"@", `\@`,
	)
	return r.Replace(id)
}

// Query evaluates a gjson path against a snapshot and returns the raw JSON
// of the result.
func Query(doc []byte, path string) (string, error) {
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return "", fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return res.Raw, nil
}

// Get evaluates path and returns the result as a gjson value, for callers
// that need typed access.
func Get(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, path)
}

// Widget returns the path prefix for a widget.
func Widget(id string) string {
	return "widgets." + Escape(id)
}

// Pretty indents a snapshot for display.
func Pretty(doc []byte) []byte {
	return pretty.Pretty(doc)
}
