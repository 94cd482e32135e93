package snapshot

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/workbench"
)

const sample = `
title = "snap"

[[widget]]
kind = "listbox"
id = "fruits"
items = [ { id = "apple", selected = true }, { id = "pear" } ]

[[widget]]
kind = "toolbar"
id = "format"
items = [ { id = "bold" }, { id = "align", group = [ { id = "left", selected = true }, { id = "right" } ] } ]

[[widget]]
kind = "accordion"
id = "v1.faq"
items = [ { id = "q1", expanded = true } ]
`

func take(t *testing.T) []byte {
	t.Helper()
	cfg, err := config.Parse("snap.toml", []byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	wb, err := workbench.New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Take(wb)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	return doc
}

func TestTakeIsValidJSON(t *testing.T) {
	doc := take(t)
	if !json.Valid(doc) {
		t.Fatalf("Take() produced invalid JSON: %s", doc)
	}
	if !json.Valid(Pretty(doc)) {
		t.Error("Pretty() produced invalid JSON")
	}
}

func TestQuery(t *testing.T) {
	doc := take(t)

	tests := []struct {
		path string
		want string
	}{
		{"title", `"snap"`},
		{"focused", `"fruits"`},
		{"active", `"apple"`},
		{Widget("fruits") + ".value", `["apple"]`},
		{Widget("fruits") + ".items.1.id", `"pear"`},
		{Widget("fruits") + ".items.#", `2`},
		{Widget("format") + ".items.1.group.value", `["left"]`},
		{Widget("v1.faq") + ".expanded", `["q1"]`},
		{Widget("v1.faq") + ".kind", `"accordion"`},
		{Widget("fruits") + `.items.#(selected==true).id`, `"apple"`},
	}
	for _, tt := range tests {
		got, err := Query(doc, tt.path)
		if err != nil {
			t.Errorf("Query(%q) error = %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Query(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if _, err := Query(doc, "widgets.missing"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Query(missing) error = %v, want ErrNoMatch", err)
	}
	if got := Get(doc, Widget("fruits")+".activeIndex").Int(); got != 0 {
		t.Errorf("activeIndex = %d, want 0", got)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"a.b", `a\.b`},
		{"x*y?", `x\*y\?`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
