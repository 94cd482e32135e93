// Package config loads workbench descriptions from TOML.
//
// A workbench is an ordered set of widgets, each built on one interaction
// pattern:
//
//	wrap = true
//	focus_mode = "roving"
//
//	[[widget]]
//	kind = "listbox"
//	id = "fruits"
//	multi = true
//	items = [
//	  { id = "apple", label = "Apple", selected = true },
//	  { label = "Cherry", disabled = true },
//	]
//
// Top-level settings are defaults; a widget may override any of them.
// Items and widgets without an id get a generated one.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/pattern/listbox"
)

// Kind names the pattern a widget is built on.
type Kind string

const (
	KindListbox    Kind = "listbox"
	KindRadioGroup Kind = "radiogroup"
	KindTabs       Kind = "tabs"
	KindToolbar    Kind = "toolbar"
	KindAccordion  Kind = "accordion"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{KindListbox, KindRadioGroup, KindTabs, KindToolbar, KindAccordion}

// Known reports whether k has a pattern.
func (k Kind) Known() bool {
	return slices.Contains(Kinds, k)
}

// DefaultOrientation is the orientation a kind uses when none is set.
func (k Kind) DefaultOrientation() list.Orientation {
	switch k {
	case KindTabs, KindToolbar:
		return list.Horizontal
	}
	return list.Vertical
}

// Defaults are the settings shared by all widgets.
type Defaults struct {
	Wrap          *bool  `toml:"wrap"`
	SkipDisabled  *bool  `toml:"skip_disabled"`
	FocusMode     string `toml:"focus_mode"`
	Orientation   string `toml:"orientation"`
	TextDirection string `toml:"text_direction"`
}

// Item is one option, radio, tab, toolbar widget or accordion trigger.
type Item struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Value    string `toml:"value"`
	Disabled bool   `toml:"disabled"`
	Selected bool   `toml:"selected"`
	Expanded bool   `toml:"expanded"`

	// Group makes a toolbar item host a radio group of these radios.
	Group []Item `toml:"group"`
}

// ItemValue returns the value, which defaults to the id.
func (it Item) ItemValue() string {
	if it.Value != "" {
		return it.Value
	}
	return it.ID
}

// Text returns the label, which defaults to the id.
func (it Item) Text() string {
	if it.Label != "" {
		return it.Label
	}
	return it.ID
}

// Widget describes one pattern instance.
type Widget struct {
	Defaults

	Kind            Kind   `toml:"kind"`
	ID              string `toml:"id"`
	Label           string `toml:"label"`
	Multi           bool   `toml:"multi"`
	SelectionMode   string `toml:"selection_mode"`
	Readonly        bool   `toml:"readonly"`
	Disabled        bool   `toml:"disabled"`
	MultiExpandable bool   `toml:"multi_expandable"`
	FollowFocus     *bool  `toml:"follow_focus"`
	Items           []Item `toml:"items"`
}

// Workbench is a parsed workbench file.
type Workbench struct {
	Defaults
	Title   string   `toml:"title"`
	Widgets []Widget `toml:"widget"`

	// Source is the file the workbench was loaded from.
	Source string `toml:"-"`
}

// Settings are a widget's effective shared settings.
type Settings struct {
	Wrap          bool
	SkipDisabled  bool
	FocusMode     list.FocusMode
	Orientation   list.Orientation
	TextDirection list.Direction
}

// Load reads and validates a workbench file.
func Load(path string) (*Workbench, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a workbench. source names the input in
// errors.
func Parse(source string, data []byte) (*Workbench, error) {
	var wb Workbench
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&wb); err != nil {
		return nil, newParseError(source, err)
	}
	wb.Source = source
	wb.assignIDs()
	if err := wb.Validate(); err != nil {
		return nil, err
	}
	return &wb, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		pe.Message = strictErr.String()
	}
	return pe
}

// assignIDs fills in missing widget and item ids.
func (wb *Workbench) assignIDs() {
	for i := range wb.Widgets {
		w := &wb.Widgets[i]
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		fillItemIDs(w.Items)
	}
}

func fillItemIDs(items []Item) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		fillItemIDs(items[i].Group)
	}
}

// Validate checks kinds, ids and enum settings. All problems are returned
// joined; each one is a *ValidationError.
func (wb *Workbench) Validate() error {
	var errs []error
	add := func(path string, value any, err error) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Err: err})
	}

	checkDefaults := func(path string, d Defaults) {
		if _, ok := list.ParseFocusMode(d.FocusMode); !ok {
			add(path+"focus_mode", d.FocusMode, ErrInvalidValue)
		}
		if _, ok := list.ParseOrientation(d.Orientation); !ok {
			add(path+"orientation", d.Orientation, ErrInvalidValue)
		}
		if _, ok := list.ParseDirection(d.TextDirection); !ok {
			add(path+"text_direction", d.TextDirection, ErrInvalidValue)
		}
	}
	checkDefaults("", wb.Defaults)

	// Widgets and items share one element namespace.
	seen := make(map[string]bool)
	var checkItems func(path string, items []Item, allowGroup bool)
	checkItems = func(path string, items []Item, allowGroup bool) {
		for j, it := range items {
			p := fmt.Sprintf("%s[%d]", path, j)
			if seen[it.ID] {
				add(p+".id", it.ID, ErrDuplicateID)
			}
			seen[it.ID] = true
			if len(it.Group) > 0 {
				if !allowGroup {
					add(p+".group", len(it.Group), ErrNestedGroup)
					continue
				}
				checkItems(p+".group", it.Group, false)
			}
		}
	}

	for i, w := range wb.Widgets {
		path := fmt.Sprintf("widget[%d]", i)
		if !w.Kind.Known() {
			add(path+".kind", w.Kind, ErrUnknownKind)
		}
		if seen[w.ID] {
			add(path+".id", w.ID, ErrDuplicateID)
		}
		seen[w.ID] = true
		checkDefaults(path+".", w.Defaults)
		if _, ok := listbox.ParseSelectionMode(w.SelectionMode); !ok {
			add(path+".selection_mode", w.SelectionMode, ErrInvalidValue)
		}
		if len(w.Items) == 0 {
			add(path+".items", 0, ErrEmptyWidget)
		}
		checkItems(path+".items", w.Items, w.Kind == KindToolbar)
	}
	return errors.Join(errs...)
}

// Widget returns the widget with the given id.
func (wb *Workbench) Widget(id string) (Widget, bool) {
	for _, w := range wb.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

// Settings resolves w's settings against the workbench defaults. Validate
// has already rejected unparsable values.
func (wb *Workbench) Settings(w Widget) Settings {
	s := Settings{
		Wrap:         firstBool(w.Wrap, wb.Wrap, false),
		SkipDisabled: firstBool(w.SkipDisabled, wb.SkipDisabled, true),
		Orientation:  w.Kind.DefaultOrientation(),
	}
	s.FocusMode, _ = list.ParseFocusMode(firstString(w.FocusMode, wb.FocusMode))
	s.TextDirection, _ = list.ParseDirection(firstString(w.TextDirection, wb.TextDirection))
	if o := firstString(w.Orientation, wb.Orientation); o != "" {
		s.Orientation, _ = list.ParseOrientation(o)
	}
	return s
}

func firstBool(a, b *bool, def bool) bool {
	switch {
	case a != nil:
		return *a
	case b != nil:
		return *b
	}
	return def
}

func firstString(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
