package listbox

import (
	"regexp"

	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
)

// typeaheadKey accepts any single character, including a blank.
var typeaheadKey = regexp.MustCompile(`^.$`)

var (
	ctrlOrMeta = []key.Modifier{key.ModCtrl, key.ModMeta}
	// Shift alone extends to an edge; Ctrl or Meta with Shift do the same.
	shiftEdge = []key.Modifier{key.ModShift, key.ModCtrl | key.ModShift, key.ModMeta | key.ModShift}
)

// OnKeydown handles a keyboard event unless the listbox is disabled.
func (lb *Listbox[V]) OnKeydown(e *key.Event) bool {
	if lb.Disabled() {
		return false
	}
	return lb.keydown.Get().Handle(e)
}

// OnPointerdown handles a pointer press unless the listbox is disabled.
func (lb *Listbox[V]) OnPointerdown(e *mouse.Event) bool {
	if lb.Disabled() {
		return false
	}
	return lb.pointerdown.Get().Handle(e)
}

// dynamicSpaceKey is Space unless a typeahead search is in progress, in
// which case a blank belongs to the search.
func (lb *Listbox[V]) dynamicSpaceKey() string {
	if ta := lb.inputs.Typeahead; ta != nil && ta.IsTyping() {
		return ""
	}
	return key.Space
}

func (lb *Listbox[V]) buildKeydown() *event.KeyboardManager {
	km := event.NewKeyboardManager()
	prev := event.KeyFunc(lb.prevKey)
	next := event.KeyFunc(lb.nextKey)
	space := event.KeyFunc(lb.dynamicSpaceKey)
	typeahead := event.Pattern(typeaheadKey)

	multi := lb.inputs.Multi()
	follow := lb.FollowFocus()

	if lb.inputs.Readonly() {
		return km.
			On(prev, func(*key.Event) { lb.Prev(NavOptions{}) }).
			On(next, func(*key.Event) { lb.Next(NavOptions{}) }).
			On(event.Key(key.Home), func(*key.Event) { lb.First(NavOptions{}) }).
			On(event.Key(key.End), func(*key.Event) { lb.Last(NavOptions{}) }).
			On(typeahead, func(e *key.Event) { lb.search(e.Key, NavOptions{}) })
	}

	nav := NavOptions{SelectOne: follow}
	km.
		On(prev, func(*key.Event) { lb.Prev(nav) }).
		On(next, func(*key.Event) { lb.Next(nav) }).
		On(event.Key(key.Home), func(*key.Event) { lb.First(nav) }).
		On(event.Key(key.End), func(*key.Event) { lb.Last(nav) }).
		On(typeahead, func(e *key.Event) { lb.search(e.Key, nav) })

	if multi {
		rangeNav := NavOptions{SelectRange: true}
		edge := NavOptions{SelectRange: true, Unanchored: true}
		km.
			OnMod(key.ModAny, event.Key(key.Shift), func(*key.Event) { lb.anchor(lb.focus.ActiveIndex()) }).
			OnMod(key.ModShift, prev, func(*key.Event) { lb.Prev(rangeNav) }).
			OnMod(key.ModShift, next, func(*key.Event) { lb.Next(rangeNav) }).
			OnMods(shiftEdge, event.Key(key.Home), func(*key.Event) { lb.First(edge) }).
			OnMods(shiftEdge, event.Key(key.End), func(*key.Event) { lb.Last(edge) }).
			OnMod(key.ModShift, event.Key(key.Enter), func(*key.Event) { lb.updateSelection(edge) }).
			OnMod(key.ModShift, space, func(*key.Event) { lb.updateSelection(edge) })
	}

	switch {
	case !follow && multi:
		km.
			On(space, func(*key.Event) { lb.selection.Toggle(nil) }).
			On(event.Key(key.Enter), func(*key.Event) { lb.selection.Toggle(nil) }).
			OnMods(ctrlOrMeta, event.Key("a"), func(*key.Event) { lb.selection.ToggleAll() })
	case !follow && !multi:
		km.
			On(space, func(*key.Event) { lb.selection.ToggleOne() }).
			On(event.Key(key.Enter), func(*key.Event) { lb.selection.ToggleOne() })
	case follow && multi:
		km.
			OnMods(ctrlOrMeta, prev, func(*key.Event) { lb.Prev(NavOptions{}) }).
			OnMods(ctrlOrMeta, next, func(*key.Event) { lb.Next(NavOptions{}) }).
			OnMods(ctrlOrMeta, event.Key(key.Space), func(*key.Event) { lb.selection.Toggle(nil) }).
			OnMods(ctrlOrMeta, event.Key(key.Enter), func(*key.Event) { lb.selection.Toggle(nil) }).
			OnMods(ctrlOrMeta, event.Key(key.Home), func(*key.Event) { lb.First(NavOptions{}) }).
			OnMods(ctrlOrMeta, event.Key(key.End), func(*key.Event) { lb.Last(NavOptions{}) }).
			OnMods(ctrlOrMeta, event.Key("a"), func(*key.Event) {
				lb.selection.ToggleAll()
				// Keep the active option selected.
				lb.selection.Select(nil, list.Anchored)
			})
	}
	return km
}

func (lb *Listbox[V]) buildPointerdown() *event.PointerManager {
	pm := event.NewPointerManager()
	gotoTarget := func(opts NavOptions) func(*mouse.Event) {
		return func(e *mouse.Event) {
			if opt, ok := list.ItemForTarget(lb.inputs.Items(), e.Target, "option"); ok {
				lb.Goto(opt, opts)
			}
		}
	}

	if lb.inputs.Readonly() {
		return pm.On(gotoTarget(NavOptions{}))
	}

	multi := lb.inputs.Multi()
	follow := lb.FollowFocus()

	if multi {
		pm.OnMod(key.ModShift, gotoTarget(NavOptions{SelectRange: true}))
	}

	switch {
	case !multi && follow:
		pm.On(gotoTarget(NavOptions{SelectOne: true}))
	case !multi && !follow:
		pm.On(gotoTarget(NavOptions{Toggle: true}))
	case multi && follow:
		pm.
			On(gotoTarget(NavOptions{SelectOne: true})).
			OnMods(ctrlOrMeta, gotoTarget(NavOptions{Toggle: true}))
	default:
		pm.On(gotoTarget(NavOptions{Toggle: true}))
	}
	return pm
}
