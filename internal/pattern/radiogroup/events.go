package radiogroup

import (
	"github.com/dshills/listkit/internal/behavior/event"
	"github.com/dshills/listkit/internal/behavior/list"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
)

// OnKeydown handles a keyboard event unless the group is disabled.
func (g *Group[V]) OnKeydown(e *key.Event) bool {
	if g.Disabled() {
		return false
	}
	return g.keydown.Get().Handle(e)
}

// OnPointerdown handles a pointer press unless the group is disabled.
func (g *Group[V]) OnPointerdown(e *mouse.Event) bool {
	if g.Disabled() {
		return false
	}
	return g.pointerdown.Get().Handle(e)
}

func (g *Group[V]) buildKeydown() *event.KeyboardManager {
	km := event.NewKeyboardManager()
	prev := event.KeyFunc(g.prevKey)
	next := event.KeyFunc(g.nextKey)

	// Readonly also covers a disabled selected radio, so this derivation
	// tracks the value cell too.
	selectOne := !g.Readonly()

	km.
		On(prev, func(*key.Event) { g.Prev(selectOne) }).
		On(next, func(*key.Event) { g.Next(selectOne) }).
		On(event.Key(key.Home), func(*key.Event) { g.First(selectOne) }).
		On(event.Key(key.End), func(*key.Event) { g.Last(selectOne) })

	if selectOne {
		km.
			On(event.Key(key.Space), func(*key.Event) { g.selection.SelectOne() }).
			On(event.Key(key.Enter), func(*key.Event) { g.selection.SelectOne() })
	}
	return km
}

func (g *Group[V]) buildPointerdown() *event.PointerManager {
	selectOne := !g.Readonly()
	return event.NewPointerManager().On(func(e *mouse.Event) {
		if rb, ok := list.ItemForTarget(g.inputs.Items(), e.Target, "radio"); ok {
			g.Goto(rb, selectOne)
		}
	})
}
