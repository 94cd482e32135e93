package event

import (
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
)

// PointerManager builds pointer registrations from a button and modifier
// masks. Side effects are off by default so native focus and click handling
// still run.
type PointerManager struct {
	Manager[*mouse.Event]

	PreventDefault  bool
	StopPropagation bool
}

// NewPointerManager creates a pointer manager with both side effects off.
func NewPointerManager() *PointerManager {
	return &PointerManager{}
}

// On registers h for a primary-button press with no modifiers.
func (pm *PointerManager) On(h func(*mouse.Event)) *PointerManager {
	return pm.OnButton(mouse.ButtonPrimary, []key.Modifier{key.ModNone}, h)
}

// OnMod registers h for a primary-button press with exactly mods.
func (pm *PointerManager) OnMod(mods key.Modifier, h func(*mouse.Event)) *PointerManager {
	return pm.OnButton(mouse.ButtonPrimary, []key.Modifier{mods}, h)
}

// OnMods registers h for a primary-button press with any of the masks.
func (pm *PointerManager) OnMods(mods []key.Modifier, h func(*mouse.Event)) *PointerManager {
	return pm.OnButton(mouse.ButtonPrimary, mods, h)
}

// OnButton registers h for a press of button with any of the masks.
func (pm *PointerManager) OnButton(button mouse.Button, mods []key.Modifier, h func(*mouse.Event)) *PointerManager {
	accepted := append([]key.Modifier(nil), mods...)
	pm.Register(Registration[*mouse.Event]{
		Matcher: func(e *mouse.Event) bool {
			return e.Action == mouse.ActionPress && e.Button == button && e.Mods().Matches(accepted...)
		},
		Handler:         h,
		PreventDefault:  pm.PreventDefault,
		StopPropagation: pm.StopPropagation,
	})
	return pm
}
