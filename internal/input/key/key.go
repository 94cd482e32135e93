package key

import "strings"

// Key values as reported by a keyboard event. Printable characters are
// reported as themselves, so Space is a single blank.
const (
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	Home       = "Home"
	End        = "End"
	PageUp     = "PageUp"
	PageDown   = "PageDown"
	Enter      = "Enter"
	Space      = " "
	Tab        = "Tab"
	Escape     = "Escape"
	Backspace  = "Backspace"
	Delete     = "Delete"

	// Modifier keys pressed on their own.
	Shift   = "Shift"
	Control = "Control"
	Alt     = "Alt"
	Meta    = "Meta"
)

// keyNameMap maps lowercase key names and aliases to key values.
var keyNameMap = map[string]string{
	"arrowup":    ArrowUp,
	"up":         ArrowUp,
	"arrowdown":  ArrowDown,
	"down":       ArrowDown,
	"arrowleft":  ArrowLeft,
	"left":       ArrowLeft,
	"arrowright": ArrowRight,
	"right":      ArrowRight,
	"home":       Home,
	"end":        End,
	"pageup":     PageUp,
	"pgup":       PageUp,
	"pagedown":   PageDown,
	"pgdn":       PageDown,
	"enter":      Enter,
	"return":     Enter,
	"cr":         Enter,
	"space":      Space,
	"tab":        Tab,
	"escape":     Escape,
	"esc":        Escape,
	"backspace":  Backspace,
	"bs":         Backspace,
	"delete":     Delete,
	"del":        Delete,
	"shift":      Shift,
	"control":    Control,
	"alt":        Alt,
	"meta":       Meta,
}

// FromName returns the key value for a name or alias (case-insensitive).
// Returns "" if the name is not recognized.
func FromName(name string) string {
	return keyNameMap[strings.ToLower(strings.TrimSpace(name))]
}

// IsArrow returns true if k is one of the four arrow keys.
func IsArrow(k string) bool {
	switch k {
	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		return true
	}
	return false
}

// IsModifierKey returns true if k names a modifier key pressed on its own.
func IsModifierKey(k string) bool {
	switch k {
	case Shift, Control, Alt, Meta:
		return true
	}
	return false
}

// DisplayName returns a readable name for a key value.
func DisplayName(k string) string {
	if k == Space {
		return "Space"
	}
	return k
}
