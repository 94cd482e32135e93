package event

import (
	"regexp"
	"strings"

	"github.com/dshills/listkit/internal/input/key"
)

// KeyMatcher describes which key values a keyboard registration accepts.
// Use Key, KeyFunc or Pattern to build one.
type KeyMatcher interface {
	matchKey(k string) bool
}

type literalKey string

func (l literalKey) matchKey(k string) bool {
	return l != "" && strings.EqualFold(string(l), k)
}

type dynamicKey func() string

func (d dynamicKey) matchKey(k string) bool {
	want := d()
	return want != "" && strings.EqualFold(want, k)
}

type patternKey struct {
	re *regexp.Regexp
}

func (p patternKey) matchKey(k string) bool {
	return p.re.MatchString(k)
}

// Key matches a literal key value, ignoring case.
func Key(k string) KeyMatcher {
	return literalKey(k)
}

// KeyFunc matches the key value returned by fn at dispatch time. An empty
// result never matches.
func KeyFunc(fn func() string) KeyMatcher {
	return dynamicKey(fn)
}

// Pattern matches key values accepted by re.
func Pattern(re *regexp.Regexp) KeyMatcher {
	return patternKey{re: re}
}

// KeyboardManager builds keyboard registrations from a key matcher and
// modifier masks. Handlers prevent the default action and stop propagation
// unless configured otherwise.
type KeyboardManager struct {
	Manager[*key.Event]

	PreventDefault  bool
	StopPropagation bool
}

// NewKeyboardManager creates a keyboard manager with both side effects on.
func NewKeyboardManager() *KeyboardManager {
	return &KeyboardManager{
		PreventDefault:  true,
		StopPropagation: true,
	}
}

// On registers h for k pressed with no modifiers.
func (km *KeyboardManager) On(k KeyMatcher, h func(*key.Event)) *KeyboardManager {
	return km.OnMods([]key.Modifier{key.ModNone}, k, h)
}

// OnMod registers h for k pressed with exactly mods.
func (km *KeyboardManager) OnMod(mods key.Modifier, k KeyMatcher, h func(*key.Event)) *KeyboardManager {
	return km.OnMods([]key.Modifier{mods}, k, h)
}

// OnMods registers h for k pressed with any one of the accepted masks.
func (km *KeyboardManager) OnMods(mods []key.Modifier, k KeyMatcher, h func(*key.Event)) *KeyboardManager {
	accepted := append([]key.Modifier(nil), mods...)
	km.Register(Registration[*key.Event]{
		Matcher: func(e *key.Event) bool {
			return e.Mods().Matches(accepted...) && k.matchKey(e.Key)
		},
		Handler:         h,
		PreventDefault:  km.PreventDefault,
		StopPropagation: km.StopPropagation,
	})
	return km
}
