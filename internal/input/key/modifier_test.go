package key

import (
	"testing"
)

func TestModifierValues(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want uint8
	}{
		{ModNone, 0},
		{ModCtrl, 1},
		{ModShift, 2},
		{ModAlt, 4},
		{ModMeta, 8},
	}

	for _, tt := range tests {
		if uint8(tt.mod) != tt.want {
			t.Errorf("Modifier %s = %d, want %d", tt.mod, tt.mod, tt.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierMatches(t *testing.T) {
	tests := []struct {
		name     string
		actual   Modifier
		accepted []Modifier
		want     bool
	}{
		{"exact none", ModNone, []Modifier{ModNone}, true},
		{"exact shift", ModShift, []Modifier{ModShift}, true},
		{"superset is not a match", ModCtrl | ModShift, []Modifier{ModShift}, false},
		{"subset is not a match", ModShift, []Modifier{ModCtrl | ModShift}, false},
		{"one of several", ModMeta, []Modifier{ModCtrl, ModMeta}, true},
		{"none of several", ModAlt, []Modifier{ModCtrl, ModMeta}, false},
		{"any matches everything", ModCtrl | ModAlt | ModShift, []Modifier{ModAny}, true},
		{"any matches none", ModNone, []Modifier{ModAny}, true},
		{"empty accepted set", ModNone, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.actual.Matches(tt.accepted...); got != tt.want {
				t.Errorf("%s.Matches(%v) = %v, want %v", tt.actual, tt.accepted, got, tt.want)
			}
		})
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModShift)
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Errorf("With() = %s, want Ctrl+Shift", mod)
	}
	mod = mod.Without(ModCtrl)
	if mod != ModShift {
		t.Errorf("Without(ModCtrl) = %s, want Shift", mod)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModMeta, "Meta"},
		{ModAny, "Any"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModShift | ModMeta, "Ctrl+Shift+Alt+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Modifier
	}{
		{"ctrl", ModCtrl},
		{"Shift", ModShift},
		{"ctrl+shift", ModCtrl | ModShift},
		{"ctrl-shift", ModCtrl | ModShift},
		{"a", ModNone},
		{"s+m", ModNone},
		{"cmd", ModMeta},
		{"bogus", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.input); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestModifierFromNameRejectsLetters(t *testing.T) {
	for _, name := range []string{"c", "a", "s", "m", "d"} {
		if got := ModifierFromName(name); got != ModNone {
			t.Errorf("ModifierFromName(%q) = %s, want none", name, got)
		}
	}
	if got := ModifierFromName("Option"); got != ModAlt {
		t.Errorf("ModifierFromName(Option) = %s, want Alt", got)
	}
}
