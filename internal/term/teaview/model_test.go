package teaview

import (
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/workbench"
)

const sample = `
title = "demo"

[[widget]]
kind = "listbox"
id = "fruits"
label = "Fruits"
multi = true
items = [ { id = "apple", label = "Apple" }, { id = "banana", label = "Banana" } ]

[[widget]]
kind = "accordion"
id = "faq"
items = [ { id = "q1" }, { id = "q2" } ]
`

func newWorkbench(t *testing.T) *workbench.Workbench {
	t.Helper()
	cfg, err := config.Parse("model.toml", []byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	wb, err := workbench.New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return wb
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func newModel(t *testing.T) Model {
	t.Helper()
	m, _ := apply(t, New(newWorkbench(t), nil), tea.WindowSizeMsg{Width: 40, Height: 12})
	return m
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantKey  string
		wantMods key.Modifier
		wantOK   bool
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyDown}, key.ArrowDown, key.ModNone, true},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftUp}, key.ArrowUp, key.ModShift, true},
		{"ctrl shift home", tea.KeyMsg{Type: tea.KeyCtrlShiftHome}, key.Home, key.ModCtrl | key.ModShift, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, key.Space, key.ModNone, true},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, "b", key.ModNone, true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, "x", key.ModAlt, true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}, "", key.ModNone, false},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, key.Tab, key.ModShift, true},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlA}, "a", key.ModCtrl, true},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, "", key.ModNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyEvent(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("KeyEvent() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Key != tt.wantKey || got.Mods() != tt.wantMods {
				t.Errorf("KeyEvent() = %q %v, want %q %v", got.Key, got.Mods(), tt.wantKey, tt.wantMods)
			}
		})
	}
}

func TestView(t *testing.T) {
	m := newModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Fatalf("View() has %d lines, want 12", len(lines))
	}
	if !strings.Contains(lines[0], "demo") {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Fruits (listbox)") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "[ ] Apple") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[11], "fruits") {
		t.Errorf("status = %q", lines[11])
	}
}

func TestUpdateKeys(t *testing.T) {
	m := newModel(t)

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if !strings.Contains(m.View(), "[x] Banana") {
		t.Errorf("View() = %q, want banana selected", m.View())
	}
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if w, _ := m.Workbench().Focused(); w.ID() != "faq" {
		t.Errorf("after Tab Focused() = %s, want faq", w.ID())
	}
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "v q1") {
		t.Errorf("View() = %q, want q1 expanded", m.View())
	}

	_, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Ctrl+C returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C did not quit")
	}
}

func TestUpdateMouse(t *testing.T) {
	m := newModel(t)

	// rows: 0 title, 1 fruits header, 2 apple, 3 banana, 4 blank, 5 faq header, 6 q1, 7 q2
	m, _ = apply(t, m, tea.MouseMsg{X: 4, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	w, err := m.Workbench().Widget("faq")
	if err != nil {
		t.Fatal(err)
	}
	if got := w.State().Expanded; !slices.Equal(got, []string{"q2"}) {
		t.Errorf("faq Expanded = %v, want [q2]", got)
	}

	m, _ = apply(t, m, tea.MouseMsg{X: 4, Y: 6, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if got := w.State().Expanded; !slices.Equal(got, []string{"q2"}) {
		t.Errorf("release changed Expanded to %v", got)
	}

	m, _ = apply(t, m, tea.MouseMsg{X: 4, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, Ctrl: true})
	fruits, _ := m.Workbench().Widget("fruits")
	if got := fruits.State().Value; !slices.Equal(got, []string{"banana"}) {
		t.Errorf("fruits Value = %v, want [banana]", got)
	}
}

func TestReloadMsg(t *testing.T) {
	m := newModel(t)
	first := m.Workbench()

	m, _ = apply(t, m, ReloadMsg{})
	if m.Workbench() != first {
		t.Error("reload without a reloader replaced the workbench")
	}

	m = m.WithReloader(func() (*workbench.Workbench, error) { return nil, errors.New("boom") })
	m, _ = apply(t, m, ReloadMsg{})
	if m.Workbench() != first || !strings.Contains(m.View(), "reload failed: boom") {
		t.Errorf("failed reload view = %q", m.View())
	}

	next := newWorkbench(t)
	m = m.WithReloader(func() (*workbench.Workbench, error) { return next, nil })
	m, _ = apply(t, m, ReloadMsg{})
	if m.Workbench() != next {
		t.Error("reload did not replace the workbench")
	}
}
