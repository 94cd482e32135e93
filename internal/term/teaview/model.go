// Package teaview is the Bubble Tea front-end for a workbench. Key and
// mouse messages become key and pointer events; the view renders the
// workbench layout with lipgloss styles.
package teaview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/logging"
	"github.com/dshills/listkit/internal/workbench"
)

// Reloader rebuilds the workbench, typically from its configuration file.
type Reloader func() (*workbench.Workbench, error)

// ReloadMsg asks the model to rebuild its workbench. Send it with
// Program.Send from a file watcher.
type ReloadMsg struct{}

// Model is a tea.Model over one workbench.
type Model struct {
	wb     *workbench.Workbench
	log    *logging.Logger
	reload Reloader

	width  int
	height int
	top    int
	status string
	err    bool
}

// New returns a model showing wb.
func New(wb *workbench.Workbench, log *logging.Logger) Model {
	if log == nil {
		log = logging.Null()
	}
	return Model{
		wb:     wb,
		log:    log.WithComponent("bubbletea"),
		width:  80,
		height: 24,
	}
}

// WithReloader returns a copy of m that handles ReloadMsg with r.
func (m Model) WithReloader(r Reloader) Model {
	m.reload = r
	return m
}

// Workbench returns the workbench being shown.
func (m Model) Workbench() *workbench.Workbench {
	return m.wb
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlQ {
			return m, tea.Quit
		}
		if e, ok := KeyEvent(msg); ok {
			handled := m.wb.HandleKey(e)
			m.status, m.err = e.String(), false
			if !handled {
				m.status += " (unhandled)"
			}
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case ReloadMsg:
		m = m.doReload()
	}
	m.top = m.follow()
	return m, nil
}

func (m Model) doReload() Model {
	if m.reload == nil {
		return m
	}
	wb, err := m.reload()
	if err != nil {
		m.log.Error("reload: %v", err)
		m.status, m.err = "reload failed: "+err.Error(), true
		return m
	}
	m.wb = wb
	m.top = 0
	m.status, m.err = "reloaded", false
	m.log.Info("reloaded %s", wb.Title())
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	lines := m.wb.Layout(m.width)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.top = max(0, m.top-1)
		return m
	case tea.MouseButtonWheelDown:
		m.top = max(0, min(m.top+1, len(lines)-m.rows()))
		return m
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m
		}
	default:
		return m
	}

	i := m.top + msg.Y - 1
	if msg.Y < 1 || i < 0 || i >= len(lines) || lines[i].Target == nil {
		return m
	}
	var mods key.Modifier
	if msg.Shift {
		mods = mods.With(key.ModShift)
	}
	if msg.Ctrl {
		mods = mods.With(key.ModCtrl)
	}
	if msg.Alt {
		mods = mods.With(key.ModAlt)
	}
	e := mouse.NewPress(lines[i].Target, mods)
	e.Position = mouse.Position{X: msg.X, Y: msg.Y}
	m.wb.HandlePointer(e)
	m.status, m.err = "click "+lines[i].Target.ID(), false
	return m
}

func (m Model) rows() int {
	return max(0, m.height-2)
}

// follow returns the scroll offset that keeps the focused cursor visible.
func (m Model) follow() int {
	rows := m.rows()
	if rows == 0 {
		return m.top
	}
	for i, l := range m.wb.Layout(m.width) {
		if !l.Cursor || !l.Focused {
			continue
		}
		switch {
		case i < m.top:
			return i
		case i >= m.top+rows:
			return i - rows + 1
		}
		return m.top
	}
	return m.top
}

// View implements tea.Model.
func (m Model) View() string {
	lines := m.wb.Layout(m.width)
	rows := m.rows()

	var b strings.Builder
	b.WriteString(styleTitle.Width(m.width).Render(" " + m.wb.Title()))
	for r := 0; r < rows; r++ {
		b.WriteByte('\n')
		if m.top+r < len(lines) {
			l := lines[m.top+r]
			b.WriteString(lineStyle(l).Render(l.Text))
		}
	}
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	help := "Tab/Shift+Tab: widget  Ctrl+C: quit"
	if w, ok := m.wb.Focused(); ok {
		help = w.ID() + "  " + help
	}
	if m.status == "" {
		return styleStatus.Render(workbench.Truncate(help, m.width))
	}
	st := styleStatus
	if m.err {
		st = styleError
	}
	return st.Render(workbench.Truncate(m.status+"  |  "+help, m.width))
}

func lineStyle(l workbench.Line) lipgloss.Style {
	st := styleItem
	switch {
	case l.Kind == workbench.LineHeader && l.Focused:
		st = styleFocused
	case l.Kind == workbench.LineHeader:
		st = styleHeader
	case l.Disabled:
		st = styleDisabled
	case l.Selected:
		st = styleSelected
	case l.Expanded:
		st = styleExpanded
	}
	if l.Cursor && l.Focused {
		st = styleCursor.Inherit(st)
	}
	return st
}

// KeyEvent converts a Bubble Tea key message. The second result is false
// for keys with no key value.
func KeyEvent(msg tea.KeyMsg) (*key.Event, bool) {
	var mods key.Modifier
	if msg.Alt {
		mods = mods.With(key.ModAlt)
	}
	name, extra := keyName(msg)
	if name == "" {
		return nil, false
	}
	return key.NewEvent(name, mods.With(extra)), true
}

func keyName(msg tea.KeyMsg) (string, key.Modifier) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return "", key.ModNone
		}
		if msg.Runes[0] == ' ' {
			return key.Space, key.ModNone
		}
		return string(msg.Runes[0]), key.ModNone
	case tea.KeySpace:
		return key.Space, key.ModNone
	case tea.KeyUp:
		return key.ArrowUp, key.ModNone
	case tea.KeyDown:
		return key.ArrowDown, key.ModNone
	case tea.KeyLeft:
		return key.ArrowLeft, key.ModNone
	case tea.KeyRight:
		return key.ArrowRight, key.ModNone
	case tea.KeyShiftUp:
		return key.ArrowUp, key.ModShift
	case tea.KeyShiftDown:
		return key.ArrowDown, key.ModShift
	case tea.KeyShiftLeft:
		return key.ArrowLeft, key.ModShift
	case tea.KeyShiftRight:
		return key.ArrowRight, key.ModShift
	case tea.KeyCtrlUp:
		return key.ArrowUp, key.ModCtrl
	case tea.KeyCtrlDown:
		return key.ArrowDown, key.ModCtrl
	case tea.KeyCtrlLeft:
		return key.ArrowLeft, key.ModCtrl
	case tea.KeyCtrlRight:
		return key.ArrowRight, key.ModCtrl
	case tea.KeyCtrlShiftUp:
		return key.ArrowUp, key.ModCtrl | key.ModShift
	case tea.KeyCtrlShiftDown:
		return key.ArrowDown, key.ModCtrl | key.ModShift
	case tea.KeyHome:
		return key.Home, key.ModNone
	case tea.KeyEnd:
		return key.End, key.ModNone
	case tea.KeyShiftHome:
		return key.Home, key.ModShift
	case tea.KeyShiftEnd:
		return key.End, key.ModShift
	case tea.KeyCtrlHome:
		return key.Home, key.ModCtrl
	case tea.KeyCtrlEnd:
		return key.End, key.ModCtrl
	case tea.KeyCtrlShiftHome:
		return key.Home, key.ModCtrl | key.ModShift
	case tea.KeyCtrlShiftEnd:
		return key.End, key.ModCtrl | key.ModShift
	case tea.KeyPgUp:
		return key.PageUp, key.ModNone
	case tea.KeyPgDown:
		return key.PageDown, key.ModNone
	case tea.KeyEnter:
		return key.Enter, key.ModNone
	case tea.KeyTab:
		return key.Tab, key.ModNone
	case tea.KeyShiftTab:
		return key.Tab, key.ModShift
	case tea.KeyEsc:
		return key.Escape, key.ModNone
	case tea.KeyBackspace:
		return key.Backspace, key.ModNone
	case tea.KeyDelete:
		return key.Delete, key.ModNone
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return string(rune('a' + msg.Type - tea.KeyCtrlA)), key.ModCtrl
	}
	return "", key.ModNone
}
