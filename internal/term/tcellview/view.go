// Package tcellview is the tcell front-end for a workbench: it turns
// terminal key and mouse events into key and pointer events, and draws
// the workbench layout one row per line.
package tcellview

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/input/mouse"
	"github.com/dshills/listkit/internal/logging"
	"github.com/dshills/listkit/internal/workbench"
)

// Reloader rebuilds the workbench, typically from its configuration file.
type Reloader func() (*workbench.Workbench, error)

type reloadRequest struct{}

type stopRequest struct{}

var (
	styleTitle    = tcell.StyleDefault.Bold(true).Reverse(true)
	styleHeader   = tcell.StyleDefault.Bold(true)
	styleStatus   = tcell.StyleDefault.Dim(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleExpanded = tcell.StyleDefault.Foreground(tcell.ColorBlue)
)

// View draws one workbench on a tcell screen.
type View struct {
	screen tcell.Screen
	wb     *workbench.Workbench
	log    *logging.Logger
	reload Reloader

	lines   []workbench.Line
	top     int
	buttons tcell.ButtonMask
	status  string
}

// New creates a view over an initialized screen.
func New(screen tcell.Screen, wb *workbench.Workbench, log *logging.Logger) *View {
	if log == nil {
		log = logging.Null()
	}
	return &View{
		screen: screen,
		wb:     wb,
		log:    log.WithComponent("tcell"),
	}
}

// SetReloader installs the function Reload calls.
func (v *View) SetReloader(r Reloader) {
	v.reload = r
}

// Workbench returns the workbench being shown.
func (v *View) Workbench() *workbench.Workbench {
	return v.wb
}

// Reload asks the event loop to rebuild the workbench. It is safe to call
// from any goroutine.
func (v *View) Reload() {
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{})) // queue full means a redraw is already pending
}

// Run draws the workbench and handles events until Ctrl+C, Ctrl+Q or ctx
// is done.
func (v *View) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(stopRequest{}))
		case <-done:
		}
	}()

	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := v.HandleEvent(ev); quit {
			return nil
		}
		v.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether the loop
// should stop.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyCtrlQ {
			return true
		}
		if ke, ok := KeyEvent(e); ok {
			handled := v.wb.HandleKey(ke)
			v.status = ke.String()
			if !handled {
				v.status += " (unhandled)"
			}
		}
	case *tcell.EventMouse:
		v.handleMouse(e)
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		switch e.Data().(type) {
		case stopRequest:
			return true
		case reloadRequest:
			v.doReload()
		}
	}
	return false
}

func (v *View) doReload() {
	if v.reload == nil {
		return
	}
	wb, err := v.reload()
	if err != nil {
		v.log.Error("reload: %v", err)
		v.status = "reload failed: " + err.Error()
		return
	}
	v.wb = wb
	v.top = 0
	v.status = "reloaded"
	v.log.Info("reloaded %s", wb.Title())
}

func (v *View) handleMouse(e *tcell.EventMouse) {
	b := e.Buttons()
	pressed := b&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
	v.buttons = b
	switch {
	case b&tcell.WheelUp != 0:
		v.scroll(-1)
		return
	case b&tcell.WheelDown != 0:
		v.scroll(1)
		return
	case !pressed:
		return
	}

	x, y := e.Position()
	i := v.top + y - 1
	if y < 1 || i < 0 || i >= len(v.lines) || v.lines[i].Target == nil {
		return
	}
	me := mouse.NewPress(v.lines[i].Target, Modifiers(e.Modifiers()))
	me.Position = mouse.Position{X: x, Y: y}
	v.wb.HandlePointer(me)
	v.status = "click " + v.lines[i].Target.ID()
}

func (v *View) scroll(delta int) {
	_, h := v.screen.Size()
	maxTop := len(v.lines) - (h - 2)
	v.top = max(0, min(v.top+delta, maxTop))
}

// Draw renders the title row, the workbench lines and a status row.
func (v *View) Draw() {
	w, h := v.screen.Size()
	v.screen.Clear()
	v.lines = v.wb.Layout(w)

	rows := h - 2
	v.follow(rows)

	fill(v.screen, 0, w, styleTitle)
	drawText(v.screen, 0, 0, w, " "+v.wb.Title(), styleTitle)
	for r := 0; r < rows && v.top+r < len(v.lines); r++ {
		l := v.lines[v.top+r]
		drawText(v.screen, 0, r+1, w, l.Text, lineStyle(l))
	}
	if h > 1 {
		drawText(v.screen, 0, h-1, w, v.statusText(), styleStatus)
	}
	v.screen.Show()
}

// follow scrolls so the focused cursor line is visible.
func (v *View) follow(rows int) {
	if rows <= 0 {
		return
	}
	for i, l := range v.lines {
		if !l.Cursor || !l.Focused {
			continue
		}
		if i < v.top {
			v.top = i
		} else if i >= v.top+rows {
			v.top = i - rows + 1
		}
		return
	}
}

func (v *View) statusText() string {
	s := "Tab/Shift+Tab: widget  Ctrl+C: quit"
	if fw, ok := v.wb.Focused(); ok {
		s = fw.ID() + "  " + s
	}
	if v.status != "" {
		s = v.status + "  |  " + s
	}
	return s
}

func lineStyle(l workbench.Line) tcell.Style {
	st := tcell.StyleDefault
	switch {
	case l.Kind == workbench.LineHeader:
		st = styleHeader.Underline(l.Focused)
	case l.Selected:
		st = styleSelected
	case l.Expanded:
		st = styleExpanded
	}
	if l.Disabled {
		st = st.Dim(true)
	}
	if l.Cursor && l.Focused {
		st = st.Reverse(true)
	}
	return st
}

func fill(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes text at (x, y) one grapheme cluster per cell run,
// stopping at width.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		cw := g.Width()
		if x+cw > width {
			return
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(cw, 1)
	}
}

// KeyEvent converts a tcell key event. The second result is false for keys
// with no key value.
func KeyEvent(e *tcell.EventKey) (*key.Event, bool) {
	mods := Modifiers(e.Modifiers())
	k := e.Key()
	var name string
	switch k {
	case tcell.KeyRune:
		r := e.Rune()
		if r == ' ' {
			name = key.Space
		} else {
			// Shift is already applied to the character.
			name = string(r)
			mods = mods.Without(key.ModShift)
		}
	case tcell.KeyUp:
		name = key.ArrowUp
	case tcell.KeyDown:
		name = key.ArrowDown
	case tcell.KeyLeft:
		name = key.ArrowLeft
	case tcell.KeyRight:
		name = key.ArrowRight
	case tcell.KeyHome:
		name = key.Home
	case tcell.KeyEnd:
		name = key.End
	case tcell.KeyPgUp:
		name = key.PageUp
	case tcell.KeyPgDn:
		name = key.PageDown
	case tcell.KeyEnter:
		name = key.Enter
	case tcell.KeyTab:
		name = key.Tab
	case tcell.KeyBacktab:
		name = key.Tab
		mods = mods.With(key.ModShift)
	case tcell.KeyEscape:
		name = key.Escape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name = key.Backspace
	case tcell.KeyDelete:
		name = key.Delete
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			name = string(rune('a' + k - tcell.KeyCtrlA))
			mods = mods.With(key.ModCtrl)
		} else if k == tcell.KeyCtrlSpace {
			name = key.Space
			mods = mods.With(key.ModCtrl)
		}
	}
	if name == "" {
		return nil, false
	}
	return key.NewEvent(name, mods), true
}

// Modifiers converts a tcell modifier mask.
func Modifiers(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
