// Package script runs Lua interaction scenarios against a workbench.
//
// A scenario presses keys and clicks elements, then checks the result:
//
//	press("Down", "Shift+Down")
//	expect(active("fruits") == "cherry", "cursor moved")
//	expect(value("fruits")[2] == "cherry")
//	click("q2")
//	expect(state("widgets.faq.expanded.0") == "q2")
//
// Scenarios run in a sandboxed state: only the base, table, string and
// math libraries are open, and code cannot load files or other chunks.
//
// The functions available to scenarios are:
//
//	press(spec, ...)        handle each key spec in turn; returns the last handled flag
//	click(id [, mods])      primary press on an element, mods like "Shift" or "Ctrl+Shift"
//	focused()               id of the widget holding keyboard focus
//	active(widget)          id of the widget's active item, or nil
//	value(widget)           selected values as a table
//	expanded(widget)        expanded ids as a table
//	state(path)             snapshot path query converted to a Lua value, or nil
//	query(path)             snapshot path query as raw JSON, or nil
//	expect(cond [, msg])    record a failure when cond is false or nil
//	log(msg)                write msg to the scenario log
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/listkit/internal/input/key"
	"github.com/dshills/listkit/internal/logging"
	"github.com/dshills/listkit/internal/snapshot"
	"github.com/dshills/listkit/internal/workbench"
)

// DefaultTimeout bounds one scenario run.
const DefaultTimeout = 5 * time.Second

// Errors returned by scenario runs.
var (
	ErrUnknownWidget = workbench.ErrUnknownWidget
	ErrExpectation   = errors.New("expectation failed")
	ErrClosed        = errors.New("runner closed")
)

// Failure is one expect call whose condition did not hold.
type Failure struct {
	Line    int
	Message string
}

func (f Failure) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("line %d: %s", f.Line, f.Message)
	}
	return f.Message
}

// Runner executes scenarios against one workbench. It is not safe for
// concurrent use.
type Runner struct {
	L       *lua.LState
	wb      *workbench.Workbench
	log     *logging.Logger
	timeout time.Duration

	checks   int
	failures []Failure
	cause    error // Go error behind the last raised Lua error
	closed   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout bounds each run. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithLogger sets the logger used by log() and print().
func WithLogger(log *logging.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a sandboxed runner driving wb.
func New(wb *workbench.Workbench, opts ...Option) *Runner {
	r := &Runner{
		wb:      wb,
		log:     logging.Null(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent("script")

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	r.L = L
	r.sandbox()
	r.register()
	return r
}

// sandbox removes globals that reach outside the state.
func (r *Runner) sandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		r.L.SetGlobal(name, lua.LNil)
	}
	r.L.SetGlobal("print", r.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		msg := ""
		for i := 1; i <= n; i++ {
			if i > 1 {
				msg += "\t"
			}
			msg += L.ToStringMeta(L.Get(i)).String()
		}
		r.log.Info("%s", msg)
		return 0
	}))
}

func (r *Runner) register() {
	funcs := map[string]lua.LGFunction{
		"press":    r.luaPress,
		"click":    r.luaClick,
		"focused":  r.luaFocused,
		"active":   r.luaActive,
		"value":    r.luaValue,
		"expanded": r.luaExpanded,
		"state":    r.luaState,
		"query":    r.luaQuery,
		"expect":   r.luaExpect,
		"log":      r.luaLog,
	}
	for name, fn := range funcs {
		r.L.SetGlobal(name, r.L.NewFunction(fn))
	}
}

// Close releases the Lua state.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

// Checks returns how many expect calls ran.
func (r *Runner) Checks() int {
	return r.checks
}

// Failures returns the failed expectations, in order.
func (r *Runner) Failures() []Failure {
	return r.failures
}

// RunString executes code as a scenario named name.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	if r.closed {
		return ErrClosed
	}
	fn, err := r.L.LoadString(code)
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	return r.run(ctx, name, fn)
}

// RunFile executes the scenario at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario: %w", err)
	}
	return r.RunString(ctx, path, string(data))
}

func (r *Runner) run(ctx context.Context, name string, fn *lua.LFunction) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	before := len(r.failures)
	r.cause = nil
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("running %s: lua panic: %v", name, p)
		}
	}()

	r.L.Push(fn)
	defer r.L.SetTop(0)
	if callErr := r.L.PCall(0, lua.MultRet, nil); callErr != nil {
		if r.cause != nil {
			return fmt.Errorf("running %s: %w", name, errors.Join(r.cause, callErr))
		}
		return fmt.Errorf("running %s: %w", name, callErr)
	}

	if failed := len(r.failures) - before; failed > 0 {
		return fmt.Errorf("%s: %w: %d failed", name, ErrExpectation, failed)
	}
	r.log.Debug("%s: %d checks passed", name, r.checks)
	return nil
}

// raise records err as the cause and raises it in Lua.
func (r *Runner) raise(L *lua.LState, err error) int {
	r.cause = err
	L.RaiseError("%s", err.Error())
	return 0
}

func (r *Runner) widget(L *lua.LState) (workbench.State, bool) {
	w, err := r.wb.Widget(L.CheckString(1))
	if err != nil {
		r.raise(L, err)
		return workbench.State{}, false
	}
	return w.State(), true
}

func (r *Runner) luaPress(L *lua.LState) int {
	n := L.GetTop()
	if n == 0 {
		L.ArgError(1, "key spec expected")
		return 0
	}
	handled := false
	for i := 1; i <= n; i++ {
		ok, err := r.wb.Press(L.CheckString(i))
		if err != nil {
			return r.raise(L, err)
		}
		handled = ok
	}
	L.Push(lua.LBool(handled))
	return 1
}

func (r *Runner) luaClick(L *lua.LState) int {
	id := L.CheckString(1)
	mods := key.ParseModifiers(L.OptString(2, ""))
	handled, err := r.wb.Click(id, mods)
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LBool(handled))
	return 1
}

func (r *Runner) luaFocused(L *lua.LState) int {
	w, ok := r.wb.Focused()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(w.ID()))
	return 1
}

func (r *Runner) luaActive(L *lua.LState) int {
	st, ok := r.widget(L)
	if !ok {
		return 0
	}
	if st.ActiveIndex < 0 || st.ActiveIndex >= len(st.Items) {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(st.Items[st.ActiveIndex].ID))
	return 1
}

func (r *Runner) luaValue(L *lua.LState) int {
	st, ok := r.widget(L)
	if !ok {
		return 0
	}
	L.Push(stringTable(L, st.Value))
	return 1
}

func (r *Runner) luaExpanded(L *lua.LState) int {
	st, ok := r.widget(L)
	if !ok {
		return 0
	}
	L.Push(stringTable(L, st.Expanded))
	return 1
}

func (r *Runner) snapshot(L *lua.LState) ([]byte, bool) {
	doc, err := snapshot.Take(r.wb)
	if err != nil {
		r.raise(L, err)
		return nil, false
	}
	return doc, true
}

func (r *Runner) luaState(L *lua.LState) int {
	path := L.CheckString(1)
	doc, ok := r.snapshot(L)
	if !ok {
		return 0
	}
	L.Push(toLua(L, snapshot.Get(doc, path)))
	return 1
}

func (r *Runner) luaQuery(L *lua.LState) int {
	path := L.CheckString(1)
	doc, ok := r.snapshot(L)
	if !ok {
		return 0
	}
	raw, err := snapshot.Query(doc, path)
	if err != nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(raw))
	return 1
}

func (r *Runner) luaExpect(L *lua.LState) int {
	r.checks++
	if lua.LVAsBool(L.Get(1)) {
		L.Push(lua.LTrue)
		return 1
	}
	f := Failure{Message: L.OptString(2, "expectation failed")}
	if dbg, ok := L.GetStack(1); ok {
		if _, err := L.GetInfo("l", dbg, lua.LNil); err == nil {
			f.Line = dbg.CurrentLine
		}
	}
	r.failures = append(r.failures, f)
	r.log.Error("%s", f)
	L.Push(lua.LFalse)
	return 1
}

func (r *Runner) luaLog(L *lua.LState) int {
	r.log.Info("%s", L.CheckString(1))
	return 0
}

func stringTable(L *lua.LState, values []string) *lua.LTable {
	t := L.CreateTable(len(values), 0)
	for _, v := range values {
		t.Append(lua.LString(v))
	}
	return t
}

// toLua converts a query result into the matching Lua value.
func toLua(L *lua.LState, res gjson.Result) lua.LValue {
	switch res.Type {
	case gjson.String:
		return lua.LString(res.Str)
	case gjson.Number:
		return lua.LNumber(res.Num)
	case gjson.True:
		return lua.LTrue
	case gjson.False:
		return lua.LFalse
	case gjson.JSON:
		if res.IsArray() {
			arr := res.Array()
			t := L.CreateTable(len(arr), 0)
			for _, v := range arr {
				t.Append(toLua(L, v))
			}
			return t
		}
		t := L.CreateTable(0, 0)
		res.ForEach(func(k, v gjson.Result) bool {
			t.RawSetString(k.String(), toLua(L, v))
			return true
		})
		return t
	}
	return lua.LNil
}
