// Package signal provides reactive state cells for the behavior engine.
//
// A Signal is a writable cell. A Computed is a memoized derivation that
// records which cells it read and recomputes only after one of them changed.
// Dependency tracking uses package-level state, so cells must be read and
// written from a single goroutine.
package signal

// source is anything a Computed can depend on.
type source interface {
	version() uint64
}

// dependency pairs a source with the version observed when it was read.
type dependency struct {
	src source
	ver uint64
}

// tracker collects the sources read while a Computed evaluates.
type tracker struct {
	deps []dependency
	seen map[source]struct{}
}

var trackers []*tracker

func track(s source, ver uint64) {
	if len(trackers) == 0 {
		return
	}
	t := trackers[len(trackers)-1]
	if _, ok := t.seen[s]; ok {
		return
	}
	t.seen[s] = struct{}{}
	t.deps = append(t.deps, dependency{src: s, ver: ver})
}

// Untracked runs fn without recording any reads against the enclosing
// Computed.
func Untracked[T any](fn func() T) T {
	saved := trackers
	trackers = nil
	defer func() { trackers = saved }()
	return fn()
}

// Signal is a writable reactive cell.
type Signal[T any] struct {
	value     T
	ver       uint64
	listeners []*listener[T]
}

type listener[T any] struct {
	fn func(T)
}

// New creates a signal holding v.
func New[T any](v T) *Signal[T] {
	return &Signal[T]{value: v}
}

// Get returns the current value and records the read when called inside a
// Computed.
func (s *Signal[T]) Get() T {
	track(s, s.ver)
	return s.value
}

// Peek returns the current value without recording a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores v and invalidates every Computed that read this signal.
func (s *Signal[T]) Set(v T) {
	s.value = v
	s.ver++
	for _, l := range s.listeners {
		l.fn(v)
	}
}

// Update replaces the value with fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	l := &listener[T]{fn: fn}
	s.listeners = append(s.listeners, l)
	return func() {
		for i, cur := range s.listeners {
			if cur == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Version returns a counter that increases on every Set.
func (s *Signal[T]) Version() uint64 {
	return s.ver
}

func (s *Signal[T]) version() uint64 {
	return s.ver
}

// Computed is a memoized derived value.
type Computed[T any] struct {
	fn    func() T
	value T
	valid bool
	deps  []dependency
	ver   uint64
	runs  int
}

// NewComputed creates a derived value. fn is not called until the first Get.
func NewComputed[T any](fn func() T) *Computed[T] {
	return &Computed[T]{fn: fn}
}

// Get returns the memoized value, recomputing it if any dependency changed.
func (c *Computed[T]) Get() T {
	c.refresh()
	track(c, c.ver)
	return c.value
}

// Runs returns how many times the derivation has been evaluated.
func (c *Computed[T]) Runs() int {
	return c.runs
}

// Invalidate forces the next Get to recompute.
func (c *Computed[T]) Invalidate() {
	c.valid = false
}

func (c *Computed[T]) version() uint64 {
	c.refresh()
	return c.ver
}

func (c *Computed[T]) stale() bool {
	if !c.valid {
		return true
	}
	for _, d := range c.deps {
		if d.src.version() != d.ver {
			return true
		}
	}
	return false
}

func (c *Computed[T]) refresh() {
	if !c.stale() {
		return
	}

	t := &tracker{seen: make(map[source]struct{})}
	trackers = append(trackers, t)
	defer func() { trackers = trackers[:len(trackers)-1] }()

	c.value = c.fn()
	c.deps = t.deps
	c.valid = true
	c.ver++
	c.runs++
}

// Static returns an accessor that always yields v. It records no
// dependencies, so derivations reading it never recompute because of it.
func Static[T any](v T) func() T {
	return func() T { return v }
}
