package list

// Navigation moves the active item of a Focus.
type Navigation[T Item] struct {
	focus *Focus[T]
	wrap  func() bool
}

// NewNavigation creates a navigator over focus. A nil wrap accessor means
// no wrapping.
func NewNavigation[T Item](focus *Focus[T], wrap func() bool) *Navigation[T] {
	return &Navigation[T]{focus: focus, wrap: boolOr(wrap, false)}
}

// Goto focuses item.
func (n *Navigation[T]) Goto(item T) bool {
	return n.focus.Focus(item)
}

// First focuses the first focusable item.
func (n *Navigation[T]) First() bool {
	for _, it := range n.focus.Items() {
		if n.focus.IsFocusable(it) {
			return n.Goto(it)
		}
	}
	return false
}

// Last focuses the last focusable item.
func (n *Navigation[T]) Last() bool {
	items := n.focus.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if n.focus.IsFocusable(items[i]) {
			return n.Goto(items[i])
		}
	}
	return false
}

// Next focuses the next focusable item.
func (n *Navigation[T]) Next() bool {
	return n.advance(1)
}

// Prev focuses the previous focusable item.
func (n *Navigation[T]) Prev() bool {
	return n.advance(-1)
}

// advance scans at most one full cycle from the active index in the given
// direction and focuses the first focusable item it meets.
func (n *Navigation[T]) advance(delta int) bool {
	items := n.focus.Items()
	count := len(items)
	if count == 0 {
		return false
	}
	start := n.focus.ActiveIndex()
	wrap := n.wrap()

	// With nothing active, Prev starts from the end.
	origin := start
	if start < 0 && delta < 0 {
		origin = count
	}

	for step := 1; step <= count; step++ {
		i := origin + delta*step
		if wrap {
			i = wrapIndex(i, count)
		} else if i < 0 || i >= count {
			return false
		}
		if i == start {
			return false
		}
		if n.focus.IsFocusable(items[i]) {
			return n.Goto(items[i])
		}
	}
	return false
}

func wrapIndex(i, count int) int {
	return ((i % count) + count) % count
}
