package engine

import "github.com/atomicstack/lcdmenu/internal/logging/events"

// MoveUp focuses the nearest visible item above the cursor. It returns false
// in edit mode or when nothing visible lies above.
func (e *Engine) MoveUp() bool {
	return e.move(-1)
}

// MoveDown focuses the nearest visible item below the cursor. It returns
// false in edit mode or when nothing visible lies below.
func (e *Engine) MoveDown() bool {
	return e.move(1)
}

func (e *Engine) move(dir int) bool {
	e.normalize()
	if e.editing || e.cursor < 0 {
		return false
	}
	var next int
	if dir < 0 {
		next = e.prevFocusable(e.cursor - 1)
	} else {
		next = e.nextFocusable(e.cursor + 1)
	}
	if next < 0 {
		return false
	}
	e.cursor = next
	e.syncWindow()
	events.Menu.Move(e.table.Title, direction(dir), e.cursor, e.top, e.bottom)
	e.Update()
	return true
}

// Focus moves the cursor to index and scrolls it into view. Hidden items
// and out-of-range indices are rejected, as is any move during edit mode.
func (e *Engine) Focus(index int) bool {
	e.normalize()
	if e.editing || !e.focusable(index) {
		return false
	}
	e.cursor = index
	e.syncWindow()
	events.Menu.Move(e.table.Title, "focus", e.cursor, e.top, e.bottom)
	e.Update()
	return true
}

func direction(dir int) string {
	if dir < 0 {
		return "up"
	}
	return "down"
}

func (e *Engine) focusable(i int) bool {
	item := e.table.At(i)
	return item != nil && !item.Hidden()
}

// nextFocusable returns the first visible index at or after from, or -1.
func (e *Engine) nextFocusable(from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < e.table.Len(); i++ {
		if e.focusable(i) {
			return i
		}
	}
	return -1
}

// prevFocusable returns the last visible index at or before from, or -1.
func (e *Engine) prevFocusable(from int) int {
	if from >= e.table.Len() {
		from = e.table.Len() - 1
	}
	for i := from; i >= 0; i-- {
		if e.focusable(i) {
			return i
		}
	}
	return -1
}

// visible lists the focusable indices of the active table in order.
func (e *Engine) visible() []int {
	out := make([]int, 0, e.table.Len())
	for i := 0; i < e.table.Len(); i++ {
		if e.focusable(i) {
			out = append(out, i)
		}
	}
	return out
}

// ordinal returns how many entries of vis lie strictly before index.
func ordinal(vis []int, index int) int {
	n := 0
	for _, v := range vis {
		if v >= index {
			break
		}
		n++
	}
	return n
}

func (e *Engine) resetPosition() {
	e.cursor = e.nextFocusable(0)
	e.top = e.cursor
	if e.top < 0 {
		e.top = 0
	}
	e.syncWindow()
}

// normalize re-establishes the cursor invariant after hidden flags changed
// underneath the engine. A cursor on a hidden item slides to the nearest
// visible item below, then above. Losing the focused item ends edit mode.
func (e *Engine) normalize() {
	if !e.focusable(e.cursor) {
		next := e.nextFocusable(e.cursor)
		if next < 0 {
			next = e.prevFocusable(e.cursor)
		}
		if e.editing {
			e.editing = false
			e.charPicker = false
			events.Edit.Abort(e.table.Title, e.cursor)
		}
		e.cursor = next
	}
	e.syncWindow()
}

// syncWindow keeps the cursor inside the window. The window is measured in
// rendered rows: it only moves when the cursor steps past its first or last
// row, and then by exactly one row regardless of hidden items in between.
func (e *Engine) syncWindow() {
	vis := e.visible()
	if len(vis) == 0 || e.cursor < 0 {
		e.cursor = -1
		e.top = 0
		e.bottom = -1
		return
	}
	c := ordinal(vis, e.cursor)
	t := ordinal(vis, e.top)
	if c < t {
		t = c
	}
	if c > t+e.rows-1 {
		t = c - e.rows + 1
	}
	maxTop := len(vis) - e.rows
	if maxTop < 0 {
		maxTop = 0
	}
	if t > maxTop {
		t = maxTop
	}
	if t < 0 {
		t = 0
	}
	last := t + e.rows
	if last > len(vis) {
		last = len(vis)
	}
	e.top = vis[t]
	e.bottom = vis[last-1]
}

// cursorRow returns the display row the cursor occupies.
func (e *Engine) cursorRow() int {
	if e.cursor < 0 {
		return 0
	}
	vis := e.visible()
	row := ordinal(vis, e.cursor) - ordinal(vis, e.top)
	if row < 0 {
		return 0
	}
	if row > e.rows-1 {
		return e.rows - 1
	}
	return row
}
