package engine

import (
	"unicode/utf8"

	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Update repaints the whole menu and restarts the idle timer. It does
// nothing while updates are suspended.
func (e *Engine) Update() {
	if !e.updates {
		return
	}
	e.lcd.SetDisplay(true)
	e.lcd.SetBacklight(e.backlight)
	e.drawMenu()
	e.drawCursor()
	e.asleep = false
	e.lastActivity = e.now()
}

func (e *Engine) drawMenu() {
	e.lcd.Clear()
	vis := e.visible()
	if len(vis) == 0 {
		return
	}
	t := ordinal(vis, e.top)
	for row := 0; row < e.rows && t+row < len(vis); row++ {
		e.lcd.SetCursor(1, row)
		e.lcd.Print(e.line(e.table.Items[vis[t+row]]))
	}
	if e.editing || len(vis) <= e.rows {
		return
	}
	if t > 0 {
		e.lcd.SetCursor(e.cols-1, 0)
		e.lcd.Write(display.SlotUpArrow)
	}
	if t+e.rows < len(vis) {
		e.lcd.SetCursor(e.cols-1, e.rows-1)
		e.lcd.Write(display.SlotDownArrow)
	}
}

// line renders an item's label and its type-specific suffix. Values are
// clipped to the columns left after the label, the cursor column and the
// separator.
func (e *Engine) line(item menu.Item) string {
	label := item.Label()
	var value string
	switch it := item.(type) {
	case *menu.Toggle:
		return label + ":" + it.Text()
	case *menu.Input:
		value = it.Value()
	case *menu.Progress:
		value = it.Display()
	case *menu.List:
		value = it.Current()
	default:
		return label
	}
	return label + ":" + clip(value, e.cols-utf8.RuneCountInString(label)-2)
}

func (e *Engine) drawCursor() {
	for row := 0; row < e.rows; row++ {
		e.lcd.SetCursor(0, row)
		e.lcd.Print(" ")
	}
	if e.cursor < 0 {
		e.lcd.SetBlink(false)
		return
	}
	e.lcd.SetCursor(0, e.cursorRow())
	if e.editing {
		e.lcd.Write(e.editIcon)
	} else {
		e.lcd.Write(e.cursorIcon)
	}
	if in, ok := e.Current().(*menu.Input); ok {
		e.resetBlinker(in)
		if e.editing {
			e.lcd.SetBlink(true)
			return
		}
	}
	e.lcd.SetBlink(false)
}

// caretBounds returns the first and last columns the caret may occupy for
// in: from just after "label:" to the end of the value, never past the
// second-to-last column.
func (e *Engine) caretBounds(in *menu.Input) (lo, hi int) {
	lo = utf8.RuneCountInString(in.Label()) + 2
	hi = lo + utf8.RuneCountInString(in.Value())
	if hi > e.cols-2 {
		hi = e.cols - 2
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// resetBlinker clamps the caret into range and moves the display cursor to
// it.
func (e *Engine) resetBlinker(in *menu.Input) {
	e.clampBlinker(in)
	e.lcd.SetCursor(e.blinker, e.cursorRow())
}

func (e *Engine) clampBlinker(in *menu.Input) {
	lo, hi := e.caretBounds(in)
	e.blinker = clampInt(e.blinker, lo, hi)
}

// clip returns at most n characters of s; one display cell per character.
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
