// Package engine drives a hierarchical menu on a fixed rows x cols
// character display.
//
// The Engine owns all navigation state: the active table, the cursor, the
// scroll window, edit mode and the free-text caret. Callers feed it discrete
// events (MoveUp, MoveDown, Enter, Back, MoveLeft, MoveRight, Type, Backspace)
// from a single goroutine; every event runs to completion and, unless updates
// are suspended, repaints through the display.Adapter it was bound to.
//
// Invariants maintained after every event:
//   - the cursor indexes a visible item of the active table, or is -1 when the
//     table has none;
//   - top <= cursor <= bottom, and the window never renders more items than
//     the display has rows;
//   - entering a submenu and backing out restores top, bottom and cursor.
package engine

import (
	"time"

	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

// DefaultTimeout matches the idle period of common LCD menu firmware.
const DefaultTimeout = 10 * time.Second

// Config carries the display geometry and presentation choices. Zero icons
// select the HD44780 arrows; a zero Timeout disables the idle timer.
type Config struct {
	Rows           int
	Cols           int
	CursorIcon     byte
	EditCursorIcon byte
	Timeout        time.Duration
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithClock replaces time.Now for the idle timer.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

type snapshot struct {
	table  *menu.Table
	top    int
	bottom int
	cursor int
}

// Engine is the menu state machine.
type Engine struct {
	rows       int
	cols       int
	cursorIcon byte
	editIcon   byte
	timeout    time.Duration
	now        func() time.Time

	lcd   display.Adapter
	table *menu.Table
	stack []snapshot

	cursor     int
	top        int
	bottom     int
	editing    bool
	charPicker bool
	blinker    int

	updates      bool
	backlight    bool
	asleep       bool
	lastActivity time.Time
}

// New returns an engine that is not yet bound to a display.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		rows:       cfg.Rows,
		cols:       cfg.Cols,
		cursorIcon: cfg.CursorIcon,
		editIcon:   cfg.EditCursorIcon,
		timeout:    cfg.Timeout,
		now:        time.Now,
		lcd:        nopAdapter{},
		table:      menu.NewTable(""),
		cursor:     -1,
		bottom:     -1,
		updates:    true,
		backlight:  true,
	}
	if e.rows < 1 {
		e.rows = 1
	}
	if e.cols < 1 {
		e.cols = 1
	}
	if e.cursorIcon == 0 {
		e.cursorIcon = display.GlyphRightArrow
	}
	if e.editIcon == 0 {
		e.editIcon = display.GlyphLeftArrow
	}
	if e.timeout < 0 {
		e.timeout = 0
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Setup binds the engine to a display, uploads the scroll arrow glyphs and
// shows root.
func (e *Engine) Setup(d display.Adapter, root *menu.Table) {
	if d == nil {
		d = nopAdapter{}
	}
	if root == nil {
		root = menu.NewTable("")
	}
	e.lcd = d
	e.lcd.Clear()
	e.lcd.CreateChar(display.SlotUpArrow, display.UpArrow)
	e.lcd.CreateChar(display.SlotDownArrow, display.DownArrow)
	e.table = root
	e.stack = nil
	e.editing = false
	e.charPicker = false
	e.resetPosition()
	e.lastActivity = e.now()
	e.Update()
}

// Rows returns the configured row count.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the configured column count.
func (e *Engine) Cols() int { return e.cols }

// Cursor returns the index of the focused item, or -1.
func (e *Engine) Cursor() int { return e.cursor }

// Window returns the indices of the first and last rendered items. The
// window holds at most Rows visible items; hidden items between top and
// bottom are skipped when drawing, so bottom-top+1 may exceed Rows.
func (e *Engine) Window() (top, bottom int) { return e.top, e.bottom }

// Editing reports whether edit mode is active.
func (e *Engine) Editing() bool { return e.editing }

// Blinker returns the caret column used while editing an input.
func (e *Engine) Blinker() int { return e.blinker }

// Table returns the active table.
func (e *Engine) Table() *menu.Table { return e.table }

// Depth returns how many submenus deep the active table is.
func (e *Engine) Depth() int { return len(e.stack) }

// IsSubMenu reports whether Back would return to a parent table.
func (e *Engine) IsSubMenu() bool { return len(e.stack) > 0 }

// Current returns the focused item, or nil when nothing is focusable.
func (e *Engine) Current() menu.Item {
	return e.table.At(e.cursor)
}

// Backlight reports the stored backlight state.
func (e *Engine) Backlight() bool { return e.backlight }

// Asleep reports whether the idle timer switched the display off.
func (e *Engine) Asleep() bool { return e.asleep }

// Updating reports whether repaints are enabled.
func (e *Engine) Updating() bool { return e.updates }

// Hide suspends repainting and clears the display so the caller can draw
// unrelated content. Engine events still mutate state while hidden.
func (e *Engine) Hide() {
	e.updates = false
	e.lcd.Clear()
	events.Display.Suspend()
}

// Show resumes repainting and draws the menu.
func (e *Engine) Show() {
	e.updates = true
	events.Display.Resume()
	e.Update()
}

// SetBacklight stores the backlight state and repaints.
func (e *Engine) SetBacklight(on bool) {
	e.backlight = on
	events.Display.Backlight(on)
	e.Update()
}

// SetCursorIcon replaces the glyph codes used for the browsing and edit
// cursors.
func (e *Engine) SetCursorIcon(normal, edit byte) {
	e.cursorIcon = normal
	e.editIcon = edit
	if e.updates {
		e.drawCursor()
	}
}

// SetTimeout changes the idle period. Zero disables the timer.
func (e *Engine) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	e.timeout = d
}

// Timeout returns the idle period.
func (e *Engine) Timeout() time.Duration { return e.timeout }

// PollIdleTimer switches the display and backlight off once the idle period
// has elapsed since the last repaint. It fires once; the next repaint wakes
// the display.
func (e *Engine) PollIdleTimer() bool {
	if e.timeout <= 0 || e.asleep {
		return false
	}
	idle := e.now().Sub(e.lastActivity)
	if idle < e.timeout {
		return false
	}
	e.asleep = true
	e.lcd.SetDisplay(false)
	e.lcd.SetBacklight(false)
	events.Display.Sleep(idle)
	return true
}

type nopAdapter struct{}

func (nopAdapter) Clear()                          {}
func (nopAdapter) SetCursor(int, int)              {}
func (nopAdapter) Print(string)                    {}
func (nopAdapter) Write(byte)                      {}
func (nopAdapter) CreateChar(byte, display.Bitmap) {}
func (nopAdapter) SetBlink(bool)                   {}
func (nopAdapter) SetBacklight(bool)               {}
func (nopAdapter) SetDisplay(bool)                 {}
