package engine

import (
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Enter activates the focused item: it runs a command, flips a toggle,
// opens a submenu, or starts editing an input, list or progress item. It
// returns false when nothing happened.
func (e *Engine) Enter() bool {
	e.normalize()
	item := e.Current()
	if item == nil {
		return false
	}
	events.Menu.Enter(e.table.Title, item.Kind().String(), item.Label())
	switch it := item.(type) {
	case *menu.SubMenu:
		return e.enterSubMenu(it)
	case *menu.Command:
		it.Run()
		e.Update()
		return true
	case *menu.Toggle:
		it.Flip()
		e.Update()
		return true
	case *menu.Input, *menu.List, *menu.Progress:
		if e.editing {
			return false
		}
		e.beginEdit(item)
		return true
	}
	return false
}

func (e *Engine) beginEdit(item menu.Item) {
	e.editing = true
	e.charPicker = false
	switch it := item.(type) {
	case *menu.List:
		it.Save()
	case *menu.Progress:
		it.Save()
	case *menu.Input:
		e.blinker, _ = e.caretBounds(it)
	}
	events.Edit.Begin(e.table.Title, item.Kind().String(), item.Label())
	e.Update()
}

// Back leaves edit mode when editing, otherwise returns to the parent
// table. cancel rolls list and progress items back to the value they had
// when editing started; input edits are always kept. Back at the root while
// browsing is a no-op and returns false.
func (e *Engine) Back(cancel bool) bool {
	e.normalize()
	if !e.editing {
		return e.leaveSubMenu()
	}
	item := e.Current()
	e.editing = false
	e.charPicker = false
	switch it := item.(type) {
	case *menu.Input:
		e.Update()
		events.Edit.Commit(e.table.Title, it.Label(), it.Value())
		it.Commit()
	case *menu.List:
		if cancel {
			it.Restore()
		}
		e.finishEdit(it.Label(), it.Current(), cancel)
		it.Commit()
		e.Update()
	case *menu.Progress:
		if cancel {
			it.Restore()
		}
		e.finishEdit(it.Label(), it.Display(), cancel)
		it.Commit()
		e.Update()
	default:
		e.Update()
	}
	return true
}

func (e *Engine) finishEdit(label, value string, cancelled bool) {
	if cancelled {
		events.Edit.Cancel(e.table.Title, label, value)
		return
	}
	events.Edit.Commit(e.table.Title, label, value)
}

// MoveLeft steps the edited item backwards: previous list entry (wrapping),
// progress decrement (clamped), or caret one column left.
func (e *Engine) MoveLeft() bool {
	return e.horizontal(-1)
}

// MoveRight steps the edited item forwards: next list entry (wrapping),
// progress increment (clamped), or caret one column right.
func (e *Engine) MoveRight() bool {
	return e.horizontal(1)
}

func (e *Engine) horizontal(dir int) bool {
	e.normalize()
	if !e.editing || e.charPicker {
		return false
	}
	switch it := e.Current().(type) {
	case *menu.List:
		prev := it.Index()
		it.SetIndex(prev + dir)
		if it.Index() == prev {
			return false
		}
		e.Update()
		return true
	case *menu.Progress:
		prev := it.Value()
		if dir < 0 {
			it.Decrement()
		} else {
			it.Increment()
		}
		if it.Value() == prev {
			return false
		}
		e.Update()
		return true
	case *menu.Input:
		prev := e.blinker
		e.blinker += dir
		if e.updates {
			e.resetBlinker(it)
		} else {
			e.clampBlinker(it)
		}
		if e.blinker == prev {
			return false
		}
		events.Edit.Caret(e.table.Title, it.Label(), e.blinker)
		return true
	}
	return false
}

// Type inserts r at the caret of the input being edited and advances the
// caret.
func (e *Engine) Type(r rune) bool {
	e.normalize()
	in, ok := e.Current().(*menu.Input)
	if !ok || !e.editing {
		return false
	}
	lo, _ := e.caretBounds(in)
	value := []rune(in.Value())
	pos := clampInt(e.blinker-lo, 0, len(value))
	updated := make([]rune, 0, len(value)+1)
	updated = append(updated, value[:pos]...)
	updated = append(updated, r)
	updated = append(updated, value[pos:]...)
	in.SetValue(string(updated))
	e.charPicker = false
	e.blinker = lo + pos + 1
	events.Edit.Text(e.table.Title, in.Label(), in.Value(), e.blinker)
	e.Update()
	return true
}

// Backspace removes the character left of the caret.
func (e *Engine) Backspace() bool {
	e.normalize()
	in, ok := e.Current().(*menu.Input)
	if !ok || !e.editing {
		return false
	}
	lo, _ := e.caretBounds(in)
	value := []rune(in.Value())
	pos := clampInt(e.blinker-lo, 0, len(value))
	if pos == 0 {
		return false
	}
	updated := append(value[:pos-1:pos-1], value[pos:]...)
	in.SetValue(string(updated))
	e.blinker = lo + pos - 1
	events.Edit.Text(e.table.Title, in.Label(), in.Value(), e.blinker)
	e.Update()
	return true
}

// ClearValue empties the focused input and homes the caret.
func (e *Engine) ClearValue() bool {
	e.normalize()
	in, ok := e.Current().(*menu.Input)
	if !ok {
		return false
	}
	in.SetValue("")
	e.blinker, _ = e.caretBounds(in)
	events.Edit.Text(e.table.Title, in.Label(), "", e.blinker)
	e.Update()
	return true
}

// DrawChar previews r at the caret without changing the value. Until the
// next Type, left and right are ignored so a character picker can cycle
// candidates in place.
func (e *Engine) DrawChar(r rune) bool {
	e.normalize()
	in, ok := e.Current().(*menu.Input)
	if !ok || !e.editing {
		return false
	}
	if e.updates {
		e.lcd.SetCursor(e.blinker, e.cursorRow())
		e.lcd.Print(string(r))
		e.resetBlinker(in)
	}
	e.charPicker = true
	return true
}

// SetHidden changes an item's visibility and repairs the cursor and window
// if the change affects the active table.
func (e *Engine) SetHidden(item menu.Item, hidden bool) {
	if item == nil {
		return
	}
	item.SetHidden(hidden)
	events.Menu.Hidden(e.table.Title, item.Label(), hidden)
	e.normalize()
	e.Update()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
