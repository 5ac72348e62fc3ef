package engine

import (
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

func (e *Engine) enterSubMenu(item *menu.SubMenu) bool {
	if item.Table == nil {
		return false
	}
	e.stack = append(e.stack, snapshot{
		table:  e.table,
		top:    e.top,
		bottom: e.bottom,
		cursor: e.cursor,
	})
	from := e.table.Title
	e.table = item.Table
	e.resetPosition()
	events.Menu.SubMenu(from, e.table.Title, len(e.stack))
	e.Update()
	return true
}

func (e *Engine) leaveSubMenu() bool {
	if len(e.stack) == 0 {
		return false
	}
	last := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	from := e.table.Title
	e.table = last.table
	e.top = last.top
	e.bottom = last.bottom
	e.cursor = last.cursor
	e.normalize()
	events.Menu.Leave(from, e.table.Title, len(e.stack))
	e.Update()
	return true
}

// FocusPath walks path from the active table, opening a submenu at every
// index but the last and focusing the last. It stops at the first index that
// is hidden, out of range or not a submenu where one is needed, leaving the
// engine wherever the walk got to.
func (e *Engine) FocusPath(path []int) bool {
	if len(path) == 0 {
		return false
	}
	for i, index := range path {
		if !e.Focus(index) {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		sub, ok := e.Current().(*menu.SubMenu)
		if !ok || !e.enterSubMenu(sub) {
			return false
		}
	}
	return true
}
