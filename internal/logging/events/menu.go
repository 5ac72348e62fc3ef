package events

import (
	"time"

	"github.com/atomicstack/lcdmenu/internal/logging"
)

type MenuTracer struct{}

type EditTracer struct{}

type DisplayTracer struct{}

var (
	Menu    = MenuTracer{}
	Edit    = EditTracer{}
	Display = DisplayTracer{}
)

func (MenuTracer) Move(table, dir string, cursor, top, bottom int) {
	logging.Trace("menu.move", map[string]interface{}{
		"table":  table,
		"dir":    dir,
		"cursor": cursor,
		"top":    top,
		"bottom": bottom,
	})
}

func (MenuTracer) Enter(table, kind, label string) {
	logging.Trace("menu.enter", map[string]interface{}{"table": table, "kind": kind, "label": label})
}

func (MenuTracer) SubMenu(from, to string, depth int) {
	logging.Trace("menu.submenu", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (MenuTracer) Leave(from, to string, depth int) {
	logging.Trace("menu.leave", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (MenuTracer) Hidden(table, label string, hidden bool) {
	logging.Trace("menu.hidden", map[string]interface{}{"table": table, "label": label, "hidden": hidden})
}

func (EditTracer) Begin(table, kind, label string) {
	logging.Trace("edit.begin", map[string]interface{}{"table": table, "kind": kind, "label": label})
}

func (EditTracer) Commit(table, label, value string) {
	logging.Trace("edit.commit", map[string]interface{}{"table": table, "label": label, "value": value})
}

func (EditTracer) Cancel(table, label, value string) {
	logging.Trace("edit.cancel", map[string]interface{}{"table": table, "label": label, "value": value})
}

// Abort records edit mode ending because the edited item disappeared.
func (EditTracer) Abort(table string, cursor int) {
	logging.Trace("edit.abort", map[string]interface{}{"table": table, "cursor": cursor})
}

func (EditTracer) Text(table, label, value string, caret int) {
	logging.Trace("edit.text", map[string]interface{}{"table": table, "label": label, "value": value, "caret": caret})
}

func (EditTracer) Caret(table, label string, caret int) {
	logging.Trace("edit.caret", map[string]interface{}{"table": table, "label": label, "caret": caret})
}

func (DisplayTracer) Suspend() {
	logging.Trace("display.suspend", nil)
}

func (DisplayTracer) Resume() {
	logging.Trace("display.resume", nil)
}

func (DisplayTracer) Backlight(on bool) {
	logging.Trace("display.backlight", map[string]interface{}{"on": on})
}

func (DisplayTracer) Sleep(idle time.Duration) {
	logging.Trace("display.sleep", map[string]interface{}{"idle": idle.String()})
}
