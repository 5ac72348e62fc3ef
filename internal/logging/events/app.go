package events

import "github.com/atomicstack/lcdmenu/internal/logging"

type AppTracer struct{}

type ItemTracer struct{}

type KeyTracer struct{}

var (
	App  = AppTracer{}
	Item = ItemTracer{}
	Key  = KeyTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) MenuLoaded(source string, items int) {
	logging.Trace("app.menu", map[string]interface{}{"source": source, "items": items})
}

// Changed records a callback fired by a menu item.
func (ItemTracer) Changed(kind, label, value string) {
	logging.Trace("item.changed", map[string]interface{}{"kind": kind, "label": label, "value": value})
}

func (KeyTracer) Press(key string, handled bool) {
	logging.Trace("key.press", map[string]interface{}{"key": key, "handled": handled})
}
