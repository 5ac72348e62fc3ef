package menu

import "strconv"

const (
	DefaultOnText  = "On"
	DefaultOffText = "Off"

	DefaultProgressMin  = 0
	DefaultProgressMax  = 1000
	DefaultProgressStep = 1
)

// Command runs Action when entered.
type Command struct {
	base
	Action func()
}

func NewCommand(label string, action func()) *Command {
	return &Command{base: base{label: label}, Action: action}
}

func (*Command) Kind() Kind { return KindCommand }

// Run invokes the action if one is set.
func (c *Command) Run() {
	if c.Action != nil {
		c.Action()
	}
}

// Toggle flips a boolean on enter and reports the new state to Callback.
type Toggle struct {
	base
	on       bool
	OnText   string
	OffText  string
	Callback func(bool)
}

func NewToggle(label string, on bool, callback func(bool)) *Toggle {
	return &Toggle{
		base:     base{label: label},
		on:       on,
		OnText:   DefaultOnText,
		OffText:  DefaultOffText,
		Callback: callback,
	}
}

func (*Toggle) Kind() Kind { return KindToggle }

func (t *Toggle) On() bool      { return t.on }
func (t *Toggle) SetOn(on bool) { t.on = on }

// Text returns the suffix shown for the current state.
func (t *Toggle) Text() string {
	if t.on {
		return t.OnText
	}
	return t.OffText
}

// Flip inverts the state and fires the callback with the new value.
func (t *Toggle) Flip() bool {
	t.on = !t.on
	if t.Callback != nil {
		t.Callback(t.on)
	}
	return t.on
}

// Input holds free text edited in place by the engine.
type Input struct {
	base
	value    string
	Callback func(string)
}

func NewInput(label, value string, callback func(string)) *Input {
	return &Input{base: base{label: label}, value: value, Callback: callback}
}

func (*Input) Kind() Kind { return KindInput }

func (in *Input) Value() string         { return in.value }
func (in *Input) SetValue(value string) { in.value = value }

// Commit reports the current text to the callback.
func (in *Input) Commit() {
	if in.Callback != nil {
		in.Callback(in.value)
	}
}

// List cycles through a fixed set of entries.
type List struct {
	base
	entries  []string
	index    int
	saved    int
	OnChange func(int)
	Callback func(int)
}

func NewList(label string, entries []string, callback func(int)) *List {
	return &List{base: base{label: label}, entries: entries, Callback: callback}
}

func (*List) Kind() Kind { return KindList }

func (l *List) Index() int        { return l.index }
func (l *List) Count() int        { return len(l.entries) }
func (l *List) Entries() []string { return l.entries }

// Current returns the selected entry, or "" for an empty list.
func (l *List) Current() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[l.index]
}

// SetIndex selects entry i modulo the entry count; negative values wrap
// from the end. OnChange fires only when the selection moves.
func (l *List) SetIndex(i int) {
	n := len(l.entries)
	if n == 0 {
		l.index = 0
		return
	}
	i %= n
	if i < 0 {
		i += n
	}
	if i == l.index {
		return
	}
	l.index = i
	if l.OnChange != nil {
		l.OnChange(i)
	}
}

func (l *List) Save()    { l.saved = l.index }
func (l *List) Restore() { l.index = l.saved }

// Commit reports the selected index to the callback.
func (l *List) Commit() {
	if l.Callback != nil {
		l.Callback(l.index)
	}
}

// Progress is a bounded counter moved by Step and never wrapped. Min and Max
// may change after construction; Value always reports the stored value
// clamped to the current bounds.
type Progress struct {
	base
	value    int
	saved    int
	Min      int
	Max      int
	Step     int
	Mapping  func(int) string
	Callback func(int)
}

func NewProgress(label string, value int, callback func(int)) *Progress {
	p := &Progress{
		base:     base{label: label},
		Min:      DefaultProgressMin,
		Max:      DefaultProgressMax,
		Step:     DefaultProgressStep,
		Callback: callback,
	}
	p.value = p.clamp(value)
	p.saved = p.value
	return p
}

func (*Progress) Kind() Kind { return KindProgress }

func (p *Progress) Value() int { return p.clamp(p.value) }

// SetValue stores v clamped to [Min, Max].
func (p *Progress) SetValue(v int) { p.value = p.clamp(v) }

func (p *Progress) Increment() { p.value = p.clamp(p.Value() + p.step()) }
func (p *Progress) Decrement() { p.value = p.clamp(p.Value() - p.step()) }

func (p *Progress) Save()    { p.saved = p.Value() }
func (p *Progress) Restore() { p.value = p.saved }

// Display returns the mapped representation of the value.
func (p *Progress) Display() string {
	if p.Mapping != nil {
		return p.Mapping(p.Value())
	}
	return strconv.Itoa(p.Value())
}

// Commit reports the current value to the callback.
func (p *Progress) Commit() {
	if p.Callback != nil {
		p.Callback(p.Value())
	}
}

func (p *Progress) step() int {
	if p.Step <= 0 {
		return DefaultProgressStep
	}
	return p.Step
}

func (p *Progress) clamp(v int) int {
	if v > p.Max {
		v = p.Max
	}
	if v < p.Min {
		v = p.Min
	}
	return v
}

// SubMenu opens a nested table.
type SubMenu struct {
	base
	Table *Table
}

func NewSubMenu(label string, table *Table) *SubMenu {
	return &SubMenu{base: base{label: label}, Table: table}
}

func (*SubMenu) Kind() Kind { return KindSubMenu }
