// Package menuconf builds menu tables from YAML definitions.
package menuconf

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

//go:embed default.yaml
var defaultMenu []byte

// Event reports a committed item change or an executed command. Value is the
// display text of the new state; Number carries the toggle state (0/1), the
// list index or the progress value.
type Event struct {
	Kind   menu.Kind
	Label  string
	Action string
	Value  string
	Number int
}

// Handler receives every Event raised by a loaded menu.
type Handler func(Event)

type document struct {
	Title string    `yaml:"title"`
	Items []itemDef `yaml:"items"`
}

type itemDef struct {
	Type    string    `yaml:"type"`
	Label   string    `yaml:"label"`
	Action  string    `yaml:"action"`
	Hidden  bool      `yaml:"hidden"`
	On      bool      `yaml:"on"`
	OnText  string    `yaml:"on_text"`
	OffText string    `yaml:"off_text"`
	Value   yaml.Node `yaml:"value"`
	Entries []string  `yaml:"entries"`
	Index   int       `yaml:"index"`
	Min     *int      `yaml:"min"`
	Max     *int      `yaml:"max"`
	Step    int       `yaml:"step"`
	Format  string    `yaml:"format"`
	Title   string    `yaml:"title"`
	Items   []itemDef `yaml:"items"`
}

// Parse decodes a YAML menu definition. Unknown keys are rejected so typos
// surface at load time.
func Parse(data []byte, handler Handler) (*menu.Table, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("menu definition is empty")
		}
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if handler == nil {
		handler = func(Event) {}
	}
	b := builder{handler: handler}
	return b.table(doc.Title, doc.Items, "")
}

// Load reads and parses the definition at path.
func Load(path string, handler Handler) (*menu.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", path, err)
	}
	table, err := Parse(data, handler)
	if err != nil {
		return nil, fmt.Errorf("load menu %s: %w", path, err)
	}
	return table, nil
}

// Default parses the embedded demo menu.
func Default(handler Handler) (*menu.Table, error) {
	return Parse(defaultMenu, handler)
}

type builder struct {
	handler Handler
}

func (b builder) emit(ev Event) {
	events.Item.Changed(ev.Kind.String(), ev.Label, ev.Value)
	b.handler(ev)
}

func (b builder) table(title string, defs []itemDef, prefix string) (*menu.Table, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: no items", pathOrRoot(prefix))
	}
	items := make([]menu.Item, 0, len(defs))
	for i, def := range defs {
		path := def.Label
		if path == "" {
			path = "#" + strconv.Itoa(i+1)
		}
		if prefix != "" {
			path = prefix + ":" + path
		}
		item, err := b.item(def, path)
		if err != nil {
			return nil, err
		}
		item.SetHidden(def.Hidden)
		items = append(items, item)
	}
	return menu.NewTable(title, items...), nil
}

func (b builder) item(def itemDef, path string) (menu.Item, error) {
	if strings.TrimSpace(def.Label) == "" {
		return nil, fmt.Errorf("%s: label is required", path)
	}
	kind, ok := menu.ParseKind(strings.ToLower(strings.TrimSpace(def.Type)))
	if !ok {
		return nil, fmt.Errorf("%s: unknown item type %q", path, def.Type)
	}
	label, action := def.Label, def.Action

	switch kind {
	case menu.KindCommand:
		return menu.NewCommand(label, func() {
			b.emit(Event{Kind: kind, Label: label, Action: action})
		}), nil

	case menu.KindToggle:
		t := menu.NewToggle(label, def.On, nil)
		if def.OnText != "" {
			t.OnText = def.OnText
		}
		if def.OffText != "" {
			t.OffText = def.OffText
		}
		t.Callback = func(on bool) {
			n := 0
			if on {
				n = 1
			}
			b.emit(Event{Kind: kind, Label: label, Action: action, Value: t.Text(), Number: n})
		}
		return t, nil

	case menu.KindInput:
		value := ""
		if !def.Value.IsZero() {
			value = def.Value.Value
		}
		return menu.NewInput(label, value, func(v string) {
			b.emit(Event{Kind: kind, Label: label, Action: action, Value: v})
		}), nil

	case menu.KindList:
		if len(def.Entries) == 0 {
			return nil, fmt.Errorf("%s: list needs at least one entry", path)
		}
		if def.Index < 0 || def.Index >= len(def.Entries) {
			return nil, fmt.Errorf("%s: index %d outside 0..%d", path, def.Index, len(def.Entries)-1)
		}
		l := menu.NewList(label, def.Entries, nil)
		l.SetIndex(def.Index)
		l.Callback = func(i int) {
			b.emit(Event{Kind: kind, Label: label, Action: action, Value: l.Current(), Number: i})
		}
		return l, nil

	case menu.KindProgress:
		return b.progress(def, path)

	case menu.KindSubMenu:
		title := def.Title
		if title == "" {
			title = label
		}
		table, err := b.table(title, def.Items, path)
		if err != nil {
			return nil, err
		}
		return menu.NewSubMenu(label, table), nil
	}
	return nil, fmt.Errorf("%s: unsupported item type %q", path, def.Type)
}

func (b builder) progress(def itemDef, path string) (menu.Item, error) {
	value := 0
	if !def.Value.IsZero() {
		if err := def.Value.Decode(&value); err != nil {
			return nil, fmt.Errorf("%s: progress value: %w", path, err)
		}
	}
	p := menu.NewProgress(def.Label, value, nil)
	if def.Min != nil {
		p.Min = *def.Min
	}
	if def.Max != nil {
		p.Max = *def.Max
	}
	if p.Min > p.Max {
		return nil, fmt.Errorf("%s: min %d exceeds max %d", path, p.Min, p.Max)
	}
	if value < p.Min || value > p.Max {
		return nil, fmt.Errorf("%s: value %d outside %d..%d", path, value, p.Min, p.Max)
	}
	p.SetValue(value)
	p.Save()
	if def.Step < 0 {
		return nil, fmt.Errorf("%s: negative step %d", path, def.Step)
	}
	if def.Step > 0 {
		p.Step = def.Step
	}
	if def.Format != "" {
		if strings.Count(def.Format, "%d") != 1 {
			return nil, fmt.Errorf("%s: format %q needs exactly one %%d", path, def.Format)
		}
		format := def.Format
		p.Mapping = func(v int) string { return fmt.Sprintf(format, v) }
	}
	label, action := def.Label, def.Action
	p.Callback = func(v int) {
		b.emit(Event{Kind: menu.KindProgress, Label: label, Action: action, Value: p.Display(), Number: v})
	}
	return p, nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
