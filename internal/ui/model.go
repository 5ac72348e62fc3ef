package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/lcd"
	"github.com/atomicstack/lcdmenu/internal/theme"
)

// TickInterval is how often the idle timer is polled.
const TickInterval = 100 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Host reports side effects of menu callbacks back to the model.
type Host interface {
	Status() string
	QuitRequested() bool
}

type nopHost struct{}

func (nopHost) Status() string      { return "" }
func (nopHost) QuitRequested() bool { return false }

type tickMsg time.Time

// Model implements the Bubble Tea model for the LCD simulator.
type Model struct {
	engine  *engine.Engine
	display *lcd.Buffer
	host    Host

	caret   cursor.Model
	picking bool
	pick    rune
	hidden  bool
	note    string
	width   int
	height  int

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps an engine already bound to display.
func NewModel(eng *engine.Engine, display *lcd.Buffer, host Host) *Model {
	if host == nil {
		host = nopHost{}
	}
	m := &Model{
		engine:  eng,
		display: display,
		host:    host,
		hidden:  !eng.Updating(),
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.CaretText != nil {
		c.TextStyle = styles.CaretText.Copy()
	}
	c.SetChar(" ")
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if cmd := m.caret.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return m, nil
	case 1:
		return m, cmds[0]
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	if m.engine.PollIdleTimer() {
		m.note = "display asleep"
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Engine exposes the wrapped engine.
func (m *Model) Engine() *engine.Engine {
	return m.engine
}
