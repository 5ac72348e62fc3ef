package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/lcd"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/atomicstack/lcdmenu/internal/menuconf"
	"github.com/atomicstack/lcdmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Rows       int
	Cols       int
	Timeout    time.Duration
	MenuFile   string
	Focus      string
	CursorIcon int
	EditIcon   int
	List       bool
}

// Run bootstraps and executes the Bubble Tea program, or prints the menu
// tree and returns when cfg.List is set.
func Run(cfg Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg Config, out io.Writer) error {
	s, err := NewSession(cfg)
	if err != nil {
		return err
	}
	if cfg.List {
		for _, line := range menuconf.Dump(s.Root) {
			fmt.Fprintln(out, line)
		}
		return nil
	}
	program := tea.NewProgram(ui.NewModel(s.Engine, s.Display, s), tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Session is a loaded menu bound to an engine and a virtual display. It
// also turns item actions into engine side effects:
//
//	backlight      toggle drives the display backlight
//	timeout        progress sets the idle timeout in seconds
//	quit           command ends the program
//	show:<path>    toggle shows or hides the item at <path>
type Session struct {
	Engine  *engine.Engine
	Display *lcd.Buffer
	Root    *menu.Table
	Source  string

	registry *menu.Registry
	status   string
	quit     bool
}

// NewSession loads the configured menu and shows it.
func NewSession(cfg Config) (*Session, error) {
	s := &Session{}
	root, source, err := loadMenu(cfg.MenuFile, s.handle)
	if err != nil {
		return nil, err
	}
	s.Root = root
	s.Source = source
	s.registry = menu.BuildRegistry(root)
	s.Engine = engine.New(engine.Config{
		Rows:           cfg.Rows,
		Cols:           cfg.Cols,
		CursorIcon:     byte(cfg.CursorIcon),
		EditCursorIcon: byte(cfg.EditIcon),
		Timeout:        cfg.Timeout,
	})
	s.Display = lcd.New(s.Engine.Rows(), s.Engine.Cols())
	s.Engine.Setup(s.Display, root)
	events.App.MenuLoaded(source, root.Len())

	if strings.TrimSpace(cfg.Focus) != "" {
		node, ok := menuconf.Find(root, cfg.Focus)
		if !ok {
			return nil, fmt.Errorf("focus %q: no matching item", cfg.Focus)
		}
		if !s.Engine.FocusPath(node.Path) {
			return nil, fmt.Errorf("focus %q: %s is not reachable", cfg.Focus, node.ID)
		}
	}
	return s, nil
}

func loadMenu(path string, handler menuconf.Handler) (*menu.Table, string, error) {
	if path == "" {
		root, err := menuconf.Default(handler)
		if err != nil {
			return nil, "", fmt.Errorf("default menu: %w", err)
		}
		return root, "embedded", nil
	}
	root, err := menuconf.Load(path, handler)
	if err != nil {
		return nil, "", err
	}
	return root, path, nil
}

func (s *Session) handle(ev menuconf.Event) {
	switch ev.Kind {
	case menu.KindCommand:
		s.status = "ran " + ev.Label
	default:
		s.status = ev.Label + ": " + ev.Value
	}
	if s.Engine == nil {
		return
	}
	switch {
	case ev.Action == "backlight":
		s.Engine.SetBacklight(ev.Number != 0)
	case ev.Action == "timeout":
		s.Engine.SetTimeout(time.Duration(ev.Number) * time.Second)
	case ev.Action == "quit":
		s.quit = true
	case strings.HasPrefix(ev.Action, "show:"):
		id := strings.TrimPrefix(ev.Action, "show:")
		node, ok := s.registry.Find(id)
		if !ok {
			s.status = "unknown item " + id
			return
		}
		s.Engine.SetHidden(node.Item, ev.Number == 0)
	}
}

// Status returns a description of the last item event.
func (s *Session) Status() string {
	return s.status
}

// QuitRequested reports whether a quit action ran.
func (s *Session) QuitRequested() bool {
	return s.quit
}
