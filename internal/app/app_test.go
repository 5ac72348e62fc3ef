package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/lcdmenu/internal/menu"
	"github.com/atomicstack/lcdmenu/internal/testutil"
)

func newSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Rows == 0 {
		cfg.Rows = 4
	}
	if cfg.Cols == 0 {
		cfg.Cols = 20
	}
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestNewSessionShowsDefaultMenu(t *testing.T) {
	s := newSession(t, Config{})
	if s.Source != "embedded" {
		t.Fatalf("expected embedded source, got %q", s.Source)
	}
	if got := strings.TrimRight(s.Display.Line(0), " "); got != "→Start" {
		t.Fatalf("expected Start focused, got %q", got)
	}
}

func TestFocusOpensSubmenu(t *testing.T) {
	s := newSession(t, Config{Focus: "sleep"})
	if s.Engine.Table().Title != "Setup" || s.Engine.Cursor() != 0 {
		t.Fatalf("expected Sleep focused in Setup, got %q cursor %d", s.Engine.Table().Title, s.Engine.Cursor())
	}
	if _, err := NewSession(Config{Rows: 4, Cols: 20, Focus: "xyzzy"}); err == nil {
		t.Fatal("expected error for unmatched focus")
	}
}

func TestBacklightAction(t *testing.T) {
	s := newSession(t, Config{Focus: "Light"})
	s.Engine.Enter()
	if s.Display.Backlit() || s.Engine.Backlight() {
		t.Fatal("expected backlight switched off by the Light toggle")
	}
	if s.Status() != "Light: Off" {
		t.Fatalf("unexpected status %q", s.Status())
	}
}

func TestTimeoutAction(t *testing.T) {
	s := newSession(t, Config{Focus: "Setup:Sleep", Timeout: time.Minute})
	s.Engine.Enter()
	s.Engine.MoveRight()
	s.Engine.Back(false)
	if got := s.Engine.Timeout(); got != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %v", got)
	}
	if s.Status() != "Sleep: 15s" {
		t.Fatalf("unexpected status %q", s.Status())
	}
}

func TestShowActionRevealsItem(t *testing.T) {
	s := newSession(t, Config{Focus: "Setup:About:Service"})
	service, ok := s.registry.Find("Setup:Service")
	if !ok || !service.Item.Hidden() {
		t.Fatal("expected Setup:Service to start hidden")
	}
	s.Engine.Enter()
	if service.Item.Hidden() {
		t.Fatal("expected toggle to reveal Setup:Service")
	}
	s.Engine.Enter()
	if !service.Item.Hidden() {
		t.Fatal("expected toggle to hide Setup:Service again")
	}
}

func TestQuitAction(t *testing.T) {
	s := newSession(t, Config{Focus: "Quit"})
	if s.QuitRequested() {
		t.Fatal("unexpected quit before the command ran")
	}
	s.Engine.Enter()
	if !s.QuitRequested() || s.Status() != "ran Quit" {
		t.Fatalf("expected quit request, status %q", s.Status())
	}
	if _, ok := s.Engine.Current().(*menu.Command); !ok {
		t.Fatal("expected cursor to stay on the command")
	}
}

func TestRunListPrintsTree(t *testing.T) {
	var out bytes.Buffer
	if err := run(Config{Rows: 4, Cols: 20, List: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	testutil.AssertGolden(t, "menuconf_default.golden", out.String())
}

func TestMissingMenuFile(t *testing.T) {
	_, err := NewSession(Config{Rows: 4, Cols: 20, MenuFile: filepath.Join(t.TempDir(), "none.yaml")})
	if err == nil || !strings.Contains(err.Error(), "read menu") {
		t.Fatalf("expected read error, got %v", err)
	}
}
