package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/lcd"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

type stubHost struct {
	status string
	quit   bool
}

func (h *stubHost) Status() string      { return h.status }
func (h *stubHost) QuitRequested() bool { return h.quit }

type testMenu struct {
	light *menu.Toggle
	name  *menu.Input
	mode  *menu.List
	run   *menu.Command
}

func newHarness(t *testing.T, host Host, opts ...engine.Option) (*Harness, *testMenu) {
	t.Helper()
	tm := &testMenu{
		light: menu.NewToggle("Light", false, nil),
		name:  menu.NewInput("Name", "AB", nil),
		mode:  menu.NewList("Mode", []string{"Eco", "Normal", "Boost"}, nil),
		run:   menu.NewCommand("Run", nil),
	}
	root := menu.NewTable("Main", tm.run, tm.light, tm.name, tm.mode)
	eng := engine.New(engine.Config{Rows: 2, Cols: 16, Timeout: 5 * time.Second}, opts...)
	buf := lcd.New(2, 16)
	eng.Setup(buf, root)
	return NewHarness(NewModel(eng, buf, host)), tm
}

func TestBrowseKeysDriveEngine(t *testing.T) {
	h, tm := newHarness(t, nil)
	if !strings.Contains(h.View(), "→Run") {
		t.Fatalf("expected cursor on Run, view:\n%s", h.View())
	}
	h.Press("j", "enter")
	if !tm.light.On() {
		t.Fatal("expected enter to flip the toggle")
	}
	if !strings.Contains(h.View(), "→Light:On") {
		t.Fatalf("expected toggled row, view:\n%s", h.View())
	}
	h.Press("down", "down", "k")
	if got := h.Model().Engine().Cursor(); got != 2 {
		t.Fatalf("expected cursor 2, got %d", got)
	}
	if h.Quit() {
		t.Fatal("unexpected quit")
	}
}

func TestInputEditingTypesRunes(t *testing.T) {
	h, tm := newHarness(t, nil)
	h.Press("down", "down", "enter", "right", "X", "q")
	if got := tm.name.Value(); got != "AXqB" {
		t.Fatalf("expected AXqB, got %q", got)
	}
	if h.Quit() {
		t.Fatal("q while editing must type, not quit")
	}
	h.Press("backspace", "esc")
	if h.Model().Engine().Editing() {
		t.Fatal("expected esc to leave edit mode")
	}
	if got := tm.name.Value(); got != "AXB" {
		t.Fatalf("expected AXB after backspace, got %q", got)
	}
}

func TestCharacterPicker(t *testing.T) {
	h, tm := newHarness(t, nil)
	h.Press("down", "down", "enter", "up", "up")
	if got := h.Model().display.Rune(6, 1); got != 'B' {
		t.Fatalf("expected picker preview B at caret, got %q", got)
	}
	if tm.name.Value() != "AB" {
		t.Fatalf("preview must not change the value, got %q", tm.name.Value())
	}
	h.Press("down", "down", "enter")
	if got := tm.name.Value(); got != "@AB" {
		t.Fatalf("expected picked @ inserted, got %q", got)
	}
	if !h.Model().Engine().Editing() {
		t.Fatal("expected to stay in edit mode after picking")
	}
}

func TestListEditingWithArrowKeys(t *testing.T) {
	h, tm := newHarness(t, nil)
	h.Press("down", "down", "down", "enter", "up", "right")
	if tm.mode.Index() != 2 {
		t.Fatalf("expected index 2, got %d", tm.mode.Index())
	}
	h.Press("ctrl+g")
	if tm.mode.Index() != 0 {
		t.Fatalf("expected cancel to restore 0, got %d", tm.mode.Index())
	}
	h.Press("enter", "down", "enter")
	if tm.mode.Index() != 2 || h.Model().Engine().Editing() {
		t.Fatalf("expected committed wrap to 2, got %d", tm.mode.Index())
	}
}

func TestBacklightAndHideKeys(t *testing.T) {
	h, _ := newHarness(t, nil)
	h.Press("b")
	if h.Model().display.Backlit() {
		t.Fatal("expected backlight off")
	}
	h.Press("h")
	if strings.Contains(h.View(), "Run") {
		t.Fatalf("expected blank panel while hidden, view:\n%s", h.View())
	}
	h.Press("j", "h")
	if !strings.Contains(h.View(), "→Light") {
		t.Fatalf("expected navigation applied while hidden, view:\n%s", h.View())
	}
}

func TestQuitKeys(t *testing.T) {
	h, _ := newHarness(t, nil)
	h.Press("q")
	if !h.Quit() {
		t.Fatal("expected q to quit while browsing")
	}
	h, _ = newHarness(t, nil)
	h.Press("down", "down", "enter", "ctrl+c")
	if !h.Quit() {
		t.Fatal("expected ctrl+c to quit while editing")
	}
}

func TestHostStatusAndQuit(t *testing.T) {
	host := &stubHost{status: "Light: On"}
	h, _ := newHarness(t, host)
	if !strings.Contains(h.View(), "Light: On") {
		t.Fatalf("expected host status in view:\n%s", h.View())
	}
	host.quit = true
	h.Press("j")
	if !h.Quit() {
		t.Fatal("expected quit requested by host to end the program")
	}
}

func TestIdleTickSleepsAndKeyWakes(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h, _ := newHarness(t, nil, engine.WithClock(func() time.Time { return now }))

	h.Tick()
	if h.Model().Engine().Asleep() {
		t.Fatal("expected display awake before the timeout")
	}
	now = now.Add(5 * time.Second)
	h.Tick()
	if !h.Model().Engine().Asleep() {
		t.Fatal("expected display asleep after the timeout")
	}
	if !strings.Contains(h.View(), "display asleep") {
		t.Fatalf("expected sleep note, view:\n%s", h.View())
	}
	h.Press("k")
	if h.Model().Engine().Asleep() {
		t.Fatal("expected any key to wake the display")
	}
	if h.Model().Engine().Cursor() != 0 {
		t.Fatal("expected the waking key to leave the cursor alone")
	}
}

func TestViewFitsTitleAndHint(t *testing.T) {
	h, _ := newHarness(t, nil)
	h.Send(tea.WindowSizeMsg{Width: 12, Height: 10})
	lines := strings.Split(h.View(), "\n")
	if !strings.HasPrefix(lines[0], "Main") {
		t.Fatalf("expected title line, got %q", lines[0])
	}
	last := lines[len(lines)-1]
	if !strings.HasSuffix(last, "…") {
		t.Fatalf("expected hint truncated to the window, got %q", last)
	}
}
