package lcd

import (
	"testing"

	"github.com/atomicstack/lcdmenu/internal/display"
)

func TestPrintDropsOverflow(t *testing.T) {
	b := New(2, 4)
	b.SetCursor(2, 1)
	b.Print("abcdef")
	if got := b.Line(1); got != "  ab" {
		t.Fatalf("expected clipped write, got %q", got)
	}
	if got := b.Line(0); got != "    " {
		t.Fatalf("expected no wrap into row 0, got %q", got)
	}
}

func TestSetCursorClamps(t *testing.T) {
	b := New(2, 4)
	b.SetCursor(-3, 9)
	if col, row := b.Cursor(); col != 0 || row != 1 {
		t.Fatalf("expected (0,1), got (%d,%d)", col, row)
	}
	b.SetCursor(10, 0)
	if col, _ := b.Cursor(); col != 4 {
		t.Fatalf("expected column clamped to 4, got %d", col)
	}
	b.Write('x')
	if got := b.Line(0); got != "    " {
		t.Fatalf("expected write past the edge to be dropped, got %q", got)
	}
}

func TestGlyphRendering(t *testing.T) {
	b := New(1, 6)
	b.CreateChar(display.SlotUpArrow, display.UpArrow)
	b.CreateChar(display.SlotDownArrow+8, display.DownArrow)
	b.Write(display.GlyphRightArrow)
	b.Write(display.GlyphLeftArrow)
	b.Write(display.SlotUpArrow)
	b.Write(display.SlotDownArrow)
	b.Write(5)
	b.Write('A')
	if got := b.Line(0); got != "→←↑↓?A" {
		t.Fatalf("unexpected rendering %q", got)
	}
	if _, ok := b.Glyph(display.SlotDownArrow); !ok {
		t.Fatal("expected slot to be masked to 0-7")
	}
}

func TestClearCountsFramesAndHomes(t *testing.T) {
	b := New(2, 3)
	b.Print("abc")
	b.Clear()
	b.Clear()
	if b.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", b.Frames())
	}
	if col, row := b.Cursor(); col != 0 || row != 0 {
		t.Fatalf("expected cursor home, got (%d,%d)", col, row)
	}
	if got := b.String(); got != "   \n   \n" {
		t.Fatalf("expected blank buffer, got %q", got)
	}
}

func TestPanelFlags(t *testing.T) {
	b := New(0, 0)
	if rows, cols := b.Size(); rows != 1 || cols != 1 {
		t.Fatalf("expected minimum 1x1, got %dx%d", rows, cols)
	}
	if !b.Backlit() || !b.DisplayOn() || b.Blinking() {
		t.Fatal("expected backlight and display on, blink off")
	}
	b.SetBacklight(false)
	b.SetDisplay(false)
	b.SetBlink(true)
	if b.Backlit() || b.DisplayOn() || !b.Blinking() {
		t.Fatal("expected flags to follow setters")
	}
}

var _ display.Adapter = (*Buffer)(nil)
