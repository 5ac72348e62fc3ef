// Package lcd is an in-memory character display. It implements
// display.Adapter so the engine can run without hardware, and keeps enough
// state (cursor, blink, backlight, frame count) for tests and the terminal
// front end to inspect.
package lcd

import (
	"strings"

	"github.com/atomicstack/lcdmenu/internal/display"
)

type cell struct {
	r     rune
	glyph bool
	code  byte
}

// Buffer is a rows x cols character grid.
type Buffer struct {
	rows, cols int
	cells      [][]cell
	col, row   int
	glyphs     map[byte]display.Bitmap
	blink      bool
	backlight  bool
	on         bool
	frames     int
}

// New allocates a blank display with the backlight and panel switched on.
func New(rows, cols int) *Buffer {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	b := &Buffer{
		rows:      rows,
		cols:      cols,
		glyphs:    make(map[byte]display.Bitmap),
		backlight: true,
		on:        true,
	}
	b.cells = make([][]cell, rows)
	for i := range b.cells {
		b.cells[i] = make([]cell, cols)
	}
	b.blank()
	return b
}

func (b *Buffer) blank() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = cell{r: ' '}
		}
	}
}

// Clear blanks the grid, homes the cursor and counts a frame.
func (b *Buffer) Clear() {
	b.blank()
	b.col, b.row = 0, 0
	b.frames++
}

// SetCursor moves the write position; out-of-range values are clamped.
func (b *Buffer) SetCursor(col, row int) {
	b.col = clamp(col, 0, b.cols)
	b.row = clamp(row, 0, b.rows-1)
}

// Print writes text at the cursor. Characters past the last column are
// dropped rather than wrapped.
func (b *Buffer) Print(text string) {
	for _, r := range text {
		b.put(cell{r: r})
	}
}

// Write places a raw glyph code at the cursor.
func (b *Buffer) Write(glyph byte) {
	b.put(cell{glyph: true, code: glyph})
}

func (b *Buffer) put(c cell) {
	if b.col < b.cols {
		b.cells[b.row][b.col] = c
	}
	b.col++
}

func (b *Buffer) CreateChar(slot byte, bitmap display.Bitmap) {
	b.glyphs[slot&0x07] = bitmap
}

func (b *Buffer) SetBlink(on bool)     { b.blink = on }
func (b *Buffer) SetBacklight(on bool) { b.backlight = on }
func (b *Buffer) SetDisplay(on bool)   { b.on = on }

func (b *Buffer) Blinking() bool  { return b.blink }
func (b *Buffer) Backlit() bool   { return b.backlight }
func (b *Buffer) DisplayOn() bool { return b.on }
func (b *Buffer) Frames() int     { return b.frames }
func (b *Buffer) Size() (rows, cols int) {
	return b.rows, b.cols
}

// Cursor returns the current write position.
func (b *Buffer) Cursor() (col, row int) {
	return b.col, b.row
}

// Glyph returns the bitmap uploaded to slot, if any.
func (b *Buffer) Glyph(slot byte) (display.Bitmap, bool) {
	bm, ok := b.glyphs[slot&0x07]
	return bm, ok
}

// Rune returns the printable form of the cell at (col, row).
func (b *Buffer) Rune(col, row int) rune {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return ' '
	}
	return b.render(b.cells[row][col])
}

// Rows returns each display line as text.
func (b *Buffer) Rows() []string {
	out := make([]string, b.rows)
	for r := range b.cells {
		var sb strings.Builder
		for _, c := range b.cells[r] {
			sb.WriteRune(b.render(c))
		}
		out[r] = sb.String()
	}
	return out
}

// Line returns a single row, or "" when out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	return b.Rows()[row]
}

func (b *Buffer) String() string {
	return strings.Join(b.Rows(), "\n") + "\n"
}

func (b *Buffer) render(c cell) rune {
	if !c.glyph {
		return c.r
	}
	switch {
	case c.code < 8:
		bm, ok := b.glyphs[c.code]
		if !ok {
			return '?'
		}
		switch bm {
		case display.UpArrow:
			return '↑'
		case display.DownArrow:
			return '↓'
		}
		return '?'
	case c.code == display.GlyphRightArrow:
		return '→'
	case c.code == display.GlyphLeftArrow:
		return '←'
	case c.code >= 0x20 && c.code < 0x7E:
		return rune(c.code)
	}
	return '?'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
