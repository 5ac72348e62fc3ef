// Package display describes the command sink a character LCD exposes to the
// menu engine. Implementations are fire-and-forget: the engine never reads
// anything back.
package display

// Bitmap is a custom glyph: 8 rows, low 5 bits of each row used.
type Bitmap [8]byte

// Adapter is the capability set consumed by the engine.
type Adapter interface {
	Clear()
	SetCursor(col, row int)
	Print(text string)
	Write(glyph byte)
	CreateChar(slot byte, bitmap Bitmap)
	SetBlink(on bool)
	SetBacklight(on bool)
	SetDisplay(on bool)
}

// Glyph codes in the HD44780 ROM and the custom slots the engine claims.
const (
	GlyphRightArrow byte = 0x7E
	GlyphLeftArrow  byte = 0x7F

	SlotUpArrow   byte = 0
	SlotDownArrow byte = 1
)

var (
	UpArrow = Bitmap{
		0b00100,
		0b01110,
		0b10101,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
	}
	DownArrow = Bitmap{
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b00100,
		0b10101,
		0b01110,
		0b00100,
	}
)
