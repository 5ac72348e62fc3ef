package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells, so wide runes line up.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, 0)
}

// FormatWidth is Format with every line truncated to maxWidth cells. Zero
// disables truncation.
func FormatWidth(rows [][]string, alignments []Alignment, maxWidth int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			last := c == len(row)-1
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", max(pad, 0)))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					b.WriteString(strings.Repeat(" ", max(pad, 0)))
				}
			}
		}
		line := b.String()
		if maxWidth > 0 {
			line = runewidth.Truncate(line, maxWidth, "...")
		}
		out[i] = line
	}
	return out
}
