package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	browseHint = "↑↓ move  ⏎ enter  esc back  b light  h hide  q quit"
	editHint   = "←→ change  ↑↓ pick  ⏎/esc done  ^g cancel"
)

// View renders the display panel, the active table title and a status line.
func (m *Model) View() string {
	panel := m.panel()
	width := lipgloss.Width(panel)
	if m.width > 0 && m.width < width {
		width = m.width
	}

	title := m.engine.Table().Title
	if depth := m.engine.Depth(); depth > 0 {
		title += strings.Repeat(" ›", depth)
	}
	lines := []string{
		styles.Title.Render(fit(title, width)),
		panel,
		styles.Status.Render(fit(m.status(), width)),
	}
	hint := browseHint
	if m.engine.Editing() {
		hint = editHint
	}
	if m.height == 0 || m.height > lipgloss.Height(panel)+2 {
		lines = append(lines, styles.Hint.Render(fit(hint, width)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) panel() string {
	rows := m.display.Rows()
	if !m.display.DisplayOn() {
		for i, row := range rows {
			rows[i] = strings.Repeat(" ", len([]rune(row)))
		}
	} else if m.display.Blinking() {
		col, row := m.display.Cursor()
		if row >= 0 && row < len(rows) {
			rows[row] = m.withCaret(rows[row], col)
		}
	}
	style := styles.Panel
	if !m.display.Backlit() || !m.display.DisplayOn() {
		style = styles.PanelDark
	}
	return style.Render(strings.Join(rows, "\n"))
}

// withCaret replaces the cell at col with the blinking caret.
func (m *Model) withCaret(row string, col int) string {
	cells := []rune(row)
	if col < 0 || col >= len(cells) {
		return row
	}
	m.caret.SetChar(string(cells[col]))
	return string(cells[:col]) + m.caret.View() + string(cells[col+1:])
}

func (m *Model) status() string {
	if m.note != "" {
		return m.note
	}
	return m.host.Status()
}

// fit truncates s to width cells and pads it so every line of the view
// lines up with the panel.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	if ansi.StringWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), "…")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
