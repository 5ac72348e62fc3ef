package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
)

const (
	pickFirst = ' '
	pickLast  = '~'
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	if key.String() == "ctrl+c" {
		events.Key.Press(key.String(), true)
		return tea.Quit
	}
	wasAsleep := m.engine.Asleep()
	var handled bool
	if m.engine.Editing() {
		handled = m.handleEditKey(key)
	} else {
		var quit bool
		handled, quit = m.handleBrowseKey(key)
		if quit {
			events.Key.Press(key.String(), true)
			return tea.Quit
		}
	}
	if !handled && wasAsleep {
		m.engine.Update()
		handled = true
	}
	events.Key.Press(key.String(), handled)
	if handled {
		m.note = ""
	}
	if m.host.QuitRequested() {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleBrowseKey(key tea.KeyMsg) (handled, quit bool) {
	switch key.String() {
	case "up", "k":
		return m.engine.MoveUp(), false
	case "down", "j":
		return m.engine.MoveDown(), false
	case "enter":
		return m.engine.Enter(), false
	case "esc":
		return m.engine.Back(false), false
	case "b":
		m.engine.SetBacklight(!m.engine.Backlight())
		return true, false
	case "h":
		if m.hidden {
			m.engine.Show()
		} else {
			m.engine.Hide()
		}
		m.hidden = !m.hidden
		return true, false
	case "ctrl+u":
		return m.engine.ClearValue(), false
	case "q":
		return true, true
	}
	return false, false
}

func (m *Model) handleEditKey(key tea.KeyMsg) bool {
	_, isInput := m.engine.Current().(*menu.Input)
	switch key.String() {
	case "esc":
		m.picking = false
		return m.engine.Back(false)
	case "ctrl+g":
		m.picking = false
		return m.engine.Back(true)
	case "enter":
		if m.picking {
			m.picking = false
			return m.engine.Type(m.pick)
		}
		return m.engine.Back(false)
	case "left":
		return m.engine.MoveLeft()
	case "right":
		return m.engine.MoveRight()
	case "up", "down":
		if !isInput {
			if key.String() == "up" {
				return m.engine.MoveRight()
			}
			return m.engine.MoveLeft()
		}
		return m.cyclePick(key.String() == "up")
	case "backspace":
		return m.engine.Backspace()
	case "ctrl+u":
		return m.engine.ClearValue()
	}
	if !isInput {
		return false
	}
	switch key.Type {
	case tea.KeySpace:
		m.picking = false
		return m.engine.Type(' ')
	case tea.KeyRunes:
		if key.Alt || len(key.Runes) == 0 {
			return false
		}
		typed := false
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				continue
			}
			if m.engine.Type(r) {
				typed = true
			}
		}
		if typed {
			m.picking = false
		}
		return typed
	}
	return false
}

// cyclePick steps the character picker through printable ASCII and previews
// the candidate at the caret. Enter types it.
func (m *Model) cyclePick(forward bool) bool {
	if !m.picking {
		m.picking = true
		m.pick = 'A'
	} else if forward {
		m.pick++
		if m.pick > pickLast {
			m.pick = pickFirst
		}
	} else {
		m.pick--
		if m.pick < pickFirst {
			m.pick = pickLast
		}
	}
	return m.engine.DrawChar(m.pick)
}
