package controller

import (
	"courtside/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while the command input has
// focus. Enter submits, Esc blurs and clears, up/down walk the command
// history and everything else, tab completion included, goes to the
// textinput.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Submit):
		raw := m.CommandInput.Value()
		blurInput(m)
		if m.Interpreter == nil {
			return m, nil
		}
		return m, model.ExecuteCommandCmd(m.Interpreter, raw)

	case key.Matches(keyMsg, m.Keys.Esc):
		blurInput(m)
		return m, nil

	case key.Matches(keyMsg, m.Keys.HistoryPrev):
		history := m.State.CommandHistory()
		if m.HistoryIndex+1 < len(history) {
			m.HistoryIndex++
			m.CommandInput.SetValue(history[m.HistoryIndex])
			m.CommandInput.CursorEnd()
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.HistoryNext):
		history := m.State.CommandHistory()
		switch {
		case m.HistoryIndex > 0:
			m.HistoryIndex--
			m.CommandInput.SetValue(history[m.HistoryIndex])
			m.CommandInput.CursorEnd()
		case m.HistoryIndex == 0:
			m.HistoryIndex = -1
			m.CommandInput.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.CommandInput, cmd = m.CommandInput.Update(keyMsg)
	m.RefreshSuggestions()
	return m, cmd
}

func blurInput(m *model.Model) {
	m.CommandInput.Blur()
	m.CommandInput.Reset()
	m.HistoryIndex = -1
}
