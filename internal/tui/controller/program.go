package controller

import (
	"courtside/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the terminal.
func NewProgram(cfg model.TUIConfig) *tea.Program {
	m := model.InitializeModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
