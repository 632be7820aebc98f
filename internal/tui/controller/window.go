package controller

import (
	"courtside/internal/tui/design"
	"courtside/internal/tui/model"
	"courtside/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg records the new terminal size and resizes the
// components that keep their own dimensions.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	m.CommandInput.Width = max(m.Width-design.InputStyle.GetHorizontalFrameSize()-len(m.CommandInput.Prompt)-1, 1)
	refreshLogViewport(m)
	return m, nil
}

// refreshLogViewport sizes the log overlay viewport and reloads its content
// when the activity log changed or the width moved.
func refreshLogViewport(m *model.Model) {
	width, height := view.LogOverlaySize(m.Width, m.Height)
	resized := m.LogViewport.Width != width || m.LogViewport.Height != height
	m.LogViewport.Width = width
	m.LogViewport.Height = height

	if !m.ActivityLogDirty && !resized && m.LogViewportLastWidth == width {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = width
	m.ActivityLogDirty = false
}
