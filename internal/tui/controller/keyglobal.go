package controller

import (
	"courtside/internal/command"
	"courtside/internal/layout"
	"courtside/internal/tui/model"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses while the command input is not
// focused: overlays first, then the dashboard shortcuts.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModePanelPicker:
		return handlePanelPickerKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help) || key.Matches(keyMsg, m.Keys.Esc) {
			m.CurrentAppMode = model.ModeMainDashboard
		}
		return m, nil
	case model.ModeQuitting:
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.FocusInput):
		m.CommandInput.Reset()
		m.HistoryIndex = -1
		m.RefreshSuggestions()
		return m, tea.Batch(m.CommandInput.Focus(), textinput.Blink)

	case key.Matches(keyMsg, m.Keys.ToggleLeft):
		m.Layout.ToggleLeft()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleRight):
		m.Layout.ToggleRight()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Watch):
		if keyMsg.Alt {
			return m, nil
		}
		return watchFocused(m)

	case key.Matches(keyMsg, m.Keys.Compare):
		if keyMsg.Alt {
			return m, nil
		}
		return compareFocused(m)

	case key.Matches(keyMsg, m.Keys.Unwatch):
		return unwatchFocused(m)

	case key.Matches(keyMsg, m.Keys.Uncompare):
		return uncompareFocused(m)

	case key.Matches(keyMsg, m.Keys.ClearFocus):
		if m.State.ClearFocusedPlayer() {
			return m, m.SetStatusMessage("Focus cleared", model.StatusBarInfo, m.FeedbackDuration)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.PanelPicker):
		m.OpenPanelPicker()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Refresh):
		LogInfo("Refreshing backend data")
		return m, tea.Batch(
			m.SetStatusMessage("Refreshing...", model.StatusBarInfo, m.FeedbackDuration),
			m.Refresh(),
		)

	case key.Matches(keyMsg, m.Keys.Preset):
		if p, ok := layout.PresetForKey(keyMsg.String()); ok {
			m.Layout.ApplyPreset(p)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ShrinkLeft):
		m.Layout.ShrinkLeft()
		return m, nil

	case key.Matches(keyMsg, m.Keys.GrowLeft):
		m.Layout.GrowLeft()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ShrinkRight):
		m.Layout.ShrinkRight()
		return m, nil

	case key.Matches(keyMsg, m.Keys.GrowRight):
		m.Layout.GrowRight()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		return copyWatchlist(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		refreshLogViewport(m)
		m.LogViewport.GotoBottom()
		return m, nil
	}

	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			LogError(err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, m.FeedbackDuration)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, m.FeedbackDuration)
	case key.Matches(keyMsg, m.Keys.ScrollTop):
		m.LogViewport.GotoTop()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ScrollBottom):
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.ScrollUp), key.Matches(keyMsg, m.Keys.ScrollDown):
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func watchFocused(m *model.Model) (*model.Model, tea.Cmd) {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return m, nil
	}
	name := m.PlayerName(id)
	added := m.State.AddToWatchlist(id)
	msgType := model.StatusBarInfo
	if added {
		msgType = model.StatusBarSuccess
		LogInfo("Added %s to watchlist", name)
	}
	return m, m.SetStatusMessage(command.WatchFeedback(name, added), msgType, m.FeedbackDuration)
}

func unwatchFocused(m *model.Model) (*model.Model, tea.Cmd) {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return m, nil
	}
	name := m.PlayerName(id)
	if !m.State.RemoveFromWatchlist(id) {
		return m, m.SetStatusMessage(name+" is not on the watchlist", model.StatusBarInfo, m.FeedbackDuration)
	}
	LogInfo("Removed %s from watchlist", name)
	return m, m.SetStatusMessage("Removed "+name+" from watchlist", model.StatusBarSuccess, m.FeedbackDuration)
}

func compareFocused(m *model.Model) (*model.Model, tea.Cmd) {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return m, nil
	}
	name := m.PlayerName(id)
	added := m.State.AddToComparison(id)
	feedback := command.CompareFeedback(m.State, id, name, added)
	switch {
	case added:
		return m, tea.Batch(
			m.SetStatusMessage(feedback, model.StatusBarSuccess, m.FeedbackDuration),
			m.DataCmds(),
		)
	case m.State.InComparison(id):
		return m, m.SetStatusMessage(feedback, model.StatusBarInfo, m.FeedbackDuration)
	default:
		return m, m.SetStatusMessage(feedback, model.StatusBarWarning, m.FeedbackDuration)
	}
}

func uncompareFocused(m *model.Model) (*model.Model, tea.Cmd) {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return m, nil
	}
	name := m.PlayerName(id)
	if !m.State.RemoveFromComparison(id) {
		return m, m.SetStatusMessage(name+" is not in comparison", model.StatusBarInfo, m.FeedbackDuration)
	}
	return m, m.SetStatusMessage("Removed "+name+" from comparison", model.StatusBarSuccess, m.FeedbackDuration)
}

func handlePanelPickerKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.PanelPicker), key.Matches(keyMsg, m.Keys.Esc):
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	case key.Matches(keyMsg, m.Keys.ScrollUp):
		m.MovePickerCursor(-1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ScrollDown):
		m.MovePickerCursor(1)
		return m, nil
	case key.Matches(keyMsg, m.Keys.PickToggle):
		m.TogglePickerItem()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Submit):
		if !m.ApplyPanelPicker() {
			return m, m.SetStatusMessage("Pick at least one panel", model.StatusBarWarning, m.FeedbackDuration)
		}
		return m, tea.Batch(
			m.SetStatusMessage(fmt.Sprintf("Center panels: %d selected", len(m.State.Layout().CenterPanels)), model.StatusBarSuccess, m.FeedbackDuration),
			m.DataCmds(),
		)
	}
	return m, nil
}

func copyWatchlist(m *model.Model) (*model.Model, tea.Cmd) {
	entries := m.State.Watchlist()
	if len(entries) == 0 {
		return m, m.SetStatusMessage("Watchlist is empty", model.StatusBarInfo, m.FeedbackDuration)
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = strconv.Itoa(e.ID)
	}
	if err := clipboardWriteAll(strings.Join(ids, ",")); err != nil {
		LogError(err, "Failed to copy watchlist")
		return m, m.SetStatusMessage("Copy watchlist failed", model.StatusBarError, m.FeedbackDuration)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Copied %d watchlist ids", len(ids)), model.StatusBarSuccess, m.FeedbackDuration)
}
