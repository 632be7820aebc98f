package controller

import (
	"courtside/internal/tui/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the entry point the AppModel delegates to.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler and
// keeps the log overlay in sync afterwards.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, "Received msg: %T", msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !m.InputFocused()) {
			return quit(m)
		}
		if m.InputFocused() {
			m, cmd = handleKeyMsgInputMode(m, msg)
		} else {
			m, cmd = handleKeyMsgGlobal(m, msg)
		}

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		}

	case model.CommandResultMsg:
		cmd = handleCommandResult(m, msg)

	case model.PlayersLoadedMsg:
		m.ApplyPlayers(msg)
		if msg.Err != nil {
			LogError(msg.Err, "Failed to load ranked players")
		} else if m.InputFocused() {
			m.RefreshSuggestions()
		}
		cmd = m.DataCmds()

	case model.StatsLoadedMsg:
		m.ApplyStats(msg)
		if msg.Err != nil {
			LogError(msg.Err, "Failed to load stats for %s (%s)", m.PlayerName(msg.Key.PlayerID), msg.Key.Window)
		}
		cmd = m.DataCmds()

	case model.GameLogLoadedMsg:
		m.ApplyGameLog(msg)
		if msg.Err != nil {
			LogError(msg.Err, "Failed to load game log for %s", m.PlayerName(msg.PlayerID))
		}
		cmd = m.DataCmds()

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
		cmd = model.ListenForLogEntriesCmd(m.LogChannel)

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
	}

	if m.CurrentAppMode == model.ModeLogOverlay && m.ActivityLogDirty {
		refreshLogViewport(m)
	}
	return m, cmd
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Saving layout and watchlist..."
	m.ClearStatusMessage()
	return m, tea.Quit
}

// handleCommandResult shows the interpreter's feedback and fetches whatever
// the command made visible.
func handleCommandResult(m *model.Model, msg model.CommandResultMsg) tea.Cmd {
	res := msg.Result
	if res.Feedback == "" {
		return m.DataCmds()
	}
	msgType := model.StatusBarSuccess
	if !res.OK() {
		msgType = model.StatusBarError
		LogDebug(m, "Command %q failed: %v", msg.Input, res.Err)
	}
	return tea.Batch(
		m.SetStatusMessage(res.Feedback, msgType, m.FeedbackDuration),
		m.DataCmds(),
	)
}
