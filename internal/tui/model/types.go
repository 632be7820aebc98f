package model

import (
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/internal/layout"
	"courtside/internal/terminal"
	"courtside/pkg/logging"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModePanelPicker
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModePanelPicker:
		return "PanelPicker"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	GameLogLimit        = 10
)

// TUIConfig carries everything the model needs from the application.
type TUIConfig struct {
	State            *terminal.State
	Layout           *layout.Controller
	Interpreter      *command.Interpreter
	Data             api.Backend
	FeedbackDuration time.Duration
	DebugMode        bool
	LogChannel       <-chan logging.LogEntry
}

// StatsKey identifies one stat line fetch.
type StatsKey struct {
	PlayerID int
	Window   terminal.StatWindow
}

// Model represents the state of the TUI application
type Model struct {
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	// Domain
	State       *terminal.State
	Layout      *layout.Controller
	Interpreter *command.Interpreter
	Data        api.Backend

	// Fetched data, keyed the same way the request cache keys it
	Players        []api.Player
	PlayersErr     error
	PlayersLoading bool
	Stats          map[StatsKey]api.StatLine
	StatsErr       map[StatsKey]error
	GameLogs       map[int][]api.GameLogEntry
	GameLogErr     map[int]error
	inflight       map[string]bool

	// Center panel picker
	PickerCursor   int
	PickerSelected []string

	// Command input
	CommandInput     textinput.Model
	HistoryIndex     int
	FeedbackDuration time.Duration

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// InputFocused reports whether keystrokes go to the command input.
func (m *Model) InputFocused() bool {
	return m.CommandInput.Focused()
}

// PlayerName returns the display name for id, falling back to "#id".
func (m *Model) PlayerName(id int) string {
	if p, ok := api.PlayerByID(m.Players, id); ok {
		return p.Name
	}
	return fmt.Sprintf("#%d", id)
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage removes the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
