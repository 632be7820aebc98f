package model

import (
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/internal/layout"
	"courtside/internal/terminal"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InitializeModel constructs the model from cfg with sensible defaults.
func InitializeModel(cfg TUIConfig) *Model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.Placeholder = "window l10 · layout chart · compare <name> · focus <name> · clear"
	ti.CharLimit = 120
	ti.ShowSuggestions = true

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	feedback := cfg.FeedbackDuration
	if feedback <= 0 {
		feedback = command.FeedbackDuration
	}

	state := cfg.State
	if state == nil {
		state = terminal.New()
	}

	ctrl := cfg.Layout
	if ctrl == nil {
		ctrl = layout.NewController(state, layout.DefaultStep)
	}

	return &Model{
		CurrentAppMode:   ModeMainDashboard,
		LastAppMode:      ModeMainDashboard,
		DebugMode:        cfg.DebugMode,
		State:            state,
		Layout:           ctrl,
		Interpreter:      cfg.Interpreter,
		Data:             cfg.Data,
		Stats:            make(map[StatsKey]api.StatLine),
		StatsErr:         make(map[StatsKey]error),
		GameLogs:         make(map[int][]api.GameLogEntry),
		GameLogErr:       make(map[int]error),
		inflight:         make(map[string]bool),
		CommandInput:     ti,
		HistoryIndex:     -1,
		FeedbackDuration: feedback,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       cfg.LogChannel,
	}
}

// Init starts the spinner, the log listener and the first data fetches.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
		m.DataCmds(),
	)
}
