package model

import (
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/pkg/logging"
)

// ClearStatusBarMsg expires the current status bar message.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// PlayersLoadedMsg delivers the ranked player list.
type PlayersLoadedMsg struct {
	Players []api.Player
	Err     error
}

// StatsLoadedMsg delivers one player's stat line for a window.
type StatsLoadedMsg struct {
	Key   StatsKey
	Stats api.StatLine
	Err   error
}

// GameLogLoadedMsg delivers a player's recent games.
type GameLogLoadedMsg struct {
	PlayerID int
	Entries  []api.GameLogEntry
	Err      error
}

// CommandResultMsg delivers the outcome of a submitted command line.
type CommandResultMsg struct {
	Input  string
	Result command.Result
}
