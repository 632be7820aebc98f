package model

import (
	"context"
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/pkg/logging"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchPlayersCmd loads the ranked player list.
func FetchPlayersCmd(data api.Backend) tea.Cmd {
	return func() tea.Msg {
		players, err := data.RankedPlayers(context.Background())
		return PlayersLoadedMsg{Players: players, Err: err}
	}
}

// FetchStatsCmd loads the stat line for key.
func FetchStatsCmd(data api.Backend, key StatsKey) tea.Cmd {
	return func() tea.Msg {
		stats, err := data.PlayerStats(context.Background(), key.PlayerID, key.Window)
		return StatsLoadedMsg{Key: key, Stats: stats, Err: err}
	}
}

// FetchGameLogCmd loads the most recent games for id.
func FetchGameLogCmd(data api.Backend, id int) tea.Cmd {
	return func() tea.Msg {
		entries, err := data.GameLog(context.Background(), id, GameLogLimit)
		return GameLogLoadedMsg{PlayerID: id, Entries: entries, Err: err}
	}
}

// ExecuteCommandCmd runs raw through the interpreter off the event loop, since
// name lookups may reach the backend.
func ExecuteCommandCmd(interp *command.Interpreter, raw string) tea.Cmd {
	return func() tea.Msg {
		return CommandResultMsg{Input: raw, Result: interp.Execute(context.Background(), raw)}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed so the listen loop ends.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

func statsFetchKey(key StatsKey) string {
	return fmt.Sprintf("stats/%d/%s", key.PlayerID, key.Window)
}

func gameLogFetchKey(id int) string {
	return fmt.Sprintf("gamelog/%d", id)
}

// DataCmds returns fetches for whatever the visible panels need and the
// model does not hold yet: the ranked list, stats for the focused player
// and every compared player under the current window, and the focused
// player's game log. Requests already in flight are not repeated.
func (m *Model) DataCmds() tea.Cmd {
	if m.Data == nil {
		return nil
	}
	var cmds []tea.Cmd

	if m.Players == nil && m.PlayersErr == nil && !m.inflight["rankings"] {
		m.inflight["rankings"] = true
		m.PlayersLoading = true
		cmds = append(cmds, FetchPlayersCmd(m.Data))
	}

	window := m.State.StatWindow()
	ids := m.State.Comparison()
	if id, ok := m.State.FocusedPlayer(); ok {
		ids = append([]int{id}, ids...)

		if _, have := m.GameLogs[id]; !have && m.GameLogErr[id] == nil && !m.inflight[gameLogFetchKey(id)] {
			m.inflight[gameLogFetchKey(id)] = true
			cmds = append(cmds, FetchGameLogCmd(m.Data, id))
		}
	}

	for _, id := range ids {
		key := StatsKey{PlayerID: id, Window: window}
		if _, have := m.Stats[key]; have || m.StatsErr[key] != nil || m.inflight[statsFetchKey(key)] {
			continue
		}
		m.inflight[statsFetchKey(key)] = true
		cmds = append(cmds, FetchStatsCmd(m.Data, key))
	}

	return tea.Batch(cmds...)
}

// ApplyPlayers stores a rankings result.
func (m *Model) ApplyPlayers(msg PlayersLoadedMsg) {
	delete(m.inflight, "rankings")
	m.PlayersLoading = false
	if msg.Err != nil {
		m.PlayersErr = msg.Err
		return
	}
	m.Players = msg.Players
	m.PlayersErr = nil
	if m.Players == nil {
		m.Players = []api.Player{}
	}
}

// ApplyStats stores a stat line result.
func (m *Model) ApplyStats(msg StatsLoadedMsg) {
	delete(m.inflight, statsFetchKey(msg.Key))
	if msg.Err != nil {
		m.StatsErr[msg.Key] = msg.Err
		return
	}
	delete(m.StatsErr, msg.Key)
	m.Stats[msg.Key] = msg.Stats
}

// ApplyGameLog stores a game log result.
func (m *Model) ApplyGameLog(msg GameLogLoadedMsg) {
	delete(m.inflight, gameLogFetchKey(msg.PlayerID))
	if msg.Err != nil {
		m.GameLogErr[msg.PlayerID] = msg.Err
		return
	}
	delete(m.GameLogErr, msg.PlayerID)
	m.GameLogs[msg.PlayerID] = msg.Entries
}

// Loading reports whether any fetch is outstanding.
func (m *Model) Loading() bool {
	return len(m.inflight) > 0
}

// invalidator is implemented by backends that cache responses.
type invalidator interface {
	Invalidate(prefix string) int
}

// Refresh drops every fetched result, and the backend's cache when it has
// one, then refetches what the visible panels need.
func (m *Model) Refresh() tea.Cmd {
	if inv, ok := m.Data.(invalidator); ok {
		n := inv.Invalidate("")
		logging.Debug("Model", "Invalidated %d cached responses", n)
	}
	m.Players = nil
	m.PlayersErr = nil
	clear(m.Stats)
	clear(m.StatsErr)
	clear(m.GameLogs)
	clear(m.GameLogErr)
	return m.DataCmds()
}
