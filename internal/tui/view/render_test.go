package view

import (
	"courtside/internal/api"
	"courtside/internal/panels"
	"courtside/internal/terminal"
	"courtside/internal/tui/model"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var testPlayers = []api.Player{
	{ID: 30, Name: "Stephen Curry", Team: "GSW", Average: 48.2, Rank: 1, RankDelta: 2},
	{ID: 23, Name: "LeBron James", Team: "LAL", Average: 45.9, Rank: 2, RankDelta: -1},
	{ID: 15, Name: "Nikola Jokic", Team: "DEN", Average: 44.1, Rank: 3},
}

func newTestModel(t *testing.T) (*model.Model, *terminal.State) {
	t.Helper()
	state := terminal.New()
	m := model.InitializeModel(model.TUIConfig{State: state})
	m.Width = 120
	m.Height = 40
	m.Players = testPlayers
	return m, state
}

func TestRender_Initializing(t *testing.T) {
	m, _ := newTestModel(t)
	m.Width = 0
	m.Height = 0
	assert.Contains(t, Render(m), "Initializing")
}

func TestRender_Quitting(t *testing.T) {
	m, _ := newTestModel(t)
	m.CurrentAppMode = model.ModeQuitting
	assert.Contains(t, Render(m), "Saving layout")
}

func TestRender_MainDashboard(t *testing.T) {
	m, state := newTestModel(t)
	state.SetFocusedPlayer(30)
	state.AddToWatchlist(23)
	m.Stats[model.StatsKey{PlayerID: 30, Window: terminal.WindowSeason}] = api.StatLine{
		PlayerID: 30, Games: 60, Points: 29.4, FantasyPoints: 48.2,
	}

	out := Render(m)
	for _, want := range []string{"courtside", "SEASON", "Player Detail", "Game Log", "Watchlist", "Recently Viewed", "Trending", "LeBron James", "48.2"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, m.Height, lipgloss.Height(out))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), m.Width)
	}
}

func TestRender_CollapsedPanelsAreHidden(t *testing.T) {
	m, state := newTestModel(t)
	state.SetLayoutPreset(terminal.PresetData)

	out := Render(m)
	assert.NotContains(t, out, "Trending")
	assert.NotContains(t, out, "Watchlist")
	assert.Contains(t, out, "Player Detail")
}

func TestRender_CenterPanelsFollowLayout(t *testing.T) {
	m, state := newTestModel(t)
	state.SetCenterPanels([]string{panels.Comparison, panels.Schedule})
	state.AddToComparison(30)
	state.AddToComparison(15)
	m.Stats[model.StatsKey{PlayerID: 30, Window: terminal.WindowSeason}] = api.StatLine{FantasyPoints: 48.2}
	m.StatsErr[model.StatsKey{PlayerID: 15, Window: terminal.WindowSeason}] = errors.New("boom")

	out := Render(m)
	assert.Contains(t, out, "Comparison")
	assert.Contains(t, out, "Schedule")
	assert.NotContains(t, out, "Player Detail")
	assert.Contains(t, out, "48.2")
	assert.Contains(t, out, "err")
}

func TestPanelContent(t *testing.T) {
	t.Run("no focus", func(t *testing.T) {
		m, _ := newTestModel(t)
		assert.Contains(t, panelContent(m, panels.PlayerDetail, 40), "No player focused")
		assert.Contains(t, panelContent(m, panels.GameLog, 40), "No player focused")
	})

	t.Run("loading and errors", func(t *testing.T) {
		m, state := newTestModel(t)
		state.SetFocusedPlayer(30)
		assert.Contains(t, panelContent(m, panels.PlayerDetail, 40), "Loading")
		m.GameLogErr[30] = errors.New("backend down")
		assert.Contains(t, panelContent(m, panels.GameLog, 40), "backend down")
	})

	t.Run("game log and chart", func(t *testing.T) {
		m, state := newTestModel(t)
		state.SetFocusedPlayer(30)
		m.GameLogs[30] = []api.GameLogEntry{
			{Date: "2024-03-01", Opponent: "LAL", Home: true, Points: 31, FantasyPoints: 52.5},
			{Date: "2024-02-28", Opponent: "DEN", Points: 18, FantasyPoints: 26.0},
		}
		log := panelContent(m, panels.GameLog, 60)
		assert.Contains(t, log, "vs LAL")
		assert.Contains(t, log, "@ DEN")

		chart := panelContent(m, panels.StatChart, 40)
		lines := strings.Split(chart, "\n")
		assert.Len(t, lines, 2)
		assert.Greater(t, strings.Count(lines[0], "█"), strings.Count(lines[1], "█"))
	})

	t.Run("trending arrows", func(t *testing.T) {
		m, _ := newTestModel(t)
		out := panelContent(m, panels.Trending, 40)
		assert.Contains(t, out, "▲2")
		assert.Contains(t, out, "▼1")
		assert.Contains(t, out, "•")
	})

	t.Run("unknown names fall back to ids", func(t *testing.T) {
		m, state := newTestModel(t)
		state.AddToWatchlist(999)
		assert.Contains(t, panelContent(m, panels.Watchlist, 30), "#999")
	})
}

func TestRender_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, "Shortcuts")
	assert.Contains(t, out, "toggle left panel")
	assert.Contains(t, out, ":window")
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{
		"12:00:00.000 [INFO] [App] started",
		"12:00:01.000 [ERROR] [Api] failed",
	}
	out := PrepareLogContent(lines)
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "failed")
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestLogOverlaySize(t *testing.T) {
	w, h := LogOverlaySize(100, 40)
	assert.Positive(t, w)
	assert.Positive(t, h)
	assert.Less(t, w, 100)
	assert.Less(t, h, 40)

	w, h = LogOverlaySize(0, 0)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestRender_HelpOverlayListsRemovalCommands(t *testing.T) {
	m, _ := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, ":unwatch")
	assert.Contains(t, out, ":panels")
	assert.Contains(t, out, "clear focus")
}

func TestLogOverlayTitle(t *testing.T) {
	assert.NotContains(t, logOverlayTitle(0), "dropped")
	assert.Contains(t, logOverlayTitle(3), "3 dropped")
}

func TestRender_PanelPicker(t *testing.T) {
	m, state := newTestModel(t)
	state.SetCenterPanels([]string{panels.GameLog, panels.Comparison})
	m.OpenPanelPicker()

	out := Render(m)
	assert.Contains(t, out, "Center Panels")
	assert.Contains(t, out, "PLAYER")
	assert.Contains(t, out, "SCHEDULE")
	assert.Contains(t, out, "[1] ≡ Game Log")
	assert.Contains(t, out, "[2] ⇄ Comparison")
	assert.Contains(t, out, "[ ] ↗ Trending")
	// cursor starts on the first player panel
	assert.Contains(t, out, "> [ ] ◉ Player Detail")
}
