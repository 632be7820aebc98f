package controller

import (
	"context"
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/internal/layout"
	"courtside/internal/terminal"
	"courtside/internal/tui/model"
	"courtside/pkg/logging"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlayers []api.Player

func (s stubPlayers) RankedPlayers(ctx context.Context) ([]api.Player, error) {
	return s, nil
}

var ranked = stubPlayers{
	{ID: 30, Name: "Stephen Curry", Rank: 1},
	{ID: 23, Name: "LeBron James", Rank: 2},
	{ID: 15, Name: "Nikola Jokic", Rank: 3},
	{ID: 77, Name: "Luka Doncic", Rank: 4},
	{ID: 11, Name: "Kyrie Irving", Rank: 5},
}

func newTestModel(t *testing.T) (*model.Model, *terminal.State) {
	t.Helper()
	state := terminal.New()
	m := model.InitializeModel(model.TUIConfig{
		State:            state,
		Layout:           layout.NewController(state, layout.DefaultStep),
		Interpreter:      command.NewInterpreter(state, ranked),
		FeedbackDuration: time.Second,
	})
	m.Players = ranked
	m, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 40}, m)
	return m, state
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWriteAll
	clipboardWriteAll = fn
	t.Cleanup(func() { clipboardWriteAll = orig })
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model.Model, msgs ...tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = Update(msg, m)
	}
	return m, cmd
}

func TestKeys_FocusInput(t *testing.T) {
	m, state := newTestModel(t)

	m, cmd := press(m, runes("/"))
	assert.True(t, m.InputFocused())
	assert.NotNil(t, cmd)

	// While typing, shortcuts are text.
	m, _ = press(m, runes("["), runes("w"), runes("q"))
	assert.Equal(t, "[wq", m.CommandInput.Value())
	assert.False(t, state.Layout().LeftCollapsed)
	assert.NotEqual(t, model.ModeQuitting, m.CurrentAppMode)
}

func TestKeys_TogglePanels(t *testing.T) {
	m, state := newTestModel(t)

	press(m, runes("["))
	assert.True(t, state.Layout().LeftCollapsed)
	press(m, runes("]"))
	assert.True(t, state.Layout().RightCollapsed)
	press(m, runes("["))
	assert.False(t, state.Layout().LeftCollapsed)
}

func TestKeys_WatchRequiresFocus(t *testing.T) {
	m, state := newTestModel(t)

	press(m, runes("w"))
	assert.Empty(t, state.Watchlist())

	state.SetFocusedPlayer(30)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w"), Alt: true})
	assert.Empty(t, state.Watchlist())

	m, cmd := press(m, runes("w"))
	require.Len(t, state.Watchlist(), 1)
	assert.Equal(t, 30, state.Watchlist()[0].ID)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Watching Stephen Curry", m.StatusBarMessage)

	// Second press does not duplicate.
	press(m, runes("w"))
	assert.Len(t, state.Watchlist(), 1)
}

func TestKeys_CompareStopsAtFour(t *testing.T) {
	m, state := newTestModel(t)

	press(m, runes("c"))
	assert.Empty(t, state.Comparison())

	for _, p := range ranked {
		state.SetFocusedPlayer(p.ID)
		m, _ = press(m, runes("c"))
	}
	assert.Equal(t, []int{30, 23, 15, 77}, state.Comparison())
	assert.Equal(t, "Comparison full (max 4)", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
}

func TestKeys_Presets(t *testing.T) {
	m, state := newTestModel(t)

	tests := []struct {
		key         tea.KeyType
		preset      terminal.LayoutPreset
		left, right bool
	}{
		{tea.KeyF2, terminal.PresetChart, false, true},
		{tea.KeyF3, terminal.PresetComparison, true, false},
		{tea.KeyF4, terminal.PresetData, true, true},
		{tea.KeyF1, terminal.PresetDefault, false, false},
	}
	for _, tt := range tests {
		press(m, tea.KeyMsg{Type: tt.key})
		l := state.Layout()
		assert.Equal(t, tt.preset, l.Preset)
		assert.Equal(t, tt.left, l.LeftCollapsed, string(tt.preset))
		assert.Equal(t, tt.right, l.RightCollapsed, string(tt.preset))
	}
}

func TestKeys_Resize(t *testing.T) {
	m, state := newTestModel(t)

	press(m, runes(","))
	assert.Equal(t, 20, state.Layout().LeftSize)
	press(m, runes("."), runes("."))
	assert.Equal(t, 30, state.Layout().LeftSize)
	press(m, runes(">"))
	assert.Equal(t, 30, state.Layout().RightSize)
	press(m, runes("<"), runes("<"))
	assert.Equal(t, 20, state.Layout().RightSize)
	assert.Equal(t, 50, state.Layout().CenterSize())

	// Collapsed panels ignore resizing.
	press(m, runes("["), runes(","))
	assert.Equal(t, 30, state.Layout().LeftSize)
}

func TestInput_SubmitRunsCommand(t *testing.T) {
	m, state := newTestModel(t)

	m, _ = press(m, runes("/"))
	m.CommandInput.SetValue(":window l10")
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.InputFocused())
	assert.Empty(t, m.CommandInput.Value())
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(model.CommandResultMsg)
	require.True(t, ok)
	m, _ = press(m, result)

	assert.Equal(t, terminal.WindowL10, state.StatWindow())
	assert.Equal(t, "Stat window: L10", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
	assert.Equal(t, []string{":window l10"}, state.CommandHistory())
}

func TestInput_SubmitReportsErrors(t *testing.T) {
	m, state := newTestModel(t)

	m, _ = press(m, runes("/"))
	m.CommandInput.SetValue(":focus nobody")
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = press(m, cmd())

	assert.Equal(t, "Player not found: nobody", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	_, focused := state.FocusedPlayer()
	assert.False(t, focused)

	m, _ = press(m, model.ClearStatusBarMsg{})
	assert.Empty(t, m.StatusBarMessage)
}

func TestInput_EscapeClears(t *testing.T) {
	m, state := newTestModel(t)

	m, _ = press(m, runes("/"), runes("x"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InputFocused())
	assert.Empty(t, m.CommandInput.Value())
	assert.Empty(t, state.CommandHistory())
}

func TestInput_HistoryNavigation(t *testing.T) {
	m, state := newTestModel(t)
	state.AddToCommandHistory(":window l5")
	state.AddToCommandHistory(":clear")

	m, _ = press(m, runes("/"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, ":clear", m.CommandInput.Value())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, ":window l5", m.CommandInput.Value())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, ":window l5", m.CommandInput.Value())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, ":clear", m.CommandInput.Value())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.CommandInput.Value())
}

func TestKeys_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := press(m, runes("q"))
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m, _ = newTestModel(t)
	m, _ = press(m, runes("/"))
	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestOverlays(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, runes("?"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)

	model.AddRawLineToActivityLog(m, "12:00:00.000 [INFO] [App] hello")
	m, _ = press(m, runes("L"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	assert.False(t, m.ActivityLogDirty)
	assert.Positive(t, m.LogViewport.Width)

	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })
	m, _ = press(m, runes("y"))
	assert.Contains(t, copied, "hello")
	assert.Equal(t, "Logs copied to clipboard", m.StatusBarMessage)

	m, _ = press(m, runes("L"))
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
}

func TestKeys_CopyWatchlist(t *testing.T) {
	m, state := newTestModel(t)
	state.AddToWatchlist(30)
	state.AddToWatchlist(15)

	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	m, _ = press(m, runes("y"))
	assert.Equal(t, "30,15", copied)
	assert.Equal(t, "Copied 2 watchlist ids", m.StatusBarMessage)

	stubClipboard(t, func(string) error { return errors.New("no clipboard") })
	m, _ = press(m, runes("y"))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
}

func TestDataMessages(t *testing.T) {
	m, _ := newTestModel(t)
	m.Players = nil

	m, _ = press(m, model.PlayersLoadedMsg{Players: ranked})
	assert.Len(t, m.Players, len(ranked))

	key := model.StatsKey{PlayerID: 30, Window: terminal.WindowL5}
	m, _ = press(m, model.StatsLoadedMsg{Key: key, Stats: api.StatLine{Points: 30}})
	assert.Equal(t, 30.0, m.Stats[key].Points)

	m, _ = press(m, model.GameLogLoadedMsg{PlayerID: 30, Err: errors.New("timeout")})
	assert.Error(t, m.GameLogErr[30])
}

func TestLogEntries(t *testing.T) {
	m, _ := newTestModel(t)
	ch := make(chan logging.LogEntry, 1)
	m.LogChannel = ch

	entry := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "App", Message: "ready"}
	m, cmd := press(m, model.NewLogEntryMsg{Entry: entry})
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "ready")
	assert.NotNil(t, cmd)

	close(ch)
	assert.Nil(t, cmd())
}

func TestKeys_UnwatchAndUncompareFocused(t *testing.T) {
	m, state := newTestModel(t)

	// Nothing focused: no-op.
	m, cmd := press(m, runes("W"))
	assert.Nil(t, cmd)

	state.SetFocusedPlayer(30)
	m, _ = press(m, runes("w"), runes("c"))
	require.True(t, state.InWatchlist(30))
	require.True(t, state.InComparison(30))

	m, _ = press(m, runes("W"))
	assert.False(t, state.InWatchlist(30))
	assert.Equal(t, "Removed Stephen Curry from watchlist", m.StatusBarMessage)

	m, _ = press(m, runes("W"))
	assert.Equal(t, "Stephen Curry is not on the watchlist", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarInfo, m.StatusBarMessageType)

	m, _ = press(m, runes("C"))
	assert.Empty(t, state.Comparison())
	assert.Equal(t, "Removed Stephen Curry from comparison", m.StatusBarMessage)

	m, _ = press(m, runes("C"))
	assert.Equal(t, "Stephen Curry is not in comparison", m.StatusBarMessage)
}

func TestKeys_RepeatedWatchAndCompareFeedback(t *testing.T) {
	m, state := newTestModel(t)
	state.SetFocusedPlayer(23)

	m, _ = press(m, runes("w"), runes("w"))
	assert.Equal(t, "LeBron James is already on the watchlist", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarInfo, m.StatusBarMessageType)

	m, _ = press(m, runes("c"), runes("c"))
	assert.Equal(t, "LeBron James is already in comparison", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarInfo, m.StatusBarMessageType)
}

func TestKeys_EscClearsFocus(t *testing.T) {
	m, state := newTestModel(t)
	state.SetFocusedPlayer(15)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, focused := state.FocusedPlayer()
	assert.False(t, focused)
	assert.Equal(t, "Focus cleared", m.StatusBarMessage)

	// Already clear: nothing to report.
	m.StatusBarMessage = ""
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Empty(t, m.StatusBarMessage)
}

func TestKeys_PanelPicker(t *testing.T) {
	m, state := newTestModel(t)
	before := state.Layout().CenterPanels

	m, _ = press(m, runes("p"))
	require.Equal(t, model.ModePanelPicker, m.CurrentAppMode)
	assert.Equal(t, before, m.PickerSelected)

	// Cancel leaves the layout alone.
	m, _ = press(m, runes(" "), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, before, state.Layout().CenterPanels)

	// Deselect everything, then pick the second and first items in that order.
	m, _ = press(m, runes("p"))
	m.PickerSelected = nil
	m, _ = press(m, runes("j"), tea.KeyMsg{Type: tea.KeySpace}, runes("k"), tea.KeyMsg{Type: tea.KeySpace})
	items := model.PickerItems()
	assert.Equal(t, []string{items[1].ID, items[0].ID}, m.PickerSelected)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, []string{items[1].ID, items[0].ID}, state.Layout().CenterPanels)
	assert.Equal(t, "Center panels: 2 selected", m.StatusBarMessage)
}

func TestKeys_PanelPickerRejectsEmptySelection(t *testing.T) {
	m, state := newTestModel(t)
	before := state.Layout().CenterPanels

	m, _ = press(m, runes("p"))
	m.PickerSelected = nil
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModePanelPicker, m.CurrentAppMode)
	assert.Equal(t, "Pick at least one panel", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
	assert.Equal(t, before, state.Layout().CenterPanels)

	// Cursor stops at both ends.
	for i, n := 0, len(model.PickerItems())+3; i < n; i++ {
		m, _ = press(m, runes("j"))
	}
	assert.Equal(t, len(model.PickerItems())-1, m.PickerCursor)
	for i, n := 0, len(model.PickerItems())+3; i < n; i++ {
		m, _ = press(m, runes("k"))
	}
	assert.Zero(t, m.PickerCursor)
}

type invalidatingBackend struct {
	stubPlayers
	invalidated []string
}

func (b *invalidatingBackend) PlayerStats(ctx context.Context, id int, window terminal.StatWindow) (api.StatLine, error) {
	return api.StatLine{}, nil
}

func (b *invalidatingBackend) GameLog(ctx context.Context, id int, limit int) ([]api.GameLogEntry, error) {
	return nil, nil
}

func (b *invalidatingBackend) Invalidate(prefix string) int {
	b.invalidated = append(b.invalidated, prefix)
	return 3
}

func TestKeys_RefreshInvalidatesCacheAndRefetches(t *testing.T) {
	m, _ := newTestModel(t)
	backend := &invalidatingBackend{stubPlayers: ranked}
	m.Data = backend
	m.Stats[model.StatsKey{PlayerID: 30, Window: terminal.WindowL5}] = api.StatLine{}

	m, cmd := press(m, runes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, []string{""}, backend.invalidated)
	assert.Nil(t, m.Players)
	assert.Empty(t, m.Stats)
	assert.True(t, m.PlayersLoading)
	assert.Equal(t, "Refreshing...", m.StatusBarMessage)
}
