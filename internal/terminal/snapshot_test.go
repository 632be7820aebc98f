package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock, advance := fixedClock(start)
	src := New(WithClock(clock))

	src.AddToWatchlist(11)
	advance(time.Minute)
	src.AddToWatchlist(12)
	src.SetFocusedPlayer(1)
	src.SetFocusedPlayer(2)
	src.SetLayoutPreset(PresetChart)
	src.SetLeftPanelSize(30)
	src.SetRightPanelSize(20)
	src.SetCenterPanels([]string{"comparison"})
	src.SetStatWindow(WindowL20)
	src.AddToComparison(1)
	src.AddToCommandHistory(":window l20")

	data, err := Encode(src.Snapshot())
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	dst := New()
	dst.Restore(decoded)

	want := src.Snapshot()
	got := dst.Snapshot()
	require.Len(t, got.Watchlist, 2)
	for i := range want.Watchlist {
		assert.Equal(t, want.Watchlist[i].ID, got.Watchlist[i].ID)
		assert.True(t, want.Watchlist[i].AddedAt.Equal(got.Watchlist[i].AddedAt))
	}
	assert.Equal(t, want.RecentlyViewed, got.RecentlyViewed)
	assert.Equal(t, want.Layout, got.Layout)
	assert.Equal(t, want.StatWindow, got.StatWindow)

	// Transient fields start fresh.
	_, focused := dst.FocusedPlayer()
	assert.False(t, focused)
	assert.Empty(t, dst.Comparison())
	assert.Empty(t, dst.CommandHistory())
}

func TestRestore_ResetsTransientFields(t *testing.T) {
	s := New()
	s.SetFocusedPlayer(9)
	s.AddToComparison(9)
	s.AddToCommandHistory(":clear")

	s.Restore(s.Snapshot())

	_, focused := s.FocusedPlayer()
	assert.False(t, focused)
	assert.Empty(t, s.Comparison())
	assert.Empty(t, s.CommandHistory())
	assert.Equal(t, []int{9}, s.RecentlyViewed())
}

func TestRestore_RepairsBadValues(t *testing.T) {
	recent := make([]int, 0, 30)
	for i := 0; i < 30; i++ {
		recent = append(recent, i%25)
	}
	s := New()
	s.Restore(Snapshot{
		Watchlist:      []WatchlistEntry{{ID: 1}, {ID: 1}, {ID: 2}},
		RecentlyViewed: recent,
		Layout:         Layout{Preset: "bogus", LeftSize: 90, RightSize: 1},
		StatWindow:     "forever",
	})

	assert.Len(t, s.Watchlist(), 2)
	assert.Len(t, s.RecentlyViewed(), MaxRecentlyViewed)
	l := s.Layout()
	assert.Equal(t, PresetDefault, l.Preset)
	assert.Equal(t, MaxLeftSize, l.LeftSize)
	assert.Equal(t, MinRightSize, l.RightSize)
	assert.Equal(t, DefaultCenterPanels, l.CenterPanels)
	assert.Equal(t, WindowSeason, s.StatWindow())
}

func TestDecode_Versions(t *testing.T) {
	snap, err := Decode([]byte("statWindow: l5\n"))
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, WindowL5, snap.StatWindow)

	_, err = Decode([]byte("version: 7\n"))
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))

	_, err = Decode([]byte("watchlist: [unterminated"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	s := New(WithDefaults(Layout{Preset: PresetData, LeftSize: 20, RightSize: 30}, WindowL10))
	s.SetStatWindow(WindowL5)
	s.AddToWatchlist(1)
	s.SetFocusedPlayer(1)

	s.Reset()

	assert.Empty(t, s.Watchlist())
	assert.Empty(t, s.RecentlyViewed())
	assert.Equal(t, WindowL10, s.StatWindow())
	assert.Equal(t, PresetData, s.Layout().Preset)
	assert.Equal(t, 20, s.Layout().LeftSize)
}

func TestParseEnums(t *testing.T) {
	w, err := ParseStatWindow("L10")
	require.NoError(t, err)
	assert.Equal(t, WindowL10, w)
	assert.Equal(t, "L10", w.Label())

	_, err = ParseStatWindow("bogus")
	assert.Error(t, err)

	p, err := ParseLayoutPreset(" Comparison ")
	require.NoError(t, err)
	assert.Equal(t, PresetComparison, p)

	_, err = ParseLayoutPreset("custom")
	assert.Error(t, err)
}
