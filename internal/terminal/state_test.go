package terminal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestNew_Defaults(t *testing.T) {
	s := New()

	_, ok := s.FocusedPlayer()
	assert.False(t, ok)
	assert.Empty(t, s.Comparison())
	assert.Empty(t, s.Watchlist())
	assert.Empty(t, s.RecentlyViewed())
	assert.Empty(t, s.CommandHistory())
	assert.Equal(t, WindowSeason, s.StatWindow())

	l := s.Layout()
	assert.Equal(t, PresetDefault, l.Preset)
	assert.False(t, l.LeftCollapsed)
	assert.False(t, l.RightCollapsed)
	assert.Equal(t, 50, l.CenterSize())
	assert.Equal(t, DefaultCenterPanels, l.CenterPanels)
}

func TestAddToComparison_Bound(t *testing.T) {
	s := New()
	for id := 1; id <= 5; id++ {
		s.AddToComparison(id)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, s.Comparison())
}

func TestAddToComparison_Idempotent(t *testing.T) {
	s := New()
	s.AddToComparison(7)
	once := s.Comparison()
	s.AddToComparison(7)
	assert.Equal(t, once, s.Comparison())
}

func TestRemoveAndClearComparison(t *testing.T) {
	s := New()
	s.AddToComparison(1)
	s.AddToComparison(2)
	s.AddToComparison(3)

	s.RemoveFromComparison(2)
	assert.Equal(t, []int{1, 3}, s.Comparison())

	s.RemoveFromComparison(99)
	assert.Equal(t, []int{1, 3}, s.Comparison())

	s.ClearComparison()
	assert.Empty(t, s.Comparison())
	s.ClearComparison()
	assert.Empty(t, s.Comparison())
}

func TestRecentlyViewed_RecencyAndBound(t *testing.T) {
	s := New()
	for id := 1; id <= 25; id++ {
		s.SetFocusedPlayer(id)
	}

	want := make([]int, 0, 20)
	for id := 25; id >= 6; id-- {
		want = append(want, id)
	}
	assert.Equal(t, want, s.RecentlyViewed())

	focused, ok := s.FocusedPlayer()
	require.True(t, ok)
	assert.Equal(t, 25, focused)
}

func TestRecentlyViewed_ReinsertionMovesToFront(t *testing.T) {
	s := New()
	s.SetFocusedPlayer(1)
	s.SetFocusedPlayer(2)
	s.SetFocusedPlayer(3)
	s.SetFocusedPlayer(1)
	assert.Equal(t, []int{1, 3, 2}, s.RecentlyViewed())
}

func TestClearFocusedPlayer_KeepsRecent(t *testing.T) {
	s := New()
	s.SetFocusedPlayer(4)
	s.ClearFocusedPlayer()

	_, ok := s.FocusedPlayer()
	assert.False(t, ok)
	assert.Equal(t, []int{4}, s.RecentlyViewed())
}

func TestWatchlist_UniqueKeepsFirstTimestamp(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	clock, advance := fixedClock(start)
	s := New(WithClock(clock))

	s.AddToWatchlist(5)
	advance(time.Hour)
	s.AddToWatchlist(5)

	wl := s.Watchlist()
	require.Len(t, wl, 1)
	assert.Equal(t, 5, wl[0].ID)
	assert.True(t, wl[0].AddedAt.Equal(start))
	assert.True(t, s.InWatchlist(5))

	s.RemoveFromWatchlist(5)
	assert.Empty(t, s.Watchlist())
	assert.False(t, s.InWatchlist(5))
}

func TestSetLayoutPreset_DerivesCollapseFlags(t *testing.T) {
	tests := []struct {
		preset      LayoutPreset
		left, right bool
	}{
		{PresetDefault, false, false},
		{PresetChart, false, true},
		{PresetComparison, true, false},
		{PresetData, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			s := New()
			// Manual toggles under the previous preset must be discarded.
			s.ToggleLeftPanel()
			s.ToggleRightPanel()
			s.SetLayoutPreset(tt.preset)

			l := s.Layout()
			assert.Equal(t, tt.preset, l.Preset)
			assert.Equal(t, tt.left, l.LeftCollapsed)
			assert.Equal(t, tt.right, l.RightCollapsed)
		})
	}
}

func TestToggle_LeavesPresetStale(t *testing.T) {
	s := New()
	s.SetLayoutPreset(PresetChart)
	s.ToggleRightPanel()

	l := s.Layout()
	assert.Equal(t, PresetChart, l.Preset)
	assert.False(t, l.RightCollapsed)
}

func TestSetLayoutPreset_IgnoresUnknown(t *testing.T) {
	s := New()
	s.SetLayoutPreset(LayoutPreset("custom"))
	assert.Equal(t, PresetDefault, s.Layout().Preset)
}

func TestSetStatWindow(t *testing.T) {
	s := New()
	s.SetStatWindow(WindowL10)
	assert.Equal(t, WindowL10, s.StatWindow())

	s.SetStatWindow(StatWindow("l100"))
	assert.Equal(t, WindowL10, s.StatWindow())
}

func TestCommandHistory_Bound(t *testing.T) {
	s := New()
	for i := 1; i <= 60; i++ {
		s.AddToCommandHistory(fmt.Sprintf(":cmd %d", i))
	}

	h := s.CommandHistory()
	require.Len(t, h, MaxCommandHistory)
	assert.Equal(t, ":cmd 60", h[0])
	assert.Equal(t, ":cmd 11", h[len(h)-1])
}

func TestSubscribe_ReportsChanges(t *testing.T) {
	s := New()
	var got []Change
	unsubscribe := s.Subscribe(func(c Change) { got = append(got, c) })

	s.SetFocusedPlayer(3)
	s.AddToComparison(3)
	s.AddToComparison(3) // no-op, no notification
	s.SetStatWindow(WindowL5)

	require.Len(t, got, 3)
	assert.True(t, got[0].Has(ChangeFocus|ChangeRecentlyViewed))
	assert.True(t, got[0].Persisted())
	assert.Equal(t, ChangeComparison, got[1])
	assert.False(t, got[1].Persisted())
	assert.Equal(t, ChangeStatWindow, got[2])

	unsubscribe()
	s.SetStatWindow(WindowL20)
	assert.Len(t, got, 3)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New()
	s.AddToComparison(1)
	c := s.Comparison()
	c[0] = 99
	assert.Equal(t, []int{1}, s.Comparison())

	l := s.Layout()
	l.CenterPanels[0] = "mutated"
	assert.Equal(t, DefaultCenterPanels[0], s.Layout().CenterPanels[0])
}

func TestMutators_ReportWhetherTheyChanged(t *testing.T) {
	s := New()

	for id := 1; id <= MaxComparison; id++ {
		assert.True(t, s.AddToComparison(id))
	}
	assert.False(t, s.AddToComparison(1), "duplicate")
	assert.False(t, s.AddToComparison(99), "full")
	assert.True(t, s.RemoveFromComparison(2))
	assert.False(t, s.RemoveFromComparison(2))

	assert.True(t, s.AddToWatchlist(7))
	assert.False(t, s.AddToWatchlist(7))
	assert.True(t, s.RemoveFromWatchlist(7))
	assert.False(t, s.RemoveFromWatchlist(7))
	assert.Empty(t, s.Watchlist())

	assert.False(t, s.ClearFocusedPlayer())
	s.SetFocusedPlayer(3)
	assert.True(t, s.ClearFocusedPlayer())
}

func TestAddToComparison_ConcurrentAddsAgreeWithResult(t *testing.T) {
	s := New()
	results := make(chan bool, 2*MaxComparison)
	done := make(chan struct{})
	for w := 0; w < 2; w++ {
		go func() {
			for id := 1; id <= MaxComparison; id++ {
				results <- s.AddToComparison(id)
			}
			done <- struct{}{}
		}()
	}
	<-done
	<-done
	close(results)

	added := 0
	for ok := range results {
		if ok {
			added++
		}
	}
	assert.Equal(t, MaxComparison, added)
	assert.Len(t, s.Comparison(), MaxComparison)
}
