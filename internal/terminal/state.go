package terminal

import (
	"slices"
	"sync"
	"time"
)

// Listener is called after every mutation that changed something.
type Listener func(Change)

// State is the single source of truth for the terminal page. Every mutator
// is total: out-of-range or duplicate input degrades to a no-op.
type State struct {
	mu sync.Mutex

	focused        int
	hasFocus       bool
	comparison     []int
	watchlist      []WatchlistEntry
	recentlyViewed []int
	layout         Layout
	statWindow     StatWindow
	commandHistory []string

	defaultLayout Layout
	defaultWindow StatWindow

	now       func() time.Time
	listeners map[int]Listener
	nextSubID int
}

// Option configures a State at construction time.
type Option func(*State)

// WithClock replaces time.Now as the source of watchlist timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// WithDefaults sets the layout and stat window used for a fresh state and
// for values that fail to restore.
func WithDefaults(layout Layout, window StatWindow) Option {
	return func(s *State) {
		if layout.Preset.Valid() {
			layout.LeftCollapsed, layout.RightCollapsed = layout.Preset.Collapsed()
			s.defaultLayout = sanitizeLayout(layout, DefaultLayout())
		}
		if window.Valid() {
			s.defaultWindow = window
		}
	}
}

// New creates a State with default values.
func New(opts ...Option) *State {
	s := &State{
		defaultLayout: DefaultLayout(),
		defaultWindow: WindowSeason,
		now:           time.Now,
		listeners:     make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.layout = s.defaultLayout.clone()
	s.statWindow = s.defaultWindow
	return s
}

// Subscribe registers l and returns a function that removes it.
func (s *State) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate runs fn under the lock and notifies listeners outside it. It
// returns what fn changed.
func (s *State) mutate(fn func() Change) Change {
	s.mu.Lock()
	change := fn()
	var ls []Listener
	if change != 0 {
		ls = make([]Listener, 0, len(s.listeners))
		for _, l := range s.listeners {
			ls = append(ls, l)
		}
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(change)
	}
	return change
}

// SetFocusedPlayer focuses id and records it as the most recent view.
func (s *State) SetFocusedPlayer(id int) {
	s.mutate(func() Change {
		change := Change(0)
		if !s.hasFocus || s.focused != id {
			change |= ChangeFocus
		}
		s.focused, s.hasFocus = id, true
		if s.addRecentView(id) {
			change |= ChangeRecentlyViewed
		}
		return change
	})
}

// ClearFocusedPlayer removes the focus without touching recent views and
// reports whether a player was focused.
func (s *State) ClearFocusedPlayer() bool {
	return s.mutate(func() Change {
		if !s.hasFocus {
			return 0
		}
		s.focused, s.hasFocus = 0, false
		return ChangeFocus
	}) != 0
}

// addRecentView moves id to the front of recentlyViewed, dropping anything
// past MaxRecentlyViewed. Caller holds the lock.
func (s *State) addRecentView(id int) bool {
	if len(s.recentlyViewed) > 0 && s.recentlyViewed[0] == id {
		return false
	}
	next := make([]int, 0, MaxRecentlyViewed)
	next = append(next, id)
	for _, v := range s.recentlyViewed {
		if v != id {
			next = append(next, v)
		}
	}
	if len(next) > MaxRecentlyViewed {
		next = next[:MaxRecentlyViewed]
	}
	s.recentlyViewed = next
	return true
}

// AddToComparison appends id unless it is already present or the set is
// full, and reports whether it was added.
func (s *State) AddToComparison(id int) bool {
	return s.mutate(func() Change {
		if len(s.comparison) >= MaxComparison || slices.Contains(s.comparison, id) {
			return 0
		}
		s.comparison = append(s.comparison, id)
		return ChangeComparison
	}) != 0
}

// RemoveFromComparison drops id from the comparison set and reports whether
// it was there.
func (s *State) RemoveFromComparison(id int) bool {
	return s.mutate(func() Change {
		i := slices.Index(s.comparison, id)
		if i < 0 {
			return 0
		}
		s.comparison = slices.Delete(s.comparison, i, i+1)
		return ChangeComparison
	}) != 0
}

// ClearComparison empties the comparison set.
func (s *State) ClearComparison() {
	s.mutate(func() Change {
		if len(s.comparison) == 0 {
			return 0
		}
		s.comparison = nil
		return ChangeComparison
	})
}

// AddToWatchlist saves id with the current time and reports whether it was
// added. Re-adding keeps the original timestamp.
func (s *State) AddToWatchlist(id int) bool {
	return s.mutate(func() Change {
		if s.watchIndex(id) >= 0 {
			return 0
		}
		s.watchlist = append(s.watchlist, WatchlistEntry{ID: id, AddedAt: s.now()})
		return ChangeWatchlist
	}) != 0
}

// RemoveFromWatchlist drops the entry for id and reports whether it was there.
func (s *State) RemoveFromWatchlist(id int) bool {
	return s.mutate(func() Change {
		i := s.watchIndex(id)
		if i < 0 {
			return 0
		}
		s.watchlist = slices.Delete(s.watchlist, i, i+1)
		return ChangeWatchlist
	}) != 0
}

func (s *State) watchIndex(id int) int {
	return slices.IndexFunc(s.watchlist, func(e WatchlistEntry) bool { return e.ID == id })
}

// SetLayoutPreset selects p and resets both collapse flags to the preset's
// defaults, discarding manual toggles. Unknown presets are ignored.
func (s *State) SetLayoutPreset(p LayoutPreset) {
	if !p.Valid() {
		return
	}
	s.mutate(func() Change {
		left, right := p.Collapsed()
		if s.layout.Preset == p && s.layout.LeftCollapsed == left && s.layout.RightCollapsed == right {
			return 0
		}
		s.layout.Preset = p
		s.layout.LeftCollapsed = left
		s.layout.RightCollapsed = right
		return ChangeLayout
	})
}

// ToggleLeftPanel flips the left collapse flag. The preset label is left as is.
func (s *State) ToggleLeftPanel() {
	s.mutate(func() Change {
		s.layout.LeftCollapsed = !s.layout.LeftCollapsed
		return ChangeLayout
	})
}

// ToggleRightPanel flips the right collapse flag. The preset label is left as is.
func (s *State) ToggleRightPanel() {
	s.mutate(func() Change {
		s.layout.RightCollapsed = !s.layout.RightCollapsed
		return ChangeLayout
	})
}

// SetLeftPanelSize stores pct as is; callers clamp.
func (s *State) SetLeftPanelSize(pct int) {
	s.mutate(func() Change {
		if s.layout.LeftSize == pct {
			return 0
		}
		s.layout.LeftSize = pct
		return ChangeLayout
	})
}

// SetRightPanelSize stores pct as is; callers clamp.
func (s *State) SetRightPanelSize(pct int) {
	s.mutate(func() Change {
		if s.layout.RightSize == pct {
			return 0
		}
		s.layout.RightSize = pct
		return ChangeLayout
	})
}

// SetCenterPanels replaces the center panel stack.
func (s *State) SetCenterPanels(ids []string) {
	s.mutate(func() Change {
		if slices.Equal(s.layout.CenterPanels, ids) {
			return 0
		}
		s.layout.CenterPanels = append([]string(nil), ids...)
		return ChangeLayout
	})
}

// SetStatWindow replaces the active stat window. Unknown windows are ignored.
func (s *State) SetStatWindow(w StatWindow) {
	if !w.Valid() {
		return
	}
	s.mutate(func() Change {
		if s.statWindow == w {
			return 0
		}
		s.statWindow = w
		return ChangeStatWindow
	})
}

// AddToCommandHistory prepends command, keeping the newest MaxCommandHistory.
func (s *State) AddToCommandHistory(command string) {
	s.mutate(func() Change {
		next := make([]string, 0, min(len(s.commandHistory)+1, MaxCommandHistory))
		next = append(next, command)
		next = append(next, s.commandHistory...)
		if len(next) > MaxCommandHistory {
			next = next[:MaxCommandHistory]
		}
		s.commandHistory = next
		return ChangeCommandHistory
	})
}

// FocusedPlayer returns the focused id, if any.
func (s *State) FocusedPlayer() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused, s.hasFocus
}

// Comparison returns a copy of the comparison set in insertion order.
func (s *State) Comparison() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.comparison)
}

// InComparison reports whether id is in the comparison set.
func (s *State) InComparison(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.comparison, id)
}

// Watchlist returns a copy of the watchlist in insertion order.
func (s *State) Watchlist() []WatchlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.watchlist)
}

// InWatchlist reports whether id is saved.
func (s *State) InWatchlist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchIndex(id) >= 0
}

// RecentlyViewed returns a copy of recent views, most recent first.
func (s *State) RecentlyViewed() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.recentlyViewed)
}

// Layout returns a copy of the current layout.
func (s *State) Layout() Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.clone()
}

// StatWindow returns the active stat window.
func (s *State) StatWindow() StatWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statWindow
}

// CommandHistory returns a copy of the history, most recent first.
func (s *State) CommandHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.commandHistory)
}
