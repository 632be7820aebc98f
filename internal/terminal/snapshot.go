package terminal

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// StorageKey names the persisted record in a Store.
const StorageKey = "courtside-terminal"

// SnapshotVersion is the schema version written by Encode.
const SnapshotVersion = 1

// ErrUnsupportedVersion is returned by Decode for records written by a newer
// schema.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Snapshot is the persisted slice of State. Focus, comparison and command
// history are deliberately absent: they reset every session.
type Snapshot struct {
	Version        int              `yaml:"version" json:"version"`
	Watchlist      []WatchlistEntry `yaml:"watchlist" json:"watchlist"`
	RecentlyViewed []int            `yaml:"recentlyViewed" json:"recentlyViewed"`
	Layout         Layout           `yaml:"layout" json:"layout"`
	StatWindow     StatWindow       `yaml:"statWindow" json:"statWindow"`
}

// Snapshot captures the persisted slice.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Version:        SnapshotVersion,
		Watchlist:      slices.Clone(s.watchlist),
		RecentlyViewed: slices.Clone(s.recentlyViewed),
		Layout:         s.layout.clone(),
		StatWindow:     s.statWindow,
	}
}

// Restore installs snap and resets every transient field to its default.
// Out-of-range values are repaired rather than rejected.
func (s *State) Restore(snap Snapshot) {
	s.mutate(func() Change {
		s.watchlist = sanitizeWatchlist(snap.Watchlist)
		s.recentlyViewed = sanitizeRecent(snap.RecentlyViewed)
		s.layout = sanitizeLayout(snap.Layout, s.defaultLayout)
		s.statWindow = snap.StatWindow
		if !s.statWindow.Valid() {
			s.statWindow = s.defaultWindow
		}

		s.focused, s.hasFocus = 0, false
		s.comparison = nil
		s.commandHistory = nil

		return ChangeFocus | ChangeComparison | ChangeCommandHistory | persistedChanges
	})
}

// Reset returns every field, persisted or not, to its default.
func (s *State) Reset() {
	s.Restore(Snapshot{Layout: s.defaultLayout.clone(), StatWindow: s.defaultWindow})
}

// Encode serializes a snapshot as YAML, stamping the current version.
func Encode(snap Snapshot) ([]byte, error) {
	snap.Version = SnapshotVersion
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding terminal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a record written by Encode. Records without a version are
// treated as version 1.
func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding terminal snapshot: %w", err)
	}
	if snap.Version == 0 {
		snap.Version = SnapshotVersion
	}
	if snap.Version > SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, snap.Version, SnapshotVersion)
	}
	return snap, nil
}

func sanitizeWatchlist(in []WatchlistEntry) []WatchlistEntry {
	out := make([]WatchlistEntry, 0, len(in))
	seen := make(map[int]bool, len(in))
	for _, e := range in {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}

func sanitizeRecent(in []int) []int {
	out := make([]int, 0, min(len(in), MaxRecentlyViewed))
	seen := make(map[int]bool, len(in))
	for _, id := range in {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == MaxRecentlyViewed {
			break
		}
	}
	return out
}

func sanitizeLayout(l Layout, fallback Layout) Layout {
	if !l.Preset.Valid() {
		l.Preset = fallback.Preset
	}
	if l.LeftSize == 0 {
		l.LeftSize = fallback.LeftSize
	}
	if l.RightSize == 0 {
		l.RightSize = fallback.RightSize
	}
	l.LeftSize = clamp(l.LeftSize, MinLeftSize, MaxLeftSize)
	l.RightSize = clamp(l.RightSize, MinRightSize, MaxRightSize)
	if l.CenterPanels == nil {
		l.CenterPanels = fallback.CenterPanels
	}
	return l.clone()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
