package terminal

import (
	"fmt"
	"strings"
	"time"
)

// Collection bounds.
const (
	MaxComparison     = 4
	MaxRecentlyViewed = 20
	MaxCommandHistory = 50
)

// Panel size bounds, in percent of the total terminal width.
const (
	MinLeftSize  = 15
	MaxLeftSize  = 40
	MinRightSize = 15
	MaxRightSize = 35

	DefaultLeftSize  = 25
	DefaultRightSize = 25
)

// StatWindow is the aggregation horizon applied to displayed statistics.
type StatWindow string

const (
	WindowSeason StatWindow = "season"
	WindowL5     StatWindow = "l5"
	WindowL10    StatWindow = "l10"
	WindowL20    StatWindow = "l20"
)

// StatWindows lists every window in display order.
var StatWindows = []StatWindow{WindowSeason, WindowL5, WindowL10, WindowL20}

// ParseStatWindow accepts a window name in any case.
func ParseStatWindow(s string) (StatWindow, error) {
	w := StatWindow(strings.ToLower(strings.TrimSpace(s)))
	if w.Valid() {
		return w, nil
	}
	return "", fmt.Errorf("invalid stat window %q", s)
}

// Valid reports whether w is one of the known windows.
func (w StatWindow) Valid() bool {
	switch w {
	case WindowSeason, WindowL5, WindowL10, WindowL20:
		return true
	}
	return false
}

// Label is the upper-cased form shown in the UI ("L10", "SEASON").
func (w StatWindow) Label() string {
	return strings.ToUpper(string(w))
}

// LayoutPreset names a bundle of left/right panel visibility defaults.
type LayoutPreset string

const (
	PresetDefault    LayoutPreset = "default"
	PresetChart      LayoutPreset = "chart"
	PresetComparison LayoutPreset = "comparison"
	PresetData       LayoutPreset = "data"
)

// LayoutPresets lists every preset in F-key order.
var LayoutPresets = []LayoutPreset{PresetDefault, PresetChart, PresetComparison, PresetData}

// ParseLayoutPreset accepts a preset name in any case.
func ParseLayoutPreset(s string) (LayoutPreset, error) {
	p := LayoutPreset(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("invalid layout preset %q", s)
}

// Valid reports whether p is one of the known presets.
func (p LayoutPreset) Valid() bool {
	switch p {
	case PresetDefault, PresetChart, PresetComparison, PresetData:
		return true
	}
	return false
}

// Collapsed returns the collapse flags a preset derives for the left and
// right panels.
func (p LayoutPreset) Collapsed() (left, right bool) {
	switch p {
	case PresetChart:
		return false, true
	case PresetComparison:
		return true, false
	case PresetData:
		return true, true
	default:
		return false, false
	}
}

// Layout is the persisted panel arrangement. Sizes are whole percentages;
// the center region takes whatever the side panels leave.
type Layout struct {
	Preset         LayoutPreset `yaml:"preset" json:"preset"`
	LeftCollapsed  bool         `yaml:"leftCollapsed" json:"leftCollapsed"`
	RightCollapsed bool         `yaml:"rightCollapsed" json:"rightCollapsed"`
	LeftSize       int          `yaml:"leftSize" json:"leftSize"`
	RightSize      int          `yaml:"rightSize" json:"rightSize"`
	CenterPanels   []string     `yaml:"centerPanels" json:"centerPanels"`
}

// CenterSize is the share of the width left for the center region.
func (l Layout) CenterSize() int {
	return 100 - l.LeftSize - l.RightSize
}

func (l Layout) clone() Layout {
	l.CenterPanels = append([]string(nil), l.CenterPanels...)
	return l
}

// DefaultCenterPanels is the panel stack shown before the user picks one.
var DefaultCenterPanels = []string{"player-detail", "game-log"}

// DefaultLayout returns the layout used on first start.
func DefaultLayout() Layout {
	return Layout{
		Preset:       PresetDefault,
		LeftSize:     DefaultLeftSize,
		RightSize:    DefaultRightSize,
		CenterPanels: append([]string(nil), DefaultCenterPanels...),
	}
}

// WatchlistEntry is a saved player id with the time it was added.
type WatchlistEntry struct {
	ID      int       `yaml:"id" json:"id"`
	AddedAt time.Time `yaml:"addedAt" json:"addedAt"`
}

// Change is a bitmask describing which fields a mutation touched.
type Change uint16

const (
	ChangeFocus Change = 1 << iota
	ChangeComparison
	ChangeWatchlist
	ChangeRecentlyViewed
	ChangeLayout
	ChangeStatWindow
	ChangeCommandHistory
)

const persistedChanges = ChangeWatchlist | ChangeRecentlyViewed | ChangeLayout | ChangeStatWindow

// Has reports whether c includes every bit of other.
func (c Change) Has(other Change) bool {
	return c&other == other
}

// Persisted reports whether the change touched the persisted slice.
func (c Change) Persisted() bool {
	return c&persistedChanges != 0
}
