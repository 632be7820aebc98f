package layout

import (
	"courtside/internal/terminal"
	"strings"
)

// DefaultStep is the resize increment in percentage points.
const DefaultStep = 5

// Sizes is the width split between the three regions, in percent.
// Left + Center + Right is always 100.
type Sizes struct {
	Left   int
	Center int
	Right  int
}

// Controller turns keyboard-level layout actions into State mutations.
// The center region is the only buffer: every resize trades space between
// one side panel and the center.
type Controller struct {
	state *terminal.State
	step  int
}

// NewController creates a controller resizing by step points; step <= 0
// falls back to DefaultStep.
func NewController(state *terminal.State, step int) *Controller {
	if step <= 0 {
		step = DefaultStep
	}
	return &Controller{state: state, step: step}
}

// Step returns the resize increment.
func (c *Controller) Step() int {
	return c.step
}

// Sizes returns the current split.
func (c *Controller) Sizes() Sizes {
	l := c.state.Layout()
	return Sizes{Left: l.LeftSize, Center: l.CenterSize(), Right: l.RightSize}
}

// ShrinkLeft moves one step from the left panel to the center.
func (c *Controller) ShrinkLeft() bool {
	return c.resizeLeft(-c.step)
}

// GrowLeft moves one step from the center to the left panel.
func (c *Controller) GrowLeft() bool {
	return c.resizeLeft(c.step)
}

// ShrinkRight moves one step from the right panel to the center.
func (c *Controller) ShrinkRight() bool {
	return c.resizeRight(-c.step)
}

// GrowRight moves one step from the center to the right panel.
func (c *Controller) GrowRight() bool {
	return c.resizeRight(c.step)
}

func (c *Controller) resizeLeft(delta int) bool {
	l := c.state.Layout()
	if l.LeftCollapsed {
		return false
	}
	next := Clamp(l.LeftSize+delta, terminal.MinLeftSize, terminal.MaxLeftSize)
	if next == l.LeftSize {
		return false
	}
	c.state.SetLeftPanelSize(next)
	return true
}

func (c *Controller) resizeRight(delta int) bool {
	l := c.state.Layout()
	if l.RightCollapsed {
		return false
	}
	next := Clamp(l.RightSize+delta, terminal.MinRightSize, terminal.MaxRightSize)
	if next == l.RightSize {
		return false
	}
	c.state.SetRightPanelSize(next)
	return true
}

// ApplyPreset selects p, resetting any manual toggles.
func (c *Controller) ApplyPreset(p terminal.LayoutPreset) {
	c.state.SetLayoutPreset(p)
}

// ToggleLeft collapses or expands the left panel.
func (c *Controller) ToggleLeft() {
	c.state.ToggleLeftPanel()
}

// ToggleRight collapses or expands the right panel.
func (c *Controller) ToggleRight() {
	c.state.ToggleRightPanel()
}

// PresetForKey maps F1–F4 to the four presets.
func PresetForKey(key string) (terminal.LayoutPreset, bool) {
	switch strings.ToLower(key) {
	case "f1":
		return terminal.PresetDefault, true
	case "f2":
		return terminal.PresetChart, true
	case "f3":
		return terminal.PresetComparison, true
	case "f4":
		return terminal.PresetData, true
	}
	return "", false
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Widths converts the layout percentages into columns for a terminal of
// total columns. Collapsed panels get zero width and give their share to the
// center. A side panel that would be narrower than minWidth is dropped.
func Widths(l terminal.Layout, total, minWidth int) (left, center, right int) {
	if total <= 0 {
		return 0, 0, 0
	}
	if !l.LeftCollapsed {
		left = total * l.LeftSize / 100
		if left < minWidth {
			left = 0
		}
	}
	if !l.RightCollapsed {
		right = total * l.RightSize / 100
		if right < minWidth {
			right = 0
		}
	}
	center = total - left - right
	if center < minWidth && (left > 0 || right > 0) {
		// Too narrow for three regions: keep only the center.
		return 0, total, 0
	}
	return left, center, right
}
