package model

import (
	"courtside/internal/panels"
	"slices"
)

// pickerCategories orders the picker sections.
var pickerCategories = []panels.Category{
	panels.CategoryPlayer,
	panels.CategoryComparison,
	panels.CategoryMarket,
	panels.CategorySchedule,
}

// PickerItems returns the panels offered by the center panel picker,
// grouped by category.
func PickerItems() []panels.Definition {
	var out []panels.Definition
	for _, cat := range pickerCategories {
		out = append(out, panels.ByCategory(cat)...)
	}
	return out
}

// OpenPanelPicker starts the picker from the current center panels.
func (m *Model) OpenPanelPicker() {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = ModePanelPicker
	m.PickerCursor = 0
	m.PickerSelected = panels.Valid(m.State.Layout().CenterPanels)
}

// MovePickerCursor moves the cursor by delta, stopping at either end.
func (m *Model) MovePickerCursor(delta int) {
	n := len(PickerItems())
	m.PickerCursor = max(0, min(n-1, m.PickerCursor+delta))
}

// TogglePickerItem adds the panel under the cursor to the end of the
// selection, or removes it if already selected.
func (m *Model) TogglePickerItem() {
	items := PickerItems()
	if m.PickerCursor < 0 || m.PickerCursor >= len(items) {
		return
	}
	id := items[m.PickerCursor].ID
	if i := slices.Index(m.PickerSelected, id); i >= 0 {
		m.PickerSelected = slices.Delete(m.PickerSelected, i, i+1)
		return
	}
	m.PickerSelected = append(m.PickerSelected, id)
}

// ApplyPanelPicker writes the selection to the layout and closes the
// picker. An empty selection is rejected and the picker stays open.
func (m *Model) ApplyPanelPicker() bool {
	ids := panels.Valid(m.PickerSelected)
	if len(ids) == 0 {
		return false
	}
	m.State.SetCenterPanels(ids)
	m.CurrentAppMode = ModeMainDashboard
	return true
}
