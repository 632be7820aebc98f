package view

import (
	"courtside/internal/panels"
	"courtside/internal/tui/design"
	"courtside/internal/tui/model"
	"courtside/pkg/logging"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	helpColumnSeparator = "  "
	helpColumnGap       = "    "
)

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Shortcuts")

	columns := m.Keys.FullHelp()
	keyWidths := make([]int, len(columns))
	descWidths := make([]int, len(columns))
	rows := 0
	for c, column := range columns {
		rows = max(rows, len(column))
		for _, b := range column {
			keyWidths[c] = max(keyWidths[c], lipgloss.Width(b.Help().Key))
			descWidths[c] = max(descWidths[c], lipgloss.Width(b.Help().Desc))
		}
	}

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c, column := range columns {
			cellWidth := keyWidths[c] + len(helpColumnSeparator) + descWidths[c]
			var cell string
			if r < len(column) {
				h := column[r].Help()
				cell = design.EmphasisStyle.Render(padTo(h.Key, keyWidths[c])) + helpColumnSeparator + h.Desc
			}
			if c < len(columns)-1 {
				cell = padTo(cell, cellWidth) + helpColumnGap
			}
			line.WriteString(cell)
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	footer := lipgloss.JoinVertical(lipgloss.Left,
		design.DimStyle.Render("Commands: :window <season|l5|l10|l20>  :layout <preset>  :compare <name>  :focus <name>  :clear"),
		design.DimStyle.Render("          :uncompare <name>  :watch <name>  :unwatch <name>  :unfocus  :panels <id>..."),
	)
	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), "", footer)
	overlay := design.OverlayStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, overlay)
}

func padTo(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// LogOverlaySize returns the viewport dimensions the log overlay uses for a
// terminal of width x height.
func LogOverlaySize(width, height int) (vpWidth, vpHeight int) {
	overlayWidth := width * 8 / 10
	overlayHeight := height * 7 / 10
	titleHeight := 1
	vpWidth = max(overlayWidth-design.OverlayStyle.GetHorizontalFrameSize(), 0)
	vpHeight = max(overlayHeight-design.OverlayStyle.GetVerticalFrameSize()-titleHeight, 0)
	return vpWidth, vpHeight
}

func renderLogOverlay(m *model.Model) string {
	title := design.TitleStyle.Render(logOverlayTitle(logging.Dropped()))
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := design.OverlayStyle.Render(content)
	canvas := lipgloss.Place(m.Width, max(m.Height-1, 1), lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m))
}

func logOverlayTitle(dropped int64) string {
	title := "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"
	if dropped > 0 {
		title += fmt.Sprintf("  %d dropped", dropped)
	}
	return title
}

func renderPanelPicker(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Center Panels")

	var lines []string
	var lastCat panels.Category
	for i, def := range model.PickerItems() {
		if def.Category != lastCat {
			if lastCat != "" {
				lines = append(lines, "")
			}
			lines = append(lines, design.DimStyle.Render(strings.ToUpper(string(def.Category))))
			lastCat = def.Category
		}

		mark := "[ ]"
		if n := slices.Index(m.PickerSelected, def.ID); n >= 0 {
			mark = fmt.Sprintf("[%d]", n+1)
		}
		line := fmt.Sprintf("%s %s %s", mark, def.Icon, def.Name)
		if i == m.PickerCursor {
			lines = append(lines, design.ListItemSelectedStyle.Render("> "+line)+"  "+design.DimStyle.Render(def.Description))
			continue
		}
		lines = append(lines, design.ListItemStyle.Render("  "+line))
	}

	footer := design.DimStyle.Render("↑/↓ move  •  space toggle  •  enter apply  •  Esc cancel")
	content := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), "", footer)
	overlay := design.OverlayStyle.Render(content)
	canvas := lipgloss.Place(m.Width, max(m.Height-1, 1), lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m))
}

// PrepareLogContent styles each activity log line by its level marker.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
