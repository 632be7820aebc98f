package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString cuts s to at most width terminal cells, ending in "…" when
// anything was dropped. ANSI-styled input is measured with lipgloss.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if strings.Contains(s, "\x1b[") {
		// styled text: let lipgloss cut it without breaking escape codes
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to exactly width cells, truncating if needed.
func PadRight(s string, width int) string {
	s = TruncateString(s, width)
	return s + strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}

// PadLeft right-aligns s in width cells.
func PadLeft(s string, width int) string {
	s = TruncateString(s, width)
	return strings.Repeat(" ", max(0, width-runewidth.StringWidth(s))) + s
}
