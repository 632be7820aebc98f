package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SplitHeights divides total rows among n stacked panels. Earlier panels
// absorb the remainder; every panel gets at least minHeight when possible.
func SplitHeights(total, n, minHeight int) []int {
	if n <= 0 {
		return nil
	}
	if total < n*minHeight {
		// Not enough room for all; show as many as fit.
		fit := max(1, total/max(minHeight, 1))
		n = min(n, fit)
	}
	heights := make([]int, n)
	base, rem := total/n, total%n
	for i := range heights {
		heights[i] = base
		if i < rem {
			heights[i]++
		}
	}
	return heights
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	var parts []string
	for _, comp := range components {
		if comp == "" {
			continue
		}
		if gap > 0 && len(parts) > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		parts = append(parts, comp)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}
