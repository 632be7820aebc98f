package components

import (
	"courtside/internal/tui/design"
	"courtside/internal/tui/utils"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with a title line and clipped content. Width and
// Height are the outer dimensions including the border.
type Panel struct {
	Title   string
	Icon    string
	Content string
	Width   int
	Height  int
	Focused bool
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithIcon sets the icon shown before the title
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerSize returns the content area available inside the frame.
func (p *Panel) InnerSize() (width, height int) {
	style := p.style()
	w := max(p.Width, design.MinPanelWidth) - style.GetHorizontalFrameSize()
	h := max(p.Height, design.MinPanelHeight) - style.GetVerticalFrameSize()
	return max(w, 1), max(h, 1)
}

// Render returns the styled panel
func (p *Panel) Render() string {
	width := max(p.Width, design.MinPanelWidth)
	height := max(p.Height, design.MinPanelHeight)
	style := p.style()
	innerWidth, innerHeight := p.InnerSize()

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 && len(contentLines) > available {
			contentLines = append(contentLines[:available-1], design.DimStyle.Render("…"))
		}
		for _, line := range contentLines {
			lines = append(lines, utils.TruncateString(line, innerWidth))
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) style() lipgloss.Style {
	if p.Focused {
		return design.PanelFocusedStyle
	}
	return design.PanelStyle
}

func (p *Panel) renderTitle(width int) string {
	title := p.Title
	if p.Icon != "" {
		title = p.Icon + " " + title
	}
	style := design.TitleStyle
	if p.Focused {
		style = style.Foreground(design.ColorPrimary)
	}
	return style.Render(utils.TruncateString(title, width))
}
