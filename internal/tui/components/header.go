package components

import (
	"courtside/internal/tui/design"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	SpinnerView  string
	RightContent string
	Width        int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{Title: title, Width: 80}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows a spinner in the header
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	var left []string
	if h.SpinnerView != "" {
		left = append(left, h.SpinnerView)
	}
	left = append(left, design.EmphasisStyle.Render(h.Title))
	if h.Subtitle != "" {
		left = append(left, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	leftContent := strings.Join(left, " ")

	style := design.HeaderStyle
	avail := h.Width - style.GetHorizontalFrameSize()
	content := leftContent
	if h.RightContent != "" {
		if pad := avail - lipgloss.Width(leftContent) - lipgloss.Width(h.RightContent); pad > 0 {
			content = leftContent + strings.Repeat(" ", pad) + h.RightContent
		}
	}
	return style.Width(h.Width).MaxWidth(h.Width).Render(content)
}
