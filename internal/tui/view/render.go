package view

import (
	"courtside/internal/layout"
	"courtside/internal/panels"
	"courtside/internal/tui/components"
	"courtside/internal/tui/design"
	"courtside/internal/tui/model"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render is the main view function that renders the entire UI
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		msg := m.QuittingMessage
		if msg == "" {
			msg = "Saving layout and watchlist..."
		}
		return design.TextSecondaryStyle.Render(msg)
	}

	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing...")
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModePanelPicker:
		return renderPanelPicker(m)
	case model.ModeMainDashboard:
		return renderMainDashboard(m)
	default:
		return design.TextErrorStyle.Render(fmt.Sprintf("Unhandled application mode: %s", m.CurrentAppMode))
	}
}

func renderMainDashboard(m *model.Model) string {
	header := renderHeader(m)
	input := renderCommandInput(m)
	statusBar := renderStatusBar(m)

	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(input) - lipgloss.Height(statusBar)
	if bodyHeight < design.MinPanelHeight {
		bodyHeight = design.MinPanelHeight
	}

	body := renderBody(m, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, input, statusBar)
}

func renderHeader(m *model.Model) string {
	l := m.State.Layout()
	h := components.NewHeader("courtside").
		WithSubtitle(fmt.Sprintf("%s · %s", m.State.StatWindow().Label(), l.Preset)).
		WithWidth(m.Width)
	if m.Loading() {
		h.WithSpinner(m.Spinner.View())
	}
	if id, ok := m.State.FocusedPlayer(); ok {
		h.WithRightContent(design.EmphasisStyle.Render(m.PlayerName(id)))
	}
	return h.Render()
}

// renderBody lays out the left, center and right regions side by side.
func renderBody(m *model.Model, height int) string {
	l := m.State.Layout()
	leftW, centerW, rightW := layout.Widths(l, m.Width, design.MinPanelWidth)

	var left, right string
	if leftW > 0 {
		left = renderStack(m, []string{panels.Watchlist, panels.Recent}, leftW, height)
	}
	if rightW > 0 {
		right = renderStack(m, []string{panels.Trending}, rightW, height)
	}
	center := renderStack(m, l.CenterPanels, centerW, height)

	return components.JoinHorizontal(0, left, center, right)
}

// renderStack renders ids top to bottom, sharing height between them. Ids
// that do not name a panel are skipped.
func renderStack(m *model.Model, ids []string, width, height int) string {
	var defs []panels.Definition
	for _, id := range ids {
		if def, ok := panels.Get(id); ok {
			defs = append(defs, def)
		}
	}
	if len(defs) == 0 {
		p := components.NewPanel("Empty").
			WithDimensions(width, height).
			WithContent(design.DimStyle.Render("No panels selected"))
		return p.Render()
	}

	heights := components.SplitHeights(height, len(defs), design.MinPanelHeight)
	rendered := make([]string, 0, len(heights))
	for i, h := range heights {
		rendered = append(rendered, renderPanel(m, defs[i], width, h))
	}
	return components.JoinVertical(rendered...)
}

func renderPanel(m *model.Model, def panels.Definition, width, height int) string {
	p := components.NewPanel(def.Name).
		WithIcon(def.Icon).
		WithDimensions(width, height)
	innerW, _ := p.InnerSize()
	p.WithContent(panelContent(m, def.ID, innerW))
	return p.Render()
}

func renderCommandInput(m *model.Model) string {
	style := design.InputStyle
	if m.InputFocused() {
		style = design.InputFocusedStyle
	}
	var content string
	if m.InputFocused() {
		content = m.CommandInput.View()
	} else {
		content = design.DimStyle.Render("press / to enter a command")
	}
	return style.Width(max(m.Width-style.GetHorizontalBorderSize(), 1)).Render(content)
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width)
	if m.StatusBarMessage != "" {
		return bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType).Render()
	}

	var hints []string
	for _, b := range m.Keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	l := m.State.Layout()
	right := fmt.Sprintf("L%d C%d R%d", l.LeftSize, l.CenterSize(), l.RightSize)
	return bar.WithLeftText(strings.Join(hints, " • ")).WithRightText(right).Render()
}
