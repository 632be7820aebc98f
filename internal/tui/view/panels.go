package view

import (
	"courtside/internal/api"
	"courtside/internal/panels"
	"courtside/internal/terminal"
	"courtside/internal/tui/design"
	"courtside/internal/tui/model"
	"courtside/internal/tui/utils"
	"fmt"
	"strings"
)

// panelContent renders the body of the panel id for an inner width.
func panelContent(m *model.Model, id string, width int) string {
	switch id {
	case panels.PlayerDetail:
		return renderPlayerDetail(m)
	case panels.GameLog:
		return renderGameLog(m, width)
	case panels.StatChart:
		return renderStatChart(m, width)
	case panels.Comparison:
		return renderComparison(m, width)
	case panels.Trending:
		return renderTrending(m, width)
	case panels.Watchlist:
		return renderWatchlist(m, width)
	case panels.Recent:
		return renderRecent(m, width)
	case panels.Schedule:
		return design.DimStyle.Render("Schedule data is not available from this backend.")
	default:
		return design.DimStyle.Render("Unknown panel " + id)
	}
}

func noFocus() string {
	return design.DimStyle.Render("No player focused. Try :focus <name>")
}

func errorLine(err error) string {
	return design.TextErrorStyle.Render("Error: " + err.Error())
}

func loadingLine() string {
	return design.DimStyle.Render("Loading...")
}

func renderPlayerDetail(m *model.Model) string {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return noFocus()
	}
	key := model.StatsKey{PlayerID: id, Window: m.State.StatWindow()}
	if err := m.StatsErr[key]; err != nil {
		return errorLine(err)
	}
	stats, ok := m.Stats[key]
	if !ok {
		return loadingLine()
	}

	var b strings.Builder
	title := m.PlayerName(id)
	if p, found := api.PlayerByID(m.Players, id); found {
		title = fmt.Sprintf("%s  %s  #%d", p.Name, p.Team, p.Rank)
	}
	b.WriteString(design.EmphasisStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(design.TextSecondaryStyle.Render(fmt.Sprintf("%s · %d games", key.Window.Label(), stats.Games)))
	b.WriteString("\n")

	rows := [][2]string{
		{"FP", fmt.Sprintf("%.1f", stats.FantasyPoints)},
		{"MIN", fmt.Sprintf("%.1f", stats.Minutes)},
		{"PTS", fmt.Sprintf("%.1f", stats.Points)},
		{"REB", fmt.Sprintf("%.1f", stats.Rebounds)},
		{"AST", fmt.Sprintf("%.1f", stats.Assists)},
		{"STL", fmt.Sprintf("%.1f", stats.Steals)},
		{"BLK", fmt.Sprintf("%.1f", stats.Blocks)},
		{"TOV", fmt.Sprintf("%.1f", stats.Turnovers)},
		{"3PM", fmt.Sprintf("%.1f", stats.Threes)},
		{"FG%", fmt.Sprintf("%.1f", stats.FGPct*100)},
		{"FT%", fmt.Sprintf("%.1f", stats.FTPct*100)},
	}
	for _, r := range rows {
		b.WriteString(design.TableHeaderStyle.Render(utils.PadRight(r[0], 5)))
		b.WriteString(utils.PadLeft(r[1], 6))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGameLog(m *model.Model, width int) string {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return noFocus()
	}
	if err := m.GameLogErr[id]; err != nil {
		return errorLine(err)
	}
	entries, ok := m.GameLogs[id]
	if !ok {
		return loadingLine()
	}
	if len(entries) == 0 {
		return design.DimStyle.Render("No games played.")
	}

	lines := []string{design.TableHeaderStyle.Render(utils.TruncateString("DATE       OPP      MIN  PTS REB AST STL BLK    FP", width))}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-10s %-8s %3.0f  %3d %3d %3d %3d %3d %5.1f",
			e.Date, opponent(e), e.Minutes, e.Points, e.Rebounds, e.Assists, e.Steals, e.Blocks, e.FantasyPoints))
	}
	return strings.Join(lines, "\n")
}

func opponent(e api.GameLogEntry) string {
	if e.Home {
		return "vs " + e.Opponent
	}
	return "@ " + e.Opponent
}

// renderStatChart lists fantasy points per game with a bar scaled to the
// best game in the log.
func renderStatChart(m *model.Model, width int) string {
	id, ok := m.State.FocusedPlayer()
	if !ok {
		return noFocus()
	}
	if err := m.GameLogErr[id]; err != nil {
		return errorLine(err)
	}
	entries, ok := m.GameLogs[id]
	if !ok {
		return loadingLine()
	}
	if len(entries) == 0 {
		return design.DimStyle.Render("No games played.")
	}

	best := 0.0
	for _, e := range entries {
		best = max(best, e.FantasyPoints)
	}
	const label = 17 // "2024-01-01 00.0 "
	barWidth := max(width-label, 0)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%-10s %5.1f ", e.Date, e.FantasyPoints)
		if best > 0 && barWidth > 0 {
			n := int(e.FantasyPoints / best * float64(barWidth))
			line += design.EmphasisStyle.Render(strings.Repeat("█", max(n, 0)))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderComparison(m *model.Model, width int) string {
	ids := m.State.Comparison()
	if len(ids) == 0 {
		return design.DimStyle.Render("Comparison is empty. Press c or use :compare <name>")
	}
	window := m.State.StatWindow()

	colWidth := 8
	if cols := len(ids) + 1; width/cols > colWidth {
		colWidth = min(width/cols, 16)
	}

	header := []string{utils.PadRight(window.Label(), colWidth)}
	for _, id := range ids {
		header = append(header, utils.PadLeft(utils.TruncateString(m.PlayerName(id), colWidth-1), colWidth))
	}

	type stat struct {
		name string
		get  func(api.StatLine) float64
	}
	stats := []stat{
		{"FP", func(s api.StatLine) float64 { return s.FantasyPoints }},
		{"PTS", func(s api.StatLine) float64 { return s.Points }},
		{"REB", func(s api.StatLine) float64 { return s.Rebounds }},
		{"AST", func(s api.StatLine) float64 { return s.Assists }},
		{"STL", func(s api.StatLine) float64 { return s.Steals }},
		{"BLK", func(s api.StatLine) float64 { return s.Blocks }},
		{"TOV", func(s api.StatLine) float64 { return s.Turnovers }},
		{"MIN", func(s api.StatLine) float64 { return s.Minutes }},
	}

	lines := []string{design.TableHeaderStyle.Render(strings.Join(header, ""))}
	for _, st := range stats {
		row := []string{utils.PadRight(st.name, colWidth)}
		for _, id := range ids {
			row = append(row, utils.PadLeft(comparisonCell(m, id, window, st.get), colWidth))
		}
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}

func comparisonCell(m *model.Model, id int, window terminal.StatWindow, get func(api.StatLine) float64) string {
	key := model.StatsKey{PlayerID: id, Window: window}
	if m.StatsErr[key] != nil {
		return "err"
	}
	s, ok := m.Stats[key]
	if !ok {
		return "…"
	}
	return fmt.Sprintf("%.1f", get(s))
}

func renderTrending(m *model.Model, width int) string {
	if m.PlayersErr != nil {
		return errorLine(m.PlayersErr)
	}
	if m.Players == nil {
		return loadingLine()
	}
	if len(m.Players) == 0 {
		return design.DimStyle.Render("No ranked players.")
	}

	focused, hasFocus := m.State.FocusedPlayer()
	lines := make([]string, 0, len(m.Players))
	for _, p := range m.Players {
		arrow := design.TrendStyle(p.RankDelta).Render(utils.PadLeft(design.TrendArrow(p.RankDelta), 4))
		nameWidth := max(width-4-4-7, 4)
		name := utils.PadRight(utils.TruncateString(p.Name, nameWidth), nameWidth)
		line := fmt.Sprintf("%3d %s%s%6.1f", p.Rank, name, arrow, p.Average)
		if hasFocus && p.ID == focused {
			line = design.ListItemSelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderWatchlist(m *model.Model, width int) string {
	entries := m.State.Watchlist()
	if len(entries) == 0 {
		return design.DimStyle.Render("Watchlist is empty. Press w to add the focused player")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, listLine(m, e.ID, width))
	}
	return strings.Join(lines, "\n")
}

func renderRecent(m *model.Model, width int) string {
	ids := m.State.RecentlyViewed()
	if len(ids) == 0 {
		return design.DimStyle.Render("Nothing viewed yet.")
	}
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, listLine(m, id, width))
	}
	return strings.Join(lines, "\n")
}

// listLine renders one player in a side list, marking the focused and
// compared players.
func listLine(m *model.Model, id, width int) string {
	marker := "  "
	if m.State.InComparison(id) {
		marker = "⇄ "
	}
	line := marker + utils.TruncateString(m.PlayerName(id), max(width-2, 1))
	if focused, ok := m.State.FocusedPlayer(); ok && focused == id {
		return design.ListItemSelectedStyle.Render(line)
	}
	return design.ListItemStyle.Render(line)
}
