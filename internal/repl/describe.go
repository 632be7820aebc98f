package repl

import (
	"courtside/internal/command"
	"courtside/internal/terminal"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Help renders the command table.
func Help() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Commands:")
	for _, s := range command.Specs {
		fmt.Fprintf(tw, "  %s\t%s\n", s.Usage, s.Description)
	}
	fmt.Fprintf(tw, "  %s\t%s\n", "state", "show the current terminal state")
	fmt.Fprintf(tw, "  %s\t%s\n", "help", "show this help")
	fmt.Fprintf(tw, "  %s\t%s\n", "exit, quit", "leave")
	tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// Describe renders a human summary of s.
func Describe(s *terminal.State) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	focus := "-"
	if id, ok := s.FocusedPlayer(); ok {
		focus = strconv.Itoa(id)
	}
	l := s.Layout()

	fmt.Fprintf(tw, "Focused:\t%s\n", focus)
	fmt.Fprintf(tw, "Comparison:\t%s\n", ints(s.Comparison()))
	watch := s.Watchlist()
	ids := make([]int, len(watch))
	for i, e := range watch {
		ids[i] = e.ID
	}
	fmt.Fprintf(tw, "Watchlist:\t%s\n", ints(ids))
	fmt.Fprintf(tw, "Recently viewed:\t%s\n", ints(s.RecentlyViewed()))
	fmt.Fprintf(tw, "Stat window:\t%s\n", s.StatWindow().Label())
	fmt.Fprintf(tw, "Layout:\t%s (left %d%%%s, center %d%%, right %d%%%s)\n",
		l.Preset,
		l.LeftSize, collapsed(l.LeftCollapsed),
		l.CenterSize(),
		l.RightSize, collapsed(l.RightCollapsed))
	fmt.Fprintf(tw, "Center panels:\t%s\n", strings.Join(l.CenterPanels, ", "))
	tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func collapsed(c bool) string {
	if c {
		return " collapsed"
	}
	return ""
}

func ints(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
