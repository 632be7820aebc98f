package command

import (
	"courtside/internal/panels"
	"courtside/internal/terminal"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// maxCompletions caps the candidates returned for player names.
const maxCompletions = 8

// Spec documents one command for help output.
type Spec struct {
	Name        string
	Usage       string
	Description string
}

// Specs lists every command in help order.
var Specs = []Spec{
	{Name: "window", Usage: ":window <season|l5|l10|l20>", Description: "switch the stat window"},
	{Name: "layout", Usage: ":layout <default|chart|comparison|data>", Description: "select a layout preset"},
	{Name: "compare", Usage: ":compare <player name>", Description: "add a player to the comparison set"},
	{Name: "focus", Usage: ":focus <player name>", Description: "focus a player"},
	{Name: "clear", Usage: ":clear", Description: "empty the comparison set"},
	{Name: "uncompare", Usage: ":uncompare <player name|id>", Description: "remove a player from the comparison set"},
	{Name: "watch", Usage: ":watch <player name>", Description: "add a player to the watchlist"},
	{Name: "unwatch", Usage: ":unwatch <player name|id>", Description: "remove a player from the watchlist"},
	{Name: "unfocus", Usage: ":unfocus", Description: "clear the focused player"},
	{Name: "panels", Usage: ":panels <panel id>...", Description: "choose the center panels, top to bottom"},
}

// Complete returns full-line candidates for input. Command names complete
// on the first token; window and layout arguments complete from their
// enums; player arguments complete from names using fuzzy matching and
// :panels completes its last id from the panel catalog.
func Complete(input string, names []string) []string {
	trimmed := strings.TrimLeft(input, " ")
	head, rest, hasArgs := strings.Cut(trimmed, " ")
	token := strings.ToLower(strings.TrimPrefix(head, ":"))

	if !hasArgs {
		var out []string
		for _, s := range Specs {
			if strings.HasPrefix(s.Name, token) {
				out = append(out, ":"+s.Name+" ")
			}
		}
		return out
	}

	arg := strings.TrimSpace(rest)
	switch token {
	case "window":
		opts := make([]string, len(terminal.StatWindows))
		for i, w := range terminal.StatWindows {
			opts[i] = string(w)
		}
		return prefixed(":window ", opts, arg)
	case "layout":
		opts := make([]string, len(terminal.LayoutPresets))
		for i, p := range terminal.LayoutPresets {
			opts[i] = string(p)
		}
		return prefixed(":layout ", opts, arg)
	case "compare", "focus", "uncompare", "watch", "unwatch":
		return fuzzyNames(":"+token+" ", names, arg)
	case "panels":
		return panelIDs(rest)
	}
	return nil
}

func prefixed(prefix string, opts []string, arg string) []string {
	var out []string
	for _, o := range opts {
		if strings.HasPrefix(o, strings.ToLower(arg)) {
			out = append(out, prefix+o)
		}
	}
	return out
}

func fuzzyNames(prefix string, names []string, query string) []string {
	if query == "" {
		n := min(len(names), maxCompletions)
		out := make([]string, n)
		for i := 0; i < n; i++ {
			out[i] = prefix + names[i]
		}
		return out
	}
	matches := fuzzy.Find(query, names)
	out := make([]string, 0, min(len(matches), maxCompletions))
	for _, m := range matches {
		if len(out) == maxCompletions {
			break
		}
		out = append(out, prefix+m.Str)
	}
	return out
}

// panelIDs completes the last id of a :panels argument list.
func panelIDs(rest string) []string {
	fields := strings.Fields(rest)
	last := ""
	if len(fields) > 0 && !strings.HasSuffix(rest, " ") {
		last = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}
	prefix := ":panels "
	if len(fields) > 0 {
		prefix += strings.Join(fields, " ") + " "
	}
	var out []string
	for _, d := range panels.All() {
		if strings.HasPrefix(d.ID, strings.ToLower(last)) && !slices.Contains(fields, d.ID) {
			out = append(out, prefix+d.ID)
		}
	}
	return out
}
