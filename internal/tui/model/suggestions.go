package model

import (
	"courtside/internal/command"
	"strings"
)

// RefreshSuggestions recomputes the command input's completion candidates
// from its current value. textinput shows the first candidate sharing the
// typed prefix and accepts it with tab. The leading colon is optional in
// the input, so candidates follow whatever the user typed.
func (m *Model) RefreshSuggestions() {
	value := m.CommandInput.Value()
	names := make([]string, len(m.Players))
	for i, p := range m.Players {
		names[i] = p.Name
	}

	colon := strings.HasPrefix(value, ":")
	var out []string
	for _, cand := range command.Complete(":"+strings.TrimPrefix(value, ":"), names) {
		if !colon {
			cand = strings.TrimPrefix(cand, ":")
		}
		out = append(out, cand)
	}
	m.CommandInput.SetSuggestions(out)
}
