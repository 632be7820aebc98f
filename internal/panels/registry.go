package panels

import "slices"

// Category groups panels in the picker.
type Category string

const (
	CategoryPlayer     Category = "player"
	CategoryComparison Category = "comparison"
	CategoryMarket     Category = "market"
	CategorySchedule   Category = "schedule"
)

// Definition describes one kind of panel the terminal can show.
type Definition struct {
	ID          string
	Name        string
	Icon        string
	Category    Category
	Description string
}

// Panel ids referenced from layouts and the view.
const (
	PlayerDetail = "player-detail"
	GameLog      = "game-log"
	StatChart    = "stat-chart"
	Comparison   = "comparison"
	Trending     = "trending"
	Watchlist    = "watchlist"
	Recent       = "recent"
	Schedule     = "schedule"
)

var definitions = []Definition{
	{ID: PlayerDetail, Name: "Player Detail", Icon: "◉", Category: CategoryPlayer, Description: "Averages for the focused player over the active stat window"},
	{ID: GameLog, Name: "Game Log", Icon: "≡", Category: CategoryPlayer, Description: "Recent box scores for the focused player"},
	{ID: StatChart, Name: "Stat Chart", Icon: "▤", Category: CategoryPlayer, Description: "Per-game fantasy points for the focused player"},
	{ID: Comparison, Name: "Comparison", Icon: "⇄", Category: CategoryComparison, Description: "Side-by-side stats for up to four players"},
	{ID: Trending, Name: "Trending", Icon: "↗", Category: CategoryMarket, Description: "Ranked players and their rank movement"},
	{ID: Watchlist, Name: "Watchlist", Icon: "★", Category: CategoryMarket, Description: "Players you saved, oldest first"},
	{ID: Recent, Name: "Recently Viewed", Icon: "↺", Category: CategoryPlayer, Description: "Players you focused most recently"},
	{ID: Schedule, Name: "Schedule", Icon: "▦", Category: CategorySchedule, Description: "Upcoming games for the focused player's team"},
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, d := range definitions {
		m[d.ID] = d
	}
	return m
}()

// Get looks up a panel by id.
func Get(id string) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}

// ByCategory returns the panels in cat in catalog order.
func ByCategory(cat Category) []Definition {
	var out []Definition
	for _, d := range definitions {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// All returns every panel in catalog order.
func All() []Definition {
	return slices.Clone(definitions)
}

// Valid keeps the known ids from ids, in order and without duplicates.
func Valid(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := byID[id]; ok && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
