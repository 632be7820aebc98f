package api

import (
	"context"
	"courtside/internal/terminal"
	"strings"
)

// Player is one row of the ranked player list.
type Player struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Average   float64 `json:"average"`
	Rank      int     `json:"rank"`
	RankDelta int     `json:"rankDelta"`
}

// StatLine is a player's per-game averages over a stat window.
type StatLine struct {
	PlayerID      int                 `json:"playerId"`
	Window        terminal.StatWindow `json:"window"`
	Games         int                 `json:"games"`
	Minutes       float64             `json:"minutes"`
	Points        float64             `json:"points"`
	Rebounds      float64             `json:"rebounds"`
	Assists       float64             `json:"assists"`
	Steals        float64             `json:"steals"`
	Blocks        float64             `json:"blocks"`
	Turnovers     float64             `json:"turnovers"`
	Threes        float64             `json:"threes"`
	FGPct         float64             `json:"fgPct"`
	FTPct         float64             `json:"ftPct"`
	FantasyPoints float64             `json:"fantasyPoints"`
}

// GameLogEntry is a single box score line.
type GameLogEntry struct {
	Date          string  `json:"date"`
	Opponent      string  `json:"opponent"`
	Home          bool    `json:"home"`
	Minutes       float64 `json:"minutes"`
	Points        int     `json:"points"`
	Rebounds      int     `json:"rebounds"`
	Assists       int     `json:"assists"`
	Steals        int     `json:"steals"`
	Blocks        int     `json:"blocks"`
	FantasyPoints float64 `json:"fantasyPoints"`
}

// Backend is the subset of the fantasy backend the terminal reads from.
type Backend interface {
	RankedPlayers(ctx context.Context) ([]Player, error)
	PlayerStats(ctx context.Context, id int, window terminal.StatWindow) (StatLine, error)
	GameLog(ctx context.Context, id int, limit int) ([]GameLogEntry, error)
}

// FindPlayer returns the first player in players whose name contains query,
// ignoring case. Ranked order decides ties.
func FindPlayer(players []Player, query string) (Player, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Player{}, false
	}
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return p, true
		}
	}
	return Player{}, false
}

// PlayerByID returns the player with id, if present.
func PlayerByID(players []Player, id int) (Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
