package command

import (
	"context"
	"courtside/internal/api"
	"courtside/internal/panels"
	"courtside/internal/terminal"
	"courtside/pkg/logging"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const interpreterSubsystem = "Command"

// FeedbackDuration is how long the UI shows command feedback before
// clearing it.
const FeedbackDuration = 2 * time.Second

// PlayerSource supplies the ranked player list used for name lookup.
type PlayerSource interface {
	RankedPlayers(ctx context.Context) ([]api.Player, error)
}

// LookupError reports a name query that matched no player.
type LookupError struct {
	Query string
}

func (e *LookupError) Error() string {
	return "Player not found: " + e.Query
}

// Result is the outcome of one Execute call.
type Result struct {
	// Feedback is the short message to show the user.
	Feedback string
	// Command is the parsed command, nil when parsing failed.
	Command Command
	// Err is a *ParseError, a *LookupError or a backend error.
	Err error
}

// OK reports whether the command ran.
func (r Result) OK() bool {
	return r.Err == nil
}

// Interpreter parses command lines and applies them to a State.
type Interpreter struct {
	state   *terminal.State
	players PlayerSource
}

// NewInterpreter creates an Interpreter. players may be nil, in which case
// :compare and :focus report a lookup failure.
func NewInterpreter(state *terminal.State, players PlayerSource) *Interpreter {
	return &Interpreter{state: state, players: players}
}

// Execute runs raw and returns the feedback to display. Every non-blank
// input is recorded in the command history, whether or not it succeeded.
func (in *Interpreter) Execute(ctx context.Context, raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return Result{}
	}
	defer in.state.AddToCommandHistory(raw)

	cmd, err := Parse(raw)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			logging.Debug(interpreterSubsystem, "parse failed for %q: %s", raw, pe.Feedback())
			return Result{Feedback: pe.Feedback(), Err: err}
		}
		return Result{Feedback: err.Error(), Err: err}
	}

	res := in.apply(ctx, cmd)
	res.Command = cmd
	return res
}

func (in *Interpreter) apply(ctx context.Context, cmd Command) Result {
	switch c := cmd.(type) {
	case WindowCommand:
		in.state.SetStatWindow(c.Window)
		return Result{Feedback: "Stat window: " + c.Window.Label()}

	case LayoutCommand:
		in.state.SetLayoutPreset(c.Preset)
		return Result{Feedback: "Layout: " + string(c.Preset)}

	case CompareCommand:
		p, res, ok := in.lookup(ctx, c.Query)
		if !ok {
			return res
		}
		return Result{Feedback: CompareFeedback(in.state, p.ID, p.Name, in.state.AddToComparison(p.ID))}

	case FocusCommand:
		p, res, ok := in.lookup(ctx, c.Query)
		if !ok {
			return res
		}
		in.state.SetFocusedPlayer(p.ID)
		return Result{Feedback: "Focused " + p.Name}

	case ClearCommand:
		in.state.ClearComparison()
		return Result{Feedback: "Comparison cleared"}

	case UncompareCommand:
		id, name, res, ok := in.resolve(ctx, c.Query)
		if !ok {
			return res
		}
		if !in.state.RemoveFromComparison(id) {
			return Result{Feedback: name + " is not in comparison"}
		}
		return Result{Feedback: "Removed " + name + " from comparison"}

	case WatchCommand:
		p, res, ok := in.lookup(ctx, c.Query)
		if !ok {
			return res
		}
		return Result{Feedback: WatchFeedback(p.Name, in.state.AddToWatchlist(p.ID))}

	case UnwatchCommand:
		id, name, res, ok := in.resolve(ctx, c.Query)
		if !ok {
			return res
		}
		if !in.state.RemoveFromWatchlist(id) {
			return Result{Feedback: name + " is not on the watchlist"}
		}
		return Result{Feedback: "Removed " + name + " from watchlist"}

	case UnfocusCommand:
		if !in.state.ClearFocusedPlayer() {
			return Result{Feedback: "No player focused"}
		}
		return Result{Feedback: "Focus cleared"}

	case PanelsCommand:
		in.state.SetCenterPanels(c.IDs)
		names := make([]string, 0, len(c.IDs))
		for _, id := range c.IDs {
			if d, ok := panels.Get(id); ok {
				names = append(names, d.Name)
			}
		}
		return Result{Feedback: "Center panels: " + strings.Join(names, ", ")}
	}

	err := fmt.Errorf("unhandled command %T", cmd)
	return Result{Feedback: err.Error(), Err: err}
}

func (in *Interpreter) lookup(ctx context.Context, query string) (api.Player, Result, bool) {
	if in.players == nil {
		err := errors.New("no player source configured")
		return api.Player{}, Result{Feedback: "Player lookup failed: " + err.Error(), Err: err}, false
	}
	players, err := in.players.RankedPlayers(ctx)
	if err != nil {
		logging.Error(interpreterSubsystem, err, "ranked player lookup for %q failed", query)
		return api.Player{}, Result{Feedback: "Player lookup failed: " + err.Error(), Err: err}, false
	}
	p, ok := api.FindPlayer(players, query)
	if !ok {
		err := &LookupError{Query: query}
		return api.Player{}, Result{Feedback: err.Error(), Err: err}, false
	}
	return p, Result{}, true
}

// resolve turns a removal query into a player id. A number, optionally
// prefixed with '#', is taken as the id itself so players that dropped out
// of the rankings can still be removed.
func (in *Interpreter) resolve(ctx context.Context, query string) (int, string, Result, bool) {
	if id, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		name := fmt.Sprintf("#%d", id)
		if in.players != nil {
			if players, err := in.players.RankedPlayers(ctx); err == nil {
				if p, ok := api.PlayerByID(players, id); ok {
					name = p.Name
				}
			}
		}
		return id, name, Result{}, true
	}
	p, res, ok := in.lookup(ctx, query)
	if !ok {
		return 0, "", res, false
	}
	return p.ID, p.Name, Result{}, true
}

// CompareFeedback describes the outcome of adding id to the comparison set.
// added is the value AddToComparison returned.
func CompareFeedback(state *terminal.State, id int, name string, added bool) string {
	switch {
	case added:
		return "Comparing " + name
	case state.InComparison(id):
		return name + " is already in comparison"
	default:
		return fmt.Sprintf("Comparison full (max %d)", terminal.MaxComparison)
	}
}

// WatchFeedback describes the outcome of adding a player to the watchlist.
func WatchFeedback(name string, added bool) string {
	if !added {
		return name + " is already on the watchlist"
	}
	return "Watching " + name
}
