package command

import (
	"courtside/internal/panels"
	"courtside/internal/terminal"
	"fmt"
	"strings"
)

// Command is one parsed terminal command. The concrete types below are the
// only implementations.
type Command interface {
	Name() string
	isCommand()
}

// WindowCommand switches the stat window.
type WindowCommand struct {
	Window terminal.StatWindow
}

// LayoutCommand selects a layout preset.
type LayoutCommand struct {
	Preset terminal.LayoutPreset
}

// CompareCommand adds the first player matching Query to the comparison set.
type CompareCommand struct {
	Query string
}

// FocusCommand focuses the first player matching Query.
type FocusCommand struct {
	Query string
}

// ClearCommand empties the comparison set.
type ClearCommand struct{}

// UncompareCommand removes a player, by name or id, from the comparison set.
type UncompareCommand struct {
	Query string
}

// WatchCommand adds the first player matching Query to the watchlist.
type WatchCommand struct {
	Query string
}

// UnwatchCommand removes a player, by name or id, from the watchlist.
type UnwatchCommand struct {
	Query string
}

// UnfocusCommand clears the focused player.
type UnfocusCommand struct{}

// PanelsCommand replaces the center panel stack.
type PanelsCommand struct {
	IDs []string
}

func (WindowCommand) Name() string    { return "window" }
func (LayoutCommand) Name() string    { return "layout" }
func (CompareCommand) Name() string   { return "compare" }
func (FocusCommand) Name() string     { return "focus" }
func (ClearCommand) Name() string     { return "clear" }
func (UncompareCommand) Name() string { return "uncompare" }
func (WatchCommand) Name() string     { return "watch" }
func (UnwatchCommand) Name() string   { return "unwatch" }
func (UnfocusCommand) Name() string   { return "unfocus" }
func (PanelsCommand) Name() string    { return "panels" }

func (WindowCommand) isCommand()    {}
func (LayoutCommand) isCommand()    {}
func (CompareCommand) isCommand()   {}
func (FocusCommand) isCommand()     {}
func (ClearCommand) isCommand()     {}
func (UncompareCommand) isCommand() {}
func (WatchCommand) isCommand()     {}
func (UnwatchCommand) isCommand()   {}
func (UnfocusCommand) isCommand()   {}
func (PanelsCommand) isCommand()    {}

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	ErrKindEmpty ErrorKind = iota
	ErrKindUnknown
	ErrKindInvalidWindow
	ErrKindInvalidLayout
	ErrKindUsage
	ErrKindInvalidPanels
)

// ParseError describes input that does not form a command. Its Feedback is
// what the user sees.
type ParseError struct {
	Kind  ErrorKind
	Token string
	Args  []string
}

func (e *ParseError) Error() string {
	return e.Feedback()
}

// Feedback returns the user-facing message for the error.
func (e *ParseError) Feedback() string {
	switch e.Kind {
	case ErrKindEmpty:
		return "Empty command"
	case ErrKindInvalidWindow:
		return "Invalid window. Use: " + joinWindows()
	case ErrKindInvalidLayout:
		return "Invalid layout. Use: " + joinPresets()
	case ErrKindUsage:
		return fmt.Sprintf("Usage: :%s <player name>", e.Token)
	case ErrKindInvalidPanels:
		return "Invalid panels. Use: " + joinPanels()
	default:
		return "Unknown command: " + e.Token
	}
}

// Parse turns raw input into a Command. The first token, lowercased and with
// any leading colon removed, selects the command; the remaining
// whitespace-separated tokens are its arguments.
func Parse(raw string) (Command, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, &ParseError{Kind: ErrKindEmpty}
	}
	token := strings.ToLower(strings.TrimPrefix(fields[0], ":"))
	args := fields[1:]

	switch token {
	case "window":
		if len(args) == 0 {
			return nil, &ParseError{Kind: ErrKindInvalidWindow, Token: token}
		}
		w, err := terminal.ParseStatWindow(args[0])
		if err != nil {
			return nil, &ParseError{Kind: ErrKindInvalidWindow, Token: token, Args: args}
		}
		return WindowCommand{Window: w}, nil

	case "layout":
		if len(args) == 0 {
			return nil, &ParseError{Kind: ErrKindInvalidLayout, Token: token}
		}
		p, err := terminal.ParseLayoutPreset(args[0])
		if err != nil {
			return nil, &ParseError{Kind: ErrKindInvalidLayout, Token: token, Args: args}
		}
		return LayoutCommand{Preset: p}, nil

	case "compare", "focus":
		if len(args) == 0 {
			return nil, &ParseError{Kind: ErrKindUsage, Token: token}
		}
		query := strings.Join(args, " ")
		if token == "compare" {
			return CompareCommand{Query: query}, nil
		}
		return FocusCommand{Query: query}, nil

	case "clear":
		return ClearCommand{}, nil

	case "watch", "unwatch", "uncompare":
		if len(args) == 0 {
			return nil, &ParseError{Kind: ErrKindUsage, Token: token}
		}
		query := strings.Join(args, " ")
		switch token {
		case "watch":
			return WatchCommand{Query: query}, nil
		case "unwatch":
			return UnwatchCommand{Query: query}, nil
		}
		return UncompareCommand{Query: query}, nil

	case "unfocus":
		return UnfocusCommand{}, nil

	case "panels":
		if len(args) == 0 {
			return nil, &ParseError{Kind: ErrKindInvalidPanels, Token: token}
		}
		ids := make([]string, len(args))
		for i, a := range args {
			ids[i] = strings.ToLower(a)
			if _, ok := panels.Get(ids[i]); !ok {
				return nil, &ParseError{Kind: ErrKindInvalidPanels, Token: token, Args: args}
			}
		}
		return PanelsCommand{IDs: panels.Valid(ids)}, nil
	}

	return nil, &ParseError{Kind: ErrKindUnknown, Token: token, Args: args}
}

func joinWindows() string {
	names := make([]string, len(terminal.StatWindows))
	for i, w := range terminal.StatWindows {
		names[i] = string(w)
	}
	return strings.Join(names, ", ")
}

func joinPresets() string {
	names := make([]string, len(terminal.LayoutPresets))
	for i, p := range terminal.LayoutPresets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func joinPanels() string {
	defs := panels.All()
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	return strings.Join(ids, ", ")
}
