package repl

import (
	"context"
	"courtside/internal/command"
	"courtside/internal/terminal"
	"courtside/pkg/logging"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
)

const subsystem = "REPL"

// Prompt is shown before every line.
const Prompt = "courtside> "

// Options configures a REPL.
type Options struct {
	// HistoryFile is where readline keeps line history. Empty disables it.
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// REPL is the line-oriented front end used when the TUI is disabled.
type REPL struct {
	interp  *command.Interpreter
	state   *terminal.State
	players command.PlayerSource
	opts    Options
	names   []string
}

// New creates a REPL over interp. players feeds name completion and may be nil.
func New(interp *command.Interpreter, state *terminal.State, players command.PlayerSource, opts Options) *REPL {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &REPL{interp: interp, state: state, players: players, opts: opts}
}

// Run reads lines until exit, EOF or ctx is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	r.loadNames(ctx)

	config := &readline.Config{
		Prompt:          Prompt,
		HistoryFile:     r.opts.HistoryFile,
		AutoComplete:    &completer{names: func() []string { return r.names }},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		Stdin:               r.opts.Stdin,
		Stdout:              r.opts.Stdout,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(r.opts.Stdout, "Type 'help' for available commands. Use TAB for completion.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		out, exit := r.Handle(ctx, line)
		if out != "" {
			fmt.Fprintln(r.opts.Stdout, out)
		}
		if exit {
			return nil
		}
	}
}

// Handle evaluates one line and returns what to print and whether the loop
// should stop.
func (r *REPL) Handle(ctx context.Context, line string) (output string, exit bool) {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "":
		return "", false
	case "exit", "quit":
		return "Goodbye!", true
	case "help":
		return Help(), false
	case "state":
		return Describe(r.state), false
	}

	res := r.interp.Execute(ctx, input)
	if res.Err != nil {
		logging.Debug(subsystem, "Command %q failed: %v", input, res.Err)
	}
	return res.Feedback, false
}

func (r *REPL) loadNames(ctx context.Context) {
	if r.players == nil {
		return
	}
	players, err := r.players.RankedPlayers(ctx)
	if err != nil {
		logging.Warn(subsystem, "Player names unavailable for completion: %v", err)
		return
	}
	r.names = make([]string, len(players))
	for i, p := range players {
		r.names[i] = p.Name
	}
}

// filterInput blocks ctrl+z, which would suspend the process mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

// completer adapts command.Complete to readline. readline inserts suffixes
// at the cursor, so only candidates extending the typed text are offered.
type completer struct {
	names func() []string
}

func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	typed := []rune(string(line[:pos]))
	input := string(typed)

	word := 0
	for i := len(typed) - 1; i >= 0 && !unicode.IsSpace(typed[i]); i-- {
		word++
	}

	for _, cand := range command.Complete(input, c.names()) {
		cr := []rune(cand)
		if len(cr) < len(typed) || !strings.EqualFold(string(cr[:len(typed)]), input) {
			continue
		}
		newLine = append(newLine, cr[len(typed):])
	}
	return newLine, word
}
