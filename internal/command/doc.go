// Package command implements the terminal's colon commands.
//
// Parsing and execution are separate steps. Parse turns a line such as
// ":compare lebron" into one of the Command variants or a *ParseError;
// Interpreter.Execute applies a parsed command to a terminal.State and
// returns the feedback text the UI shows for FeedbackDuration.
//
//	:window <season|l5|l10|l20>
//	:layout <default|chart|comparison|data>
//	:compare <player name>
//	:focus <player name>
//	:clear
//
// Player names resolve to the first ranked player whose name contains the
// query, ignoring case.
package command
