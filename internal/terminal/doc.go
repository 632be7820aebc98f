// Package terminal holds the state machine behind the terminal page.
//
// A State owns the focused player, a bounded comparison set, the watchlist,
// recently viewed players, the panel layout, the active stat window and the
// command history. Mutators never fail: duplicate ids and full collections
// turn into no-ops, and listeners registered with Subscribe are told which
// fields changed.
//
// Only part of the state survives a restart. Snapshot extracts that slice
// (watchlist, recently viewed, layout and stat window), Encode/Decode turn it
// into a versioned YAML record, and Restore installs it into a fresh State
// while resetting focus, comparison and history.
package terminal
