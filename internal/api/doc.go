// Package api is the terminal's window onto the fantasy backend.
//
// Client speaks the backend's REST endpoints (ranked players, per-player
// stats and game logs) with retries. Cache wraps any Backend with a short
// TTL and request deduplication, keyed by the parameters the terminal
// derives from its state: the focused player id and the stat window.
package api
