package api

import (
	"context"
	"courtside/internal/terminal"
	"courtside/pkg/logging"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const clientSubsystem = "BackendClient"

// maxErrorBody caps how much of an error response ends up in StatusError.
const maxErrorBody = 512

// ClientOptions configures a Client.
type ClientOptions struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	RetryMax int
}

// Client talks to the fantasy backend's REST API.
type Client struct {
	baseURL *url.URL
	token   string
	http    *retryablehttp.Client
}

// NewClient builds a Client. Requests are retried on connection errors and
// 5xx/429 responses up to RetryMax times.
func NewClient(opts ClientOptions) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, ErrNoBaseURL
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing backend base URL %q: %w", opts.BaseURL, err)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = leveledLogger{}
	// Hand the last response back so non-2xx bodies become StatusErrors.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}

	return &Client{baseURL: base, token: opts.Token, http: rc}, nil
}

// RankedPlayers fetches the ranked player list.
func (c *Client) RankedPlayers(ctx context.Context) ([]Player, error) {
	var players []Player
	if err := c.get(ctx, "/players/rankings", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// PlayerStats fetches averages for one player over window.
func (c *Client) PlayerStats(ctx context.Context, id int, window terminal.StatWindow) (StatLine, error) {
	var line StatLine
	q := url.Values{"window": {string(window)}}
	if err := c.get(ctx, fmt.Sprintf("/players/%d/stats", id), q, &line); err != nil {
		return StatLine{}, err
	}
	if line.PlayerID == 0 {
		line.PlayerID = id
	}
	if line.Window == "" {
		line.Window = window
	}
	return line, nil
}

// GameLog fetches the most recent limit games for a player.
func (c *Client) GameLog(ctx context.Context, id int, limit int) ([]GameLogEntry, error) {
	var entries []GameLogEntry
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, fmt.Sprintf("/players/%d/gamelog", id), q, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := *c.baseURL
	u.Path = u.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	logging.Debug(clientSubsystem, "GET %s -> %d (%s)", path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// leveledLogger routes retryablehttp's logging into pkg/logging.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) {
	logging.Error(clientSubsystem, nil, "%s%s", msg, formatKV(kv))
}

func (leveledLogger) Info(msg string, kv ...interface{}) {
	logging.Debug(clientSubsystem, "%s%s", msg, formatKV(kv))
}

func (leveledLogger) Debug(msg string, kv ...interface{}) {
	logging.Debug(clientSubsystem, "%s%s", msg, formatKV(kv))
}

func (leveledLogger) Warn(msg string, kv ...interface{}) {
	logging.Warn(clientSubsystem, "%s%s", msg, formatKV(kv))
}

func formatKV(kv []interface{}) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
