// Package statsapi is the HTTP client for the two upstream pitch data
// providers: the bulk search CSV export and the per-game pitch feed.
//
// Network policy lives at the callers: per-request timeouts here, fixed
// inter-request delays in the bulk enrichment loop. The aggregation core
// never sees this package.
package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/pable/go-pitch-metrics/internal/feed"
	"github.com/pable/go-pitch-metrics/internal/model"
)

// Client talks to both upstream endpoints.
type Client struct {
	searchURL string
	feedURL   string
	http      *http.Client
}

// New creates a client. Both URLs are bases without query strings.
func New(searchURL, feedURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		searchURL: searchURL,
		feedURL:   feedURL,
		http:      &http.Client{Timeout: timeout},
	}
}

// SearchQuery selects a player population from the bulk export.
type SearchQuery struct {
	PlayerID  int
	Role      string // "pitcher" or "batter"
	StartDate string // YYYY-MM-DD, optional
	EndDate   string // YYYY-MM-DD, optional
	Season    int    // optional
}

// SearchCSV downloads a bulk CSV export and returns its pitches. The export
// can be large, so gzip is requested explicitly and decompressed here.
func (c *Client) SearchCSV(ctx context.Context, q SearchQuery) ([]model.RawPitch, error) {
	params := url.Values{
		"all":         {"true"},
		"type":        {"details"},
		"player_type": {q.Role},
		"player_id":   {strconv.Itoa(q.PlayerID)},
	}
	if q.StartDate != "" {
		params.Set("game_date_gt", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("game_date_lt", q.EndDate)
	}
	if q.Season != 0 {
		params.Set("season", strconv.Itoa(q.Season))
	}

	body, err := c.get(ctx, c.searchURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	return feed.FromStatcastCSV(string(body)), nil
}

// GameFeed downloads the per-pitch feed for one game and returns the given
// pitcher's pitches. A game the feed has not populated yet comes back as an
// empty slice.
func (c *Client) GameFeed(ctx context.Context, gamePK, pitcherID int) ([]model.RawPitch, error) {
	params := url.Values{
		"game_pk": {strconv.Itoa(gamePK)},
	}
	body, err := c.get(ctx, c.feedURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	return feed.FromGameFeed(body, gamePK, pitcherID)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("statsapi: build request: %w", err)
	}
	// Setting Accept-Encoding ourselves disables the transport's transparent
	// decompression, so the gzip path below is always ours.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("statsapi: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// handled below
	case http.StatusNotFound:
		return nil, fmt.Errorf("statsapi: HTTP 404: no data for this query")
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("statsapi: rate limited by upstream, wait a moment and retry")
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("statsapi: HTTP %d: %s", resp.StatusCode, snippet)
	}

	reader := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("statsapi: gzip: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("statsapi: read response: %w", err)
	}
	return body, nil
}
