package fpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const FPLBaseURL = "https://fantasy.premierleague.com/api"

// userAgent identifies this service to the FPL API. The default Go user agent
// gets throttled aggressively.
const userAgent = "fantasy-foundry/1.0"

var (
	// ErrUnavailable is returned after every retry attempt has been exhausted.
	ErrUnavailable = errors.New("fpl api unavailable")
	// ErrNotFound is returned for a 404 without retrying.
	ErrNotFound = errors.New("fpl resource not found")
	// ErrMalformedRecord is returned when a payload is structurally missing
	// required fields. It is never retried.
	ErrMalformedRecord = errors.New("malformed fpl record")
)

type Client interface {
	GetBootstrap(ctx context.Context) (*Bootstrap, error)
	GetEntry(ctx context.Context, entryID int32) (*Entry, error)
	GetEntryHistory(ctx context.Context, entryID int32) (*EntryHistory, error)
	GetStandingsPage(ctx context.Context, leagueID int32, page int) (*StandingsPage, error)
	GetLiveGameweek(ctx context.Context, gameweekID int32) (*LiveGameweek, error)
}

type client struct {
	url         string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
}

func New() (Client, error) {
	c := &client{
		url: FPLBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxAttempts: 3,
		backoff:     500 * time.Millisecond,
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake server with no retry delay.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxAttempts: 3,
		backoff:     0,
	}
}

func (c *client) GetBootstrap(ctx context.Context) (*Bootstrap, error) {
	var b Bootstrap
	if err := c.getJSON(ctx, "/bootstrap-static/", &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *client) GetEntry(ctx context.Context, entryID int32) (*Entry, error) {
	var e Entry
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/", entryID), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *client) GetEntryHistory(ctx context.Context, entryID int32) (*EntryHistory, error) {
	var h EntryHistory
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/history/", entryID), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *client) GetStandingsPage(ctx context.Context, leagueID int32, page int) (*StandingsPage, error) {
	var s StandingsPage
	path := fmt.Sprintf("/leagues-classic/%d/standings/?page=%d", leagueID, page)
	if err := c.getJSON(ctx, path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *client) GetLiveGameweek(ctx context.Context, gameweekID int32) (*LiveGameweek, error) {
	var l LiveGameweek
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d/live/", gameweekID), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// getJSON performs a GET with up to maxAttempts tries, backing off linearly
// between attempts. Transport errors and non-2xx responses are retried, a 404
// is surfaced immediately as ErrNotFound.
func (c *client) getJSON(ctx context.Context, path string, v any) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt-1) * c.backoff):
			}
		}

		body, err := c.get(ctx, path)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return err
			}
			lastErr = err
			continue
		}

		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error parsing response from %s: %v: %w", path, err, ErrMalformedRecord)
		}
		return nil
	}

	return fmt.Errorf("giving up on %s after %d attempts: %v: %w", path, c.maxAttempts, lastErr, ErrUnavailable)
}

func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return body, nil
}
