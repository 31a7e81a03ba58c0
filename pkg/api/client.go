package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/NicolasFache/Formula1/pkg/laps"
	"github.com/NicolasFache/Formula1/pkg/model"
	"github.com/NicolasFache/Formula1/pkg/strategy"
)

// Per-call deadlines. Season and race listings are cheap; loading a full
// session makes the backend hit the timing archive, which can take a while.
const (
	probeTimeout   = 5 * time.Second
	listTimeout    = 10 * time.Second
	sessionTimeout = 30 * time.Second
)

// ErrNotFound reports a 404 from the timing API: the season, race or session
// does not exist. Callers use it to fall back to built-in data instead of
// surfacing an error.
var ErrNotFound = errors.New("not found")

// Client talks to the timing API. The zero value is not usable; construct it
// with NewClient.
type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// lapsPayload wraps the per-driver lap records on the wire.
type lapsPayload struct {
	LapsData laps.DriverLaps `json:"lapsData"`
}

// strategyPayload is the session result extended with per-driver stints.
type strategyPayload struct {
	model.SessionResult
	Strategies map[string][]strategy.Stint `json:"strategies"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// Ping checks that the timing API answers at all, on a short deadline.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	var seasons []int
	return c.get(ctx, c.baseURL+"/seasons", &seasons)
}

// Seasons lists the seasons the timing API can serve, newest first.
func (c *Client) Seasons(ctx context.Context) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	var seasons []int
	if err := c.get(ctx, c.baseURL+"/seasons", &seasons); err != nil {
		return nil, errors.Wrap(err, "fetching seasons")
	}
	return seasons, nil
}

// Races lists the schedule for one season.
func (c *Client) Races(ctx context.Context, season int) ([]model.Race, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	var races []model.Race
	endpoint := fmt.Sprintf("%s/season/%d/races", c.baseURL, season)
	if err := c.get(ctx, endpoint, &races); err != nil {
		return nil, errors.Wrapf(err, "fetching races for season %d", season)
	}
	return races, nil
}

// EventType describes one event's weekend format and available sessions.
func (c *Client) EventType(ctx context.Context, season int, raceID string) (model.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	var event model.EventType
	endpoint := fmt.Sprintf("%s/season/%d/race/%s/event_type", c.baseURL, season, url.PathEscape(raceID))
	if err := c.get(ctx, endpoint, &event); err != nil {
		return model.EventType{}, errors.Wrapf(err, "fetching event type for %s", raceID)
	}
	return event, nil
}

// SessionResult loads the header and classification of one session.
func (c *Client) SessionResult(ctx context.Context, season int, raceID, session string) (model.SessionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionTimeout)
	defer cancel()
	var result model.SessionResult
	endpoint := fmt.Sprintf("%s/season/%d/race/%s/%s", c.baseURL, season, url.PathEscape(raceID), url.PathEscape(session))
	if err := c.get(ctx, endpoint, &result); err != nil {
		return model.SessionResult{}, errors.Wrapf(err, "fetching %s result for %s", session, raceID)
	}
	return result, nil
}

// Laps loads every driver's lap records for one session. Compound names are
// normalized on ingest so downstream code only sees the canonical set.
func (c *Client) Laps(ctx context.Context, season int, raceID, session string) (laps.DriverLaps, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionTimeout)
	defer cancel()
	var payload lapsPayload
	endpoint := fmt.Sprintf("%s/season/%d/race/%s/%s/laps", c.baseURL, season, url.PathEscape(raceID), url.PathEscape(session))
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, errors.Wrapf(err, "fetching laps for %s", raceID)
	}
	for code, records := range payload.LapsData {
		for i := range records {
			records[i].Compound = laps.NormalizeCompound(records[i].Compound)
		}
		payload.LapsData[code] = records
	}
	return payload.LapsData, nil
}

// Strategy loads the session result together with the backend's per-driver
// stint breakdown.
func (c *Client) Strategy(ctx context.Context, season int, raceID, session string) (model.SessionResult, map[string][]strategy.Stint, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionTimeout)
	defer cancel()
	var payload strategyPayload
	endpoint := fmt.Sprintf("%s/season/%d/race/%s/%s/strategy", c.baseURL, season, url.PathEscape(raceID), url.PathEscape(session))
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return model.SessionResult{}, nil, errors.Wrapf(err, "fetching strategy for %s", raceID)
	}
	return payload.SessionResult, payload.Strategies, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	// Make a get request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	// Do the request
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}

	// Close the response body on function return
	defer resp.Body.Close()

	// Read the response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorPayload
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			if resp.StatusCode == http.StatusNotFound {
				return errors.Wrap(ErrNotFound, apiErr.Error)
			}
			return errors.New(apiErr.Error)
		}
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}
