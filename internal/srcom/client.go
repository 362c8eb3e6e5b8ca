// Package srcom is a small client for the speedrun.com REST API (v1).
// It covers the handful of endpoints the dashboard needs: runs (paginated),
// categories, levels and users.
package srcom

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.speedrun.com/api/v1"

// StatusVerified is the run status the dashboard keeps; everything else
// (new, rejected) is discarded during processing.
const StatusVerified = "verified"

// Run is a raw run object as returned by the API.
type Run struct {
	ID        string `json:"id"`
	Weblink   string `json:"weblink"`
	Category  string `json:"category"`
	Level     string `json:"level"` // null for full-game runs
	Date      string `json:"date"`
	Submitted string `json:"submitted"`
	Times     struct {
		PrimaryT float64 `json:"primary_t"`
	} `json:"times"`
	Players []struct {
		Rel  string `json:"rel"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"players"`
	Status struct {
		Status string `json:"status"`
	} `json:"status"`
	Values map[string]string `json:"values"`
}

// Verified reports whether the run passed moderation.
func (r Run) Verified() bool {
	return r.Status.Status == StatusVerified
}

// NamedResource is a category or level as returned by the API.
type NamedResource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the subset of a user object the dashboard reads.
type User struct {
	ID    string `json:"id"`
	Names struct {
		International string `json:"international"`
		Japanese      string `json:"japanese"`
	} `json:"names"`
}

// DisplayName picks the international name, falling back to the japanese one.
func (u User) DisplayName() string {
	if u.Names.International != "" {
		return u.Names.International
	}
	return u.Names.Japanese
}

// Client wraps endpoint access with pagination and retry handling.
type Client struct {
	base       string
	pageSize   int
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
}

// NewClient returns a client for the given base URL. Empty baseURL and
// non-positive pageSize fall back to the API defaults.
func NewClient(baseURL string, pageSize int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = 200
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:       baseURL,
		pageSize:   pageSize,
		maxRetries: 2,
		backoff:    2 * time.Second,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// getJSON fetches url with retries and decodes the "data" envelope into out.
// A 429 response waits for Retry-After before retrying; other failures back
// off linearly.
func (c *Client) getJSON(url string, out interface{}) error {
	var lastErr error
	waited := false

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		// A 429 already waited for Retry-After, no extra backoff then.
		if attempt > 0 && !waited {
			time.Sleep(c.backoff * time.Duration(attempt))
		}
		waited = false

		resp, err := c.httpClient.Get(url)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := 1
			if v, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && v > 0 {
				retryAfter = v
			}
			resp.Body.Close()
			lastErr = errors.New("srcom: rate limited: " + resp.Status)
			if attempt < c.maxRetries {
				time.Sleep(time.Duration(retryAfter) * time.Second)
				waited = true
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = errors.New("srcom: request failed with status: " + resp.Status)
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("srcom: failed to fetch %s: %w", url, lastErr)
}

// Runs fetches one page of runs for a game.
func (c *Client) Runs(gameID string, offset int) ([]Run, error) {
	url := fmt.Sprintf("%s/runs?game=%s&max=%d&offset=%d", c.base, gameID, c.pageSize, offset)
	var envelope struct {
		Data []Run `json:"data"`
	}
	if err := c.getJSON(url, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// AllRuns pages through the runs endpoint and returns every run for a game.
func (c *Client) AllRuns(gameID string) ([]Run, error) {
	var all []Run
	offset := 0
	for {
		page, err := c.Runs(gameID, offset)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		if len(page) < c.pageSize {
			break
		}
		offset += c.pageSize
	}
	return all, nil
}

// Categories fetches the category list for a game.
func (c *Client) Categories(gameID string) ([]NamedResource, error) {
	url := fmt.Sprintf("%s/games/%s/categories", c.base, gameID)
	var envelope struct {
		Data []NamedResource `json:"data"`
	}
	if err := c.getJSON(url, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Levels fetches the level list for a game.
func (c *Client) Levels(gameID string) ([]NamedResource, error) {
	url := fmt.Sprintf("%s/games/%s/levels", c.base, gameID)
	var envelope struct {
		Data []NamedResource `json:"data"`
	}
	if err := c.getJSON(url, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// UserByID fetches a single user.
func (c *Client) UserByID(userID string) (User, error) {
	url := fmt.Sprintf("%s/users/%s", c.base, userID)
	var envelope struct {
		Data User `json:"data"`
	}
	if err := c.getJSON(url, &envelope); err != nil {
		return User{}, err
	}
	return envelope.Data, nil
}
