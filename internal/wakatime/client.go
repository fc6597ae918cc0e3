package wakatime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the WakaTime summaries endpoint for the current user.
const DefaultBaseURL = "https://wakatime.com/api/v1/users/current/summaries"

// Failure classes of a fetch, distinguishable via errors.Is. There is no
// fallback source, so both are surfaced to the caller.
var (
	// ErrUnavailable covers transport failures and non-200 responses.
	ErrUnavailable = errors.New("wakatime: service unavailable")
	// ErrBadPayload covers response bodies that do not decode into a Summary.
	ErrBadPayload = errors.New("wakatime: malformed response")
)

// Language is one activity bucket of a day, as reported by WakaTime.
// Text is the human-readable duration ("3 hrs 12 mins"); Percent is the
// share of the day's total coding time, one decimal.
type Language struct {
	Name    string  `json:"name"`
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
}

// Day holds the per-language breakdown of a single day. Languages arrive
// pre-sorted by the API, descending by percent.
type Day struct {
	Languages []Language `json:"languages"`
}

// Summary is one day's aggregated coding activity.
type Summary struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Data  []Day     `json:"data"`
}

// Client fetches daily summaries from the WakaTime API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a client for the given API key. baseURL may be empty,
// in which case DefaultBaseURL is used.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Fetch retrieves the summary for a single date (YYYY-MM-DD). One request,
// no retries; scheduling another attempt is the caller's concern.
func (c *Client) Fetch(ctx context.Context, date string) (*Summary, error) {
	query := url.Values{}
	query.Set("start", date)
	query.Set("end", date)
	query.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wakatime: failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	var s Summary
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return &s, nil
}
