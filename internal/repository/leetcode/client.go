package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/PizzaHomicide/leetmetrics/internal/domain"
	"github.com/PizzaHomicide/leetmetrics/internal/log"
	"net/http"
	"net/url"
	"strings"
)

// ErrUserNotFound is returned when the API answers but knows nothing about the requested user
var ErrUserNotFound = errors.New("user not found")

// Client fetches statistics from the REST stats API.  One GET per lookup, no headers, no auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// NetworkError wraps failures to reach the API at all
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the API responds with a non-2xx status
type StatusError struct {
	StatusCode int
	Status     string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}

// statsResponse is the REST payload.  On unknown users the API still answers 200 but with status "error".
type statsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	domain.Stats
}

// GetStats performs GET <baseURL>/<username> and decodes the body
func (c *Client) GetStats(ctx context.Context, username string) (*domain.Stats, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build stats request: %w", err)
	}

	log.Debug("Requesting stats", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}

	if strings.EqualFold(body.Status, "error") {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, body.Message)
	}

	log.Trace("Decoded stats response", "username", username, "stats", body.Stats)

	return &body.Stats, nil
}
