// Package radarr is a minimal client for the Radarr movie resource.
package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody bounds how much of an error response is kept in StatusError.
const maxErrorBody = 512

// Config configures a Client.
type Config struct {
	BaseURL string        // scheme://host:port
	URLBase string        // path the server is mounted under, e.g. "/radarr"
	APIKey  string
	Timeout time.Duration // per request; 0 means no timeout
}

// Client talks to the Radarr movie endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a new Radarr client.
func New(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		endpoint: movieEndpoint(cfg.BaseURL, cfg.URLBase),
		apiKey:   cfg.APIKey,
		log:      log.With("component", "radarr"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func movieEndpoint(baseURL, urlBase string) string {
	base := strings.TrimSuffix(baseURL, "/")
	if p := strings.Trim(urlBase, "/"); p != "" {
		base += "/" + p
	}
	return base + "/api/movie/"
}

// Endpoint returns the movie URL without credentials.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ListMovies fetches the full movie collection in server order.
func (c *Client) ListMovies(ctx context.Context) ([]*Movie, error) {
	resp, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var movies []*Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	// A null array element has nothing to reconcile.
	kept := movies[:0]
	for _, m := range movies {
		if m == nil {
			c.log.Warn("skipping null movie record")
			continue
		}
		kept = append(kept, m)
	}

	c.log.Debug("movies listed", "count", len(kept))
	return kept, nil
}

// UpdateMovie writes a full movie record back to the server. The server
// resolves the target record from the id embedded in the body.
func (c *Client) UpdateMovie(ctx context.Context, movie *Movie) error {
	body := movie.Body()
	c.log.Debug("updating movie", "id", movie.ID(), "url", c.endpoint, "data", string(body))

	resp, err := c.do(ctx, http.MethodPut, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// do sends an authenticated request to the movie endpoint and returns the
// response when the status is 2xx. The caller closes the body.
func (c *Client) do(ctx context.Context, method string, body []byte) (*http.Response, error) {
	start := time.Now()
	reqURL := c.endpoint + "?" + url.Values{"apikey": {c.apiKey}}.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// url.Error carries the request URL, which includes the api key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.log.Debug("api request failed", "method", method, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrServerUnavailable, method, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Debug("api unexpected status", "method", method, "status", resp.StatusCode)
		return nil, &StatusError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	c.log.Debug("api request complete",
		"method", method,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())
	return resp, nil
}
