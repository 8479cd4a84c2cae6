// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client shared by the registry clients.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pdiddy/orcid-report/pkg/types"
)

// maxBodyBytes bounds how much of a registry response is read.
const maxBodyBytes = 16 << 20

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Getter fetches a URL and returns the response body.
type Getter interface {
	Get(ctx context.Context, url string, header http.Header) ([]byte, error)
}

// Client is a paced HTTP client. Every request carries the configured
// User-Agent; requests wait on the limiter so consecutive registry lookups
// stay within the registries' published rate limits. Failed requests are
// not retried.
type Client struct {
	HTTP      *http.Client
	Limiter   *rate.Limiter
	UserAgent string
}

// NewClient builds a Client from cfg. A zero RateLimit disables pacing.
func NewClient(cfg types.HTTPConfig) *Client {
	c := &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
	}
	if cfg.RateLimit > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

// Get issues a GET request with the extra header values and returns the
// body of a 2xx response. Any other status is a *StatusError.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}
