// Package fetch retrieves page HTML over HTTP with browser-like request
// headers, since many sites serve degraded or blocked responses to
// unknown user agents.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"harvester/internal/config"
	"harvester/internal/domain"
)

type Client struct {
	http      *http.Client
	userAgent string
	maxBody   int64
}

func NewClient(cfg config.FetcherConfig) *Client {
	return &Client{
		http:      &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second},
		userAgent: cfg.UserAgent,
		maxBody:   int64(cfg.MaxBodyMB) << 20,
	}
}

// Fetch downloads the page at url. Non-2xx statuses and transport errors
// wrap domain.ErrFetchFailed; the body is capped at the configured limit
// to keep a hostile or misconfigured page from exhausting memory.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url %q: %v", domain.ErrFetchFailed, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned status %d", domain.ErrFetchFailed, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}
	return string(body), nil
}
