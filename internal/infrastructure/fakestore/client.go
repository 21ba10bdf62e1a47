package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/geerin/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Fake Store API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Fake Store API client.
// rps bounds outbound requests per second; the API is a shared public demo
// service, so stay polite.
func NewClient(baseURL string, timeout time.Duration, rps float64) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 10),
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the sleep duration before retry attempt n
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250*(1<<(attempt-1))) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Geerin/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}

// getJSON fetches reqURL and decodes the body into out, retrying up to 3
// times on transport errors, 5xx and 429. A 404 maps to ErrProductNotFound
// and is never retried; other 4xx responses fail immediately.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[fakestore] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrProductNotFound
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			if c.debug {
				log.Printf("[fakestore] upstream error (attempt %d) - status: %d", attempt, resp.StatusCode)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", domain.ErrUpstreamUnavailable, err)
		}
		return nil
	}

	return lastErr
}

// ListProducts fetches the full remote catalog
func (c *Client) ListProducts(ctx context.Context) ([]domain.FakeStoreItem, error) {
	if c.debug {
		log.Printf("[fakestore] ListProducts called")
	}

	var items []domain.FakeStoreItem
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products", c.baseURL), &items); err != nil {
		return nil, err
	}

	if c.debug {
		log.Printf("[fakestore] fetched %d products", len(items))
	}
	return items, nil
}

// GetProduct fetches a single remote product by id, including its description
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.FakeStoreItem, error) {
	var item domain.FakeStoreItem
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), &item); err != nil {
		return nil, err
	}

	// The API answers 200 with an empty body for unknown ids
	if item.ID == 0 {
		return nil, domain.ErrProductNotFound
	}

	return &item, nil
}
