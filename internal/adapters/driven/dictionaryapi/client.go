package dictionaryapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ConfigurableClient = (*Client)(nil)

// retryDelay is the pause before retrying a 5xx or network failure.
const retryDelay = 500 * time.Millisecond

// maxBodySize caps the response body read from the API.
const maxBodySize = 4 << 20

// Client fetches dictionary entries from the free dictionary API.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	maxRetries int
	timeout    time.Duration
	httpClient *http.Client
	limiter    *RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client from API settings.
func NewClient(settings domain.APISettings, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{},
		limiter:    NewRateLimiter(settings.RequestsPerSecond, settings.Burst),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Configure(settings); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure applies new API settings to subsequent requests.
func (c *Client) Configure(settings domain.APISettings) error {
	base, err := url.Parse(settings.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("%w: invalid base url %q", domain.ErrInvalidInput, settings.BaseURL)
	}
	if settings.RequestsPerSecond <= 0 || settings.Burst < 1 {
		return fmt.Errorf("%w: invalid rate limit %.2f/%d",
			domain.ErrInvalidInput, settings.RequestsPerSecond, settings.Burst)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseURL = strings.TrimRight(settings.BaseURL, "/")
	c.maxRetries = settings.MaxRetries
	c.timeout = settings.Timeout
	c.limiter.SetLimit(settings.RequestsPerSecond, settings.Burst)
	return nil
}

// BaseURL returns the configured entries endpoint.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Lookup fetches the entries for term.
// Returns domain.ErrNotFound if the API answers 404.
func (c *Client) Lookup(ctx context.Context, term string) ([]domain.DictionaryEntry, error) {
	c.mu.RLock()
	reqURL := c.baseURL + "/" + url.PathEscape(term)
	maxRetries := c.maxRetries
	timeout := c.timeout
	c.mu.RUnlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.Debug("dictionaryapi request: GET %s", reqURL)

	resp, err := c.doWithRetry(ctx, reqURL, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("dictionaryapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("dictionaryapi: %q: %w", term, domain.ErrNotFound)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.RecordRateLimitError(resp.Header.Get("Retry-After"))
		return nil, fmt.Errorf("dictionaryapi: %w: %w", domain.ErrRateLimited, &domain.StatusError{Code: resp.StatusCode})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dictionaryapi: %w", &domain.StatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("dictionaryapi: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("dictionaryapi: %w: %w", domain.ErrDecode, err)
	}

	result := mapAPIResponse(entries)

	logger.Debug("dictionaryapi response: %q status=%d entries=%d", term, resp.StatusCode, len(result))

	return result, nil
}

// doWithRetry executes the request, retrying up to maxRetries times on 5xx or
// network errors.
func (c *Client) doWithRetry(ctx context.Context, reqURL string, maxRetries int) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)

		shouldRetry := err != nil || resp.StatusCode >= 500
		if !shouldRetry || attempt >= maxRetries || ctx.Err() != nil {
			return resp, err
		}

		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		logger.Warn("dictionaryapi retry %d/%d: %s", attempt+1, maxRetries, reason)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}
