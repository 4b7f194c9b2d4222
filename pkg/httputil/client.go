package httputil

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/wonny/fairvalue/pkg/logger"
)

// Client is an HTTP client wrapper with retry logic, client-side rate
// limiting and request logging
// ⭐ SSOT: 모든 HTTP 요청은 이 클라이언트를 통해서만 수행
type Client struct {
	httpClient  *http.Client
	logger      *logger.Logger
	retryConfig RetryConfig
	limiter     *rate.Limiter
}

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Enabled      bool
}

// New creates a new HTTP client
// ⭐ SSOT: http.Client 인스턴스는 여기서만 생성
func New(log *logger.Logger, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
		retryConfig: RetryConfig{
			MaxRetries:   2,
			InitialDelay: 1 * time.Second,
			MaxDelay:     10 * time.Second,
			Enabled:      true,
		},
	}
}

// WithRetry configures retry behavior
func (c *Client) WithRetry(maxRetries int, initialDelay time.Duration) *Client {
	c.retryConfig.MaxRetries = maxRetries
	c.retryConfig.InitialDelay = initialDelay
	c.retryConfig.Enabled = true
	return c
}

// DisableRetry disables automatic retry
func (c *Client) DisableRetry() *Client {
	c.retryConfig.Enabled = false
	return c
}

// WithRateLimit sets a client-side request rate limit (requests per second)
func (c *Client) WithRateLimit(rps float64) *Client {
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	return c
}

// Get performs a GET request with the given headers
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req)
}

// do executes the request with rate limiting, retry logic and logging
func (c *Client) do(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	url := req.URL.String()

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait failed: %w", err)
		}
	}

	c.logger.WithFields(map[string]interface{}{
		"method": req.Method,
		"url":    url,
	}).Debug("HTTP request started")

	var resp *http.Response
	var err error
	if c.retryConfig.Enabled {
		resp, err = c.doWithRetry(req)
	} else {
		resp, err = c.httpClient.Do(req)
	}

	duration := time.Since(startTime)

	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"url":      url,
			"duration": duration.String(),
		}).WithError(err).Error("HTTP request failed")
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": duration.String(),
	}).Debug("HTTP request completed")

	return resp, nil
}

// doWithRetry executes the request with exponential backoff
func (c *Client) doWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	delay := c.retryConfig.InitialDelay

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.WithFields(map[string]interface{}{
				"url":     req.URL.String(),
				"attempt": attempt,
				"delay":   delay.String(),
			}).Debug("Retrying HTTP request")

			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(delay):
			}

			delay *= 2
			if delay > c.retryConfig.MaxDelay {
				delay = c.retryConfig.MaxDelay
			}
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			continue
		}

		if !shouldRetry(resp.StatusCode) {
			return resp, nil
		}

		// Drain and close so the connection can be reused
		resp.Body.Close()
		err = fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", c.retryConfig.MaxRetries, err)
}

// shouldRetry reports whether a status code warrants another attempt
func shouldRetry(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
