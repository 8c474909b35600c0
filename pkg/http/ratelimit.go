package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/time/rate"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_http.go github.com/kasuboski/showtrack/pkg/http HTTPClient

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Millisecond * 500
)

type RateLimitedClient struct {
	client      HTTPClient
	limiter     *rate.Limiter
	baseBackoff time.Duration
	maxRetries  int
}

// ClientOption is a function that can be used to configure a RateLimitedHTTPClient
type ClientOption func(*RateLimitedClient)

// NewRateLimitedHTTPClient creates a new RateLimitedHTTPClient that respects 429 status codes
// The client can be used concurrently
func NewRateLimitedHTTPClient(opts ...ClientOption) *RateLimitedClient {
	c := &RateLimitedClient{
		client:      http.DefaultClient,
		maxRetries:  DefaultMaxRetries,
		baseBackoff: DefaultBaseBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the maximum number of attempts for the client. Every
// request is sent at least once.
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RateLimitedClient) {
		c.maxRetries = max(maxRetries, 1)
	}
}

// WithBaseBackoff sets the base backoff time for the client
func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		c.baseBackoff = baseBackoff
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RateLimitedClient) {
		c.client = client
	}
}

// WithLimiter throttles outgoing requests with a token bucket before they are sent.
// TVmaze allows roughly 20 calls every 10 seconds per IP.
func WithLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *RateLimitedClient) {
		c.limiter = limiter
	}
}

// Do executes the HTTP request while respecting 429 rate limits.
// It blocks until a non-429 response arrives, the retries run out, or the request context is done.
// If the maximum number of retries is reached, the response returned will be the last response received
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var resp *http.Response
	var err error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if attempt == c.maxRetries-1 {
			break
		}

		retryAfter := c.getRetryAfter(resp, attempt) + c.jitter()
		resp.Body.Close()

		timer := time.NewTimer(retryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return resp, fmt.Errorf("rate limit exceeded after %d retries", c.maxRetries)
}

// getRetryAfter calculates the appropriate retry delay
func (c *RateLimitedClient) getRetryAfter(resp *http.Response, attempt int) time.Duration {
	retryAfterHeader := resp.Header.Get("Retry-After")

	if retryAfterHeader != "" {
		seconds, err := strconv.Atoi(retryAfterHeader)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// 2^n backoff
	return time.Duration(1<<attempt) * c.baseBackoff
}

// jitter staggers retries so parallel refreshes don't hit the provider in lockstep
func (c *RateLimitedClient) jitter() time.Duration {
	if c.baseBackoff <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(c.baseBackoff)))
}
