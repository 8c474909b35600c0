package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/kasuboski/showtrack/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestNewRateLimitedHTTPClient(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := NewRateLimitedHTTPClient()
		assert.Equal(t, http.DefaultClient, c.client)
		assert.Equal(t, DefaultMaxRetries, c.maxRetries)
		assert.Equal(t, DefaultBaseBackoff, c.baseBackoff)
		assert.Nil(t, c.limiter)
	})

	t.Run("custom", func(t *testing.T) {
		hc := &http.Client{Timeout: time.Second}
		limiter := rate.NewLimiter(rate.Limit(2), 1)
		c := NewRateLimitedHTTPClient(
			WithMaxRetries(5),
			WithBaseBackoff(time.Millisecond*100),
			WithHTTPClient(hc),
			WithLimiter(limiter),
		)
		assert.Same(t, hc, c.client)
		assert.Same(t, limiter, c.limiter)
		assert.Equal(t, 5, c.maxRetries)
		assert.Equal(t, time.Millisecond*100, c.baseBackoff)
	})
}

func TestRateLimitedHTTPClient_Do(t *testing.T) {
	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://api.tvmaze.com/shows/1", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(nil, errors.New("http error"))
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("non 429 response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://api.tvmaze.com/shows/1", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(response(http.StatusOK, "non 429 response"), nil)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "non 429 response", string(b))
	})

	t.Run("429 then success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://api.tvmaze.com/shows/1", nil)
		require.NoError(t, err)

		gomock.InOrder(
			mhttp.EXPECT().Do(req).Return(response(http.StatusTooManyRequests, "slow down"), nil),
			mhttp.EXPECT().Do(req).Return(response(http.StatusOK, "ok"), nil),
		)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithBaseBackoff(time.Millisecond))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("429 response - max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://api.tvmaze.com/shows/1", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(response(http.StatusTooManyRequests, "429 response"), nil)
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(1))
		resp, err := client.Do(req)
		assert.ErrorContains(t, err, "rate limit exceeded after 1 retries")
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("context cancelled while backing off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.tvmaze.com/shows/1", nil)
		require.NoError(t, err)

		resp := response(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "30")
		mhttp.EXPECT().Do(req).Return(resp, nil).Times(1)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(2))
		_, err = client.Do(req)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("limiter wait honours context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.tvmaze.com/shows/1", nil)
		require.NoError(t, err)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithLimiter(rate.NewLimiter(rate.Limit(1), 1)))
		_, err = client.Do(req)
		assert.Error(t, err)
	})
}

func TestRateLimitedClient_getRetryAfter(t *testing.T) {
	tests := []struct {
		name    string
		resp    *http.Response
		attempt int
		want    time.Duration
	}{
		{
			name: "retry after header",
			resp: &http.Response{
				Header: http.Header{"Retry-After": []string{"1"}},
			},
			want: time.Second,
		},
		{
			name:    "exponential backoff",
			resp:    &http.Response{},
			attempt: 3,
			want:    time.Second * 8,
		},
		{
			name: "unparseable header falls back to backoff",
			resp: &http.Response{
				Header: http.Header{"Retry-After": []string{"soon"}},
			},
			attempt: 1,
			want:    time.Second * 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &RateLimitedClient{baseBackoff: time.Second}
			assert.Equal(t, tt.want, c.getRetryAfter(tt.resp, tt.attempt))
		})
	}
}
