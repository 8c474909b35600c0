package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kasuboski/showtrack/config"
	"github.com/kasuboski/showtrack/pkg/tvmaze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42", "show id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := parseID(raw, "show id")
		assert.Error(t, err, raw)
	}
}

func TestNewTVMazeClient(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client, err := newTVMazeClient(config.TVMaze{
		Scheme:            "http",
		Host:              srv.Listener.Addr().String(),
		UserAgent:         "showtrack-test",
		BaseBackoff:       time.Millisecond,
		MaxRetries:        1,
		RequestsPerSecond: 100,
		Burst:             1,
	})
	require.NoError(t, err)

	res, err := client.SearchShows(context.Background(), &tvmaze.SearchShowsParams{Q: "archer"})
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "showtrack-test", agent)
}

func TestEpisodeCode(t *testing.T) {
	assert.Equal(t, "S01E02", episodeCode(1, 2))
	assert.Equal(t, "S10E100", episodeCode(10, 100))
}
