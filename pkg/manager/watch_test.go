package manager

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkWatched(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testEnv, int64, int64) {
		env := newTestEnv(t, ctx)
		userID := env.createUser(t, ctx, "ken")
		showID := env.addShow(t, ctx, userID, remoteShow(1, "Under the Dome",
			remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-24*time.Hour)),
			remoteEpisode(102, 1, 2, "The Fire", testNow.Add(24*time.Hour)),
		))
		return env, userID, showID
	}

	t.Run("marking twice keeps the original timestamp", func(t *testing.T) {
		env, userID, showID := setup(t)
		episodeID := env.episodeID(t, ctx, showID, 1, 1)

		require.NoError(t, env.m.MarkWatched(ctx, userID, episodeID))

		env.clock.Set(testNow.Add(time.Hour))
		require.NoError(t, env.m.MarkWatched(ctx, userID, episodeID))

		states, err := env.store.ListWatchStates(ctx, table.WatchState.UserID.EQ(sqlite.Int64(userID)))
		require.NoError(t, err)
		require.Len(t, states, 1)
		assert.True(t, states[0].WatchedAt.Equal(testNow))
	})

	t.Run("unaired episodes can be marked", func(t *testing.T) {
		env, userID, showID := setup(t)

		require.NoError(t, env.m.MarkWatched(ctx, userID, env.episodeID(t, ctx, showID, 1, 2)))

		watched, err := env.m.ListWatched(ctx, userID, showID)
		require.NoError(t, err)
		assert.Len(t, watched, 1)
	})

	t.Run("requires a membership", func(t *testing.T) {
		env, _, showID := setup(t)
		other := env.createUser(t, ctx, "barbie")

		err := env.m.MarkWatched(ctx, other, env.episodeID(t, ctx, showID, 1, 1))
		assert.ErrorIs(t, err, ErrMembershipRequired)

		watched, err := env.m.ListWatched(ctx, other, showID)
		require.NoError(t, err)
		assert.Empty(t, watched)
	})

	t.Run("ignored shows can be marked", func(t *testing.T) {
		env, userID, showID := setup(t)
		require.NoError(t, env.m.SetIgnored(ctx, userID, showID, true))

		require.NoError(t, env.m.MarkWatched(ctx, userID, env.episodeID(t, ctx, showID, 1, 1)))
	})

	t.Run("unknown episode", func(t *testing.T) {
		env, userID, _ := setup(t)

		err := env.m.MarkWatched(ctx, userID, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent marks leave one row", func(t *testing.T) {
		env, userID, showID := setup(t)
		episodeID := env.episodeID(t, ctx, showID, 1, 1)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = env.m.MarkWatched(ctx, userID, episodeID)
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}

		states, err := env.store.ListWatchStates(ctx, table.WatchState.EpisodeID.EQ(sqlite.Int64(episodeID)))
		require.NoError(t, err)
		assert.Len(t, states, 1)
	})
}

func TestMarkUnwatched(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ctx)
	userID := env.createUser(t, ctx, "ken")
	showID := env.addShow(t, ctx, userID, remoteShow(1, "Under the Dome",
		remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-24*time.Hour)),
	))
	episodeID := env.episodeID(t, ctx, showID, 1, 1)

	require.NoError(t, env.m.MarkWatched(ctx, userID, episodeID))
	require.NoError(t, env.m.MarkUnwatched(ctx, userID, episodeID))

	watched, err := env.m.ListWatched(ctx, userID, showID)
	require.NoError(t, err)
	assert.Empty(t, watched)

	// already unwatched
	require.NoError(t, env.m.MarkUnwatched(ctx, userID, episodeID))

	err = env.m.MarkUnwatched(ctx, userID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEpisodes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ctx)
	userID := env.createUser(t, ctx, "ken")
	showID := env.addShow(t, ctx, userID, remoteShow(1, "Under the Dome",
		remoteEpisode(102, 1, 2, "The Fire", testNow),
		remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-24*time.Hour)),
		remoteEpisode(201, 2, 1, "Heads Will Roll", time.Time{}),
	))

	require.NoError(t, env.m.MarkWatched(ctx, userID, env.episodeID(t, ctx, showID, 1, 1)))

	episodes, err := env.m.ListEpisodes(ctx, userID, showID)
	require.NoError(t, err)
	require.Len(t, episodes, 3)

	assert.Equal(t, int32(101), episodes[0].ExternalID)
	assert.True(t, episodes[0].Aired)
	assert.True(t, episodes[0].Watched)
	require.NotNil(t, episodes[0].WatchedAt)
	assert.True(t, episodes[0].WatchedAt.Equal(testNow))

	assert.Equal(t, int32(102), episodes[1].ExternalID)
	assert.True(t, episodes[1].Aired)
	assert.False(t, episodes[1].Watched)
	assert.Nil(t, episodes[1].WatchedAt)

	assert.Equal(t, int32(201), episodes[2].ExternalID)
	assert.False(t, episodes[2].Aired)

	_, err = env.m.ListEpisodes(ctx, userID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsAired(t *testing.T) {
	tests := []struct {
		name    string
		airDate *time.Time
		want    bool
	}{
		{name: "no air date"},
		{name: "yesterday", airDate: ptr(testNow.Add(-24 * time.Hour)), want: true},
		{name: "tomorrow", airDate: ptr(testNow.Add(24 * time.Hour))},
		{name: "now", airDate: ptr(testNow), want: true},
		{name: "later in the same second", airDate: ptr(testNow.Add(900 * time.Millisecond)), want: true},
		{name: "next second", airDate: ptr(testNow.Add(time.Second))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.Episode{AirDate: tt.airDate}
			assert.Equal(t, tt.want, isAired(e, testNow))
		})
	}
}
