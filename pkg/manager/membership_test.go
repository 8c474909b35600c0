package manager

import (
	"context"
	"testing"
	"time"

	"github.com/kasuboski/showtrack/pkg/pagination"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/tvmaze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ctx)

	user, err := env.m.CreateUser(ctx, " ken ")
	require.NoError(t, err)
	assert.Equal(t, "ken", user.Username)

	_, err = env.m.CreateUser(ctx, "ken")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = env.m.CreateUser(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	got, err := env.m.GetUser(ctx, int64(user.ID))
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	_, err = env.m.GetUser(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	users, err := env.m.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ctx)

	ken := env.createUser(t, ctx, "ken")
	barbie := env.createUser(t, ctx, "barbie")

	show := remoteShow(1, "Under the Dome", remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-time.Hour)))
	showID := env.addShow(t, ctx, ken, show)
	_, err := env.m.AddShow(ctx, barbie, 1)
	require.NoError(t, err)

	_, err = env.m.MarkAllAiredWatched(ctx, ken, showID, false)
	require.NoError(t, err)
	_, err = env.m.MarkAllAiredWatched(ctx, barbie, showID, false)
	require.NoError(t, err)

	require.NoError(t, env.m.DeleteUser(ctx, ken))

	_, err = env.m.GetUser(ctx, ken)
	assert.ErrorIs(t, err, ErrNotFound)

	states, err := env.store.ListWatchStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, int32(barbie), states[0].UserID)

	memberships, err := env.store.ListMemberships(ctx)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, int32(barbie), memberships[0].UserID)

	err = env.m.DeleteUser(ctx, ken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddShow(t *testing.T) {
	ctx := context.Background()
	show := remoteShow(1, "Under the Dome",
		remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-time.Hour)),
	)

	t.Run("ingests a show that is not local", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		userID := env.createUser(t, ctx, "ken")
		env.expectShow(t, show).Times(1)

		details, err := env.m.AddShow(ctx, userID, 1)
		require.NoError(t, err)
		assert.Equal(t, "Under the Dome", details.Name)
		assert.Len(t, details.Episodes, 1)

		membership, err := env.store.GetMembership(ctx, userID, int64(details.ID))
		require.NoError(t, err)
		assert.Equal(t, string(storage.MembershipStatusActive), membership.Status)
	})

	t.Run("uses the local show when present", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		ken := env.createUser(t, ctx, "ken")
		barbie := env.createUser(t, ctx, "barbie")

		// only the first add reaches the provider
		showID := env.addShow(t, ctx, ken, show)

		details, err := env.m.AddShow(ctx, barbie, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(showID), details.ID)
	})

	t.Run("adding again keeps the existing status", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		userID := env.createUser(t, ctx, "ken")
		showID := env.addShow(t, ctx, userID, show)

		require.NoError(t, env.m.SetIgnored(ctx, userID, showID, true))

		details, err := env.m.AddShow(ctx, userID, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(showID), details.ID)

		membership, err := env.store.GetMembership(ctx, userID, showID)
		require.NoError(t, err)
		assert.Equal(t, string(storage.MembershipStatusIgnored), membership.Status)

		memberships, err := env.store.ListMemberships(ctx)
		require.NoError(t, err)
		assert.Len(t, memberships, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		env.tvmaze.EXPECT().ShowDetails(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := env.m.AddShow(ctx, 42, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("provider failure", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		userID := env.createUser(t, ctx, "ken")
		env.tvmaze.EXPECT().ShowDetails(gomock.Any(), 1, gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := env.m.AddShow(ctx, userID, 1)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)

		memberships, err := env.store.ListMemberships(ctx)
		require.NoError(t, err)
		assert.Empty(t, memberships)
	})
}

func TestSetIgnored(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ctx)
	userID := env.createUser(t, ctx, "ken")
	showID := env.addShow(t, ctx, userID, remoteShow(1, "Under the Dome"))

	status := func() string {
		membership, err := env.store.GetMembership(ctx, userID, showID)
		require.NoError(t, err)
		return membership.Status
	}

	require.NoError(t, env.m.SetIgnored(ctx, userID, showID, true))
	assert.Equal(t, "ignored", status())

	// same status again is a no-op
	require.NoError(t, env.m.SetIgnored(ctx, userID, showID, true))
	assert.Equal(t, "ignored", status())

	require.NoError(t, env.m.SetIgnored(ctx, userID, showID, false))
	assert.Equal(t, "active", status())

	err := env.m.SetIgnored(ctx, userID, showID+1, true)
	assert.ErrorIs(t, err, ErrMembershipNotFound)

	other := env.createUser(t, ctx, "barbie")
	err = env.m.SetIgnored(ctx, other, showID, true)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestRemoveShow(t *testing.T) {
	ctx := context.Background()

	newShow := func() *tvmaze.Show {
		return remoteShow(1, "Under the Dome",
			remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-48*time.Hour)),
			remoteEpisode(102, 1, 2, "The Fire", testNow.Add(-24*time.Hour)),
			remoteEpisode(103, 1, 3, "Manhunt", testNow.Add(-time.Hour)),
		)
	}

	t.Run("re-adding starts with nothing watched", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		userID := env.createUser(t, ctx, "ken")
		showID := env.addShow(t, ctx, userID, newShow())

		require.NoError(t, env.m.MarkWatched(ctx, userID, env.episodeID(t, ctx, showID, 1, 1)))
		require.NoError(t, env.m.MarkWatched(ctx, userID, env.episodeID(t, ctx, showID, 1, 2)))

		watched, err := env.m.ListWatched(ctx, userID, showID)
		require.NoError(t, err)
		assert.Len(t, watched, 2)

		require.NoError(t, env.m.RemoveShow(ctx, userID, showID))

		watched, err = env.m.ListWatched(ctx, userID, showID)
		require.NoError(t, err)
		assert.Empty(t, watched)

		_, err = env.store.GetMembership(ctx, userID, showID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// the show is local now so re-adding doesn't fetch
		details, err := env.m.AddShow(ctx, userID, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(showID), details.ID)

		watched, err = env.m.ListWatched(ctx, userID, showID)
		require.NoError(t, err)
		assert.Empty(t, watched)
	})

	t.Run("absent membership is a no-op", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		userID := env.createUser(t, ctx, "ken")
		showID := env.addShow(t, ctx, userID, newShow())

		require.NoError(t, env.m.RemoveShow(ctx, userID, showID))
		require.NoError(t, env.m.RemoveShow(ctx, userID, showID))
		require.NoError(t, env.m.RemoveShow(ctx, userID, 999))
	})

	t.Run("other users keep their state", func(t *testing.T) {
		env := newTestEnv(t, ctx)
		ken := env.createUser(t, ctx, "ken")
		barbie := env.createUser(t, ctx, "barbie")

		showID := env.addShow(t, ctx, ken, newShow())
		_, err := env.m.AddShow(ctx, barbie, 1)
		require.NoError(t, err)

		_, err = env.m.MarkAllAiredWatched(ctx, ken, showID, false)
		require.NoError(t, err)
		_, err = env.m.MarkAllAiredWatched(ctx, barbie, showID, false)
		require.NoError(t, err)

		require.NoError(t, env.m.RemoveShow(ctx, ken, showID))

		watched, err := env.m.ListWatched(ctx, barbie, showID)
		require.NoError(t, err)
		assert.Len(t, watched, 3)

		_, err = env.store.GetMembership(ctx, barbie, showID)
		assert.NoError(t, err)
	})
}

func TestListShows(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, ctx)
	userID := env.createUser(t, ctx, "ken")

	tomorrow := testNow.Add(24 * time.Hour)
	nextWeek := testNow.Add(7 * 24 * time.Hour)

	domeID := env.addShow(t, ctx, userID, remoteShow(1, "under the Dome",
		remoteEpisode(101, 1, 1, "Pilot", testNow.Add(-48*time.Hour)),
		remoteEpisode(102, 1, 2, "The Fire", testNow.Add(-24*time.Hour)),
		remoteEpisode(103, 1, 3, "Manhunt", nextWeek),
		remoteEpisode(104, 1, 4, "Outbreak", tomorrow),
		remoteEpisode(105, 1, 5, "Blue on Blue", time.Time{}),
	))
	env.addShow(t, ctx, userID, remoteShow(2, "Archer"))
	lostID := env.addShow(t, ctx, userID, remoteShow(3, "Évasion"))

	require.NoError(t, env.m.MarkWatched(ctx, userID, env.episodeID(t, ctx, domeID, 1, 1)))
	require.NoError(t, env.m.SetIgnored(ctx, userID, lostID, true))

	shows, meta, err := env.m.ListShows(ctx, userID, ListShowsFilter{}, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, 3, meta.TotalItems)
	require.Len(t, shows, 3)

	names := []string{shows[0].Show.Name, shows[1].Show.Name, shows[2].Show.Name}
	assert.Equal(t, []string{"Archer", "Évasion", "under the Dome"}, names)

	dome := shows[2]
	assert.Equal(t, storage.MembershipStatusActive, dome.Status)
	assert.Equal(t, 5, dome.EpisodeCount)
	assert.Equal(t, 2, dome.AiredCount)
	assert.Equal(t, 1, dome.WatchedCount)
	require.NotNil(t, dome.NextEpisode)
	assert.Equal(t, int32(104), dome.NextEpisode.ExternalID)
	require.NotNil(t, dome.LastWatchedAt)
	assert.True(t, dome.LastWatchedAt.Equal(testNow))

	assert.Nil(t, shows[0].NextEpisode)
	assert.Nil(t, shows[0].LastWatchedAt)

	t.Run("filter by status", func(t *testing.T) {
		shows, _, err := env.m.ListShows(ctx, userID, ListShowsFilter{Status: storage.MembershipStatusIgnored}, pagination.Params{})
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, int32(lostID), shows[0].Show.ID)
	})

	t.Run("paginated", func(t *testing.T) {
		shows, meta, err := env.m.ListShows(ctx, userID, ListShowsFilter{}, pagination.Params{Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, "under the Dome", shows[0].Show.Name)
		assert.Equal(t, pagination.Meta{Page: 2, PageSize: 2, TotalItems: 3, TotalPages: 2}, meta)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, _, err := env.m.ListShows(ctx, userID, ListShowsFilter{Status: "archived"}, pagination.Params{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("no shows", func(t *testing.T) {
		other := env.createUser(t, ctx, "barbie")
		shows, meta, err := env.m.ListShows(ctx, other, ListShowsFilter{}, pagination.Params{})
		require.NoError(t, err)
		assert.Empty(t, shows)
		assert.Equal(t, 0, meta.TotalItems)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := env.m.ListShows(ctx, 999, ListShowsFilter{}, pagination.Params{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
