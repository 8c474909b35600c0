package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, showID, ids := seedShow(t, ctx, store, 2)

	episodes, err := store.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Nil(t, episodes[0].AirDate)

	airDate := time.Date(2013, 6, 25, 2, 0, 0, 0, time.UTC)
	update := *episodes[0]
	update.Name = "Pilot"
	update.AirDate = &airDate
	update.Runtime = ptr(int32(60))
	require.NoError(t, store.UpdateEpisode(ctx, update))

	got, err := store.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(ids[0])))
	require.NoError(t, err)
	assert.Equal(t, "Pilot", got.Name)
	require.NotNil(t, got.AirDate)
	assert.True(t, airDate.Equal(*got.AirDate))
	assert.Equal(t, int32(60), *got.Runtime)

	_, err = store.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(999)))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.UpdateEpisode(ctx, model.Episode{ID: 999, Name: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEpisodeStorage_Uniqueness(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, showID, _ := seedShow(t, ctx, store, 2)

	_, err := store.CreateEpisode(ctx, model.Episode{ShowID: int32(showID), ExternalID: 101, Season: 2, Number: 1})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists, "external id is unique per show")

	_, err = store.CreateEpisode(ctx, model.Episode{ShowID: int32(showID), ExternalID: 500, Season: 1, Number: 1})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists, "position is unique per show")

	_, err = store.CreateEpisode(ctx, model.Episode{ShowID: 999, ExternalID: 1, Season: 1, Number: 1})
	assert.Error(t, err, "show must exist")
}

func TestEpisodeStorage_SwapPositions(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, showID, ids := seedShow(t, ctx, store, 2)

	err := store.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		first, err := tx.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(ids[0])))
		require.NoError(t, err)
		second, err := tx.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(ids[1])))
		require.NoError(t, err)

		parked := *first
		parked.Number = -parked.ID
		require.NoError(t, tx.UpdateEpisode(ctx, parked))

		second.Number = 1
		require.NoError(t, tx.UpdateEpisode(ctx, *second))

		first.Number = 2
		return tx.UpdateEpisode(ctx, *first)
	})
	require.NoError(t, err)

	episodes, err := store.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, int32(ids[1]), episodes[0].ID)
	assert.Equal(t, int32(ids[0]), episodes[1].ID)
}
