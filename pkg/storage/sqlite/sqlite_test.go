package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T, ctx context.Context) storage.Storage {
	t.Helper()

	store, err := New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	err = store.RunMigrations(ctx)
	require.NoError(t, err)

	return store
}

func ptr[T any](v T) *T {
	return &v
}

// seedShow creates a user, a show with the given number of season 1 episodes, and returns their ids
func seedShow(t *testing.T, ctx context.Context, store storage.Storage, episodes int) (userID, showID int64, episodeIDs []int64) {
	t.Helper()

	userID, err := store.CreateUser(ctx, model.User{Username: fmt.Sprintf("user-%d", time.Now().UnixNano())})
	require.NoError(t, err)

	showID, err = store.UpsertShow(ctx, model.Show{ExternalID: 1, Name: "Under the Dome", Status: "Ended"})
	require.NoError(t, err)

	for i := 1; i <= episodes; i++ {
		id, err := store.CreateEpisode(ctx, model.Episode{
			ShowID:     int32(showID),
			ExternalID: int32(100 + i),
			Season:     1,
			Number:     int32(i),
			Name:       fmt.Sprintf("Episode %d", i),
		})
		require.NoError(t, err)
		episodeIDs = append(episodeIDs, id)
	}

	return userID, showID, episodeIDs
}

func TestInit(t *testing.T) {
	store := initSqlite(t, context.Background())
	assert.NotNil(t, store)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_busy_timeout=5000&_foreign_keys=1&_txlock=immediate", dsn(":memory:"))
	assert.Equal(t, "/data/showtrack.db?_busy_timeout=5000&_foreign_keys=1&_journal_mode=WAL&_txlock=immediate", dsn("/data/showtrack.db"))
	assert.Equal(t, "file:test.db?cache=shared&_busy_timeout=5000&_foreign_keys=1&_journal_mode=WAL&_txlock=immediate", dsn("file:test.db?cache=shared"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: qrm.ErrNoRows, want: storage.ErrNotFound},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: storage.ErrUnavailable},
		{name: "locked", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: storage.ErrUnavailable},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: storage.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.want)
		})
	}

	other := errors.New("boom")
	assert.Same(t, other, classify(other))
	assert.Nil(t, classify(nil))
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits", func(t *testing.T) {
		store := initSqlite(t, ctx)

		err := store.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
			_, err := tx.CreateUser(ctx, model.User{Username: "alice"})
			return err
		})
		require.NoError(t, err)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		store := initSqlite(t, ctx)
		boom := errors.New("boom")

		err := store.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
			_, err := tx.CreateUser(ctx, model.User{Username: "alice"})
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("rolls back on cancel", func(t *testing.T) {
		store := initSqlite(t, ctx)
		cancelCtx, cancel := context.WithCancel(ctx)

		err := store.RunInTransaction(cancelCtx, func(ctx context.Context, tx storage.Storage) error {
			_, err := tx.CreateUser(ctx, model.User{Username: "alice"})
			require.NoError(t, err)
			cancel()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("nested joins outer transaction", func(t *testing.T) {
		store := initSqlite(t, ctx)
		boom := errors.New("boom")

		err := store.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
			err := tx.RunInTransaction(ctx, func(ctx context.Context, inner storage.Storage) error {
				_, err := inner.CreateUser(ctx, model.User{Username: "alice"})
				return err
			})
			require.NoError(t, err)

			_, err = tx.GetUser(ctx, table.User.Username.EQ(sqlite.String("alice")))
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = store.GetUser(ctx, table.User.Username.EQ(sqlite.String("alice")))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
