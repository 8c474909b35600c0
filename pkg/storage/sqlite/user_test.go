package sqlite

import (
	"context"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	id, err := store.CreateUser(ctx, model.User{Username: "alice"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	_, err = store.CreateUser(ctx, model.User{Username: "alice"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	user, err := store.GetUser(ctx, table.User.ID.EQ(sqlite.Int64(id)))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.CreatedAt.IsZero())

	users, err = store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	err = store.DeleteUser(ctx, id)
	require.NoError(t, err)

	_, err = store.GetUser(ctx, table.User.ID.EQ(sqlite.Int64(id)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteUser_ForeignKeys(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	userID, showID, _ := seedShow(t, ctx, store, 1)
	_, err := store.CreateMembership(ctx, model.ShowMembership{
		UserID: int32(userID),
		ShowID: int32(showID),
		Status: string(storage.MembershipStatusActive),
	})
	require.NoError(t, err)

	err = store.DeleteUser(ctx, userID)
	assert.Error(t, err)

	_, err = store.GetUser(ctx, table.User.ID.EQ(sqlite.Int64(userID)))
	assert.NoError(t, err)
}
