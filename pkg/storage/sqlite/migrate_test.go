package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigration_FreshDatabase(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(ctx, tmpFile)
	require.NoError(t, err)
	defer store.Close()

	err = store.RunMigrations(ctx)
	require.NoError(t, err)

	version, dirty, err := store.(*SQLite).GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMigration_VersionBeforeMigrating(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	version, dirty, err := store.(*SQLite).GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)
	assert.False(t, dirty)
}

func TestMigration_Idempotent(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	for range 2 {
		store, err := New(ctx, tmpFile)
		require.NoError(t, err)

		require.NoError(t, store.RunMigrations(ctx))
		require.NoError(t, store.Close())
	}
}

func TestMigration_Down(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx).(*SQLite)

	m, err := newMigrate(store.db)
	require.NoError(t, err)
	require.NoError(t, m.Down())

	var count int
	err = store.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='watch_state'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
