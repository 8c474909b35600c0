package sqlite

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
)

// rows per insert statement, keeps bound parameters under the sqlite limit
const watchStateBatchSize = 500

// CreateWatchStates marks episodes watched for a user. Episodes the user
// already watched keep their original timestamp.
func (s *SQLite) CreateWatchStates(ctx context.Context, userID int64, episodeIDs []int64, watchedAt time.Time) (int64, error) {
	if len(episodeIDs) == 0 {
		return 0, nil
	}

	var inserted int64
	err := s.withTx(ctx, func(ctx context.Context, tx *SQLite) error {
		for batch := range slices.Chunk(episodeIDs, watchStateBatchSize) {
			rows := make([]model.WatchState, len(batch))
			for i, id := range batch {
				rows[i] = model.WatchState{
					UserID:    int32(userID),
					EpisodeID: int32(id),
					WatchedAt: watchedAt,
				}
			}

			stmt := table.WatchState.
				INSERT(table.WatchState.UserID, table.WatchState.EpisodeID, table.WatchState.WatchedAt).
				MODELS(rows).
				ON_CONFLICT(table.WatchState.UserID, table.WatchState.EpisodeID).
				DO_NOTHING()

			result, err := tx.handleInsert(ctx, stmt)
			if err != nil {
				return fmt.Errorf("failed to create watch states: %w", err)
			}

			n, err := result.RowsAffected()
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ListWatchStates lists watch states joined with their episode, ordered by episode id
func (s *SQLite) ListWatchStates(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.WatchState, error) {
	stmt := table.WatchState.
		SELECT(table.WatchState.AllColumns).
		FROM(
			table.WatchState.
				INNER_JOIN(table.Episode, table.Episode.ID.EQ(table.WatchState.EpisodeID)),
		)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}
	stmt = stmt.ORDER_BY(table.WatchState.EpisodeID.ASC())

	states := make([]*model.WatchState, 0)
	if err := s.query(ctx, stmt, &states); err != nil {
		return nil, fmt.Errorf("failed to list watch states: %w", err)
	}

	return states, nil
}

// DeleteWatchStates removes watch states matching the where condition and
// returns how many were removed
func (s *SQLite) DeleteWatchStates(ctx context.Context, where sqlite.BoolExpression) (int64, error) {
	stmt := table.WatchState.
		DELETE().
		WHERE(where)

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to delete watch states: %w", err)
	}

	return result.RowsAffected()
}
