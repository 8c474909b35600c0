package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
)

// UpsertShow stores a show keyed by external id. Every provider field is
// overwritten on conflict and the local id is returned.
func (s *SQLite) UpsertShow(ctx context.Context, show model.Show) (int64, error) {
	insertColumns := table.Show.MutableColumns.Except(table.Show.CreatedAt, table.Show.UpdatedAt)

	stmt := table.Show.
		INSERT(insertColumns).
		MODEL(show).
		ON_CONFLICT(table.Show.ExternalID).
		DO_UPDATE(sqlite.SET(
			table.Show.Name.SET(table.Show.EXCLUDED.Name),
			table.Show.Status.SET(table.Show.EXCLUDED.Status),
			table.Show.Premiered.SET(table.Show.EXCLUDED.Premiered),
			table.Show.Ended.SET(table.Show.EXCLUDED.Ended),
			table.Show.Rating.SET(table.Show.EXCLUDED.Rating),
			table.Show.Summary.SET(table.Show.EXCLUDED.Summary),
			table.Show.ImageURL.SET(table.Show.EXCLUDED.ImageURL),
			table.Show.LastSynced.SET(table.Show.EXCLUDED.LastSynced),
			table.Show.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		))

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert show: %w", err)
	}

	existing, err := s.GetShow(ctx, table.Show.ExternalID.EQ(sqlite.Int32(show.ExternalID)))
	if err != nil {
		return 0, fmt.Errorf("failed to get upserted show: %w", err)
	}

	return int64(existing.ID), nil
}

// GetShow gets a show matching the where condition
func (s *SQLite) GetShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		WHERE(where)

	var show model.Show
	if err := s.query(ctx, stmt, &show); err != nil {
		return nil, err
	}

	return &show, nil
}

// GetShowDetails gets a show and its episodes ordered by season and number
func (s *SQLite) GetShowDetails(ctx context.Context, where sqlite.BoolExpression) (*storage.ShowDetails, error) {
	stmt := sqlite.
		SELECT(
			table.Show.AllColumns,
			table.Episode.AllColumns,
		).
		FROM(
			table.Show.
				LEFT_JOIN(table.Episode, table.Episode.ShowID.EQ(table.Show.ID)),
		).
		WHERE(where).
		ORDER_BY(table.Episode.Season.ASC(), table.Episode.Number.ASC())

	var details storage.ShowDetails
	if err := s.query(ctx, stmt, &details); err != nil {
		return nil, err
	}

	if details.Episodes == nil {
		details.Episodes = make([]*model.Episode, 0)
	}

	return &details, nil
}

// ListShows lists shows ordered by id
func (s *SQLite) ListShows(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}
	stmt = stmt.ORDER_BY(table.Show.ID.ASC())

	shows := make([]*model.Show, 0)
	if err := s.query(ctx, stmt, &shows); err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, nil
}

// ListTrackedShows lists shows that at least one user has a membership for.
// Rows repeated by the join are collapsed on the primary key.
func (s *SQLite) ListTrackedShows(ctx context.Context) ([]*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(
			table.Show.
				INNER_JOIN(table.ShowMembership, table.ShowMembership.ShowID.EQ(table.Show.ID)),
		).
		ORDER_BY(table.Show.ID.ASC())

	shows := make([]*model.Show, 0)
	if err := s.query(ctx, stmt, &shows); err != nil {
		return nil, fmt.Errorf("failed to list tracked shows: %w", err)
	}

	return shows, nil
}

// UpdateShowLastSynced records when the show's catalog was last fetched
func (s *SQLite) UpdateShowLastSynced(ctx context.Context, id int64, syncedAt time.Time) error {
	show := model.Show{LastSynced: &syncedAt}

	stmt := table.Show.
		UPDATE(table.Show.LastSynced).
		MODEL(show).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show last synced: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
