package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
)

// CreateEpisode stores a new episode
func (s *SQLite) CreateEpisode(ctx context.Context, episode model.Episode) (int64, error) {
	stmt := table.Episode.
		INSERT(table.Episode.MutableColumns).
		MODEL(episode)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create episode: %w", err)
	}

	return result.LastInsertId()
}

// UpdateEpisode overwrites the provider fields of an existing episode by id
func (s *SQLite) UpdateEpisode(ctx context.Context, episode model.Episode) error {
	stmt := table.Episode.
		UPDATE(
			table.Episode.Season,
			table.Episode.Number,
			table.Episode.Name,
			table.Episode.AirDate,
			table.Episode.Runtime,
			table.Episode.Summary,
		).
		MODEL(episode).
		WHERE(table.Episode.ID.EQ(sqlite.Int32(episode.ID)))

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update episode: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// GetEpisode gets an episode matching the where condition
func (s *SQLite) GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		WHERE(where)

	var episode model.Episode
	if err := s.query(ctx, stmt, &episode); err != nil {
		return nil, err
	}

	return &episode, nil
}

// ListEpisodes lists episodes ordered by show, season and number
func (s *SQLite) ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode)

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}
	stmt = stmt.ORDER_BY(
		table.Episode.ShowID.ASC(),
		table.Episode.Season.ASC(),
		table.Episode.Number.ASC(),
	)

	episodes := make([]*model.Episode, 0)
	if err := s.query(ctx, stmt, &episodes); err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}
