package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
)

// EpisodeState is an episode with the user's watch state
type EpisodeState struct {
	model.Episode
	Aired     bool       `json:"aired"`
	Watched   bool       `json:"watched"`
	WatchedAt *time.Time `json:"watchedAt,omitempty"`
}

// MarkWatched records the episode as watched by the user. Marking an episode
// that is already watched keeps the original timestamp.
func (m *ShowManager) MarkWatched(ctx context.Context, userID, episodeID int64) error {
	log := logger.FromCtx(ctx, "user_id", userID, "episode_id", episodeID)

	episode, err := m.getEpisode(ctx, episodeID)
	if err != nil {
		return err
	}

	unlock := m.lock(userID, int64(episode.ShowID))
	defer unlock()

	var inserted int64
	err = m.storage.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		if err := requireMembership(ctx, tx, userID, int64(episode.ShowID)); err != nil {
			return err
		}

		inserted, err = tx.CreateWatchStates(ctx, userID, []int64{episodeID}, m.now())
		return err
	})
	if err != nil {
		return storageError("failed to mark episode watched", err)
	}

	if inserted > 0 {
		log.Debug("marked episode watched")
	}
	return nil
}

// MarkUnwatched clears the user's watch state for the episode. An episode
// that is not watched is left alone.
func (m *ShowManager) MarkUnwatched(ctx context.Context, userID, episodeID int64) error {
	log := logger.FromCtx(ctx, "user_id", userID, "episode_id", episodeID)

	episode, err := m.getEpisode(ctx, episodeID)
	if err != nil {
		return err
	}

	unlock := m.lock(userID, int64(episode.ShowID))
	defer unlock()

	deleted, err := m.storage.DeleteWatchStates(ctx,
		table.WatchState.UserID.EQ(sqlite.Int64(userID)).
			AND(table.WatchState.EpisodeID.EQ(sqlite.Int64(episodeID))))
	if err != nil {
		return storageError("failed to mark episode unwatched", err)
	}

	if deleted > 0 {
		log.Debug("marked episode unwatched")
	}
	return nil
}

// ListWatched returns the ids of the show's episodes the user has watched
func (m *ShowManager) ListWatched(ctx context.Context, userID, showID int64) (map[int32]struct{}, error) {
	states, err := m.storage.ListWatchStates(ctx,
		table.WatchState.UserID.EQ(sqlite.Int64(userID)),
		table.Episode.ShowID.EQ(sqlite.Int64(showID)),
	)
	if err != nil {
		return nil, storageError("failed to list watched episodes", err)
	}

	return watchedSet(states), nil
}

// ListEpisodes returns the show's episodes in order with the user's watch state
func (m *ShowManager) ListEpisodes(ctx context.Context, userID, showID int64) ([]EpisodeState, error) {
	details, err := m.GetShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	states, err := m.storage.ListWatchStates(ctx,
		table.WatchState.UserID.EQ(sqlite.Int64(userID)),
		table.Episode.ShowID.EQ(sqlite.Int64(showID)),
	)
	if err != nil {
		return nil, storageError("failed to list watched episodes", err)
	}

	watchedAt := make(map[int32]time.Time, len(states))
	for _, s := range states {
		watchedAt[s.EpisodeID] = s.WatchedAt
	}

	now := m.now()
	episodes := make([]EpisodeState, 0, len(details.Episodes))
	for _, e := range details.Episodes {
		state := EpisodeState{
			Episode: *e,
			Aired:   isAired(e, now),
		}
		if at, ok := watchedAt[e.ID]; ok {
			state.Watched = true
			state.WatchedAt = &at
		}
		episodes = append(episodes, state)
	}

	return episodes, nil
}

func (m *ShowManager) getEpisode(ctx context.Context, episodeID int64) (*model.Episode, error) {
	episode, err := m.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(episodeID)))
	if err != nil {
		return nil, storageError(fmt.Sprintf("episode %d", episodeID), err)
	}
	return episode, nil
}

// requireMembership fails with ErrMembershipRequired unless the user tracks the show
func requireMembership(ctx context.Context, tx storage.Storage, userID, showID int64) error {
	_, err := tx.GetMembership(ctx, userID, showID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("user %d show %d: %w", userID, showID, ErrMembershipRequired)
	}
	return err
}

func watchedSet(states []*model.WatchState) map[int32]struct{} {
	watched := make(map[int32]struct{}, len(states))
	for _, s := range states {
		watched[s.EpisodeID] = struct{}{}
	}
	return watched
}

// isAired reports whether the episode has an air date at or before now,
// compared at second granularity.
func isAired(e *model.Episode, now time.Time) bool {
	if e.AirDate == nil {
		return false
	}
	return !e.AirDate.Truncate(time.Second).After(now.Truncate(time.Second))
}
