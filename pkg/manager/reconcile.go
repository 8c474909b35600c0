package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// MarkAllAiredWatched marks every aired episode of the show that the user has
// not watched yet and returns how many were newly marked. Episodes without an
// air date are never marked. When refresh is set the catalog is ingested
// again first so newly aired episodes are included.
//
// The read of the watched set and the insert of the missing episodes happen
// in one transaction while holding the (user, show) lock, so either every
// missing episode is marked or none are.
func (m *ShowManager) MarkAllAiredWatched(ctx context.Context, userID, showID int64, refresh bool) (int, error) {
	log := logger.FromCtx(ctx, "user_id", userID, "show_id", showID)

	show, err := m.storage.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(showID)))
	if err != nil {
		return 0, storageError(fmt.Sprintf("show %d", showID), err)
	}

	// fail before the provider is called when the show isn't on the user's list
	if _, err := m.storage.GetMembership(ctx, userID, showID); err != nil {
		return 0, membershipError(userID, showID, err)
	}

	if refresh {
		if _, err := m.IngestShow(ctx, show.ExternalID); err != nil {
			log.Warn("failed to refresh show before marking", zap.Error(err))
			return 0, err
		}
	}

	unlock := m.lock(userID, showID)
	defer unlock()

	var marked int64
	err = m.storage.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		if err := requireMembership(ctx, tx, userID, showID); err != nil {
			return err
		}

		episodes, err := tx.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
		if err != nil {
			return err
		}

		states, err := tx.ListWatchStates(ctx,
			table.WatchState.UserID.EQ(sqlite.Int64(userID)),
			table.Episode.ShowID.EQ(sqlite.Int64(showID)),
		)
		if err != nil {
			return err
		}
		watched := watchedSet(states)

		now := m.now()
		var missing []int64
		for _, e := range episodes {
			if !isAired(e, now) {
				continue
			}
			if _, ok := watched[e.ID]; ok {
				continue
			}
			missing = append(missing, int64(e.ID))
		}

		if len(missing) == 0 {
			return nil
		}

		marked, err = tx.CreateWatchStates(ctx, userID, missing, now)
		return err
	})
	if err != nil {
		return 0, storageError("failed to mark aired episodes watched", err)
	}

	log.Infow("marked aired episodes watched", "marked", marked)
	return int(marked), nil
}

func membershipError(userID, showID int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("user %d show %d: %w", userID, showID, ErrMembershipRequired)
	}
	return storageError("failed to get membership", err)
}
