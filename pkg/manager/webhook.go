package manager

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
)

// WebhookEvent is a watched signal from an external player. The episode is
// referenced by its provider id or by its season and number.
type WebhookEvent struct {
	ShowExternalID    int32  `json:"showId" validate:"required,gt=0"`
	EpisodeExternalID *int32 `json:"episodeId,omitempty"`
	Season            *int32 `json:"season,omitempty"`
	Number            *int32 `json:"number,omitempty"`
	Watched           bool   `json:"watched"`
}

// HandleWebhook marks the referenced episode watched for the user. Events
// that cannot be resolved against the local catalog, that are not watched
// signals, or that target a show the user doesn't track are ignored.
//
// The event carries nothing that proves which user watched the episode. The
// user is whoever owns the webhook URL.
func (m *ShowManager) HandleWebhook(ctx context.Context, userID int64, event WebhookEvent) error {
	log := logger.FromCtx(ctx, "user_id", userID, "show_external_id", event.ShowExternalID)

	if !event.Watched {
		log.Debug("ignoring webhook event that is not a watched signal")
		return nil
	}

	episode, err := m.resolveWebhookEpisode(ctx, event)
	if errors.Is(err, storage.ErrNotFound) {
		log.Debug("ignoring webhook event for unknown episode")
		return nil
	}
	if err != nil {
		return storageError("failed to resolve webhook episode", err)
	}

	err = m.MarkWatched(ctx, userID, int64(episode.ID))
	if errors.Is(err, ErrMembershipRequired) || errors.Is(err, ErrNotFound) {
		log.Debug("ignoring webhook event for untracked show", zap.Error(err))
		return nil
	}
	return err
}

func (m *ShowManager) resolveWebhookEpisode(ctx context.Context, event WebhookEvent) (*model.Episode, error) {
	show, err := m.storage.GetShow(ctx, table.Show.ExternalID.EQ(sqlite.Int32(event.ShowExternalID)))
	if err != nil {
		return nil, err
	}

	where := table.Episode.ShowID.EQ(sqlite.Int32(show.ID))
	switch {
	case event.EpisodeExternalID != nil:
		where = where.AND(table.Episode.ExternalID.EQ(sqlite.Int32(*event.EpisodeExternalID)))
	case event.Season != nil && event.Number != nil:
		where = where.AND(table.Episode.Season.EQ(sqlite.Int32(*event.Season))).
			AND(table.Episode.Number.EQ(sqlite.Int32(*event.Number)))
	default:
		return nil, storage.ErrNotFound
	}

	return m.storage.GetEpisode(ctx, where)
}
