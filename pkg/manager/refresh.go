package manager

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Run refreshes stale tracked shows on the configured interval until ctx is
// done. It returns immediately when the interval is zero.
func (m *ShowManager) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	interval := m.config.Jobs.CatalogRefresh
	if interval <= 0 {
		log.Info("catalog refresh disabled")
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			refreshed, err := m.RefreshStaleShows(ctx)
			if err != nil {
				log.Warn("catalog refresh finished with errors", zap.Int("refreshed", refreshed), zap.Error(err))
				continue
			}
			log.Debugw("catalog refresh finished", "refreshed", refreshed)
		}
	}
}

// RefreshStaleShows ingests every show with at least one membership whose
// catalog is stale. Transient failures are retried per show. It returns the
// number of shows refreshed and the joined errors of the shows that failed.
func (m *ShowManager) RefreshStaleShows(ctx context.Context) (int, error) {
	log := logger.FromCtx(ctx)

	tracked, err := m.storage.ListTrackedShows(ctx)
	if err != nil {
		return 0, storageError("failed to list tracked shows", err)
	}

	now := m.now()
	stale := make([]*model.Show, 0, len(tracked))
	for _, show := range tracked {
		if m.IsStale(*show, now) {
			stale = append(stale, show)
		}
	}

	if len(stale) == 0 {
		log.Debug("no stale shows to refresh")
		return 0, nil
	}
	log.Infow("refreshing stale shows", "count", len(stale))

	var refreshed atomic.Int64
	p := pool.New().WithMaxGoroutines(max(m.config.RefreshWorkers, 1)).WithContext(ctx)
	for _, show := range stale {
		p.Go(func(ctx context.Context) error {
			if err := m.refreshShow(ctx, show); err != nil {
				return fmt.Errorf("show %d: %w", show.ExternalID, err)
			}
			refreshed.Add(1)
			return nil
		})
	}

	err = p.Wait()
	return int(refreshed.Load()), err
}

func (m *ShowManager) refreshShow(ctx context.Context, show *model.Show) error {
	log := logger.FromCtx(ctx, "show_id", show.ID, "external_id", show.ExternalID)

	return retry.Do(
		func() error {
			_, err := m.IngestShow(ctx, show.ExternalID)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(max(m.config.RefreshAttempts, 1)),
		retry.Delay(m.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			log.Debugw("retrying show refresh", "attempt", n+1, "error", err)
		}),
	)
}

func isTransient(err error) bool {
	return errors.Is(err, ErrCatalogUnavailable) || errors.Is(err, ErrStorageUnavailable)
}
