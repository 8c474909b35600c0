package manager

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/pagination"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UserShow is a show on a user's list with their progress through it
type UserShow struct {
	Show          model.Show               `json:"show"`
	Status        storage.MembershipStatus `json:"status"`
	AddedAt       time.Time                `json:"addedAt"`
	EpisodeCount  int                      `json:"episodeCount"`
	AiredCount    int                      `json:"airedCount"`
	WatchedCount  int                      `json:"watchedCount"`
	NextEpisode   *model.Episode           `json:"nextEpisode,omitempty"`
	LastWatchedAt *time.Time               `json:"lastWatchedAt,omitempty"`
}

type ListShowsFilter struct {
	// Status limits the list to one membership status. Empty lists every show.
	Status storage.MembershipStatus
}

// CreateUser registers a new user
func (m *ShowManager) CreateUser(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is empty: %w", ErrInvalidArgument)
	}

	id, err := m.storage.CreateUser(ctx, model.User{Username: username})
	if err != nil {
		return nil, storageError(fmt.Sprintf("failed to create user %q", username), err)
	}

	return m.GetUser(ctx, id)
}

func (m *ShowManager) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := m.storage.GetUser(ctx, table.User.ID.EQ(sqlite.Int64(userID)))
	if err != nil {
		return nil, storageError(fmt.Sprintf("user %d", userID), err)
	}
	return user, nil
}

func (m *ShowManager) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := m.storage.ListUsers(ctx)
	if err != nil {
		return nil, storageError("failed to list users", err)
	}
	return users, nil
}

// DeleteUser removes a user with all of its watch state and memberships in one transaction
func (m *ShowManager) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromCtx(ctx, "user_id", userID)

	err := m.storage.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		if _, err := tx.GetUser(ctx, table.User.ID.EQ(sqlite.Int64(userID))); err != nil {
			return err
		}

		watched, err := tx.DeleteWatchStates(ctx, table.WatchState.UserID.EQ(sqlite.Int64(userID)))
		if err != nil {
			return err
		}

		memberships, err := tx.DeleteMemberships(ctx, table.ShowMembership.UserID.EQ(sqlite.Int64(userID)))
		if err != nil {
			return err
		}

		log.Debugw("deleting user", "watch_states", watched, "memberships", memberships)
		return tx.DeleteUser(ctx, userID)
	})
	if err != nil {
		return storageError(fmt.Sprintf("failed to delete user %d", userID), err)
	}

	log.Info("deleted user")
	return nil
}

// AddShow puts a show on the user's list, ingesting it first when it is not
// yet known locally. An existing membership is left unchanged.
func (m *ShowManager) AddShow(ctx context.Context, userID int64, externalID int32) (*storage.ShowDetails, error) {
	log := logger.FromCtx(ctx, "user_id", userID, "external_id", externalID)

	if err := m.getUser(ctx, userID); err != nil {
		return nil, err
	}

	details, err := m.GetShowByExternalID(ctx, externalID)
	if errors.Is(err, ErrNotFound) {
		var ingested *IngestResult
		ingested, err = m.IngestShow(ctx, externalID)
		if ingested != nil {
			details = ingested.ShowDetails
		}
	}
	if err != nil {
		return nil, err
	}

	created, err := m.storage.CreateMembership(ctx, model.ShowMembership{
		UserID: int32(userID),
		ShowID: details.ID,
		Status: string(storage.MembershipStatusActive),
	})
	if err != nil {
		return nil, storageError("failed to create membership", err)
	}

	if created {
		log.Infow("added show", "show_id", details.ID)
	} else {
		log.Debugw("show already added", "show_id", details.ID)
	}

	return details, nil
}

// SetIgnored moves a membership between active and ignored
func (m *ShowManager) SetIgnored(ctx context.Context, userID, showID int64, ignored bool) error {
	log := logger.FromCtx(ctx, "user_id", userID, "show_id", showID)

	target := storage.MembershipStatusActive
	if ignored {
		target = storage.MembershipStatusIgnored
	}

	unlock := m.lock(userID, showID)
	defer unlock()

	err := m.storage.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		membership, err := tx.GetMembership(ctx, userID, showID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		if err != nil {
			return err
		}

		machine := membership.Machine()
		if machine.Current() == target {
			return nil
		}
		if err := machine.ToState(target); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		return tx.UpdateMembershipStatus(ctx, int64(membership.ID), target)
	})
	if err != nil {
		log.Debug("failed to set membership status", zap.Error(err))
		return storageError("failed to set membership status", err)
	}

	return nil
}

// RemoveShow deletes the user's membership and every watch state for the
// show's episodes in one transaction. Removing a show that is not on the list
// succeeds.
func (m *ShowManager) RemoveShow(ctx context.Context, userID, showID int64) error {
	log := logger.FromCtx(ctx, "user_id", userID, "show_id", showID)

	unlock := m.lock(userID, showID)
	defer unlock()

	var watched, memberships int64
	err := m.storage.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		var err error
		watched, err = tx.DeleteWatchStates(ctx, watchStatesForShow(userID, showID))
		if err != nil {
			return err
		}

		memberships, err = tx.DeleteMemberships(ctx,
			table.ShowMembership.UserID.EQ(sqlite.Int64(userID)).
				AND(table.ShowMembership.ShowID.EQ(sqlite.Int64(showID))))
		return err
	})
	if err != nil {
		return storageError("failed to remove show", err)
	}

	if memberships == 0 {
		log.Debug("show was not on the list")
		return nil
	}

	log.Infow("removed show", "watch_states", watched)
	return nil
}

// ListShows lists the user's shows sorted by name
func (m *ShowManager) ListShows(ctx context.Context, userID int64, filter ListShowsFilter, page pagination.Params) ([]UserShow, pagination.Meta, error) {
	if filter.Status != "" && !storage.MembershipTransitions.Known(filter.Status) {
		return nil, pagination.Meta{}, fmt.Errorf("unknown status %q: %w", filter.Status, ErrInvalidArgument)
	}

	if err := m.getUser(ctx, userID); err != nil {
		return nil, pagination.Meta{}, err
	}

	where := []sqlite.BoolExpression{table.ShowMembership.UserID.EQ(sqlite.Int64(userID))}
	if filter.Status != "" {
		where = append(where, table.ShowMembership.Status.EQ(sqlite.String(string(filter.Status))))
	}

	memberships, err := m.storage.ListMemberships(ctx, where...)
	if err != nil {
		return nil, pagination.Meta{}, storageError("failed to list memberships", err)
	}
	if len(memberships) == 0 {
		shows, meta := pagination.Slice([]UserShow{}, page)
		return shows, meta, nil
	}

	showIDs := make([]sqlite.Expression, len(memberships))
	for i, ms := range memberships {
		showIDs[i] = sqlite.Int32(ms.ShowID)
	}

	episodes, err := m.storage.ListEpisodes(ctx, table.Episode.ShowID.IN(showIDs...))
	if err != nil {
		return nil, pagination.Meta{}, storageError("failed to list episodes", err)
	}

	states, err := m.storage.ListWatchStates(ctx,
		table.WatchState.UserID.EQ(sqlite.Int64(userID)),
		table.Episode.ShowID.IN(showIDs...),
	)
	if err != nil {
		return nil, pagination.Meta{}, storageError("failed to list watch states", err)
	}

	watchedAt := make(map[int32]time.Time, len(states))
	for _, s := range states {
		watchedAt[s.EpisodeID] = s.WatchedAt
	}

	byShow := make(map[int32][]*model.Episode)
	for _, e := range episodes {
		byShow[e.ShowID] = append(byShow[e.ShowID], e)
	}

	now := m.now()
	shows := make([]UserShow, 0, len(memberships))
	for _, ms := range memberships {
		us := UserShow{
			Status:  storage.MembershipStatus(ms.Status),
			AddedAt: ms.CreatedAt,
		}
		if ms.Show != nil {
			us.Show = *ms.Show
		}

		for _, e := range byShow[ms.ShowID] {
			us.EpisodeCount++
			if isAired(e, now) {
				us.AiredCount++
			} else if e.AirDate != nil && (us.NextEpisode == nil || e.AirDate.Before(*us.NextEpisode.AirDate)) {
				us.NextEpisode = e
			}

			if at, ok := watchedAt[e.ID]; ok {
				us.WatchedCount++
				if us.LastWatchedAt == nil || at.After(*us.LastWatchedAt) {
					us.LastWatchedAt = &at
				}
			}
		}

		shows = append(shows, us)
	}

	sortShowsByName(shows)

	paged, meta := pagination.Slice(shows, page)
	return paged, meta, nil
}

// sortShowsByName orders shows with a case and accent insensitive collation
func sortShowsByName(shows []UserShow) {
	c := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(shows, func(i, j int) bool {
		if cmp := c.CompareString(shows[i].Show.Name, shows[j].Show.Name); cmp != 0 {
			return cmp < 0
		}
		return shows[i].Show.ID < shows[j].Show.ID
	})
}

// watchStatesForShow matches a user's watch states for every episode of a show
func watchStatesForShow(userID, showID int64) sqlite.BoolExpression {
	return table.WatchState.UserID.EQ(sqlite.Int64(userID)).
		AND(table.WatchState.EpisodeID.IN(
			table.Episode.
				SELECT(table.Episode.ID).
				WHERE(table.Episode.ShowID.EQ(sqlite.Int64(showID))),
		))
}
