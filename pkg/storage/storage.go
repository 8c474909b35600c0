package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/machine"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
)

var (
	ErrNotFound      = errors.New("not found in storage")
	ErrAlreadyExists = errors.New("already exists in storage")
	ErrUnavailable   = errors.New("storage unavailable")
)

//go:generate mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/showtrack/pkg/storage Storage

// TxFunc is run by RunInTransaction with a Storage bound to the open transaction.
type TxFunc func(ctx context.Context, tx Storage) error

type Storage interface {
	RunMigrations(ctx context.Context) error
	// RunInTransaction runs fn inside a single write transaction. Nested calls
	// join the outer transaction.
	RunInTransaction(ctx context.Context, fn TxFunc) error
	Close() error

	UserStorage
	ShowStorage
	EpisodeStorage
	MembershipStorage
	WatchStateStorage
}

type UserStorage interface {
	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUser(ctx context.Context, where sqlite.BoolExpression) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ShowDetails struct {
	model.Show
	Episodes []*model.Episode `json:"episodes"`
}

type ShowStorage interface {
	// UpsertShow inserts or updates a show keyed by its external id and returns the local id.
	UpsertShow(ctx context.Context, show model.Show) (int64, error)
	GetShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error)
	GetShowDetails(ctx context.Context, where sqlite.BoolExpression) (*ShowDetails, error)
	ListShows(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Show, error)
	// ListTrackedShows lists shows referenced by at least one membership.
	ListTrackedShows(ctx context.Context) ([]*model.Show, error)
	UpdateShowLastSynced(ctx context.Context, id int64, syncedAt time.Time) error
}

type EpisodeStorage interface {
	CreateEpisode(ctx context.Context, episode model.Episode) (int64, error)
	UpdateEpisode(ctx context.Context, episode model.Episode) error
	GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error)
	ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error)
}

type MembershipStatus string

const (
	MembershipStatusActive  MembershipStatus = "active"
	MembershipStatusIgnored MembershipStatus = "ignored"
)

type Membership struct {
	model.ShowMembership
	Show *model.Show `json:"show,omitempty"`
}

// MembershipTransitions is every allowed membership status change
var MembershipTransitions = machine.NewGraph(
	machine.From(MembershipStatusActive).To(MembershipStatusIgnored),
	machine.From(MembershipStatusIgnored).To(MembershipStatusActive),
)

func (m Membership) Machine() *machine.StateMachine[MembershipStatus] {
	return MembershipTransitions.Machine(MembershipStatus(m.Status))
}

type MembershipStorage interface {
	// CreateMembership inserts the membership unless one already exists for the
	// (user, show) pair. It reports whether a row was inserted.
	CreateMembership(ctx context.Context, membership model.ShowMembership) (bool, error)
	GetMembership(ctx context.Context, userID, showID int64) (*Membership, error)
	ListMemberships(ctx context.Context, where ...sqlite.BoolExpression) ([]*Membership, error)
	UpdateMembershipStatus(ctx context.Context, id int64, status MembershipStatus) error
	DeleteMemberships(ctx context.Context, where sqlite.BoolExpression) (int64, error)
}

type WatchStateStorage interface {
	// CreateWatchStates marks the episodes watched for the user. Existing rows
	// are left untouched. It returns the number of rows inserted.
	CreateWatchStates(ctx context.Context, userID int64, episodeIDs []int64, watchedAt time.Time) (int64, error)
	// ListWatchStates lists watch states joined with their episode so callers
	// may filter on episode columns.
	ListWatchStates(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.WatchState, error)
	DeleteWatchStates(ctx context.Context, where sqlite.BoolExpression) (int64, error)
}
