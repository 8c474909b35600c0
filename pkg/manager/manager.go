package manager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/config"
	"github.com/kasuboski/showtrack/pkg/cache"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"github.com/kasuboski/showtrack/pkg/tvmaze"
)

type TVMazeClientInterface tvmaze.ClientInterface

const defaultRetryDelay = time.Second

// ShowManager owns the catalog, show memberships and watch state of every user.
// It is safe for concurrent use.
type ShowManager struct {
	tvmaze     TVMazeClientInterface
	storage    storage.Storage
	config     config.Manager
	clock      func() time.Time
	retryDelay time.Duration
	locks      *cache.Cache[lockKey, *sync.Mutex]
}

type Option func(*ShowManager)

// WithClock overrides the source of the current time
func WithClock(clock func() time.Time) Option {
	return func(m *ShowManager) {
		m.clock = clock
	}
}

// WithRetryDelay sets the delay between refresh attempts of a single show
func WithRetryDelay(d time.Duration) Option {
	return func(m *ShowManager) {
		m.retryDelay = d
	}
}

func New(client TVMazeClientInterface, store storage.Storage, cfg config.Manager, opts ...Option) *ShowManager {
	m := &ShowManager{
		tvmaze:     client,
		storage:    store,
		config:     cfg,
		clock:      time.Now,
		retryDelay: defaultRetryDelay,
		locks:      cache.New[lockKey, *sync.Mutex](),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *ShowManager) now() time.Time {
	return m.clock().UTC()
}

type lockKey struct {
	userID int64
	showID int64
}

// lock serializes mutations of one user's state for one show. The returned
// func releases the lock.
func (m *ShowManager) lock(userID, showID int64) func() {
	mu := m.locks.GetOrCreate(lockKey{userID: userID, showID: showID}, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	mu.Lock()
	return mu.Unlock
}

func (m *ShowManager) getUser(ctx context.Context, userID int64) error {
	_, err := m.storage.GetUser(ctx, table.User.ID.EQ(sqlite.Int64(userID)))
	if err != nil {
		return storageError(fmt.Sprintf("user %d", userID), err)
	}
	return nil
}
