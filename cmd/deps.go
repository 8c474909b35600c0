package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kasuboski/showtrack/config"
	mhttp "github.com/kasuboski/showtrack/pkg/http"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/manager"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite"
	"github.com/kasuboski/showtrack/pkg/tvmaze"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// app holds everything a command needs to talk to the manager
type app struct {
	cfg     config.Config
	store   storage.Storage
	manager *manager.ShowManager
}

func (a *app) Close() error {
	return a.store.Close()
}

// newApp reads the configuration, opens and migrates the database and builds
// a manager backed by a rate limited TVMaze client
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to read configurations: %w", err)
	}

	client, err := newTVMazeClient(cfg.TVMaze)
	if err != nil {
		return nil, fmt.Errorf("failed to create tvmaze client: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.Storage.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage connection: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		manager: manager.New(client, store, cfg.Manager),
	}, nil
}

func newTVMazeClient(cfg config.TVMaze) (*tvmaze.Client, error) {
	u := url.URL{
		Scheme: cfg.Scheme,
		Host:   cfg.Host,
	}

	httpClient := mhttp.NewRateLimitedHTTPClient(
		mhttp.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)),
		mhttp.WithMaxRetries(cfg.MaxRetries),
		mhttp.WithBaseBackoff(cfg.BaseBackoff),
	)

	opts := []tvmaze.ClientOption{tvmaze.WithHTTPClient(httpClient)}
	if cfg.UserAgent != "" {
		opts = append(opts, tvmaze.WithRequestEditorFn(tvmaze.SetUserAgent(cfg.UserAgent)))
	}

	return tvmaze.NewClient(u.String(), opts...)
}

// withApp builds the app for a one-shot command and hands it to fn. Failures
// are fatal.
func withApp(fn func(ctx context.Context, a *app, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		a, err := newApp(ctx)
		if err != nil {
			log.Fatal(err)
		}
		defer a.Close()

		if err := fn(ctx, a, args); err != nil {
			log.Fatalw("command failed", "command", cmd.CommandPath(), "error", err)
		}
	}
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
