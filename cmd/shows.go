package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/showtrack/pkg/manager"
	"github.com/kasuboski/showtrack/pkg/pagination"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	userID      int64
	statusFlag  string
	refreshFlag bool
)

// showsCmd groups the commands that work on a user's list
var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "manage the shows on a user's list",
	Long:  `manage the shows on a user's list`,
}

var showsListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the shows on a user's list with progress",
	Args:  cobra.NoArgs,
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		filter := manager.ListShowsFilter{Status: storage.MembershipStatus(statusFlag)}
		shows, _, err := a.manager.ListShows(ctx, userID, filter, pagination.Params{Page: 1})
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(shows))
		for _, s := range shows {
			next := "-"
			if s.NextEpisode != nil {
				next = fmt.Sprintf("%s %s", episodeCode(s.NextEpisode.Season, s.NextEpisode.Number), s.NextEpisode.Name)
			}
			rows = append(rows, []string{
				strconv.Itoa(int(s.Show.ID)),
				s.Show.Name,
				titleCase.String(string(s.Status)),
				fmt.Sprintf("%d/%d", s.WatchedCount, s.AiredCount),
				next,
				relativeTime(s.LastWatchedAt),
				humanize.Time(s.AddedAt),
			})
		}

		printTable([]string{"ID", "Name", "Status", "Watched", "Next", "Last Watched", "Added"}, rows, 0, 3)
		return nil
	}),
}

var showsAddCmd = &cobra.Command{
	Use:   "add <catalog id>",
	Short: "add a show to the list by its catalog id",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		externalID, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil || externalID <= 0 {
			return fmt.Errorf("invalid catalog id %q", args[0])
		}

		show, err := a.manager.AddShow(ctx, userID, int32(externalID))
		if err != nil {
			return err
		}
		fmt.Printf("added %s (id %d) with %s episodes\n", show.Name, show.ID, humanize.Comma(int64(len(show.Episodes))))
		return nil
	}),
}

var showsRemoveCmd = &cobra.Command{
	Use:   "remove <show id>",
	Short: "remove a show and its watch history from the list",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		showID, err := parseID(args[0], "show id")
		if err != nil {
			return err
		}
		return a.manager.RemoveShow(ctx, userID, showID)
	}),
}

func setIgnoredCmd(use, short string, ignored bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <show id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: withApp(func(ctx context.Context, a *app, args []string) error {
			showID, err := parseID(args[0], "show id")
			if err != nil {
				return err
			}
			return a.manager.SetIgnored(ctx, userID, showID, ignored)
		}),
	}
}

var showsWatchedAllCmd = &cobra.Command{
	Use:   "watched-all <show id>",
	Short: "mark every aired episode of a show watched",
	Long: `mark every aired episode of a show watched. Episodes without an air date
or airing in the future are left alone. Use --refresh to pull the latest
catalog first.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		showID, err := parseID(args[0], "show id")
		if err != nil {
			return err
		}

		marked, err := a.manager.MarkAllAiredWatched(ctx, userID, showID, refreshFlag)
		if err != nil {
			return err
		}
		fmt.Printf("marked %d episodes watched\n", marked)
		return nil
	}),
}

func init() {
	showsCmd.PersistentFlags().Int64Var(&userID, "user", 0, "user id")
	_ = showsCmd.MarkPersistentFlagRequired("user")

	showsListCmd.Flags().StringVar(&statusFlag, "status", "", "only list shows with this status (active, ignored)")
	showsWatchedAllCmd.Flags().BoolVar(&refreshFlag, "refresh", false, "refresh the catalog before marking")

	showsCmd.AddCommand(
		showsListCmd,
		showsAddCmd,
		showsRemoveCmd,
		setIgnoredCmd("ignore", "ignore a show without removing it", true),
		setIgnoredCmd("unignore", "make an ignored show active again", false),
		showsWatchedAllCmd,
	)
	rootCmd.AddCommand(showsCmd)
}
