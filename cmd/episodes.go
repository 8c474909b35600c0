package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

// episodesCmd lists a show's episodes with the user's watch state
var episodesCmd = &cobra.Command{
	Use:   "episodes <show id>",
	Short: "list a show's episodes and which ones are watched",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		showID, err := parseID(args[0], "show id")
		if err != nil {
			return err
		}

		episodes, err := a.manager.ListEpisodes(ctx, userID, showID)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(episodes))
		for _, e := range episodes {
			watched := ""
			switch {
			case e.Watched:
				watched = "✓ " + relativeTime(e.WatchedAt)
			case !e.Aired:
				watched = "upcoming"
			}
			rows = append(rows, []string{
				strconv.Itoa(int(e.ID)),
				episodeCode(e.Season, e.Number),
				e.Name,
				airDate(e.AirDate),
				watched,
			})
		}

		printTable([]string{"ID", "Episode", "Name", "Airs", "Watched"}, rows, 0)
		return nil
	}),
}

var watchCmd = &cobra.Command{
	Use:   "watch <episode id>",
	Short: "mark an episode watched",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		episodeID, err := parseID(args[0], "episode id")
		if err != nil {
			return err
		}
		return a.manager.MarkWatched(ctx, userID, episodeID)
	}),
}

var unwatchCmd = &cobra.Command{
	Use:   "unwatch <episode id>",
	Short: "mark an episode unwatched",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		episodeID, err := parseID(args[0], "episode id")
		if err != nil {
			return err
		}
		return a.manager.MarkUnwatched(ctx, userID, episodeID)
	}),
}

func init() {
	showsCmd.AddCommand(episodesCmd, watchCmd, unwatchCmd)
}
