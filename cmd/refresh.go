package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// refreshCmd refreshes every tracked show whose catalog data is stale
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "refresh stale catalog data for every tracked show",
	Args:  cobra.NoArgs,
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		refreshed, err := a.manager.RefreshStaleShows(ctx)
		fmt.Printf("refreshed %d shows\n", refreshed)
		return err
	}),
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
