package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd searches the catalog provider for shows
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "search the catalog for shows",
	Long:  `search the catalog for shows. The ID column is what "shows add" expects.`,
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		results, err := a.manager.SearchShows(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(results))
		for _, r := range results {
			premiered := "-"
			if r.Premiered != nil {
				premiered = strconv.Itoa(r.Premiered.Year())
			}
			rating := "-"
			if r.Rating != nil {
				rating = fmt.Sprintf("%.1f", *r.Rating)
			}
			local := ""
			if r.ShowID != nil {
				local = strconv.Itoa(int(*r.ShowID))
			}
			rows = append(rows, []string{
				strconv.Itoa(int(r.ExternalID)),
				r.Name,
				premiered,
				titleCase.String(r.Status),
				rating,
				local,
			})
		}

		printTable([]string{"ID", "Name", "Premiered", "Status", "Rating", "Local ID"}, rows, 0, 4, 5)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
