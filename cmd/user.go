package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// userCmd groups the user commands
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "manage users",
	Long:  `manage users`,
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "create a user",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		user, err := a.manager.CreateUser(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("created user %s with id %d\n", user.Username, user.ID)
		return nil
	}),
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "list users",
	Args:  cobra.NoArgs,
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		users, err := a.manager.ListUsers(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{strconv.Itoa(int(u.ID)), u.Username, humanize.Time(u.CreatedAt)})
		}
		printTable([]string{"ID", "Username", "Created"}, rows, 0)
		return nil
	}),
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <user id>",
	Short: "delete a user along with their list and watch history",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(ctx context.Context, a *app, args []string) error {
		userID, err := parseID(args[0], "user id")
		if err != nil {
			return err
		}
		if err := a.manager.DeleteUser(ctx, userID); err != nil {
			return err
		}
		fmt.Printf("deleted user %d\n", userID)
		return nil
	}),
}

func init() {
	userCmd.AddCommand(userCreateCmd, userListCmd, userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
