package main

import (
	"context"
	"fmt"
	"time"

	"arayWorlds/envvars"
	"arayWorlds/services/catalog"
	"arayWorlds/utils"

	"github.com/spf13/cobra"
)

var leaderboardLimit int

// userCmd prints a player's profile and best levels
var userCmd = &cobra.Command{
	Use:   "user <uid>",
	Short: "Show a player's profile and best levels",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

// leaderboardCmd prints the candy ranking, or a game ranking when a game id
// is given
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [gameId]",
	Short: "Show the candy ranking or a game ranking",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLeaderboard,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return catalog.Default().IDs(), cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	leaderboardCmd.Flags().IntVarP(&leaderboardLimit, "limit", "n", 20, "Number of entries")
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	app, err := NewApp(ctx, envvars.GetEnv())
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

func runUser(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, app *App) error {
		state, err := app.Users.State(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load user %s: %w", args[0], err)
		}
		return utils.PrettyPrint(cmd.OutOrStdout(), state)
	})
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, app *App) error {
		if len(args) == 0 {
			entries, err := app.Ranking.Rewards(ctx, leaderboardLimit)
			if err != nil {
				return err
			}
			return utils.PrettyPrint(cmd.OutOrStdout(), entries)
		}
		gameID := args[0]
		if _, ok := app.Catalog.Lookup(gameID); !ok {
			return fmt.Errorf("unknown game %q, expected one of %v", gameID, app.Catalog.IDs())
		}
		entries, err := app.Ranking.Game(ctx, gameID, leaderboardLimit)
		if err != nil {
			return err
		}
		return utils.PrettyPrint(cmd.OutOrStdout(), entries)
	})
}
