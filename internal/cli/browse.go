package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the home page leaderboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HomeResult

			if err := client.Get("/api/home", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search players and teams by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SearchResult

			path := "/api/search?q=" + url.QueryEscape(args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Show a player page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerDetail

			path := fmt.Sprintf("/api/player/%s", url.PathEscape(args[0]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <team-id>",
		Short: "Show a team page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TeamDetail

			path := fmt.Sprintf("/api/team/%s", url.PathEscape(args[0]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <game-id>",
		Short: "Show a match box score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchDetail

			path := fmt.Sprintf("/api/match/%s", url.PathEscape(args[0]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
