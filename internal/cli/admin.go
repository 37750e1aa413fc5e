package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin profile edit commands",
	}

	cmd.AddCommand(newAdminUpdatePlayerCmd())
	cmd.AddCommand(newAdminUpdateTeamCmd())

	return cmd
}

func newAdminUpdatePlayerCmd() *cobra.Command {
	var name string
	var ppg, apg, rpg, spg float64

	cmd := &cobra.Command{
		Use:   "update-player <player-id>",
		Short: "Edit a player profile (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["player"] = name
			}
			if cmd.Flags().Changed("ppg") {
				req["points_per_game"] = ppg
			}
			if cmd.Flags().Changed("apg") {
				req["assists_per_game"] = apg
			}
			if cmd.Flags().Changed("rpg") {
				req["total_rebounds_per_game"] = rpg
			}
			if cmd.Flags().Changed("spg") {
				req["steals_per_game"] = spg
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one field flag is required")
			}

			path := fmt.Sprintf("/api/admin/player/%s", url.PathEscape(args[0]))
			var result PlayerProfile

			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().Float64Var(&ppg, "ppg", 0, "Points per game")
	cmd.Flags().Float64Var(&apg, "apg", 0, "Assists per game")
	cmd.Flags().Float64Var(&rpg, "rpg", 0, "Rebounds per game")
	cmd.Flags().Float64Var(&spg, "spg", 0, "Steals per game")

	return cmd
}

func newAdminUpdateTeamCmd() *cobra.Command {
	var name string
	var ppg, apg, rpg, spg float64

	cmd := &cobra.Command{
		Use:   "update-team <team-id>",
		Short: "Edit a team profile (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["team_name"] = name
			}
			if cmd.Flags().Changed("ppg") {
				req["points_per_game"] = ppg
			}
			if cmd.Flags().Changed("apg") {
				req["assists_per_game"] = apg
			}
			if cmd.Flags().Changed("rpg") {
				req["total_rebounds_per_game"] = rpg
			}
			if cmd.Flags().Changed("spg") {
				req["steals_per_game"] = spg
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one field flag is required")
			}

			path := fmt.Sprintf("/api/admin/team/%s", url.PathEscape(args[0]))
			var result TeamProfile

			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name")
	cmd.Flags().Float64Var(&ppg, "ppg", 0, "Points per game")
	cmd.Flags().Float64Var(&apg, "apg", 0, "Assists per game")
	cmd.Flags().Float64Var(&rpg, "rpg", 0, "Rebounds per game")
	cmd.Flags().Float64Var(&spg, "spg", 0, "Steals per game")

	return cmd
}
