package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Favorites management commands",
	}

	cmd.AddCommand(newFavoritesListCmd())
	cmd.AddCommand(newFavoritesAddCmd())
	cmd.AddCommand(newFavoritesRemoveCmd())
	cmd.AddCommand(newFavoritesCheckCmd())

	return cmd
}

func newFavoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List followed players and teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FavoritesResult

			if err := client.Get("/api/favorites", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func favoriteTargetFlags(cmd *cobra.Command, targetID, targetType *string) {
	cmd.Flags().StringVar(targetID, "target", "", "Player or team ID (required)")
	cmd.Flags().StringVar(targetType, "type", "", "Target type: player, team (required)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("type")
}

func newFavoritesAddCmd() *cobra.Command {
	var targetID, targetType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Follow a player or team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetID == "" || targetType == "" {
				return fmt.Errorf("--target and --type are required")
			}

			req := map[string]string{
				"target_id":   targetID,
				"target_type": targetType,
			}
			var result FavoriteStatus

			if err := client.Post("/api/favorites/add", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	favoriteTargetFlags(cmd, &targetID, &targetType)
	return cmd
}

func newFavoritesRemoveCmd() *cobra.Command {
	var targetID, targetType string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Unfollow a player or team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetID == "" || targetType == "" {
				return fmt.Errorf("--target and --type are required")
			}

			req := map[string]string{
				"target_id":   targetID,
				"target_type": targetType,
			}
			var result FavoriteStatus

			if err := client.Post("/api/favorites/remove", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	favoriteTargetFlags(cmd, &targetID, &targetType)
	return cmd
}

func newFavoritesCheckCmd() *cobra.Command {
	var targetID, targetType string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a target is followed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetID == "" || targetType == "" {
				return fmt.Errorf("--target and --type are required")
			}

			path := fmt.Sprintf("/api/favorites/check?target_id=%s&target_type=%s",
				url.QueryEscape(targetID), url.QueryEscape(targetType))
			var result FavoriteStatus

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	favoriteTargetFlags(cmd, &targetID, &targetType)
	return cmd
}
