package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "eurostat",
		Short: "CLI tool for the basketball statistics API",
		Long: `eurostat is a CLI tool for interacting with the basketball statistics JSON API.

It supports browsing leaderboards, player and team pages, match box scores,
and - once logged in - ratings, favorites, and admin profile edits.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load token from file if not provided via flag/env
			if err := cfg.LoadToken(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Token)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: EUROSTAT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Session token (env: EUROSTAT_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: EUROSTAT_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newHomeCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newRateCmd())
	rootCmd.AddCommand(newFavoritesCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
