package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRateCmd() *cobra.Command {
	var targetID, targetType string
	var score int

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a player or team (1-5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetID == "" || targetType == "" {
				return fmt.Errorf("--target and --type are required")
			}

			req := map[string]any{
				"target_id":   targetID,
				"target_type": targetType,
				"score":       score,
			}
			var result RateResult

			if err := client.Post("/api/rate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetID, "target", "", "Player or team ID (required)")
	cmd.Flags().StringVar(&targetType, "type", "", "Target type: player, team (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score from 1 to 5 (required)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
