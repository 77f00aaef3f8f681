package cli

import (
	"github.com/spf13/cobra"
)

func newPredictCmd() *cobra.Command {
	var home, away int

	cmd := &cobra.Command{
		Use:   "predict <match-id>",
		Short: "Submit or update your prediction for a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"match_id":   args[0],
				"home_goals": home,
				"away_goals": away,
			}
			var result Prediction

			if err := client.Post("/api/v1/predictions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&home, "home", 0, "Predicted home goals (required)")
	cmd.Flags().IntVar(&away, "away", 0, "Predicted away goals (required)")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")

	return cmd
}

func newPredictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predictions",
		Short: "Show your prediction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []HistoryEntry

			if err := client.Get("/api/v1/predictions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
