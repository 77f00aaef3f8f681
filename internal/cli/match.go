package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchUpcomingCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchEditCmd())
	cmd.AddCommand(newMatchResultCmd())
	cmd.AddCommand(newMatchDeleteCmd())
	cmd.AddCommand(newMatchPredictionsCmd())

	return cmd
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Match

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming matches with your predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []UpcomingMatch

			if err := client.Get("/api/v1/matches/upcoming", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <match-id>",
		Short: "Show a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get("/api/v1/matches/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func parseMatchTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339, e.g. 2026-09-13T17:00:00+02:00", value)
	}
	return t, nil
}

func newMatchCreateCmd() *cobra.Command {
	var team, opponent, kickoff, deadline string
	var away bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a match (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			kickoffAt, err := parseMatchTime(kickoff)
			if err != nil {
				return err
			}
			deadlineAt, err := parseMatchTime(deadline)
			if err != nil {
				return err
			}

			req := map[string]any{
				"team":       team,
				"opponent":   opponent,
				"is_home":    !away,
				"kickoff_at": kickoffAt,
				"deadline":   deadlineAt,
			}
			var result Match

			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Our team name (required)")
	cmd.Flags().StringVar(&opponent, "opponent", "", "Opponent name (required)")
	cmd.Flags().BoolVar(&away, "away", false, "Match is played away")
	cmd.Flags().StringVar(&kickoff, "kickoff", "", "Kickoff time, RFC3339 (required)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Prediction deadline, RFC3339 (required)")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("opponent")
	_ = cmd.MarkFlagRequired("kickoff")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func newMatchEditCmd() *cobra.Command {
	var kickoff, deadline string

	cmd := &cobra.Command{
		Use:   "edit <match-id>",
		Short: "Reschedule a match (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kickoffAt, err := parseMatchTime(kickoff)
			if err != nil {
				return err
			}
			deadlineAt, err := parseMatchTime(deadline)
			if err != nil {
				return err
			}

			req := map[string]any{
				"kickoff_at": kickoffAt,
				"deadline":   deadlineAt,
			}
			var result Match

			if err := client.Put("/api/v1/matches/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&kickoff, "kickoff", "", "Kickoff time, RFC3339 (required)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Prediction deadline, RFC3339 (required)")
	_ = cmd.MarkFlagRequired("kickoff")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func newMatchResultCmd() *cobra.Command {
	var home, away int

	cmd := &cobra.Command{
		Use:   "result <match-id>",
		Short: "Record a match result and score predictions (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"home_goals": home,
				"away_goals": away,
			}
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/result", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&home, "home", 0, "Home goals (required)")
	cmd.Flags().IntVar(&away, "away", 0, "Away goals (required)")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")

	return cmd
}

func newMatchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <match-id>",
		Short: "Delete a match and its predictions (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/matches/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Match deleted")
			return nil
		},
	}
}

func newMatchPredictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predictions <match-id>",
		Short: "Show all predictions for a match (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchPredictions

			if err := client.Get("/api/v1/matches/"+args[0]+"/predictions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
