package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaffei/partygames-go/internal/api/request"
	"github.com/rmaffei/partygames-go/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Drive a challenge session",
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionChallengeCmd())
	cmd.AddCommand(newSessionActionsCmd())
	cmd.AddCommand(newSessionAdvanceCmd())
	cmd.AddCommand(newSessionSummaryCmd())
	cmd.AddCommand(newSessionEndCmd())

	return cmd
}

func newSessionStartCmd() *cobra.Command {
	var decks []string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new session with the current roster",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sess response.Session
			body := request.StartSessionRequest{Decks: decks}
			if err := client.Post("/api/v1/session", body, &sess); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(sess)
		},
	}

	cmd.Flags().StringSliceVar(&decks, "decks", nil, "Challenge decks to draw from (default: classic)")

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session state",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sess response.Session
			if err := client.Get("/api/v1/session", &sess); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(sess)
		},
	}
}

func newSessionChallengeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenge",
		Short: "Draw a challenge for the active player",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sess response.Session
			if err := client.Post("/api/v1/session/challenge", nil, &sess); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(sess)
		},
	}
}

func newSessionActionsCmd() *cobra.Command {
	var completed, drank bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Record what the active player did this round",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sess response.Session
			body := request.MarkActionsRequest{CompletedChallenge: completed, Drank: drank}
			if err := client.Post("/api/v1/session/actions", body, &sess); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(sess)
		},
	}

	cmd.Flags().BoolVar(&completed, "completed", false, "The player completed the challenge")
	cmd.Flags().BoolVar(&drank, "drank", false, "The player drank instead (or as well)")

	return cmd
}

func newSessionAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance",
		Short: "Award round points and move to the next turn",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.AdvanceResult
			if err := client.Post("/api/v1/session/advance", nil, &result); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(result)
		},
	}
}

func newSessionSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the end-of-session report",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var summary response.SessionSummary
			if err := client.Get("/api/v1/session/summary", &summary); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(summary)
		},
	}
}

func newSessionEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Discard the current session",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/session"); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Session ended.")
			return nil
		},
	}
}
