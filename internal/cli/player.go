package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaffei/partygames-go/internal/api/request"
	"github.com/rmaffei/partygames-go/internal/api/response"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the player roster",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCurrentCmd())
	cmd.AddCommand(newPlayerFirstCmd())
	cmd.AddCommand(newPlayerNextCmd())
	cmd.AddCommand(newPlayerPointsCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerClearCmd())
	cmd.AddCommand(newPlayerResetCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var player response.Player
			err := client.Post("/api/v1/players", request.AddPlayerRequest{Name: args[0]}, &player)
			if err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(player)
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players in join order",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var players []response.Player
			if err := client.Get("/api/v1/players", &players); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(players)
		},
	}
}

func newPlayerCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the active player",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var player response.Player
			if err := client.Get("/api/v1/players/current", &player); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(player)
		},
	}
}

func newPlayerFirstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "first",
		Short: "Make the first player in join order active",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var player response.Player
			if err := client.Post("/api/v1/players/first", nil, &player); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(player)
		},
	}
}

func newPlayerNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Advance the active player to the next in rotation",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var player response.Player
			if err := client.Post("/api/v1/players/next", nil, &player); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(player)
		},
	}
}

func newPlayerPointsCmd() *cobra.Command {
	var kind string
	var points int

	cmd := &cobra.Command{
		Use:   "points <player-id>",
		Short: "Award points to a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var player response.Player
			body := request.UpdatePointsRequest{Kind: kind, Points: points}
			path := fmt.Sprintf("/api/v1/players/%s/points", args[0])
			if err := client.Post(path, body, &player); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(player)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "challenge", "Point kind: challenge or drink")
	cmd.Flags().IntVar(&points, "points", 1, "Points to award")

	return cmd
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player, redistributing their points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/players/%s", args[0])); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Player removed.")
			return nil
		},
	}
}

func newPlayerClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all players",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players"); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("All players removed.")
			return nil
		},
	}
}

func newPlayerResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset every player's points and counters to zero",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/players/reset-points", nil, nil); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Points reset.")
			return nil
		},
	}
}

func newSettingsCmd() *cobra.Command {
	var maxPoints int

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update game settings",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var settings response.Settings
			if cmd.Flags().Changed("max-points") {
				body := request.UpdateSettingsRequest{MaxPoints: maxPoints}
				if err := client.Patch("/api/v1/settings", body, &settings); err != nil {
					return err
				}
			} else {
				if err := client.Get("/api/v1/settings", &settings); err != nil {
					return err
				}
			}
			return NewOutput(cfg.Output).Print(settings)
		},
	}

	cmd.Flags().IntVar(&maxPoints, "max-points", 0, "Set the points needed to win")

	return cmd
}
