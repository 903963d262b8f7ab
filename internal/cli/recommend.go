package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmaffei/partygames-go/internal/api/request"
	"github.com/rmaffei/partygames-go/internal/api/response"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Browse the game catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog games",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var games []response.Game
			if err := client.Get("/api/v1/games", &games); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(games)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decks",
		Short: "List challenge decks",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var decks []response.Deck
			if err := client.Get("/api/v1/decks", &decks); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(decks)
		},
	})

	return cmd
}

func newRecommendCmd() *cobra.Command {
	var gender, network string
	var drinks []string
	var top int

	cmd := &cobra.Command{
		Use:   "recommend [game-id]",
		Short: "Rank catalog games against a user profile",
		Long: `Rank catalog games against a user profile.

With no argument, returns the ranked list; with a game id, returns the
single scored entry for that game.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := request.RecommendationsRequest{
				Profile: request.Profile{
					Gender:                gender,
					FavoriteSocialNetwork: network,
					FavoriteDrinks:        drinks,
				},
			}

			if len(args) == 1 {
				var rec response.Recommendation
				path := fmt.Sprintf("/api/v1/recommendations/%s", args[0])
				if err := client.Post(path, body, &rec); err != nil {
					return err
				}
				return NewOutput(cfg.Output).Print(rec)
			}

			path := "/api/v1/recommendations"
			if cmd.Flags().Changed("top") {
				path += "?top=" + strconv.Itoa(top)
			}
			var recs []response.Recommendation
			if err := client.Post(path, body, &recs); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(recs)
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "", "Profile gender (homem, mulher)")
	cmd.Flags().StringVar(&network, "network", "", "Favorite social network (instagram, tiktok, x, facebook)")
	cmd.Flags().StringSliceVar(&drinks, "drinks", nil, "Favorite drinks (e.g. cerveja,vinho or água)")
	cmd.Flags().IntVar(&top, "top", 0, "Limit to the top N games")

	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			var status map[string]string
			if err := client.Get("/api/v1/health", &status); err != nil {
				return err
			}
			return NewOutput(cfg.Output).Print(status)
		},
	}
}
