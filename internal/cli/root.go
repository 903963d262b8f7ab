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
		Use:   "partyctl",
		Short: "CLI tool for the party-game session API",
		Long: `partyctl is a CLI tool for interacting with the party-game JSON API.

It covers the player roster, the challenge session state machine, game
settings and the recommendation engine.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL, cfg.ClientID)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PARTYCTL_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "Opaque caller id sent as X-Client-Id (env: PARTYCTL_CLIENT_ID)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
