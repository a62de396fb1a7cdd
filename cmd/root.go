package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/freshcart/freshcart/internal/constants"
	"github.com/freshcart/freshcart/internal/log"
)

func Start() {
	logger := log.InitLogger("/var/log/freshcart.log").
		With().
		Str(log.KeyAppName, constants.AppName).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: constants.AppName}
	commands := []*cobra.Command{
		{
			Use:   "server",
			Short: "Run storefront server",
			Run: func(cmd *cobra.Command, args []string) {
				RunServer(cmd.Context())
			},
		},
		{
			Use:   "seed",
			Short: "Seed the catalog and exit",
			Run: func(cmd *cobra.Command, args []string) {
				RunSeed(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
