package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freshcart/freshcart/internal/config"
	"github.com/freshcart/freshcart/internal/constants"
	"github.com/freshcart/freshcart/internal/infra"
	"github.com/freshcart/freshcart/internal/log"
	"github.com/freshcart/freshcart/internal/repository"
	"github.com/freshcart/freshcart/product/service"
)

// RunSeed upserts the reference catalog into the database and exits.
func RunSeed(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppName).
		Str(log.KeyTag, "main RunSeed").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.AppName)
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	pool := infra.NewDatabaseClient(c, cfg.Database)
	defer pool.Close()
	logger.Info().Msg("initialized database")

	logger = logger.With().Str(log.KeyProcess, "seeding database").Logger()
	logger.Info().Msg("seeding database")
	c = logger.WithContext(c)
	seeder := service.NewSeedService(repository.New(pool), cfg.Seed.CacheTTL)
	err := seeder.ForceSeed(c)
	if err != nil {
		err = fmt.Errorf("failed seeding database with error=%w", err)
		logger.Fatal().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("seeded database")
}
