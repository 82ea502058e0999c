package main

import (
	"context"
	"os"

	"sisauth/internal/config"
	"sisauth/internal/logger"
	"sisauth/internal/repository"
	"sisauth/internal/seed"
	"sisauth/internal/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Seeds admin@example.com (Admin), editor@example.com (Editor) and
// user@example.com (no role). All share the password "password".
func main() {
	_ = godotenv.Load()
	logger.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load DB config")
	}

	ctx := context.Background()
	pool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := config.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	err = seed.Run(ctx,
		repository.NewUserRepository(pool),
		repository.NewRoleRepository(pool),
		utils.NewPasswordHasher(0),
		seed.DefaultAccounts,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seed complete")
}
