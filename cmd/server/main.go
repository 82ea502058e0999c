package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sisauth/internal/config"
	"sisauth/internal/handler"
	"sisauth/internal/logger"
	"sisauth/internal/repository"
	"sisauth/internal/service"
	"sisauth/internal/utils"
	"sisauth/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Setup("info", "console")
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)
	validation.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if err := config.Migrate(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTTTL)
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	addressRepo := repository.NewAddressRepository(dbPool)
	roleRepo := repository.NewRoleRepository(dbPool)

	// --- Initialize Services ---
	services := handler.Services{
		Auth:      service.NewAuthService(userRepo, jwtUtil, hasher),
		Users:     service.NewUserService(userRepo, hasher),
		Addresses: service.NewAddressService(addressRepo, userRepo),
		Roles:     service.NewRoleService(roleRepo, userRepo),
	}

	router := handler.NewRouter(jwtUtil, services, dbPool)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server exiting")
}
