package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/filadex/filadex/internal/config"
	"github.com/filadex/filadex/internal/database"
	"github.com/filadex/filadex/internal/observability"
	"github.com/filadex/filadex/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	nrApp, err := observability.NewApplication(cfg.Observability)
	if err != nil {
		logger.Fatal().Err(err).Msg("init observability")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(ctx, cfg.Database.URL()); err != nil {
		logger.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := database.NewPool(ctx, cfg, logger, nrApp)
	if err != nil {
		logger.Fatal().Err(err).Msg("create database pool")
	}
	defer pool.Close()

	srv := server.New(cfg, pool, logger)
	logger.Info().Str("port", cfg.Server.Port).Msg("starting filadex")
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
