package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/lettersoup/go/internal/config"
	"github.com/mcdev12/lettersoup/go/internal/gateway"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(os.Getenv("SOUP_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var database *sql.DB
	if cfg.DBEnabled {
		database, err = setupDatabase(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up database")
		}
		defer database.Close()
	}

	natsCfg := gateway.DefaultNATSConfig()
	natsCfg.URL = cfg.NATSURL
	nc, err := gateway.ConnectNATS(natsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to NATS")
	}
	defer nc.Close()

	services, err := setupServices(ctx, cfg, nc, database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up services")
	}

	log.Info().
		Str("match_id", cfg.MatchID).
		Str("player_id", cfg.PlayerID).
		Str("transport", cfg.Transport).
		Dur("turn_duration", cfg.TurnDuration).
		Dur("grace_buffer", cfg.GraceBuffer).
		Bool("db_enabled", cfg.DBEnabled).
		Msg("starting letter soup seat")

	go func() {
		if err := services.Orchestrator.Run(ctx); err != nil {
			log.Error().Err(err).Msg("orchestrator failed")
		}
	}()
	go func() {
		if err := services.Gateway.Start(ctx); err != nil {
			log.Error().Err(err).Msg("gateway service failed")
		}
	}()

	server := setupServer(cfg.Port, services)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	cancel()
	select {
	case <-services.Orchestrator.Done():
	case <-shutdownCtx.Done():
		log.Warn().Msg("orchestrator did not stop before shutdown deadline")
	}

	log.Info().Msg("letter soup seat shutdown complete")
}
