package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/sereno-app/sereno/internal/api/handlers"
	"github.com/sereno-app/sereno/internal/config"
	"github.com/sereno-app/sereno/internal/services"
	"github.com/sereno-app/sereno/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Setup(cfg.LogLevel, cfg.LogPretty)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("No .env file loaded")
	}

	ctx := context.Background()
	svcs, err := services.InitializeServices(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRouter(svcs, cfg),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	if err := svcs.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to close store")
	}
}

func setupRouter(svcs *services.Services, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	handlers.RegisterRoutes(r, svcs, cfg.RateLimit)
	return r
}
