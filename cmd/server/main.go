package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoicehub/invoicing-system/internal/api"
	"github.com/invoicehub/invoicing-system/internal/api/metrics"
	"github.com/invoicehub/invoicing-system/internal/infrastructure/config"
	"github.com/invoicehub/invoicing-system/internal/infrastructure/db/memory"
	"github.com/invoicehub/invoicing-system/pkg/logger"
)

func main() {
	// Optional .env for local development; real environments set vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	// The store is seeded fresh on every start: no persistence by design.
	store := memory.New()

	// Keep the collection-size gauges in sync with every committed mutation.
	syncGauges := func() {
		ctx := context.Background()
		metrics.InvoicesInStore.Set(float64(len(store.Invoices(ctx))))
		metrics.ClientsInStore.Set(float64(len(store.Clients(ctx))))
	}
	store.Subscribe(syncGauges)
	syncGauges()

	e := api.NewRouter(store, cfg, log)

	// Graceful shutdown handling.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting invoicing server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}
