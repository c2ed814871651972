package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/KDR9MGR/digital-payments-core/internal/bootstrap"
	"github.com/KDR9MGR/digital-payments-core/internal/controller"
	infraRedis "github.com/KDR9MGR/digital-payments-core/internal/infrastructure/redis"
	"github.com/KDR9MGR/digital-payments-core/internal/repository/postgres"
	"github.com/KDR9MGR/digital-payments-core/internal/service"
	"github.com/KDR9MGR/digital-payments-core/internal/vault"
	"github.com/KDR9MGR/digital-payments-core/pkg/retry"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx, "dpcore-api", "dpcore")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Repositories and stores ---
	capabilityRepo := postgres.NewCapabilityRepository(app.Pool)
	fingerprints := infraRedis.NewFingerprintStore(app.Redis)

	// --- Services ---
	vaultFactory := vault.NewFactory()
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = app.Config.Card.MaxRetries
	retryCfg.InitialDelay = app.Config.Card.RetryDelay
	cardService := service.NewCardService(
		[]byte(app.Config.Card.FingerprintKey),
		vaultFactory,
		retryCfg,
		app.Logger,
	)
	readinessGate := service.NewReadinessGate(
		capabilityRepo,
		app.Config.Transfer.LookupTimeout,
		app.Logger,
	)

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		Pool:           app.Pool,
		RedisClient:    app.Redis,
		CardService:    cardService,
		ReadinessGate:  readinessGate,
		CapabilityRepo: capabilityRepo,
		Fingerprints:   fingerprints,
		Metrics:        app.Metrics,
		CORSConfig:     app.Config.Server.CORS,
		DefaultVault:   app.Config.Card.DefaultVault,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	go func() {
		app.Logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	app.Logger.Info().Msg("Server exited")
}
