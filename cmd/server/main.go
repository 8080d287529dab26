// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/arjunv-dev/dharohar/docs" // Import generated swagger docs

	"github.com/arjunv-dev/dharohar/internal/api"
	"github.com/arjunv-dev/dharohar/internal/cache"
	"github.com/arjunv-dev/dharohar/internal/config"
	"github.com/arjunv-dev/dharohar/internal/dataset"
	"github.com/arjunv-dev/dharohar/internal/logging"
	"github.com/arjunv-dev/dharohar/internal/supervisor"
	"github.com/arjunv-dev/dharohar/internal/supervisor/services"
)

func main() {
	// Configuration first so logging can honor the configured level.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Dharohar")

	// Datasets are embedded in the binary; a failure here means the tables
	// are malformed and the process cannot serve anything.
	store, err := dataset.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load heritage datasets")
	}
	artForms, trends, gems, initiatives := store.Counts()
	logging.Info().
		Int("art_forms", artForms).
		Int("tourism_trends", trends).
		Int("hidden_gems", gems).
		Int("initiatives", initiatives).
		Msg("Heritage datasets loaded")

	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		responseCache = cache.New(cfg.Cache.TTL)
		logging.Info().Dur("ttl", cfg.Cache.TTL).Msg("Response cache enabled")
	} else {
		logging.Info().Msg("Response cache disabled")
	}

	handler := api.NewHandler(store, responseCache, cfg)
	chiMW := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog wants an slog.Logger; the adapter writes through zerolog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if responseCache != nil {
		tree.AddMaintenanceService(services.NewCacheMaintenanceService(responseCache, 0))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Dharohar stopped gracefully")
}
