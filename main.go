package main

import (
	"context"

	"affiliate-server/internal/bootstrap"
	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "failed to shut down cleanly", err)
	}
}
