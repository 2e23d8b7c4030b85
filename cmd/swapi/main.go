package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/swapi-client/internal/app"
	"github.com/Adda-Baaj/swapi-client/internal/config"
	"github.com/Adda-Baaj/swapi-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "swapi client start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("swapi client starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := app.NewFromConfig(ctx, cfg, logger.Zap{})
	if err != nil {
		logger.ErrorObj("failed to initialize swapi client", "error", err)
		return err
	}

	return runner.Run(ctx)
}
