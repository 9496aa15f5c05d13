package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/bridgerelay/internal/config"
	"github.com/gabapcia/bridgerelay/internal/handlers/cli"
	"github.com/gabapcia/bridgerelay/internal/pkg/logger"
	"github.com/gabapcia/bridgerelay/internal/pkg/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	shutdownTelemetry := telemetry.Noop
	if cfg.TelemetryEnabled {
		shutdownTelemetry, err = telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	defer func() {
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			logger.Error(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	w := newWiring(cfg)
	defer w.close()

	return cli.Run(ctx, cli.Dependencies{
		Relayer: w.relayer,
		Keys:    w.keys,
		History: w.history,
	})
}
