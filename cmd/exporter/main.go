package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tempora-hq/everhour-go/internal/app"
	"github.com/tempora-hq/everhour-go/internal/config"
	"github.com/tempora-hq/everhour-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "exporter start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	log.InfoObj("exporter starting", "config", map[string]any{
		"app_name":      cfg.AppName,
		"app_env":       cfg.Env,
		"sinks_file":    cfg.SinksFile,
		"poll_interval": cfg.PollInterval.String(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter, err := app.NewExporter(ctx, cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize exporter", "error", err)
		return err
	}

	if err := exporter.Run(ctx); err != nil {
		return fmt.Errorf("exporter run: %w", err)
	}

	return nil
}
