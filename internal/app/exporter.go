package app

import (
	"context"
	"fmt"
	"time"

	"github.com/tempora-hq/everhour-go/internal/config"
	"github.com/tempora-hq/everhour-go/internal/export"
	"github.com/tempora-hq/everhour-go/internal/logger"
	"github.com/tempora-hq/everhour-go/internal/storage"
	"github.com/tempora-hq/everhour-go/pkg/everhour"
	"github.com/tempora-hq/everhour-go/pkg/publishers"
)

// Exporter represents the export daemon runtime. It manages the poll loop,
// coordinating between the API client, the export service, and sink
// publishers. It also handles storage initialization and cleanup.
type Exporter struct {
	cfg           *config.Config
	fanout        *publishers.Fanout
	exportService *export.Service
	pollInterval  time.Duration
	log           logger.Logger
	store         storage.Store
}

// NewExporter builds an exporter runtime from config files.
func NewExporter(ctx context.Context, cfg *config.Config, log logger.Logger) (*Exporter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := everhour.NewClient(cfg.APIKey, everhour.WithTimeout(cfg.APITimeout))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	sinkReg, err := publishers.LoadRegistry(cfg.SinksFile)
	if err != nil {
		return nil, fmt.Errorf("load sinks registry: %w", err)
	}

	enabledSinks := sinkReg.Enabled()
	if len(enabledSinks) == 0 {
		return nil, fmt.Errorf("no sinks configured")
	}

	pubRegistry := publishers.DefaultRegistry()
	pubClients, err := publishers.BuildAll(ctx, pubRegistry, enabledSinks, log)
	if err != nil {
		return nil, fmt.Errorf("build sinks: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)

	sinkSummaries := make([]map[string]string, 0, len(enabledSinks))
	for _, sinkCfg := range enabledSinks {
		sinkSummaries = append(sinkSummaries, map[string]string{
			"id":   sinkCfg.ID,
			"type": sinkCfg.Type,
		})
	}
	log.InfoObj("sinks registry loaded", "sinks_meta", map[string]any{
		"count": len(sinkSummaries),
		"sinks": sinkSummaries,
	})

	storeOpts := storage.Options{
		RecordTTL:       cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"record_ttl_seconds":       int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	exportService := export.NewService(client, fanout, store, log, cfg.LookbackDays)

	return &Exporter{
		cfg:           cfg,
		fanout:        fanout,
		exportService: exportService,
		pollInterval:  cfg.PollInterval,
		log:           log,
		store:         store,
	}, nil
}

// Run starts the export loop until the context is cancelled.
func (e *Exporter) Run(ctx context.Context) error {
	if e == nil || e.exportService == nil {
		return fmt.Errorf("exporter is not initialized")
	}
	defer e.closeStore()

	e.log.InfoObj("export loop starting", "exporter_state", map[string]any{
		"sinks_count":   e.fanout.Size(),
		"poll_interval": e.pollInterval.String(),
		"lookback_days": e.cfg.LookbackDays,
	})

	if err := e.runOnce(ctx); err != nil {
		e.log.ErrorObj("initial export failed", "error", err)
	}

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.log.InfoObj("export loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := e.runOnce(ctx); err != nil {
				e.log.ErrorObj("scheduled export failed", "error", err)
			}
		}
	}
}

// runOnce performs a single export pass.
func (e *Exporter) runOnce(ctx context.Context) error {
	start := time.Now()
	e.log.InfoObj("export started", "export_meta", map[string]any{
		"started_at": start.UTC(),
	})
	if err := e.exportService.Run(ctx); err != nil {
		return err
	}
	e.log.InfoObj("export completed", "export_meta", map[string]any{
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// closeStore safely closes the storage backend, logging any errors encountered.
func (e *Exporter) closeStore() {
	if e == nil || e.store == nil {
		return
	}
	if err := e.store.Close(); err != nil {
		e.log.ErrorObj("storage close failed", "error", err)
	}
}
