package export

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tempora-hq/everhour-go/internal/logger"
	"github.com/tempora-hq/everhour-go/internal/storage"
	"github.com/tempora-hq/everhour-go/pkg/everhour"
	"github.com/tempora-hq/everhour-go/pkg/publishers"
)

const dateLayout = "2006-01-02"

// TimeSource lists reported time records for a date window. Satisfied by
// *everhour.Client.
type TimeSource interface {
	ListTeamTime(ctx context.Context, opts *everhour.ListTimeOptions) ([]everhour.TimeRecord, error)
}

// EventPublisher fans exported records out to downstream sinks.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Service pulls time records from the API, skips the ones already exported,
// and publishes the rest downstream.
type Service struct {
	source   TimeSource
	fanout   EventPublisher
	store    storage.Store
	log      logger.Logger
	lookback time.Duration
}

// NewService wires an export service.
func NewService(source TimeSource, fanout EventPublisher, store storage.Store, log logger.Logger, lookbackDays int) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	return &Service{
		source:   source,
		fanout:   fanout,
		store:    store,
		log:      log,
		lookback: time.Duration(lookbackDays) * 24 * time.Hour,
	}
}

// Run executes a single export pass over the lookback window.
func (s *Service) Run(ctx context.Context) error {
	if s == nil || s.source == nil || s.fanout == nil {
		return fmt.Errorf("export service is not initialized")
	}

	now := time.Now().UTC()
	opts := &everhour.ListTimeOptions{
		From: now.Add(-s.lookback).Format(dateLayout),
		To:   now.Format(dateLayout),
	}

	records, err := s.source.ListTeamTime(ctx, opts)
	if err != nil {
		return fmt.Errorf("list team time: %w", err)
	}

	exported := 0
	skipped := 0
	var errs []error
	for _, record := range records {
		id := strconv.Itoa(record.ID)

		seen, err := s.seenRecord(id)
		if err != nil {
			errs = append(errs, fmt.Errorf("check record %s: %w", id, err))
			continue
		}
		if seen {
			skipped++
			continue
		}

		if err := s.exportRecord(ctx, id, record); err != nil {
			errs = append(errs, err)
			continue
		}
		exported++
	}

	s.log.InfoObj("export pass completed", "export_result", map[string]any{
		"window_from": opts.From,
		"window_to":   opts.To,
		"fetched":     len(records),
		"exported":    exported,
		"skipped":     skipped,
		"failed":      len(errs),
	})

	return errors.Join(errs...)
}

func (s *Service) exportRecord(ctx context.Context, id string, record everhour.TimeRecord) error {
	evt := publishers.NewEvent(record)

	successful, err := s.fanout.Publish(ctx, evt)
	if err != nil {
		return fmt.Errorf("publish record %s: %w", id, err)
	}
	if successful == 0 {
		return fmt.Errorf("publish record %s: no sink accepted the event", id)
	}

	if err := s.markRecord(id); err != nil {
		return fmt.Errorf("mark record %s: %w", id, err)
	}
	return nil
}

func (s *Service) seenRecord(id string) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	return s.store.SeenRecord(id)
}

func (s *Service) markRecord(id string) error {
	if s.store == nil {
		return nil
	}
	return s.store.MarkRecord(id)
}
