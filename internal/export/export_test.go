package export

import (
	"context"
	"errors"
	"testing"

	"github.com/tempora-hq/everhour-go/pkg/everhour"
	"github.com/tempora-hq/everhour-go/pkg/publishers"
)

type stubSource struct {
	records []everhour.TimeRecord
	err     error
	opts    *everhour.ListTimeOptions
}

func (s *stubSource) ListTeamTime(_ context.Context, opts *everhour.ListTimeOptions) ([]everhour.TimeRecord, error) {
	s.opts = opts
	return s.records, s.err
}

type stubFanout struct {
	events []publishers.Event
	err    error
}

func (s *stubFanout) Publish(_ context.Context, evt publishers.Event) (int, error) {
	s.events = append(s.events, evt)
	if s.err != nil {
		return 0, s.err
	}
	return 1, nil
}

type memoryStore struct {
	seen map[string]bool
}

func newMemoryStore() *memoryStore { return &memoryStore{seen: make(map[string]bool)} }

func (m *memoryStore) Close() error                       { return nil }
func (m *memoryStore) SeenRecord(id string) (bool, error) { return m.seen[id], nil }
func (m *memoryStore) MarkRecord(id string) error         { m.seen[id] = true; return nil }

func TestServiceExportsNewRecords(t *testing.T) {
	source := &stubSource{records: []everhour.TimeRecord{
		{ID: 1, Date: "2024-03-01", User: 7, Time: 3600},
		{ID: 2, Date: "2024-03-01", User: 8, Time: 1800},
	}}
	fanout := &stubFanout{}
	store := newMemoryStore()

	svc := NewService(source, fanout, store, nil, 7)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(fanout.events) != 2 {
		t.Fatalf("published %d events, want 2", len(fanout.events))
	}
	if !store.seen["1"] || !store.seen["2"] {
		t.Fatalf("records not marked: %+v", store.seen)
	}
	if source.opts == nil || source.opts.From == "" || source.opts.To == "" {
		t.Fatalf("window bounds not set: %+v", source.opts)
	}
}

func TestServiceSkipsSeenRecords(t *testing.T) {
	source := &stubSource{records: []everhour.TimeRecord{
		{ID: 1, Date: "2024-03-01", User: 7, Time: 3600},
	}}
	fanout := &stubFanout{}
	store := newMemoryStore()
	store.seen["1"] = true

	svc := NewService(source, fanout, store, nil, 7)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fanout.events) != 0 {
		t.Fatalf("seen record was republished")
	}
}

func TestServiceDoesNotMarkOnPublishFailure(t *testing.T) {
	source := &stubSource{records: []everhour.TimeRecord{
		{ID: 1, Date: "2024-03-01", User: 7, Time: 3600},
	}}
	fanout := &stubFanout{err: errors.New("sink down")}
	store := newMemoryStore()

	svc := NewService(source, fanout, store, nil, 7)
	if err := svc.Run(context.Background()); err == nil {
		t.Fatalf("expected aggregated error")
	}
	if store.seen["1"] {
		t.Fatalf("failed record must not be marked exported")
	}
}

func TestServiceSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("api down")}
	svc := NewService(source, &stubFanout{}, newMemoryStore(), nil, 7)
	if err := svc.Run(context.Background()); err == nil {
		t.Fatalf("expected error from source")
	}
}
