package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newBoltTestStore(t *testing.T, opts Options) Store {
	t.Helper()
	store, err := NewStore("bbolt", filepath.Join(t.TempDir(), "exported.db"), opts)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStoreMarkAndSeen(t *testing.T) {
	store := newBoltTestStore(t, Options{})

	seen, err := store.SeenRecord("815")
	if err != nil {
		t.Fatalf("SeenRecord: %v", err)
	}
	if seen {
		t.Fatalf("record should not be seen yet")
	}

	if err := store.MarkRecord("815"); err != nil {
		t.Fatalf("MarkRecord: %v", err)
	}

	seen, err = store.SeenRecord("815")
	if err != nil {
		t.Fatalf("SeenRecord: %v", err)
	}
	if !seen {
		t.Fatalf("record should be seen after MarkRecord")
	}
}

func TestBoltStoreExpiry(t *testing.T) {
	store := newBoltTestStore(t, Options{RecordTTL: 50 * time.Millisecond})

	if err := store.MarkRecord("to-expire"); err != nil {
		t.Fatalf("MarkRecord: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	seen, err := store.SeenRecord("to-expire")
	if err != nil {
		t.Fatalf("SeenRecord: %v", err)
	}
	if seen {
		t.Fatalf("expired record should not be seen")
	}
}

func TestNewStoreNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.MarkRecord("1"); err != nil {
		t.Fatalf("MarkRecord: %v", err)
	}
	seen, err := store.SeenRecord("1")
	if err != nil || seen {
		t.Fatalf("noop store should never see records (seen=%v err=%v)", seen, err)
	}
}

func TestNewStoreUnsupportedType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported storage type")
	}
}
