package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("EVERHOUR_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without EVERHOUR_API_KEY")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EVERHOUR_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Fatalf("APIKey = %q", cfg.APIKey)
	}
	if cfg.PollInterval != 15*time.Minute {
		t.Fatalf("PollInterval = %s", cfg.PollInterval)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("APITimeout = %s", cfg.APITimeout)
	}
	if cfg.StorageType != "bbolt" {
		t.Fatalf("StorageType = %q", cfg.StorageType)
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("EVERHOUR_API_KEY", "test-key")
	t.Setenv("POLL_INTERVAL", "-5")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative poll_interval")
	}
}
