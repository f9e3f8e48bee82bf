package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName             string        `mapstructure:"app_name"`
	Env                 string        `mapstructure:"app_env"`
	LogLevel            string        `mapstructure:"log_level"`
	APIKey              string        `mapstructure:"everhour_api_key"`
	APITimeoutSeconds   int64         `mapstructure:"api_timeout_seconds"`
	APITimeout          time.Duration `mapstructure:"-"`
	SinksFile           string        `mapstructure:"sinks_file"`
	PollIntervalSeconds int64         `mapstructure:"poll_interval"`
	PollInterval        time.Duration `mapstructure:"-"`
	LookbackDays        int           `mapstructure:"lookback_days"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "everhour-exporter")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("everhour_api_key", "")
	v.SetDefault("api_timeout_seconds", 30)
	v.SetDefault("sinks_file", "./configs/sinks.yaml")
	v.SetDefault("poll_interval", 900) // seconds
	v.SetDefault("lookback_days", 7)
	v.SetDefault("storage_type", "bbolt")
	v.SetDefault("bbolt_path", "./data/exported.db")
	v.SetDefault("storage_ttl_seconds", int64((30*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64((12*time.Hour)/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("EVERHOUR_API_KEY is required")
	}

	if cfg.APITimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid api_timeout_seconds (must be positive seconds)")
	}
	cfg.APITimeout = time.Duration(cfg.APITimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid poll_interval (must be positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	if cfg.LookbackDays <= 0 {
		return nil, fmt.Errorf("invalid lookback_days (must be positive)")
	}

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}
