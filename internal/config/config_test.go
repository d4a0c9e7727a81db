package config_test

import (
	"testing"
	"time"

	"internmatch-bot/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_TOKEN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"CATALOG_SOURCE", "POSTGRES_DSN", "SESSION_TTL", "VIEW_IDLE_TIMEOUT",
		"SWEEP_SCHEDULE", "PAGE_SIZE", "MAX_RESUME_BYTES", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.CatalogSource != config.CatalogBuiltin {
		t.Errorf("CatalogSource = %q, want builtin", cfg.CatalogSource)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.ViewIdleTimeout != 30*time.Minute {
		t.Errorf("ViewIdleTimeout = %v, want 30m", cfg.ViewIdleTimeout)
	}
	if cfg.SweepSchedule != "@every 5m" {
		t.Errorf("SweepSchedule = %q", cfg.SweepSchedule)
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize)
	}
	if cfg.MaxResumeBytes != 5*1024*1024 {
		t.Errorf("MaxResumeBytes = %d, want 5 MiB", cfg.MaxResumeBytes)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/internmatch")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("VIEW_IDLE_TIMEOUT", "10m")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("MAX_RESUME_BYTES", "1048576")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RedisAddr != "redis:6380" || cfg.RedisDB != 2 {
		t.Errorf("redis = %q/%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.CatalogSource != config.CatalogPostgres || cfg.PostgresDSN == "" {
		t.Errorf("catalog = %q dsn %q", cfg.CatalogSource, cfg.PostgresDSN)
	}
	if cfg.SessionTTL != time.Hour || cfg.ViewIdleTimeout != 10*time.Minute {
		t.Errorf("durations = %v, %v", cfg.SessionTTL, cfg.ViewIdleTimeout)
	}
	if cfg.PageSize != 10 || cfg.MaxResumeBytes != 1<<20 {
		t.Errorf("limits = %d, %d", cfg.PageSize, cfg.MaxResumeBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(): %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing token", map[string]string{}},
		{"postgres without dsn", map[string]string{"TELEGRAM_TOKEN": "x", "CATALOG_SOURCE": "postgres"}},
		{"bad redis db", map[string]string{"TELEGRAM_TOKEN": "x", "REDIS_DB": "one"}},
		{"bad ttl", map[string]string{"TELEGRAM_TOKEN": "x", "SESSION_TTL": "forever"}},
		{"bad page size", map[string]string{"TELEGRAM_TOKEN": "x", "PAGE_SIZE": "five"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := config.Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			TelegramToken:   "x",
			CatalogSource:   config.CatalogBuiltin,
			SessionTTL:      time.Hour,
			ViewIdleTimeout: time.Minute,
			SweepSchedule:   "@every 1m",
			PageSize:        5,
			MaxResumeBytes:  1024,
			LogLevel:        "warn",
		}
	}

	cfg := valid()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on valid config: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown source", func(c *config.Config) { c.CatalogSource = "csv" }},
		{"idle timeout too small", func(c *config.Config) { c.ViewIdleTimeout = 30 * time.Second }},
		{"page size zero", func(c *config.Config) { c.PageSize = 0 }},
		{"page size too big", func(c *config.Config) { c.PageSize = 21 }},
		{"resume limit too big", func(c *config.Config) { c.MaxResumeBytes = 21 << 20 }},
		{"bad log level", func(c *config.Config) { c.LogLevel = "trace" }},
		{"empty schedule", func(c *config.Config) { c.SweepSchedule = "" }},
	}
	for _, c := range cases {
		cfg := valid()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() error = nil, want error", c.name)
		}
	}
}
