package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	CatalogBuiltin  = "builtin"
	CatalogPostgres = "postgres"
)

type Config struct {
	// Telegram
	TelegramToken string

	// Storage
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CatalogSource string
	PostgresDSN   string

	// Bot settings
	SessionTTL      time.Duration
	ViewIdleTimeout time.Duration
	SweepSchedule   string
	PageSize        int
	MaxResumeBytes  int64

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		RedisAddr:       "localhost:6379",
		CatalogSource:   CatalogBuiltin,
		SessionTTL:      24 * time.Hour,
		ViewIdleTimeout: 30 * time.Minute,
		SweepSchedule:   "@every 5m",
		PageSize:        5,
		MaxResumeBytes:  5 << 20,
		LogLevel:        "info",
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		cfg.CatalogSource = source
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	if cfg.CatalogSource == CatalogPostgres && cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required when CATALOG_SOURCE=postgres")
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	if idle := os.Getenv("VIEW_IDLE_TIMEOUT"); idle != "" {
		d, err := time.ParseDuration(idle)
		if err != nil {
			return nil, fmt.Errorf("invalid VIEW_IDLE_TIMEOUT: %w", err)
		}
		cfg.ViewIdleTimeout = d
	}

	if schedule := os.Getenv("SWEEP_SCHEDULE"); schedule != "" {
		cfg.SweepSchedule = schedule
	}

	if pageSize := os.Getenv("PAGE_SIZE"); pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil {
			return nil, fmt.Errorf("invalid PAGE_SIZE: %w", err)
		}
		cfg.PageSize = n
	}

	if maxBytes := os.Getenv("MAX_RESUME_BYTES"); maxBytes != "" {
		n, err := strconv.ParseInt(maxBytes, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_RESUME_BYTES: %w", err)
		}
		cfg.MaxResumeBytes = n
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("telegram token is empty")
	}

	switch c.CatalogSource {
	case CatalogBuiltin:
	case CatalogPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres DSN is empty")
		}
	default:
		return fmt.Errorf("invalid catalog source: %s", c.CatalogSource)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive: %v", c.SessionTTL)
	}

	if c.ViewIdleTimeout < time.Minute {
		return fmt.Errorf("view idle timeout too small: %v", c.ViewIdleTimeout)
	}

	if c.SweepSchedule == "" {
		return fmt.Errorf("sweep schedule is empty")
	}

	if c.PageSize < 1 || c.PageSize > 20 {
		return fmt.Errorf("page size must be between 1 and 20")
	}

	if c.MaxResumeBytes < 1 || c.MaxResumeBytes > 20<<20 {
		return fmt.Errorf("max resume bytes must be between 1 and %d", 20<<20)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
