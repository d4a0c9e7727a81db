package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"internmatch-bot/internal/bot"
	"internmatch-bot/internal/bot/scheduler"
	"internmatch-bot/internal/catalog"
	"internmatch-bot/internal/config"
	"internmatch-bot/internal/logger"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/session"
	"internmatch-bot/internal/storage/postgres"
	"internmatch-bot/internal/storage/redis"
	"internmatch-bot/internal/view"
)

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting internmatch bot",
		zap.String("log_level", cfg.LogLevel),
		zap.String("catalog_source", cfg.CatalogSource),
		zap.Duration("view_idle_timeout", cfg.ViewIdleTimeout),
	)

	jobs, err := loadCatalog(cfg, log)
	if err != nil {
		log.Fatal("failed to load job catalog", zap.Error(err))
	}

	log.Info("connecting to Redis...")
	cache, err := redis.New(redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, log)
	if err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}

	log.Info("Redis connected successfully")

	views := view.NewRegistry(cfg.ViewIdleTimeout, notifications.Seed, log)
	sessions := session.NewManager(cache, views, cfg.SessionTTL, log)

	log.Info("initializing Telegram bot...")
	tgBot, err := bot.New(cfg, jobs, views, sessions, cache, log)
	if err != nil {
		_ = cache.Close()
		log.Fatal("failed to create bot", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sweeper := scheduler.New(views, cfg.SweepSchedule, log)
	if err := sweeper.Start(); err != nil {
		_ = cache.Close()
		log.Fatal("failed to start view sweeper", zap.Error(err))
	}

	log.Info("bot is running...")
	log.Info("press Ctrl+C to stop")

	if err := tgBot.Start(ctx); err != nil {
		log.Error("bot stopped with error", zap.Error(err))
	}

	log.Info("shutting down gracefully...")

	sweeper.Stop()

	if err := cache.Close(); err != nil {
		log.Error("failed to close Redis", zap.Error(err))
	}

	log.Info("bot stopped")
}

// loadCatalog returns the built-in sample catalog or reads the internships
// table, depending on CATALOG_SOURCE.
func loadCatalog(cfg *config.Config, log *zap.Logger) (jobs []models.JobRecord, err error) {
	if cfg.CatalogSource != config.CatalogPostgres {
		jobs = catalog.Default(time.Now())
		log.Info("using built-in catalog", zap.Int("jobs", len(jobs)))
		return jobs, nil
	}

	log.Info("connecting to PostgreSQL...")
	store, err := postgres.New(cfg.PostgresDSN, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	defer func() {
		err = multierr.Append(err, store.Close())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobs, err = store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	log.Info("catalog loaded from PostgreSQL", zap.Int("jobs", len(jobs)))
	return jobs, nil
}
