package bot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/handlers"
	"internmatch-bot/internal/bot/middleware"
	"internmatch-bot/internal/catalog"
	"internmatch-bot/internal/config"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/session"
	"internmatch-bot/internal/storage/redis"
	"internmatch-bot/internal/view"
)

// Bot represents Telegram bot
type Bot struct {
	bot      *tele.Bot
	jobs     []models.JobRecord
	views    *view.Registry
	sessions *session.Manager
	cache    *redis.Cache
	config   *config.Config
	logger   *zap.Logger
}

func New(
	cfg *config.Config,
	jobs []models.JobRecord,
	views *view.Registry,
	sessions *session.Manager,
	cache *redis.Cache,
	logger *zap.Logger,
) (*Bot, error) {
	pref := tele.Settings{
		Token:   cfg.TelegramToken,
		Poller:  &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("telebot error", zap.Error(err))
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		jobs:     jobs,
		views:    views,
		sessions: sessions,
		cache:    cache,
		config:   cfg,
		logger:   logger,
	}

	bot.setupMiddleware()

	bot.registerHandlers()

	logger.Info("bot initialized successfully", zap.Int("jobs", len(jobs)))

	return bot, nil
}

func (b *Bot) setupMiddleware() {
	b.bot.Use(middleware.Recovery(b.logger))

	b.bot.Use(middleware.Logger(b.logger))

	b.bot.Use(middleware.RateLimit(b.cache, b.logger))
}

func (b *Bot) registerHandlers() {
	ctx := &handlers.Context{
		Catalog:   b.jobs,
		Locations: catalog.Locations(b.jobs),
		Skills:    catalog.Skills(b.jobs),
		Views:     b.views,
		Sessions:  b.sessions,
		Cache:     b.cache,
		Config:    b.config,
		Logger:    b.logger,
	}

	b.bot.Handle("/start", handlers.HandleStart(ctx))
	b.bot.Handle("/help", handlers.HandleHelp(ctx))
	b.bot.Handle("/logout", handlers.HandleLogout(ctx))

	students := b.bot.Group()
	students.Use(middleware.RequireSession(b.sessions, b.logger, models.UserStudent))
	students.Handle("/jobs", handlers.HandleJobs(ctx))
	students.Handle("/filters", handlers.HandleFilters(ctx))
	students.Handle("/clear", handlers.HandleClear(ctx))
	students.Handle("/notifications", handlers.HandleNotifications(ctx))
	students.Handle("/applications", handlers.HandleApplications(ctx))
	students.Handle("/resume", handlers.HandleResume(ctx))
	students.Handle("/profile", handlers.HandleProfile(ctx))
	students.Handle("/feedback", handlers.HandleFeedback(ctx))
	students.Handle(tele.OnDocument, handlers.HandleDocument(ctx))

	companies := b.bot.Group()
	companies.Use(middleware.RequireSession(b.sessions, b.logger, models.UserCompany))
	companies.Handle("/dashboard", handlers.HandleDashboard(ctx))

	b.bot.Handle(tele.OnText, handlers.HandleText(ctx))

	b.bot.Handle(tele.OnCallback, handlers.HandleCallback(ctx))

	b.logger.Info("handlers registered")
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting bot...")

	go b.bot.Start()

	<-ctx.Done()

	b.logger.Info("stopping bot...")
	b.bot.Stop()

	return nil
}
