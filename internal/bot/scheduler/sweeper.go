// Package scheduler runs the periodic cleanup of idle browsing views.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Views is the part of the view registry the sweeper needs.
type Views interface {
	Sweep(now time.Time) int
	Len() int
}

// Sweeper wraps robfig/cron and unmounts idle views on every tick.
type Sweeper struct {
	cron   *cron.Cron
	views  Views
	spec   string // cron spec, e.g. "@every 5m"
	logger *zap.Logger
	now    func() time.Time
}

func New(views Views, spec string, logger *zap.Logger) *Sweeper {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger.Named("cron")))

	return &Sweeper{
		cron:   cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.Recover(cronLogger))),
		views:  views,
		spec:   spec,
		logger: logger,
		now:    time.Now,
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("view sweeper started", zap.String("spec", s.spec))
	return nil
}

// Stop shuts the scheduler down and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("view sweeper stopped")
}

func (s *Sweeper) sweep() {
	removed := s.views.Sweep(s.now())
	if removed == 0 {
		return
	}

	s.logger.Info("idle views swept",
		zap.Int("removed", removed),
		zap.Int("mounted", s.views.Len()),
	)
}
