package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gocraft/dbr/v2"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Store reads the internship catalog table.
type Store struct {
	conn   *dbr.Connection
	sess   *dbr.Session
	logger *zap.Logger
}

// New opens a small pool (the catalog is read once at startup) and pings it.
func New(dsn string, logger *zap.Logger) (*Store, error) {
	conn, err := dbr.Open("postgres", dsn, &eventLogger{logger: logger.Named("dbr")})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	conn.SetMaxOpenConns(2)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxIdleTime(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("postgres connected")

	return &Store{
		conn:   conn,
		sess:   conn.NewSession(nil),
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}
