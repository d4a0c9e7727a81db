// Package session manages who is logged in on each chat.
//
// Login is a mock: any well-formed email is accepted for either user type.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"internmatch-bot/internal/models"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrUnknownUserType = errors.New("unknown user type")
)

// Store persists sessions. GetSession returns nil, nil when none exists.
type Store interface {
	SaveSession(ctx context.Context, s models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, userID int64) (*models.Session, error)
	DeleteSession(ctx context.Context, userID int64) error
}

// Unmounter drops the browsing state of a user on logout.
type Unmounter interface {
	Unmount(userID int64) bool
}

type Manager struct {
	store  Store
	views  Unmounter
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(store Store, views Unmounter, ttl time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		views:  views,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (m *Manager) Login(ctx context.Context, userID int64, email string, userType models.UserType) (models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return models.Session{}, ErrInvalidEmail
	}
	if !userType.Valid() {
		return models.Session{}, fmt.Errorf("%w: %q", ErrUnknownUserType, userType)
	}

	s := models.Session{
		UserID:     userID,
		Email:      email,
		Type:       userType,
		LoggedInAt: m.now(),
	}
	if err := m.store.SaveSession(ctx, s, m.ttl); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	m.logger.Info("user logged in",
		zap.Int64("user_id", userID),
		zap.String("user_type", string(userType)),
	)
	return s, nil
}

// Logout ends the session and unmounts the user's view. Logging out without
// a session is not an error.
func (m *Manager) Logout(ctx context.Context, userID int64) error {
	if err := m.store.DeleteSession(ctx, userID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if m.views != nil {
		m.views.Unmount(userID)
	}

	m.logger.Info("user logged out", zap.Int64("user_id", userID))
	return nil
}

func (m *Manager) Current(ctx context.Context, userID int64) (models.Session, error) {
	s, err := m.store.GetSession(ctx, userID)
	if err != nil {
		return models.Session{}, fmt.Errorf("get session: %w", err)
	}
	if s == nil {
		return models.Session{}, ErrNotLoggedIn
	}
	return *s, nil
}
