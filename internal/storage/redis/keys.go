package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"internmatch-bot/internal/models"
	"internmatch-bot/internal/profile"
	"internmatch-bot/internal/resume"
)

const (
	RateLimitWindowTTL = 1 * time.Minute
	UserStateCacheTTL  = 30 * time.Minute
)

func SessionKey(userID int64) string {
	return fmt.Sprintf("session:user:%d", userID)
}

func ResumeKey(userID int64) string {
	return fmt.Sprintf("resume:user:%d", userID)
}

func ProfileKey(userID int64) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

func RateLimitKey(userID int64) string {
	return fmt.Sprintf("ratelimit:user:%d", userID)
}

func UserStateKey(userID int64) string {
	return fmt.Sprintf("state:user:%d", userID)
}

func (c *Cache) SaveSession(ctx context.Context, s models.Session, ttl time.Duration) error {
	return c.Set(ctx, SessionKey(s.UserID), s, ttl)
}

// GetSession returns nil, nil when the user has no session.
func (c *Cache) GetSession(ctx context.Context, userID int64) (*models.Session, error) {
	var s models.Session
	err := c.Get(ctx, SessionKey(userID), &s)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Cache) DeleteSession(ctx context.Context, userID int64) error {
	return c.Delete(ctx, SessionKey(userID))
}

// SaveResume replaces the stored resume of userID. Resumes do not expire.
func (c *Cache) SaveResume(ctx context.Context, userID int64, u resume.Upload) error {
	if err := c.Set(ctx, ResumeKey(userID), u, 0); err != nil {
		return err
	}
	c.logger.Info("resume stored",
		zap.Int64("user_id", userID),
		zap.String("resume_id", u.ID.String()),
		zap.Int64("size", u.Size),
	)
	return nil
}

// GetResume returns nil, nil when the user has not uploaded a resume.
func (c *Cache) GetResume(ctx context.Context, userID int64) (*resume.Upload, error) {
	var u resume.Upload
	err := c.Get(ctx, ResumeKey(userID), &u)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveProfile replaces the stored profile of p.UserID. Profiles do not expire.
func (c *Cache) SaveProfile(ctx context.Context, p profile.Profile) error {
	return c.Set(ctx, ProfileKey(p.UserID), p, 0)
}

// GetProfile returns nil, nil when the user has never saved a profile.
func (c *Cache) GetProfile(ctx context.Context, userID int64) (*profile.Profile, error) {
	var p profile.Profile
	err := c.Get(ctx, ProfileKey(userID), &p)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Cache) IncrementUserRateLimit(ctx context.Context, userID int64) (int64, error) {
	return c.IncrementWithExpiry(ctx, RateLimitKey(userID), RateLimitWindowTTL)
}

func (c *Cache) SetUserState(ctx context.Context, userID int64, state string) error {
	return c.SetString(ctx, UserStateKey(userID), state, UserStateCacheTTL)
}

// GetUserState returns "" when no input is awaited.
func (c *Cache) GetUserState(ctx context.Context, userID int64) (string, error) {
	state, err := c.GetString(ctx, UserStateKey(userID))
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return state, err
}

func (c *Cache) DeleteUserState(ctx context.Context, userID int64) error {
	return c.Delete(ctx, UserStateKey(userID))
}
