package middleware

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/models"
	"internmatch-bot/internal/session"
)

const sessionKey = "session"

// Sessions resolves the logged-in user of a chat.
type Sessions interface {
	Current(ctx context.Context, userID int64) (models.Session, error)
}

// RequireSession lets the update through only for logged-in users of one of
// the allowed types. Any type is accepted when allowed is empty. The session
// is available to the handler through SessionFrom.
func RequireSession(sessions Sessions, logger *zap.Logger, allowed ...models.UserType) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			s, err := sessions.Current(ctx, user.ID)
			switch {
			case errors.Is(err, session.ErrNotLoggedIn):
				return deny(c, "🔒 Please log in first: /start")
			case err != nil:
				logger.Error("failed to get session", zap.Int64("user_id", user.ID), zap.Error(err))
				return deny(c, "😔 Something went wrong. Please try again later.")
			}

			if len(allowed) > 0 && !slices.Contains(allowed, s.Type) {
				logger.Debug("section denied",
					zap.Int64("user_id", user.ID),
					zap.String("user_type", string(s.Type)),
				)
				return deny(c, "⛔ This section is not available for your account.")
			}

			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c tele.Context) (models.Session, bool) {
	s, ok := c.Get(sessionKey).(models.Session)
	return s, ok
}

func deny(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
