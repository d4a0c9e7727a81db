package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recovery turns a handler panic into a logged error and an apology
func Recovery(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var userID int64
					if user := c.Sender(); user != nil {
						userID = user.ID
					}

					logger.Error("panic recovered",
						zap.Any("panic", r),
						zap.Stack("stack"),
						zap.Int64("user_id", userID),
					)

					err = c.Send("😔 Something went wrong. Please try again later.")
				}
			}()

			return next(c)
		}
	}
}
