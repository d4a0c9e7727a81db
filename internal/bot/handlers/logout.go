package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
)

// /logout drops the session together with the browsing view and any
// conversation in progress.
func HandleLogout(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := ctx.Sessions.Logout(dbCtx, userID); err != nil {
			ctx.Logger.Error("logout failed", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Logout failed. Please try again later.")
		}

		if err := clearUserState(ctx, userID); err != nil {
			ctx.Logger.Warn("failed to clear state", zap.Error(err))
		}

		return c.Send("👋 You are logged out. Send /start to log in again.", utils.RemoveKeyboard())
	}
}
