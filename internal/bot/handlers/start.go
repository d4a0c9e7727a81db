package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/session"
)

// /start command
func HandleStart(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		ctx.Logger.Info("user started bot",
			zap.Int64("user_id", userID),
			zap.String("username", c.Sender().Username),
		)

		if err := clearUserState(ctx, userID); err != nil {
			ctx.Logger.Warn("failed to clear user state", zap.Error(err))
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s, err := ctx.Sessions.Current(dbCtx, userID)
		switch {
		case errors.Is(err, session.ErrNotLoggedIn):
			return c.Send(
				utils.FormatLoginPrompt(),
				utils.LoginKeyboard(),
				tele.ModeMarkdownV2,
			)
		case err != nil:
			ctx.Logger.Error("get session failed", zap.Int64("user_id", userID), zap.Error(err))
			return c.Send("😔 Something went wrong. Please try again later.")
		}

		return c.Send(
			utils.FormatWelcomeMessage(c.Sender().FirstName, s),
			utils.MenuKeyboard(s.Type),
			tele.ModeMarkdownV2,
		)
	}
}

func handleLoginChoice(ctx *Context, c tele.Context, parts []string) error {
	if len(parts) < 2 || !models.UserType(parts[1]).Valid() {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Unknown account type"})
	}
	userType := models.UserType(parts[1])

	if err := setUserState(ctx, c.Sender().ID, emailState(userType)); err != nil {
		ctx.Logger.Error("failed to set user state", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Something went wrong"})
	}

	_ = c.Respond()
	return c.Send(utils.FormatEmailPrompt(userType), utils.CancelKeyboard())
}

func handleEmailInput(ctx *Context, c tele.Context, userType models.UserType) error {
	text := strings.TrimSpace(c.Text())
	userID := c.Sender().ID

	if text == utils.BtnCancel {
		_ = clearUserState(ctx, userID)
		return c.Send("❌ Login cancelled. Send /start to try again.", utils.RemoveKeyboard())
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := ctx.Sessions.Login(dbCtx, userID, text, userType)
	switch {
	case errors.Is(err, session.ErrInvalidEmail):
		return c.Send("⚠️ That doesn't look like an email address. Try again:", utils.CancelKeyboard())
	case errors.Is(err, session.ErrUnknownUserType):
		_ = clearUserState(ctx, userID)
		return c.Send("❌ Unknown account type. Send /start to try again.", utils.RemoveKeyboard())
	case err != nil:
		ctx.Logger.Error("login failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Login failed. Please try again later.")
	}

	if err := clearUserState(ctx, userID); err != nil {
		ctx.Logger.Warn("failed to clear state", zap.Error(err))
	}

	return c.Send(
		utils.FormatWelcomeMessage(c.Sender().FirstName, s),
		utils.MenuKeyboard(s.Type),
		tele.ModeMarkdownV2,
	)
}
