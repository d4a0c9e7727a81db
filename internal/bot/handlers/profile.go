package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/middleware"
	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/profile"
)

const StateAwaitingProfile = "awaiting_profile"

// profileState carries the field being edited, e.g. "awaiting_profile:bio".
func profileState(f profile.Field) string {
	return StateAwaitingProfile + ":" + string(f)
}

// loadProfile returns the stored profile, or the default one seeded with the
// session email when nothing was saved yet.
func loadProfile(ctx *Context, c tele.Context) (profile.Profile, error) {
	userID := c.Sender().ID

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := ctx.Cache.GetProfile(dbCtx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	if p != nil {
		return *p, nil
	}

	var email string
	if s, ok := middleware.SessionFrom(c); ok {
		email = s.Email
	}
	return profile.Default(userID, email), nil
}

// /profile
func HandleProfile(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		p, err := loadProfile(ctx, c)
		if err != nil {
			ctx.Logger.Error("failed to get profile", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
			return c.Send("😔 Could not load your profile. Please try again later.")
		}
		return c.Send(utils.FormatProfile(p), utils.ProfileKeyboard(), tele.ModeMarkdownV2)
	}
}

func handleProfileEdit(ctx *Context, c tele.Context, parts []string) error {
	if len(parts) < 2 {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid field"})
	}
	f, err := profile.ParseField(parts[1])
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid field"})
	}

	p, err := loadProfile(ctx, c)
	if err != nil {
		ctx.Logger.Error("failed to get profile", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Could not load your profile", ShowAlert: true})
	}

	if err := setUserState(ctx, c.Sender().ID, profileState(f)); err != nil {
		ctx.Logger.Error("failed to set user state", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "😔 Something went wrong"})
	}

	_ = c.Respond()
	return c.Send(utils.FormatProfilePrompt(p, f), utils.CancelKeyboard())
}

func handleProfileInput(ctx *Context, c tele.Context, f profile.Field) error {
	text := strings.TrimSpace(c.Text())
	userID := c.Sender().ID

	if text == utils.BtnCancel {
		_ = clearUserState(ctx, userID)
		return c.Send("❌ Edit cancelled", utils.MainMenuKeyboard())
	}

	p, err := loadProfile(ctx, c)
	if err != nil {
		ctx.Logger.Error("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Could not load your profile. Please try again later.")
	}

	if err := p.Set(f, text, ctx.now()); err != nil {
		// keep the state so the next message is another attempt
		return c.Send(profileError(err, f), utils.CancelKeyboard())
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctx.Cache.SaveProfile(dbCtx, p); err != nil {
		ctx.Logger.Error("failed to save profile", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("😔 Could not save your profile. Please try again later.")
	}
	_ = clearUserState(ctx, userID)

	ctx.Logger.Info("profile updated", zap.Int64("user_id", userID), zap.String("field", string(f)))

	if err := c.Send("✅ *Profile Updated*\n\nYour profile has been successfully updated\\.", utils.MainMenuKeyboard(), tele.ModeMarkdownV2); err != nil {
		return err
	}
	return c.Send(utils.FormatProfile(p), utils.ProfileKeyboard(), tele.ModeMarkdownV2)
}

func profileError(err error, f profile.Field) string {
	switch {
	case errors.Is(err, profile.ErrEmptyValue):
		return fmt.Sprintf("⚠️ %s cannot be empty. Try again or press cancel.", profile.Label(f))
	case errors.Is(err, profile.ErrInvalidEmail):
		return "⚠️ That doesn't look like an email address. Try again or press cancel."
	case errors.Is(err, profile.ErrTooLong):
		return fmt.Sprintf("⚠️ Please keep it under %d characters.", profile.MaxValueLen)
	}
	return "😔 Could not update this field."
}
