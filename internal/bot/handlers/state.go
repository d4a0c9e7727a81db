package handlers

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/profile"
)

// User states for conversation flow
const (
	StateIdle           = ""
	StateAwaitingEmail  = "awaiting_email"
	StateAwaitingSalary = "awaiting_salary"
	StateAwaitingMatch  = "awaiting_match_score"
	StateAwaitingSearch = "awaiting_search"
	StateConfirmClear   = "confirm_clear_filters"
	StateInterview      = "interview"
)

const stateTimeout = 2 * time.Second

// emailState carries the chosen user type, e.g. "awaiting_email:company".
func emailState(t models.UserType) string {
	return StateAwaitingEmail + ":" + string(t)
}

func setUserState(ctx *Context, userID int64, state string) error {
	dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()
	return ctx.Cache.SetUserState(dbCtx, userID, state)
}

func getUserState(ctx *Context, userID int64) (string, error) {
	dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()
	return ctx.Cache.GetUserState(dbCtx, userID)
}

func clearUserState(ctx *Context, userID int64) error {
	dbCtx, cancel := context.WithTimeout(context.Background(), stateTimeout)
	defer cancel()
	return ctx.Cache.DeleteUserState(dbCtx, userID)
}

func handleStateInput(ctx *Context, c tele.Context, state string) error {
	if t, ok := strings.CutPrefix(state, StateAwaitingEmail+":"); ok {
		return handleEmailInput(ctx, c, models.UserType(t))
	}
	if f, ok := strings.CutPrefix(state, StateAwaitingProfile+":"); ok {
		return ctx.guard(func(c tele.Context) error { return handleProfileInput(ctx, c, profile.Field(f)) }, models.UserStudent)(c)
	}

	switch state {
	case StateAwaitingSalary:
		return ctx.guard(func(c tele.Context) error { return handleSalaryInput(ctx, c) }, models.UserStudent)(c)
	case StateAwaitingMatch:
		return ctx.guard(func(c tele.Context) error { return handleMatchScoreInput(ctx, c) }, models.UserStudent)(c)
	case StateAwaitingSearch:
		return ctx.guard(func(c tele.Context) error { return handleSearchInput(ctx, c) }, models.UserStudent)(c)
	case StateConfirmClear:
		return ctx.guard(func(c tele.Context) error { return handleClearFiltersConfirm(ctx, c) }, models.UserStudent)(c)
	case StateInterview:
		return ctx.guard(func(c tele.Context) error { return handleInterviewAnswer(ctx, c) }, models.UserStudent)(c)
	default:
		_ = clearUserState(ctx, c.Sender().ID)
		return c.Reply("Use the menu buttons or commands")
	}
}

func cancelConversation(ctx *Context, c tele.Context) error {
	userID := c.Sender().ID

	if err := clearUserState(ctx, userID); err != nil {
		ctx.Logger.Warn("failed to clear state", zap.Error(err))
	}

	return c.Send(
		"❌ Cancelled",
		utils.FiltersMenuKeyboard(),
	)
}
