package handlers

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/search"
)

// HandleText processes all text messages
func HandleText(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		text := strings.TrimSpace(c.Text())
		userID := c.Sender().ID

		state, err := getUserState(ctx, userID)
		if err != nil {
			ctx.Logger.Warn("failed to get user state", zap.Error(err))
			state = StateIdle
		}

		h := menuHandler(ctx, text)

		// a menu button abandons a pending prompt; cancel is the prompt's own answer
		if state != StateIdle && (h == nil || text == utils.BtnCancel) {
			return handleStateInput(ctx, c, state)
		}

		if h != nil {
			if state != StateIdle {
				_ = clearUserState(ctx, userID)
			}
			return h(c)
		}

		return c.Reply("Use the menu buttons or commands")
	}
}

// menuHandler maps a reply keyboard label to its guarded handler.
func menuHandler(ctx *Context, text string) tele.HandlerFunc {
	student := func(h func(*Context, tele.Context) error) tele.HandlerFunc {
		return ctx.guard(func(c tele.Context) error { return h(ctx, c) }, models.UserStudent)
	}
	option := func(f search.Field) tele.HandlerFunc {
		return student(func(ctx *Context, c tele.Context) error { return startOptionFilter(ctx, c, f) })
	}

	switch text {
	// main menu
	case utils.BtnJobs:
		return ctx.guard(HandleJobs(ctx), models.UserStudent)
	case utils.BtnFilters:
		return ctx.guard(HandleFilters(ctx), models.UserStudent)
	case utils.BtnNotifications:
		return ctx.guard(HandleNotifications(ctx), models.UserStudent)
	case utils.BtnApplications:
		return ctx.guard(HandleApplications(ctx), models.UserStudent)
	case utils.BtnResume:
		return ctx.guard(HandleResume(ctx), models.UserStudent)
	case utils.BtnProfile:
		return ctx.guard(HandleProfile(ctx), models.UserStudent)
	case utils.BtnFeedback:
		return ctx.guard(HandleFeedback(ctx), models.UserStudent)
	case utils.BtnDashboard:
		return ctx.guard(HandleDashboard(ctx), models.UserCompany)
	case utils.BtnHelp:
		return HandleHelp(ctx)
	case utils.BtnLogout:
		return HandleLogout(ctx)

	// filters menu
	case utils.BtnJobType:
		return option(search.FieldJobType)
	case utils.BtnCompanySize:
		return option(search.FieldCompanySize)
	case utils.BtnExperience:
		return option(search.FieldExperienceLevel)
	case utils.BtnWorkMode:
		return option(search.FieldWorkMode)
	case utils.BtnDuration:
		return option(search.FieldDuration)
	case utils.BtnPosted:
		return option(search.FieldPostedWithin)
	case utils.BtnLocation:
		return student(startLocationFilter)
	case utils.BtnSkills:
		return student(startSkillsFilter)
	case utils.BtnSalary:
		return student(startSalaryFilter)
	case utils.BtnMatchScore:
		return student(startMatchScoreFilter)
	case utils.BtnSearch:
		return student(startSearchFilter)
	case utils.BtnShowFilters:
		return student(showFilters)
	case utils.BtnClear:
		return student(clearFilters)
	case utils.BtnBack:
		return student(func(_ *Context, c tele.Context) error {
			return c.Send("Main menu", utils.MainMenuKeyboard())
		})

	case utils.BtnCancel:
		return func(c tele.Context) error { return cancelConversation(ctx, c) }
	}
	return nil
}
