package handlers

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/search"
	"internmatch-bot/internal/view"
)

// /filters command
func HandleFilters(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID

		if err := clearUserState(ctx, userID); err != nil {
			ctx.Logger.Warn("failed to clear user state", zap.Error(err))
		}

		var active int
		ctx.view(c).Do(func(s *view.State) { active = s.Filters.ActiveCount() })

		message := "🎛 *Filters*\n\n"
		if active > 0 {
			message += fmt.Sprintf("Active filters: *%d*\n\n", active)
		}
		message += "Choose what to set up:"

		return c.Send(
			message,
			utils.FiltersMenuKeyboard(),
			tele.ModeMarkdownV2,
		)
	}
}

// /clear command
func HandleClear(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		return clearFilters(ctx, c)
	}
}

func filterState(ctx *Context, c tele.Context) search.FilterState {
	var state search.FilterState
	ctx.view(c).Do(func(s *view.State) { state = s.Filters.Get() })
	return state
}

// applyUpdate stores u in the sender's view and returns the resulting state.
func applyUpdate(ctx *Context, c tele.Context, u search.Update) search.FilterState {
	var state search.FilterState
	ctx.view(c).Do(func(s *view.State) {
		s.Filters.Set(u)
		s.Page = 0
		state = s.Filters.Get()
	})

	ctx.Logger.Debug("filter updated",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("field", string(u.Field())),
	)
	return state
}

// optionValue is the raw selection of an enum field.
func optionValue(s search.FilterState, f search.Field) string {
	switch f {
	case search.FieldJobType:
		return s.JobType
	case search.FieldLocation:
		return s.Location
	case search.FieldCompanySize:
		return s.CompanySize
	case search.FieldExperienceLevel:
		return s.ExperienceLevel
	case search.FieldWorkMode:
		return s.WorkMode
	case search.FieldDuration:
		return s.Duration
	case search.FieldPostedWithin:
		return s.PostedWithin
	}
	return ""
}

// ==================== Option Filters ====================

func startOptionFilter(ctx *Context, c tele.Context, f search.Field) error {
	state := filterState(ctx, c)

	return c.Send(
		fmt.Sprintf("Choose %s:", strings.ToLower(utils.FieldLabel(f))),
		utils.OptionsKeyboard(f, utils.FieldOptions(f), optionValue(state, f)),
	)
}

func startLocationFilter(ctx *Context, c tele.Context) error {
	state := filterState(ctx, c)

	return c.Send(
		"📍 Choose a location:",
		utils.LocationsKeyboard(ctx.Locations, state.Location),
	)
}

func startSkillsFilter(ctx *Context, c tele.Context) error {
	state := filterState(ctx, c)

	return c.Send(
		"🛠 Select skills. A job matches when it has any of them:",
		utils.SkillsKeyboard(ctx.Skills, state.Skills),
	)
}

func handleOptionCallback(ctx *Context, c tele.Context, parts []string) error {
	if len(parts) < 3 {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid format"})
	}

	f := search.Field(parts[1])
	u, ok := search.Option(f, parts[2])
	if !ok {
		ctx.Logger.Warn("unknown option field", zap.String("field", parts[1]))
		return c.Respond(&tele.CallbackResponse{Text: "❌ Unknown filter"})
	}

	state := applyUpdate(ctx, c, u)

	_ = c.Respond(&tele.CallbackResponse{Text: "✅ Saved"})
	return editOrSend(c, utils.FormatFilterUpdated(state, f, ctx.summarize(state)), tele.ModeMarkdownV2)
}

func handleLocationCallback(ctx *Context, c tele.Context, parts []string) error {
	i, ok := parseIntArg(parts, 1)
	if !ok || i < 0 || i >= len(ctx.Locations) {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Unknown location"})
	}

	state := applyUpdate(ctx, c, search.Location(ctx.Locations[i]))

	_ = c.Respond(&tele.CallbackResponse{Text: "✅ Saved"})
	return editOrSend(c, utils.FormatFilterUpdated(state, search.FieldLocation, ctx.summarize(state)), tele.ModeMarkdownV2)
}

func handleSkillCallback(ctx *Context, c tele.Context, parts []string) error {
	i, ok := parseIntArg(parts, 1)
	if !ok || i < 0 || i >= len(ctx.Skills) {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Unknown skill"})
	}

	var state search.FilterState
	ctx.view(c).Do(func(s *view.State) {
		s.Filters.ToggleSkill(ctx.Skills[i])
		s.Page = 0
		state = s.Filters.Get()
	})

	_ = c.Respond()
	return editOrSend(c,
		utils.FormatFilterUpdated(state, search.FieldSkills, ctx.summarize(state)),
		utils.SkillsKeyboard(ctx.Skills, state.Skills),
		tele.ModeMarkdownV2,
	)
}

// ==================== Range Filters ====================

func startSalaryFilter(ctx *Context, c tele.Context) error {
	if err := setUserState(ctx, c.Sender().ID, StateAwaitingSalary); err != nil {
		ctx.Logger.Error("failed to set user state", zap.Error(err))
	}

	return c.Send(
		"💰 Enter a monthly salary range in dollars, e.g. 3000-4500.\n"+
			"A single number selects exactly that amount, 'any' resets the filter:",
		utils.CancelKeyboard(),
	)
}

func startMatchScoreFilter(ctx *Context, c tele.Context) error {
	if err := setUserState(ctx, c.Sender().ID, StateAwaitingMatch); err != nil {
		ctx.Logger.Error("failed to set user state", zap.Error(err))
	}

	return c.Send(
		"🎯 Enter a match score range from 0 to 100, e.g. 90-100.\n"+
			"'any' resets the filter:",
		utils.CancelKeyboard(),
	)
}

func handleSalaryInput(ctx *Context, c tele.Context) error {
	return handleRangeInput(ctx, c, search.FieldSalaryRange, search.DefaultSalaryRange, search.SalaryRange)
}

func handleMatchScoreInput(ctx *Context, c tele.Context) error {
	return handleRangeInput(ctx, c, search.FieldMatchScoreRange, search.DefaultMatchScoreRange, search.MatchScoreRange)
}

func handleRangeInput(ctx *Context, c tele.Context, f search.Field, def search.Range, update func(min, max int) search.Update) error {
	text := strings.TrimSpace(c.Text())

	if text == "" || text == utils.BtnCancel {
		return cancelConversation(ctx, c)
	}

	r, err := ParseRange(text, def)
	if err != nil {
		return c.Send("⚠️ Could not read that range. Use a form like 3000-4500 or 'any':", utils.CancelKeyboard())
	}
	if f == search.FieldMatchScoreRange && r.Max > 100 {
		return c.Send("⚠️ Match score goes up to 100. Try again:", utils.CancelKeyboard())
	}

	state := applyUpdate(ctx, c, update(r.Min, r.Max))

	if err := clearUserState(ctx, c.Sender().ID); err != nil {
		ctx.Logger.Warn("failed to clear state", zap.Error(err))
	}

	return c.Send(
		utils.FormatFilterUpdated(state, f, ctx.summarize(state)),
		utils.FiltersMenuKeyboard(),
		tele.ModeMarkdownV2,
	)
}

// ==================== Search Term ====================

func startSearchFilter(ctx *Context, c tele.Context) error {
	if err := setUserState(ctx, c.Sender().ID, StateAwaitingSearch); err != nil {
		ctx.Logger.Error("failed to set user state", zap.Error(err))
	}

	return c.Send(
		"🔎 Enter text to search in titles, companies and skills.\n"+
			"Send 'none' to clear the search:",
		utils.CancelKeyboard(),
	)
}

func handleSearchInput(ctx *Context, c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	if text == "" || text == utils.BtnCancel {
		return cancelConversation(ctx, c)
	}

	state := applyUpdate(ctx, c, search.SearchTerm(ParseSearchTerm(text)))

	if err := clearUserState(ctx, c.Sender().ID); err != nil {
		ctx.Logger.Warn("failed to clear state", zap.Error(err))
	}

	return c.Send(
		utils.FormatFilterUpdated(state, search.FieldSearchTerm, ctx.summarize(state)),
		utils.FiltersMenuKeyboard(),
		tele.ModeMarkdownV2,
	)
}

// ==================== Show & Clear Filters ====================

func showFilters(ctx *Context, c tele.Context) error {
	state := filterState(ctx, c)

	return c.Send(
		utils.FormatFiltersMessage(state, ctx.summarize(state)),
		utils.FiltersMenuKeyboard(),
		tele.ModeMarkdownV2,
	)
}

func clearFilters(ctx *Context, c tele.Context) error {
	if err := setUserState(ctx, c.Sender().ID, StateConfirmClear); err != nil {
		ctx.Logger.Warn("failed to set confirm clear state", zap.Error(err))
	}

	return c.Send(
		"🗑 Reset every filter, including the search text?",
		utils.ConfirmKeyboard(),
	)
}

func confirmClearFilters(ctx *Context, c tele.Context) error {
	userID := c.Sender().ID

	ctx.view(c).Do(func(s *view.State) {
		s.Filters.Clear()
		s.Page = 0
	})

	if err := clearUserState(ctx, userID); err != nil {
		ctx.Logger.Warn("failed to clear state", zap.Error(err))
	}

	ctx.Logger.Info("filters cleared", zap.Int64("user_id", userID))

	return c.Send(
		"✅ All filters cleared",
		utils.FiltersMenuKeyboard(),
	)
}

func handleClearFiltersConfirm(ctx *Context, c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	switch text {
	case utils.BtnYes, "Yes", "yes":
		return confirmClearFilters(ctx, c)
	case utils.BtnNo, "No", "no", utils.BtnCancel:
		return cancelConversation(ctx, c)
	default:
		return c.Send(
			"Please choose one of the options on the keyboard",
			utils.ConfirmKeyboard(),
		)
	}
}
