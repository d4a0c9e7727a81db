package handlers

import (
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/middleware"
	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/catalog"
)

// /applications
func HandleApplications(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Send(
			utils.FormatApplications(catalog.Applications()),
			utils.MainMenuKeyboard(),
			tele.ModeMarkdownV2,
		)
	}
}

// /feedback
func HandleFeedback(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Send(
			utils.FormatFeedback(catalog.Feedback()),
			utils.MainMenuKeyboard(),
			tele.ModeMarkdownV2,
		)
	}
}

// /dashboard, company accounts only
func HandleDashboard(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		s, ok := middleware.SessionFrom(c)
		if !ok {
			return c.Send("🔒 Please log in first: /start")
		}

		return c.Send(
			utils.FormatDashboard(s, catalog.Candidates()),
			utils.CompanyMenuKeyboard(),
			tele.ModeMarkdownV2,
		)
	}
}
