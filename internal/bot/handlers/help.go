package handlers

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
)

// /help
func HandleHelp(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		helpMsg := utils.FormatHelpMessage()

		dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if s, err := ctx.Sessions.Current(dbCtx, c.Sender().ID); err == nil {
			return c.Send(helpMsg, utils.MenuKeyboard(s.Type), tele.ModeMarkdownV2)
		}
		return c.Send(helpMsg, tele.ModeMarkdownV2)
	}
}
