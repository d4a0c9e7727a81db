package handlers

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/models"
)

// HandleCallback processes all callback queries from inline buttons
func HandleCallback(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		cb := c.Callback()
		if cb == nil {
			ctx.Logger.Warn("callback is nil")
			return nil
		}

		parts := parseCallback(cb.Data)
		action := parts[0]

		ctx.Logger.Debug("routing callback",
			zap.String("action", action),
			zap.Strings("parts", parts),
			zap.Int64("user_id", c.Sender().ID),
		)

		if action == "login" {
			return handleLoginChoice(ctx, c, parts)
		}

		return ctx.guard(func(c tele.Context) error {
			return routeCallback(ctx, c, action, parts)
		}, models.UserStudent)(c)
	}
}

// parseCallback strips the \f prefix telebot puts in front of button data
// and splits the rest on ':'. The result always has at least one element.
func parseCallback(data string) []string {
	data = strings.TrimPrefix(data, "\f")
	return strings.Split(data, ":")
}

func routeCallback(ctx *Context, c tele.Context, action string, parts []string) error {
	switch action {
	case "filter_opt":
		return handleOptionCallback(ctx, c, parts)
	case "loc":
		return handleLocationCallback(ctx, c, parts)
	case "skill":
		return handleSkillCallback(ctx, c, parts)
	case "jobs_page":
		return handleJobsPage(ctx, c, parts)
	case "job_details":
		return handleJobDetails(ctx, c, parts)
	case "job_apply":
		return handleJobApply(ctx, c, parts)
	case "resume_download":
		return handleResumeDownload(ctx, c)
	case "profile_edit":
		return handleProfileEdit(ctx, c, parts)
	case "notif_read", "notif_del", "notif_all_read", "notif_filter", "notif_sort":
		return handleNotificationAction(ctx, c, action, parts)
	default:
		ctx.Logger.Warn("unknown callback action",
			zap.String("action", action),
			zap.Strings("parts", parts),
		)
		return c.Respond(&tele.CallbackResponse{Text: "❓ Unknown action"})
	}
}
