package handlers

import (
	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/view"
)

// /notifications
func HandleNotifications(ctx *Context) tele.HandlerFunc {
	return func(c tele.Context) error {
		text, markup := notificationsPage(ctx, ctx.view(c))
		return c.Send(text, markup, tele.ModeMarkdownV2)
	}
}

func notificationsPage(ctx *Context, v *view.View) (string, *tele.ReplyMarkup) {
	var (
		list           []notifications.Notification
		unread         int
		filter, sortBy string
	)
	v.Do(func(s *view.State) {
		filter, sortBy = s.NotifFilter, s.NotifSort
		list = s.Inbox.List(filter, sortBy)
		unread = s.Inbox.UnreadCount()
	})

	return utils.FormatNotifications(list, unread, filter, sortBy, ctx.now()),
		utils.NotificationsKeyboard(list, filter, sortBy)
}

// handleNotificationAction covers every notif_* callback.
func handleNotificationAction(ctx *Context, c tele.Context, action string, parts []string) error {
	v := ctx.view(c)
	answer := ""

	switch action {
	case "notif_read", "notif_del":
		id, ok := parseIntArg(parts, 1)
		if !ok {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid notification"})
		}
		var changed bool
		v.Do(func(s *view.State) {
			if action == "notif_read" {
				changed = s.Inbox.MarkRead(id)
			} else {
				changed = s.Inbox.Delete(id)
			}
		})
		if !changed {
			return c.Respond(&tele.CallbackResponse{Text: "🤷 Notification not found"})
		}
		if action == "notif_del" {
			answer = "🗑 Deleted"
		}
	case "notif_all_read":
		v.Do(func(s *view.State) { s.Inbox.MarkAllRead() })
		answer = "📭 All read"
	case "notif_filter":
		if len(parts) < 2 || parts[1] == "" {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid filter"})
		}
		v.Do(func(s *view.State) { s.NotifFilter = parts[1] })
	case "notif_sort":
		if len(parts) < 2 || (parts[1] != notifications.SortNewest && parts[1] != notifications.SortPriority) {
			return c.Respond(&tele.CallbackResponse{Text: "❌ Invalid order"})
		}
		v.Do(func(s *view.State) { s.NotifSort = parts[1] })
	default:
		return c.Respond(&tele.CallbackResponse{Text: "❓ Unknown action"})
	}

	text, markup := notificationsPage(ctx, v)
	_ = c.Respond(&tele.CallbackResponse{Text: answer})
	return editOrSend(c, text, markup, tele.ModeMarkdownV2)
}
