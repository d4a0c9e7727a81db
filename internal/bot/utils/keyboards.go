package utils

import (
	"fmt"
	"slices"

	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/models"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/profile"
	"internmatch-bot/internal/search"
)

// Reply keyboard labels.
const (
	BtnJobs          = "🔍 Jobs"
	BtnFilters       = "🎛 Filters"
	BtnNotifications = "🔔 Notifications"
	BtnApplications  = "📨 Applications"
	BtnResume        = "📄 Resume"
	BtnProfile       = "👤 Profile"
	BtnFeedback      = "🎤 Feedback"
	BtnHelp          = "❓ Help"
	BtnLogout        = "🚪 Logout"
	BtnDashboard     = "📊 Dashboard"

	BtnJobType     = "💼 Job Type"
	BtnLocation    = "📍 Location"
	BtnSalary      = "💰 Salary"
	BtnCompanySize = "🏢 Company Size"
	BtnExperience  = "🎓 Experience"
	BtnWorkMode    = "🏠 Work Mode"
	BtnDuration    = "⏳ Duration"
	BtnMatchScore  = "🎯 Match Score"
	BtnSkills      = "🛠 Skills"
	BtnPosted      = "🗓 Posted"
	BtnSearch      = "🔎 Search"
	BtnShowFilters = "📊 Show Filters"
	BtnClear       = "🗑 Clear Filters"
	BtnBack        = "◀️ Back"

	BtnCancel = "❌ Cancel"
	BtnYes    = "✅ Yes"
	BtnNo     = "❌ No"
)

// FieldOptions returns the selectable values of an enum filter field.
func FieldOptions(f search.Field) []models.Option {
	switch f {
	case search.FieldJobType:
		return models.JobTypeOptions
	case search.FieldCompanySize:
		return models.CompanySizeOptions
	case search.FieldExperienceLevel:
		return models.ExperienceOptions
	case search.FieldWorkMode:
		return models.WorkModeOptions
	case search.FieldDuration:
		return models.DurationOptions
	case search.FieldPostedWithin:
		return models.PostedWithinOptions
	}
	return nil
}

func MainMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	menu.Reply(
		menu.Row(menu.Text(BtnJobs), menu.Text(BtnFilters)),
		menu.Row(menu.Text(BtnNotifications), menu.Text(BtnApplications)),
		menu.Row(menu.Text(BtnResume), menu.Text(BtnProfile)),
		menu.Row(menu.Text(BtnFeedback), menu.Text(BtnHelp)),
		menu.Row(menu.Text(BtnLogout)),
	)

	return menu
}

func CompanyMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	menu.Reply(
		menu.Row(menu.Text(BtnDashboard)),
		menu.Row(menu.Text(BtnHelp), menu.Text(BtnLogout)),
	)

	return menu
}

func MenuKeyboard(t models.UserType) *tele.ReplyMarkup {
	if t == models.UserCompany {
		return CompanyMenuKeyboard()
	}
	return MainMenuKeyboard()
}

func FiltersMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	menu.Reply(
		menu.Row(menu.Text(BtnJobType), menu.Text(BtnLocation)),
		menu.Row(menu.Text(BtnSalary), menu.Text(BtnCompanySize)),
		menu.Row(menu.Text(BtnExperience), menu.Text(BtnWorkMode)),
		menu.Row(menu.Text(BtnDuration), menu.Text(BtnMatchScore)),
		menu.Row(menu.Text(BtnSkills), menu.Text(BtnPosted)),
		menu.Row(menu.Text(BtnSearch)),
		menu.Row(menu.Text(BtnShowFilters), menu.Text(BtnClear)),
		menu.Row(menu.Text(BtnJobs), menu.Text(BtnBack)),
	)

	return menu
}

func CancelKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(BtnCancel)))
	return menu
}

func ConfirmKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(BtnYes), menu.Text(BtnNo)))
	return menu
}

func RemoveKeyboard() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{RemoveKeyboard: true}
}

func LoginKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	menu.Inline(
		menu.Row(menu.Data("🎓 I'm a student", "login:"+string(models.UserStudent))),
		menu.Row(menu.Data("🏢 I'm a company", "login:"+string(models.UserCompany))),
	)

	return menu
}

func selected(label string, on bool) string {
	if on {
		return "✅ " + label
	}
	return label
}

// OptionsKeyboard lists the options of an enum field, marking the current one.
func OptionsKeyboard(f search.Field, options []models.Option, current string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row

	for _, o := range options {
		btn := menu.Data(
			selected(o.Label, o.Value == current),
			fmt.Sprintf("filter_opt:%s:%s", f, o.Value),
		)
		rows = append(rows, menu.Row(btn))
	}

	menu.Inline(rows...)
	return menu
}

// LocationsKeyboard offers "all", "remote" and every literal catalog location.
func LocationsKeyboard(locations []string, current string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{
		menu.Row(
			menu.Data(selected(LocationLabel(models.OptionAll), current == models.OptionAll), "filter_opt:location:all"),
			menu.Data(selected(LocationLabel("remote"), current == "remote"), "filter_opt:location:remote"),
		),
	}

	for i, loc := range locations {
		rows = append(rows, menu.Row(menu.Data(selected(loc, loc == current), fmt.Sprintf("loc:%d", i))))
	}

	menu.Inline(rows...)
	return menu
}

// SkillsKeyboard is a two-column checklist of skills.
func SkillsKeyboard(skills, chosen []string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row

	var row []tele.Btn
	for i, skill := range skills {
		row = append(row, menu.Data(selected(skill, slices.Contains(chosen, skill)), fmt.Sprintf("skill:%d", i)))
		if len(row) == 2 {
			rows = append(rows, menu.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, menu.Row(row...))
	}

	menu.Inline(rows...)
	return menu
}

// JobsPageKeyboard has a details button per listed job and page controls.
func JobsPageKeyboard(jobs []models.JobRecord, offset, page, pages int) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row

	var details []tele.Btn
	for i, job := range jobs {
		details = append(details, menu.Data(fmt.Sprintf("ℹ️ %d", offset+i+1), fmt.Sprintf("job_details:%d", job.ID)))
	}
	if len(details) > 0 {
		rows = append(rows, menu.Row(details...))
	}

	if pages > 1 {
		var nav []tele.Btn
		if page > 0 {
			nav = append(nav, menu.Data("⬅️ Prev", fmt.Sprintf("jobs_page:%d", page-1)))
		}
		// show 1-based current page like "2/7"
		nav = append(nav, menu.Data(fmt.Sprintf("%d/%d", page+1, pages), fmt.Sprintf("jobs_page:%d", page)))
		if page < pages-1 {
			nav = append(nav, menu.Data("Next ➡️", fmt.Sprintf("jobs_page:%d", page+1)))
		}
		rows = append(rows, menu.Row(nav...))
	}

	menu.Inline(rows...)
	return menu
}

func JobDetailsKeyboard(jobID, page int) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}

	menu.Inline(
		menu.Row(menu.Data("🚀 Apply", fmt.Sprintf("job_apply:%d", jobID))),
		menu.Row(menu.Data("◀️ Back to list", fmt.Sprintf("jobs_page:%d", page))),
	)

	return menu
}

func NotificationsKeyboard(list []notifications.Notification, filter, sortBy string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row

	for _, n := range list {
		var row []tele.Btn
		if !n.Read {
			row = append(row, menu.Data(fmt.Sprintf("✓ %d", n.ID), fmt.Sprintf("notif_read:%d", n.ID)))
		}
		row = append(row, menu.Data(fmt.Sprintf("🗑 %d", n.ID), fmt.Sprintf("notif_del:%d", n.ID)))
		rows = append(rows, menu.Row(row...))
	}

	filterRows := [][]string{
		{notifications.FilterAll, notifications.FilterUnread, notifications.FilterHigh},
		{string(notifications.TypeInterview), string(notifications.TypeMatch), string(notifications.TypeAchievement)},
	}
	for _, filters := range filterRows {
		var row []tele.Btn
		for _, f := range filters {
			row = append(row, menu.Data(selected(f, f == filter), "notif_filter:"+f))
		}
		rows = append(rows, menu.Row(row...))
	}

	rows = append(rows, menu.Row(
		menu.Data(selected("newest", sortBy == notifications.SortNewest), "notif_sort:"+notifications.SortNewest),
		menu.Data(selected("priority", sortBy == notifications.SortPriority), "notif_sort:"+notifications.SortPriority),
	))
	rows = append(rows, menu.Row(menu.Data("📭 Mark all read", "notif_all_read")))

	menu.Inline(rows...)
	return menu
}

func ResumeKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data("⬇️ Download", "resume_download")))
	return menu
}

// ProfileKeyboard has one edit button per profile field, two per row.
func ProfileKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row

	var row []tele.Btn
	for _, f := range profile.Fields {
		row = append(row, menu.Data("✏️ "+profile.Label(f), "profile_edit:"+string(f)))
		if len(row) == 2 {
			rows = append(rows, menu.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, menu.Row(row...))
	}

	menu.Inline(rows...)
	return menu
}
