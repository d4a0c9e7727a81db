package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"internmatch-bot/internal/interview"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/profile"
	"internmatch-bot/internal/resume"
	"internmatch-bot/internal/search"
)

// FormatMoney renders a monthly amount as "$4,000".
func FormatMoney(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sign + "$" + sb.String()
}

// FormatAge renders a duration as "2 hours ago".
func FormatAge(d time.Duration) string {
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s ago", unit)
		}
		return fmt.Sprintf("%d %ss ago", n, unit)
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	}
	return plural(int(d/(7*24*time.Hour)), "week")
}

// Paginate clamps page into range and returns the slice bounds of it.
func Paginate(total, size, page int) (start, end, current, pages int) {
	if size < 1 {
		size = 1
	}
	pages = (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	current = page
	if current < 0 {
		current = 0
	}
	if current > pages-1 {
		current = pages - 1
	}
	start = current * size
	end = start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end, current, pages
}

func FormatLoginPrompt() string {
	return "👋 *Welcome to InternMatch\\!*\n\n" +
		"Find internships that fit your skills and goals\\.\n\n" +
		"Who are you?"
}

func FormatEmailPrompt(userType models.UserType) string {
	return fmt.Sprintf("📧 Enter your %s email address:", userType)
}

func FormatWelcomeMessage(firstName string, s models.Session) string {
	name := firstName
	if name == "" {
		name = "there"
	}

	if s.Type == models.UserCompany {
		return fmt.Sprintf(`👋 Hi, *%s*\!

You are logged in as a company \(%s\)\.

Use 📊 Dashboard to see matched candidates\.`, EscapeMarkdown(name), EscapeMarkdown(s.Email))
	}

	return fmt.Sprintf(`👋 Hi, *%s*\!

You are logged in as a student \(%s\)\.

*What I can do:*
• Show internships matched to your profile
• Filter by type, location, salary, skills and more
• Run a mock interview when you apply
• Keep your resume on file

Start with 🔍 Jobs or tune 🎛 Filters\.`, EscapeMarkdown(name), EscapeMarkdown(s.Email))
}

func FormatHelpMessage() string {
	return `*📖 Help*

*Commands:*

/start \- log in or show the main menu
/jobs \- browse internships matching your filters
/filters \- set up filters
/clear \- reset every filter
/notifications \- your notification inbox
/applications \- status of your applications
/resume \- your uploaded resume
/profile \- view and edit your profile
/feedback \- interview feedback and scores
/logout \- end the session

*Filters:*

Every filter you set narrows the list\. Skills match when a job has *any* of the selected skills\. Salary and match score take a range like ` + "`3000-4500`" + `\.

*Resume:*

Send a PDF, DOC or DOCX file to store it\.`
}

func FieldLabel(f search.Field) string {
	switch f {
	case search.FieldJobType:
		return "Job Type"
	case search.FieldLocation:
		return "Location"
	case search.FieldSalaryRange:
		return "Salary"
	case search.FieldCompanySize:
		return "Company Size"
	case search.FieldExperienceLevel:
		return "Experience"
	case search.FieldWorkMode:
		return "Work Mode"
	case search.FieldDuration:
		return "Duration"
	case search.FieldMatchScoreRange:
		return "Match Score"
	case search.FieldSkills:
		return "Skills"
	case search.FieldPostedWithin:
		return "Posted"
	case search.FieldSearchTerm:
		return "Search"
	}
	return string(f)
}

func LocationLabel(location string) string {
	switch location {
	case models.OptionAll:
		return "All Locations"
	case "remote":
		return "Remote"
	}
	return location
}

// FieldValue renders the current selection of f in s.
func FieldValue(s search.FilterState, f search.Field) string {
	switch f {
	case search.FieldJobType:
		return models.OptionLabel(models.JobTypeOptions, s.JobType)
	case search.FieldLocation:
		return LocationLabel(s.Location)
	case search.FieldSalaryRange:
		return FormatMoney(s.SalaryRange.Min) + " - " + FormatMoney(s.SalaryRange.Max)
	case search.FieldCompanySize:
		return models.OptionLabel(models.CompanySizeOptions, s.CompanySize)
	case search.FieldExperienceLevel:
		return models.OptionLabel(models.ExperienceOptions, s.ExperienceLevel)
	case search.FieldWorkMode:
		return models.OptionLabel(models.WorkModeOptions, s.WorkMode)
	case search.FieldDuration:
		return models.OptionLabel(models.DurationOptions, s.Duration)
	case search.FieldMatchScoreRange:
		return fmt.Sprintf("%d%% - %d%%", s.MatchScoreRange.Min, s.MatchScoreRange.Max)
	case search.FieldSkills:
		if len(s.Skills) == 0 {
			return "Any"
		}
		return strings.Join(s.Skills, ", ")
	case search.FieldPostedWithin:
		return models.OptionLabel(models.PostedWithinOptions, s.PostedWithin)
	case search.FieldSearchTerm:
		if s.SearchTerm == "" {
			return "None"
		}
		return s.SearchTerm
	}
	return ""
}

func FormatFiltersMessage(s search.FilterState, summary search.Summary) string {
	var sb strings.Builder
	sb.WriteString("*🎛 Your filters:*\n\n")

	for _, f := range search.Fields {
		marker := "▫️"
		if s.IsActive(f) {
			marker = "🔹"
		}
		sb.WriteString(fmt.Sprintf("%s *%s:* %s\n",
			marker,
			EscapeMarkdown(FieldLabel(f)),
			EscapeMarkdown(FieldValue(s, f)),
		))
	}

	sb.WriteString("\n_" + EscapeMarkdown(summary.String()) + "_")
	return sb.String()
}

// FormatFilterUpdated confirms a changed field together with the new result
// summary.
func FormatFilterUpdated(s search.FilterState, f search.Field, summary search.Summary) string {
	return fmt.Sprintf("✅ *%s:* %s\n\n_%s_",
		EscapeMarkdown(FieldLabel(f)),
		EscapeMarkdown(FieldValue(s, f)),
		EscapeMarkdown(summary.String()),
	)
}

func FormatJobPage(jobs []models.JobRecord, offset int, summary search.Summary, page, pages int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🔍 *%s*\n", EscapeMarkdown(summary.String())))
	if pages > 1 {
		sb.WriteString(EscapeMarkdown(fmt.Sprintf("Page %d/%d", page+1, pages)) + "\n")
	}
	sb.WriteString("\n")

	if len(jobs) == 0 {
		sb.WriteString("😔 *No jobs match your filters*\n\n")
		sb.WriteString("Try widening them in 🎛 Filters or reset with /clear")
		return sb.String()
	}

	for i, job := range jobs {
		sb.WriteString(fmt.Sprintf("*%d\\. %s*\n", offset+i+1, EscapeMarkdown(job.Title)))
		sb.WriteString(fmt.Sprintf("   🏢 %s · 📍 %s\n",
			EscapeMarkdown(job.Company),
			EscapeMarkdown(job.Location),
		))
		sb.WriteString(fmt.Sprintf("   💰 %s · ⏳ %s · 🎯 %s\n",
			EscapeMarkdown(salaryText(job)),
			EscapeMarkdown(job.Duration),
			EscapeMarkdown(fmt.Sprintf("%d%% match", job.Match)),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

func salaryText(job models.JobRecord) string {
	if job.SalaryDisplay != "" {
		return job.SalaryDisplay
	}
	return FormatMoney(job.Salary) + "/month"
}

func FormatJobDetails(job models.JobRecord, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*%s*\n\n", EscapeMarkdown(job.Title)))
	sb.WriteString(fmt.Sprintf("🏢 *Company:* %s\n", EscapeMarkdown(job.Company)))
	sb.WriteString(fmt.Sprintf("📍 *Location:* %s\n", EscapeMarkdown(job.Location)))
	sb.WriteString(fmt.Sprintf("💼 *Type:* %s\n", EscapeMarkdown(job.Type)))
	sb.WriteString(fmt.Sprintf("⏳ *Duration:* %s\n", EscapeMarkdown(job.Duration)))
	sb.WriteString(fmt.Sprintf("💰 *Salary:* %s\n", EscapeMarkdown(salaryText(job))))
	sb.WriteString(fmt.Sprintf("🎯 *Match:* %d%%\n", job.Match))
	sb.WriteString(fmt.Sprintf("👥 *Applicants:* %d\n", job.Applicants))

	posted := job.Posted
	if posted == "" && !job.PostedDate.IsZero() {
		posted = FormatAge(now.Sub(job.PostedDate))
	}
	if posted != "" {
		sb.WriteString(fmt.Sprintf("📅 *Posted:* %s\n", EscapeMarkdown(posted)))
	}

	if job.Description != "" {
		sb.WriteString("\n" + EscapeMarkdown(job.Description) + "\n")
	}

	if len(job.Requirements) > 0 {
		sb.WriteString("\n*Requirements:*\n")
		for _, r := range job.Requirements {
			sb.WriteString("• " + EscapeMarkdown(r) + "\n")
		}
	}

	if len(job.Skills) > 0 {
		sb.WriteString("\n*Skills:* " + EscapeMarkdown(strings.Join(job.Skills, ", ")) + "\n")
	}

	return sb.String()
}

func FormatInterviewQuestion(s *interview.Session) string {
	question, number, ok := s.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("🎤 *Interview: %s*\n_%s_\n\n*Question %d of %d*\n%s\n\n%s",
		EscapeMarkdown(s.Job.Title),
		EscapeMarkdown(s.Job.Company),
		number, len(interview.Questions),
		EscapeMarkdown(question),
		EscapeMarkdown(fmt.Sprintf("Progress: %d%%. Type your answer below.", s.Progress())),
	)
}

func FormatInterviewComplete(s *interview.Session) string {
	return fmt.Sprintf("🎉 *Interview complete\\!*\n\n"+
		"Your %d answers for *%s* at %s were submitted\\.\n"+
		"You'll hear back through 🔔 Notifications\\.",
		len(s.Answers()),
		EscapeMarkdown(s.Job.Title),
		EscapeMarkdown(s.Job.Company),
	)
}

func notificationIcon(t notifications.Type) string {
	switch t {
	case notifications.TypeSuccess:
		return "✅"
	case notifications.TypeWarning:
		return "⚠️"
	case notifications.TypeInfo:
		return "ℹ️"
	case notifications.TypeInterview:
		return "📅"
	case notifications.TypeMatch:
		return "📈"
	case notifications.TypeAchievement:
		return "🏆"
	case notifications.TypeReminder:
		return "⏰"
	}
	return "🔔"
}

func FormatNotifications(list []notifications.Notification, unread int, filter, sortBy string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*🔔 Notifications* \\(%d unread\\)\n", unread))
	sb.WriteString(EscapeMarkdown(fmt.Sprintf("Filter: %s · Sort: %s", filter, sortBy)) + "\n\n")

	if len(list) == 0 {
		sb.WriteString("_No notifications_")
		return sb.String()
	}

	for _, n := range list {
		title := EscapeMarkdown(n.Title)
		if !n.Read {
			title = "*" + title + "*"
		}
		priority := ""
		if n.Priority != "" {
			priority = " · " + string(n.Priority)
		}
		sb.WriteString(fmt.Sprintf("%s %d\\. %s\n%s\n_%s_\n\n",
			notificationIcon(n.Type),
			n.ID,
			title,
			EscapeMarkdown(TruncateString(n.Message, 160)),
			EscapeMarkdown(FormatAge(now.Sub(n.CreatedAt))+priority),
		))
	}

	return sb.String()
}

func FormatApplications(apps []models.Application) string {
	var sb strings.Builder
	sb.WriteString("*📨 Your applications*\n\n")

	if len(apps) == 0 {
		sb.WriteString("_You haven't applied anywhere yet_")
		return sb.String()
	}

	for _, a := range apps {
		sb.WriteString(fmt.Sprintf("*%s*\n", EscapeMarkdown(a.JobTitle)))
		sb.WriteString(fmt.Sprintf("🏢 %s · applied %s\n",
			EscapeMarkdown(a.Company),
			EscapeMarkdown(a.AppliedDate.Format("Jan 2, 2006")),
		))
		sb.WriteString(fmt.Sprintf("📌 %s · %s\n", EscapeMarkdown(a.Status), EscapeMarkdown(a.Stage)))
		sb.WriteString(EscapeMarkdown(fmt.Sprintf("%s %d%%", progressBar(a.Progress), a.Progress)) + "\n")
		if a.InterviewScore != nil {
			sb.WriteString(EscapeMarkdown(fmt.Sprintf("🎤 Interview score: %.1f/10", *a.InterviewScore)) + "\n")
		}
		if a.Feedback != nil {
			sb.WriteString("💬 _" + EscapeMarkdown(*a.Feedback) + "_\n")
		}
		sb.WriteString("➡️ " + EscapeMarkdown(a.NextStep) + "\n\n")
	}

	return sb.String()
}

func progressBar(percent int) string {
	const width = 10
	filled := percent * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

func FormatDashboard(s models.Session, candidates []models.Candidate) string {
	var sb strings.Builder
	sb.WriteString("*📊 Company dashboard*\n\n")
	sb.WriteString(fmt.Sprintf("🏢 %s · ✅ Verified\n\n", EscapeMarkdown(s.Email)))
	sb.WriteString("*Top candidates:*\n")

	for _, c := range candidates {
		sb.WriteString(fmt.Sprintf("\n*%s* · %s\n", EscapeMarkdown(c.Name), EscapeMarkdown(fmt.Sprintf("%d%% match", c.Match))))
		sb.WriteString(fmt.Sprintf("🛠 %s\n⭐ %s\n", EscapeMarkdown(c.Skills), EscapeMarkdown(c.Rating)))
	}

	return sb.String()
}

// ScoreBadge grades an overall interview score out of 10.
func ScoreBadge(score float64) string {
	switch {
	case score >= 8.5:
		return "Excellent"
	case score >= 7:
		return "Good"
	}
	return "Needs Improvement"
}

func scoreIcon(score float64) string {
	switch {
	case score >= 8.5:
		return "🟢"
	case score >= 7:
		return "🟡"
	}
	return "🔴"
}

func FormatFeedback(list []models.InterviewFeedback) string {
	var sb strings.Builder
	sb.WriteString("*🎤 Interview feedback*\n")

	if len(list) == 0 {
		sb.WriteString("\n_No completed interviews yet_")
		return sb.String()
	}
	sb.WriteString(EscapeMarkdown(fmt.Sprintf("%d interviews completed", len(list))) + "\n")

	for _, f := range list {
		sb.WriteString(fmt.Sprintf("\n*%s*\n", EscapeMarkdown(f.JobTitle)))
		sb.WriteString(fmt.Sprintf("🏢 %s · %s\n",
			EscapeMarkdown(f.Company),
			EscapeMarkdown(f.InterviewDate.Format("Jan 2, 2006")),
		))
		sb.WriteString(fmt.Sprintf("%s *%s* · %s\n",
			scoreIcon(f.OverallScore),
			EscapeMarkdown(fmt.Sprintf("%.1f/10", f.OverallScore)),
			EscapeMarkdown(ScoreBadge(f.OverallScore)),
		))

		for _, c := range f.Categories {
			sb.WriteString(fmt.Sprintf("• %s: %s\n  _%s_\n",
				EscapeMarkdown(c.Name),
				EscapeMarkdown(fmt.Sprintf("%d/10", c.Score)),
				EscapeMarkdown(c.Feedback),
			))
		}

		writeList(&sb, "✅ Strengths", f.Strengths)
		writeList(&sb, "📈 Areas for improvement", f.Improvements)
		writeList(&sb, "💡 Recommendations", f.Recommendations)
	}

	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("*" + EscapeMarkdown(title) + "*\n")
	for _, item := range items {
		sb.WriteString("  " + EscapeMarkdown("- "+item) + "\n")
	}
}

func FormatProfile(p profile.Profile) string {
	var sb strings.Builder
	sb.WriteString("*👤 Profile*\n\n")

	for _, f := range profile.Fields {
		sb.WriteString(fmt.Sprintf("*%s:* %s\n", EscapeMarkdown(profile.Label(f)), EscapeMarkdown(p.Value(f))))
	}
	if !p.UpdatedAt.IsZero() {
		sb.WriteString("\n_" + EscapeMarkdown("Updated "+p.UpdatedAt.Format("Jan 2, 2006 15:04")) + "_\n")
	}
	sb.WriteString("\nTap a field below to edit it\\.")

	return sb.String()
}

// FormatProfilePrompt asks for a new value of f, showing the current one.
func FormatProfilePrompt(p profile.Profile, f profile.Field) string {
	hint := ""
	if f == profile.FieldSkills {
		hint = " (comma separated)"
	}
	return fmt.Sprintf("✏️ Send your new %s%s.\n\nCurrent: %s", strings.ToLower(profile.Label(f)), hint, p.Value(f))
}

// FormatResume describes the stored upload, or how to send one when u is nil.
func FormatResume(u *resume.Upload, maxBytes int64) string {
	if u == nil {
		return "*📄 Resume*\n\n" +
			"You haven't uploaded a resume yet\\.\n" +
			"Send a PDF, DOC or DOCX file \\(up to " + EscapeMarkdown(FormatSize(maxBytes)) + "\\) to this chat\\."
	}
	return fmt.Sprintf("*📄 Resume*\n\n"+
		"📎 %s\n"+
		"🗂 %s · %s\n"+
		"📅 uploaded %s\n\n"+
		"Send another file to replace it\\.",
		EscapeMarkdown(u.Name),
		EscapeMarkdown(u.Kind()),
		EscapeMarkdown(FormatSize(u.Size)),
		EscapeMarkdown(u.UploadedAt.Format("Jan 2, 2006 15:04")),
	)
}

// FormatSize renders a byte count as "1.5 MB".
func FormatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

// EscapeMarkdown escapes special characters for Telegram MarkdownV2
func EscapeMarkdown(text string) string {
	// _ * [ ] ( ) ~ ` > # + - = | { } . !
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"(", "\\(",
		")", "\\)",
		"~", "\\~",
		"`", "\\`",
		">", "\\>",
		"#", "\\#",
		"+", "\\+",
		"-", "\\-",
		"=", "\\=",
		"|", "\\|",
		"{", "\\{",
		"}", "\\}",
		".", "\\.",
		"!", "\\!",
	)

	return replacer.Replace(text)
}

// TruncateString shortens s to at most maxLen runes.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
