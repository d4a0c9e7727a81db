package utils_test

import (
	"slices"
	"testing"

	tele "gopkg.in/telebot.v3"

	"internmatch-bot/internal/bot/utils"
	"internmatch-bot/internal/catalog"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/search"
)

func uniques(m *tele.ReplyMarkup) [][]string {
	var out [][]string
	for _, row := range m.InlineKeyboard {
		var r []string
		for _, b := range row {
			r = append(r, b.Unique)
		}
		out = append(out, r)
	}
	return out
}

func TestFieldOptions(t *testing.T) {
	enums := []search.Field{
		search.FieldJobType, search.FieldCompanySize, search.FieldExperienceLevel,
		search.FieldWorkMode, search.FieldDuration, search.FieldPostedWithin,
	}
	for _, f := range enums {
		opts := utils.FieldOptions(f)
		if len(opts) == 0 || opts[0].Value != models.OptionAll {
			t.Errorf("FieldOptions(%s) = %v, want options starting with all", f, opts)
		}
	}
	if opts := utils.FieldOptions(search.FieldSkills); opts != nil {
		t.Errorf("FieldOptions(skills) = %v, want nil", opts)
	}
}

func TestOptionsKeyboard(t *testing.T) {
	m := utils.OptionsKeyboard(search.FieldWorkMode, models.WorkModeOptions, "remote")
	if len(m.InlineKeyboard) != len(models.WorkModeOptions) {
		t.Fatalf("rows = %d, want %d", len(m.InlineKeyboard), len(models.WorkModeOptions))
	}
	btn := m.InlineKeyboard[1][0]
	if btn.Unique != "filter_opt:work_mode:remote" || btn.Text != "✅ Remote" {
		t.Errorf("remote button = %q / %q", btn.Unique, btn.Text)
	}
	if m.InlineKeyboard[0][0].Text != "All Modes" {
		t.Errorf("unselected button marked: %q", m.InlineKeyboard[0][0].Text)
	}
}

func TestLocationsKeyboard(t *testing.T) {
	locs := catalog.Locations(catalog.Default(now))
	m := utils.LocationsKeyboard(locs, "Boston, MA")

	got := uniques(m)
	if got[0][0] != "filter_opt:location:all" || got[0][1] != "filter_opt:location:remote" {
		t.Errorf("first row = %v", got[0])
	}
	if len(got) != len(locs)+1 {
		t.Errorf("rows = %d, want %d", len(got), len(locs)+1)
	}
	if got[2][0] != "loc:1" || m.InlineKeyboard[2][0].Text != "✅ Boston, MA" {
		t.Errorf("Boston row = %v %q", got[2], m.InlineKeyboard[2][0].Text)
	}
}

func TestSkillsKeyboard(t *testing.T) {
	m := utils.SkillsKeyboard([]string{"Agile", "Excel", "SQL"}, []string{"SQL"})
	got := uniques(m)
	if len(got) != 2 || len(got[0]) != 2 || len(got[1]) != 1 {
		t.Fatalf("layout = %v, want 2+1", got)
	}
	if got[1][0] != "skill:2" || m.InlineKeyboard[1][0].Text != "✅ SQL" {
		t.Errorf("SQL button = %v %q", got[1][0], m.InlineKeyboard[1][0].Text)
	}
}

func TestJobsPageKeyboard(t *testing.T) {
	c := catalog.Default(now)

	m := utils.JobsPageKeyboard(c[5:8], 5, 1, 2)
	got := uniques(m)
	if len(got) != 2 {
		t.Fatalf("rows = %v", got)
	}
	if got[0][0] != "job_details:6" || got[0][2] != "job_details:8" {
		t.Errorf("details row = %v", got[0])
	}
	if len(got[1]) != 2 || got[1][0] != "jobs_page:0" {
		t.Errorf("last page nav = %v, want prev and current only", got[1])
	}

	single := utils.JobsPageKeyboard(c[:2], 0, 0, 1)
	if len(single.InlineKeyboard) != 1 {
		t.Errorf("single page has nav row: %v", uniques(single))
	}
}

func TestNotificationsKeyboard(t *testing.T) {
	in := notifications.NewInbox(notifications.Seed(now))
	list := in.List("all", "newest")
	m := utils.NotificationsKeyboard(list[:2], "all", "newest")

	got := uniques(m)
	if got[0][0] != "notif_read:1" || got[0][1] != "notif_del:1" {
		t.Errorf("first row = %v", got[0])
	}
	if got[len(got)-1][0] != "notif_all_read" {
		t.Errorf("last row = %v", got[len(got)-1])
	}

	want := [][]string{
		{"notif_filter:all", "notif_filter:unread", "notif_filter:high"},
		{"notif_filter:interview", "notif_filter:match", "notif_filter:achievement"},
	}
	for i, row := range want {
		if !slices.Equal(got[2+i], row) {
			t.Errorf("filter row %d = %v, want %v", i, got[2+i], row)
		}
	}
}

func TestNotificationsKeyboard_MarksTypeFilter(t *testing.T) {
	m := utils.NotificationsKeyboard(nil, "match", "newest")
	if btn := m.InlineKeyboard[1][1]; btn.Text != "✅ match" {
		t.Errorf("match filter button = %q, want marked", btn.Text)
	}
	if btn := m.InlineKeyboard[0][0]; btn.Text != "all" {
		t.Errorf("all filter button = %q, want unmarked", btn.Text)
	}
}

func TestProfileKeyboard(t *testing.T) {
	got := uniques(utils.ProfileKeyboard())
	if len(got) != 4 {
		t.Fatalf("rows = %v, want 4 rows of 2", got)
	}
	if got[0][0] != "profile_edit:full_name" || got[3][1] != "profile_edit:experience" {
		t.Errorf("layout = %v", got)
	}
}

func TestResumeKeyboard(t *testing.T) {
	if got := uniques(utils.ResumeKeyboard()); len(got) != 1 || got[0][0] != "resume_download" {
		t.Errorf("resume keyboard = %v", got)
	}
}

func TestMainMenuKeyboard(t *testing.T) {
	var labels []string
	for _, row := range utils.MainMenuKeyboard().ReplyKeyboard {
		for _, b := range row {
			labels = append(labels, b.Text)
		}
	}
	for _, want := range []string{utils.BtnProfile, utils.BtnFeedback, utils.BtnResume} {
		if !slices.Contains(labels, want) {
			t.Errorf("main menu %v missing %q", labels, want)
		}
	}
}
