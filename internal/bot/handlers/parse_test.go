package handlers

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"internmatch-bot/internal/catalog"
	"internmatch-bot/internal/config"
	"internmatch-bot/internal/models"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/search"
	"internmatch-bot/internal/view"
)

var testNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

// ── ParseRange ───────────────────────────────────────────────────────────────

func TestParseRange(t *testing.T) {
	def := search.DefaultSalaryRange
	cases := []struct {
		in   string
		want search.Range
	}{
		{"3000-4500", search.Range{Min: 3000, Max: 4500}},
		{" 3000 - 4500 ", search.Range{Min: 3000, Max: 4500}},
		{"$3,000 - $4,500", search.Range{Min: 3000, Max: 4500}},
		{"3000–4500", search.Range{Min: 3000, Max: 4500}},
		{"4000", search.Range{Min: 4000, Max: 4000}},
		{"90%-100%", search.Range{Min: 90, Max: 100}},
		{"any", def},
		{"ANY", def},
		{"0-0", search.Range{Min: 0, Max: 0}},
	}
	for _, c := range cases {
		got, err := ParseRange(c.in, def)
		if err != nil {
			t.Errorf("ParseRange(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseRange_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "5000-3000", "-100", "10-", "1-2-3", "3k"} {
		if _, err := ParseRange(in, search.DefaultSalaryRange); !errors.Is(err, ErrBadRange) {
			t.Errorf("ParseRange(%q) err = %v, want ErrBadRange", in, err)
		}
	}
}

func TestParseSearchTerm(t *testing.T) {
	cases := map[string]string{
		"  Product  ":  "Product",
		"none":         "",
		"None":         "",
		"-":            "",
		"data analyst": "data analyst",
	}
	for in, want := range cases {
		if got := ParseSearchTerm(in); got != want {
			t.Errorf("ParseSearchTerm(%q) = %q, want %q", in, got, want)
		}
	}
}

// ── callbacks ────────────────────────────────────────────────────────────────

func TestParseCallback(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"\ffilter_opt:work_mode:remote", []string{"filter_opt", "work_mode", "remote"}},
		{"jobs_page:2", []string{"jobs_page", "2"}},
		{"\fnotif_all_read", []string{"notif_all_read"}},
		{"", []string{""}},
	}
	for _, c := range cases {
		if got := parseCallback(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseCallback(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseIntArg(t *testing.T) {
	parts := []string{"job_details", "5", "x"}
	if n, ok := parseIntArg(parts, 1); !ok || n != 5 {
		t.Errorf("parseIntArg(1) = %d, %v", n, ok)
	}
	if _, ok := parseIntArg(parts, 2); ok {
		t.Error("parseIntArg accepted a non-number")
	}
	if _, ok := parseIntArg(parts, 3); ok {
		t.Error("parseIntArg accepted a missing part")
	}
}

func TestEmailState(t *testing.T) {
	s := emailState(models.UserCompany)
	if s != "awaiting_email:company" {
		t.Errorf("emailState = %q", s)
	}
	if !strings.HasPrefix(s, StateAwaitingEmail+":") {
		t.Errorf("emailState %q lacks prefix", s)
	}
}

func TestOptionValue(t *testing.T) {
	s := search.Default()
	s.WorkMode = "remote"
	s.PostedWithin = "week"

	if got := optionValue(s, search.FieldWorkMode); got != "remote" {
		t.Errorf("work mode = %q", got)
	}
	if got := optionValue(s, search.FieldPostedWithin); got != "week" {
		t.Errorf("posted within = %q", got)
	}
	if got := optionValue(s, search.FieldJobType); got != models.OptionAll {
		t.Errorf("job type = %q", got)
	}
	if got := optionValue(s, search.FieldSalaryRange); got != "" {
		t.Errorf("range field option = %q, want empty", got)
	}
}

// ── job pages ────────────────────────────────────────────────────────────────

func testContext() *Context {
	jobs := catalog.Default(testNow)
	return &Context{
		Catalog:   jobs,
		Locations: catalog.Locations(jobs),
		Skills:    catalog.Skills(jobs),
		Views:     view.NewRegistry(30*time.Minute, notifications.Seed, zap.NewNop()),
		Config:    &config.Config{PageSize: 5},
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return testNow },
	}
}

func TestJobsPage(t *testing.T) {
	ctx := testContext()
	v := ctx.Views.Mount(1, testNow)

	text, markup := jobsPage(ctx, v, 0)
	if !strings.Contains(text, "Showing 8 of 8 jobs") {
		t.Errorf("first page summary:\n%s", text)
	}
	if len(markup.InlineKeyboard) != 2 || len(markup.InlineKeyboard[0]) != 5 {
		t.Errorf("first page keyboard = %+v", markup.InlineKeyboard)
	}

	_, markup = jobsPage(ctx, v, 7)
	if got := len(markup.InlineKeyboard[0]); got != 3 {
		t.Errorf("clamped last page lists %d jobs, want 3", got)
	}
	var page int
	v.Do(func(s *view.State) { page = s.Page })
	if page != 1 {
		t.Errorf("stored page = %d, want 1", page)
	}
}

func TestJobsPage_Filtered(t *testing.T) {
	ctx := testContext()
	v := ctx.Views.Mount(1, testNow)
	v.Do(func(s *view.State) { s.Filters.Set(search.WorkMode("remote")) })

	text, markup := jobsPage(ctx, v, 0)
	if !strings.Contains(text, "Showing 2 of 8 jobs") {
		t.Errorf("remote summary:\n%s", text)
	}
	if len(markup.InlineKeyboard) != 1 {
		t.Errorf("single page has nav row: %+v", markup.InlineKeyboard)
	}
}

func TestSummarize(t *testing.T) {
	ctx := testContext()
	s := search.Default()
	s.Skills = []string{"SQL"}

	got := ctx.summarize(s)
	if got.Total != 8 || got.Shown != 2 {
		t.Errorf("summarize(SQL) = %+v", got)
	}
}
