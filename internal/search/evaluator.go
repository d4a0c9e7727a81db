package search

import (
	"fmt"
	"strings"
	"time"

	"internmatch-bot/internal/models"
)

const day = 24 * time.Hour

// predicate reports whether job satisfies one filter of s. Cheap checks
// come first.
type predicate func(job *models.JobRecord, s *FilterState, now time.Time) bool

var predicates = []predicate{
	matchSalary,
	matchMatchScore,
	matchCompanySize,
	matchExperience,
	matchWorkMode,
	matchJobType,
	matchDuration,
	matchPostedWithin,
	matchLocation,
	matchSkills,
	matchSearchTerm,
}

// Filter returns the records of catalog satisfying every filter of state,
// in catalog order. It never modifies catalog.
func Filter(catalog []models.JobRecord, state FilterState, now time.Time) []models.JobRecord {
	result := make([]models.JobRecord, 0, len(catalog))
	for i := range catalog {
		if Matches(&catalog[i], state, now) {
			result = append(result, catalog[i])
		}
	}
	return result
}

func Matches(job *models.JobRecord, state FilterState, now time.Time) bool {
	for _, p := range predicates {
		if !p(job, &state, now) {
			return false
		}
	}
	return true
}

func matchSearchTerm(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	if s.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(s.SearchTerm)
	if strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

func matchJobType(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	switch s.JobType {
	case models.OptionAll:
		return true
	case "full-time":
		return strings.Contains(job.Type, "Full-time")
	case "part-time":
		return strings.Contains(job.Type, "Part-time")
	}
	return false
}

func matchLocation(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	switch s.Location {
	case models.OptionAll:
		return true
	case "":
		return false
	}
	if s.Location == "remote" && job.IsRemote {
		return true
	}
	if job.Location == "" {
		return false
	}
	return strings.Contains(strings.ToLower(job.Location), strings.ToLower(s.Location))
}

func matchSalary(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	return s.SalaryRange.Contains(job.Salary)
}

func matchMatchScore(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	return s.MatchScoreRange.Contains(job.Match)
}

func matchCompanySize(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	return matchBucket(s.CompanySize, string(job.CompanySize), models.CompanySizeOptions)
}

func matchExperience(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	return matchBucket(s.ExperienceLevel, string(job.ExperienceLevel), models.ExperienceOptions)
}

func matchWorkMode(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	return matchBucket(s.WorkMode, string(job.WorkMode), models.WorkModeOptions)
}

// matchBucket is exact bucket equality, failing closed for selections
// outside options.
func matchBucket(selected, value string, options []models.Option) bool {
	if selected == models.OptionAll {
		return true
	}
	if !models.IsValidOption(options, selected) {
		return false
	}
	return value == selected
}

func matchDuration(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	switch s.Duration {
	case models.OptionAll:
		return true
	case "short":
		return strings.Contains(job.Duration, "3 months")
	case "medium":
		return strings.Contains(job.Duration, "4 months")
	case "long":
		return strings.Contains(job.Duration, "5 months") || strings.Contains(job.Duration, "6 months")
	}
	return false
}

func matchPostedWithin(job *models.JobRecord, s *FilterState, now time.Time) bool {
	if s.PostedWithin == models.OptionAll {
		return true
	}
	if job.PostedDate.IsZero() {
		return false
	}
	switch s.PostedWithin {
	case "today":
		return sameDay(job.PostedDate.In(now.Location()), now)
	case "week":
		return now.Sub(job.PostedDate) <= 7*day
	case "month":
		return now.Sub(job.PostedDate) <= 30*day
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// matchSkills is OR semantics: at least one selected skill is present.
func matchSkills(job *models.JobRecord, s *FilterState, _ time.Time) bool {
	if len(s.Skills) == 0 {
		return true
	}
	for _, skill := range s.Skills {
		if job.HasSkill(skill) {
			return true
		}
	}
	return false
}

// Summary is the result bookkeeping shown above the job list.
type Summary struct {
	Shown         int
	Total         int
	ActiveFilters int
}

func Summarize(total, shown int, state FilterState) Summary {
	return Summary{
		Shown:         shown,
		Total:         total,
		ActiveFilters: len(state.ActiveFields()),
	}
}

func (s Summary) String() string {
	text := fmt.Sprintf("Showing %d of %d jobs", s.Shown, s.Total)
	switch {
	case s.ActiveFilters == 1:
		text += " (1 filter applied)"
	case s.ActiveFilters > 1:
		text += fmt.Sprintf(" (%d filters applied)", s.ActiveFilters)
	}
	return text
}
