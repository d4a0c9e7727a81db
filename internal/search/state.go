// Package search holds the job filter state of a browsing view and the
// predicate evaluator that applies it to the catalog.
package search

import (
	"slices"

	"internmatch-bot/internal/models"
)

type Field string

const (
	FieldJobType         Field = "job_type"
	FieldLocation        Field = "location"
	FieldSalaryRange     Field = "salary_range"
	FieldCompanySize     Field = "company_size"
	FieldExperienceLevel Field = "experience_level"
	FieldWorkMode        Field = "work_mode"
	FieldDuration        Field = "duration"
	FieldMatchScoreRange Field = "match_score_range"
	FieldSkills          Field = "skills"
	FieldPostedWithin    Field = "posted_within"
	FieldSearchTerm      Field = "search_term"
)

// Fields lists every FilterState field in display order.
var Fields = []Field{
	FieldJobType,
	FieldLocation,
	FieldSalaryRange,
	FieldCompanySize,
	FieldExperienceLevel,
	FieldWorkMode,
	FieldDuration,
	FieldMatchScoreRange,
	FieldSkills,
	FieldPostedWithin,
	FieldSearchTerm,
}

// Range is an inclusive [Min, Max] bound. Min > Max matches nothing.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

var (
	DefaultSalaryRange     = Range{Min: 0, Max: 10000}
	DefaultMatchScoreRange = Range{Min: 0, Max: 100}
)

// FilterState is the full set of filter selections of one view.
type FilterState struct {
	JobType         string   `json:"job_type"`
	Location        string   `json:"location"`
	SalaryRange     Range    `json:"salary_range"`
	CompanySize     string   `json:"company_size"`
	ExperienceLevel string   `json:"experience_level"`
	WorkMode        string   `json:"work_mode"`
	Duration        string   `json:"duration"`
	MatchScoreRange Range    `json:"match_score_range"`
	Skills          []string `json:"skills"`
	PostedWithin    string   `json:"posted_within"`
	SearchTerm      string   `json:"search_term"`
}

// Default returns the state in which no field constrains the result.
func Default() FilterState {
	return FilterState{
		JobType:         models.OptionAll,
		Location:        models.OptionAll,
		SalaryRange:     DefaultSalaryRange,
		CompanySize:     models.OptionAll,
		ExperienceLevel: models.OptionAll,
		WorkMode:        models.OptionAll,
		Duration:        models.OptionAll,
		MatchScoreRange: DefaultMatchScoreRange,
		Skills:          []string{},
		PostedWithin:    models.OptionAll,
		SearchTerm:      "",
	}
}

func (s FilterState) clone() FilterState {
	s.Skills = slices.Clone(s.Skills)
	if s.Skills == nil {
		s.Skills = []string{}
	}
	return s
}

// IsActive reports whether field f deviates from its default.
func (s FilterState) IsActive(f Field) bool {
	switch f {
	case FieldJobType:
		return s.JobType != models.OptionAll
	case FieldLocation:
		return s.Location != models.OptionAll
	case FieldSalaryRange:
		return s.SalaryRange != DefaultSalaryRange
	case FieldCompanySize:
		return s.CompanySize != models.OptionAll
	case FieldExperienceLevel:
		return s.ExperienceLevel != models.OptionAll
	case FieldWorkMode:
		return s.WorkMode != models.OptionAll
	case FieldDuration:
		return s.Duration != models.OptionAll
	case FieldMatchScoreRange:
		return s.MatchScoreRange != DefaultMatchScoreRange
	case FieldSkills:
		return len(s.Skills) > 0
	case FieldPostedWithin:
		return s.PostedWithin != models.OptionAll
	case FieldSearchTerm:
		return s.SearchTerm != ""
	}
	return false
}

// ActiveFields returns the deviating fields in display order.
func (s FilterState) ActiveFields() []Field {
	var active []Field
	for _, f := range Fields {
		if s.IsActive(f) {
			active = append(active, f)
		}
	}
	return active
}

// Update replaces exactly one field of a FilterState. Build one with the
// per-field constructors below.
type Update struct {
	field Field
	apply func(*FilterState)
}

func (u Update) Field() Field { return u.field }

func JobType(v string) Update {
	return Update{FieldJobType, func(s *FilterState) { s.JobType = v }}
}

func Location(v string) Update {
	return Update{FieldLocation, func(s *FilterState) { s.Location = v }}
}

func SalaryRange(min, max int) Update {
	return Update{FieldSalaryRange, func(s *FilterState) { s.SalaryRange = Range{min, max} }}
}

func CompanySize(v string) Update {
	return Update{FieldCompanySize, func(s *FilterState) { s.CompanySize = v }}
}

func ExperienceLevel(v string) Update {
	return Update{FieldExperienceLevel, func(s *FilterState) { s.ExperienceLevel = v }}
}

func WorkMode(v string) Update {
	return Update{FieldWorkMode, func(s *FilterState) { s.WorkMode = v }}
}

func Duration(v string) Update {
	return Update{FieldDuration, func(s *FilterState) { s.Duration = v }}
}

func MatchScoreRange(min, max int) Update {
	return Update{FieldMatchScoreRange, func(s *FilterState) { s.MatchScoreRange = Range{min, max} }}
}

// Skills replaces the selected skill set. Duplicates are dropped, first
// occurrence order is kept.
func Skills(v ...string) Update {
	set := make([]string, 0, len(v))
	for _, skill := range v {
		if !slices.Contains(set, skill) {
			set = append(set, skill)
		}
	}
	return Update{FieldSkills, func(s *FilterState) { s.Skills = set }}
}

func PostedWithin(v string) Update {
	return Update{FieldPostedWithin, func(s *FilterState) { s.PostedWithin = v }}
}

func SearchTerm(v string) Update {
	return Update{FieldSearchTerm, func(s *FilterState) { s.SearchTerm = v }}
}

// Option maps an enum field and a raw selection to its Update. ok is false
// for range, skills and search fields, which carry no single option value.
func Option(f Field, value string) (u Update, ok bool) {
	switch f {
	case FieldJobType:
		return JobType(value), true
	case FieldLocation:
		return Location(value), true
	case FieldCompanySize:
		return CompanySize(value), true
	case FieldExperienceLevel:
		return ExperienceLevel(value), true
	case FieldWorkMode:
		return WorkMode(value), true
	case FieldDuration:
		return Duration(value), true
	case FieldPostedWithin:
		return PostedWithin(value), true
	}
	return Update{}, false
}

// Store owns the FilterState of one view. It is not safe for concurrent
// use; the owning view serializes access.
type Store struct {
	state FilterState
}

func NewStore() *Store {
	return &Store{state: Default()}
}

// Get returns a copy of the current state.
func (st *Store) Get() FilterState {
	return st.state.clone()
}

// Set applies u, leaving every other field unchanged. A zero Update is a no-op.
func (st *Store) Set(u Update) {
	if u.apply == nil {
		return
	}
	u.apply(&st.state)
}

// Clear resets every field, including the search term, to its default.
func (st *Store) Clear() {
	st.state = Default()
}

// ActiveCount is recomputed from the current state on every call.
func (st *Store) ActiveCount() int {
	return len(st.state.ActiveFields())
}

// ToggleSkill adds skill to the selection, or removes it if already present.
func (st *Store) ToggleSkill(skill string) {
	current := st.state.Skills
	if i := slices.Index(current, skill); i >= 0 {
		next := slices.Delete(slices.Clone(current), i, i+1)
		st.Set(Skills(next...))
		return
	}
	st.Set(Skills(append(slices.Clone(current), skill)...))
}
