package models

import "time"

type CompanySize string

const (
	CompanyStartup CompanySize = "startup"
	CompanySmall   CompanySize = "small"
	CompanyMedium  CompanySize = "medium"
	CompanyLarge   CompanySize = "large"
)

type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

type WorkMode string

const (
	WorkRemote WorkMode = "remote"
	WorkOnsite WorkMode = "onsite"
	WorkHybrid WorkMode = "hybrid"
)

// JobRecord is one internship listing of the static catalog.
type JobRecord struct {
	ID              int             `db:"id"`
	Title           string          `db:"title"`
	Company         string          `db:"company"`
	Location        string          `db:"location"`
	Type            string          `db:"job_type"` // e.g. "Full-time Internship"
	Duration        string          `db:"duration"` // e.g. "3 months"
	Salary          int             `db:"salary"`   // monthly
	SalaryDisplay   string          `db:"salary_display"`
	Description     string          `db:"description"`
	Requirements    []string        `db:"-"`
	Skills          []string        `db:"-"`
	Posted          string          `db:"posted"`
	PostedDate      time.Time       `db:"posted_at"`
	Applicants      int             `db:"applicants"`
	Match           int             `db:"match_score"`
	CompanySize     CompanySize     `db:"company_size"`
	ExperienceLevel ExperienceLevel `db:"experience_level"`
	WorkMode        WorkMode        `db:"work_mode"`
	IsRemote        bool            `db:"is_remote"`
}

// HasSkill reports exact membership of skill in the job's skill tags.
func (j *JobRecord) HasSkill(skill string) bool {
	for _, s := range j.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Application is a student's submitted application as shown on the status page.
type Application struct {
	ID             int
	JobTitle       string
	Company        string
	AppliedDate    time.Time
	Status         string
	Stage          string
	Progress       int
	NextStep       string
	InterviewScore *float64
	Feedback       *string
}

// Candidate is a student profile listed on the company dashboard.
type Candidate struct {
	ID     int
	Name   string
	Skills string
	Rating string
	Match  int
}

// InterviewFeedback is the evaluation of one completed interview.
type InterviewFeedback struct {
	ID              int
	JobTitle        string
	Company         string
	InterviewDate   time.Time
	OverallScore    float64
	Categories      []FeedbackCategory
	Strengths       []string
	Improvements    []string
	Recommendations []string
}

// FeedbackCategory is a scored area of an interview, out of 10.
type FeedbackCategory struct {
	Name     string
	Score    int
	Feedback string
}
