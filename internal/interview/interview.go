// Package interview runs the mock interview a student takes after tapping
// "Apply" on a job.
//
// Status graph:
//
//	NOT_STARTED ──► IN_PROGRESS ──► COMPLETED
//
// COMPLETED is terminal. Answers are captured as given; there is no scoring.
package interview

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"internmatch-bot/internal/models"
)

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

var (
	ErrNotStarted  = errors.New("interview not started")
	ErrCompleted   = errors.New("interview already completed")
	ErrEmptyAnswer = errors.New("answer is empty")
)

// Questions is the fixed question sequence, asked in order.
var Questions = []string{
	"Tell me about yourself and why you're interested in this Product Management internship.",
	"How would you prioritize features for a mobile app with limited development resources?",
	"Describe a time when you had to analyze data to make a decision. Walk me through your process.",
	"If you were launching a new product feature, how would you measure its success?",
	"How would you handle conflicting feedback from different stakeholders about a product direction?",
}

type Session struct {
	ID          uuid.UUID
	Job         models.JobRecord
	Status      Status
	StartedAt   time.Time
	CompletedAt time.Time

	// step is the 1-based number of the current question, 0 before Start.
	step    int
	answers []string
}

// New prepares an interview for job without starting it.
func New(job models.JobRecord) *Session {
	return &Session{
		ID:     uuid.New(),
		Job:    job,
		Status: StatusNotStarted,
	}
}

// Start discards any answers and moves to the first question.
func (s *Session) Start(now time.Time) error {
	if s.Status == StatusCompleted {
		return ErrCompleted
	}
	s.Status = StatusInProgress
	s.StartedAt = now
	s.step = 1
	s.answers = s.answers[:0]
	return nil
}

// Answer records an answer to the current question and advances. Answering
// the last question completes the interview.
func (s *Session) Answer(text string, now time.Time) error {
	switch s.Status {
	case StatusNotStarted:
		return ErrNotStarted
	case StatusCompleted:
		return ErrCompleted
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAnswer
	}

	s.answers = append(s.answers, text)
	if s.step == len(Questions) {
		s.Status = StatusCompleted
		s.CompletedAt = now
		return nil
	}
	s.step++
	return nil
}

// Current returns the question being asked and its 1-based number. ok is
// false unless the interview is in progress.
func (s *Session) Current() (question string, number int, ok bool) {
	if s.Status != StatusInProgress {
		return "", 0, false
	}
	return Questions[s.step-1], s.step, true
}

// Progress is the percentage of questions answered.
func (s *Session) Progress() int {
	switch s.Status {
	case StatusNotStarted:
		return 0
	case StatusCompleted:
		return 100
	}
	return (s.step - 1) * 100 / len(Questions)
}

func (s *Session) Answers() []string {
	return slices.Clone(s.answers)
}
