package interview_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"internmatch-bot/internal/interview"
	"internmatch-bot/internal/models"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

var job = models.JobRecord{ID: 3, Title: "Junior Product Analyst Intern", Company: "MegaRetail Corp"}

// ── Sequencing ───────────────────────────────────────────────────────────────

func TestSession_FullRun(t *testing.T) {
	s := interview.New(job)
	if s.Status != interview.StatusNotStarted || s.Progress() != 0 {
		t.Fatalf("new session = %s/%d%%, want NOT_STARTED/0%%", s.Status, s.Progress())
	}
	if s.Job.ID != 3 {
		t.Errorf("Job.ID = %d, want 3", s.Job.ID)
	}

	if err := s.Start(now); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	wantProgress := []int{0, 20, 40, 60, 80}
	for i := range interview.Questions {
		q, n, ok := s.Current()
		if !ok || n != i+1 || q != interview.Questions[i] {
			t.Fatalf("Current() = %q, %d, %v; want question %d", q, n, ok, i+1)
		}
		if got := s.Progress(); got != wantProgress[i] {
			t.Errorf("Progress() before answer %d = %d, want %d", i+1, got, wantProgress[i])
		}
		if err := s.Answer("  answer  ", now); err != nil {
			t.Fatalf("Answer(%d) error: %v", i+1, err)
		}
	}

	if s.Status != interview.StatusCompleted {
		t.Errorf("Status = %s, want COMPLETED", s.Status)
	}
	if s.Progress() != 100 {
		t.Errorf("Progress() = %d, want 100", s.Progress())
	}
	if _, _, ok := s.Current(); ok {
		t.Error("Current() ok = true after completion")
	}
	if !s.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", s.CompletedAt, now)
	}

	answers := s.Answers()
	if len(answers) != len(interview.Questions) || answers[0] != "answer" {
		t.Errorf("Answers() = %q, want %d trimmed answers", answers, len(interview.Questions))
	}
}

// ── Refusals ─────────────────────────────────────────────────────────────────

func TestSession_Errors(t *testing.T) {
	s := interview.New(job)
	if err := s.Answer("hi", now); !errors.Is(err, interview.ErrNotStarted) {
		t.Errorf("Answer before Start = %v, want ErrNotStarted", err)
	}

	_ = s.Start(now)
	if err := s.Answer("   ", now); !errors.Is(err, interview.ErrEmptyAnswer) {
		t.Errorf("Answer(blank) = %v, want ErrEmptyAnswer", err)
	}
	if _, n, _ := s.Current(); n != 1 {
		t.Errorf("empty answer advanced to question %d", n)
	}

	for range interview.Questions {
		_ = s.Answer("ok", now)
	}
	if err := s.Answer("extra", now); !errors.Is(err, interview.ErrCompleted) {
		t.Errorf("Answer after completion = %v, want ErrCompleted", err)
	}
	if err := s.Start(now); !errors.Is(err, interview.ErrCompleted) {
		t.Errorf("Start after completion = %v, want ErrCompleted", err)
	}
}

func TestSession_RestartDiscardsAnswers(t *testing.T) {
	s := interview.New(job)
	_ = s.Start(now)
	_ = s.Answer("first", now)
	_ = s.Answer("second", now)

	if err := s.Start(now.Add(time.Minute)); err != nil {
		t.Fatalf("restart error: %v", err)
	}
	if got := s.Answers(); len(got) != 0 {
		t.Errorf("Answers() after restart = %q, want none", got)
	}
	if _, n, _ := s.Current(); n != 1 {
		t.Errorf("restart at question %d, want 1", n)
	}
}

func TestSession_AnswersIsCopy(t *testing.T) {
	s := interview.New(job)
	_ = s.Start(now)
	_ = s.Answer("mine", now)

	got := s.Answers()
	got[0] = "changed"
	if want := []string{"mine"}; !reflect.DeepEqual(s.Answers(), want) {
		t.Errorf("Answers() = %q, want %q", s.Answers(), want)
	}
}
