package catalog_test

import (
	"reflect"
	"testing"
	"time"

	"internmatch-bot/internal/catalog"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	c := catalog.Default(now)
	if len(c) != 8 {
		t.Fatalf("len(Default()) = %d, want 8", len(c))
	}
	for i, job := range c {
		if job.ID != i+1 {
			t.Errorf("job %d has ID %d, want sequential ids", i, job.ID)
		}
		if job.PostedDate.After(now) {
			t.Errorf("job %d posted %v, after now", job.ID, job.PostedDate)
		}
		if len(job.Skills) == 0 {
			t.Errorf("job %d has no skills", job.ID)
		}
	}
}

func TestSkills(t *testing.T) {
	got := catalog.Skills(catalog.Default(now))

	seen := map[string]bool{}
	for i, s := range got {
		if seen[s] {
			t.Errorf("Skills() contains duplicate %q", s)
		}
		seen[s] = true
		if i > 0 && got[i-1] > s {
			t.Errorf("Skills() not sorted at %d: %q > %q", i, got[i-1], s)
		}
	}
	for _, want := range []string{"SQL", "Figma", "Data Analysis", "Agile"} {
		if !seen[want] {
			t.Errorf("Skills() missing %q", want)
		}
	}
}

func TestLocations(t *testing.T) {
	want := []string{
		"Austin, TX",
		"Boston, MA",
		"Chicago, IL",
		"New York, NY",
		"Remote",
		"San Francisco, CA",
		"Seattle, WA",
	}
	if got := catalog.Locations(catalog.Default(now)); !reflect.DeepEqual(got, want) {
		t.Errorf("Locations() = %v, want %v", got, want)
	}
}

func TestFind(t *testing.T) {
	c := catalog.Default(now)
	job, ok := catalog.Find(c, 5)
	if !ok || job.Title != "Senior Product Intern" {
		t.Errorf("Find(5) = %q, %v; want Senior Product Intern", job.Title, ok)
	}
	if _, ok := catalog.Find(c, 99); ok {
		t.Error("Find(99) ok = true, want false")
	}
}

func TestDashboard(t *testing.T) {
	apps := catalog.Applications()
	if len(apps) != 4 {
		t.Fatalf("len(Applications()) = %d, want 4", len(apps))
	}
	if apps[2].InterviewScore != nil || apps[2].Feedback != nil {
		t.Errorf("application 3 should have no score or feedback yet")
	}
	if got := *apps[1].InterviewScore; got != 9.2 {
		t.Errorf("application 2 score = %v, want 9.2", got)
	}

	if got := len(catalog.Candidates()); got != 3 {
		t.Errorf("len(Candidates()) = %d, want 3", got)
	}
}

func TestFeedback(t *testing.T) {
	list := catalog.Feedback()
	if len(list) != 3 {
		t.Fatalf("len(Feedback()) = %d, want 3", len(list))
	}
	for _, f := range list {
		if len(f.Categories) != 4 || len(f.Strengths) == 0 || len(f.Recommendations) == 0 {
			t.Errorf("feedback %d incomplete: %+v", f.ID, f)
		}
		for _, c := range f.Categories {
			if c.Score < 0 || c.Score > 10 {
				t.Errorf("feedback %d category %q score %d out of range", f.ID, c.Name, c.Score)
			}
		}
	}
}
