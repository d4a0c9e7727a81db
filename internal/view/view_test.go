package view_test

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/search"
	"internmatch-bot/internal/view"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func newRegistry() *view.Registry {
	return view.NewRegistry(30*time.Minute, notifications.Seed, zap.NewNop())
}

func TestMount_ReturnsSameView(t *testing.T) {
	r := newRegistry()
	a := r.Mount(1, now)
	b := r.Mount(1, now.Add(time.Minute))
	if a != b {
		t.Error("Mount() twice returned different views")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	a.Do(func(s *view.State) {
		if s.Filters.ActiveCount() != 0 {
			t.Errorf("fresh view has %d active filters", s.Filters.ActiveCount())
		}
		if s.Inbox.Len() != 8 {
			t.Errorf("fresh inbox has %d notifications, want 8", s.Inbox.Len())
		}
		if s.Interview != nil || s.Page != 0 {
			t.Errorf("fresh view state = %+v", s)
		}
	})
}

func TestUnmount_DiscardsState(t *testing.T) {
	r := newRegistry()
	r.Mount(1, now).Do(func(s *view.State) {
		s.Filters.Set(search.Skills("SQL"))
	})

	if !r.Unmount(1) {
		t.Fatal("Unmount(1) = false")
	}
	if r.Unmount(1) {
		t.Error("second Unmount(1) = true")
	}
	if _, ok := r.Lookup(1); ok {
		t.Error("Lookup(1) found an unmounted view")
	}

	r.Mount(1, now).Do(func(s *view.State) {
		if s.Filters.ActiveCount() != 0 {
			t.Errorf("remounted view kept %d active filters", s.Filters.ActiveCount())
		}
	})
}

func TestSweep(t *testing.T) {
	r := newRegistry()
	r.Mount(1, now)
	r.Mount(2, now.Add(20*time.Minute))
	r.Mount(3, now)
	r.Mount(3, now.Add(25*time.Minute))

	if got := r.Sweep(now.Add(30 * time.Minute)); got != 0 {
		t.Errorf("Sweep at exactly the timeout removed %d", got)
	}
	if got := r.Sweep(now.Add(31 * time.Minute)); got != 1 {
		t.Errorf("Sweep() removed %d, want 1", got)
	}
	if _, ok := r.Lookup(1); ok {
		t.Error("idle view 1 survived the sweep")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestView_DoSerializesWriters(t *testing.T) {
	r := newRegistry()
	v := r.Mount(1, now)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Do(func(s *view.State) { s.Page++ })
		}()
	}
	wg.Wait()

	v.Do(func(s *view.State) {
		if s.Page != 50 {
			t.Errorf("Page = %d, want 50", s.Page)
		}
	})
}

func TestMount_NotificationDefaults(t *testing.T) {
	r := view.NewRegistry(time.Minute, notifications.Seed, zap.NewNop())
	v := r.Mount(3, time.Now())

	v.Do(func(s *view.State) {
		if s.NotifFilter != notifications.FilterAll || s.NotifSort != notifications.SortNewest {
			t.Errorf("notification view = %q/%q, want all/newest", s.NotifFilter, s.NotifSort)
		}
	})
}
