package notifications_test

import (
	"reflect"
	"testing"
	"time"

	"internmatch-bot/internal/notifications"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func ids(ns []notifications.Notification) []int {
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.ID)
	}
	return out
}

func TestSeed(t *testing.T) {
	in := notifications.NewInbox(notifications.Seed(now))
	if in.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", in.Len())
	}
	if got := in.UnreadCount(); got != 3 {
		t.Errorf("UnreadCount() = %d, want 3", got)
	}
}

func TestList_Filters(t *testing.T) {
	in := notifications.NewInbox(notifications.Seed(now))
	cases := []struct {
		filter string
		want   []int
	}{
		{"all", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"unread", []int{1, 2, 3}},
		{"high", []int{1, 5}},
		{"success", []int{4, 7}},
		{"achievement", []int{3, 8}},
		{"warning", []int{}},
		{"bogus", []int{}},
	}
	for _, c := range cases {
		if got := ids(in.List(c.filter, "")); !reflect.DeepEqual(got, c.want) {
			t.Errorf("List(%q) = %v, want %v", c.filter, got, c.want)
		}
	}
}

func TestList_Sort(t *testing.T) {
	seed := notifications.Seed(now)
	// seed order is already newest first; reverse it to exercise the sort
	reversed := make([]notifications.Notification, 0, len(seed))
	for i := len(seed) - 1; i >= 0; i-- {
		reversed = append(reversed, seed[i])
	}
	in := notifications.NewInbox(reversed)

	if got, want := ids(in.List("all", "newest")), []int{1, 2, 3, 4, 5, 6, 7, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("newest = %v, want %v", got, want)
	}
	// stable within a priority: reversed inbox order is kept
	if got, want := ids(in.List("all", "priority")), []int{5, 1, 7, 4, 2, 8, 6, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("priority = %v, want %v", got, want)
	}
	if got, want := ids(in.List("all", "whatever")), []int{8, 7, 6, 5, 4, 3, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("unsorted = %v, want %v", got, want)
	}
}

func TestList_MissingPriorityRanksLow(t *testing.T) {
	in := notifications.NewInbox([]notifications.Notification{
		{ID: 1},
		{ID: 2, Priority: notifications.PriorityMedium},
		{ID: 3, Priority: notifications.PriorityLow},
	})
	if got, want := ids(in.List("all", "priority")), []int{2, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("priority = %v, want %v", got, want)
	}
}

func TestMarkReadAndDelete(t *testing.T) {
	in := notifications.NewInbox(notifications.Seed(now))

	if !in.MarkRead(2) {
		t.Error("MarkRead(2) = false")
	}
	if in.MarkRead(42) {
		t.Error("MarkRead(42) = true for unknown id")
	}
	if got := in.UnreadCount(); got != 2 {
		t.Errorf("UnreadCount() = %d, want 2", got)
	}

	if !in.Delete(1) {
		t.Error("Delete(1) = false")
	}
	if in.Delete(1) {
		t.Error("second Delete(1) = true")
	}
	if got := in.UnreadCount(); got != 1 {
		t.Errorf("UnreadCount() after delete = %d, want 1", got)
	}

	in.MarkAllRead()
	if got := in.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount() after MarkAllRead = %d, want 0", got)
	}
	if in.Len() != 7 {
		t.Errorf("Len() = %d, want 7", in.Len())
	}
}

func TestNewInbox_CopiesInput(t *testing.T) {
	seed := notifications.Seed(now)
	in := notifications.NewInbox(seed)
	in.MarkAllRead()
	if seed[0].Read {
		t.Error("MarkAllRead modified the caller's slice")
	}
}
