package notifications

import (
	"slices"
	"time"
)

type Type string

const (
	TypeSuccess     Type = "success"
	TypeWarning     Type = "warning"
	TypeInfo        Type = "info"
	TypeDefault     Type = "default"
	TypeInterview   Type = "interview"
	TypeMatch       Type = "match"
	TypeAchievement Type = "achievement"
	TypeReminder    Type = "reminder"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities high > medium > low. An unset priority ranks as low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	}
	return 1
}

// List filters.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterHigh   = "high"
)

// List orders.
const (
	SortNewest   = "newest"
	SortPriority = "priority"
)

type Notification struct {
	ID        int       `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
	Priority  Priority  `json:"priority,omitempty"`
}

// Inbox is one user's notification list. Not safe for concurrent use.
type Inbox struct {
	items []Notification
}

func NewInbox(items []Notification) *Inbox {
	return &Inbox{items: slices.Clone(items)}
}

// MarkRead reports whether a notification with id was found.
func (in *Inbox) MarkRead(id int) bool {
	for i := range in.items {
		if in.items[i].ID == id {
			in.items[i].Read = true
			return true
		}
	}
	return false
}

func (in *Inbox) MarkAllRead() {
	for i := range in.items {
		in.items[i].Read = true
	}
}

// Delete reports whether a notification with id was removed.
func (in *Inbox) Delete(id int) bool {
	before := len(in.items)
	in.items = slices.DeleteFunc(in.items, func(n Notification) bool { return n.ID == id })
	return len(in.items) != before
}

func (in *Inbox) UnreadCount() int {
	count := 0
	for _, n := range in.items {
		if !n.Read {
			count++
		}
	}
	return count
}

func (in *Inbox) Len() int { return len(in.items) }

// List returns the notifications passing filter, ordered by sortBy. filter is
// all, unread, high or a notification type; sortBy is newest or priority,
// anything else keeps inbox order.
func (in *Inbox) List(filter, sortBy string) []Notification {
	out := make([]Notification, 0, len(in.items))
	for _, n := range in.items {
		if matches(n, filter) {
			out = append(out, n)
		}
	}

	switch sortBy {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b Notification) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortPriority:
		slices.SortStableFunc(out, func(a, b Notification) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	}
	return out
}

func matches(n Notification, filter string) bool {
	switch filter {
	case FilterAll:
		return true
	case FilterUnread:
		return !n.Read
	case FilterHigh:
		return n.Priority == PriorityHigh
	}
	return string(n.Type) == filter
}
