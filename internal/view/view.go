// Package view keeps the mounted job-browsing state of each chat.
//
// A view lives from the first browsing action until logout or until it has
// been idle longer than the registry timeout.
package view

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"internmatch-bot/internal/interview"
	"internmatch-bot/internal/notifications"
	"internmatch-bot/internal/search"
)

// State is the mutable part of a view. Only touch it inside View.Do.
type State struct {
	Filters   *search.Store
	Inbox     *notifications.Inbox
	Interview *interview.Session
	Page      int

	NotifFilter string
	NotifSort   string
}

type View struct {
	UserID    int64
	MountedAt time.Time

	mu    sync.Mutex
	state State
	// lastSeen is guarded by the registry mutex.
	lastSeen time.Time
}

// Do runs fn with exclusive access to the view state.
func (v *View) Do(fn func(s *State)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(&v.state)
}

type Registry struct {
	mu     sync.Mutex
	views  map[int64]*View
	idle   time.Duration
	seed   func(now time.Time) []notifications.Notification
	logger *zap.Logger
}

// NewRegistry creates a registry whose views start with the inbox returned
// by seed.
func NewRegistry(idle time.Duration, seed func(now time.Time) []notifications.Notification, logger *zap.Logger) *Registry {
	return &Registry{
		views:  make(map[int64]*View),
		idle:   idle,
		seed:   seed,
		logger: logger,
	}
}

// Mount returns the view of userID, mounting a fresh one if needed, and
// marks it as seen at now.
func (r *Registry) Mount(userID int64, now time.Time) *View {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.views[userID]; ok {
		v.lastSeen = now
		return v
	}

	v := &View{
		UserID:    userID,
		MountedAt: now,
		lastSeen:  now,
		state: State{
			Filters: search.NewStore(),
			Inbox:   notifications.NewInbox(r.seed(now)),

			NotifFilter: notifications.FilterAll,
			NotifSort:   notifications.SortNewest,
		},
	}
	r.views[userID] = v

	r.logger.Debug("view mounted", zap.Int64("user_id", userID))
	return v
}

// Lookup returns the mounted view of userID without touching it.
func (r *Registry) Lookup(userID int64) (*View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[userID]
	return v, ok
}

// Unmount discards the view of userID and reports whether one was mounted.
func (r *Registry) Unmount(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[userID]; !ok {
		return false
	}
	delete(r.views, userID)

	r.logger.Debug("view unmounted", zap.Int64("user_id", userID))
	return true
}

// Sweep unmounts every view idle for longer than the registry timeout and
// returns how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, v := range r.views {
		if now.Sub(v.lastSeen) > r.idle {
			delete(r.views, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
