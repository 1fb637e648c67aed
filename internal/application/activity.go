package application

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
)

// ActivityTracker records the last interaction time per user. It is safe for
// concurrent use by interaction handlers and the refresh loop.
type ActivityTracker struct {
	mu    sync.Mutex
	clock ports.Clock
	seen  map[domain.UserID]time.Time
}

func NewActivityTracker(clock ports.Clock) *ActivityTracker {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ActivityTracker{
		clock: clock,
		seen:  make(map[domain.UserID]time.Time),
	}
}

func (t *ActivityTracker) Touch(userID domain.UserID) {
	if userID == "" {
		return
	}

	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[userID] = now
}

// Active returns users whose last interaction is within window of now,
// sorted by user id.
func (t *ActivityTracker) Active(window time.Duration) []domain.UserID {
	cutoff := t.clock.Now().Add(-window)

	t.mu.Lock()
	active := make([]domain.UserID, 0, len(t.seen))
	for userID, at := range t.seen {
		if !at.Before(cutoff) {
			active = append(active, userID)
		}
	}
	t.mu.Unlock()

	sort.Slice(active, func(i, j int) bool { return active[i] < active[j] })
	return active
}

// Prune drops users idle for longer than retention and returns how many were
// removed.
func (t *ActivityTracker) Prune(retention time.Duration) int {
	cutoff := t.clock.Now().Add(-retention)

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for userID, at := range t.seen {
		if at.Before(cutoff) {
			delete(t.seen, userID)
			removed++
		}
	}

	return removed
}

func (t *ActivityTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}
