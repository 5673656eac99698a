package alerts

import (
	"sync"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// Store owns the in-memory alert set. All reads return copies; the base
// list is only ever changed through Replace, MarkRead and Delete.
type Store struct {
	mu        sync.RWMutex
	items     []models.Alert
	lastToken uint64
}

func NewStore() *Store {
	return &Store{}
}

// NextToken hands out a commit token for an upcoming fetch. A response may
// only commit through Replace with the token it was issued; a response
// carrying an older token than the last committed one is discarded, so a
// slow fetch can't overwrite newer state.
func (s *Store) NextToken() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastToken++
	return s.lastToken
}

// Replace swaps the base list for items. It reports whether the commit was
// accepted; a stale token leaves the store untouched.
func (s *Store) Replace(items []models.Alert, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token < s.lastToken {
		return false
	}
	s.lastToken = token
	s.items = make([]models.Alert, len(items))
	copy(s.items, items)
	return true
}

// Snapshot returns a copy of the current base list.
func (s *Store) Snapshot() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Alert, len(s.items))
	copy(out, s.items)
	return out
}

// View derives the filtered list for the given criteria.
func (s *Store) View(c Criteria, now time.Time) []models.Alert {
	return Derive(s.Snapshot(), c, now)
}

// MarkRead sets the matching alert's status to read. It is a no-op when the
// id is absent or the alert is already read, and reports whether anything
// changed. Read alerts never move back to unread.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Status == models.AlertStatusRead {
				return false
			}
			s.items[i].Status = models.AlertStatusRead
			return true
		}
	}
	return false
}

// Delete removes the matching alert, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the size of the base list.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
