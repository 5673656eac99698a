package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo     Level = "info"
	LevelSuccess  Level = "success"
	LevelError    Level = "error"
	LevelCritical Level = "critical"
)

// Notification is one transient, dismissable user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Sink receives every pushed notification.
type Sink interface {
	Notify(n Notification) error
}

// Queue is a bounded FIFO of notifications with auto-dismiss. When full,
// pushing evicts the oldest entry. Expired entries are dropped on read.
type Queue struct {
	mu    sync.Mutex
	items []Notification
	size  int
	ttl   time.Duration
	sinks []Sink
}

func NewQueue(size int, ttl time.Duration, sinks ...Sink) *Queue {
	return &Queue{
		size:  size,
		ttl:   ttl,
		sinks: sinks,
	}
}

// Push appends a notification, evicting the oldest when the queue is full,
// and fans it out to the registered sinks. Sink failures are logged and do
// not affect the queue.
func (q *Queue) Push(level Level, title, message string) Notification {
	now := time.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	}

	q.mu.Lock()
	if len(q.items) >= q.size {
		q.items = q.items[1:]
	}
	q.items = append(q.items, n)
	sinks := q.sinks
	q.mu.Unlock()

	for _, s := range sinks {
		if err := s.Notify(n); err != nil {
			slog.Error("notification sink failed", "id", n.ID, "error", err)
		}
	}

	return n
}

// Active returns the unexpired notifications in FIFO order and prunes the
// expired ones.
func (q *Queue) Active(now time.Time) []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	live := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			live = append(live, n)
		}
	}
	q.items = live

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Dismiss removes a notification by id, reporting whether it was present.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the current queue depth without pruning.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
