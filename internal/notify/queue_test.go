package notify

import (
	"errors"
	"testing"
	"time"
)

func TestQueue_FIFOAndBounded(t *testing.T) {
	q := NewQueue(3, time.Minute)

	q.Push(LevelInfo, "first", "1")
	q.Push(LevelInfo, "second", "2")
	q.Push(LevelInfo, "third", "3")
	q.Push(LevelInfo, "fourth", "4") // evicts "first"

	active := q.Active(time.Now())
	if len(active) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(active))
	}
	if active[0].Title != "second" {
		t.Errorf("expected oldest entry evicted, head is %q", active[0].Title)
	}
	if active[2].Title != "fourth" {
		t.Errorf("expected newest entry last, got %q", active[2].Title)
	}
}

func TestQueue_AutoDismiss(t *testing.T) {
	q := NewQueue(10, 50*time.Millisecond)

	q.Push(LevelInfo, "ephemeral", "gone soon")

	if got := q.Active(time.Now()); len(got) != 1 {
		t.Fatalf("expected 1 active notification, got %d", len(got))
	}
	if got := q.Active(time.Now().Add(time.Second)); len(got) != 0 {
		t.Fatalf("expected expired notification pruned, got %d", len(got))
	}
	if q.Len() != 0 {
		t.Errorf("expected pruning to shrink the queue, got %d", q.Len())
	}
}

func TestQueue_Dismiss(t *testing.T) {
	q := NewQueue(10, time.Minute)

	n := q.Push(LevelSuccess, "done", "ok")
	if !q.Dismiss(n.ID) {
		t.Error("expected Dismiss to find the notification")
	}
	if q.Dismiss(n.ID) {
		t.Error("expected second Dismiss to be a no-op")
	}
	if len(q.Active(time.Now())) != 0 {
		t.Error("expected empty queue after dismiss")
	}
}

type recordingSink struct {
	seen []Notification
	err  error
}

func (r *recordingSink) Notify(n Notification) error {
	r.seen = append(r.seen, n)
	return r.err
}

func TestQueue_SinkFanout(t *testing.T) {
	sink := &recordingSink{}
	q := NewQueue(10, time.Minute, sink)

	q.Push(LevelCritical, "urgent", "high severity alert")

	if len(sink.seen) != 1 {
		t.Fatalf("expected sink to receive 1 notification, got %d", len(sink.seen))
	}
	if sink.seen[0].Level != LevelCritical {
		t.Errorf("expected critical level, got %s", sink.seen[0].Level)
	}
}

func TestQueue_SinkFailureDoesNotDropNotification(t *testing.T) {
	sink := &recordingSink{err: errors.New("smtp down")}
	q := NewQueue(10, time.Minute, sink)

	q.Push(LevelCritical, "urgent", "still queued")

	if len(q.Active(time.Now())) != 1 {
		t.Error("expected notification kept despite sink failure")
	}
}
