package alerts

import (
	"testing"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

func TestStore_MarkReadIdempotent(t *testing.T) {
	s := NewStore()
	s.Replace(sampleAlerts(time.Now()), s.NextToken())

	if !s.MarkRead("1") {
		t.Error("expected first MarkRead to report a change")
	}
	if s.MarkRead("1") {
		t.Error("expected second MarkRead to be a no-op")
	}

	for _, a := range s.Snapshot() {
		if a.ID == "1" && a.Status != models.AlertStatusRead {
			t.Errorf("expected alert 1 to be read, got %s", a.Status)
		}
	}
}

func TestStore_MarkReadMissingID(t *testing.T) {
	s := NewStore()
	s.Replace(sampleAlerts(time.Now()), s.NextToken())

	if s.MarkRead("nope") {
		t.Error("expected MarkRead on missing id to be a no-op")
	}
}

func TestStore_DeleteTwice(t *testing.T) {
	s := NewStore()
	s.Replace(sampleAlerts(time.Now()), s.NextToken())
	before := s.Len()

	if !s.Delete("2") {
		t.Error("expected first Delete to remove the alert")
	}
	if s.Len() != before-1 {
		t.Errorf("expected %d alerts after delete, got %d", before-1, s.Len())
	}
	if s.Delete("2") {
		t.Error("expected second Delete to be a no-op")
	}
	if s.Len() != before-1 {
		t.Errorf("expected size unchanged after second delete, got %d", s.Len())
	}
}

func TestStore_ReplaceRejectsStaleToken(t *testing.T) {
	s := NewStore()
	now := time.Now()

	oldToken := s.NextToken()
	newToken := s.NextToken()

	if !s.Replace([]models.Alert{{ID: "new", Timestamp: now}}, newToken) {
		t.Fatal("expected newest token to commit")
	}
	if s.Replace([]models.Alert{{ID: "stale", Timestamp: now}}, oldToken) {
		t.Fatal("expected stale token to be rejected")
	}

	snap := s.Snapshot()
	if len(snap) != 1 || snap[0].ID != "new" {
		t.Errorf("expected the newer fetch to win, got %v", snap)
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Replace(sampleAlerts(time.Now()), s.NextToken())

	snap := s.Snapshot()
	snap[0].Status = models.AlertStatusRead

	if s.Snapshot()[0].Status != models.AlertStatusUnread {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestStore_ViewAppliesCriteria(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.Replace(sampleAlerts(now), s.NextToken())

	view := s.View(Criteria{Severity: "high"}, now)
	if len(view) != 1 || view[0].ID != "1" {
		t.Fatalf("expected only the high severity alert, got %v", view)
	}
}
