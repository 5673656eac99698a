package alerts

import (
	"testing"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

func sampleAlerts(now time.Time) []models.Alert {
	return []models.Alert{
		{
			ID:          "1",
			Title:       "High Risk Outbreak Alert",
			Description: "Respiratory disease outbreak predicted in Southeast Asia",
			Severity:    models.AlertSeverityHigh,
			Status:      models.AlertStatusUnread,
			Timestamp:   now.Add(-5 * time.Minute),
		},
		{
			ID:          "2",
			Title:       "Case Numbers Stabilizing",
			Description: "Trend analysis shows stabilization in Europe",
			Severity:    models.AlertSeverityMedium,
			Status:      models.AlertStatusUnread,
			Timestamp:   now.Add(-30 * time.Minute),
		},
		{
			ID:          "3",
			Title:       "New CDC Data Integrated",
			Description: "Latest CDC data integrated into prediction models",
			Severity:    models.AlertSeverityLow,
			Status:      models.AlertStatusRead,
			Timestamp:   now.Add(-10 * 24 * time.Hour),
		},
	}
}

func TestDerive_DefaultCriteriaIsIdentity(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)

	got := Derive(items, DefaultCriteria(), now)

	if len(got) != len(items) {
		t.Fatalf("expected %d alerts, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Errorf("expected id %s at index %d, got %s", items[i].ID, i, got[i].ID)
		}
	}
}

func TestDerive_IsSubset(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)

	criteria := Criteria{Search: "data", Severity: FilterAll, Status: FilterAll, Window: WindowAll}
	got := Derive(items, criteria, now)

	ids := make(map[string]bool, len(items))
	for _, a := range items {
		ids[a.ID] = true
	}
	for _, a := range got {
		if !ids[a.ID] {
			t.Errorf("derived alert %s is not in the base list", a.ID)
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)
	criteria := Criteria{Severity: string(models.AlertSeverityHigh), Status: FilterAll, Window: WindowAll}

	once := Derive(items, criteria, now)
	twice := Derive(once, criteria, now)

	if len(once) != len(twice) {
		t.Fatalf("expected idempotent derivation, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("expected id %s at index %d, got %s", once[i].ID, i, twice[i].ID)
		}
	}
}

func TestDerive_SearchMatchesTitleAndDescription(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)

	// "cdc" appears in alert 3's title and description only.
	got := Derive(items, Criteria{Search: "CDC"}, now)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected only alert 3, got %v", got)
	}

	// "europe" appears only in alert 2's description.
	got = Derive(items, Criteria{Search: "europe"}, now)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only alert 2, got %v", got)
	}
}

func TestDerive_SeverityScenario(t *testing.T) {
	now := time.Now()
	items := []models.Alert{
		{ID: "a", Severity: models.AlertSeverityHigh, Status: models.AlertStatusUnread, Timestamp: now.Add(-5 * time.Minute)},
		{ID: "b", Severity: models.AlertSeverityLow, Status: models.AlertStatusRead, Timestamp: now.Add(-10 * 24 * time.Hour)},
	}

	got := Derive(items, Criteria{Severity: "high"}, now)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected exactly the high alert, got %v", got)
	}

	got = Derive(items, Criteria{Window: WindowWeek}, now)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected the ten-day-old alert excluded, got %v", got)
	}
}

func TestDerive_StatusFilter(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)

	got := Derive(items, Criteria{Status: "unread"}, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 unread alerts, got %d", len(got))
	}

	got = Derive(items, Criteria{Status: "read"}, now)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected only the read alert, got %v", got)
	}
}

func TestDerive_WindowBoundaryInclusive(t *testing.T) {
	now := time.Now()
	items := []models.Alert{
		{ID: "exact", Timestamp: now.Add(-24 * time.Hour)},
		{ID: "over", Timestamp: now.Add(-24*time.Hour - time.Second)},
	}

	got := Derive(items, Criteria{Window: WindowToday}, now)

	if len(got) != 1 {
		t.Fatalf("expected 1 alert within the window, got %d", len(got))
	}
	if got[0].ID != "exact" {
		t.Errorf("expected the alert exactly at the boundary to be kept, got %s", got[0].ID)
	}
}

func TestDerive_FiltersCompose(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)

	criteria := Criteria{
		Search:   "outbreak",
		Severity: "high",
		Status:   "unread",
		Window:   WindowToday,
	}
	got := Derive(items, criteria, now)

	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only alert 1 under combined filters, got %v", got)
	}
}

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"all", "today", "week", "month"} {
		if _, err := ParseWindow(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}

	if _, err := ParseWindow("yesterday"); err == nil {
		t.Error("expected error for unknown window")
	}
}

func TestDerive_ReturnsFreshSlice(t *testing.T) {
	now := time.Now()
	items := sampleAlerts(now)

	got := Derive(items, DefaultCriteria(), now)
	got[0].Status = models.AlertStatusRead

	if items[0].Status != models.AlertStatusUnread {
		t.Error("derived slice aliases the base list")
	}
}
