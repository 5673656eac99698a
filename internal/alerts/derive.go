package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

// FilterAll disables an individual criterion.
const FilterAll = "all"

type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a query string to a Window.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return Window(s), nil
	default:
		return "", fmt.Errorf("unknown time window %q", s)
	}
}

// windowHours maps a time window to its maximum age in hours.
var windowHours = map[Window]float64{
	WindowToday: 24,
	WindowWeek:  168,
	WindowMonth: 720,
}

// Criteria is one set of alert filters. The zero value with "all" selectors
// and an empty search string matches everything.
type Criteria struct {
	Search   string
	Severity string
	Status   string
	Window   Window
}

// DefaultCriteria returns the identity filter.
func DefaultCriteria() Criteria {
	return Criteria{
		Search:   "",
		Severity: FilterAll,
		Status:   FilterAll,
		Window:   WindowAll,
	}
}

// Derive applies the criteria to items and returns a fresh filtered slice.
// Filters compose with AND; each one passes everything when set to its
// "all"/empty value. The age cutoff is inclusive: an alert exactly at the
// window boundary is kept.
func Derive(items []models.Alert, c Criteria, now time.Time) []models.Alert {
	out := make([]models.Alert, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(c.Search))
	cutoff, hasWindow := windowHours[c.Window]

	for _, a := range items {
		if search != "" {
			title := strings.ToLower(a.Title)
			desc := strings.ToLower(a.Description)
			if !strings.Contains(title, search) && !strings.Contains(desc, search) {
				continue
			}
		}
		if c.Severity != "" && c.Severity != FilterAll && string(a.Severity) != c.Severity {
			continue
		}
		if c.Status != "" && c.Status != FilterAll && string(a.Status) != c.Status {
			continue
		}
		if hasWindow {
			age := now.Sub(a.Timestamp).Hours()
			if age > cutoff {
				continue
			}
		}
		out = append(out, a)
	}

	return out
}
