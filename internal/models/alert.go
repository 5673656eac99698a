package models

import "time"

type AlertSeverity string

const (
	AlertSeverityHigh   AlertSeverity = "high"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityLow    AlertSeverity = "low"
)

type AlertStatus string

const (
	AlertStatusUnread AlertStatus = "unread"
	AlertStatusRead   AlertStatus = "read"
)

// Alert is one notifiable event shown in the alerts feed. Status only ever
// moves unread -> read; Timestamp is fixed at creation.
type Alert struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	Status      AlertStatus   `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
	Location    string        `json:"location,omitempty"`
	Type        string        `json:"type"` // free-text category: "prediction", "trend", "data", "system"
}
