package models

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertActive    AlertStatus = "active"
	AlertExpired   AlertStatus = "expired"
	AlertCancelled AlertStatus = "cancelled"
)

type AlertSeverity string

const (
	SeverityExtreme  AlertSeverity = "Extreme"
	SeveritySevere   AlertSeverity = "Severe"
	SeverityModerate AlertSeverity = "Moderate"
	SeverityMinor    AlertSeverity = "Minor"
	SeverityUnknown  AlertSeverity = "Unknown"
)

// WeatherAlert is a stored weather-service alert. The service issues a new
// external id on every revision; ExternalID always holds the current one and
// Lineage accumulates every superseded id in order.
type WeatherAlert struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	ExternalID string    `json:"external_id"`
	Lineage    []string  `json:"lineage"`

	Event       string        `json:"event"`
	Headline    string        `json:"headline"`
	Description string        `json:"description,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
	Severity    AlertSeverity `json:"severity"`
	Urgency     string        `json:"urgency"`
	Certainty   string        `json:"certainty"`
	Onset       *time.Time    `json:"onset,omitempty"`
	Expires     *time.Time    `json:"expires,omitempty"`
	Ends        *time.Time    `json:"ends,omitempty"`
	Zones       []string      `json:"zones"`

	Status AlertStatus `json:"status"`

	IsPosted        bool       `json:"is_posted"`
	PostID          *string    `json:"post_id,omitempty"`
	NeedsRepost     bool       `json:"needs_repost"`
	LastSyncAttempt *time.Time `json:"last_sync_attempt,omitempty"`
	SyncError       *string    `json:"sync_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
