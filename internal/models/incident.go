package models

import (
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentActive   IncidentStatus = "active"
	IncidentClosed   IncidentStatus = "closed"
	IncidentArchived IncidentStatus = "archived"
)

type CallCategory string

const (
	CategoryFire    CallCategory = "fire"
	CategoryMedical CallCategory = "medical"
	CategoryRescue  CallCategory = "rescue"
	CategoryTraffic CallCategory = "traffic"
	CategoryHazmat  CallCategory = "hazmat"
	CategoryOther   CallCategory = "other"
)

// UnitStatus is the per-unit dispatch timeline for an incident.
type UnitStatus struct {
	Dispatched *time.Time `json:"dispatched,omitempty"`
	Enroute    *time.Time `json:"enroute,omitempty"`
	OnScene    *time.Time `json:"on_scene,omitempty"`
	Cleared    *time.Time `json:"cleared,omitempty"`
}

// Incident is a stored dispatch incident for a tenant. ExternalID is the
// feed's identifier; at most one non-closed incident per (tenant, external id).
type Incident struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	ExternalID string    `json:"external_id"`
	GroupID    *string   `json:"group_id,omitempty"`

	CallType     string                `json:"call_type"`
	Category     CallCategory          `json:"category"`
	Address      string                `json:"address"`
	Latitude     float64               `json:"latitude"`
	Longitude    float64               `json:"longitude"`
	Units        []string              `json:"units"`
	UnitStatuses map[string]UnitStatus `json:"unit_statuses"`
	Description  string                `json:"description,omitempty"`

	Status       IncidentStatus `json:"status"`
	CallReceived time.Time      `json:"call_received"`
	CallClosed   *time.Time     `json:"call_closed,omitempty"`

	// Sync metadata for the social posting pipeline.
	IsPosted        bool       `json:"is_posted"`
	PostID          *string    `json:"post_id,omitempty"`
	NeedsRepost     bool       `json:"needs_repost"`
	LastSyncAttempt *time.Time `json:"last_sync_attempt,omitempty"`
	SyncError       *string    `json:"sync_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
