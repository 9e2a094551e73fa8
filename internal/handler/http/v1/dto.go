package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/posting"
)

// UnitStatusResponse is one unit's dispatch timeline.
type UnitStatusResponse struct {
	Dispatched *time.Time `json:"dispatched,omitempty"`
	Enroute    *time.Time `json:"enroute,omitempty"`
	OnScene    *time.Time `json:"on_scene,omitempty"`
	Cleared    *time.Time `json:"cleared,omitempty"`
}

// IncidentResponse is one entry of the consolidated incident view.
// @Description Consolidated incident entry
type IncidentResponse struct {
	ID           uuid.UUID                     `json:"id"`
	ExternalID   string                        `json:"external_id"`
	GroupID      *string                       `json:"group_id,omitempty"`
	CallType     string                        `json:"call_type"`
	Category     string                        `json:"category"`
	Address      string                        `json:"address"`
	Latitude     float64                       `json:"latitude"`
	Longitude    float64                       `json:"longitude"`
	Units        []string                      `json:"units"`
	UnitStatuses map[string]UnitStatusResponse `json:"unit_statuses"`
	Description  string                        `json:"description,omitempty"`
	Status       string                        `json:"status"`
	CallReceived time.Time                     `json:"call_received"`
	CallClosed   *time.Time                    `json:"call_closed,omitempty"`
	MemberIDs    []uuid.UUID                   `json:"member_ids"`
}

// AlertResponse is one active weather alert with its lineage.
// @Description Weather alert with lineage
type AlertResponse struct {
	ID          uuid.UUID  `json:"id"`
	ExternalID  string     `json:"external_id"`
	Lineage     []string   `json:"lineage"`
	Event       string     `json:"event"`
	Headline    string     `json:"headline"`
	Description string     `json:"description,omitempty"`
	Instruction string     `json:"instruction,omitempty"`
	Severity    string     `json:"severity"`
	Urgency     string     `json:"urgency"`
	Certainty   string     `json:"certainty"`
	Onset       *time.Time `json:"onset,omitempty"`
	Expires     *time.Time `json:"expires,omitempty"`
	Ends        *time.Time `json:"ends,omitempty"`
	Zones       []string   `json:"zones"`
	Status      string     `json:"status"`
}

// PostingViewResponse splits the tenant's postable items into the three
// disjoint posting-state sets.
// @Description Posting state view
type PostingViewResponse struct {
	Pending []posting.Item `json:"pending"`
	Posted  []posting.Item `json:"posted"`
	Failed  []posting.Item `json:"failed"`
}

// RetryRequest asks for a failed item to be queued again.
// @Description Retry request for a failed posting item
type RetryRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=incident alert"`
	RecordID string `json:"record_id" validate:"required,uuid"`
}
