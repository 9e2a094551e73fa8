package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant carries the per-organization sync configuration. Tenant records are
// owned by the administrative code; this service only reads them.
type Tenant struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	AgencyID string    `json:"agency_id"`

	// FeedSecret decrypts the agency's incident feed envelope.
	FeedSecret string `json:"-"`

	// Weather zone codes the tenant subscribes to.
	Zones []string `json:"zones"`

	// Social account wiring.
	SocialPageID    string `json:"social_page_id,omitempty"`
	SocialPageToken string `json:"-"`

	PostIncidents bool `json:"post_incidents"`
	PostAlerts    bool `json:"post_alerts"`
	Active        bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Postable reports whether the tenant has everything needed to publish.
func (t *Tenant) Postable() bool {
	return t.SocialPageID != "" && t.SocialPageToken != ""
}
