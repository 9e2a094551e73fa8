package weather

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/models"
)

// Resolution is the outcome of resolving one message batch against stored
// alerts. Create holds brand-new records, Update holds stored records that
// were mutated in place. A record never appears in both lists.
type Resolution struct {
	Create         []*models.WeatherAlert
	Update         []*models.WeatherAlert
	DroppedCancels int
}

// Resolve applies a batch of alert messages to the tenant's stored alerts.
// Messages are processed strictly in received order. An update or cancel
// chain collapses into a single record: the lineage owner keeps its stored
// identity, accumulates every superseded external id in Lineage, and its
// ExternalID always holds the newest id.
//
// A Cancel whose references match nothing is dropped; no record is ever
// created from a cancel alone. That includes a Cancel arriving before its
// referenced Update within the same batch.
func Resolve(tenantID uuid.UUID, stored []*models.WeatherAlert, msgs []Message, now time.Time) Resolution {
	var res Resolution

	working := make([]*models.WeatherAlert, len(stored))
	copy(working, stored)
	isNew := make(map[*models.WeatherAlert]bool)
	touched := make(map[*models.WeatherAlert]bool)
	var touchOrder []*models.WeatherAlert

	markTouched := func(a *models.WeatherAlert) {
		if !touched[a] {
			touched[a] = true
			touchOrder = append(touchOrder, a)
		}
	}

	for i := range msgs {
		msg := &msgs[i]

		// Exact current-id match is a content refresh, no lineage change.
		if owner := findByCurrentID(working, msg.ID); owner != nil {
			if patch(owner, msg) {
				if owner.IsPosted {
					owner.NeedsRepost = true
				}
				markTouched(owner)
			}
			continue
		}

		owner := findLineageOwner(working, msg.References)

		switch msg.Type {
		case MessageCancel:
			if owner == nil {
				res.DroppedCancels++
				continue
			}
			owner.Lineage = append(owner.Lineage, owner.ExternalID)
			owner.ExternalID = msg.ID
			owner.Status = models.AlertCancelled
			markTouched(owner)

		case MessageUpdate:
			if owner != nil {
				// The lineage owner absorbs the new identity.
				owner.Lineage = append(owner.Lineage, owner.ExternalID)
				owner.ExternalID = msg.ID
				patch(owner, msg)
				if owner.IsPosted {
					owner.NeedsRepost = true
				}
				markTouched(owner)
				continue
			}
			fallthrough

		case MessageAlert:
			a := newAlert(tenantID, msg, now)
			working = append(working, a)
			isNew[a] = true
			res.Create = append(res.Create, a)

		default:
			// Unknown message types are ignored.
		}
	}

	for _, a := range touchOrder {
		if !isNew[a] {
			res.Update = append(res.Update, a)
		}
	}
	return res
}

func findByCurrentID(alerts []*models.WeatherAlert, id string) *models.WeatherAlert {
	for _, a := range alerts {
		if a.ExternalID == id {
			return a
		}
	}
	return nil
}

// findLineageOwner searches current ids first, then lineage lists, across
// all alerts. References may point arbitrarily far back in a chain. The
// first match wins; ambiguity between candidates is resolved silently.
func findLineageOwner(alerts []*models.WeatherAlert, refs []string) *models.WeatherAlert {
	if len(refs) == 0 {
		return nil
	}
	for _, a := range alerts {
		for _, ref := range refs {
			if a.ExternalID == ref {
				return a
			}
		}
	}
	for _, a := range alerts {
		for _, ref := range refs {
			for _, prev := range a.Lineage {
				if prev == ref {
					return a
				}
			}
		}
	}
	return nil
}

func newAlert(tenantID uuid.UUID, msg *Message, now time.Time) *models.WeatherAlert {
	return &models.WeatherAlert{
		TenantID:    tenantID,
		ExternalID:  msg.ID,
		Lineage:     []string{},
		Event:       msg.Event,
		Headline:    msg.Headline,
		Description: msg.Description,
		Instruction: msg.Instruction,
		Severity:    severityOrUnknown(msg.Severity),
		Urgency:     msg.Urgency,
		Certainty:   msg.Certainty,
		Onset:       msg.Onset,
		Expires:     msg.Expires,
		Ends:        msg.Ends,
		Zones:       msg.Zones,
		Status:      models.AlertActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// patch copies message content onto the alert and reports whether anything
// content-affecting actually changed.
func patch(a *models.WeatherAlert, msg *Message) bool {
	changed := false
	if a.Event != msg.Event {
		a.Event = msg.Event
		changed = true
	}
	if a.Headline != msg.Headline {
		a.Headline = msg.Headline
		changed = true
	}
	if a.Description != msg.Description {
		a.Description = msg.Description
		changed = true
	}
	if a.Instruction != msg.Instruction {
		a.Instruction = msg.Instruction
		changed = true
	}
	if sev := severityOrUnknown(msg.Severity); a.Severity != sev {
		a.Severity = sev
		changed = true
	}
	if a.Urgency != msg.Urgency {
		a.Urgency = msg.Urgency
		changed = true
	}
	if a.Certainty != msg.Certainty {
		a.Certainty = msg.Certainty
		changed = true
	}
	if !timePtrEqual(a.Onset, msg.Onset) {
		a.Onset = msg.Onset
		changed = true
	}
	if !timePtrEqual(a.Expires, msg.Expires) {
		a.Expires = msg.Expires
		changed = true
	}
	if !timePtrEqual(a.Ends, msg.Ends) {
		a.Ends = msg.Ends
		changed = true
	}
	if !stringsEqual(a.Zones, msg.Zones) {
		a.Zones = msg.Zones
		changed = true
	}
	return changed
}

func severityOrUnknown(s models.AlertSeverity) models.AlertSeverity {
	switch s {
	case models.SeverityExtreme, models.SeveritySevere, models.SeverityModerate, models.SeverityMinor:
		return s
	}
	return models.SeverityUnknown
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
