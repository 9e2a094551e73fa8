package reconcile

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/feed"
	"github.com/sirenwatch/sirenwatch/internal/models"
)

// Diff is the outcome of reconciling a feed snapshot against stored state.
// Operations are applied in list order: creates, then updates, then closes.
type Diff struct {
	Create []*models.Incident
	Update []*models.Incident
	Close  []*models.Incident
}

// Empty reports whether the diff carries no operations at all.
func (d Diff) Empty() bool {
	return len(d.Create) == 0 && len(d.Update) == 0 && len(d.Close) == 0
}

// Snapshot diffs the current raw feed snapshot against the tenant's stored
// active incidents:
//
//   - a raw record matching a stored record by external id patches mutable
//     fields in place; a unit-list or status-timeline change on an already
//     posted incident marks it for repost
//   - a raw record with no stored match becomes a create
//   - a stored active incident absent from the snapshot is closed with now
//     as the close time (the feed's own declaration that the call ended)
//
// Running the same snapshot twice yields an empty diff on the second pass.
func Snapshot(tenantID uuid.UUID, stored []*models.Incident, payload *feed.Payload, now time.Time) Diff {
	var d Diff

	byExternalID := make(map[string]*models.Incident, len(stored))
	for _, inc := range stored {
		byExternalID[inc.ExternalID] = inc
	}

	seen := make(map[string]bool)
	for _, raw := range payload.Incidents.All() {
		if raw.ID == "" || seen[raw.ID] {
			continue
		}
		seen[raw.ID] = true

		existing, ok := byExternalID[raw.ID]
		if !ok {
			d.Create = append(d.Create, fromRaw(tenantID, &raw, now))
			continue
		}

		changed, contentChanged := patchIncident(existing, &raw)
		if contentChanged && existing.IsPosted {
			existing.NeedsRepost = true
		}

		if raw.CallClosed != nil && existing.Status == models.IncidentActive {
			// The feed reported an explicit close time for this call.
			existing.Status = models.IncidentClosed
			existing.CallClosed = raw.CallClosed
			d.Close = append(d.Close, existing)
			continue
		}
		if changed {
			d.Update = append(d.Update, existing)
		}
	}

	// Stored active incidents missing from the snapshot ended without an
	// explicit close timestamp.
	for _, inc := range stored {
		if inc.Status != models.IncidentActive || seen[inc.ExternalID] {
			continue
		}
		closedAt := now
		inc.Status = models.IncidentClosed
		inc.CallClosed = &closedAt
		d.Close = append(d.Close, inc)
	}

	return d
}

func fromRaw(tenantID uuid.UUID, raw *feed.RawIncident, now time.Time) *models.Incident {
	inc := &models.Incident{
		TenantID:     tenantID,
		ExternalID:   raw.ID,
		GroupID:      raw.GroupID,
		CallType:     raw.CallType,
		Category:     CategoryForCallType(raw.CallType),
		Address:      raw.Address,
		Latitude:     raw.Latitude,
		Longitude:    raw.Longitude,
		Units:        unitIDs(raw.Units),
		UnitStatuses: unitStatuses(raw.Units),
		Description:  raw.Description,
		Status:       models.IncidentActive,
		CallReceived: raw.CallReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if raw.CallClosed != nil {
		inc.Status = models.IncidentClosed
		inc.CallClosed = raw.CallClosed
	}
	return inc
}

// patchIncident copies mutable raw fields onto the stored incident. It
// reports whether anything changed at all and whether the change was
// content-affecting (unit list or status timeline), which is what gates a
// repost of an already published incident.
func patchIncident(inc *models.Incident, raw *feed.RawIncident) (changed, contentChanged bool) {
	if inc.Address != raw.Address {
		inc.Address = raw.Address
		changed = true
	}
	if inc.Latitude != raw.Latitude || inc.Longitude != raw.Longitude {
		inc.Latitude = raw.Latitude
		inc.Longitude = raw.Longitude
		changed = true
	}
	if inc.Description != raw.Description {
		inc.Description = raw.Description
		changed = true
	}
	if inc.CallType != raw.CallType {
		inc.CallType = raw.CallType
		inc.Category = CategoryForCallType(raw.CallType)
		changed = true
	}

	units := unitIDs(raw.Units)
	if !stringSlicesEqual(inc.Units, units) {
		inc.Units = units
		changed = true
		contentChanged = true
	}
	statuses := unitStatuses(raw.Units)
	if !unitStatusesEqual(inc.UnitStatuses, statuses) {
		inc.UnitStatuses = statuses
		changed = true
		contentChanged = true
	}
	return changed, contentChanged
}

func unitIDs(units []feed.RawUnit) []string {
	ids := make([]string, 0, len(units))
	for _, u := range units {
		if u.UnitID != "" {
			ids = append(ids, u.UnitID)
		}
	}
	return ids
}

func unitStatuses(units []feed.RawUnit) map[string]models.UnitStatus {
	statuses := make(map[string]models.UnitStatus, len(units))
	for _, u := range units {
		if u.UnitID == "" {
			continue
		}
		statuses[u.UnitID] = models.UnitStatus{
			Dispatched: u.Dispatched,
			Enroute:    u.Enroute,
			OnScene:    u.OnScene,
			Cleared:    u.Cleared,
		}
	}
	return statuses
}

func stringSlicesEqual(a, b []string) bool {
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

func unitStatusesEqual(a, b map[string]models.UnitStatus) bool {
	if len(a) != len(b) {
		return false
	}
	for id, sa := range a {
		sb, ok := b[id]
		if !ok {
			return false
		}
		if !timePtrEqual(sa.Dispatched, sb.Dispatched) ||
			!timePtrEqual(sa.Enroute, sb.Enroute) ||
			!timePtrEqual(sa.OnScene, sb.OnScene) ||
			!timePtrEqual(sa.Cleared, sb.Cleared) {
			return false
		}
	}
	return true
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
