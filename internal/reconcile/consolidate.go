package reconcile

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/models"
)

// ConsolidatedIncident is one entry of the read-time grouped projection.
// The embedded incident is a copy of the group representative; stored
// records are never mutated by consolidation.
type ConsolidatedIncident struct {
	models.Incident

	// MemberIDs lists every stored record merged into this entry,
	// representative included.
	MemberIDs []uuid.UUID `json:"member_ids"`
}

// Consolidate merges records sharing a non-nil group id into one entry:
//
//   - representative = the member with the earliest call-received time
//   - units = union of member units, first-seen order, duplicates removed
//   - unit statuses = union keyed by unit id, first occurrence wins
//
// Ungrouped records pass through as single-member entries. The result is
// sorted by call-received time descending. The projection is a pure
// function of the snapshot and is recomputed per read, never cached.
func Consolidate(snapshot []*models.Incident) []*ConsolidatedIncident {
	groups := make(map[string][]*models.Incident)
	var order []string // first-seen group order keeps the pass deterministic
	var singles []*models.Incident

	for _, inc := range snapshot {
		if inc.GroupID == nil || *inc.GroupID == "" {
			singles = append(singles, inc)
			continue
		}
		g := *inc.GroupID
		if _, ok := groups[g]; !ok {
			order = append(order, g)
		}
		groups[g] = append(groups[g], inc)
	}

	out := make([]*ConsolidatedIncident, 0, len(singles)+len(order))
	for _, inc := range singles {
		out = append(out, &ConsolidatedIncident{
			Incident:  *inc,
			MemberIDs: []uuid.UUID{inc.ID},
		})
	}
	for _, g := range order {
		out = append(out, mergeGroup(groups[g]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CallReceived.After(out[j].CallReceived)
	})
	return out
}

func mergeGroup(members []*models.Incident) *ConsolidatedIncident {
	rep := members[0]
	for _, m := range members[1:] {
		if m.CallReceived.Before(rep.CallReceived) {
			rep = m
		}
	}

	merged := &ConsolidatedIncident{Incident: *rep}

	seenUnit := make(map[string]bool)
	units := make([]string, 0)
	statuses := make(map[string]models.UnitStatus)
	for _, m := range members {
		merged.MemberIDs = append(merged.MemberIDs, m.ID)
		for _, u := range m.Units {
			if !seenUnit[u] {
				seenUnit[u] = true
				units = append(units, u)
			}
		}
		for id, st := range m.UnitStatuses {
			if _, ok := statuses[id]; !ok {
				statuses[id] = st
			}
		}
	}
	merged.Units = units
	merged.UnitStatuses = statuses
	return merged
}
