package posting

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/reconcile"
)

type ItemKind string

const (
	KindIncident ItemKind = "incident"
	KindAlert    ItemKind = "alert"
)

// Item is one postable entry in the per-tenant posting view. For grouped
// incidents the item represents the whole group and RecordID points at the
// group representative.
type Item struct {
	Kind            ItemKind   `json:"kind"`
	RecordID        uuid.UUID  `json:"record_id"`
	Title           string     `json:"title"`
	State           State      `json:"state"`
	NeedsUpdate     bool       `json:"needs_update"`
	PostID          *string    `json:"post_id,omitempty"`
	SyncError       *string    `json:"sync_error,omitempty"`
	LastSyncAttempt *time.Time `json:"last_sync_attempt,omitempty"`
	ReceivedAt      time.Time  `json:"received_at"`
}

// View is the tenant's posting state split into three disjoint sets.
type View struct {
	Pending []Item `json:"pending"`
	Posted  []Item `json:"posted"`
	Failed  []Item `json:"failed"`
}

// BuildView computes the posting view over a snapshot of stored incidents
// and alerts. Medical incidents are excluded from every set. Group
// consolidation is applied on top: a group appears once and its effective
// state is the least-advanced state among its members.
func BuildView(incidents []*models.Incident, alerts []*models.WeatherAlert) View {
	var v View

	byID := make(map[uuid.UUID]*models.Incident, len(incidents))
	for _, inc := range incidents {
		byID[inc.ID] = inc
	}

	for _, ci := range reconcile.Consolidate(incidents) {
		if ci.Category == models.CategoryMedical {
			continue
		}
		states := make([]State, 0, len(ci.MemberIDs))
		var failedMember *models.Incident
		for _, id := range ci.MemberIDs {
			m, ok := byID[id]
			if !ok {
				continue
			}
			st := IncidentState(m)
			states = append(states, st)
			if st == StateFailed && failedMember == nil {
				failedMember = m
			}
		}

		item := Item{
			Kind:            KindIncident,
			RecordID:        ci.ID,
			Title:           ci.CallType + " - " + ci.Address,
			State:           GroupState(states),
			NeedsUpdate:     ci.NeedsRepost,
			PostID:          ci.PostID,
			SyncError:       ci.SyncError,
			LastSyncAttempt: ci.LastSyncAttempt,
			ReceivedAt:      ci.CallReceived,
		}
		if failedMember != nil {
			// surface the failing member's error on the group entry
			item.SyncError = failedMember.SyncError
			item.LastSyncAttempt = failedMember.LastSyncAttempt
		}
		v.add(item)
	}

	for _, a := range alerts {
		v.add(Item{
			Kind:            KindAlert,
			RecordID:        a.ID,
			Title:           a.Event + ": " + a.Headline,
			State:           AlertState(a),
			NeedsUpdate:     a.NeedsRepost,
			PostID:          a.PostID,
			SyncError:       a.SyncError,
			LastSyncAttempt: a.LastSyncAttempt,
			ReceivedAt:      a.CreatedAt,
		})
	}

	return v
}

func (v *View) add(item Item) {
	switch item.State {
	case StateFailed:
		v.Failed = append(v.Failed, item)
	case StatePending:
		v.Pending = append(v.Pending, item)
	default:
		// posted and needs_update live in one set; NeedsUpdate is the
		// UI badge distinguishing them
		item.NeedsUpdate = item.State == StateNeedsUpdate
		v.Posted = append(v.Posted, item)
	}
}
