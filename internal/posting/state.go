package posting

import "github.com/sirenwatch/sirenwatch/internal/models"

// State is the social-publication lifecycle state of an incident or alert.
// It is derived from the record's sync metadata, never stored separately:
//
//	pending -> posted -> needs_update -> posted (loop)
//	pending/needs_update -> failed -> (retry) -> pending/needs_update
//
// failed always carries a non-empty error string; posted always carries an
// external post reference.
type State string

const (
	StatePending     State = "pending"
	StatePosted      State = "posted"
	StateNeedsUpdate State = "needs_update"
	StateFailed      State = "failed"
)

// rank orders states by advancement. A consolidated group reports the
// least-advanced state among its members.
func rank(s State) int {
	switch s {
	case StateFailed:
		return 0
	case StatePending:
		return 1
	case StateNeedsUpdate:
		return 2
	case StatePosted:
		return 3
	}
	return 1
}

// IncidentState derives the posting state of an incident.
func IncidentState(inc *models.Incident) State {
	return derive(inc.IsPosted, inc.NeedsRepost, inc.SyncError)
}

// AlertState derives the posting state of a weather alert.
func AlertState(a *models.WeatherAlert) State {
	return derive(a.IsPosted, a.NeedsRepost, a.SyncError)
}

func derive(isPosted, needsRepost bool, syncError *string) State {
	if syncError != nil && *syncError != "" {
		return StateFailed
	}
	if !isPosted {
		return StatePending
	}
	if needsRepost {
		return StateNeedsUpdate
	}
	return StatePosted
}

// GroupState collapses member states to the group's effective state.
func GroupState(states []State) State {
	if len(states) == 0 {
		return StatePending
	}
	min := states[0]
	for _, s := range states[1:] {
		if rank(s) < rank(min) {
			min = s
		}
	}
	return min
}
