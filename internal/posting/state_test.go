package posting

import (
	"testing"

	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestIncidentState_Transitions(t *testing.T) {
	inc := &models.Incident{}
	assert.Equal(t, StatePending, IncidentState(inc))

	inc.IsPosted = true
	inc.PostID = strptr("post-1")
	assert.Equal(t, StatePosted, IncidentState(inc))

	inc.NeedsRepost = true
	assert.Equal(t, StateNeedsUpdate, IncidentState(inc))

	// An error dominates every other field.
	inc.SyncError = strptr("delivery failed")
	assert.Equal(t, StateFailed, IncidentState(inc))

	inc.SyncError = nil
	assert.Equal(t, StateNeedsUpdate, IncidentState(inc))

	inc.NeedsRepost = false
	assert.Equal(t, StatePosted, IncidentState(inc))
}

func TestIncidentState_EmptyErrorStringIsNotFailed(t *testing.T) {
	inc := &models.Incident{SyncError: strptr("")}
	assert.Equal(t, StatePending, IncidentState(inc))
}

func TestAlertState(t *testing.T) {
	a := &models.WeatherAlert{}
	assert.Equal(t, StatePending, AlertState(a))

	a.IsPosted = true
	assert.Equal(t, StatePosted, AlertState(a))

	a.SyncError = strptr("boom")
	assert.Equal(t, StateFailed, AlertState(a))
}

func TestGroupState_LeastAdvancedWins(t *testing.T) {
	assert.Equal(t, StatePending, GroupState(nil))
	assert.Equal(t, StatePosted, GroupState([]State{StatePosted, StatePosted}))
	assert.Equal(t, StatePending, GroupState([]State{StatePosted, StatePending}))
	assert.Equal(t, StateNeedsUpdate, GroupState([]State{StatePosted, StateNeedsUpdate}))
	assert.Equal(t, StateFailed, GroupState([]State{StatePosted, StatePending, StateFailed}))
}
