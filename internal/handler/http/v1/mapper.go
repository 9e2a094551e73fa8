package v1

import (
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/posting"
	"github.com/sirenwatch/sirenwatch/internal/reconcile"
)

// ConsolidatedToResponse converts one projection entry into a response DTO.
func ConsolidatedToResponse(ci *reconcile.ConsolidatedIncident) *IncidentResponse {
	statuses := make(map[string]UnitStatusResponse, len(ci.UnitStatuses))
	for id, st := range ci.UnitStatuses {
		statuses[id] = UnitStatusResponse{
			Dispatched: st.Dispatched,
			Enroute:    st.Enroute,
			OnScene:    st.OnScene,
			Cleared:    st.Cleared,
		}
	}
	return &IncidentResponse{
		ID:           ci.ID,
		ExternalID:   ci.ExternalID,
		GroupID:      ci.GroupID,
		CallType:     ci.CallType,
		Category:     string(ci.Category),
		Address:      ci.Address,
		Latitude:     ci.Latitude,
		Longitude:    ci.Longitude,
		Units:        ci.Units,
		UnitStatuses: statuses,
		Description:  ci.Description,
		Status:       string(ci.Status),
		CallReceived: ci.CallReceived,
		CallClosed:   ci.CallClosed,
		MemberIDs:    ci.MemberIDs,
	}
}

// ConsolidatedToResponses converts the whole projection.
func ConsolidatedToResponses(cis []*reconcile.ConsolidatedIncident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(cis))
	for i, ci := range cis {
		responses[i] = ConsolidatedToResponse(ci)
	}
	return responses
}

// AlertToResponse converts a weather alert into a response DTO.
func AlertToResponse(a *models.WeatherAlert) *AlertResponse {
	return &AlertResponse{
		ID:          a.ID,
		ExternalID:  a.ExternalID,
		Lineage:     a.Lineage,
		Event:       a.Event,
		Headline:    a.Headline,
		Description: a.Description,
		Instruction: a.Instruction,
		Severity:    string(a.Severity),
		Urgency:     a.Urgency,
		Certainty:   a.Certainty,
		Onset:       a.Onset,
		Expires:     a.Expires,
		Ends:        a.Ends,
		Zones:       a.Zones,
		Status:      string(a.Status),
	}
}

// AlertsToResponses converts a slice of alerts.
func AlertsToResponses(alerts []*models.WeatherAlert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertToResponse(a)
	}
	return responses
}

// ViewToResponse converts the posting view.
func ViewToResponse(v posting.View) PostingViewResponse {
	return PostingViewResponse{
		Pending: v.Pending,
		Posted:  v.Posted,
		Failed:  v.Failed,
	}
}
