package feed

import "time"

// Payload is the decrypted incident feed snapshot.
type Payload struct {
	Incidents IncidentLists `json:"incidents"`
}

// IncidentLists splits the snapshot into calls still in progress and calls
// the feed already considers ended.
type IncidentLists struct {
	Active []RawIncident `json:"active"`
	Recent []RawIncident `json:"recent"`
}

// All returns active and recent records as one slice, active first.
func (l IncidentLists) All() []RawIncident {
	out := make([]RawIncident, 0, len(l.Active)+len(l.Recent))
	out = append(out, l.Active...)
	return append(out, l.Recent...)
}

// RawIncident is a single record as decoded from the feed.
type RawIncident struct {
	ID           string     `json:"ID"`
	GroupID      *string    `json:"IncidentGroupID,omitempty"`
	CallType     string     `json:"CallType"`
	Address      string     `json:"FullDisplayAddress"`
	Latitude     float64    `json:"Latitude,string"`
	Longitude    float64    `json:"Longitude,string"`
	Description  string     `json:"Description,omitempty"`
	CallReceived time.Time  `json:"CallReceivedDateTime"`
	CallClosed   *time.Time `json:"ClosedDateTime,omitempty"`
	Units        []RawUnit  `json:"Unit"`
}

// RawUnit is a unit assignment with its dispatch timeline.
type RawUnit struct {
	UnitID     string     `json:"UnitID"`
	Dispatched *time.Time `json:"UnitDispatchedDateTime,omitempty"`
	Enroute    *time.Time `json:"UnitEnrouteDateTime,omitempty"`
	OnScene    *time.Time `json:"UnitOnSceneDateTime,omitempty"`
	Cleared    *time.Time `json:"UnitClearedDateTime,omitempty"`
}
