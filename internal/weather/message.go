package weather

import (
	"time"

	"github.com/sirenwatch/sirenwatch/internal/models"
)

type MessageType string

const (
	MessageAlert  MessageType = "Alert"
	MessageUpdate MessageType = "Update"
	MessageCancel MessageType = "Cancel"
)

// Message is one alert message as delivered by the weather service. The
// service issues a fresh id on every content revision; References points at
// the ids a revision supersedes.
type Message struct {
	ID         string      `json:"id"`
	Type       MessageType `json:"messageType"`
	References []string    `json:"references,omitempty"`

	Event       string               `json:"event"`
	Headline    string               `json:"headline"`
	Description string               `json:"description,omitempty"`
	Instruction string               `json:"instruction,omitempty"`
	Severity    models.AlertSeverity `json:"severity"`
	Urgency     string               `json:"urgency"`
	Certainty   string               `json:"certainty"`
	Onset       *time.Time           `json:"onset,omitempty"`
	Expires     *time.Time           `json:"expires,omitempty"`
	Ends        *time.Time           `json:"ends,omitempty"`
	Zones       []string             `json:"zones"`
}
