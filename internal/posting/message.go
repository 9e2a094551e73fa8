package posting

import (
	"fmt"
	"strings"

	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/reconcile"
)

// FormatIncidentMessage renders the social post body for an incident group.
func FormatIncidentMessage(ci *reconcile.ConsolidatedIncident) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s", categoryLabel(ci.Category), ci.Address)
	if len(ci.Units) > 0 {
		fmt.Fprintf(&b, "\nUnits on the call: %s", strings.Join(ci.Units, ", "))
	}
	if ci.Status == models.IncidentClosed {
		b.WriteString("\nThis call has been closed.")
	}
	fmt.Fprintf(&b, "\nReceived %s", ci.CallReceived.Format("Jan 2 3:04 PM"))
	return b.String()
}

// FormatAlertMessage renders the social post body for a weather alert.
func FormatAlertMessage(a *models.WeatherAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", a.Event, a.Headline)
	if a.Status == models.AlertCancelled {
		b.WriteString("\nThis alert has been cancelled.")
	} else if a.Instruction != "" {
		fmt.Fprintf(&b, "\n%s", a.Instruction)
	}
	if a.Expires != nil && a.Status == models.AlertActive {
		fmt.Fprintf(&b, "\nIn effect until %s", a.Expires.Format("Jan 2 3:04 PM"))
	}
	return b.String()
}

var categoryLabels = map[models.CallCategory]string{
	models.CategoryFire:    "Fire response",
	models.CategoryRescue:  "Rescue operation",
	models.CategoryTraffic: "Traffic incident",
	models.CategoryHazmat:  "Hazmat response",
	models.CategoryOther:   "Emergency response",
}

func categoryLabel(category models.CallCategory) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return "Emergency response"
}
