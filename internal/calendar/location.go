package calendar

import (
	"strings"

	gcal "google.golang.org/api/calendar/v3"
)

// WorkLocation is the day's declared work location.
type WorkLocation int

const (
	LocationUnset WorkLocation = iota
	LocationOffice
	LocationHome
)

func (l WorkLocation) String() string {
	switch l {
	case LocationOffice:
		return "office"
	case LocationHome:
		return "home"
	default:
		return "unset"
	}
}

// Structured working-location types the Calendar API reports.
const (
	workingLocationOffice = "officeLocation"
	workingLocationHome   = "homeOffice"
	workingLocationCustom = "customLocation"
)

// LocationForDay scans events in start-time order and returns the
// location declared by the first event carrying structured
// working-location metadata. Events without that metadata, and custom
// locations that don't mention home, are skipped. The substring match is
// deliberately loose ("Home Depot" counts); this is a single-user tool
// and the label is under the user's control.
func LocationForDay(events []*gcal.Event) WorkLocation {
	for _, event := range events {
		props := event.WorkingLocationProperties
		if props == nil {
			continue
		}
		switch props.Type {
		case workingLocationOffice:
			return LocationOffice
		case workingLocationHome:
			return LocationHome
		case workingLocationCustom:
			if props.CustomLocation != nil && strings.Contains(strings.ToLower(props.CustomLocation.Label), "home") {
				return LocationHome
			}
		}
	}
	return LocationUnset
}
