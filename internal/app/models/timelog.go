package models

// TimeLogAction is one attendance event kind
type TimeLogAction string

const (
	ActionIn       TimeLogAction = "IN"
	ActionOut      TimeLogAction = "OUT"
	ActionLunchIn  TimeLogAction = "LUNCH IN"
	ActionLunchOut TimeLogAction = "LUNCH OUT"
)

// TimeLogActions lists the accepted clock actions in the order the clock panel shows them
var TimeLogActions = []TimeLogAction{ActionIn, ActionLunchOut, ActionLunchIn, ActionOut}

// Valid reports whether a is one of the four clock actions
func (a TimeLogAction) Valid() bool {
	for _, action := range TimeLogActions {
		if a == action {
			return true
		}
	}
	return false
}

// TimeLog is a single timestamped clock event
type TimeLog struct {
	ID        string        `json:"id"`
	Student   string        `json:"student"`
	Action    TimeLogAction `json:"action" example:"IN"`
	Timestamp string        `json:"timestamp" example:"2026-01-05T08:30:00Z"`
	Image     string        `json:"image,omitempty"`
}
