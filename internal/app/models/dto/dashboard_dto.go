package dto

import "github.com/yigit/ojtportal/internal/app/models"

// DashboardResponse aggregates what the signed-in user sees first
type DashboardResponse struct {
	User               *models.User     `json:"user,omitempty"`
	TodayLogs          []models.TimeLog `json:"todayLogs"`
	LastAction         string           `json:"lastAction,omitempty"`
	Rendered           string           `json:"rendered" example:"120h 30m"`
	Remaining          string           `json:"remaining" example:"365h 30m"`
	Summary            *TimeLogsSummary `json:"summary,omitempty"`
	SubmittedCount     int              `json:"submittedCount"`
	PendingRequirement int              `json:"pendingRequirements"`
}
