package dto

import "github.com/yigit/ojtportal/internal/app/models"

// ClockRequest is forwarded to POST /timelogs/clock
type ClockRequest struct {
	Action models.TimeLogAction `json:"action" binding:"required,clock_action" example:"IN"`
	Image  string               `json:"image,omitempty"`
}

// ClockResponse is the API answer to a clock action
type ClockResponse struct {
	Message string         `json:"message"`
	Data    models.TimeLog `json:"data"`
}

// TimeLogFilterRequest is the optional date window of GET /timelogs
type TimeLogFilterRequest struct {
	From string `form:"from" binding:"omitempty,ymd" example:"2026-01-01"`
	To   string `form:"to" binding:"omitempty,ymd" example:"2026-01-31"`
}

// TimeLogsSummary is the server-computed hour accounting plus the raw logs
type TimeLogsSummary struct {
	Logs             []models.TimeLog `json:"logs"`
	TotalHours       float64          `json:"totalHours"`
	TotalMinutes     float64          `json:"totalMinutes"`
	RequiredHours    float64          `json:"requiredHours"`
	RemainingHours   float64          `json:"remainingHours"`
	RemainingMinutes float64          `json:"remainingMinutes"`
}
