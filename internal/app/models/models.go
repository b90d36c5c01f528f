package models

// Position values the OJT API puts on coordinator accounts
const (
	PositionAdmin       = "admin"
	PositionCoordinator = "coordinator"
)

// User is the account returned by the auth endpoints
type User struct {
	ID       string `json:"id" example:"64f1c2"`                      // Account identifier
	Username string `json:"username" example:"coordinator1"`          // Login name
	Email    string `json:"email" example:"coordinator@school.edu.ph"` // Contact email
	Position string `json:"position,omitempty" example:"coordinator"` // Role/position label
}
