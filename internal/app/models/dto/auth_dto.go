package dto

import "github.com/yigit/ojtportal/internal/app/models"

// LoginRequest represents login credentials forwarded to POST /auth/login
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required" example:"coordinator1"`
	Password        string `json:"password" binding:"required"`
}

// RegisterRequest represents a coordinator account registration forwarded to POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Position string `json:"position,omitempty"`
}

// AuthResponse is what both auth endpoints answer with
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// SessionResponse describes the caller's portal session
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

// LogoutResponse tells the browser where to go after the session was cleared
type LogoutResponse struct {
	Redirect string `json:"redirect" example:"/login"`
}
