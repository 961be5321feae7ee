package dto

import "villadash/models"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the API reply to POST /auth/login/.
type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    models.User `json:"user"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries a rotated refresh token only when the API rotates.
type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type SessionResponse struct {
	SessionID string       `json:"sessionId"`
	User      *models.User `json:"user"`
}

// SessionInfo describes the stored token pair without exposing it.
type SessionInfo struct {
	SessionID        string       `json:"sessionId"`
	User             *models.User `json:"user"`
	AccessExpiresIn  string       `json:"accessExpiresIn"`
	AccessExpired    bool         `json:"accessExpired"`
	RefreshExpiresIn string       `json:"refreshExpiresIn"`
	RefreshExpired   bool         `json:"refreshExpired"`
}
