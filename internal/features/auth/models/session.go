package models

import (
	"time"

	usermodels "taskearn-backend/internal/features/user/models"
)

// Session is the server-side marker for a logged-in user. The token is an
// opaque random string; the cached projection is what CurrentUser returns
// without re-reading the user record.
type Session struct {
	Token     string                   `json:"token"`
	UserID    string                   `json:"userId"`
	User      *usermodels.UserResponse `json:"user"`
	CreatedAt time.Time                `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string                   `json:"token"`
	User  *usermodels.UserResponse `json:"user"`
}
