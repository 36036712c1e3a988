package models

import "time"

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"

	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusInactive  = "inactive"
)

// User is the stored record. The password travels with the blob in the
// store and must never leave a service; every outward shape is UserResponse.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"password,omitempty"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	JoinedAt       time.Time `json:"joinedAt"`
	LastLoginAt    time.Time `json:"lastLoginAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
	TotalEarnings  float64   `json:"totalEarnings"`
	TasksCompleted int       `json:"tasksCompleted"`
}

// UserResponse is the password-stripped projection of a User.
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	JoinedAt       time.Time `json:"joinedAt"`
	LastLoginAt    time.Time `json:"lastLoginAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
	TotalEarnings  float64   `json:"totalEarnings"`
	TasksCompleted int       `json:"tasksCompleted"`
}

type RoleUpdate struct {
	Role string `json:"role" binding:"required,oneof=user moderator admin"`
}

type StatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=active suspended inactive"`
}

// ProfileUpdate patches the caller's own record; nil fields are left as is.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// SearchFilter narrows a search to an exact role and/or status.
type SearchFilter struct {
	Role   string `form:"role"`
	Status string `form:"status"`
}

// UserStats is the aggregate view for the admin console.
type UserStats struct {
	TotalUsers          int     `json:"totalUsers"`
	ActiveUsers         int     `json:"activeUsers"`
	SuspendedUsers      int     `json:"suspendedUsers"`
	InactiveUsers       int     `json:"inactiveUsers"`
	AdminUsers          int     `json:"adminUsers"`
	ModeratorUsers      int     `json:"moderatorUsers"`
	RegularUsers        int     `json:"regularUsers"`
	NewUsersThisMonth   int     `json:"newUsersThisMonth"`
	TotalEarnings       float64 `json:"totalEarnings"`
	TotalTasksCompleted int     `json:"totalTasksCompleted"`
}
