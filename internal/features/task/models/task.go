package models

import "time"

const (
	TypeCopyPaste   = "copy_paste"
	TypeVisitReview = "visit_review"
	TypeSocialShare = "social_share"
)

type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Points        int       `json:"points"`
	EstimatedTime string    `json:"estimatedTime"`
	TargetURL     string    `json:"targetUrl"`
	Instructions  []string  `json:"instructions"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TaskCreate struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=copy_paste visit_review social_share"`
	Points        int      `json:"points" binding:"required,gt=0"`
	EstimatedTime string   `json:"estimatedTime" binding:"required"`
	TargetURL     string   `json:"targetUrl" binding:"required,url"`
	Instructions  []string `json:"instructions" binding:"required,min=1"`
}

// TaskUpdate patches an existing task; nil fields are left as is.
type TaskUpdate struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Type          *string   `json:"type,omitempty" binding:"omitempty,oneof=copy_paste visit_review social_share"`
	Points        *int      `json:"points,omitempty" binding:"omitempty,gt=0"`
	EstimatedTime *string   `json:"estimatedTime,omitempty"`
	TargetURL     *string   `json:"targetUrl,omitempty" binding:"omitempty,url"`
	Instructions  *[]string `json:"instructions,omitempty"`
	Active        *bool     `json:"active,omitempty"`
}
