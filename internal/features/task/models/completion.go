package models

import "time"

const CompletionStatusCompleted = "completed"

// Completion records that a user finished a task. At most one exists per
// (userId, taskId) pair; the record is created once and never mutated.
type Completion struct {
	ID          string                 `json:"id"`
	TaskID      string                 `json:"taskId"`
	UserID      string                 `json:"userId"`
	Points      int                    `json:"points"`
	CompletedAt time.Time              `json:"completedAt"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Status      string                 `json:"status"`
}

// CompletionCreate carries the opaque per-type submission payload.
type CompletionCreate struct {
	Data map[string]interface{} `json:"data"`
}
