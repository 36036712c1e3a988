package repository

import (
	"context"
	"errors"

	"taskearn-backend/internal/features/task/models"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	// ErrDuplicateCompletion is returned when a completion for the same
	// (task, user) pair already exists.
	ErrDuplicateCompletion = errors.New("completion already exists")
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	List(ctx context.Context) ([]*models.Task, error)
}

type CompletionRepository interface {
	// Insert stores the completion if and only if none exists for the
	// same (taskId, userId) pair.
	Insert(ctx context.Context, completion *models.Completion) error
	ListByUser(ctx context.Context, userID string) ([]*models.Completion, error)
}
