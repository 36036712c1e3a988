package service

import (
	"context"
	"time"

	"taskearn-backend/internal/common/logger"
	"taskearn-backend/internal/features/task/models"
	"taskearn-backend/internal/features/task/repository"
	userservice "taskearn-backend/internal/features/user/service"

	"github.com/google/uuid"
)

type TaskService interface {
	ListActive(ctx context.Context) ([]*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, input *models.TaskCreate) (*models.Task, error)
	Update(ctx context.Context, id string, input *models.TaskUpdate) (*models.Task, error)
	RecordCompletion(ctx context.Context, taskID, userID string, submission map[string]interface{}) (*models.Completion, error)
	ListUserCompletions(ctx context.Context, userID string) ([]*models.Completion, error)
}

type taskService struct {
	repo        repository.TaskRepository
	completions repository.CompletionRepository
	users       userservice.UserService
}

func NewTaskService(
	repo repository.TaskRepository,
	completions repository.CompletionRepository,
	users userservice.UserService,
) TaskService {
	return &taskService{
		repo:        repo,
		completions: completions,
		users:       users,
	}
}

func (s *taskService) ListActive(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Active {
			active = append(active, task)
		}
	}

	return active, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func (s *taskService) Create(ctx context.Context, input *models.TaskCreate) (*models.Task, error) {
	task := &models.Task{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Description:   input.Description,
		Type:          input.Type,
		Points:        input.Points,
		EstimatedTime: input.EstimatedTime,
		TargetURL:     input.TargetURL,
		Instructions:  input.Instructions,
		Active:        true,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Update(ctx context.Context, id string, input *models.TaskUpdate) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Type != nil {
		task.Type = *input.Type
	}
	if input.Points != nil {
		task.Points = *input.Points
	}
	if input.EstimatedTime != nil {
		task.EstimatedTime = *input.EstimatedTime
	}
	if input.TargetURL != nil {
		task.TargetURL = *input.TargetURL
	}
	if input.Instructions != nil {
		task.Instructions = *input.Instructions
	}
	if input.Active != nil {
		task.Active = *input.Active
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) RecordCompletion(ctx context.Context, taskID, userID string, submission map[string]interface{}) (*models.Completion, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	completion := &models.Completion{
		ID:          uuid.New().String(),
		TaskID:      taskID,
		UserID:      userID,
		Points:      task.Points,
		CompletedAt: time.Now(),
		Data:        submission,
		Status:      models.CompletionStatusCompleted,
	}

	if err := s.completions.Insert(ctx, completion); err != nil {
		if err == repository.ErrDuplicateCompletion {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	// Credit the user record. A missing record is tolerated; the
	// completion itself stands either way.
	if err := s.users.CreditCompletion(ctx, userID, task.Points); err != nil {
		logger.Warn().
			Str("user_id", userID).
			Str("task_id", taskID).
			Err(err).
			Msg("Failed to credit completion to user record")
	}

	return completion, nil
}

func (s *taskService) ListUserCompletions(ctx context.Context, userID string) ([]*models.Completion, error) {
	return s.completions.ListByUser(ctx, userID)
}
