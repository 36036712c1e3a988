package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"taskearn-backend/internal/features/task/models"
	"taskearn-backend/internal/features/task/repository"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefixTask = "task:"
	// Completion keys embed the (task, user) pair, so SETNX enforces
	// the one-completion-per-pair invariant atomically.
	keyPrefixCompletion = "completion:"
)

type taskRepository struct {
	client *redis.Client
}

func NewTaskRepository(client *redis.Client) repository.TaskRepository {
	return &taskRepository{client: client}
}

func makeTaskKey(id string) string {
	return keyPrefixTask + id
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	return r.client.Set(ctx, makeTaskKey(task.ID), data, 0).Err()
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	data, err := r.client.Get(ctx, makeTaskKey(id)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	var task models.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.Create(ctx, task)
}

func (r *taskRepository) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	iter := r.client.Scan(ctx, 0, keyPrefixTask+"*", 0).Iterator()

	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}

		var task models.Task
		if err := json.Unmarshal(data, &task); err != nil {
			continue
		}

		tasks = append(tasks, &task)
	}

	return tasks, iter.Err()
}

type completionRepository struct {
	client *redis.Client
}

func NewCompletionRepository(client *redis.Client) repository.CompletionRepository {
	return &completionRepository{client: client}
}

func makeCompletionKey(taskID, userID string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefixCompletion, taskID, userID)
}

func (r *completionRepository) Insert(ctx context.Context, completion *models.Completion) error {
	data, err := json.Marshal(completion)
	if err != nil {
		return fmt.Errorf("failed to marshal completion: %w", err)
	}

	ok, err := r.client.SetNX(ctx, makeCompletionKey(completion.TaskID, completion.UserID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrDuplicateCompletion
	}

	return nil
}

func (r *completionRepository) ListByUser(ctx context.Context, userID string) ([]*models.Completion, error) {
	var completions []*models.Completion
	iter := r.client.Scan(ctx, 0, keyPrefixCompletion+"*", 0).Iterator()

	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}

		var completion models.Completion
		if err := json.Unmarshal(data, &completion); err != nil {
			continue
		}

		if completion.UserID == userID {
			completions = append(completions, &completion)
		}
	}

	return completions, iter.Err()
}
