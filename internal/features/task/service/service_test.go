package service

import (
	"context"
	"testing"

	"taskearn-backend/internal/features/task/models"
	"taskearn-backend/internal/features/task/repository"
	usermodels "taskearn-backend/internal/features/user/models"
	userrepository "taskearn-backend/internal/features/user/repository"
	userservice "taskearn-backend/internal/features/user/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTaskRepo struct {
	tasks map[string]*models.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]*models.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, task *models.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *models.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) List(_ context.Context) ([]*models.Task, error) {
	out := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		copied := *task
		out = append(out, &copied)
	}
	return out, nil
}

type memCompletionRepo struct {
	completions []*models.Completion
	seen        map[string]struct{}
}

func newMemCompletionRepo() *memCompletionRepo {
	return &memCompletionRepo{seen: make(map[string]struct{})}
}

func (r *memCompletionRepo) Insert(_ context.Context, completion *models.Completion) error {
	key := completion.TaskID + ":" + completion.UserID
	if _, ok := r.seen[key]; ok {
		return repository.ErrDuplicateCompletion
	}
	r.seen[key] = struct{}{}
	copied := *completion
	r.completions = append(r.completions, &copied)
	return nil
}

func (r *memCompletionRepo) ListByUser(_ context.Context, userID string) ([]*models.Completion, error) {
	out := make([]*models.Completion, 0)
	for _, completion := range r.completions {
		if completion.UserID == userID {
			copied := *completion
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memUserRepo struct {
	users map[string]*usermodels.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*usermodels.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *usermodels.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*usermodels.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, userrepository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*usermodels.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, userrepository.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *usermodels.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return userrepository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return userrepository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*usermodels.User, error) {
	out := make([]*usermodels.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func newTestTaskService() (TaskService, *memTaskRepo, *memCompletionRepo, *memUserRepo) {
	tasks := newMemTaskRepo()
	completions := newMemCompletionRepo()
	users := newMemUserRepo()
	svc := NewTaskService(tasks, completions, userservice.NewUserService(users))
	return svc, tasks, completions, users
}

func seedTask(t *testing.T, repo *memTaskRepo, id string, points int, active bool) {
	t.Helper()
	err := repo.Create(context.Background(), &models.Task{
		ID:     id,
		Title:  "Task " + id,
		Type:   models.TypeCopyPaste,
		Points: points,
		Active: active,
	})
	require.NoError(t, err)
}

func TestListActive(t *testing.T) {
	svc, tasks, _, _ := newTestTaskService()
	ctx := context.Background()

	seedTask(t, tasks, "t1", 10, true)
	seedTask(t, tasks, "t2", 15, false)
	seedTask(t, tasks, "t3", 20, true)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, task := range active {
		assert.True(t, task.Active)
		assert.NotEqual(t, "t2", task.ID)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	svc, _, _, _ := newTestTaskService()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCreateTask(t *testing.T) {
	svc, _, _, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, &models.TaskCreate{
		Title:         "Copy Product URL",
		Description:   "Copy the product URL and paste it in the form",
		Type:          models.TypeCopyPaste,
		Points:        10,
		EstimatedTime: "2 minutes",
		TargetURL:     "https://example.com/product/123",
		Instructions:  []string{"Visit the page", "Copy the URL"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.True(t, task.Active)
	assert.False(t, task.CreatedAt.IsZero())

	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Points)
}

func TestUpdateTask(t *testing.T) {
	svc, tasks, _, _ := newTestTaskService()
	ctx := context.Background()

	seedTask(t, tasks, "t1", 10, true)

	points := 25
	inactive := false
	updated, err := svc.Update(ctx, "t1", &models.TaskUpdate{
		Points: &points,
		Active: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, updated.Points)
	assert.False(t, updated.Active)
	// Untouched fields keep their values.
	assert.Equal(t, "Task t1", updated.Title)

	_, err = svc.Update(ctx, "missing", &models.TaskUpdate{Points: &points})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRecordCompletionCreditsUser(t *testing.T) {
	svc, tasks, _, users := newTestTaskService()
	ctx := context.Background()

	seedTask(t, tasks, "t1", 20, true)
	require.NoError(t, users.Create(ctx, &usermodels.User{ID: "u1", Email: "u1@taskearn.com"}))

	completion, err := svc.RecordCompletion(ctx, "t1", "u1", map[string]interface{}{"url": "https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, "t1", completion.TaskID)
	assert.Equal(t, "u1", completion.UserID)
	assert.Equal(t, 20, completion.Points)
	assert.Equal(t, models.CompletionStatusCompleted, completion.Status)

	user, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 0.20, user.TotalEarnings, 1e-9)
	assert.Equal(t, 1, user.TasksCompleted)
}

func TestRecordCompletionExactlyOnce(t *testing.T) {
	svc, tasks, _, users := newTestTaskService()
	ctx := context.Background()

	seedTask(t, tasks, "t1", 20, true)
	require.NoError(t, users.Create(ctx, &usermodels.User{ID: "u1", Email: "u1@taskearn.com"}))

	_, err := svc.RecordCompletion(ctx, "t1", "u1", nil)
	require.NoError(t, err)

	_, err = svc.RecordCompletion(ctx, "t1", "u1", nil)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	// The rejected attempt leaves the user record untouched.
	user, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 0.20, user.TotalEarnings, 1e-9)
	assert.Equal(t, 1, user.TasksCompleted)

	completions, err := svc.ListUserCompletions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, completions, 1)
}

func TestRecordCompletionUnknownTask(t *testing.T) {
	svc, _, _, _ := newTestTaskService()

	_, err := svc.RecordCompletion(context.Background(), "missing", "u1", nil)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRecordCompletionMissingUser(t *testing.T) {
	svc, tasks, _, _ := newTestTaskService()
	ctx := context.Background()

	seedTask(t, tasks, "t1", 20, true)

	// The completion stands even when no user record can be credited.
	completion, err := svc.RecordCompletion(ctx, "t1", "ghost", nil)
	require.NoError(t, err)
	assert.Equal(t, 20, completion.Points)

	completions, err := svc.ListUserCompletions(ctx, "ghost")
	require.NoError(t, err)
	assert.Len(t, completions, 1)
}

func TestRecordCompletionDifferentUsers(t *testing.T) {
	svc, tasks, _, users := newTestTaskService()
	ctx := context.Background()

	seedTask(t, tasks, "t1", 10, true)
	require.NoError(t, users.Create(ctx, &usermodels.User{ID: "u1", Email: "u1@taskearn.com"}))
	require.NoError(t, users.Create(ctx, &usermodels.User{ID: "u2", Email: "u2@taskearn.com"}))

	_, err := svc.RecordCompletion(ctx, "t1", "u1", nil)
	require.NoError(t, err)

	// Exclusivity is per user, not per task.
	_, err = svc.RecordCompletion(ctx, "t1", "u2", nil)
	require.NoError(t, err)
}
