package service

import (
	"context"
	"testing"
	"time"

	"taskearn-backend/internal/features/user/models"
	"taskearn-backend/internal/features/user/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		out = append(out, &copied)
	}
	return out, nil
}

func seedUsers(t *testing.T, repo *memUserRepo) {
	t.Helper()
	now := time.Now()
	defaults := []*models.User{
		{
			ID:             "admin",
			Name:           "Admin User",
			Email:          "admin@taskearn.com",
			Password:       "admin123",
			Role:           models.RoleAdmin,
			Status:         models.StatusActive,
			JoinedAt:       now.AddDate(0, 0, -40),
			TotalEarnings:  150.75,
			TasksCompleted: 45,
		},
		{
			ID:             "demo",
			Name:           "Demo User",
			Email:          "demo@taskearn.com",
			Password:       "demo123",
			Role:           models.RoleUser,
			Status:         models.StatusActive,
			JoinedAt:       now.AddDate(0, 0, -15),
			TotalEarnings:  89.50,
			TasksCompleted: 23,
		},
		{
			ID:             "mod",
			Name:           "Moderator User",
			Email:          "mod@taskearn.com",
			Password:       "mod123",
			Role:           models.RoleModerator,
			Status:         models.StatusSuspended,
			JoinedAt:       now.AddDate(0, 0, -20),
			TotalEarnings:  125.25,
			TasksCompleted: 67,
		},
	}
	for _, user := range defaults {
		require.NoError(t, repo.Create(context.Background(), user))
	}
}

func TestGetStats(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, 1, stats.SuspendedUsers)
	assert.Equal(t, 0, stats.InactiveUsers)
	assert.Equal(t, 1, stats.AdminUsers)
	assert.Equal(t, 1, stats.ModeratorUsers)
	assert.Equal(t, 1, stats.RegularUsers)
	// Only the admin joined more than 30 days ago.
	assert.Equal(t, 2, stats.NewUsersThisMonth)
	assert.InDelta(t, 365.50, stats.TotalEarnings, 1e-9)
	assert.Equal(t, 135, stats.TotalTasksCompleted)
}

func TestSearch(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)
	ctx := context.Background()

	tests := []struct {
		name   string
		term   string
		filter models.SearchFilter
		want   []string
	}{
		{name: "term matches name and email", term: "mod", want: []string{"mod"}},
		{name: "term is case-insensitive", term: "DEMO", want: []string{"demo"}},
		{name: "role filter", filter: models.SearchFilter{Role: models.RoleAdmin}, want: []string{"admin"}},
		{name: "status filter", filter: models.SearchFilter{Status: models.StatusSuspended}, want: []string{"mod"}},
		{name: "term and role must both match", term: "mod", filter: models.SearchFilter{Role: models.RoleUser}, want: []string{}},
		{name: "empty search returns all newest first", want: []string{"demo", "mod", "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(ctx, tt.term, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(results))
			for _, user := range results {
				ids = append(ids, user.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUpdateRoleAndStatus(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateRole(ctx, "demo", models.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, updated.Role)

	updated, err = svc.UpdateStatus(ctx, "demo", models.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, updated.Status)

	_, err = svc.UpdateRole(ctx, "missing", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateStatus(ctx, "missing", models.StatusActive)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "demo"))

	_, err := repo.GetByID(ctx, "demo")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "demo"), ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)
	ctx := context.Background()

	name := "Renamed User"
	updated, err := svc.UpdateProfile(ctx, "demo", &models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", updated.Name)
	assert.Equal(t, "demo@taskearn.com", updated.Email)

	taken := "admin@taskearn.com"
	_, err = svc.UpdateProfile(ctx, "demo", &models.ProfileUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Re-submitting the current email is not a conflict.
	own := "demo@taskearn.com"
	_, err = svc.UpdateProfile(ctx, "demo", &models.ProfileUpdate{Email: &own})
	require.NoError(t, err)

	fresh := "new@taskearn.com"
	updated, err = svc.UpdateProfile(ctx, "demo", &models.ProfileUpdate{Email: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "new@taskearn.com", updated.Email)
}

func TestCreditCompletion(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.CreditCompletion(ctx, "demo", 15))

	user, err := repo.GetByID(ctx, "demo")
	require.NoError(t, err)
	assert.InDelta(t, 89.65, user.TotalEarnings, 1e-9)
	assert.Equal(t, 24, user.TasksCompleted)

	// A missing record is a no-op, not an error.
	require.NoError(t, svc.CreditCompletion(ctx, "ghost", 15))
}

func TestListAllStripsPassword(t *testing.T) {
	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo)

	users, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)

	for _, user := range users {
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.Email)
	}
}
