package service

import (
	"context"
	"sort"
	"strings"
	"time"

	revenuemodels "taskearn-backend/internal/features/revenue/models"
	"taskearn-backend/internal/features/user/models"
	"taskearn-backend/internal/features/user/repository"

	"github.com/shopspring/decimal"
)

type UserService interface {
	ListAll(ctx context.Context) ([]*models.UserResponse, error)
	GetStats(ctx context.Context) (*models.UserStats, error)
	UpdateRole(ctx context.Context, id, role string) (*models.UserResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.UserResponse, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string, filter models.SearchFilter) ([]*models.UserResponse, error)
	UpdateProfile(ctx context.Context, id string, input *models.ProfileUpdate) (*models.UserResponse, error)

	// CreditCompletion records a finished task on the user record:
	// tasksCompleted+1 and the point value added to totalEarnings.
	// A missing user record is tolerated as a no-op.
	CreditCompletion(ctx context.Context, id string, points int) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) ListAll(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}

	return responses, nil
}

func (s *userService) GetStats(ctx context.Context) (*models.UserStats, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{TotalUsers: len(users)}
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	totalEarnings := decimal.Zero

	for _, user := range users {
		switch user.Status {
		case models.StatusActive:
			stats.ActiveUsers++
		case models.StatusSuspended:
			stats.SuspendedUsers++
		case models.StatusInactive:
			stats.InactiveUsers++
		}

		switch user.Role {
		case models.RoleAdmin:
			stats.AdminUsers++
		case models.RoleModerator:
			stats.ModeratorUsers++
		case models.RoleUser:
			stats.RegularUsers++
		}

		if user.JoinedAt.After(thirtyDaysAgo) {
			stats.NewUsersThisMonth++
		}

		totalEarnings = totalEarnings.Add(decimal.NewFromFloat(user.TotalEarnings))
		stats.TotalTasksCompleted += user.TasksCompleted
	}

	stats.TotalEarnings = totalEarnings.InexactFloat64()
	return stats, nil
}

func (s *userService) UpdateRole(ctx context.Context, id, role string) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Role = role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *userService) UpdateStatus(ctx context.Context, id, status string) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.Status = status
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrUserNotFound {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) Search(ctx context.Context, term string, filter models.SearchFilter) ([]*models.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)

	matched := make([]*models.User, 0, len(users))
	for _, user := range users {
		matchesTerm := term == "" ||
			strings.Contains(strings.ToLower(user.Name), term) ||
			strings.Contains(strings.ToLower(user.Email), term)
		matchesRole := filter.Role == "" || user.Role == filter.Role
		matchesStatus := filter.Status == "" || user.Status == filter.Status

		if matchesTerm && matchesRole && matchesStatus {
			matched = append(matched, user)
		}
	}

	// Newest first.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].JoinedAt.After(matched[j].JoinedAt)
	})

	responses := make([]*models.UserResponse, 0, len(matched))
	for _, user := range matched {
		responses = append(responses, ToUserResponse(user))
	}

	return responses, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, input *models.ProfileUpdate) (*models.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.repo.GetByEmail(ctx, *input.Email); err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = *input.Email
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *userService) CreditCompletion(ctx context.Context, id string, points int) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil
		}
		return err
	}

	earned := decimal.NewFromInt(int64(points)).Mul(revenuemodels.PointValue)
	user.TotalEarnings = decimal.NewFromFloat(user.TotalEarnings).Add(earned).InexactFloat64()
	user.TasksCompleted++

	return s.repo.Update(ctx, user)
}

// ToUserResponse strips the password from a stored record.
func ToUserResponse(user *models.User) *models.UserResponse {
	return &models.UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Status:         user.Status,
		JoinedAt:       user.JoinedAt,
		LastLoginAt:    user.LastLoginAt,
		UpdatedAt:      user.UpdatedAt,
		TotalEarnings:  user.TotalEarnings,
		TasksCompleted: user.TasksCompleted,
	}
}
