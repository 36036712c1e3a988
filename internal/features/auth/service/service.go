package service

import (
	"context"
	"time"

	"taskearn-backend/internal/features/auth/models"
	"taskearn-backend/internal/features/auth/repository"
	usermodels "taskearn-backend/internal/features/user/models"
	userrepository "taskearn-backend/internal/features/user/repository"
	userservice "taskearn-backend/internal/features/user/service"

	"github.com/google/uuid"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*usermodels.UserResponse, error)
}

type authService struct {
	users      userrepository.UserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(users userrepository.UserRepository, sessions repository.SessionRepository, sessionTTL time.Duration) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Plaintext comparison: this is a mock identity layer, not real auth.
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	user.LastLoginAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	// Exact-match lookup, so the uniqueness check is case-sensitive.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	user := &usermodels.User{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		Password:    password,
		Role:        usermodels.RoleUser,
		Status:      usermodels.StatusActive,
		JoinedAt:    now,
		LastLoginAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Implicit login after registration.
	return s.openSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*usermodels.UserResponse, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, ErrNoSession
	}

	return session.User, nil
}

func (s *authService) openSession(ctx context.Context, user *usermodels.User) (*models.AuthResponse, error) {
	session := &models.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		User:      userservice.ToUserResponse(user),
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: session.Token,
		User:  session.User,
	}, nil
}
