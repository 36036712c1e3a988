package repository

import (
	"context"
	"errors"
	"time"

	"taskearn-backend/internal/features/auth/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}
