package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskearn-backend/internal/features/auth/models"
	"taskearn-backend/internal/features/auth/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefixSession = "session:"

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{
		client: client,
	}
}

func makeSessionKey(token string) string {
	return keyPrefixSession + token
}

func (r *sessionRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return r.client.Set(ctx, makeSessionKey(session.Token), data, ttl).Err()
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	data, err := r.client.Get(ctx, makeSessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, makeSessionKey(token)).Err()
}
