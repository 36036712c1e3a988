package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskearn-backend/internal/features/user/models"
	"taskearn-backend/internal/features/user/repository"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefixUser = "user:"
	// Email lookup index. The key uses the raw email string, so the
	// uniqueness it provides is case-sensitive.
	keyPrefixEmail = "user:email:"
)

type userRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func makeUserKey(id string) string {
	return keyPrefixUser + id
}

func makeEmailKey(email string) string {
	return keyPrefixEmail + email
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeUserKey(user.ID), data, 0)
	pipe.Set(ctx, makeEmailKey(user.Email), user.ID, 0)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	data, err := r.client.Get(ctx, makeUserKey(id)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	id, err := r.client.Get(ctx, makeEmailKey(email)).Result()
	if err == redis.Nil {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	stored, err := r.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}

	user.UpdatedAt = time.Now()

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeUserKey(user.ID), data, 0)
	if stored.Email != user.Email {
		pipe.Del(ctx, makeEmailKey(stored.Email))
		pipe.Set(ctx, makeEmailKey(user.Email), user.ID, 0)
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, makeUserKey(id))
	pipe.Del(ctx, makeEmailKey(user.Email))

	_, err = pipe.Exec(ctx)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	iter := r.client.Scan(ctx, 0, keyPrefixUser+"*", 0).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}

		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			// Index keys share the user: prefix and hold plain ids.
			continue
		}
		if user.ID == "" {
			continue
		}

		users = append(users, &user)
	}

	return users, iter.Err()
}
