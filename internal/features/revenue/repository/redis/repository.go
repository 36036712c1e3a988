package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"taskearn-backend/internal/features/revenue/models"
	"taskearn-backend/internal/features/revenue/repository"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefixAdViews = "adviews:user:"
	keyPrefixPayouts = "payouts:user:"
	keySnapshot      = "revenue:snapshot"
)

type adViewRepository struct {
	client *redis.Client
}

func NewAdViewRepository(client *redis.Client) repository.AdViewRepository {
	return &adViewRepository{client: client}
}

func makeAdViewsKey(userID string) string {
	return keyPrefixAdViews + userID
}

func (r *adViewRepository) Append(ctx context.Context, view *models.AdView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal ad view: %w", err)
	}

	return r.client.RPush(ctx, makeAdViewsKey(view.UserID), data).Err()
}

func (r *adViewRepository) ListByUser(ctx context.Context, userID string) ([]*models.AdView, error) {
	entries, err := r.client.LRange(ctx, makeAdViewsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	views := make([]*models.AdView, 0, len(entries))
	for _, entry := range entries {
		var view models.AdView
		if err := json.Unmarshal([]byte(entry), &view); err != nil {
			continue
		}
		views = append(views, &view)
	}

	return views, nil
}

func (r *adViewRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.LLen(ctx, makeAdViewsKey(userID)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type snapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) repository.SnapshotRepository {
	return &snapshotRepository{client: client}
}

func (r *snapshotRepository) Get(ctx context.Context) (*models.RevenueSnapshot, error) {
	data, err := r.client.Get(ctx, keySnapshot).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	var snapshot models.RevenueSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (r *snapshotRepository) Set(ctx context.Context, snapshot *models.RevenueSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return r.client.Set(ctx, keySnapshot, data, 0).Err()
}

type payoutRepository struct {
	client *redis.Client
}

func NewPayoutRepository(client *redis.Client) repository.PayoutRepository {
	return &payoutRepository{client: client}
}

func makePayoutsKey(userID string) string {
	return keyPrefixPayouts + userID
}

func (r *payoutRepository) Append(ctx context.Context, payout *models.PayoutRequest) error {
	data, err := json.Marshal(payout)
	if err != nil {
		return fmt.Errorf("failed to marshal payout request: %w", err)
	}

	return r.client.RPush(ctx, makePayoutsKey(payout.UserID), data).Err()
}

func (r *payoutRepository) ListByUser(ctx context.Context, userID string) ([]*models.PayoutRequest, error) {
	entries, err := r.client.LRange(ctx, makePayoutsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	payouts := make([]*models.PayoutRequest, 0, len(entries))
	for _, entry := range entries {
		var payout models.PayoutRequest
		if err := json.Unmarshal([]byte(entry), &payout); err != nil {
			continue
		}
		payouts = append(payouts, &payout)
	}

	return payouts, nil
}
