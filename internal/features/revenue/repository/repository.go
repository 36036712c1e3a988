package repository

import (
	"context"
	"errors"

	"taskearn-backend/internal/features/revenue/models"
)

var ErrSnapshotNotFound = errors.New("revenue snapshot not found")

// AdViewRepository is the append-only impression log.
type AdViewRepository interface {
	Append(ctx context.Context, view *models.AdView) error
	ListByUser(ctx context.Context, userID string) ([]*models.AdView, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

// SnapshotRepository holds the single platform-wide revenue record.
type SnapshotRepository interface {
	Get(ctx context.Context) (*models.RevenueSnapshot, error)
	Set(ctx context.Context, snapshot *models.RevenueSnapshot) error
}

// PayoutRepository is the append-only payout request log.
type PayoutRepository interface {
	Append(ctx context.Context, payout *models.PayoutRequest) error
	ListByUser(ctx context.Context, userID string) ([]*models.PayoutRequest, error)
}
