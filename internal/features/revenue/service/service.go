package service

import (
	"context"
	"math/rand"
	"time"

	"taskearn-backend/internal/features/revenue/models"
	"taskearn-backend/internal/features/revenue/repository"
	taskrepository "taskearn-backend/internal/features/task/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const payoutStatusPending = "pending"

type RevenueService interface {
	GetUserEarnings(ctx context.Context, userID string) (*models.EarningsSummary, error)
	GetRevenueStats(ctx context.Context, userID string) (*models.RevenueStats, error)
	TrackAdView(ctx context.Context, userID string, input *models.AdViewCreate) (*models.AdView, error)
	RequestPayout(ctx context.Context, userID string, input *models.PayoutCreate) (*models.PayoutRequest, error)
	ListPayouts(ctx context.Context, userID string) ([]*models.PayoutRequest, error)
}

type revenueService struct {
	completions taskrepository.CompletionRepository
	adViews     repository.AdViewRepository
	snapshot    repository.SnapshotRepository
	payouts     repository.PayoutRepository
}

func NewRevenueService(
	completions taskrepository.CompletionRepository,
	adViews repository.AdViewRepository,
	snapshot repository.SnapshotRepository,
	payouts repository.PayoutRepository,
) RevenueService {
	return &revenueService{
		completions: completions,
		adViews:     adViews,
		snapshot:    snapshot,
		payouts:     payouts,
	}
}

func (s *revenueService) GetUserEarnings(ctx context.Context, userID string) (*models.EarningsSummary, error) {
	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalPoints := 0
	for _, completion := range completions {
		totalPoints += completion.Points
	}

	adViewsCount, err := s.adViews.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	taskEarnings := decimal.NewFromInt(int64(totalPoints)).Mul(models.PointValue)
	adRevenue := decimal.NewFromInt(int64(adViewsCount)).Mul(models.AdViewValue)
	totalEarnings := taskEarnings.Add(adRevenue)

	// Threshold gate, not a running balance: prior payout requests are
	// never netted against it.
	pendingPayout := decimal.Zero
	if totalEarnings.GreaterThan(models.PayoutThreshold) {
		pendingPayout = totalEarnings
	}

	return &models.EarningsSummary{
		TotalEarnings:   totalEarnings.InexactFloat64(),
		TaskEarnings:    taskEarnings.InexactFloat64(),
		AdRevenue:       adRevenue.InexactFloat64(),
		TotalPoints:     totalPoints,
		TasksCompleted:  len(completions),
		AdViewsCount:    adViewsCount,
		PendingPayout:   pendingPayout.InexactFloat64(),
		PayoutThreshold: models.PayoutThreshold.InexactFloat64(),
		EarningsHistory: generateEarningsHistory(),
	}, nil
}

func (s *revenueService) GetRevenueStats(ctx context.Context, userID string) (*models.RevenueStats, error) {
	snapshot, err := s.snapshot.Get(ctx)
	if err != nil {
		if err != repository.ErrSnapshotNotFound {
			return nil, err
		}
		snapshot = &models.RevenueSnapshot{}
	}

	earnings, err := s.GetUserEarnings(ctx, userID)
	if err != nil {
		return nil, err
	}

	share := "0.00"
	if snapshot.TotalRevenue > 0 {
		share = decimal.NewFromFloat(earnings.TotalEarnings).
			Div(decimal.NewFromFloat(snapshot.TotalRevenue)).
			Mul(decimal.NewFromInt(100)).
			StringFixed(2)
	}

	return &models.RevenueStats{
		RevenueSnapshot:     *snapshot,
		UserShare:           earnings.TotalEarnings,
		UserSharePercentage: share,
	}, nil
}

func (s *revenueService) TrackAdView(ctx context.Context, userID string, input *models.AdViewCreate) (*models.AdView, error) {
	view := &models.AdView{
		ID:        uuid.New().String(),
		UserID:    userID,
		AdUnitID:  input.AdUnitID,
		PageURL:   input.PageURL,
		Timestamp: time.Now(),
		Revenue:   models.AdViewValue.InexactFloat64(),
	}

	if err := s.adViews.Append(ctx, view); err != nil {
		return nil, err
	}

	return view, nil
}

func (s *revenueService) RequestPayout(ctx context.Context, userID string, input *models.PayoutCreate) (*models.PayoutRequest, error) {
	payout := &models.PayoutRequest{
		ID:            uuid.New().String(),
		UserID:        userID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        payoutStatusPending,
		RequestedAt:   time.Now(),
	}

	if err := s.payouts.Append(ctx, payout); err != nil {
		return nil, err
	}

	return payout, nil
}

func (s *revenueService) ListPayouts(ctx context.Context, userID string) ([]*models.PayoutRequest, error) {
	return s.payouts.ListByUser(ctx, userID)
}

// generateEarningsHistory builds the 7-day dashboard series. The values
// are synthetic filler, not derived from the completion or ad-view logs.
func generateEarningsHistory() []models.EarningsDay {
	history := make([]models.EarningsDay, 0, 7)
	today := time.Now()

	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		history = append(history, models.EarningsDay{
			Date:     day.Format("2006-01-02"),
			Earnings: rand.Float64()*5 + 1,
			Tasks:    rand.Intn(10) + 1,
			AdViews:  rand.Intn(20) + 5,
		})
	}

	return history
}
