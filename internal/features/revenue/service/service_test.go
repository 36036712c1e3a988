package service

import (
	"context"
	"testing"

	"taskearn-backend/internal/features/revenue/models"
	"taskearn-backend/internal/features/revenue/repository"
	taskmodels "taskearn-backend/internal/features/task/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCompletionRepo struct {
	completions []*taskmodels.Completion
}

func (r *memCompletionRepo) Insert(_ context.Context, completion *taskmodels.Completion) error {
	copied := *completion
	r.completions = append(r.completions, &copied)
	return nil
}

func (r *memCompletionRepo) ListByUser(_ context.Context, userID string) ([]*taskmodels.Completion, error) {
	out := make([]*taskmodels.Completion, 0)
	for _, completion := range r.completions {
		if completion.UserID == userID {
			copied := *completion
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memAdViewRepo struct {
	views []*models.AdView
}

func (r *memAdViewRepo) Append(_ context.Context, view *models.AdView) error {
	copied := *view
	r.views = append(r.views, &copied)
	return nil
}

func (r *memAdViewRepo) ListByUser(_ context.Context, userID string) ([]*models.AdView, error) {
	out := make([]*models.AdView, 0)
	for _, view := range r.views {
		if view.UserID == userID {
			copied := *view
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memAdViewRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	views, err := r.ListByUser(ctx, userID)
	return len(views), err
}

type memSnapshotRepo struct {
	snapshot *models.RevenueSnapshot
}

func (r *memSnapshotRepo) Get(_ context.Context) (*models.RevenueSnapshot, error) {
	if r.snapshot == nil {
		return nil, repository.ErrSnapshotNotFound
	}
	copied := *r.snapshot
	return &copied, nil
}

func (r *memSnapshotRepo) Set(_ context.Context, snapshot *models.RevenueSnapshot) error {
	copied := *snapshot
	r.snapshot = &copied
	return nil
}

type memPayoutRepo struct {
	payouts []*models.PayoutRequest
}

func (r *memPayoutRepo) Append(_ context.Context, payout *models.PayoutRequest) error {
	copied := *payout
	r.payouts = append(r.payouts, &copied)
	return nil
}

func (r *memPayoutRepo) ListByUser(_ context.Context, userID string) ([]*models.PayoutRequest, error) {
	out := make([]*models.PayoutRequest, 0)
	for _, payout := range r.payouts {
		if payout.UserID == userID {
			copied := *payout
			out = append(out, &copied)
		}
	}
	return out, nil
}

func newTestRevenueService() (RevenueService, *memCompletionRepo, *memAdViewRepo, *memSnapshotRepo, *memPayoutRepo) {
	completions := &memCompletionRepo{}
	adViews := &memAdViewRepo{}
	snapshot := &memSnapshotRepo{}
	payouts := &memPayoutRepo{}
	return NewRevenueService(completions, adViews, snapshot, payouts), completions, adViews, snapshot, payouts
}

func addCompletion(t *testing.T, repo *memCompletionRepo, userID string, points int) {
	t.Helper()
	err := repo.Insert(context.Background(), &taskmodels.Completion{
		ID:     "c" + userID,
		TaskID: "t1",
		UserID: userID,
		Points: points,
		Status: taskmodels.CompletionStatusCompleted,
	})
	require.NoError(t, err)
}

func addAdViews(t *testing.T, repo *memAdViewRepo, userID string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		err := repo.Append(context.Background(), &models.AdView{UserID: userID})
		require.NoError(t, err)
	}
}

func TestGetUserEarnings(t *testing.T) {
	svc, completions, adViews, _, _ := newTestRevenueService()
	ctx := context.Background()

	// 20 points at $0.01 plus 3 views at $0.05.
	addCompletion(t, completions, "u1", 20)
	addAdViews(t, adViews, "u1", 3)

	earnings, err := svc.GetUserEarnings(ctx, "u1")
	require.NoError(t, err)

	assert.InDelta(t, 0.20, earnings.TaskEarnings, 1e-9)
	assert.InDelta(t, 0.15, earnings.AdRevenue, 1e-9)
	assert.InDelta(t, 0.35, earnings.TotalEarnings, 1e-9)
	assert.Equal(t, 20, earnings.TotalPoints)
	assert.Equal(t, 1, earnings.TasksCompleted)
	assert.Equal(t, 3, earnings.AdViewsCount)
	assert.InDelta(t, 0, earnings.PendingPayout, 1e-9)
	assert.InDelta(t, 10, earnings.PayoutThreshold, 1e-9)
	assert.Len(t, earnings.EarningsHistory, 7)
}

func TestGetUserEarningsEmpty(t *testing.T) {
	svc, _, _, _, _ := newTestRevenueService()

	earnings, err := svc.GetUserEarnings(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Zero(t, earnings.TotalEarnings)
	assert.Zero(t, earnings.TotalPoints)
	assert.Zero(t, earnings.AdViewsCount)
	assert.Len(t, earnings.EarningsHistory, 7)
}

func TestPendingPayoutThreshold(t *testing.T) {
	tests := []struct {
		name    string
		points  int
		pending float64
	}{
		{name: "below threshold", points: 500, pending: 0},
		{name: "exactly at threshold", points: 1000, pending: 0},
		{name: "above threshold", points: 1100, pending: 11.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, completions, _, _, _ := newTestRevenueService()
			addCompletion(t, completions, "u1", tt.points)

			earnings, err := svc.GetUserEarnings(context.Background(), "u1")
			require.NoError(t, err)
			assert.InDelta(t, tt.pending, earnings.PendingPayout, 1e-9)
		})
	}
}

func TestGetRevenueStats(t *testing.T) {
	svc, completions, _, snapshot, _ := newTestRevenueService()
	ctx := context.Background()

	require.NoError(t, snapshot.Set(ctx, &models.RevenueSnapshot{
		TotalRevenue:   1250.75,
		TotalPageViews: 15420,
		TotalAdClicks:  890,
		AverageRPM:     4.32,
	}))
	// $12.51 of task earnings against $1250.75 platform revenue.
	addCompletion(t, completions, "u1", 1251)

	stats, err := svc.GetRevenueStats(ctx, "u1")
	require.NoError(t, err)

	assert.InDelta(t, 1250.75, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 15420, stats.TotalPageViews)
	assert.InDelta(t, 12.51, stats.UserShare, 1e-9)
	assert.Equal(t, "1.00", stats.UserSharePercentage)
}

func TestGetRevenueStatsNoSnapshot(t *testing.T) {
	svc, completions, _, _, _ := newTestRevenueService()
	addCompletion(t, completions, "u1", 20)

	stats, err := svc.GetRevenueStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRevenue)
	assert.InDelta(t, 0.20, stats.UserShare, 1e-9)
	assert.Equal(t, "0.00", stats.UserSharePercentage)
}

func TestTrackAdView(t *testing.T) {
	svc, _, adViews, _, _ := newTestRevenueService()
	ctx := context.Background()

	view, err := svc.TrackAdView(ctx, "u1", &models.AdViewCreate{
		AdUnitID: "sidebar-1",
		PageURL:  "/tasks",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "u1", view.UserID)
	assert.Equal(t, "sidebar-1", view.AdUnitID)
	assert.InDelta(t, 0.05, view.Revenue, 1e-9)
	assert.False(t, view.Timestamp.IsZero())

	// No dedup: a repeated view of the same unit is a second record.
	_, err = svc.TrackAdView(ctx, "u1", &models.AdViewCreate{
		AdUnitID: "sidebar-1",
		PageURL:  "/tasks",
	})
	require.NoError(t, err)

	count, err := adViews.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRequestPayout(t *testing.T) {
	svc, _, _, _, _ := newTestRevenueService()
	ctx := context.Background()

	payout, err := svc.RequestPayout(ctx, "u1", &models.PayoutCreate{
		Amount:        12.50,
		PaymentMethod: "paypal",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, payout.ID)
	assert.Equal(t, "u1", payout.UserID)
	assert.InDelta(t, 12.50, payout.Amount, 1e-9)
	assert.Equal(t, "pending", payout.Status)
	assert.False(t, payout.RequestedAt.IsZero())

	payouts, err := svc.ListPayouts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, payouts, 1)
	assert.Equal(t, payout.ID, payouts[0].ID)

	other, err := svc.ListPayouts(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
