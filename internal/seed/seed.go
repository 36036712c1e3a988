package seed

import (
	"context"
	"time"

	"taskearn-backend/internal/common/logger"
	revenuemodels "taskearn-backend/internal/features/revenue/models"
	revenuerepository "taskearn-backend/internal/features/revenue/repository"
	taskmodels "taskearn-backend/internal/features/task/models"
	taskrepository "taskearn-backend/internal/features/task/repository"
	usermodels "taskearn-backend/internal/features/user/models"
	userrepository "taskearn-backend/internal/features/user/repository"

	"github.com/google/uuid"
)

// EnsureDefaults lazily seeds each collection that is still empty: the
// demo accounts, the starter task catalog and the platform revenue
// snapshot. Existing data is never touched.
func EnsureDefaults(
	ctx context.Context,
	users userrepository.UserRepository,
	tasks taskrepository.TaskRepository,
	snapshot revenuerepository.SnapshotRepository,
) error {
	if err := seedUsers(ctx, users); err != nil {
		return err
	}
	if err := seedTasks(ctx, tasks); err != nil {
		return err
	}
	return seedSnapshot(ctx, snapshot)
}

func seedUsers(ctx context.Context, repo userrepository.UserRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	defaults := []*usermodels.User{
		{
			ID:             uuid.New().String(),
			Name:           "Admin User",
			Email:          "admin@taskearn.com",
			Password:       "admin123",
			Role:           usermodels.RoleAdmin,
			Status:         usermodels.StatusActive,
			JoinedAt:       now.AddDate(0, 0, -30),
			LastLoginAt:    now,
			TotalEarnings:  150.75,
			TasksCompleted: 45,
		},
		{
			ID:             uuid.New().String(),
			Name:           "Demo User",
			Email:          "demo@taskearn.com",
			Password:       "demo123",
			Role:           usermodels.RoleUser,
			Status:         usermodels.StatusActive,
			JoinedAt:       now.AddDate(0, 0, -15),
			LastLoginAt:    now.Add(-2 * time.Hour),
			TotalEarnings:  89.50,
			TasksCompleted: 23,
		},
		{
			ID:             uuid.New().String(),
			Name:           "Moderator User",
			Email:          "mod@taskearn.com",
			Password:       "mod123",
			Role:           usermodels.RoleModerator,
			Status:         usermodels.StatusActive,
			JoinedAt:       now.AddDate(0, 0, -20),
			LastLoginAt:    now.Add(-5 * time.Hour),
			TotalEarnings:  125.25,
			TasksCompleted: 67,
		},
	}

	for _, user := range defaults {
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(defaults)).Msg("Seeded default users")
	return nil
}

func seedTasks(ctx context.Context, repo taskrepository.TaskRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	defaults := []*taskmodels.Task{
		{
			ID:            uuid.New().String(),
			Title:         "Copy Product URL",
			Description:   "Copy the product URL from the given page and paste it in the form",
			Type:          taskmodels.TypeCopyPaste,
			Points:        10,
			EstimatedTime: "2 minutes",
			TargetURL:     "https://example.com/product/123",
			Instructions: []string{
				"Visit the product page",
				"Copy the URL from your browser",
				"Paste it in the submission form",
				"Click submit to complete",
			},
			Active:    true,
			CreatedAt: now,
		},
		{
			ID:            uuid.New().String(),
			Title:         "Visit and Review Link",
			Description:   "Visit the provided link and provide a brief review",
			Type:          taskmodels.TypeVisitReview,
			Points:        15,
			EstimatedTime: "5 minutes",
			TargetURL:     "https://example.com/review-page",
			Instructions: []string{
				"Click the provided link",
				"Spend at least 2 minutes on the page",
				"Write a brief review (50+ words)",
				"Submit your review",
			},
			Active:    true,
			CreatedAt: now,
		},
		{
			ID:            uuid.New().String(),
			Title:         "Social Media Share",
			Description:   "Share the given content on your social media",
			Type:          taskmodels.TypeSocialShare,
			Points:        20,
			EstimatedTime: "3 minutes",
			TargetURL:     "https://example.com/share-content",
			Instructions: []string{
				"Copy the provided content",
				"Share it on your social media platform",
				"Take a screenshot of the post",
				"Upload the screenshot as proof",
			},
			Active:    true,
			CreatedAt: now,
		},
	}

	for _, task := range defaults {
		if err := repo.Create(ctx, task); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(defaults)).Msg("Seeded default tasks")
	return nil
}

func seedSnapshot(ctx context.Context, repo revenuerepository.SnapshotRepository) error {
	if _, err := repo.Get(ctx); err == nil {
		return nil
	} else if err != revenuerepository.ErrSnapshotNotFound {
		return err
	}

	snapshot := &revenuemodels.RevenueSnapshot{
		TotalRevenue:   1250.75,
		TotalPageViews: 15420,
		TotalAdClicks:  890,
		AverageRPM:     4.32,
		LastUpdated:    time.Now(),
	}

	if err := repo.Set(ctx, snapshot); err != nil {
		return err
	}

	logger.Info().Msg("Seeded revenue snapshot")
	return nil
}
