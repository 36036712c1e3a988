package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed conversion rates of the earnings ledger. Points and ad views
// convert to dollars at these rates everywhere; there is no market.
var (
	// PointValue is the dollar value credited per task point.
	PointValue = decimal.RequireFromString("0.01")
	// AdViewValue is the simulated dollar revenue per tracked ad view.
	AdViewValue = decimal.RequireFromString("0.05")
	// PayoutThreshold gates pendingPayout: earnings become eligible
	// only once they exceed this amount.
	PayoutThreshold = decimal.RequireFromString("10")
)

// AdView is one tracked page impression attributed to a user.
// The log is append-only and deliberately not deduplicated: tracking
// fires on every navigation.
type AdView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AdUnitID  string    `json:"adUnitId"`
	PageURL   string    `json:"pageUrl"`
	Timestamp time.Time `json:"timestamp"`
	Revenue   float64   `json:"revenue"`
}

type AdViewCreate struct {
	AdUnitID string `json:"adUnitId" binding:"required"`
	PageURL  string `json:"pageUrl" binding:"required"`
}

// RevenueSnapshot is the single platform-wide aggregate. It is seeded
// independently and not derived from the ad-view log; its only consumer
// is the display-only share percentage.
type RevenueSnapshot struct {
	TotalRevenue   float64   `json:"totalRevenue"`
	TotalPageViews int       `json:"totalPageViews"`
	TotalAdClicks  int       `json:"totalAdClicks"`
	AverageRPM     float64   `json:"averageRPM"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// PayoutRequest is an append-only withdrawal request. Requests stay
// "pending" and are never reconciled against reported earnings.
type PayoutRequest struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requestedAt"`
}

type PayoutCreate struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

// EarningsDay is one point of the 7-day dashboard series.
type EarningsDay struct {
	Date     string  `json:"date"`
	Earnings float64 `json:"earnings"`
	Tasks    int     `json:"tasks"`
	AdViews  int     `json:"adViews"`
}

// EarningsSummary is the derived per-user earnings view.
type EarningsSummary struct {
	TotalEarnings   float64       `json:"totalEarnings"`
	TaskEarnings    float64       `json:"taskEarnings"`
	AdRevenue       float64       `json:"adRevenue"`
	TotalPoints     int           `json:"totalPoints"`
	TasksCompleted  int           `json:"tasksCompleted"`
	AdViewsCount    int           `json:"adViewsCount"`
	PendingPayout   float64       `json:"pendingPayout"`
	PayoutThreshold float64       `json:"payoutThreshold"`
	EarningsHistory []EarningsDay `json:"earningsHistory"`
}

// RevenueStats merges the platform snapshot with the caller's share of it.
type RevenueStats struct {
	RevenueSnapshot
	UserShare           float64 `json:"userShare"`
	UserSharePercentage string  `json:"userSharePercentage"`
}
