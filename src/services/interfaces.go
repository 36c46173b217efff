package services

import (
	"errors"
	"io"

	"github.com/username/casher/backend/src/models"
)

// UploadResult reports how many records one CSV upload produced.
type UploadResult struct {
	TransactionsCount  int `json:"transactionsCount"`
	SubscriptionsCount int `json:"subscriptionsCount"`
}

var (
	// ErrParsingFailed wraps CSV-level parse failures (unreadable input).
	ErrParsingFailed = errors.New("csv parsing failed")
	// ErrNoTransactions is returned when a file yields zero usable rows. It is
	// user-visible and distinct from individual row skips.
	ErrNoTransactions = errors.New("no valid transactions found")
)

// UploadService runs the ingestion pipeline for one user's CSV upload and
// serves the dashboard read paths derived from it.
type UploadService interface {
	ProcessUpload(fileReader io.Reader, userID int64) (*UploadResult, error)
	GetTransactions(userID int64) ([]models.Transaction, error)
	GetSpendingSummary(userID int64) ([]models.CategorySpend, error)
	DeleteAllTransactions(userID int64) error
	InvalidateUserCache(userID int64)
}

// SubscriptionService manages detected subscriptions and the cancellation flow.
type SubscriptionService interface {
	GetActiveSubscriptions(userID int64) ([]models.DetectedSubscription, error)
	CancelSubscription(userID, subscriptionID int64) (string, error)
}

// GoalService manages savings goals.
type GoalService interface {
	ListGoals(userID int64) ([]models.SavingsGoal, error)
	CreateGoal(userID int64, title string, targetAmount float64, deadline string) (*models.SavingsGoal, error)
	DeleteGoal(userID, goalID int64) error
}
