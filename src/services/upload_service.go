// backend/src/services/upload_service.go
package services

import (
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/casher/backend/src/database"
	"github.com/username/casher/backend/src/logger"
	"github.com/username/casher/backend/src/models"
	"github.com/username/casher/backend/src/parsers"
	"github.com/username/casher/backend/src/processors"
)

const (
	ckSpendingSummary = "agg_spending_summary_user_%d"
	ckSubscriptions   = "agg_active_subscriptions_user_%d"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type uploadServiceImpl struct {
	csvParser   *parsers.CSVParser
	processor   *processors.TransactionProcessor
	reportCache *cache.Cache
}

func NewUploadService(
	csvParser *parsers.CSVParser,
	processor *processors.TransactionProcessor,
	reportCache *cache.Cache,
) UploadService {
	return &uploadServiceImpl{
		csvParser:   csvParser,
		processor:   processor,
		reportCache: reportCache,
	}
}

// ProcessUpload runs the whole ingestion pipeline for one file: parse rows,
// map/classify them, and insert the resulting transactions and detected
// subscriptions in a single database transaction. Row-level defects are
// logged and skipped; a file producing zero usable rows is an error.
func (s *uploadServiceImpl) ProcessUpload(fileReader io.Reader, userID int64) (*UploadResult, error) {
	overallStartTime := time.Now()
	logger.L.Info("ProcessUpload START", "userID", userID)

	rows, err := s.csvParser.Parse(fileReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoTransactions
	}

	batch := s.processor.Process(rows, userID)
	for _, skipped := range batch.Skipped {
		logger.L.Debug("Skipping row", "userID", userID, "rowIndex", skipped.Index, "reason", skipped.Reason)
	}
	if len(batch.Transactions) == 0 {
		return nil, ErrNoTransactions
	}

	dbTx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer dbTx.Rollback()

	txStmt, err := dbTx.Prepare(`INSERT INTO transactions (user_id, date, description, amount, category, is_recurring, recurring_frequency, merchant) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("error preparing transaction insert statement: %w", err)
	}
	defer txStmt.Close()

	for _, tx := range batch.Transactions {
		var frequency interface{}
		if tx.RecurringFrequency != "" {
			frequency = tx.RecurringFrequency
		}
		if _, err := txStmt.Exec(userID, tx.Date, tx.Description, tx.Amount, tx.Category, tx.IsRecurring, frequency, tx.Merchant); err != nil {
			return nil, fmt.Errorf("error inserting transaction (merchant: %s): %w", tx.Merchant, err)
		}
	}

	subStmt, err := dbTx.Prepare(`INSERT INTO detected_subscriptions (user_id, service_name, amount, frequency, last_charged, estimated_annual_cost, status) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("error preparing subscription insert statement: %w", err)
	}
	defer subStmt.Close()

	for _, sub := range batch.Subscriptions {
		if _, err := subStmt.Exec(userID, sub.ServiceName, sub.Amount, sub.Frequency, sub.LastCharged, sub.EstimatedAnnualCost, sub.Status); err != nil {
			return nil, fmt.Errorf("error inserting subscription (service: %s): %w", sub.ServiceName, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing upload: %w", err)
	}

	s.InvalidateUserCache(userID)

	logger.L.Info("ProcessUpload END",
		"userID", userID,
		"transactions", len(batch.Transactions),
		"subscriptions", len(batch.Subscriptions),
		"skippedRows", len(batch.Skipped),
		"duration", time.Since(overallStartTime))

	return &UploadResult{
		TransactionsCount:  len(batch.Transactions),
		SubscriptionsCount: len(batch.Subscriptions),
	}, nil
}

// InvalidateUserCache clears cached report data for a user, forcing a rebuild
// on the next request.
func (s *uploadServiceImpl) InvalidateUserCache(userID int64) {
	keysToDelete := []string{
		fmt.Sprintf(ckSpendingSummary, userID),
		fmt.Sprintf(ckSubscriptions, userID),
	}
	for _, key := range keysToDelete {
		s.reportCache.Delete(key)
	}
	logger.L.Debug("Invalidated report caches for user", "userID", userID)
}

func (s *uploadServiceImpl) GetTransactions(userID int64) ([]models.Transaction, error) {
	rows, err := database.DB.Query(`
		SELECT id, user_id, date, description, amount, category, is_recurring, COALESCE(recurring_frequency, ''), COALESCE(merchant, '')
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Date, &tx.Description, &tx.Amount,
			&tx.Category, &tx.IsRecurring, &tx.RecurringFrequency, &tx.Merchant); err != nil {
			return nil, fmt.Errorf("error scanning transaction row for userID %d: %w", userID, err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over transaction rows for userID %d: %w", userID, err)
	}
	return transactions, nil
}

// GetSpendingSummary returns per-category signed totals for the dashboard
// chart. The result is cached until the next upload or expiry.
func (s *uploadServiceImpl) GetSpendingSummary(userID int64) ([]models.CategorySpend, error) {
	cacheKey := fmt.Sprintf(ckSpendingSummary, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for spending summary", "userID", userID)
		return cached.([]models.CategorySpend), nil
	}

	rows, err := database.DB.Query(`
		SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE user_id = ?
		GROUP BY category
		ORDER BY total ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying spending summary for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var summary []models.CategorySpend
	for rows.Next() {
		var entry models.CategorySpend
		if err := rows.Scan(&entry.Category, &entry.Total); err != nil {
			return nil, fmt.Errorf("error scanning spending summary row for userID %d: %w", userID, err)
		}
		summary = append(summary, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over spending summary rows for userID %d: %w", userID, err)
	}

	s.reportCache.Set(cacheKey, summary, DefaultCacheExpiration)
	return summary, nil
}

func (s *uploadServiceImpl) DeleteAllTransactions(userID int64) error {
	dbTx, err := database.DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.Exec(`DELETE FROM transactions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("error deleting transactions for userID %d: %w", userID, err)
	}
	if _, err := dbTx.Exec(`DELETE FROM detected_subscriptions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("error deleting subscriptions for userID %d: %w", userID, err)
	}
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("error committing delete: %w", err)
	}

	s.InvalidateUserCache(userID)
	return nil
}
