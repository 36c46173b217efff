// backend/src/processors/transaction_processor.go
package processors

import (
	"math"

	"github.com/username/casher/backend/src/models"
	"github.com/username/casher/backend/src/parsers"
)

// Row skip reasons. Skips are collected, not raised, so batch aggregation
// stays a pure fold and callers can log or inspect them.
const (
	SkipEmptyDescription = "empty description"
	SkipNoAmount         = "missing or unparseable amount"
	SkipZeroAmount       = "zero amount"
)

// RowResult is the outcome of mapping one CSV row: the transaction record plus
// the merchant key and absolute amount the batch needs for subscription
// aggregation.
type RowResult struct {
	Transaction        models.Transaction
	Merchant           string
	SubscriptionAmount float64
}

// SkippedRow records why a row was dropped.
type SkippedRow struct {
	Index  int
	Reason string
}

// BatchResult is the full output of processing one upload's rows.
type BatchResult struct {
	Transactions  []models.Transaction
	Subscriptions []models.DetectedSubscription
	Skipped       []SkippedRow
}

type TransactionProcessor struct{}

func NewTransactionProcessor() *TransactionProcessor { return &TransactionProcessor{} }

// MapRow converts one raw row into a transaction record. It is pure: no I/O,
// no clock beyond the date fallback, no shared state. A row that lacks a
// description or a usable non-zero amount yields a nil result and the reason.
func (p *TransactionProcessor) MapRow(row models.Row, userID int64) (*RowResult, string) {
	description := parsers.ExtractDescription(row)
	if description == "" {
		return nil, SkipEmptyDescription
	}

	amount, ok := parsers.DeriveAmount(row)
	if !ok || math.IsNaN(amount) {
		return nil, SkipNoAmount
	}
	if amount == 0 {
		return nil, SkipZeroAmount
	}

	rawDate, _ := parsers.ExtractDateValue(row)
	date := parsers.ParseDate(rawDate)
	category := CategorizeTransaction(description)
	isRecurring := DetectSubscription(description)
	merchant := ExtractMerchant(description)

	frequency := ""
	if isRecurring {
		frequency = models.FrequencyMonthly
	}

	return &RowResult{
		Transaction: models.Transaction{
			UserID:             userID,
			Date:               date,
			Description:        description,
			Amount:             amount,
			Category:           category,
			IsRecurring:        isRecurring,
			RecurringFrequency: frequency,
			Merchant:           merchant,
		},
		Merchant:           merchant,
		SubscriptionAmount: math.Abs(amount),
	}, ""
}

// Process maps every row and folds recurring transactions into a
// merchant-keyed subscription set. First seen wins: only the first row for a
// merchant seeds the subscription's amount and last_charged; later rows for
// the same merchant do not update it. Subscription order follows first
// appearance in the file.
func (p *TransactionProcessor) Process(rows []models.Row, userID int64) BatchResult {
	var result BatchResult
	seen := make(map[string]bool)

	for i, row := range rows {
		mapped, reason := p.MapRow(row, userID)
		if mapped == nil {
			result.Skipped = append(result.Skipped, SkippedRow{Index: i, Reason: reason})
			continue
		}

		result.Transactions = append(result.Transactions, mapped.Transaction)

		if !mapped.Transaction.IsRecurring || seen[mapped.Merchant] {
			continue
		}
		seen[mapped.Merchant] = true
		result.Subscriptions = append(result.Subscriptions, models.DetectedSubscription{
			UserID:              userID,
			ServiceName:         mapped.Merchant,
			Amount:              mapped.SubscriptionAmount,
			Frequency:           models.FrequencyMonthly,
			LastCharged:         mapped.Transaction.Date,
			EstimatedAnnualCost: mapped.SubscriptionAmount * 12,
			Status:              models.SubscriptionStatusActive,
		})
	}
	return result
}
