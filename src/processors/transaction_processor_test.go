package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/casher/backend/src/models"
)

func TestMapRowRejectsUnusableRows(t *testing.T) {
	processor := NewTransactionProcessor()

	tests := []struct {
		name   string
		row    models.Row
		reason string
	}{
		{"missing description", models.Row{"Amount": "10.00"}, SkipEmptyDescription},
		{"blank description", models.Row{"Description": "  ", "Amount": "10.00"}, SkipEmptyDescription},
		{"missing amount", models.Row{"Description": "Coffee"}, SkipNoAmount},
		{"unparseable amount", models.Row{"Description": "Coffee", "Amount": "n/a"}, SkipNoAmount},
		{"zero amount", models.Row{"Description": "Coffee", "Amount": "0.00"}, SkipZeroAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped, reason := processor.MapRow(tc.row, 1)
			assert.Nil(t, mapped)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestMapRowBuildsTransaction(t *testing.T) {
	processor := NewTransactionProcessor()

	mapped, reason := processor.MapRow(models.Row{
		"Date":        "01/06/2024",
		"Description": "NETFLIX.COM",
		"Debit":       "9.99",
	}, 7)
	require.NotNil(t, mapped)
	assert.Empty(t, reason)

	tx := mapped.Transaction
	assert.Equal(t, int64(7), tx.UserID)
	assert.Equal(t, "2024-06-01", tx.Date)
	assert.Equal(t, "NETFLIX.COM", tx.Description)
	assert.InDelta(t, -9.99, tx.Amount, 0.0001)
	assert.Equal(t, CategorySubscription, tx.Category)
	assert.True(t, tx.IsRecurring)
	assert.Equal(t, models.FrequencyMonthly, tx.RecurringFrequency)
	assert.Equal(t, "NETFLIX.COM", tx.Merchant)
	assert.InDelta(t, 9.99, mapped.SubscriptionAmount, 0.0001)
}

func TestProcessEndToEnd(t *testing.T) {
	processor := NewTransactionProcessor()

	rows := []models.Row{
		{"Date": "01/06/2024", "Description": "NETFLIX.COM", "Debit": "9.99"},
		{"Date": "02/06/2024", "Description": "Salary Payment", "Credit": "2000.00"},
		{"Date": "03/06/2024", "Description": "TESCO SUPERSTORE", "Debit": "96.50"},
		{"Date": "04/06/2024", "Description": "Gym Monthly Membership", "Debit": "35.00"},
	}

	result := processor.Process(rows, 1)
	require.Len(t, result.Transactions, 4)
	assert.Empty(t, result.Skipped)

	amounts := make([]float64, len(result.Transactions))
	net := 0.0
	for i, tx := range result.Transactions {
		amounts[i] = tx.Amount
		net += tx.Amount
	}
	assert.InDeltaSlice(t, []float64{-9.99, 2000, -96.50, -35}, amounts, 0.0001)
	assert.InDelta(t, 1858.51, net, 0.0001)

	assert.Equal(t, CategorySubscription, result.Transactions[0].Category)
	assert.Equal(t, CategoryOther, result.Transactions[1].Category)
	assert.Equal(t, CategoryGroceries, result.Transactions[2].Category)
	assert.Equal(t, CategoryFitness, result.Transactions[3].Category)

	require.Len(t, result.Subscriptions, 2)
	netflix := result.Subscriptions[0]
	assert.Equal(t, "NETFLIX.COM", netflix.ServiceName)
	assert.InDelta(t, 9.99, netflix.Amount, 0.0001)
	assert.Equal(t, models.FrequencyMonthly, netflix.Frequency)
	assert.Equal(t, "2024-06-01", netflix.LastCharged)
	assert.InDelta(t, 119.88, netflix.EstimatedAnnualCost, 0.0001)
	assert.Equal(t, models.SubscriptionStatusActive, netflix.Status)

	gym := result.Subscriptions[1]
	assert.Equal(t, "Gym Monthly Membership", gym.ServiceName)
	assert.InDelta(t, 420.0, gym.EstimatedAnnualCost, 0.0001)
}

func TestProcessFirstSeenWinsPerMerchant(t *testing.T) {
	processor := NewTransactionProcessor()

	rows := []models.Row{
		{"Date": "01/06/2024", "Description": "NETFLIX.COM", "Debit": "9.99"},
		{"Date": "01/07/2024", "Description": "NETFLIX.COM", "Debit": "12.99"},
	}

	result := processor.Process(rows, 1)
	require.Len(t, result.Transactions, 2)
	require.Len(t, result.Subscriptions, 1)

	// The first occurrence seeds the subscription; the later price change
	// does not overwrite it.
	sub := result.Subscriptions[0]
	assert.InDelta(t, 9.99, sub.Amount, 0.0001)
	assert.Equal(t, "2024-06-01", sub.LastCharged)
	assert.InDelta(t, 119.88, sub.EstimatedAnnualCost, 0.0001)
}

func TestProcessCollectsSkippedRows(t *testing.T) {
	processor := NewTransactionProcessor()

	rows := []models.Row{
		{"Date": "01/06/2024", "Description": "Coffee", "Amount": "3.50"},
		{"Date": "02/06/2024", "Description": "", "Amount": "10.00"},
		{"Date": "03/06/2024", "Description": "Refund", "Amount": "0"},
	}

	result := processor.Process(rows, 1)
	require.Len(t, result.Transactions, 1)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 1, result.Skipped[0].Index)
	assert.Equal(t, SkipEmptyDescription, result.Skipped[0].Reason)
	assert.Equal(t, 2, result.Skipped[1].Index)
	assert.Equal(t, SkipZeroAmount, result.Skipped[1].Reason)
}

func TestProcessSubscriptionOrderFollowsFile(t *testing.T) {
	processor := NewTransactionProcessor()

	rows := []models.Row{
		{"Date": "01/06/2024", "Description": "Spotify", "Debit": "11.99"},
		{"Date": "01/06/2024", "Description": "NETFLIX.COM", "Debit": "9.99"},
	}

	result := processor.Process(rows, 1)
	require.Len(t, result.Subscriptions, 2)
	assert.Equal(t, "Spotify", result.Subscriptions[0].ServiceName)
	assert.Equal(t, "NETFLIX.COM", result.Subscriptions[1].ServiceName)
}
