package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/casher/backend/src/database"
	"github.com/username/casher/backend/src/logger"
	"github.com/username/casher/backend/src/parsers"
	"github.com/username/casher/backend/src/processors"
)

func newTestUploadService(t *testing.T) UploadService {
	t.Helper()
	logger.InitLogger("error")
	database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { database.DB.Close() })

	return NewUploadService(
		parsers.NewCSVParser(),
		processors.NewTransactionProcessor(),
		cache.New(DefaultCacheExpiration, CacheCleanupInterval),
	)
}

const sampleStatement = "Date,Description,Debit,Credit\n" +
	"01/06/2024,NETFLIX.COM,9.99,\n" +
	"02/06/2024,Salary Payment,,2000.00\n" +
	"03/06/2024,TESCO SUPERSTORE,96.50,\n" +
	"04/06/2024,Gym Monthly Membership,35.00,\n"

func TestProcessUploadPersistsTransactionsAndSubscriptions(t *testing.T) {
	service := newTestUploadService(t)

	result, err := service.ProcessUpload(strings.NewReader(sampleStatement), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, result.TransactionsCount)
	assert.Equal(t, 2, result.SubscriptionsCount)

	transactions, err := service.GetTransactions(1)
	require.NoError(t, err)
	require.Len(t, transactions, 4)

	// Newest first.
	assert.Equal(t, "Gym Monthly Membership", transactions[0].Description)
	assert.InDelta(t, -35.0, transactions[0].Amount, 0.0001)
	assert.Equal(t, "NETFLIX.COM", transactions[3].Description)
	assert.True(t, transactions[3].IsRecurring)

	net := 0.0
	for _, tx := range transactions {
		net += tx.Amount
	}
	assert.InDelta(t, 1858.51, net, 0.0001)
}

func TestProcessUploadEmptyFile(t *testing.T) {
	service := newTestUploadService(t)

	_, err := service.ProcessUpload(strings.NewReader(""), 1)
	assert.ErrorIs(t, err, ErrNoTransactions)

	_, err = service.ProcessUpload(strings.NewReader("Date,Description,Amount\n"), 1)
	assert.ErrorIs(t, err, ErrNoTransactions)
}

func TestProcessUploadAllRowsUnusable(t *testing.T) {
	service := newTestUploadService(t)

	input := "Date,Description,Amount\n" +
		"01/06/2024,,10.00\n" +
		"02/06/2024,Refund,0\n"

	_, err := service.ProcessUpload(strings.NewReader(input), 1)
	assert.ErrorIs(t, err, ErrNoTransactions)
}

func TestProcessUploadSkipsBadRowsSilently(t *testing.T) {
	service := newTestUploadService(t)

	input := "Date,Description,Amount\n" +
		"01/06/2024,Coffee,-3.50\n" +
		"02/06/2024,,10.00\n" +
		"03/06/2024,Broken,not-a-number\n"

	result, err := service.ProcessUpload(strings.NewReader(input), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TransactionsCount)
	assert.Equal(t, 0, result.SubscriptionsCount)
}

func TestGetSpendingSummary(t *testing.T) {
	service := newTestUploadService(t)

	_, err := service.ProcessUpload(strings.NewReader(sampleStatement), 1)
	require.NoError(t, err)

	summary, err := service.GetSpendingSummary(1)
	require.NoError(t, err)
	require.Len(t, summary, 4)

	totals := make(map[string]float64, len(summary))
	for _, entry := range summary {
		totals[entry.Category] = entry.Total
	}
	assert.InDelta(t, -9.99, totals[processors.CategorySubscription], 0.0001)
	assert.InDelta(t, -96.50, totals[processors.CategoryGroceries], 0.0001)
	assert.InDelta(t, -35.0, totals[processors.CategoryFitness], 0.0001)
	assert.InDelta(t, 2000.0, totals[processors.CategoryOther], 0.0001)

	// Most negative total first.
	assert.Equal(t, processors.CategoryGroceries, summary[0].Category)
}

func TestDeleteAllTransactions(t *testing.T) {
	service := newTestUploadService(t)

	_, err := service.ProcessUpload(strings.NewReader(sampleStatement), 1)
	require.NoError(t, err)

	require.NoError(t, service.DeleteAllTransactions(1))

	transactions, err := service.GetTransactions(1)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestUploadsAreScopedPerUser(t *testing.T) {
	service := newTestUploadService(t)

	_, err := service.ProcessUpload(strings.NewReader(sampleStatement), 1)
	require.NoError(t, err)

	transactions, err := service.GetTransactions(2)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
