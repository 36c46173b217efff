package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/username/casher/backend/src/logger"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), userIDContextKey, int64(42))
	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestHandlersRequireAuthenticatedContext(t *testing.T) {
	logger.InitLogger("error")

	uploadHandler := NewUploadHandler(nil)
	txHandler := NewTransactionHandler(nil)
	subscriptionHandler := NewSubscriptionHandler(nil)
	goalHandler := NewGoalHandler(nil)

	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
	}{
		{"upload", http.MethodPost, "/api/upload", uploadHandler.HandleUpload},
		{"list transactions", http.MethodGet, "/api/transactions", txHandler.HandleGetTransactions},
		{"delete transactions", http.MethodDelete, "/api/transactions/all", txHandler.HandleDeleteAllTransactions},
		{"spending summary", http.MethodGet, "/api/analytics/spending", txHandler.HandleGetSpendingSummary},
		{"list subscriptions", http.MethodGet, "/api/subscriptions", subscriptionHandler.HandleGetSubscriptions},
		{"cancel subscription", http.MethodPost, "/api/subscriptions/1/cancel", subscriptionHandler.HandleCancelSubscription},
		{"list goals", http.MethodGet, "/api/goals", goalHandler.HandleListGoals},
		{"create goal", http.MethodPost, "/api/goals", goalHandler.HandleCreateGoal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			rec := httptest.NewRecorder()
			tc.handler(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
