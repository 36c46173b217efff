// backend/src/handlers/subscription_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/casher/backend/src/logger"
	"github.com/username/casher/backend/src/models"
	"github.com/username/casher/backend/src/services"
	"github.com/username/casher/backend/src/utils"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(service services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: service}
}

func (h *SubscriptionHandler) HandleGetSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	logger.L.Debug("Handling GetSubscriptions request", "userID", userID)

	subscriptions, err := h.subscriptionService.GetActiveSubscriptions(userID)
	if err != nil {
		logger.L.Error("Error retrieving subscriptions", "userID", userID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error retrieving subscriptions for userID %d: %v", userID, err), http.StatusInternalServerError)
		return
	}
	if subscriptions == nil {
		subscriptions = []models.DetectedSubscription{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(subscriptions); err != nil {
		logger.L.Error("Error generating JSON response for subscriptions", "userID", userID, "error", err)
	}
}

func (h *SubscriptionHandler) HandleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	subscriptionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "Invalid subscription ID in URL path", http.StatusBadRequest)
		return
	}

	cancellationURL, err := h.subscriptionService.CancelSubscription(userID, subscriptionID)
	if err != nil {
		logger.L.Warn("Failed to cancel subscription", "userID", userID, "subscriptionID", subscriptionID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Subscription %d could not be cancelled: %v", subscriptionID, err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"message":         "Subscription marked as cancelled.",
		"cancellationUrl": cancellationURL,
	})
}
