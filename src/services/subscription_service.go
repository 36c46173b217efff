// backend/src/services/subscription_service.go
package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/username/casher/backend/src/database"
	"github.com/username/casher/backend/src/logger"
	"github.com/username/casher/backend/src/models"
)

// knownCancellationURLs maps common services to their cancellation pages.
// Checked in order so "amazon prime" wins over the bare "amazon"/"prime" keys.
var knownCancellationURLs = []struct {
	keyword string
	url     string
}{
	{"netflix", "https://www.netflix.com/cancelplan"},
	{"spotify", "https://www.spotify.com/account/subscription/"},
	{"amazon prime", "https://www.amazon.co.uk/gp/primecentral/cancel"},
	{"amazon", "https://www.amazon.co.uk/gp/primecentral/cancel"},
	{"prime", "https://www.amazon.co.uk/gp/primecentral/cancel"},
}

// ResolveCancellationURL returns the best-known cancellation URL for a
// service. Unknown services fall back to a web search; gym-like services get a
// membership-specific query.
func ResolveCancellationURL(serviceName string) string {
	serviceLower := strings.ToLower(serviceName)
	for _, entry := range knownCancellationURLs {
		if strings.Contains(serviceLower, entry.keyword) {
			return entry.url
		}
	}
	if strings.Contains(serviceLower, "gym") || strings.Contains(serviceLower, "fitness") {
		return "https://www.google.com/search?q=" + url.QueryEscape("cancel "+serviceName+" membership")
	}
	return "https://www.google.com/search?q=" + url.QueryEscape("cancel "+serviceName)
}

type subscriptionServiceImpl struct {
	reportCache *cache.Cache
}

func NewSubscriptionService(reportCache *cache.Cache) SubscriptionService {
	return &subscriptionServiceImpl{reportCache: reportCache}
}

// GetActiveSubscriptions lists a user's active detected subscriptions, most
// expensive first. Records stored without a cancellation URL get one resolved
// from the known-service table at read time.
func (s *subscriptionServiceImpl) GetActiveSubscriptions(userID int64) ([]models.DetectedSubscription, error) {
	cacheKey := fmt.Sprintf(ckSubscriptions, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for active subscriptions", "userID", userID)
		return cached.([]models.DetectedSubscription), nil
	}

	rows, err := database.DB.Query(`
		SELECT id, user_id, service_name, amount, frequency, COALESCE(last_charged, ''), COALESCE(estimated_annual_cost, 0), COALESCE(cancellation_url, ''), status
		FROM detected_subscriptions
		WHERE user_id = ? AND status = ?
		ORDER BY amount DESC`, userID, models.SubscriptionStatusActive)
	if err != nil {
		return nil, fmt.Errorf("error querying subscriptions for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var subscriptions []models.DetectedSubscription
	for rows.Next() {
		var sub models.DetectedSubscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.ServiceName, &sub.Amount, &sub.Frequency,
			&sub.LastCharged, &sub.EstimatedAnnualCost, &sub.CancellationURL, &sub.Status); err != nil {
			return nil, fmt.Errorf("error scanning subscription row for userID %d: %w", userID, err)
		}
		if sub.CancellationURL == "" {
			sub.CancellationURL = ResolveCancellationURL(sub.ServiceName)
		}
		subscriptions = append(subscriptions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over subscription rows for userID %d: %w", userID, err)
	}

	s.reportCache.Set(cacheKey, subscriptions, DefaultCacheExpiration)
	return subscriptions, nil
}

// CancelSubscription marks a subscription cancelled and returns the resolved
// cancellation URL for the frontend to open.
func (s *subscriptionServiceImpl) CancelSubscription(userID, subscriptionID int64) (string, error) {
	var serviceName, storedURL string
	err := database.DB.QueryRow(`
		SELECT service_name, COALESCE(cancellation_url, '')
		FROM detected_subscriptions
		WHERE id = ? AND user_id = ?`, subscriptionID, userID).Scan(&serviceName, &storedURL)
	if err != nil {
		return "", fmt.Errorf("subscription %d not found for userID %d: %w", subscriptionID, userID, err)
	}

	cancellationURL := storedURL
	if cancellationURL == "" {
		cancellationURL = ResolveCancellationURL(serviceName)
	}

	_, err = database.DB.Exec(`
		UPDATE detected_subscriptions
		SET status = ?, cancellation_url = ?
		WHERE id = ? AND user_id = ?`, models.SubscriptionStatusCancelled, cancellationURL, subscriptionID, userID)
	if err != nil {
		return "", fmt.Errorf("error cancelling subscription %d for userID %d: %w", subscriptionID, userID, err)
	}

	s.reportCache.Delete(fmt.Sprintf(ckSubscriptions, userID))
	logger.L.Info("Subscription cancelled", "userID", userID, "subscriptionID", subscriptionID, "service", serviceName)
	return cancellationURL, nil
}
