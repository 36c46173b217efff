package processors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeTransaction(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"NETFLIX.COM 01/06", CategorySubscription},
		{"Spotify P2E4F1", CategorySubscription},
		{"Disney Plus", CategorySubscription},
		{"Monthly Rent Payment", CategoryRent},
		{"Mortgage Direct Debit", CategoryRent},
		{"TESCO SUPERSTORE 1234", CategoryGroceries},
		{"Sainsburys Local", CategoryGroceries},
		{"PureGym Membership", CategoryFitness},
		{"The Corner Cafe", CategoryDining},
		{"Uber Trip", CategoryTransport},
		{"Trainline Tickets", CategoryTransport},
		{"Unknown Merchant XYZ", CategoryOther},
		{"", CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategorizeTransaction(tc.description))
		})
	}
}

func TestCategorizeTransactionRuleOrder(t *testing.T) {
	// Streaming keywords outrank everything: a description matching both
	// the Subscription and Fitness rules resolves to Subscription.
	assert.Equal(t, CategorySubscription, CategorizeTransaction("netflix at the gym"))
}

func TestDetectSubscription(t *testing.T) {
	tests := []struct {
		description string
		expected    bool
	}{
		{"NETFLIX.COM", true},
		{"Spotify Premium", true},
		{"Amazon Prime", true},
		{"Gym Monthly Membership", true},
		{"Annual Insurance Premium", true},
		{"TESCO SUPERSTORE", false},
		{"Salary Payment", false},
		{"One-off purchase", false},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectSubscription(tc.description))
		})
	}
}

func TestDetectSubscriptionBroaderThanCategory(t *testing.T) {
	// The recurring flag is independent of categorization: a gym membership
	// is Fitness by category yet still counts as a subscription.
	description := "Gym Monthly Membership"
	assert.Equal(t, CategoryFitness, CategorizeTransaction(description))
	assert.True(t, DetectSubscription(description))
}

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{"plain name untouched", "Netflix", "Netflix"},
		{"embedded short date stripped", "NETFLIX.COM 01/06/24", "NETFLIX.COM"},
		{"embedded full date stripped", "TESCO STORE 15/06/2024", "TESCO STORE"},
		{"transaction code stripped", "Spotify REF 123456", "Spotify"},
		{"surrounding whitespace trimmed", "  Gym Membership  ", "Gym Membership"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractMerchant(tc.description))
		})
	}
}

func TestExtractMerchantTruncatesToFiftyChars(t *testing.T) {
	long := strings.Repeat("a", 80)
	merchant := ExtractMerchant(long)
	assert.Len(t, []rune(merchant), 50)
	assert.Equal(t, strings.Repeat("a", 50), merchant)
}
