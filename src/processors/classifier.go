// backend/src/processors/classifier.go
package processors

import (
	"regexp"
	"strings"
)

// The closed set of spending categories.
const (
	CategorySubscription = "Subscription"
	CategoryRent         = "Rent"
	CategoryGroceries    = "Groceries"
	CategoryFitness      = "Fitness"
	CategoryDining       = "Dining"
	CategoryTransport    = "Transport"
	CategoryOther        = "Other"
)

// CategoryRule maps a keyword set to a category. Rules are evaluated in order
// and the first match wins, so a description containing both "netflix" and
// "gym" resolves to Subscription, never Fitness.
type CategoryRule struct {
	Category string
	Keywords []string
}

// CategoryRules is the ordered rule table used by CategorizeTransaction.
// Streaming/service keywords deliberately outrank everything else.
var CategoryRules = []CategoryRule{
	{CategorySubscription, []string{"netflix", "spotify", "disney", "prime", "youtube premium", "apple music", "hbo", "subscription"}},
	{CategoryRent, []string{"rent", "mortgage"}},
	{CategoryGroceries, []string{"grocery", "tesco", "sainsbury", "asda"}},
	{CategoryFitness, []string{"gym", "fitness"}},
	{CategoryDining, []string{"restaurant", "cafe", "takeaway"}},
	{CategoryTransport, []string{"transport", "uber", "train"}},
}

// subscriptionKeywords is the broader set used for the recurring flag. It is
// intentionally wider than the Subscription category rule: "Gym Monthly
// Membership" categorizes as Fitness yet still counts as recurring.
var subscriptionKeywords = []string{
	"netflix", "spotify", "amazon prime", "disney", "apple music",
	"youtube premium", "hbo", "gym", "fitness", "subscription",
	"monthly", "annual", "membership",
}

func CategorizeTransaction(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range CategoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}

func DetectSubscription(description string) bool {
	lower := strings.ToLower(description)
	for _, keyword := range subscriptionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

var (
	embeddedDateRe = regexp.MustCompile(`\d{2}/\d{2}/\d{2,4}`)
	txnCodeRe      = regexp.MustCompile(`[A-Z]{2,3}\s\d+`)
)

const merchantMaxLen = 50

// ExtractMerchant cleans a description into the merchant label used as the
// subscription grouping key: embedded DD/MM/YY(YY) dates and short
// letters-plus-digits transaction codes are stripped, the result trimmed and
// truncated to 50 characters.
func ExtractMerchant(description string) string {
	cleaned := embeddedDateRe.ReplaceAllString(description, "")
	cleaned = txnCodeRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > merchantMaxLen {
		return string(runes[:merchantMaxLen])
	}
	return cleaned
}
