package models

// Row is one CSV data line keyed by its (trimmed) header names. Values are the
// trimmed cell contents; missing trailing cells are empty strings. Rows only
// live for the duration of one upload.
type Row map[string]string

// Transaction is the durable output of the ingestion pipeline. Amount follows
// accounting convention: negative for outflows, positive for inflows. Every
// stored transaction has a non-empty description and a non-zero amount.
type Transaction struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	Date               string  `json:"date"` // YYYY-MM-DD
	Description        string  `json:"description"`
	Amount             float64 `json:"amount"`
	Category           string  `json:"category"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency string  `json:"recurring_frequency,omitempty"` // "monthly" when recurring
	Merchant           string  `json:"merchant"`                      // cleaned description, max 50 chars
}

// DetectedSubscription is one recurring charge inferred from an upload, keyed
// by merchant. The first occurrence of a merchant within a batch seeds the
// record; later rows for the same merchant are ignored.
type DetectedSubscription struct {
	ID                  int64   `json:"id"`
	UserID              int64   `json:"user_id"`
	ServiceName         string  `json:"service_name"`
	Amount              float64 `json:"amount"` // absolute value of the first charge
	Frequency           string  `json:"frequency"`
	LastCharged         string  `json:"last_charged"`
	EstimatedAnnualCost float64 `json:"estimated_annual_cost"`
	CancellationURL     string  `json:"cancellation_url,omitempty"`
	Status              string  `json:"status"`
}

// SavingsGoal tracks a user-defined saving target shown on the dashboard.
type SavingsGoal struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// CategorySpend is one slice of the spending-by-category summary.
type CategorySpend struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"` // sum of signed amounts, outflows negative
}

const (
	FrequencyMonthly = "monthly"

	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
)
