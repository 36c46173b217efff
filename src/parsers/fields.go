// backend/src/parsers/fields.go
package parsers

import (
	"strings"

	"github.com/username/casher/backend/src/models"
)

// Header alias tables, one per concern, in priority order. Ingesting a new
// bank's export format is a data change here, not a code change elsewhere.
var (
	DescriptionFields = []string{
		"description", "Description",
		"Transaction Description", "transaction description",
		"memo", "Memo",
		"narrative", "Narrative",
	}

	DateFields = []string{
		"date", "Date",
		"transaction date", "Transaction Date",
		"posted date", "Posted Date",
	}

	AmountFields = []string{"amount", "Amount", "transaction amount", "Transaction Amount", "value", "Value"}
	DebitFields  = []string{"debit", "Debit", "debit amount", "Debit Amount"}
	CreditFields = []string{"credit", "Credit", "credit amount", "Credit Amount"}
)

// FirstNonEmpty returns the value of the first alias present in the row with a
// non-empty trimmed value.
func FirstNonEmpty(row models.Row, fields []string) (string, bool) {
	for _, field := range fields {
		value, present := row[field]
		if !present {
			continue
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		return value, true
	}
	return "", false
}

func ExtractDescription(row models.Row) string {
	value, ok := FirstNonEmpty(row, DescriptionFields)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func ExtractDateValue(row models.Row) (string, bool) {
	value, ok := FirstNonEmpty(row, DateFields)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// DeriveAmount resolves the signed amount for a row. An explicit debit column
// wins and is forced negative; a credit column is forced positive; otherwise a
// generic amount column is parsed as-is, sign included.
func DeriveAmount(row models.Row) (float64, bool) {
	if raw, ok := FirstNonEmpty(row, DebitFields); ok {
		if parsed, ok := ParseAmount(raw); ok {
			if parsed > 0 {
				return -parsed, true
			}
			return parsed, true
		}
	}

	if raw, ok := FirstNonEmpty(row, CreditFields); ok {
		if parsed, ok := ParseAmount(raw); ok {
			if parsed < 0 {
				return -parsed, true
			}
			return parsed, true
		}
	}

	if raw, ok := FirstNonEmpty(row, AmountFields); ok {
		return ParseAmount(raw)
	}

	return 0, false
}
