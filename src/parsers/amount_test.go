package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plain integer", "123", 123},
		{"plain decimal", "45.67", 45.67},
		{"leading minus", "-45.67", -45.67},
		{"trailing minus", "123-", -123},
		{"parenthesized negative", "(123.45)", -123.45},
		{"pound symbol", "£165.45", 165.45},
		{"dollar symbol", "$99.99", 99.99},
		{"euro symbol", "€12.50", 12.5},
		{"internal whitespace", "1 234.56", 1234.56},
		{"leading DR word", "DR 45.00", -45},
		{"leading Debit word", "Debit 45.00", -45},
		{"leading CR word", "CR 99.99", 99.99},
		{"leading Credit word", "Credit 99.99", 99.99},
		{"trailing DR", "45.00DR", -45},
		{"trailing CR", "99.99CR", 99.99},
		{"lowercase dr", "dr 10", -10},
		{"uk decimal comma", "£165,45", 165.45},
		{"uk thousands comma", "1,234.56", 1234.56},
		{"eu thousands dot", "1.234,56", 1234.56},
		{"lone comma three digit fraction", "1,234", 1234},
		{"multiple commas no dot", "1,234,567", 1234567},
		{"single digit fraction comma", "5,5", 5.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAmount(tc.input)
			assert.True(t, ok, "expected %q to parse", tc.input)
			assert.InDelta(t, tc.expected, got, 0.0001)
		})
	}
}

func TestParseAmountUnparseable(t *testing.T) {
	for _, input := range []string{"", "   ", "invalid", "N/A", "--", "£"} {
		t.Run(input, func(t *testing.T) {
			_, ok := ParseAmount(input)
			assert.False(t, ok, "expected %q to be rejected", input)
		})
	}
}

func TestParseAmountSignWordWins(t *testing.T) {
	// The CR/DR word is the sign authority, even when the number also
	// carries a minus sign.
	got, ok := ParseAmount("CR -50.00")
	assert.True(t, ok)
	assert.InDelta(t, 50.0, got, 0.0001)

	got, ok = ParseAmount("DR 45.00")
	assert.True(t, ok)
	assert.InDelta(t, -45.0, got, 0.0001)
}
