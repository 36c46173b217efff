package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"uk day month year", "15/06/2024", "2024-06-15"},
		{"uk first of month", "01/02/2024", "2024-02-01"},
		{"iso passthrough", "2024-06-15", "2024-06-15"},
		{"iso with time", "2024-06-15 13:45:00", "2024-06-15"},
		{"rfc3339", "2024-06-15T13:45:00Z", "2024-06-15"},
		{"dashed uk", "15-06-2024", "2024-06-15"},
		{"slashed iso", "2024/06/15", "2024-06-15"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseDate(tc.input))
		})
	}
}

func TestParseDateFallsBackToToday(t *testing.T) {
	today := time.Now().Format(ISODateFormat)
	for _, input := range []string{"", "   ", "not a date", "99/99/9999", "June 15th"} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, today, ParseDate(input))
		})
	}
}
