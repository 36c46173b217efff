// backend/src/parsers/amount.go
package parsers

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingDebitRe   = regexp.MustCompile(`(?i)^(dr|debit)\b`)
	leadingCreditRe  = regexp.MustCompile(`(?i)^(cr|credit)\b`)
	trailingDebitRe  = regexp.MustCompile(`(?i)dr$`)
	trailingCreditRe = regexp.MustCompile(`(?i)cr$`)
	currencySymbolRe = regexp.MustCompile(`[£$€]`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	nonNumericRe     = regexp.MustCompile(`[^0-9.]`)
)

// ParseAmount converts a raw amount cell into a signed float. It handles
// currency symbols, parenthesized negatives, leading/trailing minus signs,
// DR/CR and Debit/Credit markers, and ambiguous comma/dot separators. The
// second return is false when the value cannot be read as a number at all;
// callers drop the row in that case rather than storing zero.
//
// Sign resolution: parentheses and minus signs flip the sign, but a DR word
// always forces negative and a CR word always forces positive. The word wins
// when both it and a bare minus appear.
func ParseAmount(raw string) (float64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}

	sign := 1.0
	debitWord := false
	creditWord := false

	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") {
		sign = -1
		value = value[1 : len(value)-1]
	}

	if m := leadingDebitRe.FindString(value); m != "" {
		debitWord = true
		value = value[len(m):]
	}
	if m := leadingCreditRe.FindString(value); m != "" {
		creditWord = true
		value = value[len(m):]
	}
	if m := trailingDebitRe.FindString(value); m != "" {
		debitWord = true
		value = value[:len(value)-len(m)]
	}
	if m := trailingCreditRe.FindString(value); m != "" {
		creditWord = true
		value = value[:len(value)-len(m)]
	}

	value = currencySymbolRe.ReplaceAllString(value, "")
	value = whitespaceRe.ReplaceAllString(value, "")

	if strings.HasPrefix(value, "-") {
		sign = -1
		value = value[1:]
	}
	if strings.HasSuffix(value, "-") {
		sign = -1
		value = value[:len(value)-1]
	}

	value = normalizeSeparators(value)
	value = nonNumericRe.ReplaceAllString(value, "")
	if value == "" {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}

	if debitWord {
		sign = -1
	}
	if creditWord {
		sign = 1
	}
	return parsed * sign, true
}

// normalizeSeparators resolves the comma-vs-dot ambiguity. When both appear,
// whichever comes later in the string is the decimal point and the other is
// grouping. A lone comma followed by exactly two digits is a decimal comma,
// by exactly three digits a thousands separator, anything else a decimal
// substitute. Multiple commas without a dot are grouping.
func normalizeSeparators(value string) string {
	commaCount := strings.Count(value, ",")
	dotCount := strings.Count(value, ".")

	switch {
	case commaCount > 0 && dotCount > 0:
		if strings.LastIndex(value, ",") > strings.LastIndex(value, ".") {
			value = strings.ReplaceAll(value, ".", "")
			value = strings.ReplaceAll(value, ",", ".")
		} else {
			value = strings.ReplaceAll(value, ",", "")
		}
	case commaCount == 1:
		fractional := value[strings.Index(value, ",")+1:]
		if len(fractional) == 3 {
			value = strings.ReplaceAll(value, ",", "")
		} else {
			value = strings.ReplaceAll(value, ",", ".")
		}
	case commaCount > 1:
		value = strings.ReplaceAll(value, ",", "")
	}
	return value
}
