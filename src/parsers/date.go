// backend/src/parsers/date.go
package parsers

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const ISODateFormat = "2006-01-02"

var ukDateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// Layouts tried for anything that is not DD/MM/YYYY.
var fallbackLayouts = []string{
	ISODateFormat,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate converts a raw date cell into YYYY-MM-DD. It never fails: the UK
// DD/MM/YYYY convention is recognized first, then a handful of common layouts,
// and anything unparseable resolves to today's date.
func ParseDate(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Now().Format(ISODateFormat)
	}

	if m := ukDateRe.FindStringSubmatch(value); m != nil {
		iso := fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
		if t, err := time.Parse(ISODateFormat, iso); err == nil {
			return t.Format(ISODateFormat)
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(ISODateFormat)
		}
	}

	return time.Now().Format(ISODateFormat)
}
