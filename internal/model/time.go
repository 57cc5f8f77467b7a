package model

import (
	"fmt"
	"time"
)

// Accepted layouts for user-supplied date-times, most specific first. The
// zone-less layouts cover HTML datetime-local inputs and bare ISO strings.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601-ish date-time string.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", value)
}
