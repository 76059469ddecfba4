package handlers

import (
	"fmt"
	"time"
)

// parseDate accepts a bare date or an RFC 3339 timestamp. Either way the
// services truncate to the UTC calendar day.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
