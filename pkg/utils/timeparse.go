package utils

import (
	"fmt"
	"strings"
	"time"
)

// Accepted layouts for booking dates coming from clients. Values are treated
// as local wall-clock time, so a trailing "Z" is stripped before parsing.
var flexibleTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseFlexibleTime parses an ISO-style timestamp with optional seconds, or a
// bare date which resolves to midnight.
func ParseFlexibleTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimSuffix(trimmed, "Z")
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	for _, layout := range flexibleTimeLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}
