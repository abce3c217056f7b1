package repository

import (
	"fmt"
	"time"
)

// timestampLayouts are the formats SQLite may hand back for a DATETIME column:
// RFC3339 when the driver converts the value itself, the CURRENT_TIMESTAMP
// format for column defaults, or a bare date.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a stored timestamp in any of the supported layouts.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
