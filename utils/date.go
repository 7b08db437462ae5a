package utils

import (
	"fmt"
	"time"
)

// All Univen portfolios are serviced from South Africa.
var SouthAfricaTZ = time.FixedZone("SAST", 2*60*60)

func SouthAfricaNow() time.Time {
	return time.Now().In(SouthAfricaTZ)
}

// ParseISOTime parses the date strings the import pipeline writes. RFC3339
// first, then the loose layouts seen in source files.
func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
