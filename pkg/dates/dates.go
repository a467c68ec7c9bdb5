// Package dates parses the due-date strings accepted by the API.
package dates

import (
	"time"
)

var layouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Parse coerces a due-date string to a timestamp. An empty string means "no
// due date" and yields nil.
func Parse(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
