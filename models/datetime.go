package models

import (
	"fmt"
	"strings"
	"time"
)

// DateTime wraps time.Time so request bodies can carry either a full
// RFC3339 timestamp or a plain YYYY-MM-DD date, which is what the
// dashboard's date pickers send.
type DateTime struct {
	time.Time
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date format: %q", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}
