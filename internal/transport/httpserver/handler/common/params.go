package common

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ParseDateParam parses an optional YYYY-MM-DD query value as midnight in loc.
func ParseDateParam(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ParseUUIDParam accepts an empty value and otherwise requires a UUID.
func ParseUUIDParam(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := t.Format(dateLayout)
	return &value
}
