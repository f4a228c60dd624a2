package pickup

import (
	"strings"
	"time"
)

// форматы без смещения трактуются в настроенной таймзоне
var localStartDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func isValidID(id int64) bool {
	return id > 0
}

func parseStartDate(value string, location *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidStartDate
	}

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return parsed, nil
	}

	for _, layout := range localStartDateLayouts {
		parsed, err = time.ParseInLocation(layout, value, location)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ErrInvalidStartDate
}

func isInsideWorkWindow(proposed, workStart, workEnd time.Time) bool {
	return !proposed.Before(workStart) && !proposed.After(workEnd)
}
