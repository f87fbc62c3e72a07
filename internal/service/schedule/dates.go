package schedule

import "time"

const dateLayout = "2006-01-02"

// LocalDate reduces an API date value to a local calendar date string.
// The API serves shift dates as either bare dates or ISO timestamps;
// comparing raw UTC serializations misclassifies shifts near midnight,
// so every date comparison in this package goes through here.
func LocalDate(value string) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Local().Format(dateLayout)
	}
	if len(value) >= len(dateLayout) {
		if t, err := time.Parse(dateLayout, value[:len(dateLayout)]); err == nil {
			return t.Format(dateLayout)
		}
	}
	return value
}

// parseAnchor falls back to today when the query value is absent or bad.
func parseAnchor(value string, now time.Time) time.Time {
	if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
		return t
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
