package timezone

import (
	"time"
)

// DisplayLayout is how itinerary timestamps are printed.
const DisplayLayout = "2006-01-02 15:04"

var localFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700", // Without colon
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseLocal parses an offers API timestamp. The offset carried by the string,
// the airport's local one, is preserved; strings without one are read as UTC.
func ParseLocal(timeStr string) (time.Time, error) {
	for _, format := range localFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{
		Value:   timeStr,
		Message: "unable to parse time string",
	}
}

// FormatLocal renders timeStr with DisplayLayout, or returns it unchanged when
// it cannot be parsed.
func FormatLocal(timeStr string) string {
	t, err := ParseLocal(timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format(DisplayLayout)
}
