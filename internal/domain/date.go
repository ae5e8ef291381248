package domain

import "time"

const (
	// DayFormat is the calendar-date layout of the CLI arguments.
	DayFormat = "2006-01-02"
	// DisplayDateFormat is the localized date layout of report rows.
	DisplayDateFormat = "02/01/2006"

	compactDateFormat = "20060102"
)

// ParseDay parses a YYYY-MM-DD string into its UTC midnight instant.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayFormat, value)
}

// DayOf truncates an epoch-seconds instant to its UTC day boundary.
func DayOf(epochSeconds int64) time.Time {
	t := time.Unix(epochSeconds, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CompactDate renders a date as an 8-digit YYYYMMDD tag, used as the
// prefix of composite invoice references.
func CompactDate(t time.Time) string {
	return t.UTC().Format(compactDateFormat)
}
