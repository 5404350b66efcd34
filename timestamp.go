package pharmacy

import "time"

// StampLayout is the wire layout of order timestamps in the history file.
const StampLayout = "02/01/2006 15:04:05"

// ParseStamp parses an order timestamp from a record field.
func ParseStamp(s string) (time.Time, error) {
	return time.ParseInLocation(StampLayout, s, time.Local)
}

// FormatStamp formats an order timestamp for persistence.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}
