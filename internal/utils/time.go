package utils

import "time"

const (
	layoutDisplayDate = "1/2/2006"
	layoutDisplayTime = "3:04 PM"
)

// NowMillis returns current wall-clock time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatDisplayDate formats a timestamp the way the portal shows ledger dates.
func FormatDisplayDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDisplayDate)
}

// FormatDisplayTime formats a timestamp the way the portal shows ledger times.
func FormatDisplayTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDisplayTime)
}
