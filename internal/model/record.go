package model

import (
	"strings"
	"time"
)

// TimestampLayout is the fixed layout of ledger timestamps: zero-padded
// month/day-first date, 12-hour clock with AM/PM suffix, no timezone.
// The layout never changes; the ledger file format depends on it.
const TimestampLayout = "01/02/2006 03:04:05 PM"

// HistoryRecord represents a single printed-label entry in the history ledger
type HistoryRecord struct {
	Barcode   string
	PrintedAt time.Time
}

// FormatTimestamp renders t in the ledger timestamp layout
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a ledger timestamp string back into a time.Time
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, strings.TrimSpace(s))
}

// Timestamp returns the record's print time formatted for the ledger
func (r HistoryRecord) Timestamp() string {
	return FormatTimestamp(r.PrintedAt)
}
