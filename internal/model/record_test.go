package model

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	// Zero-padded month/day, 12-hour clock, PM suffix
	when := time.Date(2024, 2, 1, 15, 4, 5, 0, time.UTC)
	got := FormatTimestamp(when)
	want := "02/01/2024 03:04:05 PM"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatTimestampMorning(t *testing.T) {
	when := time.Date(2024, 12, 25, 9, 30, 0, 0, time.UTC)
	got := FormatTimestamp(when)
	want := "12/25/2024 09:30:00 AM"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestParseTimestampRoundTrip(t *testing.T) {
	when := time.Date(2023, 7, 4, 23, 59, 59, 0, time.UTC)

	parsed, err := ParseTimestamp(FormatTimestamp(when))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !parsed.Equal(when) {
		t.Errorf("Expected %v, got %v", when, parsed)
	}
}

func TestParseTimestampTrimsWhitespace(t *testing.T) {
	parsed, err := ParseTimestamp("  01/15/2024 10:00:00 AM ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if parsed.Month() != time.January || parsed.Day() != 15 {
		t.Errorf("Expected Jan 15, got %v", parsed)
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	if _, err := ParseTimestamp("not a timestamp"); err == nil {
		t.Error("Expected error for invalid timestamp, got nil")
	}
}

func TestHistoryRecordTimestamp(t *testing.T) {
	record := HistoryRecord{
		Barcode:   "ABC123",
		PrintedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	if record.Timestamp() != "01/15/2024 10:00:00 AM" {
		t.Errorf("Unexpected timestamp: %s", record.Timestamp())
	}
}
