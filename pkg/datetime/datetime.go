// Package datetime provides date parsing and display helpers for offer validity dates.
// Dates are normalized to UTC.
package datetime

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Standard date formats used throughout the application.
const (
	// DateFormat is the standard date-only format (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// DateTimeFormat is the standard datetime format (ISO 8601 / RFC3339).
	DateTimeFormat = time.RFC3339

	// DisplayDateFormat is for human-readable dates.
	DisplayDateFormat = "Jan 2, 2006"
)

// ErrUnrecognizedDate is returned when no supported layout matches.
var ErrUnrecognizedDate = errors.New("unrecognized date format")

// layouts accepted by ParseFlexible, tried in order. The naive layouts cover
// upstream services that emit ISO datetimes without an offset.
var layouts = []string{
	DateFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// Date represents a date-only value (no time component).
// It serializes to/from JSON as "YYYY-MM-DD" format.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// ParseFlexible parses a date in any of the accepted layouts and truncates it to the UTC day.
func ParseFlexible(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrUnrecognizedDate
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		t = t.UTC()
		return NewDate(t.Year(), t.Month(), t.Day()), nil
	}
	return Date{}, ErrUnrecognizedDate
}

// Display returns the date in DisplayDateFormat, or "" for the zero date.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DisplayDateFormat)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		return nil
	}

	parsed, err := ParseFlexible(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateFormat)
}
