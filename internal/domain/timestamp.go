package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts for due dates and reminders.
// Input accepts one- or two-digit month, day and hour; output is zero padded.
const (
	TimestampLayout        = "2006-1-2 3:04 PM"
	TimestampDisplayLayout = "2006-01-02 03:04 PM"
	TimestampHint          = "YYYY-MM-DD hh:mm AM/PM"
)

// FormatError reports timestamp text that does not match TimestampHint.
// It satisfies errors.Is(err, ErrInvalidTimestamp).
type FormatError struct {
	Err   error  // Underlying parse error
	Field string // "due date" or "reminder"
	Input string // Text as received
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Field, e.Input, TimestampHint)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidTimestamp
}

// ParseTimestamp parses text in TimestampHint format in the local time zone.
// Blank text yields (nil, nil): no value, which is distinct from an invalid one.
func ParseTimestamp(field, text string) (*time.Time, error) {
	return ParseTimestampIn(field, text, time.Local)
}

// ParseTimestampIn is ParseTimestamp with an explicit location.
func ParseTimestampIn(field, text string, loc *time.Location) (*time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	// The meridiem is matched case-insensitively.
	t, err := time.ParseInLocation(TimestampLayout, strings.ToUpper(trimmed), loc)
	if err != nil {
		return nil, &FormatError{Field: field, Input: text, Err: err}
	}
	// time accepts hour 0 with a meridiem; a 12-hour clock runs 1 to 12.
	if zeroHour(trimmed) {
		return nil, &FormatError{Field: field, Input: text, Err: errHourOutOfRange}
	}
	return &t, nil
}

var errHourOutOfRange = errors.New("hour out of range")

// zeroHour reports whether the hour field of already parsed text is 0 or 00.
func zeroHour(text string) bool {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return false
	}
	hour, _, _ := strings.Cut(fields[1], ":")
	return strings.Trim(hour, "0") == ""
}

// FormatTimestamp renders t in TimestampDisplayLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampDisplayLayout)
}
