package domain

import (
	"fmt"
	"time"

	"github.com/mrz1836/focusfive/internal/errors"
)

// Date is a calendar date without a time component. It is the identity key
// for a day's goals and serializes as ISO "YYYY-MM-DD".
type Date struct {
	// Year is the four-digit year.
	Year int
	// Month is the calendar month.
	Month time.Month
	// Day is the day of the month.
	Day int
}

// NewDate builds a Date and verifies it names a real calendar day.
// Returns ErrInvalidDate for impossible combinations like February 30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errors.Wrapf(errors.ErrInvalidDate, "%04d-%02d-%02d", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf extracts the calendar date from an instant.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, errors.Wrapf(errors.ErrInvalidDate, "%q", s)
	}
	return DateOf(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the ISO "YYYY-MM-DD" form, which is also the goals file stem.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Prev returns the preceding calendar day.
func (d Date) Prev() Date {
	return DateOf(d.Time().AddDate(0, 0, -1))
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// MarshalText implements encoding.TextMarshaler as ISO "YYYY-MM-DD".
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from ISO "YYYY-MM-DD".
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
