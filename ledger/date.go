package ledger

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component. The zero value is not a
// valid date; ledger operations reject it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar day in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in ISO "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Compare orders dates chronologically, returning -1, 0 or 1.
func (d Date) Compare(other Date) int {
	if c := cmpInt(d.Year, other.Year); c != 0 {
		return c
	}
	if c := cmpInt(int(d.Month), int(other.Month)); c != 0 {
		return c
	}
	return cmpInt(d.Day, other.Day)
}

// ISOWeek returns the ISO 8601 year and week number the date falls in.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
