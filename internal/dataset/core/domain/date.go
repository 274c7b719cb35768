package domain

import (
	"fmt"
	"time"
)

// CalendarDate is a day without time-of-day or zone. It is comparable and
// safe to use as a map key.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func Date(year int, month time.Month, day int) CalendarDate {
	return NewCalendarDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseCalendarDate parses s with a time layout and drops any clock part.
func ParseCalendarDate(layout, s string) (CalendarDate, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewCalendarDate(t), nil
}

// Time returns midnight UTC of the date.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }
func (d CalendarDate) After(o CalendarDate) bool  { return d.Compare(o) > 0 }

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display renders the date the way the date read-out shows it, e.g. "Jul 15, 2021".
func (d CalendarDate) Display() string {
	return d.Time().Format("Jan 02, 2006")
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
