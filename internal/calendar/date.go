package calendar

import (
	"fmt"
	"time"
)

// Date is a Gregorian calendar date without a time-of-day component.
// Dates compare by value and support day-level arithmetic; all operations
// are exact across month, year and leap boundaries.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate validates year/month/day and returns the corresponding Date.
func NewDate(year, month, day int) (Date, error) {
	if !DayExists(year, month, day) {
		return Date{}, fmt.Errorf("invalid date: %04d-%02d-%02d", year, month, day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is like NewDate but panics on invalid input. Intended for
// fixtures and constants.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Sub returns the number of days between d and other (positive when d is
// later).
func (d Date) Sub(other Date) int {
	return int(d.Time().Sub(other.Time()) / (24 * time.Hour))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(d.Month, other.Month)
	default:
		return cmpInt(d.Day, other.Day)
	}
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

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// Weekday returns the day of the week, Monday = 0.
func (d Date) Weekday() Weekday {
	return Weekday((int(d.Time().Weekday()) + 6) % 7)
}

// MonthDay returns the month/day part of the date.
func (d Date) MonthDay() MonthDay {
	return MonthDay{Month: d.Month, Day: d.Day}
}

// String formats the date as YYYYMMDD.
func (d Date) String() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
}

// MonthDay is a (month, day) pair identifying a day of the year independent
// of any particular year. Pairs order lexicographically.
type MonthDay struct {
	Month int
	Day   int
}

// NewMonthDay validates the pair against a leap year, so Feb 29 is accepted.
func NewMonthDay(month, day int) (MonthDay, error) {
	if !DayExists(2000, month, day) {
		if month < 1 || month > 12 {
			return MonthDay{}, fmt.Errorf("invalid month: %d not in 1-12", month)
		}
		length, _ := MonthLength(2000, month)
		return MonthDay{}, fmt.Errorf("invalid day: %d not in 1-%d", day, length)
	}
	return MonthDay{Month: month, Day: day}, nil
}

// Compare orders pairs lexicographically by month then day.
func (md MonthDay) Compare(other MonthDay) int {
	if md.Month != other.Month {
		return cmpInt(md.Month, other.Month)
	}
	return cmpInt(md.Day, other.Day)
}

func (md MonthDay) Before(other MonthDay) bool { return md.Compare(other) < 0 }
func (md MonthDay) After(other MonthDay) bool  { return md.Compare(other) > 0 }

// String formats the pair as MMDD.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d%02d", md.Month, md.Day)
}
