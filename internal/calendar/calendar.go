// Package calendar provides Gregorian calendar primitives: dates as plain
// year/month/day values, weekdays, month lengths and leap-year rules.
package calendar

import (
	"fmt"
	"strings"
)

// Weekday numbers days of the week with Monday = 0 through Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// ParseWeekday converts a numeric string ("0"-"6", 0 = Monday) or any
// unambiguous case-insensitive prefix of a weekday name (e.g. "M", "tue",
// "Friday") into a Weekday.
func ParseWeekday(val string) (Weekday, error) {
	if val == "" {
		return 0, fmt.Errorf("empty week day")
	}
	if isDigits(val) {
		n := 0
		for _, c := range val {
			n = n*10 + int(c-'0')
		}
		if n > 6 {
			return 0, fmt.Errorf("week day out of range: %d not in 0-6", n)
		}
		return Weekday(n), nil
	}
	upper := strings.ToUpper(val)
	match := Weekday(-1)
	for i, name := range weekdayNames {
		if strings.HasPrefix(name, upper) {
			if match >= 0 {
				return 0, fmt.Errorf("ambiguous week day: %q could be %s or %s", val, match, Weekday(i))
			}
			match = Weekday(i)
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("unrecognised week day: %q", val)
	}
	return match, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// IsLeap reports whether the given year is a leap year in the Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthLength returns the number of days in the given month, accounting for
// leap years.
func MonthLength(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d", month)
	}
	if month == 2 && IsLeap(year) {
		return 29, nil
	}
	return monthLengths[month], nil
}

// DayExists reports whether the given day exists in the calendar.
// Out-of-range months and days return false rather than an error.
func DayExists(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	length, _ := MonthLength(year, month)
	return day >= 1 && day <= length
}

// MonthInYear identifies one month of a specific year. It is the unit of
// traversal for month-granularity walks: Next and Previous roll the year at
// the December/January boundary.
type MonthInYear struct {
	Year  int
	Month int
}

// NewMonthInYear validates the month and returns the corresponding
// MonthInYear.
func NewMonthInYear(year, month int) (MonthInYear, error) {
	if month < 1 || month > 12 {
		return MonthInYear{}, fmt.Errorf("invalid month: %d", month)
	}
	return MonthInYear{Year: year, Month: month}, nil
}

// Length returns the number of days in this month.
func (m MonthInYear) Length() int {
	length, _ := MonthLength(m.Year, m.Month)
	return length
}

// ContainsDay reports whether the given day of the month exists.
func (m MonthInYear) ContainsDay(day int) bool {
	return day >= 1 && day <= m.Length()
}

// Next returns the following month, rolling into January of the next year
// after December.
func (m MonthInYear) Next() MonthInYear {
	if m.Month == 12 {
		return MonthInYear{Year: m.Year + 1, Month: 1}
	}
	return MonthInYear{Year: m.Year, Month: m.Month + 1}
}

// Previous returns the preceding month, rolling into December of the
// previous year before January.
func (m MonthInYear) Previous() MonthInYear {
	if m.Month == 1 {
		return MonthInYear{Year: m.Year - 1, Month: 12}
	}
	return MonthInYear{Year: m.Year, Month: m.Month - 1}
}

func (m MonthInYear) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
