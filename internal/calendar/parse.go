package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// ParseMonthDay converts an "MMDD" string into a MonthDay pair.
func ParseMonthDay(val string) (MonthDay, error) {
	if len(val) != 4 || !isDigits(val) {
		return MonthDay{}, fmt.Errorf("unrecognised month-day value: %q", val)
	}
	month, _ := strconv.Atoi(val[:2])
	day, _ := strconv.Atoi(val[2:])
	return NewMonthDay(month, day)
}

// ParseDate converts a "YYYYMMDD" string into a Date.
func ParseDate(val string) (Date, error) {
	if len(val) != 8 || !isDigits(val) {
		return Date{}, fmt.Errorf("unrecognised date format: %q", val)
	}
	year, _ := strconv.Atoi(val[:4])
	month, _ := strconv.Atoi(val[4:6])
	day, _ := strconv.Atoi(val[6:])
	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("unrecognised date format: %q", val)
	}
	return d, nil
}

var dateTimeFormats = []string{
	"20060102T150405",
	"20060102T1504",
	"200601021504",
	"2006010215",
	"20060102",
}

// ParseDateTime converts a compact datetime string into a time.Time (UTC).
// Accepted forms: YYYYMMDD[THHMM[SS]], YYYYMMDDHH[MM].
func ParseDateTime(val string) (time.Time, error) {
	for _, format := range dateTimeFormats {
		if t, err := time.ParseInLocation(format, val, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised datetime format: %q", val)
}

// FormatDateTime formats a datetime as YYYYMMDDTHHMMSS.
func FormatDateTime(t time.Time) string {
	return t.Format("20060102T150405")
}
