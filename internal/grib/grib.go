// Package grib converts dates, times and forecast steps to and from the
// numeric encodings used in GRIB metadata.
package grib

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/alexanderramin/almanac/internal/calendar"
)

var (
	plainStepPattern  = regexp.MustCompile(`^\d+$`)
	suffixStepPattern = regexp.MustCompile(`^\d+[a-zA-Z]$`)
)

// eccSecondsFactors maps ecCodes step unit suffixes to seconds.
var eccSecondsFactors = map[byte]int{
	's': 1,
	'm': 60,
	'h': 3600,
}

// DateToGRIB encodes a date as a YYYYMMDD integer.
func DateToGRIB(d calendar.Date) int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// TimeToGRIB encodes the time of day as an HHMM integer.
func TimeToGRIB(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// DateTimeToGRIB encodes a time as a YYYYMMDD date and an HHMM time.
// Seconds are discarded.
func DateTimeToGRIB(t time.Time) (int, int) {
	return DateToGRIB(calendar.DateOf(t)), TimeToGRIB(t)
}

// DateTimeFromGRIB decodes a YYYYMMDD date and an HHMM time into a UTC
// time.
func DateTimeFromGRIB(date, hhmm int) (time.Time, error) {
	d, err := calendar.NewDate(date/10000, date%10000/100, date%100)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid GRIB date %d: %w", date, err)
	}
	hour, minute := hhmm/100, hhmm%100
	if hhmm < 0 || hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid GRIB time %d", hhmm)
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, time.UTC), nil
}

// StepToDuration converts a forecast step to a duration. A plain number is
// a number of hours; a number with an ecCodes unit suffix ("90s", "30m",
// "12h") uses that unit.
func StepToDuration(step string) (time.Duration, error) {
	switch {
	case plainStepPattern.MatchString(step):
		hours, err := strconv.Atoi(step)
		if err != nil {
			return 0, fmt.Errorf("invalid step %q", step)
		}
		return time.Duration(hours) * time.Hour, nil
	case suffixStepPattern.MatchString(step):
		factor, ok := eccSecondsFactors[step[len(step)-1]]
		if !ok {
			return 0, fmt.Errorf("unsupported step units in %q", step)
		}
		value, err := strconv.Atoi(step[:len(step)-1])
		if err != nil {
			return 0, fmt.Errorf("invalid step %q", step)
		}
		return time.Duration(value*factor) * time.Second, nil
	default:
		return 0, fmt.Errorf("invalid step %q", step)
	}
}

// StepToGRIB encodes a duration as a forecast step: a bare hour count when
// the duration is a whole number of hours, a minute-suffixed value when it
// is a whole number of minutes, a second-suffixed value otherwise.
func StepToGRIB(d time.Duration) string {
	seconds := int(d / time.Second)
	switch {
	case seconds%3600 == 0:
		return strconv.Itoa(seconds / 3600)
	case seconds%60 == 0:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
