// Package timesteps converts between forecast step ranges, expressed in
// hours since a base time, and calendar-level units such as forecast days,
// weeks and months.
package timesteps

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/almanac/internal/calendar"
)

const weekHours = 7 * 24

// StepRange is a span of forecast steps, in hours, from Start to End.
type StepRange struct {
	Start int
	End   int
}

func (r StepRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseStepRange parses a "start-end" range. A bare number is an instant
// range with equal start and end.
func ParseStepRange(arg string) (StepRange, error) {
	startStr, endStr, found := strings.Cut(arg, "-")
	if !found {
		endStr = startStr
	}
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return StepRange{}, fmt.Errorf("invalid step range %q", arg)
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return StepRange{}, fmt.Errorf("invalid step range %q", arg)
	}
	return StepRange{Start: start, End: end}, nil
}

// RegularRanges generates regularly-spaced ranges of the given width,
// starting at start, start+interval, start+2*interval and so on, keeping
// every range that ends at or before end.
func RegularRanges(start, end, width, interval int) iter.Seq[StepRange] {
	return func(yield func(StepRange) bool) {
		for step := start; step+width <= end; step += interval {
			if !yield(StepRange{Start: step, End: step + width}) {
				return
			}
		}
	}
}

// ExpandRange generates the steps within r at the given interval, from the
// start (or one interval past it when includeStart is false) up to and
// including the end when it falls on the grid.
func ExpandRange(r StepRange, interval int, includeStart bool) iter.Seq[int] {
	start := r.Start
	if !includeStart {
		start += interval
	}
	return func(yield func(int) bool) {
		for step := start; step <= r.End; step += interval {
			if !yield(step) {
				return
			}
		}
	}
}

func dailyShift(baseHour, dayStartHour int) int {
	return mod(dayStartHour-baseHour, 24)
}

// RangeFromDay computes the step range covering the given forecast day.
// Day 1 starts on the first step whose valid time of day is dayStartHour.
func RangeFromDay(day, baseHour, dayStartHour int) StepRange {
	start := dailyShift(baseHour, dayStartHour) + 24*(day-1)
	return StepRange{Start: start, End: start + 24}
}

// DayFromRange computes the forecast day covered by the given step range.
// This is the exact inverse of RangeFromDay.
func DayFromRange(r StepRange, baseHour, dayStartHour int) (int, error) {
	if r.End-r.Start != 24 {
		return 0, fmt.Errorf("range %q is not one day long", r)
	}
	shift := dailyShift(baseHour, dayStartHour)
	if (r.End-shift)%24 != 0 {
		return 0, fmt.Errorf("range %q does not align on a day", r)
	}
	return (r.End - shift) / 24, nil
}

// WeekBase is the base time of a weekly forecast: a week day, an hour of
// day, both, or neither. The zero value means no base time.
type WeekBase struct {
	weekday    calendar.Weekday
	hour       int
	hasWeekday bool
	hasHour    bool
}

// WeekBaseWeekday bases weeks on a week day at 00:00.
func WeekBaseWeekday(wd calendar.Weekday) WeekBase {
	return WeekBase{weekday: wd, hasWeekday: true}
}

// WeekBaseHour bases weeks on an hour of day, with no known week day.
func WeekBaseHour(hour int) WeekBase {
	return WeekBase{hour: hour, hasHour: true}
}

// WeekBaseAt bases weeks on a week day and an hour of day.
func WeekBaseAt(wd calendar.Weekday, hour int) WeekBase {
	return WeekBase{weekday: wd, hour: hour, hasWeekday: true, hasHour: true}
}

// WeekBaseDate bases weeks on the week day of the given date, at 00:00.
func WeekBaseDate(d calendar.Date) WeekBase {
	return WeekBaseWeekday(d.Weekday())
}

// WeekBaseTime bases weeks on the week day and hour of the given time.
func WeekBaseTime(t time.Time) WeekBase {
	wd := calendar.Weekday(mod(int(t.Weekday())-1, 7))
	return WeekBaseAt(wd, t.Hour())
}

func (b WeekBase) isZero() bool {
	return !b.hasWeekday && !b.hasHour
}

func (b WeekBase) shift() int {
	return mod(-b.hour, 24)
}

func (b WeekBase) shiftFrom(weekStart calendar.Weekday) (int, error) {
	if b.isZero() {
		return 0, fmt.Errorf("cannot compute week shift without a base time")
	}
	if !b.hasWeekday {
		return 0, fmt.Errorf("cannot compute week shift without a base week day")
	}
	shift := mod(int(weekStart)-int(b.weekday), 7)*24 - b.hour
	if shift < 0 {
		shift += weekHours
	}
	return shift, nil
}

// RangeFromWeek computes the step range covering the given forecast week.
// Week 1 starts on the first step whose valid time of day is 00:00.
func RangeFromWeek(week int, base WeekBase) StepRange {
	start := base.shift() + weekHours*(week-1)
	return StepRange{Start: start, End: start + weekHours}
}

// RangeFromWeekStarting computes the step range covering the given
// forecast week, with weeks starting on the given week day. The base must
// carry a week day.
func RangeFromWeekStarting(week int, base WeekBase, weekStart calendar.Weekday) (StepRange, error) {
	shift, err := base.shiftFrom(weekStart)
	if err != nil {
		return StepRange{}, err
	}
	start := shift + weekHours*(week-1)
	return StepRange{Start: start, End: start + weekHours}, nil
}

// WeekFromRange computes the forecast week covered by the given step
// range. This is the exact inverse of RangeFromWeek.
func WeekFromRange(r StepRange, base WeekBase) (int, error) {
	return weekFromRange(r, base.shift())
}

// WeekFromRangeStarting computes the forecast week covered by the given
// step range, with weeks starting on the given week day. This is the exact
// inverse of RangeFromWeekStarting.
func WeekFromRangeStarting(r StepRange, base WeekBase, weekStart calendar.Weekday) (int, error) {
	shift, err := base.shiftFrom(weekStart)
	if err != nil {
		return 0, err
	}
	return weekFromRange(r, shift)
}

func weekFromRange(r StepRange, shift int) (int, error) {
	if r.End-r.Start != weekHours {
		return 0, fmt.Errorf("range %q is not one week long", r)
	}
	if (r.End-shift)%weekHours != 0 {
		return 0, fmt.Errorf("range %q does not align on a week", r)
	}
	return (r.End - shift) / weekHours, nil
}

// StartDateFromMonth computes the date on which the given forecast month
// starts. The first month has index 1 and months start on day mstart; when
// the base date falls after the month start day, the first full month
// begins in the following calendar month.
func StartDateFromMonth(month int, base calendar.Date, mstart int) (calendar.Date, error) {
	if base.Day > mstart {
		month++
	}
	dyear, vmonth := floorDiv(base.Month+month-2, 12)
	return calendar.NewDate(base.Year+dyear, vmonth+1, mstart)
}

// MonthFromStartDate computes the forecast month starting on the given
// date. The first month has number 1. This is the exact inverse of
// StartDateFromMonth.
func MonthFromStartDate(base, start calendar.Date) int {
	dmonth := (start.Year-base.Year)*12 + start.Month - base.Month
	if base.Day > start.Day {
		dmonth--
	}
	return dmonth + 1
}

// RangeFromMonth computes the step range covering the given forecast
// month, accounting for the varying month lengths.
func RangeFromMonth(month int, base calendar.Date, mstart int) (StepRange, error) {
	valid, err := StartDateFromMonth(month, base, mstart)
	if err != nil {
		return StepRange{}, err
	}
	length, err := calendar.MonthLength(valid.Year, valid.Month)
	if err != nil {
		return StepRange{}, err
	}
	start := valid.Sub(base) * 24
	return StepRange{Start: start, End: start + length*24}, nil
}

// MonthFromRange computes the forecast month covered by the given step
// range. This is the exact inverse of RangeFromMonth.
func MonthFromRange(r StepRange, base calendar.Date, mstart int) (int, error) {
	days, _ := floorDiv(r.Start, 24)
	start := base.AddDays(days)
	if start.Day != mstart {
		return 0, fmt.Errorf("range %q does not align on a forecast month", r)
	}
	days, _ = floorDiv(r.End, 24)
	end := base.AddDays(days)
	if end.Day != start.Day {
		return 0, fmt.Errorf("range %q is not one month long", r)
	}
	return MonthFromStartDate(base, start), nil
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) (int, int) {
	q, r := a/n, a%n
	if r < 0 {
		q--
		r += n
	}
	return q, r
}
