package sequence

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// Monthly is the sequence of dates falling on a fixed set of days of the
// month. A (month, day) pair listed in excludes is skipped, as is any day
// that does not exist in a given month (e.g. the 31st in April).
type Monthly struct {
	days     []int // sorted ascending, no duplicates
	excludes map[calendar.MonthDay]struct{}
}

// NewMonthly builds a monthly sequence from the given days of the month.
func NewMonthly(days []int, excludes []calendar.MonthDay) (Monthly, error) {
	if len(days) == 0 {
		return Monthly{}, fmt.Errorf("%w: monthly sequence needs at least one day", ErrInvalidArgument)
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for _, day := range sorted {
		if day < 1 || day > 31 {
			return Monthly{}, fmt.Errorf("%w: day of month out of range: %d not in 1-31", ErrInvalidArgument, day)
		}
	}
	ex := make(map[calendar.MonthDay]struct{}, len(excludes))
	for _, md := range excludes {
		ex[md] = struct{}{}
	}
	return Monthly{days: sorted, excludes: ex}, nil
}

func (s Monthly) excluded(month, day int) bool {
	_, ok := s.excludes[calendar.MonthDay{Month: month, Day: day}]
	return ok
}

// Contains reports whether the date's day of the month is a sequence day
// and its (month, day) pair is not excluded.
func (s Monthly) Contains(d calendar.Date) bool {
	return slices.Contains(s.days, d.Day) && !s.excluded(d.Month, d.Day)
}

// Next searches the remainder of the reference month, then walks forward
// month by month (rolling years) until a sequence day exists and is not
// excluded.
func (s Monthly) Next(ref calendar.Date, strict bool) calendar.Date {
	if !strict && s.Contains(ref) {
		return ref
	}
	month := calendar.MonthInYear{Year: ref.Year, Month: ref.Month}
	for _, day := range s.days {
		if day > ref.Day && month.ContainsDay(day) && !s.excluded(month.Month, day) {
			return calendar.Date{Year: month.Year, Month: month.Month, Day: day}
		}
	}
	for {
		month = month.Next()
		for _, day := range s.days {
			if month.ContainsDay(day) && !s.excluded(month.Month, day) {
				return calendar.Date{Year: month.Year, Month: month.Month, Day: day}
			}
		}
	}
}

// Previous is the backward counterpart of Next, scanning days in descending
// order.
func (s Monthly) Previous(ref calendar.Date, strict bool) calendar.Date {
	if !strict && s.Contains(ref) {
		return ref
	}
	month := calendar.MonthInYear{Year: ref.Year, Month: ref.Month}
	for i := len(s.days) - 1; i >= 0; i-- {
		day := s.days[i]
		if day < ref.Day && month.ContainsDay(day) && !s.excluded(month.Month, day) {
			return calendar.Date{Year: month.Year, Month: month.Month, Day: day}
		}
	}
	for {
		month = month.Previous()
		for i := len(s.days) - 1; i >= 0; i-- {
			day := s.days[i]
			if month.ContainsDay(day) && !s.excluded(month.Month, day) {
				return calendar.Date{Year: month.Year, Month: month.Month, Day: day}
			}
		}
	}
}

func (s Monthly) String() string {
	parts := make([]string, len(s.days))
	for i, day := range s.days {
		parts[i] = fmt.Sprintf("%d", day)
	}
	return fmt.Sprintf("Monthly(days=[%s], excludes=%d)", strings.Join(parts, ", "), len(s.excludes))
}
