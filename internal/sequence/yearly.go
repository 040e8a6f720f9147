package sequence

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// Yearly is the sequence of dates falling on a fixed set of (month, day)
// pairs each year. A full date listed in excludes is skipped, and a pair
// that does not exist in some year (Feb 29 outside leap years) is skipped
// for that year.
type Yearly struct {
	days     []calendar.MonthDay // sorted ascending, no duplicates
	excludes map[calendar.Date]struct{}
}

// NewYearly builds a yearly sequence from the given (month, day) pairs.
func NewYearly(days []calendar.MonthDay, excludes []calendar.Date) (Yearly, error) {
	if len(days) == 0 {
		return Yearly{}, fmt.Errorf("%w: yearly sequence needs at least one day", ErrInvalidArgument)
	}
	sorted := slices.Clone(days)
	slices.SortFunc(sorted, calendar.MonthDay.Compare)
	sorted = slices.Compact(sorted)
	for _, md := range sorted {
		if !calendar.DayExists(2000, md.Month, md.Day) {
			return Yearly{}, fmt.Errorf("%w: invalid day of year: %02d-%02d", ErrInvalidArgument, md.Month, md.Day)
		}
	}
	ex := make(map[calendar.Date]struct{}, len(excludes))
	for _, d := range excludes {
		ex[d] = struct{}{}
	}
	return Yearly{days: sorted, excludes: ex}, nil
}

// NewYearlyDay builds a yearly sequence recurring on a single (month, day)
// pair.
func NewYearlyDay(md calendar.MonthDay) (Yearly, error) {
	return NewYearly([]calendar.MonthDay{md}, nil)
}

func (s Yearly) excluded(d calendar.Date) bool {
	_, ok := s.excludes[d]
	return ok
}

// Contains reports whether the date's (month, day) pair is a sequence day
// and the date itself is not excluded.
func (s Yearly) Contains(d calendar.Date) bool {
	return slices.Contains(s.days, d.MonthDay()) && !s.excluded(d)
}

// Next searches the remainder of the reference year in lexicographic
// (month, day) order, then walks forward year by year until a pair exists
// in that year and is not excluded.
func (s Yearly) Next(ref calendar.Date, strict bool) calendar.Date {
	if !strict && s.Contains(ref) {
		return ref
	}
	refMD := ref.MonthDay()
	for _, md := range s.days {
		if md.After(refMD) && calendar.DayExists(ref.Year, md.Month, md.Day) {
			candidate := calendar.Date{Year: ref.Year, Month: md.Month, Day: md.Day}
			if !s.excluded(candidate) {
				return candidate
			}
		}
	}
	for year := ref.Year + 1; ; year++ {
		for _, md := range s.days {
			if calendar.DayExists(year, md.Month, md.Day) {
				candidate := calendar.Date{Year: year, Month: md.Month, Day: md.Day}
				if !s.excluded(candidate) {
					return candidate
				}
			}
		}
	}
}

// Previous is the backward counterpart of Next, scanning pairs in
// descending order.
func (s Yearly) Previous(ref calendar.Date, strict bool) calendar.Date {
	if !strict && s.Contains(ref) {
		return ref
	}
	refMD := ref.MonthDay()
	for i := len(s.days) - 1; i >= 0; i-- {
		md := s.days[i]
		if md.Before(refMD) && calendar.DayExists(ref.Year, md.Month, md.Day) {
			candidate := calendar.Date{Year: ref.Year, Month: md.Month, Day: md.Day}
			if !s.excluded(candidate) {
				return candidate
			}
		}
	}
	for year := ref.Year - 1; ; year-- {
		for i := len(s.days) - 1; i >= 0; i-- {
			md := s.days[i]
			if calendar.DayExists(year, md.Month, md.Day) {
				candidate := calendar.Date{Year: year, Month: md.Month, Day: md.Day}
				if !s.excluded(candidate) {
					return candidate
				}
			}
		}
	}
}

func (s Yearly) String() string {
	parts := make([]string, len(s.days))
	for i, md := range s.days {
		parts[i] = md.String()
	}
	return fmt.Sprintf("Yearly(days=[%s], excludes=%d)", strings.Join(parts, ", "), len(s.excludes))
}
