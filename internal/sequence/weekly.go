package sequence

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// Weekly is the sequence of dates falling on a fixed set of weekdays.
type Weekly struct {
	days []calendar.Weekday // sorted ascending, no duplicates
}

// NewWeekly builds a weekly sequence from the given weekdays.
func NewWeekly(days []calendar.Weekday) (Weekly, error) {
	if len(days) == 0 {
		return Weekly{}, fmt.Errorf("%w: weekly sequence needs at least one day", ErrInvalidArgument)
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	for _, day := range sorted {
		if day < calendar.Monday || day > calendar.Sunday {
			return Weekly{}, fmt.Errorf("%w: week day out of range: %d not in 0-6", ErrInvalidArgument, int(day))
		}
	}
	return Weekly{days: sorted}, nil
}

// Contains reports whether the date's weekday is one of the sequence days.
func (s Weekly) Contains(d calendar.Date) bool {
	return slices.Contains(s.days, d.Weekday())
}

// Next returns the next in-sequence date by weekday arithmetic: the first
// sequence day after the reference's weekday, wrapping to the following week
// when the reference falls on or after the last sequence day.
func (s Weekly) Next(ref calendar.Date, strict bool) calendar.Date {
	wday := ref.Weekday()
	if !strict && slices.Contains(s.days, wday) {
		return ref
	}
	target := s.days[0]
	for _, day := range s.days {
		if day > wday {
			target = day
			break
		}
	}
	delta := int(target - wday)
	if delta <= 0 {
		delta += 7
	}
	return ref.AddDays(delta)
}

// Previous is the backward counterpart of Next.
func (s Weekly) Previous(ref calendar.Date, strict bool) calendar.Date {
	wday := ref.Weekday()
	if !strict && slices.Contains(s.days, wday) {
		return ref
	}
	target := s.days[len(s.days)-1]
	for i := len(s.days) - 1; i >= 0; i-- {
		if s.days[i] < wday {
			target = s.days[i]
			break
		}
	}
	delta := int(target - wday)
	if delta >= 0 {
		delta -= 7
	}
	return ref.AddDays(delta)
}

func (s Weekly) String() string {
	parts := make([]string, len(s.days))
	for i, day := range s.days {
		parts[i] = day.String()
	}
	return fmt.Sprintf("Weekly(days=[%s])", strings.Join(parts, ", "))
}
