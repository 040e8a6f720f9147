package sequence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// Daily is the sequence of consecutive dates, skipping any day of the month
// listed in its excludes.
type Daily struct {
	excludes map[int]struct{}
}

// NewDaily builds a daily sequence. Excluding every possible day of a month
// would leave the traversal with nothing to find; constructors of realistic
// sequences exclude at most a handful of days.
func NewDaily(excludes []int) Daily {
	ex := make(map[int]struct{}, len(excludes))
	for _, day := range excludes {
		ex[day] = struct{}{}
	}
	return Daily{excludes: ex}
}

// Contains reports whether the date's day of the month is not excluded.
func (s Daily) Contains(d calendar.Date) bool {
	_, excluded := s.excludes[d.Day]
	return !excluded
}

// Next finds the next date via the generic scan; gaps are at most a few
// days so no closed-form shortcut is needed.
func (s Daily) Next(ref calendar.Date, strict bool) calendar.Date {
	return nextByScan(s, ref, strict)
}

func (s Daily) Previous(ref calendar.Date, strict bool) calendar.Date {
	return previousByScan(s, ref, strict)
}

func (s Daily) String() string {
	days := make([]int, 0, len(s.excludes))
	for day := range s.excludes {
		days = append(days, day)
	}
	sort.Ints(days)
	parts := make([]string, len(days))
	for i, day := range days {
		parts[i] = fmt.Sprintf("%d", day)
	}
	return fmt.Sprintf("Daily(excludes=[%s])", strings.Join(parts, ", "))
}
