package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/almanac/internal/calendar"
	"github.com/alexanderramin/almanac/internal/preset"
	"github.com/alexanderramin/almanac/internal/sequence"
)

// sequenceFlags collects the flags that select a date sequence. Exactly one
// of the sequence type flags must be set; --exclude refines daily, monthly
// and yearly sequences.
type sequenceFlags struct {
	daily      bool
	weekly     string
	monthly    string
	yearly     string
	presetName string
	exclude    string
}

func (f *sequenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.daily, "daily", false, "Daily inputs")
	cmd.Flags().StringVar(&f.weekly, "weekly", "", "Weekly inputs on these days (numbers or names, slash-separated)")
	cmd.Flags().StringVar(&f.monthly, "monthly", "", "Monthly inputs on these days (slash-separated)")
	cmd.Flags().StringVar(&f.yearly, "yearly", "", "Yearly inputs on these days (MMDD, slash-separated)")
	cmd.Flags().StringVar(&f.presetName, "preset", "", "Name of a preset sequence, or path to a YAML preset file")
	cmd.Flags().StringVar(&f.exclude, "exclude", "", "Exclude these dates (slash-separated)")

	cmd.MarkFlagsOneRequired("daily", "weekly", "monthly", "yearly", "preset")
	cmd.MarkFlagsMutuallyExclusive("daily", "weekly", "monthly", "yearly", "preset")
}

// sequence builds the selected sequence.
func (f *sequenceFlags) sequence(cmd *cobra.Command) (sequence.Sequence, error) {
	excludes := splitList(f.exclude)
	switch {
	case f.daily:
		days, err := intList(excludes)
		if err != nil {
			return nil, fmt.Errorf("invalid excludes, must be a slash-separated list of days")
		}
		return sequence.NewDaily(days), nil
	case cmd.Flags().Changed("weekly"):
		days, err := weekdayList(splitList(f.weekly))
		if err != nil {
			return nil, err
		}
		return sequence.NewWeekly(days)
	case cmd.Flags().Changed("monthly"):
		days, err := intList(splitList(f.monthly))
		if err != nil {
			return nil, fmt.Errorf("invalid monthly days: %w", err)
		}
		excl, err := monthDayList(excludes)
		if err != nil {
			return nil, err
		}
		return sequence.NewMonthly(days, excl)
	case cmd.Flags().Changed("yearly"):
		days, err := monthDayList(splitList(f.yearly))
		if err != nil {
			return nil, err
		}
		excl, err := dateList(excludes)
		if err != nil {
			return nil, err
		}
		return sequence.NewYearly(days, excl)
	default:
		return preset.Load(f.presetName)
	}
}

func splitList(arg string) []string {
	if arg == "" {
		return nil
	}
	return strings.Split(arg, "/")
}

func intList(vals []string) ([]int, error) {
	out := make([]int, 0, len(vals))
	for _, val := range vals {
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", val)
		}
		out = append(out, n)
	}
	return out, nil
}

func weekdayList(vals []string) ([]calendar.Weekday, error) {
	out := make([]calendar.Weekday, 0, len(vals))
	for _, val := range vals {
		day, err := calendar.ParseWeekday(val)
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}

func monthDayList(vals []string) ([]calendar.MonthDay, error) {
	out := make([]calendar.MonthDay, 0, len(vals))
	for _, val := range vals {
		md, err := calendar.ParseMonthDay(val)
		if err != nil {
			return nil, err
		}
		out = append(out, md)
	}
	return out, nil
}

func dateList(vals []string) ([]calendar.Date, error) {
	out := make([]calendar.Date, 0, len(vals))
	for _, val := range vals {
		d, err := calendar.ParseDate(val)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
