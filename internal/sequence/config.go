package sequence

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// Config is the boundary format for building sequences from configuration
// data (YAML presets or any other deserialized dictionary). Type selects
// the sequence kind; Days and Excludes carry kind-specific values:
//
//   - daily: no days; excludes are days of the month (1-31)
//   - weekly: days are weekday numbers or name prefixes; no excludes
//   - monthly: days are days of the month; excludes are MMDD values
//   - yearly: days are MMDD values; excludes are YYYYMMDD dates
type Config struct {
	Type     string     `yaml:"type"`
	Days     ScalarList `yaml:"days"`
	Excludes ScalarList `yaml:"excludes"`
}

// ScalarList accepts either a single YAML scalar or a list of scalars,
// normalizing every element to its string form.
type ScalarList []string

func (l *ScalarList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = ScalarList{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(ScalarList, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("expected a scalar value, got %v", item.Kind)
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("expected a scalar or a list of scalars")
	}
}

// FromConfig builds the concrete sequence described by cfg. The set of
// types is closed: daily, weekly, monthly and yearly.
func FromConfig(cfg Config) (Sequence, error) {
	switch cfg.Type {
	case "":
		return nil, fmt.Errorf("sequence definition must contain a type")
	case "daily":
		excludes, err := intValues(cfg.Excludes)
		if err != nil {
			return nil, fmt.Errorf("daily sequence excludes: %w", err)
		}
		return NewDaily(excludes), nil
	case "weekly":
		if cfg.Days == nil {
			return nil, fmt.Errorf("weekly sequence must provide days")
		}
		days := make([]calendar.Weekday, 0, len(cfg.Days))
		for _, val := range cfg.Days {
			day, err := calendar.ParseWeekday(val)
			if err != nil {
				return nil, fmt.Errorf("weekly sequence days: %w", err)
			}
			days = append(days, day)
		}
		return NewWeekly(days)
	case "monthly":
		if cfg.Days == nil {
			return nil, fmt.Errorf("monthly sequence must provide days")
		}
		days, err := intValues(cfg.Days)
		if err != nil {
			return nil, fmt.Errorf("monthly sequence days: %w", err)
		}
		excludes := make([]calendar.MonthDay, 0, len(cfg.Excludes))
		for _, val := range cfg.Excludes {
			md, err := calendar.ParseMonthDay(val)
			if err != nil {
				return nil, fmt.Errorf("monthly sequence excludes: %w", err)
			}
			excludes = append(excludes, md)
		}
		return NewMonthly(days, excludes)
	case "yearly":
		if cfg.Days == nil {
			return nil, fmt.Errorf("yearly sequence must provide days")
		}
		days := make([]calendar.MonthDay, 0, len(cfg.Days))
		for _, val := range cfg.Days {
			md, err := calendar.ParseMonthDay(val)
			if err != nil {
				return nil, fmt.Errorf("yearly sequence days: %w", err)
			}
			days = append(days, md)
		}
		excludes := make([]calendar.Date, 0, len(cfg.Excludes))
		for _, val := range cfg.Excludes {
			d, err := calendar.ParseDate(val)
			if err != nil {
				return nil, fmt.Errorf("yearly sequence excludes: %w", err)
			}
			excludes = append(excludes, d)
		}
		return NewYearly(days, excludes)
	default:
		return nil, fmt.Errorf("unknown sequence type %q", cfg.Type)
	}
}

func intValues(vals []string) ([]int, error) {
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
