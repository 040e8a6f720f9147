// Package climatology builds climatological date sets: the same calendar
// day repeated across a span of years, optionally combined with a recurring
// source sequence into a model-climate date set.
package climatology

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/alexanderramin/almanac/internal/calendar"
	"github.com/alexanderramin/almanac/internal/sequence"
	"github.com/alexanderramin/almanac/internal/stream"
)

// Recurrence is the repetition pattern of a climatological range.
type Recurrence string

// RecurrenceYearly repeats the reference's month and day once per year. It
// is the only supported recurrence.
const RecurrenceYearly Recurrence = "yearly"

// ErrUnsupportedRecurrence is returned when a recurrence other than yearly
// is requested.
var ErrUnsupportedRecurrence = errors.New("unsupported recurrence")

type boundKind int

const (
	boundYear boundKind = iota
	boundRelativeYear
	boundDate
)

// Bound is one end of a climatological period: a bare year, a year relative
// to the reference date, or a full date.
type Bound struct {
	kind boundKind
	year int
	date calendar.Date
}

// YearBound bounds the period at the reference day of the given year.
func YearBound(year int) Bound {
	return Bound{kind: boundYear, year: year}
}

// RelYearBound bounds the period at the reference day of the year
// offset years away from the reference (negative offsets look back).
func RelYearBound(offset int) Bound {
	return Bound{kind: boundRelativeYear, year: offset}
}

// DateBound bounds the period at an exact date.
func DateBound(d calendar.Date) Bound {
	return Bound{kind: boundDate, date: d}
}

// resolve turns the bound into a concrete date against the (normalized)
// reference.
func (b Bound) resolve(reference calendar.Date) calendar.Date {
	switch b.kind {
	case boundDate:
		return b.date
	case boundRelativeYear:
		return calendar.Date{Year: reference.Year + b.year, Month: reference.Month, Day: reference.Day}
	default:
		return calendar.Date{Year: b.year, Month: reference.Month, Day: reference.Day}
	}
}

// DateRange generates the dates sharing the reference's month and day, one
// per year, between start and end. A reference of February 29th is
// normalized to February 28th for every year in the output, so the range
// never skips non-leap years. Year bounds place their end on the reference
// day of that year; date bounds are rounded inward to the nearest
// qualifying date. includeEndpoint controls whether a date matching the end
// bound exactly is part of the output.
func DateRange(reference calendar.Date, start, end Bound, recurrence Recurrence, includeEndpoint bool) (iter.Seq[calendar.Date], error) {
	if recurrence != RecurrenceYearly {
		return nil, fmt.Errorf("%w: %q, expected %q", ErrUnsupportedRecurrence, recurrence, RecurrenceYearly)
	}

	if reference.Month == 2 && reference.Day == 29 {
		reference.Day = 28
	}

	seq, err := sequence.NewYearlyDay(reference.MonthDay())
	if err != nil {
		return nil, err
	}
	return sequence.Range(seq, start.resolve(reference), end.resolve(reference), true, includeEndpoint)
}

// Delta is a day-count offset around a reference date.
type Delta int

// DeltaOf converts a duration to a whole-day Delta, truncating any sub-day
// remainder.
func DeltaOf(d time.Duration) Delta {
	return Delta(d / (24 * time.Hour))
}

// ModelClimateDates generates the date set for a model climate: for every
// anchor date the source sequence produces within [reference-before,
// reference+after], the yearly climatological range of that anchor between
// start and end. The per-anchor ranges are merged into a single
// date-ordered stream; the same date produced by two overlapping anchor
// windows is emitted twice.
func ModelClimateDates(reference calendar.Date, start, end Bound, before, after Delta, seq sequence.Sequence) (iter.Seq[calendar.Date], error) {
	anchors, err := sequence.Range(seq, reference.AddDays(-int(before)), reference.AddDays(int(after)), true, true)
	if err != nil {
		return nil, err
	}
	var ranges []iter.Seq[calendar.Date]
	for anchor := range anchors {
		r, err := DateRange(anchor, start, end, RecurrenceYearly, true)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return stream.MergeSorted(calendar.Date.Before, ranges...), nil
}
