// Package sequence implements recurring date sequences (daily, weekly,
// monthly, yearly, each with optional exclusions) and the generic traversal
// algorithms built on top of them.
package sequence

import (
	"errors"
	"fmt"
	"iter"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// ErrInvalidArgument is wrapped by every construction and argument error in
// this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Sequence is a rule determining which calendar dates are part of a
// recurring pattern. Contains is the defining operation; Next and Previous
// locate the adjacent in-sequence dates around a reference. With strict set,
// the reference itself is never returned even if it is in the sequence.
//
// All implementations in this package are immutable value objects and safe
// for concurrent use.
type Sequence interface {
	Contains(d calendar.Date) bool
	Next(ref calendar.Date, strict bool) calendar.Date
	Previous(ref calendar.Date, strict bool) calendar.Date
}

// nextByScan is the fallback Next implementation: a linear day-by-day walk
// forward until Contains matches. It does not terminate if the sequence has
// no date after ref; keeping that reachable set non-empty is the
// constructor's concern.
func nextByScan(s Sequence, ref calendar.Date, strict bool) calendar.Date {
	if !strict && s.Contains(ref) {
		return ref
	}
	cur := ref.AddDays(1)
	for !s.Contains(cur) {
		cur = cur.AddDays(1)
	}
	return cur
}

// previousByScan is the backward counterpart of nextByScan.
func previousByScan(s Sequence, ref calendar.Date, strict bool) calendar.Date {
	if !strict && s.Contains(ref) {
		return ref
	}
	cur := ref.AddDays(-1)
	for !s.Contains(cur) {
		cur = cur.AddDays(-1)
	}
	return cur
}

// Range returns the in-sequence dates between start and end in increasing
// order. includeStart and includeEnd control whether start and end are
// returned when they are themselves in the sequence. The returned iterator
// is finite and restartable.
func Range(s Sequence, start, end calendar.Date, includeStart, includeEnd bool) (iter.Seq[calendar.Date], error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start date should be before end date", ErrInvalidArgument)
	}
	return func(yield func(calendar.Date) bool) {
		cur := s.Next(start, !includeStart)
		last := s.Previous(end, !includeEnd)
		for cur.Compare(last) <= 0 {
			if !yield(cur) {
				return
			}
			cur = s.Next(cur, true)
		}
	}, nil
}

// Bracket returns the in-sequence dates around ref: before dates on the
// earlier side and after dates on the later side. The reference itself is
// skipped when strict is set, and never counts towards either side.
func Bracket(s Sequence, ref calendar.Date, before, after int, strict bool) (iter.Seq[calendar.Date], error) {
	if before <= 0 || after <= 0 {
		return nil, fmt.Errorf("%w: bracket counts must be positive", ErrInvalidArgument)
	}
	return func(yield func(calendar.Date) bool) {
		start := ref
		for i := 0; i < before; i++ {
			start = s.Previous(start, true)
		}
		end := ref
		for i := 0; i < after; i++ {
			end = s.Next(end, true)
		}
		rng, err := Range(s, start, end, true, true)
		if err != nil {
			return
		}
		for d := range rng {
			if strict && d == ref {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}, nil
}

// Resolve selects the winning side when Nearest finds two in-sequence dates
// at equal distance.
type Resolve string

const (
	ResolvePrevious Resolve = "previous"
	ResolveNext     Resolve = "next"
)

// Nearest returns the in-sequence date closest to ref (ref itself if it is
// in the sequence). Exact ties are broken according to resolve.
func Nearest(s Sequence, ref calendar.Date, resolve Resolve) (calendar.Date, error) {
	prev := s.Previous(ref, false)
	next := s.Next(ref, false)
	distPrev := ref.Sub(prev)
	distNext := next.Sub(ref)
	switch resolve {
	case ResolvePrevious:
		if distPrev <= distNext {
			return prev, nil
		}
		return next, nil
	case ResolveNext:
		if distNext <= distPrev {
			return next, nil
		}
		return prev, nil
	default:
		return calendar.Date{}, fmt.Errorf("%w: unknown resolve value %q, expected %q or %q",
			ErrInvalidArgument, resolve, ResolvePrevious, ResolveNext)
	}
}
