package formatter

import (
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/almanac/internal/calendar"
)

func dates(ds ...calendar.Date) iter.Seq[calendar.Date] {
	return func(yield func(calendar.Date) bool) {
		for _, d := range ds {
			if !yield(d) {
				return
			}
		}
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "20240229", Date(calendar.MustDate(2024, 2, 29)))
	assert.Equal(t, "09990101", Date(calendar.MustDate(999, 1, 1)))
}

func TestDateTime(t *testing.T) {
	at := time.Date(2024, 2, 29, 6, 30, 15, 0, time.UTC)
	assert.Equal(t, "20240229T063015", DateTime(at))
}

func TestDateList(t *testing.T) {
	ds := dates(
		calendar.MustDate(2024, 2, 26),
		calendar.MustDate(2024, 2, 29),
		calendar.MustDate(2024, 3, 4),
	)
	assert.Equal(t, "20240226/20240229/20240304", DateList(ds, DefaultSep))
	assert.Equal(t, "20240226 20240229 20240304", DateList(ds, " "))
	assert.Equal(t, "", DateList(dates(), "/"))
}
