package formatter

import (
	"iter"
	"strings"
	"time"

	"github.com/alexanderramin/almanac/internal/calendar"
)

// DefaultSep separates dates in list output.
const DefaultSep = "/"

// Date renders a date as YYYYMMDD.
func Date(d calendar.Date) string {
	return d.String()
}

// DateTime renders a datetime as YYYYMMDDTHHMMSS.
func DateTime(t time.Time) string {
	return calendar.FormatDateTime(t)
}

// DateList renders a stream of dates joined by sep.
func DateList(dates iter.Seq[calendar.Date], sep string) string {
	var b strings.Builder
	first := true
	for d := range dates {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(Date(d))
		first = false
	}
	return b.String()
}
