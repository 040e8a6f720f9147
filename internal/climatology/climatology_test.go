package climatology

import (
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/almanac/internal/calendar"
	"github.com/alexanderramin/almanac/internal/sequence"
)

func dt(y, m, d int) calendar.Date { return calendar.MustDate(y, m, d) }

func collect(t *testing.T, seq iter.Seq[calendar.Date], err error) []calendar.Date {
	t.Helper()
	require.NoError(t, err)
	out := []calendar.Date{}
	for d := range seq {
		out = append(out, d)
	}
	return out
}

func TestDateRange_Years(t *testing.T) {
	seq, err := DateRange(dt(2020, 4, 12), YearBound(1999), YearBound(2002), RecurrenceYearly, true)
	got := collect(t, seq, err)
	assert.Equal(t, []calendar.Date{
		dt(1999, 4, 12), dt(2000, 4, 12), dt(2001, 4, 12), dt(2002, 4, 12),
	}, got)
}

func TestDateRange_ExcludeEndpoint(t *testing.T) {
	seq, err := DateRange(dt(2020, 4, 12), YearBound(1999), YearBound(2002), RecurrenceYearly, false)
	got := collect(t, seq, err)
	assert.Equal(t, []calendar.Date{
		dt(1999, 4, 12), dt(2000, 4, 12), dt(2001, 4, 12),
	}, got)
}

func TestDateRange_DateBounds(t *testing.T) {
	seq, err := DateRange(dt(2014, 8, 23), DateBound(dt(2010, 8, 16)), DateBound(dt(2012, 8, 1)), RecurrenceYearly, true)
	got := collect(t, seq, err)
	assert.Equal(t, []calendar.Date{dt(2010, 8, 23), dt(2011, 8, 23)}, got)
}

func TestDateRange_RelativeYears(t *testing.T) {
	seq, err := DateRange(dt(2014, 8, 23), RelYearBound(-3), RelYearBound(-1), RecurrenceYearly, true)
	got := collect(t, seq, err)
	assert.Equal(t, []calendar.Date{dt(2011, 8, 23), dt(2012, 8, 23), dt(2013, 8, 23)}, got)
}

func TestDateRange_UnsupportedRecurrence(t *testing.T) {
	_, err := DateRange(dt(2020, 4, 12), YearBound(1999), YearBound(2002), Recurrence("monthly"), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedRecurrence))
}

func TestDateRange_EndBeforeStart(t *testing.T) {
	_, err := DateRange(dt(2020, 4, 12), YearBound(2002), YearBound(1999), RecurrenceYearly, true)
	assert.Error(t, err)
}

func TestDateRange_LeapYear(t *testing.T) {
	cases := []struct {
		name       string
		reference  calendar.Date
		start, end Bound
		want       []calendar.Date
	}{
		{
			"reference is leap",
			dt(2020, 2, 29), YearBound(2018), YearBound(2020),
			[]calendar.Date{dt(2018, 2, 28), dt(2019, 2, 28), dt(2020, 2, 28)},
		},
		{
			"reference is leap, date bounds",
			dt(2020, 2, 29), DateBound(dt(2017, 2, 28)), DateBound(dt(2019, 3, 1)),
			[]calendar.Date{dt(2017, 2, 28), dt(2018, 2, 28), dt(2019, 2, 28)},
		},
		{
			"start is leap, reference after",
			dt(2022, 3, 1), DateBound(dt(2020, 2, 29)), DateBound(dt(2023, 3, 1)),
			[]calendar.Date{dt(2020, 3, 1), dt(2021, 3, 1), dt(2022, 3, 1), dt(2023, 3, 1)},
		},
		{
			"start is leap, reference before",
			dt(2022, 2, 28), DateBound(dt(2020, 2, 29)), DateBound(dt(2023, 3, 1)),
			[]calendar.Date{dt(2021, 2, 28), dt(2022, 2, 28), dt(2023, 2, 28)},
		},
		{
			"end is leap, reference after",
			dt(2022, 3, 1), DateBound(dt(2020, 2, 28)), DateBound(dt(2024, 2, 29)),
			[]calendar.Date{dt(2020, 3, 1), dt(2021, 3, 1), dt(2022, 3, 1), dt(2023, 3, 1)},
		},
		{
			"end is leap, reference before",
			dt(2022, 2, 28), DateBound(dt(2020, 2, 28)), DateBound(dt(2024, 2, 29)),
			[]calendar.Date{dt(2020, 2, 28), dt(2021, 2, 28), dt(2022, 2, 28), dt(2023, 2, 28), dt(2024, 2, 28)},
		},
		{
			"start and end are leap, reference after",
			dt(2022, 3, 1), DateBound(dt(2020, 2, 29)), DateBound(dt(2024, 2, 29)),
			[]calendar.Date{dt(2020, 3, 1), dt(2021, 3, 1), dt(2022, 3, 1), dt(2023, 3, 1)},
		},
		{
			"start and end are leap, reference before",
			dt(2022, 2, 28), DateBound(dt(2020, 2, 29)), DateBound(dt(2024, 2, 29)),
			[]calendar.Date{dt(2021, 2, 28), dt(2022, 2, 28), dt(2023, 2, 28), dt(2024, 2, 28)},
		},
		{
			"reference and start are leap",
			dt(2020, 2, 29), DateBound(dt(2016, 2, 29)), DateBound(dt(2019, 3, 1)),
			[]calendar.Date{dt(2017, 2, 28), dt(2018, 2, 28), dt(2019, 2, 28)},
		},
		{
			"reference and end are leap",
			dt(2020, 2, 29), DateBound(dt(2017, 2, 28)), DateBound(dt(2020, 2, 29)),
			[]calendar.Date{dt(2017, 2, 28), dt(2018, 2, 28), dt(2019, 2, 28), dt(2020, 2, 28)},
		},
		{
			"all dates are leap",
			dt(2020, 2, 29), DateBound(dt(2016, 2, 29)), DateBound(dt(2020, 2, 29)),
			[]calendar.Date{dt(2017, 2, 28), dt(2018, 2, 28), dt(2019, 2, 28), dt(2020, 2, 28)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := DateRange(tc.reference, tc.start, tc.end, RecurrenceYearly, true)
			got := collect(t, seq, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func mclimWant(monthDays [][2]int, years ...int) []calendar.Date {
	var out []calendar.Date
	for _, year := range years {
		for _, md := range monthDays {
			out = append(out, calendar.MustDate(year, md[0], md[1]))
		}
	}
	return out
}

func TestModelClimateDates_Weekly(t *testing.T) {
	seq, err := sequence.NewWeekly([]calendar.Weekday{calendar.Monday, calendar.Thursday})
	require.NoError(t, err)

	dates, err := ModelClimateDates(dt(2024, 2, 12), YearBound(2020), YearBound(2023), 7, 7, seq)
	got := collect(t, dates, err)
	want := mclimWant([][2]int{{2, 5}, {2, 8}, {2, 12}, {2, 15}, {2, 19}}, 2020, 2021, 2022, 2023)
	assert.Equal(t, want, got)
}

func TestModelClimateDates_WeeklyLeapReference(t *testing.T) {
	seq, err := sequence.NewWeekly([]calendar.Weekday{calendar.Monday, calendar.Thursday})
	require.NoError(t, err)

	dates, err := ModelClimateDates(dt(2024, 2, 29), YearBound(2020), YearBound(2023), 7, 7, seq)
	got := collect(t, dates, err)
	want := mclimWant([][2]int{{2, 22}, {2, 26}, {2, 28}, {3, 4}, {3, 7}}, 2020, 2021, 2022, 2023)
	assert.Equal(t, want, got)
}

func TestModelClimateDates_Monthly(t *testing.T) {
	days := []int{}
	for day := 1; day < 32; day += 2 {
		days = append(days, day)
	}
	seq, err := sequence.NewMonthly(days, []calendar.MonthDay{{Month: 2, Day: 29}})
	require.NoError(t, err)

	dates, err := ModelClimateDates(dt(2024, 2, 12), YearBound(2020), YearBound(2023), 7, 7, seq)
	got := collect(t, dates, err)
	want := mclimWant([][2]int{
		{2, 5}, {2, 7}, {2, 9}, {2, 11}, {2, 13}, {2, 15}, {2, 17}, {2, 19},
	}, 2020, 2021, 2022, 2023)
	assert.Equal(t, want, got)
}

func TestModelClimateDates_RelativeYears(t *testing.T) {
	seq, err := sequence.NewYearly([]calendar.MonthDay{
		{Month: 12, Day: 29}, {Month: 12, Day: 31}, {Month: 1, Day: 1},
	}, nil)
	require.NoError(t, err)

	dates, err := ModelClimateDates(dt(2024, 12, 31), RelYearBound(-3), RelYearBound(-1), 2, 2, seq)
	got := collect(t, dates, err)
	want := []calendar.Date{
		dt(2021, 12, 29), dt(2021, 12, 31), dt(2022, 1, 1),
		dt(2022, 12, 29), dt(2022, 12, 31), dt(2023, 1, 1),
		dt(2023, 12, 29), dt(2023, 12, 31), dt(2024, 1, 1),
	}
	assert.Equal(t, want, got)
}

func TestModelClimateDates_DeltaOf(t *testing.T) {
	assert.Equal(t, Delta(7), DeltaOf(7*24*time.Hour))
	assert.Equal(t, Delta(1), DeltaOf(36*time.Hour))
}

func TestModelClimateDates_Restartable(t *testing.T) {
	seq, err := sequence.NewWeekly([]calendar.Weekday{calendar.Monday})
	require.NoError(t, err)
	dates, err := ModelClimateDates(dt(2024, 2, 12), YearBound(2022), YearBound(2023), 3, 3, seq)
	require.NoError(t, err)
	first := []calendar.Date{}
	for d := range dates {
		first = append(first, d)
	}
	second := []calendar.Date{}
	for d := range dates {
		second = append(second, d)
	}
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
