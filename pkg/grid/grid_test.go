package grid

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/gyoji/pkg/timeutil"
)

func TestBuildApril2026SundayStart(t *testing.T) {
	days := Build(timeutil.MustDate("2026-04-15"), time.Sunday)

	require.Len(t, days, 35)
	assert.Equal(t, timeutil.MustDate("2026-03-29"), days[0])
	assert.Equal(t, timeutil.MustDate("2026-05-02"), days[len(days)-1])
}

func TestBuildBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		weekStart time.Weekday
		first     string
		last      string
		length    int
	}{
		{
			// February 2026 starts on a Sunday and ends on a Saturday.
			name: "no padding", ref: "2026-02-10", weekStart: time.Sunday,
			first: "2026-02-01", last: "2026-02-28", length: 28,
		},
		{
			name: "monday start", ref: "2026-02-10", weekStart: time.Monday,
			first: "2026-01-26", last: "2026-03-01", length: 35,
		},
		{
			// August 2026 starts on a Saturday: six rows.
			name: "six weeks", ref: "2026-08-31", weekStart: time.Sunday,
			first: "2026-07-26", last: "2026-09-05", length: 42,
		},
		{
			name: "year rollover", ref: "2025-12-01", weekStart: time.Sunday,
			first: "2025-11-30", last: "2026-01-03", length: 35,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Build(timeutil.MustDate(tt.ref), tt.weekStart)
			require.Len(t, days, tt.length)
			assert.Equal(t, timeutil.MustDate(tt.first), days[0])
			assert.Equal(t, timeutil.MustDate(tt.last), days[len(days)-1])
		})
	}
}

func TestBuildProperties(t *testing.T) {
	start := timeutil.Month{Year: 1999, Month: time.January}
	for i := 0; i < 12*40; i++ {
		month := start.AddMonths(i)
		for ws := time.Sunday; ws <= time.Saturday; ws++ {
			ref := month.First().AddDays(i % month.Days())
			days := Build(ref, ws)

			require.Zero(t, len(days)%DaysPerWeek, "%s ws=%d", month, ws)
			require.GreaterOrEqual(t, len(days), 28)
			require.LessOrEqual(t, len(days), 42)
			assert.Equal(t, ws, days[0].Weekday())
			assert.Equal(t, (ws+6)%7, days[len(days)-1].Weekday())

			seen := make(map[timeutil.Date]bool, len(days))
			for j, d := range days {
				require.False(t, seen[d], "duplicate %s", d)
				seen[d] = true
				if j > 0 {
					require.Equal(t, days[j-1].AddDays(1), d)
				}
			}
			require.True(t, seen[month.First()])
			require.True(t, seen[month.Last()])
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	ref := timeutil.MustDate("2026-10-15")
	assert.Equal(t, Build(ref, time.Sunday), Build(ref, time.Sunday))
}

func TestBuildNormalizesWeekStart(t *testing.T) {
	ref := timeutil.MustDate("2026-04-01")
	assert.Equal(t, Build(ref, time.Monday), Build(ref, time.Weekday(8)))
	assert.Equal(t, Build(ref, time.Saturday), Build(ref, time.Weekday(-1)))
}

func TestBuildFarDates(t *testing.T) {
	apr := timeutil.Month{Year: 2026, Month: time.April}
	for _, ref := range []timeutil.Date{
		timeutil.NewDate(1, time.January, 1),
		timeutil.NewDate(9999, time.December, 31),
		timeutil.NewDate(-500, time.June, 15),
		// Beyond what time.Time can represent.
		apr.AddMonths(12 * (timeutil.MaxYear / 2)).First(),
		apr.AddMonths(-12 * (timeutil.MaxYear / 2)).First(),
		apr.AddMonths(math.MaxInt).First(),
		apr.AddMonths(math.MinInt).First(),
	} {
		for ws := time.Sunday; ws <= time.Saturday; ws++ {
			days := Build(ref, ws)
			require.NotEmpty(t, days, ref.String())
			assert.Zero(t, len(days)%7, ref.String())
			assert.Equal(t, ws, days[0].Weekday(), ref.String())
			for i := 1; i < len(days); i++ {
				require.Equal(t, 1, days[i-1].DaysUntil(days[i]), "%s index %d", ref, i)
			}
			month := timeutil.MonthOf(ref)
			assert.True(t, month.Contains(days[0].AddDays(6)), ref.String())
			assert.True(t, month.Contains(days[len(days)-7]), ref.String())
		}
	}
}

func TestWeeksAndWeekdays(t *testing.T) {
	days := Build(timeutil.MustDate("2026-04-01"), time.Sunday)
	rows := Weeks(days)
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, row, 7)
	}
	assert.Len(t, Weeks([]int{1, 2, 3, 4, 5, 6, 7, 8}), 2)

	assert.Equal(t, []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}, Weekdays(time.Monday))
}
