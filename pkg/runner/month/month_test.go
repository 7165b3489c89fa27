package month

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/printers"
	"tableflip.dev/gyoji/pkg/store"
	"tableflip.dev/gyoji/pkg/timeutil"
)

func newCalendar(t *testing.T) *app.Calendar {
	t.Helper()
	color.NoColor = true
	idx := store.NewIndex()
	require.NoError(t, idx.Add(event.New("遠足", timeutil.NewDate(2026, time.May, 10), category.Sport)))
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	return app.NewCalendar(idx, app.WithClock(func() time.Time { return now }), app.WithLocation(time.UTC))
}

func TestMonthText(t *testing.T) {
	var buf bytes.Buffer
	m := Month{Calendar: newCalendar(t), Labels: locale.Japanese, Out: &buf}

	require.NoError(t, m.Do(context.Background()))
	assert.Contains(t, buf.String(), "2026年 4月")
	assert.Contains(t, buf.String(), "予定がありません")
}

func TestMonthSelectMovesView(t *testing.T) {
	var buf bytes.Buffer
	cal := newCalendar(t)
	m := Month{
		Calendar: cal,
		Labels:   locale.Japanese,
		Select:   timeutil.NewDate(2026, time.May, 10),
		Output:   "json",
		Out:      &buf,
	}

	require.NoError(t, m.Do(context.Background()))

	var mv printers.MonthView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &mv))
	assert.Equal(t, "2026-05", mv.Month)
	assert.Equal(t, "2026-05-10", mv.Selected)
	assert.Equal(t, "2026-04-10", mv.Today)

	var found bool
	for _, week := range mv.Weeks {
		for _, d := range week {
			if d.Date == "2026-05-10" {
				found = d.Selected && len(d.Events) == 1
			}
		}
	}
	assert.True(t, found, "selected cell carries the excursion")
}

func TestMonthExplicitMonthWins(t *testing.T) {
	var buf bytes.Buffer
	m := Month{
		Calendar: newCalendar(t),
		Labels:   locale.English,
		Month:    timeutil.Month{Year: 2027, Month: time.January},
		Select:   timeutil.NewDate(2026, time.May, 10),
		Output:   "yaml",
		Out:      &buf,
	}

	require.NoError(t, m.Do(context.Background()))
	assert.True(t, strings.Contains(buf.String(), "January 2027"), buf.String())
}

func TestMonthRequiresCalendar(t *testing.T) {
	m := Month{}
	assert.Error(t, m.Do(context.Background()))
}
