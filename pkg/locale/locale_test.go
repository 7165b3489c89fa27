package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/timeutil"
)

func TestJapaneseLabels(t *testing.T) {
	l := Japanese
	assert.Equal(t, "2026年 4月", l.MonthHeader(timeutil.Month{Year: 2026, Month: time.April}))
	assert.Equal(t, "5月 10日 (日曜日)", l.DayLong(timeutil.MustDate("2026-05-10")))
	assert.Equal(t, "2026年 5月 10日", l.DayFull(timeutil.MustDate("2026-05-10")))
	assert.Equal(t, "日", l.WeekdayShort(time.Sunday))
	assert.Equal(t, "土", l.WeekdayShort(time.Saturday))
	assert.Equal(t, "学考・行事", l.Category(category.Academic))
	assert.Equal(t, "その他", l.Category(category.Category("festival")))
}

func TestEnglishLabels(t *testing.T) {
	l := English
	assert.Equal(t, "April 2026", l.MonthHeader(timeutil.Month{Year: 2026, Month: time.April}))
	assert.Equal(t, "Sunday, May 10", l.DayLong(timeutil.MustDate("2026-05-10")))
	assert.Equal(t, "Mo", l.WeekdayShort(time.Monday))
	assert.Equal(t, "Exam", l.Category(category.Exam))
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("EN")
	assert.True(t, ok)
	assert.Equal(t, "en", l.Name)

	l, ok = Lookup("")
	assert.True(t, ok)
	assert.Equal(t, "ja", l.Name)

	l, ok = Lookup("fr")
	assert.False(t, ok)
	assert.Equal(t, "ja", l.Name)

	for _, c := range category.All() {
		assert.NotEmpty(t, Japanese.Category(c))
		assert.NotEmpty(t, English.Category(c))
	}
}
