package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/timeutil"
)

const schoolCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//gyoji//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:excursion-1\r\n" +
	"SUMMARY:遠足\r\n" +
	"DTSTART;VALUE=DATE:20260510\r\n" +
	"CATEGORIES:sport\r\n" +
	"LOCATION:高尾山\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:exam-1\r\n" +
	"SUMMARY:中間試験\r\n" +
	"DTSTART:20260514T233000Z\r\n" +
	"CATEGORIES:school,exam\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:drill-1\r\n" +
	"SUMMARY:避難訓練\r\n" +
	"DTSTART;VALUE=DATE:20260506\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:broken-1\r\n" +
	"DTSTART;VALUE=DATE:20260507\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseAllDayAndTimedEvents(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	events, err := Parse(strings.NewReader(schoolCalendar), tokyo)
	require.NoError(t, err)
	require.Len(t, events, 3, "event without SUMMARY is skipped")

	excursion := events[0]
	assert.Equal(t, "excursion-1", excursion.ID)
	assert.Equal(t, "遠足", excursion.Title)
	assert.Equal(t, timeutil.NewDate(2026, time.May, 10), excursion.Date)
	assert.Equal(t, category.Sport, excursion.Category)
	assert.Equal(t, "高尾山", excursion.Location)

	exam := events[1]
	assert.Equal(t, timeutil.NewDate(2026, time.May, 15), exam.Date, "23:30Z is the next morning in Tokyo")
	assert.Equal(t, category.Exam, exam.Category)

	drill := events[2]
	assert.Equal(t, category.Other, drill.Category)
}

func TestParseEmptyCalendar(t *testing.T) {
	events, err := Parse(strings.NewReader("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"), nil)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(t.TempDir()+"/missing.ics", time.UTC)
	assert.Error(t, err)
}
