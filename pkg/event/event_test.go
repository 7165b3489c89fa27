package event

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/timeutil"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	on := timeutil.MustDate("2026-05-10")
	a := New("Sports Day", on, category.Sport)
	b := New("Sports Day", on, category.Sport)

	require.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
}

func TestString(t *testing.T) {
	e := Event{
		ID:       "1",
		Title:    "遠足",
		Date:     timeutil.MustDate("2026-05-10"),
		Category: category.Sport,
		Location: "高尾山",
	}
	assert.Equal(t, "2026-05-10 [sport] 遠足 @ 高尾山", e.String())
}
