package categories

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/gyoji/pkg/locale"
)

func TestCategoriesText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	c := Categories{Labels: locale.Japanese, Out: &buf}

	require.NoError(t, c.Do(context.Background()))
	for _, label := range []string{"学考・行事", "運動", "祝日・休日", "試験", "その他"} {
		assert.Contains(t, buf.String(), label)
	}
}

func TestCategoriesJSON(t *testing.T) {
	var buf bytes.Buffer
	c := Categories{Labels: locale.English, Output: "json", Out: &buf}

	require.NoError(t, c.Do(context.Background()))

	var entries []Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, Entry{Name: "academic", Label: "Academic", Color: "33"}, entries[0])
	assert.Equal(t, "196", entries[3].Color)
}
