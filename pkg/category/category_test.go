package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, c := range All() {
		got, err := Parse(" " + string(c) + " ")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Academic, got)

	got, err = Parse("SPORT")
	require.NoError(t, err)
	assert.Equal(t, Sport, got)

	got, err = Parse("festival")
	require.Error(t, err)
	assert.Equal(t, Other, got)
}

func TestIndexAndColor(t *testing.T) {
	for i, c := range All() {
		assert.Equal(t, i, c.Index())
		assert.NotEmpty(t, c.Color())
	}
	assert.Equal(t, -1, Category("festival").Index())
	assert.False(t, Category("festival").Valid())
	assert.Equal(t, Other.Color(), Category("festival").Color())
}
