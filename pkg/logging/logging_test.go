package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("debug", &buf))
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Str("id", "e1").Msg("event indexed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "event indexed", line["message"])
	assert.Equal(t, "e1", line["id"])
	assert.Equal(t, "gyoji", line["app"])
	assert.Equal(t, "debug", line["level"])
}

func TestSetupFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("warn", &buf))
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	require.Error(t, Setup("chatty", nil))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gyoji.log")
	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, Setup("info", f))
	log.Info().Msg("to file")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
