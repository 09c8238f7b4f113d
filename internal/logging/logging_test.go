package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel("debug"))
	require.NoError(t, err)

	log.Debug().Str("key", "window-0").Msg("cascade")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cascade", line["message"])
	assert.Equal(t, "window-0", line["key"])
	assert.Equal(t, "debug", line["level"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel("warn"))
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(WithLevel("loud"))
	assert.Error(t, err)
}

func TestNew_NoWritersDiscards(t *testing.T) {
	log, err := New()
	require.NoError(t, err)
	log.Error().Msg("nowhere")
	assert.NoError(t, log.Close())
}

func TestWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "winstack.log")
	log, err := New(WithFile(path))
	require.NoError(t, err)

	log.Info().Msg("window opened")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "window opened"))
}
