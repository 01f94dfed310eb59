package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", false)

	log.Info().Msg("hidden")
	log.Warn().Str("algorithm", "dfs").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "dfs", entry["algorithm"])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", true)

	log.Debug().Int("width", 24).Msg("regenerated")

	out := buf.String()
	assert.Contains(t, out, "regenerated")
	assert.Contains(t, out, "width=24")
	assert.NotContains(t, out, "{")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcaster.log")

	log, closer, err := OpenFile(path, "info")
	require.NoError(t, err)
	require.NotNil(t, closer)
	log.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)

	nop, closer, err := OpenFile("", "info")
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())
}

func TestConsoleToRegularFileHasNoColor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "console.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, isTerminal(f))
	assert.False(t, isTerminal(&bytes.Buffer{}))

	log := New(f, "info", true)
	log.Info().Msg("plain")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "plain")
	assert.NotContains(t, string(data), "\x1b[")
}
