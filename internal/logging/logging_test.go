package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewLogger_BadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "chatty", Format: FormatJSON}, &buf)

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	l.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, id, NewTraceID())
}

func TestTraceHook(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Format: FormatJSON}, &buf)
	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")

	l.Info().Ctx(ctx).Msg("with trace")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "01TESTTRACE", entry[TraceIDField])
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(NewLogger(Config{Format: FormatJSON}, &buf), "loader")
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"loader"`)
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "sharesout.log")
		res := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
		t.Cleanup(func() { _ = res.Close() })

		require.True(t, res.UsingFile)
		assert.Equal(t, path, res.FilePath)
		res.Logger.Info().Msg("to file")
		require.NoError(t, res.Close())

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "to file")
	})

	t.Run("stderr when no file", func(t *testing.T) {
		res := NewLoggerWithPath(Config{Output: OutputStderr})
		assert.False(t, res.UsingFile)
		assert.False(t, res.FallbackUsed)
		assert.NoError(t, res.Close())
	})

	t.Run("falls back when file cannot be opened", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, nil, 0o600))

		res := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "x.log")})
		assert.False(t, res.UsingFile)
		assert.True(t, res.FallbackUsed)
		assert.NotEmpty(t, res.FallbackReason)
	})
}
