package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultCutoffYear, cfg.Display.CutoffYear)

	// Subsequent calls return the same instance
	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestSetGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Cleanup(ResetGlobalConfigForTest)

	custom := NewDefault()
	custom.Display.CutoffYear = 2015
	custom.Display.Locale = "de"
	SetGlobalConfig(custom)

	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, 2015, GetGlobalConfig().Display.CutoffYear)
	assert.Equal(t, "de", GetGlobalConfig().Display.Locale)
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "sharesout")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	assert.DirExists(t, home)
}

func TestEnsureLogDir(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logFile := filepath.Join(t.TempDir(), "logs", "sharesout.log")
	GetGlobalConfig().Logging.File = logFile

	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Dir(logFile))
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/sharesout.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/sharesout.log", got.File)
}
