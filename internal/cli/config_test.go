package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sharesout/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupTestConfig(t)

	out, err := executeCmd(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, err = executeCmd(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCmd(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	home := setupTestConfig(t)

	_, err := executeCmd(t, "config", "set", "display.cutoff_year", "2018")
	require.NoError(t, err)

	out, err := executeCmd(t, "config", "get", "display.cutoff_year")
	require.NoError(t, err)
	assert.Equal(t, "2018\n", out)

	saved, err := config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2018, saved.Display.CutoffYear)
}

func TestConfigSet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown key", args: []string{"config", "set", "nope", "1"}, wantErr: "unknown configuration key"},
		{name: "not an integer", args: []string{"config", "set", "api.timeout", "soon"}, wantErr: "expects an integer"},
		{name: "invalid URL", args: []string{"config", "set", "api.base_url", "ftp://x"}, wantErr: "invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t)

			_, err := executeCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigList(t *testing.T) {
	setupTestConfig(t)

	out, err := executeCmd(t, "config", "list")
	require.NoError(t, err)
	for _, key := range config.Keys() {
		assert.Contains(t, out, key+" = ")
	}
	assert.Contains(t, out, "display.cutoff_year = 2020")
}

func TestConfigValidate(t *testing.T) {
	setupTestConfig(t)

	out, err := executeCmd(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Cutoff year: 2020")

	config.GetGlobalConfig().Logging.Format = "xml"
	_, err = executeCmd(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}
