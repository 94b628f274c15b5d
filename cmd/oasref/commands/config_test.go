package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(ConfigEnvVar, filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 0, cfg.MaxDepth)
	assert.False(t, cfg.Quiet)
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	path := writeConfig(t, "format = \"json\"\nmax_depth = 25\nquiet = true\n")
	t.Setenv(ConfigEnvVar, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 25, cfg.MaxDepth)
	assert.True(t, cfg.Quiet)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "max_depth = 5\n")
	t.Setenv(ConfigEnvVar, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 5, cfg.MaxDepth)
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "format = [broken\n")
	t.Setenv(ConfigEnvVar, path)

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	path := writeConfig(t, "format = \"xml\"\n")
	t.Setenv(ConfigEnvVar, path)

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadConfig_NegativeMaxDepth(t *testing.T) {
	path := writeConfig(t, "max_depth = -1\n")
	t.Setenv(ConfigEnvVar, path)

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth must not be negative")
}

func TestLoadConfig_FlowsIntoFlagDefaults(t *testing.T) {
	path := writeConfig(t, "format = \"yaml\"\nmax_depth = 7\nquiet = true\n")
	t.Setenv(ConfigEnvVar, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	_, flags := SetupDerefFlags(cfg)
	assert.Equal(t, FormatYAML, flags.Format)
	assert.Equal(t, 7, flags.MaxDepth)
	assert.True(t, flags.Quiet)
}
