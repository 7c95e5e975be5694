package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "default.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
environment = "development"
recycle_bin = "/mnt/tv/.deleted"
`), 0644))

	got, err := ReadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Environment:     EnvironmentDevelopment,
		ConfigDirectory: tempDir,
		LogDirectory:    filepath.Join(tempDir, "logs"),
		RecycleBin:      "/mnt/tv/.deleted",
	}, got)
	assert.Equal(t, "/mnt/tv/.deleted", got.RecycleBinPath())
}

func TestReadConfig_InvalidToml(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "default.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`environment = `), 0644))

	_, err := ReadConfig(configPath)
	assert.Error(t, err)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
