package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8888, cfg.Server.Port)
	assert.Equal(t, "/data", cfg.Data.Dir)
	assert.Equal(t, "sample_data.csv", cfg.Data.DefaultFile)
	assert.Equal(t, 100, cfg.Upload.MaxSizeMB)
	assert.Equal(t, "0.0.0.0:8888", cfg.Addr())
	assert.Equal(t, filepath.Join("/data", "sample_data.csv"), cfg.DefaultFilePath())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8888, cfg.Server.Port)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
data:
  dir: /srv/data
upload:
  max_size_mb: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/data", cfg.Data.Dir)
	assert.Equal(t, 10, cfg.Upload.MaxSizeMB)
	// Unset keys keep their defaults.
	assert.Equal(t, "sample_data.csv", cfg.Data.DefaultFile)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DATA_FILE_PATH", "/data/override.csv")
	t.Setenv("DATA_DIR", "/mnt/datasets")
	t.Setenv("PYGWALKER_HOST", "localhost")
	t.Setenv("PYGWALKER_PORT", "7777")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/override.csv", cfg.Data.FilePath)
	assert.Equal(t, "/mnt/datasets", cfg.Data.Dir)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, "localhost:7777", cfg.Addr())
}

func TestEnvInvalidPortIgnored(t *testing.T) {
	t.Setenv("PYGWALKER_PORT", "not-a-port")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8888, cfg.Server.Port)
}
