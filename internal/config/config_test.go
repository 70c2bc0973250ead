package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	t.Setenv("DB_SOURCE", "")
	dir := t.TempDir()
	content := "DB_SOURCE=postgres://u:p@localhost:5432/jobs?sslmode=disable\n" +
		"SERVER_ADDRESS=:9090\n" +
		"CORS_ALLOWED_ORIGINS=http://localhost:3000, https://jobs.example.ch\n" +
		"SHUTDOWN_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/jobs?sslmode=disable", config.DBSource)
	assert.Equal(t, ":9090", config.ServerAddress)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "release", config.GinMode)
	assert.Equal(t, []string{"http://localhost:3000", "https://jobs.example.ch"}, config.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, config.ShutdownTimeout)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("DB_SOURCE=from-file\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("DB_SOURCE", "from-env")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.DBSource)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfig_WithoutFile(t *testing.T) {
	t.Setenv("DB_SOURCE", "postgres://localhost/jobs")

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.ServerAddress)
	assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
}

func TestLoadConfig_RequiresDBSource(t *testing.T) {
	t.Setenv("DB_SOURCE", "")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
