//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("defaults when file is missing", func(t *testing.T) {
		cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := writeConfig(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: postgres
  dsn: "host=localhost user=postgres password=postgres port=5432 sslmode=disable"
  name: cryptology
`)
		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
		assert.Equal(t, PostgresDbType, cfg.Database.Type)
		assert.Equal(t, "cryptology", cfg.Database.Name)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "port: \"9090\"\n")
		t.Setenv("CRYPTOLOGY_PORT", "7070")
		t.Setenv("CRYPTOLOGY_LOGGER_LOG_LEVEL", "error")

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "7070", cfg.Port)
		assert.Equal(t, LogLevelError, cfg.Logger.LogLevel)
	})

	t.Run("invalid logger settings", func(t *testing.T) {
		path := writeConfig(t, "logger:\n  log_level: verbose\n")

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("non-numeric port", func(t *testing.T) {
		path := writeConfig(t, "port: http\n")

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}

func TestInitializeGrpcConfig(t *testing.T) {
	cfg, err := InitializeGrpcConfig("")
	require.NoError(t, err)
	assert.Equal(t, "50051", cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "cryptology.db", cfg.Database.DSN)

	path := writeConfig(t, "port: \"6000\"\nlogger:\n  log_level: warning\n  log_type: console\n")
	cfg, err = InitializeGrpcConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "6000", cfg.Port)
	assert.Equal(t, LogLevelWarning, cfg.Logger.LogLevel)
}

func TestInitializeGrpcConfig_InvalidDatabase(t *testing.T) {
	path := writeConfig(t, "database:\n  type: mysql\n  dsn: root@tcp(localhost)/keys\n")
	_, err := InitializeGrpcConfig(path)
	assert.Error(t, err)
}
