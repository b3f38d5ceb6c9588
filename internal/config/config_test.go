package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the COUNTRYDEX_* variables so ambient shell state
// cannot leak into the test. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envListenAddr, "")
	t.Setenv(envLogLevel, "")
	t.Setenv(envTablePath, "")
}

// writeConfig writes body to a throwaway config file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10, cfg.LogRotation.MaxSizeMB)
	assert.Equal(t, 5, cfg.LogRotation.MaxBackups)
	assert.Equal(t, 7, cfg.LogRotation.MaxAgeDays)
	assert.True(t, cfg.LogRotation.Compress)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.TablePath)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `{
		"log_level": "DEBUG",
		"log_file": "logs/countrydex.log",
		"log_rotation": {"max_size_mb": 100, "max_backups": 2, "max_age_days": 30, "compress": false},
		"listen_addr": ":9090",
		"request_timeout": "30s",
		"shutdown_timeout": "1m"
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "logs/countrydex.log", cfg.LogFile)
	assert.Equal(t, 100, cfg.LogRotation.MaxSizeMB)
	assert.Equal(t, 2, cfg.LogRotation.MaxBackups)
	assert.Equal(t, 30, cfg.LogRotation.MaxAgeDays)
	assert.False(t, cfg.LogRotation.Compress)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
}

func TestLoadConfigKeepsDefaultsForMissingFields(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `{"log_level": "ERROR"}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "ERROR", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DefaultConfig().LogRotation, cfg.LogRotation)
}

func TestLoadConfigDistinguishesExplicitZeroFromMissing(t *testing.T) {
	clearEnv(t)

	// max_backups 0 is a deliberate choice and must not be replaced
	// by the default, while the untouched fields keep theirs.
	path := writeConfig(t, `{"log_rotation": {"max_backups": 0, "compress": false}}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LogRotation.MaxBackups)
	assert.False(t, cfg.LogRotation.Compress)
	assert.Equal(t, 10, cfg.LogRotation.MaxSizeMB)
	assert.Equal(t, 7, cfg.LogRotation.MaxAgeDays)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	tablePath := filepath.Join(t.TempDir(), "countries.json")
	require.NoError(t, os.WriteFile(tablePath, []byte(`[{"name": "Canada", "code": "CA", "dial_code": "+1"}]`), 0o644))

	path := writeConfig(t, `{"listen_addr": ":9090", "log_level": "ERROR"}`)

	t.Setenv(envListenAddr, ":7070")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envTablePath, tablePath)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr, "environment should win over the config file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, tablePath, cfg.TablePath)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown log level",
			body:    `{"log_level": "TRACE"}`,
			wantErr: "invalid log level",
		},
		{
			name:    "rotation size too small",
			body:    `{"log_rotation": {"max_size_mb": 0}}`,
			wantErr: "max_size_mb",
		},
		{
			name:    "rotation size too large",
			body:    `{"log_rotation": {"max_size_mb": 2000}}`,
			wantErr: "max_size_mb",
		},
		{
			name:    "too many backups",
			body:    `{"log_rotation": {"max_backups": 51}}`,
			wantErr: "max_backups",
		},
		{
			name:    "retention too long",
			body:    `{"log_rotation": {"max_age_days": 366}}`,
			wantErr: "max_age_days",
		},
		{
			name:    "request timeout too short",
			body:    `{"request_timeout": "500ms"}`,
			wantErr: "request_timeout out of range",
		},
		{
			name:    "shutdown timeout too long",
			body:    `{"shutdown_timeout": "10m"}`,
			wantErr: "shutdown_timeout out of range",
		},
		{
			name:    "unparseable duration",
			body:    `{"request_timeout": "fast"}`,
			wantErr: "invalid request_timeout format",
		},
		{
			name:    "missing table file",
			body:    `{"table_path": "/nonexistent/countries.json"}`,
			wantErr: "table_path",
		},
		{
			name:    "malformed json",
			body:    `{"log_level": `,
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			cfg, err := LoadConfig(writeConfig(t, tt.body))

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}
