package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/dialoguedeck/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:             "127.0.0.1:8080",
		StoreBackend:     config.BackendSQLite,
		DBPath:           "test.db",
		StoreFile:        "decks.json",
		StoreKey:         "conv-decks",
		StoreTimeoutMS:   2000,
		ClipboardEnabled: true,
		LogLevel:         "INFO",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_Backends(t *testing.T) {
	tests := []struct {
		name          string
		backend       string
		dbPath        string
		storeFile     string
		expectedError string
	}{
		{name: "sqlite ok", backend: "sqlite", dbPath: "x.db"},
		{name: "sqlite without path", backend: "sqlite", expectedError: "DB_PATH"},
		{name: "file ok", backend: "file", storeFile: "x.json"},
		{name: "file without path", backend: "file", expectedError: "STORE_FILE"},
		{name: "memory needs nothing", backend: "memory"},
		{name: "unknown backend", backend: "redis", expectedError: "STORE_BACKEND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.StoreBackend = tt.backend
			cfg.DBPath = tt.dbPath
			cfg.StoreFile = tt.storeFile

			err := cfg.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "invalid level", level: "INVALID"},
		{name: "empty level", level: ""},
		{name: "lowercase valid level", level: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.level == "debug" {
				// Lowercase should be accepted
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_SeedFile(t *testing.T) {
	cfg := validConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_FILE")

	present := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(present, []byte("name: x\n"), 0o644))
	cfg.SeedFile = present
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:           "",
		StoreBackend:   "sqlite",
		DBPath:         "",
		StoreKey:       "",
		StoreTimeoutMS: 0,
		LogLevel:       "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH")
	assert.Contains(t, errStr, "STORE_KEY")
	assert.Contains(t, errStr, "STORE_TIMEOUT_MS")
	assert.Contains(t, errStr, "LOG_LEVEL")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", "127.0.0.1:9090")
	t.Setenv("STORE_BACKEND", "FILE")
	t.Setenv("STORE_FILE", "custom.json")
	t.Setenv("STORE_TIMEOUT_MS", "150")
	t.Setenv("CLIPBOARD_ENABLED", "false")

	cfg := config.Load()

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, config.BackendFile, cfg.StoreBackend)
	assert.Equal(t, "custom.json", cfg.StoreFile)
	assert.Equal(t, 150*time.Millisecond, cfg.StoreTimeout())
	assert.False(t, cfg.ClipboardEnabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("STORE_TIMEOUT_MS", "soon")
	t.Setenv("CLIPBOARD_ENABLED", "maybe")

	cfg := config.Load()

	assert.Equal(t, 2000, cfg.StoreTimeoutMS)
	assert.True(t, cfg.ClipboardEnabled)
}
