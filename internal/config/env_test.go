// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"API_URL": "https://hub.example.com/api",

		"ADAPTER_ADDRESS":         "localhost:9000",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"STORAGE_DB_DSN": "/tmp/session.db",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/tmp/client.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://hub.example.com/api", cfg.API.URL)
	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnv_DoesNotOverrideRealEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"API_URL": "/from-env"})
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("API_URL=/from-file\nLOG_LEVEL=warn\n"), 0o600))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "/from-env", os.Getenv("API_URL"))
	assert.Equal(t, "warn", os.Getenv("LOG_LEVEL"))
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"API_URL",
		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"STORAGE_DB_DSN",
		"LOG_LEVEL",
		"LOG_FILE",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value once the test finishes.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
