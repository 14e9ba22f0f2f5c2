package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "log_file": "/tmp/gate.log" },
		"storage": { "db": { "dsn": "gate.db" } },
		"adapter": {
			"registration_url": "https://events.example.com/register",
			"request_timeout": "15s"
		},
		"document": {
			"url": "assets/book.pdf",
			"engine": "pdf",
			"download_dir": "/tmp/downloads"
		},
		"notifications": { "duration": "5s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/gate.log", cfg.App.LogFile)
	assert.Equal(t, "gate.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://events.example.com/register", cfg.Adapter.RegistrationURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "assets/book.pdf", cfg.Document.URL)
	assert.Equal(t, "pdf", cfg.Document.Engine)
	assert.Equal(t, "/tmp/downloads", cfg.Document.DownloadDir)
	assert.Equal(t, 5*time.Second, cfg.Notifications.Duration)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"notifications": {"duration": 5000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Notifications.Duration)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}
