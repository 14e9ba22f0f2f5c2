package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-c", "/etc/gate.json",
		"-log-file", "/tmp/gate.log",
		"-d", "gate.db",
		"-registration-url", "https://events.example.com/register",
		"-request-timeout", "10s",
		"-document-url", "book.pdf",
		"-document-engine", "pdf",
		"-download-dir", "/tmp/dl",
		"-toast-duration", "3s",
	}

	cfg, err := parseFlags(args)

	require.NoError(t, err)
	assert.Equal(t, "/etc/gate.json", cfg.JSONFilePath)
	assert.Equal(t, "/tmp/gate.log", cfg.App.LogFile)
	assert.Equal(t, "gate.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://events.example.com/register", cfg.Adapter.RegistrationURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "book.pdf", cfg.Document.URL)
	assert.Equal(t, "pdf", cfg.Document.Engine)
	assert.Equal(t, "/tmp/dl", cfg.Document.DownloadDir)
	assert.Equal(t, 3*time.Second, cfg.Notifications.Duration)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"})

	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg, err := parseFlags([]string{"-listen-address", "localhost:9090"})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "soon"})
	require.Error(t, err)
}
