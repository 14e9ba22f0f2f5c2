// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-event-gate client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the durable local storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote registration endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Document holds the companion document and viewer engine settings.
	Document Document `envPrefix:"DOCUMENT_"`

	// Notifications holds toast settings.
	Notifications Notifications `envPrefix:"NOTIFICATIONS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the path of the JSON log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "./event-gate.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the outbound registration transport.
type Adapter struct {
	// RegistrationURL is the absolute URL registrations are POSTed to.
	// Env: ADAPTER_REGISTRATION_URL
	RegistrationURL string `env:"REGISTRATION_URL"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Document holds the companion document settings.
type Document struct {
	// URL is the document location: a local file path or an http(s) URL.
	// The same document is shown in the viewer and offered for download.
	// Env: DOCUMENT_URL
	URL string `env:"URL"`

	// Engine is the name of the registered document engine used by the
	// viewer (e.g. "pdf").
	// Env: DOCUMENT_ENGINE
	Engine string `env:"ENGINE"`

	// DownloadDir is the directory the companion document is saved into.
	// Env: DOCUMENT_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Notifications holds toast settings.
type Notifications struct {
	// Duration is how long a toast stays on screen before it is dismissed.
	// Env: NOTIFICATIONS_DURATION
	Duration time.Duration `env:"DURATION"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources (environment, flags, JSON file, defaults).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
