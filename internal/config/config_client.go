package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the JSON log file path; empty selects the default location.
	LogFile string
}

// ClientAdapter holds network settings used by the registration transport.
type ClientAdapter struct {
	// RegistrationURL is the absolute registration endpoint URL.
	RegistrationURL string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientDocument holds companion document settings.
type ClientDocument struct {
	// URL is a local path or http(s) URL of the document.
	URL string
	// Engine is the registered document engine name.
	Engine string
	// DownloadDir is where downloads are written.
	DownloadDir string
}

// ClientNotifications holds toast settings.
type ClientNotifications struct {
	// Duration is the toast lifetime.
	Duration time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App           ClientApp
	Adapter       ClientAdapter
	Storage       ClientStorage
	Document      ClientDocument
	Notifications ClientNotifications
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			RegistrationURL: cfg.Adapter.RegistrationURL,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Document: ClientDocument{
			URL:         cfg.Document.URL,
			Engine:      cfg.Document.Engine,
			DownloadDir: cfg.Document.DownloadDir,
		},
		Notifications: ClientNotifications{
			Duration: cfg.Notifications.Duration,
		},
	}
}
