package config

import (
	"os"
	"path/filepath"
	"time"
)

// Built-in values used when no source provides a setting.
const (
	DefaultRegistrationURL  = "https://domo-snowflake-event.onrender.com/register"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultDSN              = "event-gate.db"
	DefaultDocumentURL      = "assets/book/gwc_book.pdf"
	DefaultDocumentEngine   = "pdf"
	DefaultToastDuration    = 5000 * time.Millisecond
	defaultDownloadsDirName = "Downloads"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			RegistrationURL: DefaultRegistrationURL,
			RequestTimeout:  DefaultRequestTimeout,
		},
		Document: Document{
			URL:         DefaultDocumentURL,
			Engine:      DefaultDocumentEngine,
			DownloadDir: defaultDownloadDir(),
		},
		Notifications: Notifications{
			Duration: DefaultToastDuration,
		},
	}
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, defaultDownloadsDirName)
}
