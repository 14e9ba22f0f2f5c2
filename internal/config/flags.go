package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-log-file log file path
//	-d local database DSN (SQLite file path)
//	-registration-url registration endpoint URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-document-url companion document path or URL
//	-document-engine document engine name
//	-download-dir directory the companion document is saved into
//	-toast-duration notification lifetime (e.g., "5s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		jsonConfigPath  string
		logFile         string
		databaseDSN     string
		registrationURL string
		requestTimeout  time.Duration
		documentURL     string
		documentEngine  string
		downloadDir     string
		toastDuration   time.Duration
	)

	fs := flag.NewFlagSet("event-gate", flag.ContinueOnError)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&registrationURL, "registration-url", "", "Registration endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&documentURL, "document-url", "", "Companion document path or URL")
	fs.StringVar(&documentEngine, "document-engine", "", "Document engine name")
	fs.StringVar(&downloadDir, "download-dir", "", "Download directory")
	fs.DurationVar(&toastDuration, "toast-duration", 0, "Notification duration (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			RegistrationURL: registrationURL,
			RequestTimeout:  requestTimeout,
		},
		Document: Document{
			URL:         documentURL,
			Engine:      documentEngine,
			DownloadDir: downloadDir,
		},
		Notifications: Notifications{
			Duration: toastDuration,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
