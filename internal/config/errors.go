package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid registration transport
	// settings (for example, a relative URL or zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or an in-memory DSN, which cannot persist the
	// unlock token).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDocumentConfigs indicates missing document URL, engine or
	// download directory.
	ErrInvalidDocumentConfigs = errors.New("invalid document configuration")
	// ErrInvalidNotificationConfigs indicates a non-positive toast duration.
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
)
