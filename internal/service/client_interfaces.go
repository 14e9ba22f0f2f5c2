package service

import (
	"context"

	"github.com/MKhiriev/go-event-gate/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRegistrationService defines the client-side contract of the
// registration gate: deciding whether the device is unlocked, submitting a
// registration, forgetting the device and delivering the companion document.
type ClientRegistrationService interface {
	// IsUnlocked reports whether the device token is present in durable
	// local storage. It never touches the network and is idempotent.
	IsUnlocked(ctx context.Context) (bool, error)

	// Register runs the submission pipeline for record: validate, obtain the
	// device fingerprint, persist it as the unlock token and POST the record.
	// The token is persisted before the POST, so a failed POST still leaves
	// the device unlocked on the next start.
	Register(ctx context.Context, record models.RegistrationRecord) error

	// Logout removes the device token. No network call is made.
	Logout(ctx context.Context) error

	// DownloadDocument fetches the companion document and writes it into the
	// configured download directory, returning the written path.
	DownloadDocument(ctx context.Context) (string, error)
}
