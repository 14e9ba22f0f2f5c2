package service

import "errors"

var (
	// ErrValidation is returned by Register when the record fails the form
	// rules. The validator's error is wrapped alongside it.
	ErrValidation = errors.New("registration record is invalid")

	// Submission pipeline failures, one per step.
	ErrFingerprint        = errors.New("failed to obtain device fingerprint")
	ErrPersistToken       = errors.New("failed to persist device token")
	ErrSubmitRegistration = errors.New("failed to submit registration")

	ErrReadToken   = errors.New("failed to read device token")
	ErrRemoveToken = errors.New("failed to remove device token")

	ErrDownloadDocument = errors.New("failed to download document")
	ErrDocumentNotFound = errors.New("document not found")

	ErrServerRejected    = errors.New("registration rejected by server")
	ErrServerUnavailable = errors.New("registration server unavailable")
)
