package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-event-gate/internal/adapter"
	"github.com/MKhiriev/go-event-gate/internal/config"
	"github.com/MKhiriev/go-event-gate/internal/fingerprint"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/store"
	"github.com/MKhiriev/go-event-gate/internal/validators"
	"github.com/MKhiriev/go-event-gate/models"
)

// DocumentFileName is the name the companion document is saved under.
const DocumentFileName = "gwc_book.pdf"

type clientRegistrationService struct {
	localStorage  store.LocalStorageRepository
	adapter       adapter.RegistrationAdapter
	assets        adapter.AssetAdapter
	fingerprinter fingerprint.Fingerprinter
	validator     validators.Validator

	documentCfg config.ClientDocument
	logger      *logger.Logger
}

func NewClientRegistrationService(
	localStorage store.LocalStorageRepository,
	registrationAdapter adapter.RegistrationAdapter,
	assets adapter.AssetAdapter,
	fingerprinter fingerprint.Fingerprinter,
	validator validators.Validator,
	documentCfg config.ClientDocument,
	logger *logger.Logger,
) ClientRegistrationService {
	return &clientRegistrationService{
		localStorage:  localStorage,
		adapter:       registrationAdapter,
		assets:        assets,
		fingerprinter: fingerprinter,
		validator:     validator,
		documentCfg:   documentCfg,
		logger:        logger,
	}
}

func (s *clientRegistrationService) IsUnlocked(ctx context.Context) (bool, error) {
	_, err := s.localStorage.GetItem(ctx, models.DeviceTokenKey)
	if errors.Is(err, store.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadToken, err)
	}

	return true, nil
}

func (s *clientRegistrationService) Register(ctx context.Context, record models.RegistrationRecord) error {
	if err := s.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	deviceToken, err := s.fingerprinter.Fingerprint(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientRegistrationService.Register").Msg("fingerprint failed")
		return fmt.Errorf("%w: %w", ErrFingerprint, err)
	}

	// the token unlocks the device even if the POST below fails
	if err = s.localStorage.SetItem(ctx, models.DeviceTokenKey, deviceToken); err != nil {
		s.logger.Err(err).Str("func", "clientRegistrationService.Register").Msg("persisting device token failed")
		return fmt.Errorf("%w: %w", ErrPersistToken, err)
	}

	if err = s.adapter.Submit(ctx, record); err != nil {
		s.logger.Err(err).Str("func", "clientRegistrationService.Register").Msg("registration submission failed")
		return fmt.Errorf("%w: %w", ErrSubmitRegistration, mapAdapterError(err))
	}

	s.logger.Info().Str("func", "clientRegistrationService.Register").Msg("registration submitted")
	return nil
}

func (s *clientRegistrationService) Logout(ctx context.Context) error {
	if err := s.localStorage.RemoveItem(ctx, models.DeviceTokenKey); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoveToken, err)
	}

	s.logger.Info().Str("func", "clientRegistrationService.Logout").Msg("device token removed")
	return nil
}

func (s *clientRegistrationService) DownloadDocument(ctx context.Context) (string, error) {
	data, err := s.assets.Fetch(ctx, s.documentCfg.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadDocument, mapAdapterError(err))
	}

	if err = os.MkdirAll(s.documentCfg.DownloadDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create download dir: %w", ErrDownloadDocument, err)
	}

	path := filepath.Join(s.documentCfg.DownloadDir, DocumentFileName)
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write file: %w", ErrDownloadDocument, err)
	}

	s.logger.Info().Str("func", "clientRegistrationService.DownloadDocument").Str("path", path).Msg("document downloaded")
	return path, nil
}
