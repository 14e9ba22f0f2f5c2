package service

import (
	"github.com/MKhiriev/go-event-gate/internal/adapter"
	"github.com/MKhiriev/go-event-gate/internal/config"
	"github.com/MKhiriev/go-event-gate/internal/fingerprint"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/store"
	"github.com/MKhiriev/go-event-gate/internal/validators"
)

type ClientServices struct {
	RegistrationService ClientRegistrationService
}

func NewClientServices(
	storages *store.ClientStorages,
	registrationAdapter adapter.RegistrationAdapter,
	assets adapter.AssetAdapter,
	fingerprinter fingerprint.Fingerprinter,
	documentCfg config.ClientDocument,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		RegistrationService: NewClientRegistrationService(
			storages.LocalStorage,
			registrationAdapter,
			assets,
			fingerprinter,
			validators.NewRegistrationValidator(),
			documentCfg,
			logger,
		),
	}
}
