package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/service"
	"github.com/MKhiriev/go-event-gate/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil || services.RegistrationService == nil {
		return nil, errors.New("client app: registration service is required")
	}
	if ui == nil {
		return nil, errors.New("client app: ui is required")
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run evaluates the unlock state from local storage and hands control to
// the UI. Quitting with ctrl+c is a normal exit.
func (a *App) Run() error {
	return a.RunContext(context.Background())
}

func (a *App) RunContext(ctx context.Context) error {
	unlocked, err := a.services.RegistrationService.IsUnlocked(ctx)
	if err != nil {
		return fmt.Errorf("evaluate unlock state: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Bool("unlocked", unlocked).Msg("starting gate")

	if err = a.ui.Run(ctx, unlocked); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
}
