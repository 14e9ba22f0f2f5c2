package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-event-gate/internal/config"
	"github.com/MKhiriev/go-event-gate/internal/document"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/service"
	"github.com/MKhiriev/go-event-gate/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.RegistrationService == nil {
		return nil, errors.New("tui: registration service is required")
	}
	if cfg == nil {
		return nil, errors.New("tui: config is required")
	}

	return &TUI{
		services:       services,
		cfg:            cfg,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()},
	}, nil
}

// Run shows the gate until the program exits. unlocked selects the start
// page: the thank-you page for a registered device, the form otherwise.
func (t *TUI) Run(ctx context.Context, unlocked bool) error {
	root, viewer := t.newRoot(ctx, unlocked)
	defer viewer.unmount()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, unlocked bool) (RootModel, *ViewerModel) {
	svc := t.services.RegistrationService
	renderer := document.NewRenderer(document.NamedLoader(t.cfg.Document.Engine), t.logger)
	viewer := NewViewerModel(ctx, renderer, t.cfg.Document.URL, t.cfg.Document.DownloadDir, t.logger)

	pages := map[string]tea.Model{
		pageGate:     NewGateModel(ctx, svc, t.logger),
		pageUnlocked: NewUnlockedModel(ctx, svc, t.logger),
		pageViewer:   viewer,
	}

	start := pageGate
	if unlocked {
		start = pageUnlocked
	}
	return NewRootModel(pages, start, t.buildInfo, t.cfg.Notifications.Duration), viewer
}
