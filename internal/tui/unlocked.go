package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-event-gate/internal/app"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriter is replaced in tests; the real clipboard needs a display.
var clipboardWriter = clipboard.WriteAll

// UnlockedModel is the page shown to a registered device: a thank-you note
// with actions to download the book, open it in the viewer, copy the
// downloaded path and log out.
type UnlockedModel struct {
	ctx    context.Context
	svc    service.ClientRegistrationService
	logger *logger.Logger

	downloadedPath string
	downloading    bool
	loggingOut     bool
	width          int
}

func NewUnlockedModel(ctx context.Context, svc service.ClientRegistrationService, log *logger.Logger) *UnlockedModel {
	return &UnlockedModel{
		ctx:    ctx,
		svc:    svc,
		logger: log,
	}
}

func (m *UnlockedModel) Init() tea.Cmd {
	return nil
}

func (m *UnlockedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case downloadRequestMsg:
		return m, m.startDownload()
	case documentDownloadedMsg:
		m.downloading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "UnlockedModel.Update").Msg("document download failed")
			return m, errorToast(fmt.Sprintf(app.MsgDocumentDownloadFailed, humanizeServerUnavailableError(msg.err)))
		}
		m.downloadedPath = msg.path
		return m, successToast(fmt.Sprintf(app.MsgDocumentDownloaded, msg.path))
	case logoutResultMsg:
		m.loggingOut = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "UnlockedModel.Update").Msg("logout failed")
			return m, errorToast(app.MsgLogoutFailed)
		}
		m.downloadedPath = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageGate, Payload: loggedOutMsg{}} }
	case clipboardMsg:
		if msg.err != nil {
			return m, errorToast(fmt.Sprintf(app.MsgClipboardFailed, msg.err))
		}
		return m, successToast(msg.success)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.download):
			return m, m.startDownload()
		case key.Matches(msg, keys.open):
			return m, func() tea.Msg { return NavigateTo{Page: pageViewer, Payload: mountViewerMsg{}} }
		case key.Matches(msg, keys.copyPath):
			if m.downloadedPath == "" {
				return m, errorToast(app.MsgNothingToCopy)
			}
			return m, cmdCopyToClipboard(m.downloadedPath, app.MsgPathCopied)
		case key.Matches(msg, keys.logout):
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			return m, m.cmdLogout()
		}
	}
	return m, nil
}

func (m *UnlockedModel) View() string {
	var b strings.Builder
	b.WriteString("Thank you for registering!\n")
	b.WriteString("You now have access to the book.\n\n")

	switch {
	case m.downloading:
		b.WriteString("Book: downloading...\n")
	case m.downloadedPath != "":
		b.WriteString("Book: ")
		b.WriteString(fitText(m.downloadedPath, max(m.width-12, 20)))
		b.WriteString("\n")
	default:
		b.WriteString("Book: not downloaded\n")
	}

	b.WriteString("\n[Download Book]  [Open Book]  [Logout]")

	return renderPage("WELCOME", b.String(), "d: download │ enter/o: open │ y: copy path │ l: logout │ v: about")
}

func (m *UnlockedModel) startDownload() tea.Cmd {
	if m.downloading {
		return nil
	}
	m.downloading = true
	return m.cmdDownload()
}

func (m *UnlockedModel) cmdDownload() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		path, err := svc.DownloadDocument(ctx)
		return documentDownloadedMsg{path: path, err: err}
	}
}

func (m *UnlockedModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	return func() tea.Msg {
		return logoutResultMsg{err: svc.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text, success string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriter(text); err != nil {
			return clipboardMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return clipboardMsg{success: success}
	}
}
