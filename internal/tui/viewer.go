package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-event-gate/internal/app"
	"github.com/MKhiriev/go-event-gate/internal/document"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	viewerChromeHeight = 9
	refreshInterval    = 150 * time.Millisecond
)

var printMenu = key.NewBinding(key.WithKeys("p"))

type refreshTickMsg struct {
	generation uint64
}

// ViewerModel shows the document in a scrollable viewport. Mounting acquires
// the copy/print restriction on the host page and starts loading; leaving
// the page releases the restriction and resets the renderer.
//
// Every key press is dispatched as a keydown event on the host document and
// right clicks as a contextmenu event on the viewer container before the
// default action runs.
type ViewerModel struct {
	ctx         context.Context
	renderer    *document.Renderer
	restriction *document.Restriction
	host        *hostPage
	url         string
	dumpDir     string
	logger      *logger.Logger

	canvases   []*document.Canvas
	generation uint64
	mounted    bool

	vp     viewport.Model
	width  int
	height int
}

func NewViewerModel(
	ctx context.Context,
	renderer *document.Renderer,
	url, dumpDir string,
	log *logger.Logger,
) *ViewerModel {
	vp := viewport.New(80, 20)
	vp.SetHorizontalStep(4)

	return &ViewerModel{
		ctx:         ctx,
		renderer:    renderer,
		restriction: document.NewRestriction(),
		host:        newHostPage(),
		url:         url,
		dumpDir:     dumpDir,
		logger:      log,
		vp:          vp,
	}
}

func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = max(msg.Width-appStyle.GetHorizontalFrameSize(), 20)
		m.vp.Height = max(msg.Height-viewerChromeHeight, 5)
		return m, nil
	case mountViewerMsg:
		return m, m.mount()
	case documentOpenedMsg:
		return m, m.handleOpened(msg)
	case pagesRenderedMsg:
		if !m.current(msg.generation) {
			return m, nil
		}
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "ViewerModel.Update").Msg("rendering stopped")
		}
		m.refresh()
		return m, nil
	case refreshTickMsg:
		if !m.current(msg.generation) {
			return m, nil
		}
		m.refresh()
		if m.renderer.State().Rendering {
			return m, m.tickRefresh()
		}
		return m, nil
	case screenSavedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "ViewerModel.Update").Msg("screen dump failed")
			return m, errorToast(fmt.Sprintf(app.MsgScreenSaveFailed, msg.err))
		}
		return m, successToast(fmt.Sprintf(app.MsgScreenSaved, msg.path))
	case clipboardMsg:
		if msg.err != nil {
			return m, errorToast(fmt.Sprintf(app.MsgClipboardFailed, msg.err))
		}
		return m, successToast(msg.success)
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress {
			return m, m.contextMenu()
		}
	case tea.KeyMsg:
		if key.Matches(msg, keys.back) {
			m.unmount()
			return m, func() tea.Msg { return NavigateTo{Page: pageUnlocked} }
		}

		if !m.host.dispatch(document.TargetDocument, keyEvent(msg.String())) {
			return m, errorToast(document.MsgPrintingDisabled)
		}

		switch {
		case key.Matches(msg, keys.print, printMenu):
			return m, m.cmdSaveScreen("print")
		case key.Matches(msg, keys.save):
			return m, m.cmdSaveScreen("screen")
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *ViewerModel) View() string {
	st := m.renderer.State()

	status := "No document"
	switch {
	case st.Loading:
		status = "Loading..."
	case st.Rendering:
		status = fmt.Sprintf("Rendering %d/%d", st.Rendered, st.PageCount)
	case st.PageCount > 0:
		status = fmt.Sprintf("%d pages", st.PageCount)
	}

	footer := fmt.Sprintf("%s │ %3.f%%", status, m.vp.ScrollPercent()*100)
	return renderPage("BOOK", m.vp.View()+"\n\n"+helpStyle.Render(footer),
		"↑/↓ pgup/pgdn: scroll │ ←/→: pan │ p: print │ esc/q: back")
}

// mount attaches the restriction and starts opening the document.
func (m *ViewerModel) mount() tea.Cmd {
	if m.mounted {
		return nil
	}
	if err := m.restriction.Acquire(m.host); err != nil {
		m.logger.Err(err).Str("func", "ViewerModel.mount").Msg("failed to acquire restriction")
	}
	m.mounted = true
	m.canvases = nil
	m.vp.SetContent("Loading document...")
	m.vp.GotoTop()

	return m.cmdOpen()
}

// unmount releases the restriction and invalidates any render in flight.
func (m *ViewerModel) unmount() {
	if !m.mounted {
		return
	}
	m.restriction.Release()
	m.renderer.Reset()
	m.canvases = nil
	m.mounted = false
	m.generation = m.renderer.Generation()
	m.vp.SetContent("")
}

func (m *ViewerModel) handleOpened(msg documentOpenedMsg) tea.Cmd {
	if !m.mounted || msg.generation != m.renderer.Generation() {
		return nil
	}
	m.generation = msg.generation

	if msg.err != nil {
		m.refresh()
		return nil
	}

	st := m.renderer.State()
	m.canvases = make([]*document.Canvas, st.PageCount)
	for i := range m.canvases {
		c := document.NewCanvas()
		if err := m.renderer.Mount(i+1, c); err != nil {
			m.logger.Err(err).Str("func", "ViewerModel.handleOpened").Int("page", i+1).Msg("failed to mount surface")
			continue
		}
		m.canvases[i] = c
	}

	m.refresh()
	return tea.Batch(m.cmdRender(), m.tickRefresh())
}

func (m *ViewerModel) current(generation uint64) bool {
	return m.mounted && generation == m.generation && generation == m.renderer.Generation()
}

func (m *ViewerModel) refresh() {
	m.vp.SetContent(m.content())
}

func (m *ViewerModel) content() string {
	st := m.renderer.State()

	switch {
	case st.Loading:
		return "Loading document..."
	case st.Empty:
		return document.MsgNoDocument
	}

	var b strings.Builder
	pages := m.pagesText()
	b.WriteString(pages)
	if st.Err != "" {
		if pages != "" {
			b.WriteString("\n")
		}
		b.WriteString(errorStyle.Render(st.Err))
	}
	return b.String()
}

// pagesText lays the painted canvases out one below the other.
func (m *ViewerModel) pagesText() string {
	var b strings.Builder
	for i, c := range m.canvases {
		fmt.Fprintf(&b, "Page %d of %d\n", i+1, len(m.canvases))
		if c == nil || c.Blank() {
			b.WriteString("\n")
			continue
		}
		lines := c.Lines()
		for j := range lines {
			lines[j] = strings.TrimRight(lines[j], " ")
		}
		b.WriteString(pageStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

// contextMenu dispatches a contextmenu event on the viewer container. Unless
// prevented the visible text is copied.
func (m *ViewerModel) contextMenu() tea.Cmd {
	ev := &document.Event{Type: document.EventContextMenu}
	if !m.host.dispatch(document.TargetContainer, ev) {
		return errorToast(app.MsgCopyDisabled)
	}
	return cmdCopyToClipboard(m.vp.View(), app.MsgPageTextCopied)
}

func (m *ViewerModel) cmdOpen() tea.Cmd {
	ctx := m.ctx
	r := m.renderer
	url := m.url
	return func() tea.Msg {
		gen, err := r.Initialize(ctx, url)
		return documentOpenedMsg{generation: gen, err: err}
	}
}

func (m *ViewerModel) cmdRender() tea.Cmd {
	ctx := m.ctx
	r := m.renderer
	return func() tea.Msg {
		gen, err := r.RenderAllPages(ctx)
		return pagesRenderedMsg{generation: gen, err: err}
	}
}

func (m *ViewerModel) tickRefresh() tea.Cmd {
	gen := m.generation
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{generation: gen}
	})
}

// cmdSaveScreen writes the page as it looks on print media.
func (m *ViewerModel) cmdSaveScreen(prefix string) tea.Cmd {
	content := m.host.printView(m.pagesText())
	dir := m.dumpDir
	name := fmt.Sprintf("%s-%s.txt", prefix, time.Now().Format("20060102-150405"))

	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return screenSavedMsg{err: err}
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return screenSavedMsg{err: err}
		}
		return screenSavedMsg{path: path}
	}
}
