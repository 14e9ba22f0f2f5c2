package tui

import (
	"time"

	"github.com/MKhiriev/go-event-gate/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the toast stack shared by all pages
// 5) returns async command results to the page that started them
// 6) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	toasts    toastStack
	buildInfo models.AppBuildInfo
	width     int
	height    int

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, toastDuration time.Duration) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		toasts:      newToastStack(toastDuration),
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.buildInfo) && r.currentName == pageUnlocked:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case showToastMsg:
		return r, r.toasts.push(msg.kind, msg.text)
	case toastExpiredMsg:
		r.toasts.expire(msg.id)
		return r, nil
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
		cmd := r.broadcast(msg)
		r.current = r.pages[r.currentName]
		return r, cmd
	case registerResultMsg:
		return r.deliver(pageGate, msg)
	case documentDownloadedMsg, logoutResultMsg:
		// The user may have opened the viewer while these were in flight.
		return r.deliver(pageUnlocked, msg)
	case NavigateTo:
		// Cross-page navigation.
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		if msg.Page != r.currentName {
			if u, ok := r.current.(unmounter); ok {
				u.unmount()
			}
		}
		r.current = next
		r.currentName = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

// unmounter is a page holding resources while it is shown.
type unmounter interface {
	unmount()
}

// deliver updates the named page with msg whether or not it is shown.
func (r RootModel) deliver(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	if name == r.currentName {
		r.current = updated
	}
	return r, cmd
}

// broadcast delivers msg to every page so inactive pages keep their layout
// in sync with the terminal.
func (r RootModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r RootModel) View() string {
	var body string
	switch {
	case r.showBuildInfo:
		body = renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		body = renderPage("go-event-gate", "", "")
	default:
		body = r.current.View()
	}

	if r.toasts.len() == 0 {
		return appStyle.Render(body)
	}

	// Toasts are anchored top-right above the page.
	width := max(r.width-appStyle.GetHorizontalFrameSize(), lipgloss.Width(r.toasts.View()))
	stack := lipgloss.PlaceHorizontal(width, lipgloss.Right, r.toasts.View())
	return appStyle.Render(stack + "\n" + body)
}

// QuitByUser reports whether the program ended through ctrl+c.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}
