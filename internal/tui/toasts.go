package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultToastDuration = 5 * time.Second
	toastWidth           = 40
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// showToastMsg asks the root model to push a notification.
type showToastMsg struct {
	kind toastKind
	text string
}

type toastExpiredMsg struct {
	id int
}

type toast struct {
	id   int
	kind toastKind
	text string
}

// toastStack keeps active notifications, newest first. Each toast removes
// itself after duration through a tea.Tick.
type toastStack struct {
	items    []toast
	nextID   int
	duration time.Duration
}

func newToastStack(duration time.Duration) toastStack {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return toastStack{duration: duration}
}

func successToast(text string) tea.Cmd {
	return func() tea.Msg { return showToastMsg{kind: toastSuccess, text: text} }
}

func errorToast(text string) tea.Cmd {
	return func() tea.Msg { return showToastMsg{kind: toastError, text: text} }
}

func (s *toastStack) push(kind toastKind, text string) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.items = append([]toast{{id: id, kind: kind, text: text}}, s.items...)

	return tea.Tick(s.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (s *toastStack) expire(id int) {
	for i, t := range s.items {
		if t.id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *toastStack) len() int {
	return len(s.items)
}

func (s *toastStack) View() string {
	if len(s.items) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(s.items))
	for _, t := range s.items {
		style := toastSuccessStyle
		if t.kind == toastError {
			style = toastErrorStyle
		}
		rendered = append(rendered, style.Render(t.text))
	}
	return strings.Join(rendered, "\n")
}
