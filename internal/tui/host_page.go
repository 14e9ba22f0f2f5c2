package tui

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-event-gate/internal/document"
)

type hostListener struct {
	target document.Target
	event  document.EventType
	fn     document.Listener
}

// hostPage is the terminal page the viewer is mounted into. It routes key
// and mouse events through registered listeners and applies injected print
// styles when the page is printed.
//
// hostPage is only touched from the bubbletea update loop.
type hostPage struct {
	nextID    int
	listeners map[document.ListenerHandle]hostListener
	styles    map[document.StyleHandle]document.PrintStyle
}

var _ document.Host = (*hostPage)(nil)

func newHostPage() *hostPage {
	return &hostPage{
		listeners: make(map[document.ListenerHandle]hostListener),
		styles:    make(map[document.StyleHandle]document.PrintStyle),
	}
}

func (h *hostPage) AddListener(target document.Target, event document.EventType, fn document.Listener) document.ListenerHandle {
	h.nextID++
	handle := document.ListenerHandle(h.nextID)
	h.listeners[handle] = hostListener{target: target, event: event, fn: fn}
	return handle
}

func (h *hostPage) RemoveListener(handle document.ListenerHandle) {
	delete(h.listeners, handle)
}

func (h *hostPage) InjectStyle(style document.PrintStyle) document.StyleHandle {
	h.nextID++
	handle := document.StyleHandle(h.nextID)
	h.styles[handle] = style
	return handle
}

func (h *hostPage) RemoveStyle(handle document.StyleHandle) {
	delete(h.styles, handle)
}

// dispatch runs the listeners registered for ev on target, oldest first.
// Events on the container bubble up to the document. It reports whether
// the default action may proceed.
func (h *hostPage) dispatch(target document.Target, ev *document.Event) bool {
	targets := []document.Target{target}
	if target == document.TargetContainer {
		targets = append(targets, document.TargetDocument)
	}

	for _, t := range targets {
		for _, handle := range h.sortedHandles() {
			l := h.listeners[handle]
			if l.target == t && l.event == ev.Type {
				l.fn(ev)
			}
		}
	}
	return !ev.DefaultPrevented()
}

// printView renders content the way it looks on print media: any injected
// style hiding the content replaces it with the style's message.
func (h *hostPage) printView(content string) string {
	for _, handle := range h.sortedStyleHandles() {
		style := h.styles[handle]
		if style.HideContent {
			return printBlankStyle.Render(style.Message) + "\n"
		}
	}
	return content
}

func (h *hostPage) listenerCount() int {
	return len(h.listeners)
}

func (h *hostPage) styleCount() int {
	return len(h.styles)
}

func (h *hostPage) sortedHandles() []document.ListenerHandle {
	handles := make([]document.ListenerHandle, 0, len(h.listeners))
	for handle := range h.listeners {
		handles = append(handles, handle)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

func (h *hostPage) sortedStyleHandles() []document.StyleHandle {
	handles := make([]document.StyleHandle, 0, len(h.styles))
	for handle := range h.styles {
		handles = append(handles, handle)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}

// keyEvent converts a bubbletea key string such as "ctrl+s" to a keydown event.
func keyEvent(k string) *document.Event {
	ev := &document.Event{Type: document.EventKeyDown, Key: k}
	if rest, ok := strings.CutPrefix(k, "ctrl+"); ok {
		ev.Ctrl = true
		ev.Key = rest
	}
	return ev
}
