package document

import (
	"strings"
	"sync"
)

// EventType names a host event.
type EventType string

const (
	EventContextMenu EventType = "contextmenu"
	EventKeyDown     EventType = "keydown"
)

// Target is where a listener is attached.
type Target string

const (
	// TargetContainer is the viewer container only.
	TargetContainer Target = "container"
	// TargetDocument is the whole hosting page.
	TargetDocument Target = "document"
)

// Event is dispatched by a [Host] to its listeners.
type Event struct {
	Type EventType
	// Key is the lower-case key name for keydown events.
	Key  string
	Ctrl bool
	Meta bool

	prevented bool
}

// PreventDefault stops the host's default action for the event.
func (e *Event) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Listener handles a dispatched event.
type Listener func(*Event)

// ListenerHandle identifies an attached listener.
type ListenerHandle int

// StyleHandle identifies an injected style.
type StyleHandle int

// PrintStyle overrides how the host renders for print media.
type PrintStyle struct {
	// HideContent blanks the page when printing.
	HideContent bool
	// Message replaces the hidden content.
	Message string
}

// Host is the page the viewer is mounted into.
type Host interface {
	AddListener(target Target, event EventType, fn Listener) ListenerHandle
	RemoveListener(h ListenerHandle)
	InjectStyle(style PrintStyle) StyleHandle
	RemoveStyle(h StyleHandle)
}

// Restriction suppresses the context menu and the save/print shortcuts and
// blanks printed output while acquired. It must be released on unmount;
// the listeners and style are global to the host.
type Restriction struct {
	mu        sync.Mutex
	host      Host
	listeners []ListenerHandle
	style     StyleHandle
}

func NewRestriction() *Restriction {
	return &Restriction{}
}

// Acquire attaches the restriction to h.
func (r *Restriction) Acquire(h Host) error {
	if h == nil {
		return ErrNilHost
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.host != nil {
		return ErrRestrictionActive
	}

	r.host = h
	r.listeners = []ListenerHandle{
		h.AddListener(TargetContainer, EventContextMenu, preventContextMenu),
		h.AddListener(TargetDocument, EventKeyDown, preventSaveAndPrint),
	}
	r.style = h.InjectStyle(PrintStyle{HideContent: true, Message: MsgPrintingDisabled})

	return nil
}

// Release removes everything Acquire attached. Releasing twice is a no-op.
func (r *Restriction) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.host == nil {
		return
	}

	for _, l := range r.listeners {
		r.host.RemoveListener(l)
	}
	r.host.RemoveStyle(r.style)

	r.host = nil
	r.listeners = nil
	r.style = 0
}

// Active reports whether the restriction is currently acquired.
func (r *Restriction) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.host != nil
}

func preventContextMenu(e *Event) {
	e.PreventDefault()
}

// preventSaveAndPrint blocks ctrl/cmd + p and ctrl/cmd + s.
func preventSaveAndPrint(e *Event) {
	if !e.Ctrl && !e.Meta {
		return
	}
	switch strings.ToLower(e.Key) {
	case "p", "s":
		e.PreventDefault()
	}
}
