package document

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type paintCall struct {
	page   int
	width  int
	height int
	scale  float64
}

// recorder collects paint calls across pages in call order.
type recorder struct {
	mu    sync.Mutex
	calls []paintCall
}

func (r *recorder) add(c paintCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *recorder) snapshot() []paintCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]paintCall(nil), r.calls...)
}

type fakePage struct {
	n         int
	width     float64
	height    float64
	renderErr error
	rec       *recorder
}

func (p *fakePage) Number() int { return p.n }

func (p *fakePage) Viewport(scale float64) Viewport {
	return Viewport{Width: p.width * scale, Height: p.height * scale, Scale: scale}
}

func (p *fakePage) Render(_ context.Context, s Surface, vp Viewport) error {
	if p.renderErr != nil {
		return p.renderErr
	}
	w, h := s.Size()
	p.rec.add(paintCall{page: p.n, width: w, height: h, scale: vp.Scale})
	s.DrawText(0, 0, fmt.Sprintf("page %d", p.n))
	return nil
}

type fakeDoc struct {
	pages   []*fakePage
	pageErr  map[int]error
	closed   bool
	closeErr error
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

func (d *fakeDoc) Page(_ context.Context, n int) (Page, error) {
	if err := d.pageErr[n]; err != nil {
		return nil, err
	}
	if n < 1 || n > len(d.pages) {
		return nil, ErrPageOutOfRange
	}
	return d.pages[n-1], nil
}

func (d *fakeDoc) Close() error {
	d.closed = true
	return d.closeErr
}

func newFakeDoc(rec *recorder, count int) *fakeDoc {
	d := &fakeDoc{pageErr: map[int]error{}}
	for i := 1; i <= count; i++ {
		d.pages = append(d.pages, &fakePage{n: i, width: 612, height: 792, rec: rec})
	}
	return d
}

type fakeEngine struct {
	mu      sync.Mutex
	docs    map[string]Document
	openErr error
	opened  []string
}

func (e *fakeEngine) Open(_ context.Context, url string) (Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opened = append(e.opened, url)
	if e.openErr != nil {
		return nil, e.openErr
	}
	d, ok := e.docs[url]
	if !ok {
		return nil, errors.New("404")
	}
	return d, nil
}

func (e *fakeEngine) openCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.opened)
}

type staticLoader struct {
	engine Engine
	err    error
}

func (l staticLoader) Load(context.Context) (Engine, error) {
	return l.engine, l.err
}

type fakeHost struct {
	next      int
	listeners map[ListenerHandle]struct {
		target Target
		event  EventType
		fn     Listener
	}
	styles map[StyleHandle]PrintStyle
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		listeners: map[ListenerHandle]struct {
			target Target
			event  EventType
			fn     Listener
		}{},
		styles: map[StyleHandle]PrintStyle{},
	}
}

func (h *fakeHost) AddListener(target Target, event EventType, fn Listener) ListenerHandle {
	h.next++
	id := ListenerHandle(h.next)
	h.listeners[id] = struct {
		target Target
		event  EventType
		fn     Listener
	}{target, event, fn}
	return id
}

func (h *fakeHost) RemoveListener(id ListenerHandle) { delete(h.listeners, id) }

func (h *fakeHost) InjectStyle(style PrintStyle) StyleHandle {
	h.next++
	id := StyleHandle(h.next)
	h.styles[id] = style
	return id
}

func (h *fakeHost) RemoveStyle(id StyleHandle) { delete(h.styles, id) }

func (h *fakeHost) dispatch(target Target, e *Event) {
	for _, l := range h.listeners {
		if l.target == target && l.event == e.Type {
			l.fn(e)
		}
	}
}
