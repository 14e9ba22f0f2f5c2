package document

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/MKhiriev/go-event-gate/internal/logger"
)

// RenderScale is the fixed zoom every page is rendered at.
const RenderScale = 1.5

// State is a snapshot of the renderer for the UI.
type State struct {
	URL        string
	PageCount  int
	Loading    bool
	Rendering  bool
	Err        string
	Empty      bool
	Rendered   int
	Mounted    int
	Generation uint64
}

// Renderer loads one document at a time and paints its pages into surfaces
// mounted by the UI. It is safe for concurrent use: Initialize and
// RenderAllPages run off the UI goroutine while State is read from it.
//
// Every Initialize and Reset bumps the generation. Work started under an
// older generation still runs to completion but no longer touches state.
type Renderer struct {
	loader EngineLoader
	logger *logger.Logger

	mu         sync.Mutex
	generation uint64
	url        string
	doc        Document
	pageCount  int
	surfaces   []Surface
	loading    bool
	rendering  bool
	errMsg     string
	rendered   int
}

func NewRenderer(loader EngineLoader, log *logger.Logger) *Renderer {
	return &Renderer{
		loader: loader,
		logger: log,
	}
}

// Initialize replaces the current document with the one at url. It returns
// the generation the new state belongs to.
func (r *Renderer) Initialize(ctx context.Context, url string) (uint64, error) {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.resetLocked()
	r.url = url
	r.loading = true
	r.mu.Unlock()

	engine, err := r.loader.Load(ctx)
	if err != nil {
		r.logger.Err(err).Str("func", "Renderer.Initialize").Msg("document engine unavailable")
		r.fail(gen, MsgEngineUnavailable)
		return gen, fmt.Errorf("%w: %w", ErrEngineUnavailable, err)
	}

	doc, err := engine.Open(ctx, url)
	if err != nil {
		r.logger.Err(err).Str("func", "Renderer.Initialize").Str("url", url).Msg("failed to open document")
		r.fail(gen, MsgOpenFailed)
		return gen, fmt.Errorf("%w: %w", ErrDocumentOpen, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.generation {
		if err = doc.Close(); err != nil {
			r.logger.Warn().Err(err).Str("func", "Renderer.Initialize").Msg("closing stale document failed")
		}
		return gen, ErrStaleGeneration
	}

	r.doc = doc
	r.pageCount = doc.PageCount()
	r.surfaces = make([]Surface, r.pageCount)
	r.loading = false
	r.errMsg = ""

	r.logger.Debug().Str("func", "Renderer.Initialize").Int("pages", r.pageCount).Msg("document opened")
	return gen, nil
}

// Mount attaches s as the surface of page (1-based).
func (r *Renderer) Mount(page int, s Surface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if page < 1 || page > len(r.surfaces) {
		return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, page, len(r.surfaces))
	}
	r.surfaces[page-1] = s
	return nil
}

// RenderAllPages paints pages 1..n strictly in order, each into its own
// surface sized to the page viewport at [RenderScale]. A missing surface is
// skipped. The first page failure stops the loop; pages already painted
// stay painted.
func (r *Renderer) RenderAllPages(ctx context.Context) (uint64, error) {
	r.mu.Lock()
	gen := r.generation
	if r.doc == nil || len(r.surfaces) != r.pageCount {
		r.mu.Unlock()
		return gen, ErrSurfacesNotReady
	}
	doc := r.doc
	surfaces := append([]Surface(nil), r.surfaces...)
	r.rendering = true
	r.rendered = 0
	r.mu.Unlock()

	defer r.update(gen, func() { r.rendering = false })

	for n := 1; n <= len(surfaces); n++ {
		if err := r.renderPage(ctx, doc, n, surfaces[n-1]); err != nil {
			if errors.Is(err, errSkipped) {
				continue
			}
			r.logger.Err(err).Str("func", "Renderer.RenderAllPages").Int("page", n).Msg("page render failed")
			r.fail(gen, fmt.Sprintf(MsgPageRenderFailed, n))
			return gen, fmt.Errorf("%w %d: %w", ErrPageRender, n, err)
		}
		r.update(gen, func() { r.rendered++ })
	}

	return gen, nil
}

var errSkipped = errors.New("surface missing")

func (r *Renderer) renderPage(ctx context.Context, doc Document, n int, s Surface) error {
	page, err := doc.Page(ctx, n)
	if err != nil {
		return err
	}

	vp := page.Viewport(RenderScale)

	if s == nil {
		r.logger.Warn().Str("func", "Renderer.renderPage").Int("page", n).Msg("surface for page is missing, skipping")
		return errSkipped
	}

	s.SetSize(int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height)))
	return page.Render(ctx, s, vp)
}

// Reset tears down the current document. Pending work becomes stale.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.resetLocked()
}

// Generation returns the current generation.
func (r *Renderer) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	mounted := 0
	for _, s := range r.surfaces {
		if s != nil {
			mounted++
		}
	}

	return State{
		URL:        r.url,
		PageCount:  r.pageCount,
		Loading:    r.loading,
		Rendering:  r.rendering,
		Err:        r.errMsg,
		Empty:      r.doc == nil && !r.loading && r.errMsg == "",
		Rendered:   r.rendered,
		Mounted:    mounted,
		Generation: r.generation,
	}
}

func (r *Renderer) resetLocked() {
	if r.doc != nil {
		if err := r.doc.Close(); err != nil {
			r.logger.Warn().Err(err).Str("func", "Renderer.reset").Msg("closing document failed")
		}
	}
	r.url = ""
	r.doc = nil
	r.pageCount = 0
	r.surfaces = nil
	r.loading = false
	r.rendering = false
	r.errMsg = ""
	r.rendered = 0
}

// fail records msg for gen. An open failure leaves no document and no
// surfaces behind.
func (r *Renderer) fail(gen uint64, msg string) {
	r.update(gen, func() {
		r.loading = false
		r.errMsg = msg
		if r.doc == nil {
			r.surfaces = nil
			r.pageCount = 0
		}
	})
}

func (r *Renderer) update(gen uint64, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen == r.generation {
		fn()
	}
}
