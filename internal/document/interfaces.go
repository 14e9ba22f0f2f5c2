package document

import "context"

// Viewport is a page's rendered size in pixels.
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}

// Surface is a drawable raster target owned by the UI.
type Surface interface {
	// SetSize resizes the surface to width×height pixels and clears it.
	SetSize(width, height int)
	// Size returns the current pixel size.
	Size() (width, height int)
	// DrawText paints text starting at the given cell.
	DrawText(col, row int, text string)
}

// Page is one page of an opened document.
type Page interface {
	// Number is the 1-based page index.
	Number() int
	// Viewport returns the page size at scale.
	Viewport(scale float64) Viewport
	// Render paints the page into s, which has been sized to vp.
	Render(ctx context.Context, s Surface, vp Viewport) error
}

// Document is an opened document handle.
type Document interface {
	PageCount() int
	// Page returns page n, 1-based.
	Page(ctx context.Context, n int) (Page, error)
	Close() error
}

// Engine opens documents. Implementations register themselves with
// [Register].
type Engine interface {
	Open(ctx context.Context, url string) (Document, error)
}

// EngineLoader acquires an engine before use.
type EngineLoader interface {
	Load(ctx context.Context) (Engine, error)
}
