// Package pdfengine is a document engine for PDF files built on
// github.com/ledongthuc/pdf. It paints the text layer of each page onto a
// text canvas at the glyph positions recorded in the file.
package pdfengine

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-event-gate/internal/adapter"
	"github.com/MKhiriev/go-event-gate/internal/document"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/ledongthuc/pdf"
)

// Name is the registry name of this engine.
const Name = "pdf"

var ErrNotPDF = errors.New("not a pdf document")

// Engine opens PDF documents fetched through an [adapter.AssetAdapter].
type Engine struct {
	assets adapter.AssetAdapter
	logger *logger.Logger
}

func New(assets adapter.AssetAdapter, log *logger.Logger) *Engine {
	return &Engine{assets: assets, logger: log}
}

// Register registers a new Engine under [Name].
func Register(assets adapter.AssetAdapter, log *logger.Logger) {
	document.Register(Name, New(assets, log))
}

// Open implements [document.Engine].
func (e *Engine) Open(ctx context.Context, url string) (document.Document, error) {
	data, err := e.assets.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}

	return OpenBytes(data)
}

// OpenBytes parses an in-memory PDF.
func OpenBytes(data []byte) (document.Document, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPDF, err)
	}

	return &pdfDocument{reader: r}, nil
}

type pdfDocument struct {
	reader *pdf.Reader
}

func (d *pdfDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) Page(ctx context.Context, n int) (document.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 1 || n > d.reader.NumPage() {
		return nil, fmt.Errorf("%w: %d", document.ErrPageOutOfRange, n)
	}

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return nil, fmt.Errorf("%w: page %d is missing", document.ErrPageOutOfRange, n)
	}

	return &pdfPage{number: n, page: p, box: mediaBox(p.V)}, nil
}

// Close is a no-op: the reader holds no resources beyond its byte slice.
func (d *pdfDocument) Close() error {
	return nil
}
