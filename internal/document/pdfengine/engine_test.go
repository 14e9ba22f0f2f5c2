package pdfengine

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-event-gate/internal/adapter"
	"github.com/MKhiriev/go-event-gate/internal/document"
	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testPage struct {
	text     string
	mediaBox string // empty inherits from the page tree
}

// buildPDF writes a minimal uncompressed PDF with one text line per page.
func buildPDF(pages ...testPage) []byte {
	var (
		buf     bytes.Buffer
		offsets []int
	)
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	// 1: catalog, 2: pages, 3: font, then page/content pairs
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i*2)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>", strings.Join(kids, " "), len(pages)))
	widths := strings.TrimSpace(strings.Repeat("600 ", 126-32+1))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [" + widths + "] >>")

	for i, p := range pages {
		mb := ""
		if p.mediaBox != "" {
			mb = " /MediaBox " + p.mediaBox
		}
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R%s /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", mb, 5+i*2))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", p.text)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return buf.Bytes()
}

func TestOpenBytes_PageCount(t *testing.T) {
	doc, err := OpenBytes(buildPDF(testPage{text: "one"}, testPage{text: "two"}, testPage{text: "three"}))
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 3, doc.PageCount())
}

func TestOpenBytes_NotPDF(t *testing.T) {
	_, err := OpenBytes([]byte("<html>404</html>"))
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestPage_ViewportInheritsMediaBox(t *testing.T) {
	doc, err := OpenBytes(buildPDF(testPage{text: "a"}, testPage{text: "b", mediaBox: "[0 0 300 400]"}))
	require.NoError(t, err)

	first, err := doc.Page(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, document.Viewport{Width: 918, Height: 1188, Scale: 1.5}, first.Viewport(1.5))

	second, err := doc.Page(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, document.Viewport{Width: 450, Height: 600, Scale: 1.5}, second.Viewport(1.5))
	assert.Equal(t, 2, second.Number())
}

func TestPage_OutOfRange(t *testing.T) {
	doc, err := OpenBytes(buildPDF(testPage{text: "a"}))
	require.NoError(t, err)

	_, err = doc.Page(context.Background(), 0)
	assert.ErrorIs(t, err, document.ErrPageOutOfRange)
	_, err = doc.Page(context.Background(), 2)
	assert.ErrorIs(t, err, document.ErrPageOutOfRange)
}

func TestPage_RenderPaintsText(t *testing.T) {
	doc, err := OpenBytes(buildPDF(testPage{text: "Hello"}))
	require.NoError(t, err)

	page, err := doc.Page(context.Background(), 1)
	require.NoError(t, err)

	vp := page.Viewport(document.RenderScale)
	canvas := document.NewCanvas()
	canvas.SetSize(int(vp.Width), int(vp.Height))

	require.NoError(t, page.Render(context.Background(), canvas, vp))
	assert.Contains(t, strings.Join(canvas.Lines(), "\n"), "Hello")
}

func TestPage_RenderCancelled(t *testing.T) {
	doc, err := OpenBytes(buildPDF(testPage{text: "x"}))
	require.NoError(t, err)
	page, err := doc.Page(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, page.Render(ctx, document.NewCanvas(), page.Viewport(1)), context.Canceled)
}

func TestEngine_OpenThroughAssetAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	assets := mock.NewMockAssetAdapter(ctrl)

	assets.EXPECT().Fetch(gomock.Any(), "assets/book/gwc_book.pdf").Return(buildPDF(testPage{text: "a"}, testPage{text: "b"}), nil)

	doc, err := New(assets, logger.Nop()).Open(context.Background(), "assets/book/gwc_book.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.PageCount())
}

func TestEngine_OpenFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	assets := mock.NewMockAssetAdapter(ctrl)

	assets.EXPECT().Fetch(gomock.Any(), "missing.pdf").Return(nil, adapter.ErrAssetNotFound)

	_, err := New(assets, logger.Nop()).Open(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, adapter.ErrAssetNotFound)
}

// TestRenderer_WithPDFEngine runs the whole renderer lifecycle over a real
// PDF: three pages, three surfaces, three paints.
func TestRenderer_WithPDFEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	assets := mock.NewMockAssetAdapter(ctrl)
	assets.EXPECT().Fetch(gomock.Any(), "book.pdf").
		Return(buildPDF(testPage{text: "First"}, testPage{text: "Second"}, testPage{text: "Third"}), nil)

	loader := staticLoader{engine: New(assets, logger.Nop())}
	r := document.NewRenderer(loader, logger.Nop())

	_, err := r.Initialize(context.Background(), "book.pdf")
	require.NoError(t, err)
	require.Equal(t, 3, r.State().PageCount)

	canvases := make([]*document.Canvas, 3)
	for i := range canvases {
		canvases[i] = document.NewCanvas()
		require.NoError(t, r.Mount(i+1, canvases[i]))
	}

	_, err = r.RenderAllPages(context.Background())
	require.NoError(t, err)

	for i, want := range []string{"First", "Second", "Third"} {
		assert.Contains(t, strings.Join(canvases[i].Lines(), "\n"), want)
		assert.Equal(t, 102, canvases[i].Cols())
	}
	assert.Equal(t, 3, r.State().Rendered)
}

type staticLoader struct {
	engine document.Engine
}

func (l staticLoader) Load(context.Context) (document.Engine, error) {
	return l.engine, nil
}
