package pdfengine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-event-gate/internal/document"
	"github.com/ledongthuc/pdf"
)

// US Letter in points, used when a page declares no MediaBox.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

type box struct {
	x0, y0, x1, y1 float64
}

func (b box) width() float64  { return b.x1 - b.x0 }
func (b box) height() float64 { return b.y1 - b.y0 }

type pdfPage struct {
	number int
	page   pdf.Page
	box    box
}

func (p *pdfPage) Number() int { return p.number }

func (p *pdfPage) Viewport(scale float64) document.Viewport {
	return document.Viewport{
		Width:  p.box.width() * scale,
		Height: p.box.height() * scale,
		Scale:  scale,
	}
}

// Render places every glyph at the cell under its baseline origin. Pages
// whose glyphs cannot be positioned on the surface fall back to flowing
// plain text.
func (p *pdfPage) Render(ctx context.Context, s document.Surface, vp document.Viewport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	painted := 0
	if glyphs, err := pageGlyphs(p.page); err == nil {
		painted = placeGlyphs(s, glyphs, p.box, vp.Scale)
	}
	if painted > 0 {
		return nil
	}

	text, err := plainText(p.page)
	if err != nil {
		return fmt.Errorf("extract text of page %d: %w", p.number, err)
	}
	document.DrawParagraphs(s, text)
	return nil
}

// placeGlyphs groups glyphs into rows by baseline, top to bottom and left to
// right, draws them and returns how many landed on the surface.
func placeGlyphs(s document.Surface, glyphs []pdf.Text, b box, scale float64) int {
	rows := make(map[float64]pdf.TextHorizontal)
	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			continue
		}
		y := math.Round(g.Y)
		rows[y] = append(rows[y], g)
	}

	baselines := make([]float64, 0, len(rows))
	for y := range rows {
		baselines = append(baselines, y)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	painted := 0
	for _, y := range baselines {
		row := rows[y]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		// fonts without a Widths array report zero advance
		for i := 0; i+1 < len(row); i++ {
			if d := row[i+1].X - row[i].X; row[i].W <= 0 && d > 0 && d <= row[i].FontSize {
				row[i].W = d
			}
		}
		painted += placeRow(s, row, b, scale)
	}
	return painted
}

// wordGap is the horizontal gap, relative to the font size, above which two
// runs are treated as separate words.
const wordGap = 0.2

// placeRow draws the runs of one text row. Runs that touch are packed into
// adjacent cells; runs separated by a word gap keep at least one blank cell
// between them and otherwise snap to their scaled position. It returns the
// number of runs that start inside the surface.
func placeRow(s document.Surface, runs pdf.TextHorizontal, b box, scale float64) int {
	width, height := s.Size()
	cols, lines := width/document.CellWidth, height/document.CellHeight

	visible := 0
	cursor := -1
	prevEnd := 0.0

	for i, t := range runs {
		col := int(math.Floor((t.X - b.x0) * scale / document.CellWidth))
		if i > 0 {
			if t.X-prevEnd < max(t.FontSize, 1)*wordGap {
				col = cursor + 1
			} else {
				col = max(col, cursor+2)
			}
		}
		line := int(math.Floor((b.y1 - t.Y) * scale / document.CellHeight))

		s.DrawText(col, line, t.S)
		if col >= 0 && col < cols && line >= 0 && line < lines {
			visible++
		}

		cursor = col + utf8.RuneCountInString(t.S) - 1
		prevEnd = t.X + t.W
	}

	return visible
}

// mediaBox resolves the page MediaBox, inherited through Parent.
func mediaBox(v pdf.Value) box {
	for node := v; !node.IsNull(); node = node.Key("Parent") {
		mb := node.Key("MediaBox")
		if mb.Kind() != pdf.Array || mb.Len() != 4 {
			continue
		}
		b := box{
			x0: mb.Index(0).Float64(),
			y0: mb.Index(1).Float64(),
			x1: mb.Index(2).Float64(),
			y1: mb.Index(3).Float64(),
		}
		if b.width() > 0 && b.height() > 0 {
			return b
		}
	}
	return box{x1: defaultPageWidth, y1: defaultPageHeight}
}

// pageGlyphs and plainText shield callers from panics inside the parser on
// malformed content streams.
func pageGlyphs(p pdf.Page) (glyphs []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			glyphs, err = nil, fmt.Errorf("pdf parser: %v", r)
		}
	}()
	return p.Content().Text, nil
}

func plainText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parser: %v", r)
		}
	}()
	return p.GetPlainText(nil)
}
