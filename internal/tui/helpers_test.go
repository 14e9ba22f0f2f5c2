package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-event-gate/internal/document"
	tea "github.com/charmbracelet/bubbletea"
)

// runCmd executes cmd and flattens batches into the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func stubClipboard(t *testing.T, err error) *[]string {
	t.Helper()
	var written []string
	prev := clipboardWriter
	clipboardWriter = func(text string) error {
		written = append(written, text)
		return err
	}
	t.Cleanup(func() { clipboardWriter = prev })
	return &written
}

type stubPage struct {
	n    int
	text string
	err  error
}

func (p stubPage) Number() int { return p.n }

func (p stubPage) Viewport(scale float64) document.Viewport {
	return document.Viewport{Width: 200 * scale, Height: 100 * scale, Scale: scale}
}

func (p stubPage) Render(_ context.Context, s document.Surface, _ document.Viewport) error {
	if p.err != nil {
		return p.err
	}
	s.DrawText(0, 0, p.text)
	return nil
}

type stubDoc struct {
	pages []stubPage
}

func (d stubDoc) PageCount() int { return len(d.pages) }

func (d stubDoc) Page(_ context.Context, n int) (document.Page, error) {
	if n < 1 || n > len(d.pages) {
		return nil, errors.New("out of range")
	}
	return d.pages[n-1], nil
}

func (d stubDoc) Close() error { return nil }

type stubEngine struct {
	doc stubDoc
	err error
}

func (e stubEngine) Open(context.Context, string) (document.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.doc, nil
}

type stubLoader struct {
	engine document.Engine
	err    error
}

func (l stubLoader) Load(context.Context) (document.Engine, error) {
	return l.engine, l.err
}

func docWithPages(texts ...string) stubLoader {
	doc := stubDoc{}
	for i, text := range texts {
		doc.pages = append(doc.pages, stubPage{n: i + 1, text: text})
	}
	return stubLoader{engine: stubEngine{doc: doc}}
}
