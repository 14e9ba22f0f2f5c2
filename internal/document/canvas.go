package document

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Cell size in pixels of one text cell on a [Canvas].
const (
	CellWidth  = 9
	CellHeight = 18
)

// Canvas is a [Surface] backed by a grid of text cells. A w×h pixel canvas
// holds w/CellWidth columns and h/CellHeight rows.
type Canvas struct {
	mu     sync.RWMutex
	width  int
	height int
	grid   [][]rune
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetSize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.width = max(width, 0)
	c.height = max(height, 0)

	cols, rows := c.width/CellWidth, c.height/CellHeight
	c.grid = make([][]rune, rows)
	for i := range c.grid {
		c.grid[i] = []rune(strings.Repeat(" ", cols))
	}
}

func (c *Canvas) Size() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// Cols returns the number of text columns.
func (c *Canvas) Cols() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width / CellWidth
}

// Rows returns the number of text rows.
func (c *Canvas) Rows() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grid)
}

// DrawText writes text at (col, row). Characters outside the grid are
// clipped; control characters become spaces.
func (c *Canvas) DrawText(col, row int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if row < 0 || row >= len(c.grid) {
		return
	}
	line := c.grid[row]
	for _, r := range text {
		if col >= len(line) {
			return
		}
		if col >= 0 {
			if unicode.IsControl(r) {
				r = ' '
			}
			line[col] = r
		}
		col++
	}
}

// Lines returns the painted rows with trailing blanks trimmed.
func (c *Canvas) Lines() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]string, len(c.grid))
	for i, row := range c.grid {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

// Blank reports whether nothing has been painted.
func (c *Canvas) Blank() bool {
	for _, l := range c.Lines() {
		if l != "" {
			return false
		}
	}
	return true
}

// DrawParagraphs lays text out top-down on s, wrapping words at the surface
// width. Lines beyond the last row are dropped. It returns the number of
// rows used.
func DrawParagraphs(s Surface, text string) int {
	width, height := s.Size()
	cols, rows := width/CellWidth, height/CellHeight
	if cols <= 0 || rows <= 0 {
		return 0
	}

	row := 0
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		for _, line := range WrapText(paragraph, cols) {
			if row >= rows {
				return row
			}
			s.DrawText(0, row, line)
			row++
		}
	}
	return row
}

// WrapText splits text into lines at most width runes long, breaking on
// whitespace where possible. An empty paragraph yields one empty line.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   strings.Builder
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
	}

	for _, w := range words {
		for utf8.RuneCountInString(w) > width {
			if cur.Len() > 0 {
				flush()
			}
			runes := []rune(w)
			lines = append(lines, string(runes[:width]))
			w = string(runes[width:])
		}
		if w == "" {
			continue
		}

		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(w) <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
		default:
			flush()
			cur.WriteString(w)
		}
	}
	if cur.Len() > 0 {
		flush()
	}

	return lines
}
