// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// A ParseError reports source text that cannot form a rectangular character
// grid, such as a control character with no column width.
type ParseError struct {
	// Row and Col locate the offending character, 1-based.
	Row int
	Col int
	// Ch is the offending character.
	Ch rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: invalid character %q at (%d,%d)", e.Ch, e.Col, e.Row)
}

// A Grid is the mutable character store the tracer works over. Cells are
// addressed by 1-based Points; blank cells are never stored, so a lookup is
// absent both out of bounds and wherever a cell is blank or was cleared by
// RemovePath.
type Grid struct {
	cells  map[Point]rune
	width  int
	height int
}

// Parse builds a Grid from a block of text. Lines are split on newlines
// (\r\n is accepted), tabs are expanded to tabWidth, and short lines are
// padded with blanks out to the longest line. Parse fails with a *ParseError
// when the text contains any other control character, since such a character
// occupies no column and the lines cannot extend to a rectangle.
func Parse(data []byte, tabWidth int) (*Grid, error) {
	lines := bytes.Split(data, []byte{'\n'})
	for i, line := range lines {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		lines[i] = expandTabs(line, tabWidth)
	}

	g := &Grid{cells: map[Point]rune{}, height: len(lines)}
	for _, line := range lines {
		if n := utf8.RuneCount(line); n > g.width {
			g.width = n
		}
	}
	for y, line := range lines {
		x := 0
		for len(line) > 0 {
			r, size := utf8.DecodeRune(line)
			line = line[size:]
			x++
			if r < ' ' || r == 0x7f || r == utf8.RuneError && size == 1 {
				return nil, &ParseError{Row: y + 1, Col: x, Ch: r}
			}
			if r != ' ' {
				g.cells[Point{Col: x, Row: y + 1}] = r
			}
		}
	}
	return g, nil
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// Get returns the character at p. The second return value is false for
// points outside the grid, for blank cells, and for cells cleared by a
// previous RemovePath.
func (g *Grid) Get(p Point) (rune, bool) {
	if p.Col < 1 || p.Col > g.width || p.Row < 1 || p.Row > g.height {
		return 0, false
	}
	r, ok := g.cells[p.loc()]
	return r, ok
}

// at is Get for the tracer: absent cells come back as the blank char.
func (g *Grid) at(p Point) char {
	r, ok := g.Get(p)
	if !ok {
		return 0
	}
	return char(r)
}

// RemovePath clears every cell in the path's point set so later passes do
// not re-detect the same drawing elements. Paths always carry at least one
// point, so the set of occupied cells strictly decreases.
func (g *Grid) RemovePath(p *Path) {
	for _, pt := range p.points {
		delete(g.cells, pt.loc())
	}
}

// occupied returns the number of non-blank cells left in the grid.
func (g *Grid) occupied() int {
	return len(g.cells)
}

// expandTabs replaces tabs with enough blanks to reach the next tab stop.
func expandTabs(line []byte, tabWidth int) []byte {
	if !bytes.ContainsRune(line, '\t') {
		return line
	}
	if tabWidth < 1 {
		tabWidth = 1
	}
	out := make([]byte, 0, len(line)+tabWidth)
	col := 0
	for len(line) > 0 {
		r, size := utf8.DecodeRune(line)
		line = line[size:]
		if r == '\t' {
			for n := tabWidth - col%tabWidth; n > 0; n-- {
				out = append(out, ' ')
				col++
			}
			continue
		}
		out = utf8.AppendRune(out, r)
		col++
	}
	return out
}
