// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"strings"
	"unicode"
)

// A Text is a horizontal run of free text found in the diagram, anchored at
// its leftmost character.
type Text struct {
	Pos   Point
	Value string
}

func isTextStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSymbol(r)
}

// ScanTexts collects the free text left in the grid once extraction has
// consumed all the line work. Cells are scanned row-major; a run starts at a
// letter, number, or symbol, extends right through printable characters, and
// ends at the third consecutive blank or the grid edge. Trailing blanks are
// trimmed. Run ScanTexts after Extract so glyphs that belonged to paths
// never resurface as text.
func ScanTexts(g *Grid) []Text {
	var out []Text
	taken := map[Point]bool{}
	for row := 1; row <= g.Height(); row++ {
		for col := 1; col <= g.Width(); col++ {
			start := Point{Col: col, Row: row}
			if taken[start] {
				continue
			}
			r, ok := g.Get(start)
			if !ok || !isTextStart(r) {
				continue
			}
			var b strings.Builder
			b.WriteRune(r)
			taken[start] = true
			streak := 0
			cur := start
			for cur.Col < g.Width() {
				cur.Col++
				next, ok := g.Get(cur)
				if !ok {
					next = ' '
				}
				if !unicode.IsPrint(next) {
					break
				}
				if next == ' ' {
					streak++
					// Three blanks in a row split runs.
					if streak > 2 {
						break
					}
				} else {
					streak = 0
				}
				b.WriteRune(next)
				taken[cur] = true
			}
			value := strings.TrimRight(b.String(), " ")
			out = append(out, Text{Pos: start, Value: value})
		}
	}
	return out
}
