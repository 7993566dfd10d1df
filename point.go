// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import "fmt"

// A RenderHint suggests ways the SVG renderer may appropriately represent this point.
type RenderHint int

const (
	// No hints are provided for this point.
	None RenderHint = iota
	// This point represents a corner that should be rounded.
	RoundedCorner
	// This point should have an SVG marker-start attribute associated with it.
	StartMarker
	// This point should have an SVG marker-end attribute associated with it.
	EndMarker
	// This is a path component that should have a strikethrough at this point.
	Tick
	// This is a path component that should have a dot at this point.
	Dot
)

// A Point is a column, row coordinate in the diagram's grid. Both coordinates
// are 1-based, matching the character positions of the source text: the first
// character of the first line is (1, 1). The Point also provides hints to the
// renderer as to how it should be interpreted.
type Point struct {
	// The column of this point, starting at 1.
	Col int
	// The row of this point, starting at 1.
	Row int
	// Hints for the renderer.
	Hint RenderHint
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// loc strips the render hint, leaving the bare coordinate. Grid keys and
// visited sets compare locations, never hints.
func (p Point) loc() Point {
	p.Hint = None
	return p
}

// step returns the neighboring point one cell away in direction d.
func (p Point) step(d Direction) Point {
	dc, dr := d.Delta()
	return Point{Col: p.Col + dc, Row: p.Row + dr}
}
