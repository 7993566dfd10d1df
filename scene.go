// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

// A Scene is the terminal artifact of extraction: every traced path, in
// extraction order, together with the dimensions of the originating grid.
// The dimensions are captured before any cells are removed, so they always
// describe the full diagram no matter how much of it became paths.
type Scene struct {
	paths  []*Path
	width  int
	height int
}

// Paths returns the extracted paths in extraction order: closed paths from
// the first pass, then open paths from the second, each pass in column-major
// scan order.
func (s *Scene) Paths() []*Path {
	out := make([]*Path, len(s.paths))
	copy(out, s.paths)
	return out
}

// Width returns the column count of the originating grid.
func (s *Scene) Width() int {
	return s.width
}

// Height returns the row count of the originating grid.
func (s *Scene) Height() int {
	return s.height
}

// Extract runs the two extraction passes over g and assembles the Scene.
// The grid is consumed in place: every found path is removed before the
// scan moves on, which both prevents duplicates and bounds the total number
// of successes by the initial cell count.
//
// Both passes visit the grid column-major, columns 1..width outer and rows
// 1..height inner. That order, not row-major, fixes the order of the
// resulting paths. At each point the finder is retried until it reports
// nothing further, only then does the scan advance.
func Extract(g *Grid) *Scene {
	s := &Scene{width: g.Width(), height: g.Height()}
	s.scan(g, FindClosedPath)
	s.scan(g, FindUnclosedPath)
	return s
}

func (s *Scene) scan(g *Grid, find func(*Grid, Point) *Path) {
	for col := 1; col <= s.width; col++ {
		for row := 1; row <= s.height; row++ {
			p := Point{Col: col, Row: row}
			for {
				path := find(g, p)
				if path == nil {
					break
				}
				g.RemovePath(path)
				s.paths = append(s.paths, path)
			}
		}
	}
}
