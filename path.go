// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import "fmt"

// A Path is an ordered run of grid points traced out of the diagram, tagged
// as a closed polygon or an open polyline. A closed path's sequence does not
// repeat its start point; the tracer verified the return transition instead.
// Paths are immutable once constructed.
type Path struct {
	// points always starts at the anchor the scan found first, proceeding
	// along the first viable heading.
	points []Point
	closed bool
	dashed bool
}

// Points returns the ordered point sequence. The slice is a copy; callers
// may iterate it as often as they like.
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Closed is true when the path is a closed polygon.
func (p *Path) Closed() bool {
	return p.closed
}

// Dashed is true when any segment glyph along the path was a dashed form.
func (p *Path) Dashed() bool {
	return p.dashed
}

// Len returns the number of points along the path.
func (p *Path) Len() int {
	return len(p.points)
}

// String implements fmt.Stringer on Path.
func (p *Path) String() string {
	return fmt.Sprintf("Path{%s}", p.points[0])
}

// EqualSet reports whether two paths cover exactly the same set of grid
// locations, ignoring point order and render hints.
func (p *Path) EqualSet(o *Path) bool {
	if len(p.points) != len(o.points) {
		return false
	}
	set := make(map[Point]struct{}, len(p.points))
	for _, pt := range p.points {
		set[pt.loc()] = struct{}{}
	}
	for _, pt := range o.points {
		if _, ok := set[pt.loc()]; !ok {
			return false
		}
	}
	return true
}

// Corners returns the points at which the path changes heading, starting
// with the first point. For an open path the final point is always included;
// for a closed one it is included only when the closing transition turns.
func (p *Path) Corners() []Point {
	l := len(p.points)
	// A path of fewer than 3 points cannot change heading.
	if l < 3 {
		return p.Points()
	}
	out := []Point{p.points[0]}
	dir, ok := directionOf(p.points[0], p.points[1])
	if !ok {
		panic(fmt.Errorf("discontiguous points: %+v", p.points))
	}
	for i := 2; i < l; i++ {
		d, ok := directionOf(p.points[i-1], p.points[i])
		if !ok {
			panic(fmt.Errorf("discontiguous points: %+v", p.points))
		}
		if d != dir {
			out = append(out, p.points[i-1])
			dir = d
		}
	}
	last := p.points[l-1]
	if !p.closed {
		out = append(out, last)
		return out
	}
	if d, ok := directionOf(last, p.points[0]); !ok || d != dir {
		out = append(out, last)
	}
	return out
}

// Contains determines whether the supplied point lies inside a closed path.
// Concave polygons are supported, so this is a full point-in-polygon test;
// the algorithm comes from the more efficient, less-clever version at
// http://alienryderflex.com/polygon/. Open paths contain nothing.
func (p *Path) Contains(pt Point) bool {
	if !p.closed {
		return false
	}
	corners := p.Corners()
	inside := false
	j := len(corners) - 1
	for i := 0; i < len(corners); i++ {
		ci, cj := corners[i], corners[j]
		if (ci.Row < pt.Row && cj.Row >= pt.Row || cj.Row < pt.Row && ci.Row >= pt.Row) && (ci.Col <= pt.Col || cj.Col <= pt.Col) {
			if ci.Col+(pt.Row-ci.Row)*(cj.Col-ci.Col)/(cj.Row-ci.Row) < pt.Col {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// sealPath finalizes a traced point run into a Path, reading the glyphs one
// last time to record render hints before the cells are cleared.
func sealPath(g *Grid, points []Point, closed bool) *Path {
	p := &Path{points: points, closed: closed}
	for i := range p.points {
		ch := g.at(p.points[i])
		switch {
		case ch.isTick():
			p.points[i].Hint = Tick
		case ch.isDot():
			p.points[i].Hint = Dot
		case ch.isRoundedCorner():
			p.points[i].Hint = RoundedCorner
		}
		if ch.isDashed() {
			p.dashed = true
		}
	}
	if !closed {
		if g.at(points[0]).isArrow() {
			p.points[0].Hint = StartMarker
		}
		if g.at(points[len(points)-1]).isArrow() {
			p.points[len(points)-1].Hint = EndMarker
		}
	}
	return p
}
