// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

// FindClosedPath attempts to trace a simple cycle of connected line-drawing
// cells anchored at start. Candidate headings are tried in the fixed
// priority order; straight glyphs hold their heading, corner glyphs turn,
// and junctions branch depth-first, so the first continuation that leads
// back to start wins. The cycle may not revisit any point other than start.
// FindClosedPath returns nil when no such cycle exists at start.
func FindClosedPath(g *Grid, start Point) *Path {
	ch := g.at(start)
	if !ch.isPathStart() {
		return nil
	}
	for _, d := range Directions {
		if !ch.mayStart(d) {
			continue
		}
		next := start.step(d)
		if !g.at(next).mayEnter(d) {
			continue
		}
		seen := map[Point]bool{start.loc(): true, next.loc(): true}
		if pts := closeCycle(g, start, next, d, seen, []Point{start, next}); pts != nil {
			return sealPath(g, pts, true)
		}
	}
	return nil
}

// closeCycle extends the walk depth-first from cur, which was entered
// heading in. It returns the completed point run once a step re-enters
// start legally, and nil once every continuation is exhausted.
func closeCycle(g *Grid, start, cur Point, in Direction, seen map[Point]bool, points []Point) []Point {
	ch := g.at(cur)
	for _, out := range Directions {
		if !ch.mayExit(in, out) {
			continue
		}
		next := cur.step(out)
		if next.loc() == start.loc() {
			// A cycle needs at least one point beyond the start pair.
			if len(points) >= 3 && g.at(start).mayEnter(out) {
				return points
			}
			continue
		}
		if seen[next.loc()] || !g.at(next).mayEnter(out) {
			continue
		}
		seen[next.loc()] = true
		if pts := closeCycle(g, start, next, out, seen, append(points, next)); pts != nil {
			return pts
		}
		delete(seen, next.loc())
	}
	return nil
}

// FindUnclosedPath walks a run of line-drawing cells outward from start,
// extending greedily while a continuation exists and stopping at dead ends,
// blanks, and the grid boundary. When the start glyph extends along a second
// heading the walk also runs the other way, so a start found mid-run still
// yields the whole run. The result is nil unless at least two points joined;
// an isolated glyph is not a path.
func FindUnclosedPath(g *Grid, start Point) *Path {
	ch := g.at(start)
	if !ch.isPathStart() {
		return nil
	}
	for _, d := range Directions {
		if !ch.mayStart(d) {
			continue
		}
		next := start.step(d)
		if !g.at(next).mayEnter(d) {
			continue
		}
		seen := map[Point]bool{start.loc(): true, next.loc(): true}
		points := append([]Point{start, next}, walkRun(g, next, d, seen)...)

		// Extend through the start the other way and stitch the two
		// halves together, back half reversed.
		for _, d2 := range Directions {
			if d2 == d || !ch.mayExit(d2.Opposite(), d) || !ch.mayStart(d2) {
				continue
			}
			back := start.step(d2)
			if seen[back.loc()] || !g.at(back).mayEnter(d2) {
				continue
			}
			seen[back.loc()] = true
			rear := append([]Point{back}, walkRun(g, back, d2, seen)...)
			for i, j := 0, len(rear)-1; i < j; i, j = i+1, j-1 {
				rear[i], rear[j] = rear[j], rear[i]
			}
			points = append(rear, points...)
			break
		}
		return sealPath(g, points, false)
	}
	return nil
}

// walkRun follows the run onward from cur, which was entered heading in,
// taking the first viable continuation at every step. It returns the points
// beyond cur, in order.
func walkRun(g *Grid, cur Point, in Direction, seen map[Point]bool) []Point {
	var out []Point
	for {
		ch := g.at(cur)
		advanced := false
		for _, o := range Directions {
			if !ch.mayExit(in, o) {
				continue
			}
			next := cur.step(o)
			if seen[next.loc()] || !g.at(next).mayEnter(o) {
				continue
			}
			seen[next.loc()] = true
			out = append(out, next)
			cur, in = next, o
			advanced = true
			break
		}
		if !advanced {
			return out
		}
	}
}
