// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

// A Direction is one of the eight compass headings a trace may follow through
// the grid. Each value maps to a fixed (column, row) offset; rows grow
// downward, so N is (0, -1).
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Directions lists every heading in the fixed priority order used whenever
// the tracer picks among candidate continuations. The order is part of the
// output contract: identical input always yields identical paths.
var Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}

var deltas = [8][2]int{
	N:  {0, -1},
	NE: {1, -1},
	E:  {1, 0},
	SE: {1, 1},
	S:  {0, 1},
	SW: {-1, 1},
	W:  {-1, 0},
	NW: {-1, -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the grid offset of one step along d.
func (d Direction) Delta() (dc, dr int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the reversal of d.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// RotateCW returns d rotated 45 degrees clockwise.
func (d Direction) RotateCW() Direction {
	return (d + 1) % 8
}

// RotateCCW returns d rotated 45 degrees counter-clockwise.
func (d Direction) RotateCCW() Direction {
	return (d + 7) % 8
}

// String implements fmt.Stringer on Direction.
func (d Direction) String() string {
	return directionNames[d]
}

// directionOf returns the heading of the single step from one point to an
// adjacent one, and false if the points are not adjacent.
func directionOf(from, to Point) (Direction, bool) {
	dc := to.Col - from.Col
	dr := to.Row - from.Row
	for _, d := range Directions {
		if deltas[d][0] == dc && deltas[d][1] == dr {
			return d, true
		}
	}
	return 0, false
}
