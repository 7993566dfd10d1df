// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

// char classifies a single grid cell. The classification is ASCII-only: the
// line-drawing alphabet is
//
//	- =        horizontal segments (= is dashed)
//	| :        vertical segments (: is dashed)
//	/ \        diagonal segments
//	+ . '      corners and junctions (. and ' render rounded)
//	< > ^ v    arrow terminals
//	x o        tick and dot marks riding on a segment
//
// Every other rune, including the blank, never joins a path. A cleared or
// out-of-bounds cell reads as char(0), which classifies as blank.
type char rune

func (c char) isDashedHorizontal() bool {
	return c == '='
}

func (c char) isHorizontal() bool {
	return c.isDashedHorizontal() || c.isTick() || c.isDot() || c == '-'
}

func (c char) isDashedVertical() bool {
	return c == ':'
}

func (c char) isVertical() bool {
	return c.isDashedVertical() || c.isTick() || c.isDot() || c == '|'
}

func (c char) isDashed() bool {
	return c.isDashedHorizontal() || c.isDashedVertical()
}

func (c char) isCorner() bool {
	return c == '+' || c.isRoundedCorner()
}

func (c char) isRoundedCorner() bool {
	return c == '.' || c == '\''
}

func (c char) isDiagonalNE() bool {
	return c == '/'
}

func (c char) isDiagonalSE() bool {
	return c == '\\'
}

func (c char) isDiagonal() bool {
	return c.isDiagonalNE() || c.isDiagonalSE()
}

func (c char) isArrowHorizontal() bool {
	return c == '<' || c == '>'
}

func (c char) isArrowVertical() bool {
	return c == '^' || c == 'v'
}

func (c char) isArrow() bool {
	return c.isArrowHorizontal() || c.isArrowVertical()
}

func (c char) isTick() bool {
	return c == 'x'
}

func (c char) isDot() bool {
	return c == 'o'
}

// isPathStart returns true on any form of ascii art that can start a trace.
// Ticks and dots only ever ride on a segment, so they never anchor one.
func (c char) isPathStart() bool {
	return (c.isCorner() || c.isHorizontal() || c.isVertical() || c.isDiagonal() || c.isArrow()) && !c.isTick() && !c.isDot()
}

// mayEnter reports whether the tracer may step onto c while heading d. A
// glyph only accepts entries along the axes it draws; corners accept all
// eight headings.
func (c char) mayEnter(d Direction) bool {
	switch {
	case c.isCorner():
		return true
	case c.isTick() || c.isDot():
		return d == N || d == S || d == E || d == W
	case c.isHorizontal() || c.isArrowHorizontal():
		return d == E || d == W
	case c.isVertical() || c.isArrowVertical():
		return d == N || d == S
	case c.isDiagonalNE():
		return d == NE || d == SW
	case c.isDiagonalSE():
		return d == SE || d == NW
	}
	return false
}

// mayExit reports whether a tracer that entered c heading in may leave
// heading out. Straight glyphs never turn; corners turn onto any heading
// short of a full reversal. The neighboring cell's mayEnter still has to
// agree before the step is taken.
func (c char) mayExit(in, out Direction) bool {
	if out == in.Opposite() {
		return false
	}
	if c.isCorner() {
		return true
	}
	return out == in
}

// mayStart reports whether a trace anchored at c may take its first step
// heading d.
func (c char) mayStart(d Direction) bool {
	return c.isCorner() || c.mayEnter(d)
}
