// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func mustParse(t testing.TB, lines []string) *Grid {
	t.Helper()
	g, err := Parse([]byte(strings.Join(lines, "\n")), 8)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	return g
}

func TestFindClosedPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		input   []string
		start   Point
		corners []Point
	}{
		// 0 Small box
		{
			[]string{
				"+-+",
				"| |",
				"+-+",
			},
			Point{Col: 1, Row: 1},
			[]Point{{Col: 1, Row: 1}, {Col: 3, Row: 1}, {Col: 3, Row: 3}, {Col: 1, Row: 3}},
		},

		// 1 Tight box
		{
			[]string{
				"++",
				"++",
			},
			Point{Col: 1, Row: 1},
			[]Point{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 2, Row: 2}, {Col: 1, Row: 2}},
		},

		// 2 Indented box
		{
			[]string{
				"",
				" +-+",
				" | |",
				" +-+",
			},
			Point{Col: 2, Row: 2},
			[]Point{{Col: 2, Row: 2}, {Col: 4, Row: 2}, {Col: 4, Row: 4}, {Col: 2, Row: 4}},
		},

		// 3 Rounded box
		{
			[]string{
				".-.",
				"| |",
				"'-'",
			},
			Point{Col: 1, Row: 1},
			[]Point{
				{Col: 1, Row: 1, Hint: RoundedCorner},
				{Col: 3, Row: 1, Hint: RoundedCorner},
				{Col: 3, Row: 3, Hint: RoundedCorner},
				{Col: 1, Row: 3, Hint: RoundedCorner},
			},
		},

		// 4 Concave shape
		{
			[]string{
				"    +----+",
				"    |    |",
				"+---+    +----+",
				"|             |",
				"+-------------+",
			},
			Point{Col: 1, Row: 3},
			[]Point{
				{Col: 1, Row: 3}, {Col: 5, Row: 3}, {Col: 5, Row: 1}, {Col: 10, Row: 1},
				{Col: 10, Row: 3}, {Col: 15, Row: 3}, {Col: 15, Row: 5}, {Col: 1, Row: 5},
			},
		},
	}
	for i, line := range data {
		g := mustParse(t, line.input)
		p := FindClosedPath(g, line.start)
		if p == nil {
			t.Fatalf("case %d: want a closed path at %s", i, line.start)
		}
		ut.AssertEqualIndex(t, i, true, p.Closed())
		ut.AssertEqualIndex(t, i, line.corners, p.Corners())
	}
}

func TestFindClosedPathAbsent(t *testing.T) {
	t.Parallel()
	data := [][]string{
		// 0 A lone segment cannot close.
		{"---"},
		// 1 A dead-ended almost-box cannot close.
		{
			"+-+",
			"| |",
			"+ +",
		},
		// 2 Blank start.
		{"   "},
		// 3 Text start.
		{"hello"},
	}
	for i, input := range data {
		g := mustParse(t, input)
		p := FindClosedPath(g, Point{Col: 1, Row: 1})
		ut.AssertEqualIndex(t, i, true, p == nil)
	}
}

func TestFindClosedPathStableFixpoint(t *testing.T) {
	t.Parallel()
	g := mustParse(t, []string{"---"})
	before := g.occupied()
	for i := 0; i < 5; i++ {
		p := FindClosedPath(g, Point{Col: 1, Row: 1})
		ut.AssertEqualIndex(t, i, true, p == nil)
		ut.AssertEqualIndex(t, i, before, g.occupied())
	}
}

func TestFindUnclosedPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		input   []string
		start   Point
		corners []Point
	}{
		// 0 Horizontal line
		{
			[]string{"---"},
			Point{Col: 1, Row: 1},
			[]Point{{Col: 1, Row: 1}, {Col: 3, Row: 1}},
		},

		// 1 Vertical line
		{
			[]string{
				"|",
				"|",
				"|",
			},
			Point{Col: 1, Row: 1},
			[]Point{{Col: 1, Row: 1}, {Col: 1, Row: 3}},
		},

		// 2 L-shaped line
		{
			[]string{
				"|",
				"+--",
			},
			Point{Col: 1, Row: 1},
			[]Point{{Col: 1, Row: 1}, {Col: 1, Row: 2}, {Col: 3, Row: 2}},
		},

		// 3 Diagonal
		{
			[]string{
				"  /",
				" /",
				"/",
			},
			Point{Col: 1, Row: 3},
			[]Point{{Col: 1, Row: 3}, {Col: 3, Row: 1}},
		},

		// 4 Mid-run start still yields the whole run
		{
			[]string{"-----"},
			Point{Col: 3, Row: 1},
			[]Point{{Col: 1, Row: 1}, {Col: 5, Row: 1}},
		},
	}
	for i, line := range data {
		g := mustParse(t, line.input)
		p := FindUnclosedPath(g, line.start)
		if p == nil {
			t.Fatalf("case %d: want an open path at %s", i, line.start)
		}
		ut.AssertEqualIndex(t, i, false, p.Closed())
		ut.AssertEqualIndex(t, i, line.corners, p.Corners())
	}
}

func TestFindUnclosedPathAbsent(t *testing.T) {
	t.Parallel()
	data := [][]string{
		// 0 An isolated glyph is not a path.
		{"-"},
		{"+"},
		// 2 Blank.
		{" "},
	}
	for i, input := range data {
		g := mustParse(t, input)
		p := FindUnclosedPath(g, Point{Col: 1, Row: 1})
		ut.AssertEqualIndex(t, i, true, p == nil)
	}
}

func TestArrowMarkers(t *testing.T) {
	t.Parallel()
	g := mustParse(t, []string{"<--->"})
	p := FindUnclosedPath(g, Point{Col: 1, Row: 1})
	if p == nil {
		t.Fatal("want an open path")
	}
	pts := p.Points()
	ut.AssertEqual(t, StartMarker, pts[0].Hint)
	ut.AssertEqual(t, EndMarker, pts[len(pts)-1].Hint)
}

func TestDashedPath(t *testing.T) {
	t.Parallel()
	g := mustParse(t, []string{
		"+=+",
		": :",
		"+=+",
	})
	p := FindClosedPath(g, Point{Col: 1, Row: 1})
	if p == nil {
		t.Fatal("want a closed path")
	}
	ut.AssertEqual(t, true, p.Dashed())
}

func TestTickAndDotHints(t *testing.T) {
	t.Parallel()
	g := mustParse(t, []string{"-x-o-"})
	p := FindUnclosedPath(g, Point{Col: 1, Row: 1})
	if p == nil {
		t.Fatal("want an open path")
	}
	pts := p.Points()
	ut.AssertEqual(t, Tick, pts[1].Hint)
	ut.AssertEqual(t, Dot, pts[3].Hint)
}
