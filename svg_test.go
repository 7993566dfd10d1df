// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLines(t testing.TB, lines []string, opts *Options) string {
	t.Helper()
	g := mustParse(t, lines)
	s := Extract(g)
	texts := ScanTexts(g)
	return string(SceneToSVG(s, texts, opts))
}

func TestRenderSVGBox(t *testing.T) {
	t.Parallel()
	out := renderLines(t, []string{
		"+--+",
		"|Hi|",
		"+--+",
	}, nil)

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, `id="closed"`)
	assert.Contains(t, out, `id="lines"`)
	assert.Contains(t, out, `id="text"`)
	// The box is a closed subpath.
	assert.Contains(t, out, ` Z"`)
	assert.Contains(t, out, ">Hi</text>")
	// Default blur filter present and referenced.
	assert.Contains(t, out, `id="dsFilter"`)
	assert.Contains(t, out, `filter="url(#dsFilter)"`)
}

func TestRenderSVGArrowMarkers(t *testing.T) {
	t.Parallel()
	out := renderLines(t, []string{"<--->"}, nil)
	assert.Contains(t, out, `marker-start="url(#iPointer)"`)
	assert.Contains(t, out, `marker-end="url(#Pointer)"`)
}

func TestRenderSVGDashed(t *testing.T) {
	t.Parallel()
	out := renderLines(t, []string{
		"+=+",
		": :",
		"+=+",
	}, nil)
	assert.Contains(t, out, "stroke-dasharray")
}

func TestRenderSVGNoBlur(t *testing.T) {
	t.Parallel()
	out := renderLines(t, []string{
		"+-+",
		"| |",
		"+-+",
	}, &Options{DisableBlur: true})
	assert.NotContains(t, out, "dsFilter")
}

func TestRenderSVGGridlines(t *testing.T) {
	t.Parallel()
	lines := []string{"---"}
	plain := renderLines(t, lines, nil)
	assert.NotContains(t, plain, `id="gridlines"`)

	gridded := renderLines(t, lines, &Options{ShowGridlines: true})
	assert.Contains(t, gridded, `id="gridlines"`)
}

func TestRenderSVGScale(t *testing.T) {
	t.Parallel()
	// A 3x1 grid at 10x20 per cell gives a 40x40 canvas, one cell margin.
	out := renderLines(t, []string{"---"}, &Options{ScaleX: 10, ScaleY: 20})
	require.True(t, strings.Contains(out, `width="40`), "canvas width scales: %s", out)
	// The stroke runs through cell centers: (1-0.5)*10 = 5.
	assert.Contains(t, out, "M 5 10")
}

func TestRenderSVGTextContrast(t *testing.T) {
	t.Parallel()
	out := renderLines(t, []string{
		"+----+",
		"| hi |",
		"+----+",
	}, &Options{FillColor: "#000"})
	// Text inside a black box flips to white.
	assert.Contains(t, out, `fill="#fff"`)
}
