// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// RenderSVG writes scene as an SVG document. Closed paths render first as
// filled polygons, then open paths as stroked polylines with arrow markers
// where the trace recorded them, then the free text runs. Grid coordinates
// scale by opts.ScaleX and opts.ScaleY, with strokes through cell centers.
func RenderSVG(w io.Writer, scene *Scene, texts []Text, opts *Options) {
	opts = opts.withDefaults()
	canvas := svg.New(w)
	canvas.Start((scene.Width()+1)*opts.ScaleX, (scene.Height()+1)*opts.ScaleY)

	canvas.Def()
	if !opts.DisableBlur {
		canvas.Filter("dsFilter", `width="150%"`, `height="150%"`)
		canvas.FeOffset(svg.Filterspec{In: "SourceGraphic", Result: "offOut"}, 2, 2)
		canvas.FeGaussianBlur(svg.Filterspec{In: "offOut", Result: "blurOut"}, 3, 3)
		canvas.FeBlend(svg.Filterspec{In: "SourceGraphic", In2: "blurOut"}, "normal")
		canvas.Fend()
	}
	mw, mh := opts.ScaleX-1, opts.ScaleY-1
	canvas.Marker("iPointer", 5, 5, mw, mh, `viewBox="0 0 10 10"`, `orient="auto"`, `markerUnits="strokeWidth"`)
	canvas.Path("M 10 0 L 10 10 L 0 5 z")
	canvas.MarkerEnd()
	canvas.Marker("Pointer", 5, 5, mw, mh, `viewBox="0 0 10 10"`, `orient="auto"`, `markerUnits="strokeWidth"`)
	canvas.Path("M 0 0 L 10 5 L 0 10 z")
	canvas.MarkerEnd()
	canvas.DefEnd()

	if opts.ShowGridlines {
		renderGridlines(canvas, scene, opts)
	}

	paths := scene.Paths()

	closedAttrs := fmt.Sprintf(`stroke="%s" stroke-width="2" fill="%s"`, opts.StrokeColor, opts.FillColor)
	if !opts.DisableBlur {
		closedAttrs = `filter="url(#dsFilter)" ` + closedAttrs
	}
	canvas.Group(`id="closed"`, closedAttrs)
	for _, p := range paths {
		if !p.Closed() {
			continue
		}
		canvas.Path(pathData(p, opts), dashAttrs(p)...)
	}
	canvas.Gend()

	canvas.Group(`id="lines"`, fmt.Sprintf(`stroke="%s" stroke-width="2" fill="none"`, opts.StrokeColor))
	for _, p := range paths {
		if p.Closed() {
			continue
		}
		canvas.Path(pathData(p, opts), openAttrs(p)...)
	}
	canvas.Gend()

	canvas.Group(`id="text"`, `stroke="none"`, fmt.Sprintf(`style="font-family:%s;font-size:15.2px"`, opts.Font))
	for _, t := range texts {
		x := (t.Pos.Col - 1) * opts.ScaleX
		y := (t.Pos.Row-1)*opts.ScaleY + (opts.ScaleY*3)/4
		canvas.Text(x, y, t.Value, fmt.Sprintf(`fill="%s"`, textFill(paths, t.Pos, opts)))
	}
	canvas.Gend()

	canvas.End()
}

// SceneToSVG renders the scene into a byte slice.
func SceneToSVG(scene *Scene, texts []Text, opts *Options) []byte {
	var b bytes.Buffer
	RenderSVG(&b, scene, texts, opts)
	return b.Bytes()
}

// textFill chooses the text color: text sitting inside a filled shape takes
// the contrast color for the fill, everything else stays black.
func textFill(paths []*Path, pos Point, opts *Options) string {
	for _, p := range paths {
		if p.Contains(pos) {
			c, _ := textColor(opts.FillColor)
			return c
		}
	}
	return "#000"
}

// pathData flattens a path's corners into an SVG path description. Strokes
// run through cell centers, so a 1-based coordinate maps to (c-0.5)*scale.
func pathData(p *Path, opts *Options) string {
	corners := p.Corners()
	var b strings.Builder
	for i, c := range corners {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s %g %g", cmd,
			(float64(c.Col)-.5)*float64(opts.ScaleX),
			(float64(c.Row)-.5)*float64(opts.ScaleY))
	}
	if p.Closed() {
		b.WriteString(" Z")
	}
	return b.String()
}

func dashAttrs(p *Path) []string {
	if p.Dashed() {
		return []string{`stroke-dasharray="5 5"`}
	}
	return nil
}

// openAttrs collects the per-path attributes for an open path: dashing, and
// the arrow markers its endpoints were hinted with.
func openAttrs(p *Path) []string {
	attrs := dashAttrs(p)
	pts := p.Points()
	if pts[0].Hint == StartMarker {
		attrs = append(attrs, `marker-start="url(#iPointer)"`)
	}
	if pts[len(pts)-1].Hint == EndMarker {
		attrs = append(attrs, `marker-end="url(#Pointer)"`)
	}
	return attrs
}

// renderGridlines draws a faint line at every cell boundary.
func renderGridlines(canvas *svg.SVG, scene *Scene, opts *Options) {
	w := (scene.Width() + 1) * opts.ScaleX
	h := (scene.Height() + 1) * opts.ScaleY
	canvas.Group(`id="gridlines"`, `stroke="#eee" stroke-width="1"`)
	for c := 0; c <= scene.Width(); c++ {
		canvas.Line(c*opts.ScaleX, 0, c*opts.ScaleX, h)
	}
	for r := 0; r <= scene.Height(); r++ {
		canvas.Line(0, r*opts.ScaleY, w, r*opts.ScaleY)
	}
	canvas.Gend()
}
