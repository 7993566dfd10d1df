// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

// Options carries the presentation parameters the SVG renderer consumes.
// None of them are read by Grid, the path finders, or Scene: extraction is
// purely geometric and the same Scene renders any number of ways.
type Options struct {
	// ScaleX and ScaleY convert grid elements to pixels. Text cells are
	// taller than they are wide, so the defaults keep the 9:16 ratio of a
	// typical terminal font.
	ScaleX int
	ScaleY int
	// Font is the font-family for text runs.
	Font string
	// DisableBlur turns off the drop-shadow filter on closed shapes.
	DisableBlur bool
	// ShowGridlines draws a faint line at every cell boundary, useful when
	// checking how the diagram maps onto the grid.
	ShowGridlines bool
	// FillColor fills closed shapes; StrokeColor strokes every path. Both
	// take #rgb or #rrggbb forms. The text color on top of filled shapes
	// is derived from FillColor for contrast.
	FillColor   string
	StrokeColor string
}

const defaultFont = "Consolas,Monaco,Anonymous Pro,Anonymous,Bitstream Sans Mono,monospace"

// DefaultOptions returns the renderer defaults.
func DefaultOptions() *Options {
	return &Options{
		ScaleX:      9,
		ScaleY:      16,
		Font:        defaultFont,
		FillColor:   "#88d",
		StrokeColor: "#000",
	}
}

// withDefaults fills the zero values of o from the defaults, so a partially
// populated Options literal behaves sensibly.
func (o *Options) withDefaults() *Options {
	def := DefaultOptions()
	if o == nil {
		return def
	}
	out := *o
	if out.ScaleX == 0 {
		out.ScaleX = def.ScaleX
	}
	if out.ScaleY == 0 {
		out.ScaleY = def.ScaleY
	}
	if out.Font == "" {
		out.Font = def.Font
	}
	if out.FillColor == "" {
		out.FillColor = def.FillColor
	}
	if out.StrokeColor == "" {
		out.StrokeColor = def.StrokeColor
	}
	return &out
}
