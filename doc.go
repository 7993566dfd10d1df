// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

// Package monartiste converts rectangular blocks of ASCII art into geometric
// paths suitable for vector-graphics rendering, preserving the relative
// proportions of the original text layout.
//
// Source text parses into a Grid, a mutable character matrix with 1-based
// point indexing. Extract then traces the grid twice: a first pass pulls out
// every closed polygon (boxes), a second pass the remaining open polylines,
// each success removing its cells so nothing is detected twice. The result
// is a Scene of ordered Paths plus the grid's original dimensions, which the
// SVG renderer or any other consumer can turn into a document.
//
// Example usage:
//
//	labels, text := monartiste.ExtractLabels(input)
//	g, err := monartiste.Parse(text, 8)
//	if err != nil {
//		return err
//	}
//	scene := monartiste.Extract(g)
//	texts := monartiste.ScanTexts(g)
//	svg := monartiste.SceneToSVG(scene, texts, nil)
//	_ = labels
//
// Extraction is synchronous and pure: no I/O, no goroutines, and the caller
// owns the Grid exclusively for its duration.
package monartiste
