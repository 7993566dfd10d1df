// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	monartiste "github.com/pnkfelix/mon-artiste"
)

const logo = `.--------------------------.
| mon artiste              |
|                          |
|  +--+        .----.      |
|  |  | -----> | o  | ---> |
|  +--+        '----'      |
|      text to vectors     |
'--------------------------'
`

func mainImpl() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", logo)
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	in := flag.String("i", "-", "Path to input text file. If set to \"-\" (hyphen), stdin is used.")
	out := flag.String("o", "-", "Path to output SVG file. If set to \"-\" (hyphen), stdout is used.")
	noBlur := flag.Bool("b", false, "Disable drop-shadow blur.")
	gridlines := flag.Bool("g", false, "Draw gridlines at every cell boundary.")
	font := flag.String("f", "", "Font family to use. Empty selects the default monospace stack.")
	scaleX := flag.Int("x", 9, "X grid scale in pixels.")
	scaleY := flag.Int("y", 16, "Y grid scale in pixels.")
	tabWidth := flag.Int("t", 8, "Tab stop width in the input text.")
	verbose := flag.Bool("v", false, "Verbose logging.")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var input []byte
	var err error
	if *in == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(*in)
	}
	if err != nil {
		return err
	}

	labels, text := monartiste.ExtractLabels(input)
	for _, l := range labels {
		log.Debugf("label %q on row %d", l.Name, l.Row)
	}

	g, err := monartiste.Parse(text, *tabWidth)
	if err != nil {
		return err
	}
	log.Debugf("parsed %dx%d grid", g.Width(), g.Height())

	scene := monartiste.Extract(g)
	texts := monartiste.ScanTexts(g)
	log.Debugf("extracted %d paths, %d text runs", len(scene.Paths()), len(texts))

	opts := &monartiste.Options{
		ScaleX:        *scaleX,
		ScaleY:        *scaleY,
		Font:          *font,
		DisableBlur:   *noBlur,
		ShowGridlines: *gridlines,
	}
	svg := monartiste.SceneToSVG(scene, texts, opts)
	if *out == "-" {
		_, err := os.Stdout.Write(svg)
		return err
	}
	return os.WriteFile(*out, svg, 0666)
}

func main() {
	if err := mainImpl(); err != nil {
		log.Errorf("monartiste: %s", err)
		os.Exit(1)
	}
}
