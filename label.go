// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"bytes"
	"regexp"
)

// A Label is a bracketed identifier recognized in the source text before the
// diagram itself is parsed. Reference definitions carry a value; trailing
// markers carry only their name and position.
type Label struct {
	// Name is the identifier between the brackets.
	Name string
	// Row is the 1-based source row the label appeared on.
	Row int
	// Value is the definition text for reference-style labels, empty for
	// trailing markers.
	Value string
}

var (
	labelDefRe      = regexp.MustCompile(`^\[([A-Za-z_][A-Za-z0-9_.-]*)\]:[ \t]*(.*)$`)
	labelTrailingRe = regexp.MustCompile(`[ \t](\[([A-Za-z_][A-Za-z0-9_.-]*)\])[ \t\r]*$`)
)

// ExtractLabels runs the label pass over raw source text, before any grid is
// built. Two forms are recognized, both markdown reference style:
//
//	[name]: definition text     a whole-line reference definition
//	+----+  [name]              a trailing marker after diagram content
//
// The returned text has every recognized label blanked out with spaces of
// the same width, so row and column positions of the remaining diagram are
// undisturbed. Labels come back in source order. The pass is independent of
// Grid and Scene; extraction never consults it.
func ExtractLabels(data []byte) ([]Label, []byte) {
	var labels []Label
	lines := bytes.Split(data, []byte{'\n'})
	out := make([][]byte, len(lines))
	for i, line := range lines {
		if m := labelDefRe.FindSubmatch(line); m != nil {
			labels = append(labels, Label{
				Name:  string(m[1]),
				Row:   i + 1,
				Value: string(bytes.TrimRight(m[2], " \t\r")),
			})
			out[i] = blank(line)
			continue
		}
		if m := labelTrailingRe.FindSubmatchIndex(line); m != nil {
			labels = append(labels, Label{
				Name: string(line[m[4]:m[5]]),
				Row:  i + 1,
			})
			cp := append([]byte(nil), line...)
			copy(cp[m[2]:m[3]], blank(cp[m[2]:m[3]]))
			out[i] = cp
			continue
		}
		out[i] = line
	}
	return labels, bytes.Join(out, []byte{'\n'})
}

// blank returns a run of spaces as wide as s.
func blank(s []byte) []byte {
	return bytes.Repeat([]byte{' '}, len(s))
}
