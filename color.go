// Copyright 2025 The mon-artiste Contributors
// All rights reserved.

package monartiste

import (
	"fmt"
	"strconv"
)

// colorToRGB parses the hex color forms the renderer accepts, #rgb and
// #rrggbb, into their components.
func colorToRGB(c string) (r, g, b int, err error) {
	if len(c) == 0 || c[0] != '#' {
		return 0, 0, 0, fmt.Errorf("color %q can't be parsed", c)
	}
	hex := c[1:]
	var comp [3]int
	switch len(hex) {
	case 3:
		for i := range comp {
			v, perr := strconv.ParseInt(hex[i:i+1], 16, 0)
			if perr != nil {
				return 0, 0, 0, perr
			}
			comp[i] = int(v) * 17
		}
	case 6:
		for i := range comp {
			v, perr := strconv.ParseInt(hex[2*i:2*i+2], 16, 0)
			if perr != nil {
				return 0, 0, 0, perr
			}
			comp[i] = int(v)
		}
	default:
		return 0, 0, 0, fmt.Errorf("color %q not of valid length", c)
	}
	return comp[0], comp[1], comp[2], nil
}

// textColor picks a readable text color for the supplied background. The
// thresholds come from the W3 working group paper on accessibility at
// http://www.w3.org/TR/AERT: a brightness difference of at least 125 and a
// color difference of at least 500 against the default black text.
func textColor(c string) (string, error) {
	r, g, b, err := colorToRGB(c)
	if err != nil {
		return "#000", err
	}

	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return "#fff", nil
	}

	return "#000", nil
}
