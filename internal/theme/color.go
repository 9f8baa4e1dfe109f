package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color strings that are neither hex colors
// nor one of the known color names.
var ErrInvalidColor = errors.New("invalid color")

// namedColors covers the color names written by older settings files.
var namedColors = map[string]string{
	"white":     "#ffffff",
	"black":     "#000000",
	"gray":      "#bebebe",
	"grey":      "#bebebe",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"lightblue": "#add8e6",
	"blue":      "#0000ff",
	"navy":      "#000080",
	"red":       "#ff0000",
	"green":     "#00ff00",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#a020f0",
}

// NormalizeColor parses a color and returns it as lowercase #rrggbb.
// Short #rgb forms are expanded.
func NormalizeColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if hex, ok := namedColors[v]; ok {
		return hex, nil
	}
	v = strings.TrimPrefix(v, "#")
	if !isHexDigits(v) || (len(v) != 3 && len(v) != 6) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	c, err := colorful.Hex("#" + v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	return c.Hex(), nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// ContrastText returns black or white, whichever reads better on color.
func ContrastText(color string) string {
	c, err := colorful.Hex(color)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Palette returns the swatch grid offered by the color chooser: one row per
// brightness level across evenly spaced hues, followed by a grayscale ramp.
// Every row has cols entries.
func Palette(rows, cols int) [][]string {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	grid := make([][]string, 0, rows+1)
	for r := 0; r < rows; r++ {
		// Rows run from pale to deep.
		t := float64(r) / float64(max(1, rows-1))
		sat := 0.25 + 0.7*t
		val := 1.0 - 0.45*t
		row := make([]string, cols)
		for c := 0; c < cols; c++ {
			hue := 360 * float64(c) / float64(cols)
			row[c] = colorful.Hsv(hue, sat, val).Clamped().Hex()
		}
		grid = append(grid, row)
	}
	gray := make([]string, cols)
	for c := 0; c < cols; c++ {
		v := float64(c) / float64(max(1, cols-1))
		gray[c] = colorful.Color{R: v, G: v, B: v}.Hex()
	}
	return append(grid, gray)
}

