package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/lucasb-eyer/go-colorful"
)

// Hue selects which RGB channel drives the tail gradient
type Hue uint8

const (
	HueRed Hue = iota
	HueGreen
	HueBlue
)

var hueNames = [...]string{
	HueRed:   "red",
	HueGreen: "green",
	HueBlue:  "blue",
}

func (h Hue) String() string {
	if int(h) < len(hueNames) {
		return hueNames[h]
	}
	return fmt.Sprintf("hue(%d)", h)
}

// ParseHue resolves a hue name (case-insensitive)
func ParseHue(name string) (Hue, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range hueNames {
		if n == name {
			return Hue(i), nil
		}
	}
	return HueGreen, fmt.Errorf("unknown hue %q (want red, green or blue)", name)
}

// Gradient is the tail color ramp; index 0 is the brightest color, next to the head
type Gradient []tcell.Color

// At returns the color for a trail offset, clamped to the last entry
func (g Gradient) At(i int) tcell.Color {
	if len(g) == 0 {
		return tcell.ColorDefault
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g) {
		i = len(g) - 1
	}
	return g[i]
}

// TailLength derives the trail length from the screen height
func TailLength(rows int) int {
	tail := rows / constants.TailDivisor
	if tail < constants.MinTailLength {
		return constants.MinTailLength
	}
	return tail
}

// NewGradient builds a tail-length ramp for the hue: the driven channel falls
// linearly from GradientBright to GradientDim while the other two stay at GradientBase
func NewGradient(hue Hue, tail int) Gradient {
	if tail < constants.MinTailLength {
		tail = constants.MinTailLength
	}

	bright := hueColor(hue, constants.GradientBright)
	dim := hueColor(hue, constants.GradientDim)

	g := make(Gradient, tail)
	for i := range g {
		t := 0.0
		if tail > 1 {
			t = float64(i) / float64(tail-1)
		}
		r, gr, b := bright.BlendRgb(dim, t).RGB255()
		g[i] = tcell.NewRGBColor(int32(r), int32(gr), int32(b))
	}
	return g
}

func hueColor(hue Hue, level uint8) colorful.Color {
	base := float64(constants.GradientBase) / 255.0
	c := colorful.Color{R: base, G: base, B: base}
	v := float64(level) / 255.0
	switch hue {
	case HueRed:
		c.R = v
	case HueBlue:
		c.B = v
	default:
		c.G = v
	}
	return c
}

// ParseBackground converts a #rrggbb string to a terminal color
func ParseBackground(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("background %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
