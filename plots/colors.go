package plots

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
)

// Paul Tol "bright" palette, keyed by colour name.
var tolBright = map[string]color.RGBA{
	"blue":   {R: 0x44, G: 0x77, B: 0xAA, A: 0xFF},
	"cyan":   {R: 0x66, G: 0xCC, B: 0xEE, A: 0xFF},
	"green":  {R: 0x22, G: 0x88, B: 0x33, A: 0xFF},
	"yellow": {R: 0xCC, G: 0xBB, B: 0x44, A: 0xFF},
	"red":    {R: 0xEE, G: 0x66, B: 0x77, A: 0xFF},
	"purple": {R: 0xAA, G: 0x33, B: 0x77, A: 0xFF},
	"grey":   {R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF},
}

// tolBrightOrder is the recommended cycling order.
var tolBrightOrder = []string{"blue", "cyan", "green", "yellow", "red", "purple", "grey"}

// TolBrightNames returns the colour names in the recommended cycling order.
func TolBrightNames() []string {
	out := make([]string, len(tolBrightOrder))
	copy(out, tolBrightOrder)

	return out
}

// TolBrightColor returns the named palette colour.
func TolBrightColor(name string) (color.Color, error) {
	c, ok := tolBright[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	return c, nil
}

// Semantic roles.

// CurveColor is used for densities and sample points.
func CurveColor() color.Color { return tolBright["blue"] }

// TailColor fills α tail regions.
func TailColor() color.Color { return tolBright["green"] }

// RejectColor marks rejection regions.
func RejectColor() color.Color { return tolBright["red"] }

// AccentColor highlights a single element.
func AccentColor() color.Color { return tolBright["purple"] }

// NeutralColor is for reference lines and secondary marks.
func NeutralColor() color.Color { return tolBright["grey"] }

// TolBrightList returns the palette colours in the given order, or in
// the recommended cycling order when no names are given.
func TolBrightList(order ...string) ([]color.Color, error) {
	if len(order) == 0 {
		order = tolBrightOrder
	}
	out := make([]color.Color, len(order))
	for i, name := range order {
		c, err := TolBrightColor(name)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// tolPalette adapts an ordered colour list to gonum's palette.Palette.
type tolPalette []color.Color

func (p tolPalette) Colors() []color.Color {
	out := make([]color.Color, len(p))
	copy(out, p)
	return out
}

// TolBrightPalette returns the palette as a gonum palette.Palette, usable
// wherever gonum/plot accepts one (heat maps, contour plots, ...).
func TolBrightPalette(order ...string) (palette.Palette, error) {
	cs, err := TolBrightList(order...)
	if err != nil {
		return nil, err
	}

	return tolPalette(cs), nil
}

// CycleColor returns the i-th colour of the default cycle, wrapping around.
func CycleColor(i int) color.Color {
	n := len(tolBrightOrder)
	i %= n
	if i < 0 {
		i += n
	}

	return tolBright[tolBrightOrder[i]]
}
