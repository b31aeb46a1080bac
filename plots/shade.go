package plots

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

const (
	// DefaultShadeSamples is the number of curve evaluations across [a, b].
	DefaultShadeSamples = 200
	// DefaultShadeAlpha is the fill opacity.
	DefaultShadeAlpha = 0.35
)

type shadeOptions struct {
	color    color.Color
	alpha    float64
	samples  int
	baseline float64
}

// ShadeOption configures ShadeUnderCurve.
type ShadeOption func(*shadeOptions)

// WithShadeColor sets the fill colour (default TailColor).
func WithShadeColor(c color.Color) ShadeOption {
	return func(o *shadeOptions) { o.color = c }
}

// WithShadeAlpha sets the fill opacity in [0, 1].
func WithShadeAlpha(a float64) ShadeOption {
	return func(o *shadeOptions) { o.alpha = math.Max(0, math.Min(1, a)) }
}

// WithSamples sets how many points of f are evaluated.
func WithSamples(n int) ShadeOption {
	return func(o *shadeOptions) { o.samples = n }
}

// WithBaseline shades between f and y = b instead of y = 0.
func WithBaseline(b float64) ShadeOption {
	return func(o *shadeOptions) { o.baseline = b }
}

// ShadeUnderCurve adds to p a filled polygon bounded by f on [a, b] and the
// baseline, and returns it. Typical use is an α tail: a = q_α, b = the right
// edge of the figure.
func ShadeUnderCurve(p *plot.Plot, f func(float64) float64, a, b float64, opts ...ShadeOption) (*plotter.Polygon, error) {
	o := shadeOptions{color: TailColor(), alpha: DefaultShadeAlpha, samples: DefaultShadeSamples}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || !(a < b) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInterval, a, b)
	}
	if o.samples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, o.samples)
	}

	xs := floats.Span(make([]float64, o.samples), a, b)
	ring := make(plotter.XYs, 0, o.samples+2)
	ring = append(ring, plotter.XY{X: a, Y: o.baseline})
	for _, x := range xs {
		ring = append(ring, plotter.XY{X: x, Y: f(x)})
	}
	ring = append(ring, plotter.XY{X: b, Y: o.baseline})

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, fmt.Errorf("plots: shade polygon: %w", err)
	}
	poly.Color = withAlpha(o.color, o.alpha)
	poly.LineStyle.Width = 0
	p.Add(poly)

	return poly, nil
}

// withAlpha returns c with its opacity replaced by alpha.
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(alpha * 255))

	return n
}
