package plots

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// DefaultTickHeight is the tick length as a fraction of the data area height.
	DefaultTickHeight = 0.05
	// DefaultTickWidth is the tick line width.
	DefaultTickWidth = vg.Length(2)
	// DefaultTextOffset is the label offset from the x axis; negative is below.
	DefaultTextOffset = vg.Length(-18)
)

// MarkOption configures AnnotateXAxisMarks.
type MarkOption func(*XAxisMarks)

// WithMarkColors sets one colour per mark; a nil entry keeps the default (black).
func WithMarkColors(cs ...color.Color) MarkOption {
	return func(m *XAxisMarks) { m.Colors = append([]color.Color(nil), cs...) }
}

// WithTickHeight sets the tick length as a fraction of the data area height.
func WithTickHeight(h float64) MarkOption {
	return func(m *XAxisMarks) { m.TickHeight = h }
}

// WithTickWidth sets the tick line width.
func WithTickWidth(w vg.Length) MarkOption {
	return func(m *XAxisMarks) { m.TickWidth = w }
}

// WithTextOffset sets the vertical label offset from the x axis.
func WithTextOffset(off vg.Length) MarkOption {
	return func(m *XAxisMarks) { m.TextOffset = off }
}

// WithFontSize overrides the label font size (0 keeps the tick-label size).
func WithFontSize(size vg.Length) MarkOption {
	return func(m *XAxisMarks) { m.FontSize = size }
}

// WithAlign sets the label anchor.
func WithAlign(x text.XAlignment, y text.YAlignment) MarkOption {
	return func(m *XAxisMarks) {
		m.XAlign = x
		m.YAlign = y
	}
}

// XAxisMarks is a plot.Plotter that hangs a tick and a label under the x axis
// at each of Xs. Ticks start at the bottom of the data area and extend
// TickHeight × data height downward; labels sit TextOffset from the axis.
type XAxisMarks struct {
	Xs         []float64
	Labels     []string
	Colors     []color.Color
	TickHeight float64
	TickWidth  vg.Length
	TextOffset vg.Length
	FontSize   vg.Length
	XAlign     text.XAlignment
	YAlign     text.YAlignment
}

var (
	_ plot.Plotter    = (*XAxisMarks)(nil)
	_ plot.DataRanger = (*XAxisMarks)(nil)
)

// AnnotateXAxisMarks validates the marks, adds them to p and returns the
// plotter so callers can adjust it further.
func AnnotateXAxisMarks(p *plot.Plot, xs []float64, labels []string, opts ...MarkOption) (*XAxisMarks, error) {
	if len(xs) != len(labels) {
		return nil, fmt.Errorf("%w: %d positions, %d labels", ErrLengthMismatch, len(xs), len(labels))
	}
	m := &XAxisMarks{
		Xs:         append([]float64(nil), xs...),
		Labels:     append([]string(nil), labels...),
		TickHeight: DefaultTickHeight,
		TickWidth:  DefaultTickWidth,
		TextOffset: DefaultTextOffset,
		XAlign:     draw.XCenter,
		YAlign:     draw.YTop,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.Colors != nil && len(m.Colors) != len(xs) {
		return nil, fmt.Errorf("%w: %d positions, %d colours", ErrLengthMismatch, len(xs), len(m.Colors))
	}
	p.Add(m)

	return m, nil
}

func (m *XAxisMarks) color(i int) color.Color {
	if m.Colors == nil || m.Colors[i] == nil {
		return color.Black
	}
	return m.Colors[i]
}

// Plot implements plot.Plotter.
func (m *XAxisMarks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	y0 := c.Min.Y
	y1 := y0 - vg.Length(m.TickHeight)*(c.Max.Y-c.Min.Y)

	for i, x := range m.Xs {
		px := trX(x)
		col := m.color(i)
		c.StrokeLine2(draw.LineStyle{Color: col, Width: m.TickWidth}, px, y0, px, y1)

		sty := plt.X.Tick.Label
		sty.Color = col
		sty.XAlign = m.XAlign
		sty.YAlign = m.YAlign
		if m.FontSize > 0 {
			sty.Font.Size = m.FontSize
		}
		c.FillText(sty, vg.Point{X: px, Y: y0 + m.TextOffset}, m.Labels[i])
	}
}

// DataRange implements plot.DataRanger so the marks stay inside the x range.
// The y range is left untouched.
func (m *XAxisMarks) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, x := range m.Xs {
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
	}

	return xmin, xmax, math.Inf(1), math.Inf(-1)
}
