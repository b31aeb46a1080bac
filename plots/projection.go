package plots

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/statclass/tpgrid"
)

// ProjectionScatter draws n points from s and returns a scatter of their
// (i, j) coordinates, coloured with CurveColor. A negative n asks the sampler
// for its full point set.
func ProjectionScatter(s tpgrid.Sampler, n, i, j int) (*plotter.Scatter, error) {
	d := s.Dimension()
	if i < 0 || i >= d || j < 0 || j >= d {
		return nil, fmt.Errorf("%w: (%d,%d) with dimension %d", ErrProjectionAxis, i, j, d)
	}
	pts := s.Sample(n)
	if pts.Rows() == 0 {
		return nil, ErrEmptySample
	}

	xys := make(plotter.XYs, pts.Rows())
	for r := range xys {
		xys[r].X = pts.At(r, i)
		xys[r].Y = pts.At(r, j)
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("plots: projection scatter: %w", err)
	}
	sc.GlyphStyle.Color = CurveColor()
	sc.GlyphStyle.Radius = vg.Points(2)

	return sc, nil
}

// AddProjection adds ProjectionScatter(s, n, i, j) to p. When s also
// implements tpgrid.Domain, the axis ranges are fixed to the domain box
// along axes i and j instead of the data extent.
func AddProjection(p *plot.Plot, s tpgrid.Sampler, n, i, j int) (*plotter.Scatter, error) {
	sc, err := ProjectionScatter(s, n, i, j)
	if err != nil {
		return nil, err
	}
	p.Add(sc)
	if dom, ok := s.(tpgrid.Domain); ok {
		lo, hi := dom.LowerBound(), dom.UpperBound()
		p.X.Min, p.X.Max = lo[i], hi[i]
		p.Y.Min, p.Y.Max = lo[j], hi[j]
	}

	return sc, nil
}
