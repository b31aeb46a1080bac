package tpgrid

import (
	"github.com/katalvlaran/statclass/matrix"
)

// TruncationAdvisory is the message logged when GenSamples returns a strict
// prefix of the grid.
const TruncationAdvisory = "returning a prefix of the tensor grid; " +
	"the first n points in canonical order are not a balanced sub-sample across dimensions"

// Sampler is anything that can be asked for n points of a fixed dimension.
// A negative n asks for the sampler's natural full set, when it has one.
type Sampler interface {
	Sample(n int) *matrix.Dense
	Dimension() int
}

// Domain is implemented by samplers that expose the box they cover.
type Domain interface {
	LowerBound() []float64
	UpperBound() []float64
}

var (
	_ Sampler = (*Grid)(nil)
	_ Domain  = (*Grid)(nil)
)

// GenSamples returns grid points in canonical order.
//   - n < 0 (see All) or n ≥ NTotal: a copy of every point.
//   - n == 0: an empty (0, d) matrix.
//   - otherwise: a copy of the first n rows; if warn is set, TruncationAdvisory
//     is logged. The call still succeeds.
//
// The result never aliases the grid's internal storage.
// Complexity: O(n·d).
func (g *Grid) GenSamples(n int, warn bool) *matrix.Dense {
	if n < 0 || n >= g.nTotal {
		return g.points.Clone()
	}
	if warn && n > 0 {
		g.logger.Info(TruncationAdvisory, "n", n, "total", g.nTotal, "levels", g.levels)
	}
	out, err := g.points.Slice(n)
	if err != nil {
		// 0 ≤ n < nTotal here.
		panic(err)
	}

	return out
}

// Sample is GenSamples(n, true); it makes Grid a Sampler.
func (g *Grid) Sample(n int) *matrix.Dense {
	return g.GenSamples(n, true)
}
