// SPDX-License-Identifier: MIT

package tpgrid

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/statclass/matrix"
)

// Grid is a tensor-product point set over [0,1]^d. It is immutable once built:
// points is written exactly once by New and every accessor returns a copy.
type Grid struct {
	dimension int
	levels    []int
	centered  bool
	endpoint  bool
	axes      [][]float64   // axes[k] strictly increasing, len == levels[k]
	strides   []int         // strides[k] = Π_{j>k} levels[j]
	points    *matrix.Dense // N×d, canonical order
	nTotal    int
	logger    logr.Logger
}

// New constructs a Grid from a tagged level configuration.
// Implementation:
//   - Stage 1 (Validate): resolve levels against WithDimension; any failure
//     returns an error wrapping ErrConfig and no Grid.
//   - Stage 2 (Prepare): build one axis per dimension and the row-major strides.
//   - Stage 3 (Execute): expand the Cartesian product into an N×d matrix.
//
// Complexity: O(N·d) time and memory.
func New(spec LevelSpec, opts ...Option) (*Grid, error) {
	o := gatherOptions(opts...)
	levels, err := spec.resolve(o)
	if err != nil {
		return nil, err
	}

	strides, n, err := rowMajorStrides(levels)
	if err != nil {
		return nil, err
	}

	axes := make([][]float64, len(levels))
	for k, l := range levels {
		axes[k] = buildAxis(l, o.centered, o.endpoint)
	}

	g := &Grid{
		dimension: len(levels),
		levels:    levels,
		centered:  o.centered,
		endpoint:  o.endpoint,
		axes:      axes,
		strides:   strides,
		nTotal:    n,
		logger:    o.logger,
	}
	g.points = g.expand()

	return g, nil
}

// NewUniform builds a d-dimensional grid with level points on every axis.
// A dimension of 0 is treated as missing and yields ErrDimensionRequired.
func NewUniform(level, dimension int, opts ...Option) (*Grid, error) {
	if dimension != 0 {
		opts = append(opts[:len(opts):len(opts)], WithDimension(dimension))
	}

	return New(Uniform(level), opts...)
}

// NewPerDim builds a grid with levels[k] points on axis k.
func NewPerDim(levels []int, opts ...Option) (*Grid, error) {
	return New(PerDim(levels...), opts...)
}

// rowMajorStrides returns strides[k] = Π_{j>k} levels[j] and N = Π levels.
// Both N and the coordinate count N·d must fit in an int.
func rowMajorStrides(levels []int) ([]int, int, error) {
	strides := make([]int, len(levels))
	n := 1
	for k := len(levels) - 1; k >= 0; k-- {
		strides[k] = n
		if n > math.MaxInt/levels[k] {
			return nil, 0, fmt.Errorf("%w: levels=%v", ErrGridTooLarge, levels)
		}
		n *= levels[k]
	}
	if n > math.MaxInt/len(levels) {
		return nil, 0, fmt.Errorf("%w: %d points × %d coordinates", ErrGridTooLarge, n, len(levels))
	}

	return strides, n, nil
}

// buildAxis returns the L coordinates of one axis.
//   - centered:            (i+0.5)/L
//   - endpoint (L>1):      i·(1/(L-1)), last value pinned to exactly 1
//   - endpoint (L==1):     {0}
//   - neither:             i·(1/L)
func buildAxis(l int, centered, endpoint bool) []float64 {
	axis := make([]float64, l)
	fl := float64(l)
	switch {
	case centered:
		for i := range axis {
			axis[i] = (float64(i) + 0.5) / fl
		}
	case endpoint:
		if l == 1 {
			return axis
		}
		step := 1.0 / float64(l-1)
		for i := range axis {
			axis[i] = float64(i) * step
		}
		axis[l-1] = 1.0
	default:
		step := 1.0 / fl
		for i := range axis {
			axis[i] = float64(i) * step
		}
	}

	return axis
}

// expand materializes the Cartesian product in canonical order using an
// odometer over the multi-index (last dimension fastest).
func (g *Grid) expand() *matrix.Dense {
	data := make([]float64, g.nTotal*g.dimension)
	idx := make([]int, g.dimension)
	for row := 0; row < g.nTotal; row++ {
		base := row * g.dimension
		for k, i := range idx {
			data[base+k] = g.axes[k][i]
		}
		for k := g.dimension - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < g.levels[k] {
				break
			}
			idx[k] = 0
		}
	}
	pts, err := matrix.NewDenseFrom(g.nTotal, g.dimension, data)
	if err != nil {
		// nTotal ≥ 1 and dimension ≥ 1 after resolve; unreachable.
		panic(err)
	}

	return pts
}

// Dimension returns d.
func (g *Grid) Dimension() int { return g.dimension }

// LevelsPerDim returns a copy of the per-axis level counts.
func (g *Grid) LevelsPerDim() []int {
	out := make([]int, len(g.levels))
	copy(out, g.levels)

	return out
}

// Centered reports whether axes use the midpoint layout.
func (g *Grid) Centered() bool { return g.centered }

// Endpoint reports the endpoint flag. It only affects non-centered grids.
func (g *Grid) Endpoint() bool { return g.endpoint }

// NTotal returns N = Π levels.
func (g *Grid) NTotal() int { return g.nTotal }

// Points returns a copy of the full N×d point matrix.
func (g *Grid) Points() *matrix.Dense { return g.points.Clone() }

// LowerBound returns the zero vector of length d.
func (g *Grid) LowerBound() []float64 { return make([]float64, g.dimension) }

// UpperBound returns the all-ones vector of length d.
func (g *Grid) UpperBound() []float64 {
	out := make([]float64, g.dimension)
	for k := range out {
		out[k] = 1
	}

	return out
}

// Axis returns a copy of the coordinates used on axis k.
func (g *Grid) Axis(k int) ([]float64, error) {
	if k < 0 || k >= g.dimension {
		return nil, fmt.Errorf("Grid.Axis(%d): %w", k, ErrIndexOutOfRange)
	}
	out := make([]float64, len(g.axes[k]))
	copy(out, g.axes[k])

	return out, nil
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(dim=%d, levels=%v, n_total=%d)", g.dimension, g.levels, g.nTotal)
}
