package tpgrid

import "fmt"

// MultiIndex maps a canonical flat row index to its per-axis indices:
// i_k = (flat / strides[k]) mod levels[k].
// Complexity: O(d).
func (g *Grid) MultiIndex(flat int) ([]int, error) {
	if flat < 0 || flat >= g.nTotal {
		return nil, fmt.Errorf("Grid.MultiIndex(%d): %w", flat, ErrIndexOutOfRange)
	}
	idx := make([]int, g.dimension)
	for k := range idx {
		idx[k] = (flat / g.strides[k]) % g.levels[k]
	}

	return idx, nil
}

// FlatIndex is the inverse of MultiIndex: Σ_k i_k·strides[k].
func (g *Grid) FlatIndex(multi []int) (int, error) {
	if len(multi) != g.dimension {
		return 0, fmt.Errorf("Grid.FlatIndex: len=%d, dimension=%d: %w", len(multi), g.dimension, ErrIndexOutOfRange)
	}
	flat := 0
	for k, i := range multi {
		if i < 0 || i >= g.levels[k] {
			return 0, fmt.Errorf("Grid.FlatIndex: index[%d]=%d: %w", k, i, ErrIndexOutOfRange)
		}
		flat += i * g.strides[k]
	}

	return flat, nil
}

// PointAt computes the coordinates of row flat directly from the axes,
// without reading the materialized matrix. It agrees bit-for-bit with
// Points() row flat.
func (g *Grid) PointAt(flat int) ([]float64, error) {
	idx, err := g.MultiIndex(flat)
	if err != nil {
		return nil, err
	}
	pt := make([]float64, g.dimension)
	for k, i := range idx {
		pt[k] = g.axes[k][i]
	}

	return pt, nil
}
