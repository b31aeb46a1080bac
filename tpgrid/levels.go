package tpgrid

import (
	"fmt"
	"math"
)

// LevelSpec is the tagged level configuration accepted by New: either one
// level shared by every dimension (Uniform) or one level per dimension (PerDim).
type LevelSpec struct {
	uniform   int
	perDim    []int
	isUniform bool
}

// Uniform uses the same number of levels on every axis. The dimension must
// then be supplied with WithDimension.
func Uniform(level int) LevelSpec {
	return LevelSpec{uniform: level, isUniform: true}
}

// PerDim sets levels[k] points on axis k. The dimension is len(levels) unless
// WithDimension is given, in which case the two must agree.
func PerDim(levels ...int) LevelSpec {
	cp := make([]int, len(levels))
	copy(cp, levels)

	return LevelSpec{perDim: cp}
}

// IsUniform reports whether s was built by Uniform.
func (s LevelSpec) IsUniform() bool { return s.isUniform }

// ParseLevels converts a decoded configuration value (for example the result
// of json.Unmarshal into an any) into a LevelSpec.
//
// Accepted forms: an integer, an integral float64, []int, or a []any whose
// elements are integers or integral floats. A sequence element that is itself
// a sequence yields ErrNotOneDimensional.
func ParseLevels(v any) (LevelSpec, error) {
	switch x := v.(type) {
	case []int:
		return PerDim(x...), nil
	case [][]int, [][]any, [][]float64:
		return LevelSpec{}, fmt.Errorf("%w: got %T", ErrNotOneDimensional, v)
	case []float64:
		levels := make([]int, len(x))
		for i, f := range x {
			n, err := scalarLevel(f)
			if err != nil {
				return LevelSpec{}, fmt.Errorf("levels[%d]: %w", i, err)
			}
			levels[i] = n
		}
		return PerDim(levels...), nil
	case []any:
		levels := make([]int, len(x))
		for i, e := range x {
			n, err := scalarLevel(e)
			if err != nil {
				return LevelSpec{}, fmt.Errorf("levels[%d]: %w", i, err)
			}
			levels[i] = n
		}
		return PerDim(levels...), nil
	default:
		n, err := scalarLevel(v)
		if err != nil {
			return LevelSpec{}, err
		}
		return Uniform(n), nil
	}
}

// scalarLevel accepts the numeric shapes produced by common decoders.
func scalarLevel(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return 0, fmt.Errorf("%w: got %v", ErrNotInteger, x)
		}
		return int(x), nil
	case []any, []int, []float64:
		return 0, fmt.Errorf("%w: nested %T", ErrNotOneDimensional, v)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrNotInteger, v)
	}
}

// resolve validates s against o and returns the per-dimension levels.
// Stage order mirrors the failure modes: missing dimension, non-positive
// levels, then dimension/length agreement.
func (s LevelSpec) resolve(o options) ([]int, error) {
	if o.hasDimension && o.dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveDimension, o.dimension)
	}

	if s.isUniform {
		if !o.hasDimension {
			return nil, ErrDimensionRequired
		}
		if s.uniform < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrNonPositiveLevel, s.uniform)
		}
		levels := make([]int, o.dimension)
		for k := range levels {
			levels[k] = s.uniform
		}
		return levels, nil
	}

	if len(s.perDim) == 0 {
		return nil, fmt.Errorf("%w: empty level sequence", ErrNonPositiveDimension)
	}
	for k, l := range s.perDim {
		if l < 1 {
			return nil, fmt.Errorf("%w: levels[%d]=%d", ErrNonPositiveLevel, k, l)
		}
	}
	if o.hasDimension && o.dimension != len(s.perDim) {
		return nil, fmt.Errorf("%w: dimension=%d, len(levels)=%d", ErrDimensionMismatch, o.dimension, len(s.perDim))
	}
	levels := make([]int, len(s.perDim))
	copy(levels, s.perDim)

	return levels, nil
}
