package tpgrid

import (
	"errors"
	"fmt"
)

// ErrConfig is the single error kind raised by construction: the parameters
// are structurally invalid. All other sentinels in this package wrap it.
var ErrConfig = errors.New("tpgrid: invalid configuration")

// Sentinel errors for grid construction.
var (
	// ErrDimensionRequired indicates a uniform level was given without a dimension.
	ErrDimensionRequired = fmt.Errorf("%w: dimension required", ErrConfig)
	// ErrNonPositiveDimension indicates an explicit dimension < 1.
	ErrNonPositiveDimension = fmt.Errorf("%w: dimension must be positive", ErrConfig)
	// ErrNonPositiveLevel indicates a level (scalar or per-dimension entry) < 1.
	ErrNonPositiveLevel = fmt.Errorf("%w: levels must be positive", ErrConfig)
	// ErrNotOneDimensional indicates a decoded level sequence contains nested sequences.
	ErrNotOneDimensional = fmt.Errorf("%w: levels must be a one-dimensional sequence", ErrConfig)
	// ErrNotInteger indicates a decoded level is not an integral number.
	ErrNotInteger = fmt.Errorf("%w: levels must be integers", ErrConfig)
	// ErrDimensionMismatch indicates an explicit dimension differs from len(levels).
	ErrDimensionMismatch = fmt.Errorf("%w: dimension does not match number of levels", ErrConfig)
	// ErrGridTooLarge indicates Π levels, or Π levels × d, overflows int.
	ErrGridTooLarge = fmt.Errorf("%w: number of grid coordinates overflows int", ErrConfig)
)

// ErrIndexOutOfRange is returned by the index accessors (Axis, PointAt,
// MultiIndex, FlatIndex) for an index outside the grid. It is a query error,
// not a configuration error.
var ErrIndexOutOfRange = errors.New("tpgrid: index out of range")
