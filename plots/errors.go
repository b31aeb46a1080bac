package plots

import "errors"

var (
	// ErrLengthMismatch indicates parallel inputs of different lengths.
	ErrLengthMismatch = errors.New("plots: inputs must have the same length")
	// ErrUnknownColor indicates a palette key that does not exist.
	ErrUnknownColor = errors.New("plots: unknown palette colour")
	// ErrInterval indicates an empty or non-finite shading interval.
	ErrInterval = errors.New("plots: interval must satisfy a < b with finite ends")
	// ErrResolution indicates fewer than two curve samples.
	ErrResolution = errors.New("plots: at least two samples are required")
	// ErrProjectionAxis indicates a projection coordinate outside the sampler's dimension.
	ErrProjectionAxis = errors.New("plots: projection axis out of range")
	// ErrEmptySample indicates the sampler returned no points.
	ErrEmptySample = errors.New("plots: sampler returned no points")
)
