package critvals

import "errors"

var (
	// ErrNoAlphas indicates that no α levels were supplied.
	ErrNoAlphas = errors.New("critvals: at least one alpha is required")
	// ErrAlphaRange indicates an α outside the open interval (0, 1).
	ErrAlphaRange = errors.New("critvals: alpha must lie in (0, 1)")
	// ErrDigits indicates a digit count below 1.
	ErrDigits = errors.New("critvals: digits must be positive")
	// ErrDegreesOfFreedom indicates an explicit degree of freedom below 1.
	ErrDegreesOfFreedom = errors.New("critvals: degrees of freedom must be positive")
	// ErrFormat indicates an unknown number format name.
	ErrFormat = errors.New("critvals: unknown number format")
)
