// SPDX-License-Identifier: MIT

// Package tpgrid: functional configuration for grid construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Validation of numeric values (dimension, levels) happens in New, not in the
// option constructors, so that every invalid configuration surfaces as an
// ErrConfig error rather than a panic.

package tpgrid

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCentered places axis points at cell midpoints (i+0.5)/L.
	DefaultCentered = true

	// DefaultEndpoint excludes 1.0 from non-centered axes.
	// Ignored when the layout is centered.
	DefaultEndpoint = false
)

// All requests every grid point from GenSamples / Sample.
// Any negative count behaves the same way.
const All = -1

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	centered     bool
	endpoint     bool
	dimension    int
	hasDimension bool
	logger       logr.Logger
	hasLogger    bool
}

// WithCentered selects the midpoint layout (true) or the evenly spaced layout
// starting at 0 (false).
func WithCentered(centered bool) Option {
	return func(o *options) { o.centered = centered }
}

// WithEndpoint controls whether 1.0 is the last value of a non-centered axis.
// It has no effect on centered grids.
func WithEndpoint(endpoint bool) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithDimension sets the explicit dimension. It is required with Uniform
// levels and, with PerDim levels, must equal the number of levels.
func WithDimension(d int) Option {
	return func(o *options) {
		o.dimension = d
		o.hasDimension = true
	}
}

// WithLogger routes the truncated-sample advisory to l.
// Pass logr.Discard() to silence it.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.logger = l
		o.hasLogger = true
	}
}

// defaultLogger writes advisories to stderr through the standard library
// logger, so a caller that configured nothing still sees them.
func defaultLogger() logr.Logger {
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("tpgrid")
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		centered: DefaultCentered,
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.hasLogger {
		o.logger = defaultLogger()
	}

	return o
}
