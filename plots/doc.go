// Package plots holds the colour palette and annotation helpers used by the
// course figures, built on gonum.org/v1/plot.
//
// What:
//
//   - Paul Tol's "bright" qualitative palette, with semantic roles for
//     curves, α tails, rejection regions, accents and neutral elements.
//   - AnnotateXAxisMarks: short ticks and labels hung under the x axis at
//     chosen data positions (μ, q_α, ...).
//   - ShadeUnderCurve: a filled region between a curve and a baseline.
//   - ProjectionScatter: a 2-D coordinate projection of points drawn from any
//     tpgrid.Sampler.
//
// Errors:
//
//   - ErrLengthMismatch, ErrUnknownColor, ErrInterval, ErrResolution,
//     ErrProjectionAxis, ErrEmptySample.
package plots
