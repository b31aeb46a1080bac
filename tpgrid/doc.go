// Package tpgrid builds deterministic tensor-product sampling grids over the
// unit hypercube [0,1]^d.
//
// What:
//
//   - Grid holds one axis per dimension and the full Cartesian product of those
//     axes, materialized once at construction as an N×d matrix.
//   - Axes are either centered (midpoints (i+0.5)/L of L equal cells) or
//     evenly spaced from 0, with or without the right boundary 1.
//   - Rows are enumerated in canonical order: row-major over the multi-index,
//     last dimension fastest, flat = Σ_k i_k·Π_{j>k} L_j.
//   - GenSamples returns the whole grid or a prefix of it; Sample makes a Grid
//     usable wherever a Sampler is expected.
//   - PointAt / MultiIndex / FlatIndex map a flat index to its point without
//     touching the materialized matrix, in the same canonical order.
//
// Why:
//
//   - Exact, reproducible point sets for teaching numerical integration and
//     for comparing against low-discrepancy samplers.
//
// Complexity:
//
//   - New*: O(N·d) time and memory, N = Π_k L_k.
//   - GenSamples(n): O(n·d). PointAt: O(d).
//
// Options:
//
//   - WithCentered(bool): midpoint layout (default true).
//   - WithEndpoint(bool): include 1.0 on non-centered axes (default false).
//   - WithDimension(int): explicit dimension; required for Uniform levels.
//   - WithLogger(logr.Logger): sink for the truncated-sample advisory.
//
// Errors:
//
//   - Every construction failure wraps ErrConfig; the specific sentinels are
//     ErrDimensionRequired, ErrNonPositiveDimension, ErrNonPositiveLevel,
//     ErrNotOneDimensional, ErrNotInteger, ErrDimensionMismatch, ErrGridTooLarge.
//
// Concurrency:
//
//   - A Grid is immutable after construction and every accessor returns a copy,
//     so it may be shared between goroutines without locking.
package tpgrid
