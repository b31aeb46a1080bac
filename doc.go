// Package statclass is the numerical toolkit behind a statistics course:
// exact sampling grids, critical-value and distribution tables, and the
// annotation helpers used to draw the course figures.
//
// What is inside?
//
//	• tpgrid/        — deterministic tensor-product grids over [0,1]^d,
//	                   usable as a Sampler next to low-discrepancy sequences
//	• matrix/        — the row-major point store (gonum mat.Matrix compatible)
//	• critvals/      — LaTeX tables of z, t and χ² upper quantiles
//	• distributions/ — LaTeX table of distribution definitions
//	• plots/         — Tol "bright" palette, x-axis marks, tail shading and
//	                   sampler projections on top of gonum/plot
//
// Quick ASCII example, a centered 2×3 grid (rows in canonical order):
//
//	y
//	5/6 ·3    ·6
//	1/2 ·2    ·5
//	1/6 ·1    ·4
//	    1/4   3/4  x
//
// See examples/ for a program that builds a grid, plots a projection and
// writes both tables.
package statclass
