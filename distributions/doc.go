// Package distributions renders a LaTeX table that defines a selection of
// common probability laws: name, sample space, density or mass function
// ρ(x), mean μ and variance σ².
//
// The catalog is fixed (see Names). Each entry also carries a concrete gonum
// distuv instance with the moments its symbolic μ and σ² evaluate to, so the
// formulas can be checked numerically.
package distributions
