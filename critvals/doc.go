// Package critvals renders LaTeX tables of upper-tail critical values
// q_α, P(X > q_α) = α, for the standard normal, Student's t and χ² laws.
//
// What:
//
//   - Build resolves the options into a Table: α columns split into a left
//     block (α ≥ 0.5) and a right block (α < 0.5), one Normal row, then one
//     row per t and χ² degree of freedom.
//   - Degrees of freedom may be listed explicitly or derived from a sample
//     size n (t: n−1, χ²: 2n) plus "bait" offsets that add distractor rows.
//   - Values are inverse survival functions from gonum's distuv package.
//   - Render / WriteFile emit a tabular environment for booktabs.
//
// Errors:
//
//   - ErrNoAlphas, ErrAlphaRange, ErrDigits, ErrDegreesOfFreedom, ErrFormat.
package critvals
