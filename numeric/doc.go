// SPDX-License-Identifier: MIT

// Package numeric provides the small set of sampled-data kernels the
// Kirkwood-Buff toolkit is built on.
//
// What is here:
//
//   - Trapezoid            - definite integral of samples y(x) by the trapezoid rule.
//   - CumulativeTrapezoid  - running trapezoid integral, one value per interval.
//   - LinearRegression     - ordinary least squares with correlation coefficient,
//     two-sided p-value and standard errors.
//
// All kernels are pure functions over their slice arguments: inputs are never
// mutated, results are freshly allocated, nothing logs and nothing panics on
// user input. Failures are reported with the sentinels in errors.go.
//
// The integration kernels delegate to gonum.org/v1/gonum/integrate and the
// regression statistics to gonum.org/v1/gonum/stat and stat/distuv.
package numeric
