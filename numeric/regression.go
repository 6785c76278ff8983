// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const opLinearRegression = "LinearRegression"

// tiny keeps the t statistic finite for a perfect correlation (|r| == 1).
const tiny = 1.0e-20

// Regression is the summary of an ordinary least squares fit y = Intercept + Slope·x.
type Regression struct {
	Slope     float64
	Intercept float64

	// RValue is the Pearson correlation coefficient of x and y.
	RValue float64

	// PValue is the two-sided p-value for the null hypothesis Slope == 0,
	// from a Student t distribution with n-2 degrees of freedom.
	PValue float64

	// StdError is the standard error of Slope.
	StdError float64

	// InterceptStdError is the standard error of Intercept.
	InterceptStdError float64

	// N is the number of samples in the fit.
	N int
}

// LinearRegression fits y against x by ordinary least squares.
//
// Behavior highlights:
//   - A constant y gives RValue == 0 rather than NaN.
//   - With exactly two samples the fit is exact: StdError and InterceptStdError
//     are 0 and PValue is 1 when the two responses are equal, 0 otherwise.
//
// Errors:
//   - ErrLengthMismatch, ErrTooShort (n < 2), ErrConstantX.
//
// Complexity: O(n) time, O(1) extra space.
func LinearRegression(x, y []float64) (Regression, error) {
	// Stage 1 (Validate): shape and a non-degenerate abscissa.
	if len(x) != len(y) {
		return Regression{}, numericErrorf(opLinearRegression, ErrLengthMismatch)
	}
	n := len(x)
	if n < 2 {
		return Regression{}, numericErrorf(opLinearRegression, ErrTooShort)
	}
	varX := stat.Variance(x, nil)
	if varX == 0 {
		return Regression{}, numericErrorf(opLinearRegression, ErrConstantX)
	}

	// Stage 2 (Fit): gonum returns (alpha, beta) for y = alpha + beta·x.
	intercept, slope := stat.LinearRegression(x, y, nil, false)

	// Stage 3 (Correlation): both variances share the n-1 normalization, so
	// their ratios match the population moments.
	varY := stat.Variance(y, nil)
	covXY := stat.Covariance(x, y, nil)
	r := 0.0
	if varY != 0 {
		r = covXY / math.Sqrt(varX*varY)
		r = math.Max(-1, math.Min(1, r))
	}

	reg := Regression{Slope: slope, Intercept: intercept, RValue: r, N: n}

	// Stage 4 (Significance): exact fit for two points.
	if n == 2 {
		if y[0] == y[1] {
			reg.PValue = 1
		}
		return reg, nil
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/((1-r+tiny)*(1+r+tiny)))
	student := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	reg.PValue = 2 * student.Survival(math.Abs(t))
	reg.StdError = math.Sqrt((1 - r*r) * varY / varX / df)

	meanX := stat.Mean(x, nil)
	ssxm := varX * float64(n-1) / float64(n)
	reg.InterceptStdError = reg.StdError * math.Sqrt(ssxm+meanX*meanX)

	return reg, nil
}
