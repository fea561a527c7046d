package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// Linspace returns n evenly spaced values, starting at lower.
//
// If includeEnd is true, the values span [lower, upper] and the last value is
// exactly upper. Otherwise they span [lower, upper) with a step of
// (upper-lower)/n, and upper itself is never reached.
//
// n must be at least 1, and at least 2 if includeEnd is true.
func Linspace(lower, upper float64, n int, includeEnd bool) ([]float64, error) {
	if n < 1 || (n == 1 && includeEnd) {
		return nil, fmt.Errorf("%d samples (end point included: %t): %w", n, includeEnd, ErrInvalidSampleCount)
	}
	if includeEnd {
		out := floats.Span(make([]float64, n), lower, upper)
		// Span computes each value as lower + i*step, which can drift by an
		// ulp at the boundary.
		out[n-1] = upper
		return out, nil
	}
	return floats.Span(make([]float64, n+1), lower, upper)[:n:n], nil
}

// Fill returns a slice of n copies of value.
func Fill(n int, value float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Factorial returns n!.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrInvalidArgument)
	}
	r := 1
	for i := 2; i <= n; i++ {
		if r > math.MaxInt/i {
			return 0, fmt.Errorf("factorial of %d: %w", n, ErrOverflow)
		}
		r *= i
	}
	return r, nil
}

// Binomial returns the binomial coefficient C(n, r), the number of ways of
// choosing r out of n elements.
//
// Unlike n!/(r!(n-r)!), it doesn't overflow for large n and small r.
// Coefficients that don't fit in an int return ErrOverflow.
func Binomial(n, r int) (int, error) {
	if n < 0 || r < 0 || r > n {
		return 0, fmt.Errorf("binomial coefficient (%d, %d): %w", n, r, ErrInvalidArgument)
	}
	// combin.Binomial's intermediate products reach C(n, r)·r.
	k := min(r, n-r)
	if combin.GeneralizedBinomial(float64(n), float64(k))*float64(max(k, 1)) >= maxExactBinomial {
		return 0, fmt.Errorf("binomial coefficient (%d, %d): %w", n, r, ErrOverflow)
	}
	return combin.Binomial(n, r), nil
}

// maxExactBinomial bounds intermediate products of combin.Binomial, with
// headroom for the inexact estimate from GeneralizedBinomial.
const maxExactBinomial = math.MaxInt / 4

// binomialRow returns C(p, 0..p) as floats.
func binomialRow(p int) ([]float64, error) {
	b := make([]float64, p+1)
	for i := range b {
		c, err := Binomial(p, i)
		if err != nil {
			return nil, err
		}
		b[i] = float64(c)
	}
	return b, nil
}
