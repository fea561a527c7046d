package spline

import (
	"fmt"
	"math"
	"slices"
)

// KnotVector is a non-decreasing sequence of parameter values that defines
// where and how the control points of a B-spline blend.
type KnotVector []float64

// ClampedKnots returns the clamped uniform knot vector for m control points
// and degree p: p+1 zeros, m-p-1 uniformly spaced interior knots, and p+1
// ones, for a total length of m+p+1.
//
// A clamped B-spline interpolates its first and last control points. It
// requires at least p+1 control points.
func ClampedKnots(m, p int) (KnotVector, error) {
	if p < 1 {
		return nil, fmt.Errorf("degree %d: %w", p, ErrInvalidDegree)
	}
	if m < 1 {
		return nil, ErrEmptyControlPoints
	}
	if m < p+1 {
		return nil, fmt.Errorf("%d control points for degree %d: %w", m, p, ErrInsufficientControlPoints)
	}
	// The inner linspace includes 0 and 1, raising both end multiplicities
	// to p+1.
	inner, err := Linspace(0, 1, m-p+1, true)
	if err != nil {
		return nil, err
	}
	return slices.Concat(Fill(p, 0), inner, Fill(p, 1)), nil
}

// Domain returns the first and last knot.
func (u KnotVector) Domain() (lo, hi float64) {
	return u[0], u[len(u)-1]
}

// Find returns the index k of the last knot that is ≤ x, and the multiplicity
// s of x in u, that is the number of knots exactly equal to x. The scan stops
// at the first knot greater than x, so for x equal to the last knot, k is
// len(u)-1.
//
// x must lie within the knot domain.
func (u KnotVector) Find(x float64) (k, s int, err error) {
	if len(u) == 0 {
		return 0, 0, fmt.Errorf("empty knot vector: %w", ErrParameterOutOfDomain)
	}
	if lo, hi := u.Domain(); !(x >= lo && x <= hi) {
		return 0, 0, fmt.Errorf("%g not in [%g, %g]: %w", x, lo, hi, ErrParameterOutOfDomain)
	}
	i := 0
	for i < len(u) && u[i] <= x {
		if u[i] == x {
			s++
		}
		i++
	}
	return i - 1, s, nil
}

// Multiplicity returns the number of knots exactly equal to x.
func (u KnotVector) Multiplicity(x float64) int {
	var n int
	for _, knot := range u {
		if knot == x {
			n++
		}
	}
	return n
}

// Validate checks that u can serve as the knot vector of a B-spline with m
// control points and degree p: it must have m+p+1 finite, non-decreasing
// knots, and no knot may repeat more than p+1 times.
func (u KnotVector) Validate(m, p int) error {
	if p < 1 {
		return fmt.Errorf("degree %d: %w", p, ErrInvalidDegree)
	}
	if len(u) != m+p+1 {
		return fmt.Errorf("%d knots for %d control points and degree %d, want %d: %w",
			len(u), m, p, m+p+1, ErrKnotVectorMismatch)
	}
	run := 0
	for i, knot := range u {
		if math.IsNaN(knot) || math.IsInf(knot, 0) {
			return fmt.Errorf("knot %d is %g: %w", i, knot, ErrKnotVectorMismatch)
		}
		switch {
		case i == 0 || knot != u[i-1]:
			if i > 0 && knot < u[i-1] {
				return fmt.Errorf("knot %d (%g) is less than knot %d (%g): %w", i, knot, i-1, u[i-1], ErrKnotVectorMismatch)
			}
			run = 1
		default:
			run++
		}
		if run > p+1 {
			return fmt.Errorf("knot %g has multiplicity above %d: %w", knot, p+1, ErrKnotVectorMismatch)
		}
	}
	return nil
}
