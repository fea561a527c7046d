package spline

import (
	"fmt"
	"math"
	"slices"
)

// DefaultEpsilon is the default for [DeBoor.Epsilon].
const DefaultEpsilon = 1e-12

// DeBoor evaluates B-splines using De Boor's algorithm.
//
// A DeBoor holds a degree, control points, and a knot vector. The knot vector
// isn't updated automatically; call [DeBoor.GenerateKnotVector] or
// [DeBoor.SetKnotVector] after changing the degree or the control points.
//
// The zero value has degree 0 and no control points, and must be configured
// before use. A DeBoor must not be used from multiple goroutines at once.
type DeBoor[V Vector[V]] struct {
	// Epsilon is the smallest knot span that the recurrence divides by.
	// Smaller spans cause evaluation to fail with [ErrDegenerateKnotSpan]
	// instead of producing NaNs. If zero, DefaultEpsilon is used.
	Epsilon float64

	p int
	c []V
	u KnotVector
}

// SetDegree sets the degree of the spline. It doesn't affect the control
// points or the knot vector.
func (db *DeBoor[V]) SetDegree(p int) { db.p = p }

// Degree returns the degree of the spline.
func (db *DeBoor[V]) Degree() int { return db.p }

// SetControlPoints replaces the control points with a copy of c. The knot
// vector isn't regenerated.
func (db *DeBoor[V]) SetControlPoints(c []V) error {
	if err := checkDims(c); err != nil {
		return err
	}
	db.c = slices.Clone(c)
	return nil
}

// ControlPoints returns a copy of the control points.
func (db *DeBoor[V]) ControlPoints() []V { return slices.Clone(db.c) }

// GenerateKnotVector replaces the knot vector with the clamped uniform knot
// vector for the current degree and number of control points. See
// [ClampedKnots].
func (db *DeBoor[V]) GenerateKnotVector() error {
	u, err := ClampedKnots(len(db.c), db.p)
	if err != nil {
		return err
	}
	db.u = u
	return nil
}

// SetKnotVector replaces the knot vector with a copy of u, which must be
// valid for the current degree and number of control points. See
// [KnotVector.Validate].
func (db *DeBoor[V]) SetKnotVector(u KnotVector) error {
	if err := u.Validate(len(db.c), db.p); err != nil {
		return err
	}
	db.u = slices.Clone(u)
	return nil
}

// KnotVector returns a copy of the knot vector.
func (db *DeBoor[V]) KnotVector() KnotVector { return slices.Clone(db.u) }

// FindKnotIndex returns the knot span index and multiplicity of x. See
// [KnotVector.Find].
func (db *DeBoor[V]) FindKnotIndex(x float64) (k, s int, err error) {
	return db.u.Find(x)
}

// Eval evaluates the spline at x, which must lie in the knot domain.
func (db *DeBoor[V]) Eval(x float64) (V, error) {
	if err := db.ready(); err != nil {
		var zero V
		return zero, err
	}
	return db.eval(x)
}

func (db *DeBoor[V]) ready() error {
	switch {
	case db.p < 1:
		return fmt.Errorf("degree %d: %w", db.p, ErrInvalidDegree)
	case len(db.c) == 0:
		return ErrEmptyControlPoints
	case len(db.u) != len(db.c)+db.p+1:
		return fmt.Errorf("%d knots for %d control points and degree %d: %w",
			len(db.u), len(db.c), db.p, ErrKnotVectorMismatch)
	}
	return nil
}

func (db *DeBoor[V]) epsilon() float64 {
	if db.Epsilon == 0 {
		return DefaultEpsilon
	}
	return db.Epsilon
}

func (db *DeBoor[V]) eval(x float64) (V, error) {
	var zero V
	p, m, u := db.p, len(db.c), db.u

	k, s, err := u.Find(x)
	if err != nil {
		return zero, err
	}

	// Number of times x has to be inserted to become a knot of multiplicity p.
	h := p - s
	if h <= 0 {
		// The curve passes through a control point at knots of multiplicity
		// p or more. For the clamped ends (s = p+1) this is the first or last
		// control point.
		return db.c[min(max(k-s, 0), m-1)], nil
	}

	lo := k - p
	if lo < 0 || lo+h >= m {
		// Only possible with unclamped knot vectors, whose valid domain is
		// narrower than the span of their knots.
		return zero, fmt.Errorf("%g outside the valid spline domain [%g, %g]: %w", x, u[p], u[m], ErrParameterOutOfDomain)
	}

	d := slices.Clone(db.c[lo : lo+h+1])
	eps := db.epsilon()
	for r := 1; r <= h; r++ {
		for j := h; j >= r; j-- {
			u0, u1 := u[j+k-p], u[j+1+k-r]
			span := u1 - u0
			if math.Abs(span) < eps {
				return zero, fmt.Errorf("knot span [%g, %g] at %g: %w", u0, u1, x, ErrDegenerateKnotSpan)
			}
			a := (x - u0) / span
			d[j] = d[j-1].Mul(1 - a).Add(d[j].Mul(a))
		}
	}
	return d[h], nil
}
