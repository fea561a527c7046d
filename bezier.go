package spline

import (
	"fmt"
	"math"
	"slices"
)

var _ Spline[Vec2] = (*Bezier[Vec2])(nil)

// Bezier is a Bézier curve, evaluated by blending its control points with
// the Bernstein polynomials.
//
// The degree of a Bézier curve is determined by its control points: n
// control points form a curve of degree n-1. Setting the control points
// overrides any degree configured with [Bezier.SetDegree].
//
// A Bezier must not be used from multiple goroutines at once.
type Bezier[V Vector[V]] struct {
	p int
	c []V
	// C(p, 0..p)
	b []float64
}

type (
	Bezier2D = Bezier[Vec2]
	Bezier3D = Bezier[Vec3]
)

// Init implements [Spline].
func (bz *Bezier[V]) Init(p int) { bz.SetDegree(p) }

// SetDegree implements [Spline]. The degree is replaced the next time
// control points are set.
func (bz *Bezier[V]) SetDegree(p int) { bz.p = p }

// Degree implements [Spline].
func (bz *Bezier[V]) Degree() int { return bz.p }

// SetControlPoints replaces the control points with a copy of c and sets the
// degree to len(c)-1. At least two control points are required.
func (bz *Bezier[V]) SetControlPoints(c []V) error {
	if len(c) == 0 {
		return ErrEmptyControlPoints
	}
	if len(c) < 2 {
		return fmt.Errorf("%d control points: %w", len(c), ErrInsufficientControlPoints)
	}
	if err := checkDims(c); err != nil {
		return err
	}
	b, err := binomialRow(len(c) - 1)
	if err != nil {
		return err
	}
	bz.p = len(c) - 1
	bz.c = slices.Clone(c)
	bz.b = b
	return nil
}

// ControlPoints returns a copy of the control points.
func (bz *Bezier[V]) ControlPoints() []V { return slices.Clone(bz.c) }

// Evaluate implements [Spline]. It replaces the control points with c and
// samples the curve at n uniformly spaced parameters.
func (bz *Bezier[V]) Evaluate(c []V, n int, includeEnd bool) ([]V, error) {
	if len(c) == 0 {
		return nil, ErrEmptyControlPoints
	}
	xs, err := Linspace(0, 1, n, includeEnd)
	if err != nil {
		return nil, err
	}
	if err := bz.SetControlPoints(c); err != nil {
		return nil, err
	}

	out := make([]V, n)
	for i, x := range xs {
		out[i] = bz.eval(x)
	}
	return out, nil
}

// Eval evaluates the curve at x ∈ [0, 1], using the control points of the
// last call to [Bezier.SetControlPoints] or [Bezier.Evaluate].
func (bz *Bezier[V]) Eval(x float64) (V, error) {
	var zero V
	switch {
	case bz.p < 1:
		return zero, fmt.Errorf("degree %d: %w", bz.p, ErrInvalidDegree)
	case len(bz.c) == 0:
		return zero, ErrEmptyControlPoints
	case len(bz.c) != bz.p+1:
		return zero, fmt.Errorf("degree %d needs %d control points, have %d: %w",
			bz.p, bz.p+1, len(bz.c), ErrInsufficientControlPoints)
	case !(x >= 0 && x <= 1):
		return zero, fmt.Errorf("%g not in [0, 1]: %w", x, ErrParameterOutOfDomain)
	}
	return bz.eval(x), nil
}

func (bz *Bezier[V]) eval(x float64) V {
	var r V
	for i, c := range bz.c {
		// math.Pow(0, 0) is 1, which makes the end points exact.
		w := bz.b[i] * math.Pow(x, float64(i)) * math.Pow(1-x, float64(bz.p-i))
		r = r.Add(c.Mul(w))
	}
	return r
}
