package spline

import "fmt"

var _ Spline[Vec2] = (*BSpline[Vec2])(nil)

// BSpline is a clamped uniform B-spline of configurable degree, evaluated
// with De Boor's algorithm.
//
// The methods of the embedded [DeBoor] give access to the knot vector and to
// point-wise evaluation using the state left behind by the last call to
// [BSpline.Evaluate].
type BSpline[V Vector[V]] struct {
	DeBoor[V]
}

type (
	BSpline2D = BSpline[Vec2]
	BSpline3D = BSpline[Vec3]
)

// NewBSpline returns a B-spline of degree p.
func NewBSpline[V Vector[V]](p int) *BSpline[V] {
	s := &BSpline[V]{}
	s.Init(p)
	return s
}

// Init implements [Spline].
func (s *BSpline[V]) Init(p int) { s.SetDegree(p) }

// Evaluate implements [Spline]. It replaces the control points with c,
// regenerates the clamped knot vector, and samples the spline at n uniformly
// spaced parameters.
//
// A spline of degree p needs at least p+1 control points.
func (s *BSpline[V]) Evaluate(c []V, n int, includeEnd bool) ([]V, error) {
	if s.p < 1 {
		return nil, fmt.Errorf("degree %d: %w", s.p, ErrInvalidDegree)
	}
	if len(c) == 0 {
		return nil, ErrEmptyControlPoints
	}
	xs, err := Linspace(0, 1, n, includeEnd)
	if err != nil {
		return nil, err
	}
	if err := s.SetControlPoints(c); err != nil {
		return nil, err
	}
	if err := s.GenerateKnotVector(); err != nil {
		return nil, err
	}

	out := make([]V, n)
	for i, x := range xs {
		pt, err := s.eval(x)
		if err != nil {
			return nil, err
		}
		out[i] = pt
	}
	return out, nil
}
