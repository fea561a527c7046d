package spline

// Spline describes curve algorithms that sample a curve from a sequence of
// control points. Implementations are [BSpline] and [Bezier].
type Spline[V Vector[V]] interface {
	// Init prepares the spline for use with degree p.
	Init(p int)
	// SetDegree sets the degree of the spline.
	SetDegree(p int)
	// Degree returns the degree of the spline.
	Degree() int
	// Evaluate samples the curve defined by the control points c at n
	// uniformly spaced parameters in [0, 1], or in [0, 1) if includeEnd is
	// false. Either all n points are returned or an error is.
	Evaluate(c []V, n int, includeEnd bool) ([]V, error)
}

// Sample samples n points along the curve, including both end points.
func Sample[V Vector[V]](s Spline[V], c []V, n int) ([]V, error) {
	return s.Evaluate(c, n, true)
}
