// Package spline samples points along parametric curves: B-splines, evaluated
// with De Boor's algorithm, and Bézier curves, evaluated by Bernstein
// blending.
//
// # Control points
//
// Curves are defined over control points of a fixed dimension. Any type that
// satisfies [Vector] can serve as a control point; the package provides
// [Vec2] for planar curves, [Vec3] for space curves, and [VecN] for any other
// dimension. Control points are passed as plain slices. Their order defines
// the shape of the curve.
//
// # Splines
//
// [Spline] is the interface shared by the curve algorithms. It allows
// sampling n points along a curve without knowing which algorithm is used:
//
//	var s spline.Spline[spline.Vec2] = spline.NewBSpline[spline.Vec2](3)
//	pts, err := s.Evaluate(ctrl, 100, true)
//
// Samples are uniformly spaced in the parameter t ∈ [0, 1]. If the end point
// isn't included, the samples span t ∈ [0, 1) instead, which is convenient
// for joining several curves without duplicating points.
//
// [BSpline] is a B-spline of configurable degree p over a clamped uniform
// knot vector (see [ClampedKnots]). It requires at least p+1 control points.
// Because the knot vector is clamped, the curve starts at the first and ends
// at the last control point. The embedded [DeBoor] engine can also be used
// on its own, for example with a custom [KnotVector] with repeated interior
// knots.
//
// [Bezier] is a Bézier curve. Its degree is always one less than its number
// of control points, and setting control points overrides any configured
// degree.
//
// # Errors
//
// All entry points validate their inputs and return errors instead of
// panicking. Failures can be told apart with [errors.Is] and the Err
// variables, such as [ErrInsufficientControlPoints]. Evaluation either
// produces all requested points or none.
//
// # Concurrency
//
// The curve types keep the state of their last evaluation and must not be
// used by multiple goroutines at once. Separate instances share nothing and
// can be used in parallel.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [De Boor's algorithm]
//   - The NURBS Book, by Les Piegl and Wayne Tiller
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [De Boor's algorithm]: https://en.wikipedia.org/wiki/De_Boor%27s_algorithm
package spline
