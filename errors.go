package spline

import "errors"

// Errors returned by the evaluation entry points. They are usually wrapped
// with additional context; use [errors.Is] to test for them.
var (
	// ErrInvalidDegree is returned when a curve is evaluated with a degree
	// less than 1.
	ErrInvalidDegree = errors.New("spline: degree must be at least 1")

	// ErrEmptyControlPoints is returned when a curve has no control points.
	ErrEmptyControlPoints = errors.New("spline: no control points")

	// ErrInsufficientControlPoints is returned when there are too few control
	// points for the degree. A B-spline of degree p needs at least p+1, a
	// Bézier curve at least 2.
	ErrInsufficientControlPoints = errors.New("spline: too few control points for degree")

	// ErrParameterOutOfDomain is returned when a parameter lies outside the
	// knot domain, or outside [0, 1] for Bézier curves.
	ErrParameterOutOfDomain = errors.New("spline: parameter out of domain")

	// ErrInvalidSampleCount is returned for sample counts below 1, and for a
	// single sample that is asked to include the end point.
	ErrInvalidSampleCount = errors.New("spline: invalid sample count")

	// ErrDegenerateKnotSpan is returned when the De Boor recurrence would
	// divide by a (near) zero knot span.
	ErrDegenerateKnotSpan = errors.New("spline: degenerate knot span")

	// ErrKnotVectorMismatch is returned when the knot vector doesn't match
	// the current degree and number of control points, for example because
	// it wasn't regenerated after either changed.
	ErrKnotVectorMismatch = errors.New("spline: knot vector doesn't match degree and control points")

	// ErrDimensionMismatch is returned when control points of different
	// dimensions are mixed.
	ErrDimensionMismatch = errors.New("spline: control points differ in dimension")

	// ErrInvalidArgument is returned by the combinatorics helpers for
	// negative or out of range arguments.
	ErrInvalidArgument = errors.New("spline: invalid argument")

	// ErrOverflow is returned when an integer result doesn't fit in an int.
	ErrOverflow = errors.New("spline: integer overflow")
)
