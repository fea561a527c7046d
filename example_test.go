package spline_test

import (
	"errors"
	"fmt"

	"honnef.co/go/spline"
)

func ExampleBSpline_Evaluate() {
	// A B-spline of degree 1 traces its control polygon.
	s := spline.NewBSpline[spline.Vec2](1)
	pts, err := s.Evaluate([]spline.Vec2{
		spline.Vec(0, 0),
		spline.Vec(1, 1),
		spline.Vec(2, 0),
	}, 5, true)
	if err != nil {
		panic(err)
	}
	for _, pt := range pts {
		fmt.Println(pt)
	}
	// Output:
	// ⟨0, 0⟩
	// ⟨0.5, 0.5⟩
	// ⟨1, 1⟩
	// ⟨1.5, 0.5⟩
	// ⟨2, 0⟩
}

func ExampleBezier_Evaluate() {
	var bz spline.Bezier2D
	pts, err := bz.Evaluate([]spline.Vec2{
		spline.Vec(0, 0),
		spline.Vec(1, 2),
		spline.Vec(2, 0),
	}, 3, true)
	if err != nil {
		panic(err)
	}
	fmt.Println("degree:", bz.Degree())
	for _, pt := range pts {
		fmt.Println(pt)
	}
	// Output:
	// degree: 2
	// ⟨0, 0⟩
	// ⟨1, 1⟩
	// ⟨2, 0⟩
}

func ExampleSpline() {
	ctrl := []spline.Vec2{
		spline.Vec(0, 0),
		spline.Vec(1, 1),
		spline.Vec(2, 1),
		spline.Vec(3, 0),
	}

	// Both algorithms interpolate the first and last control points.
	for _, s := range []spline.Spline[spline.Vec2]{
		spline.NewBSpline[spline.Vec2](2),
		&spline.Bezier2D{},
	} {
		pts, err := spline.Sample(s, ctrl, 10)
		if err != nil {
			panic(err)
		}
		fmt.Println(pts[0], pts[len(pts)-1])
	}
	// Output:
	// ⟨0, 0⟩ ⟨3, 0⟩
	// ⟨0, 0⟩ ⟨3, 0⟩
}

func ExampleKnotVector_Find() {
	u, err := spline.ClampedKnots(4, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(u)
	k, s, _ := u.Find(0.5)
	fmt.Println(k, s)
	// Output:
	// [0 0 0 0.5 1 1 1]
	// 3 1
}

func ExampleBSpline_Evaluate_errors() {
	s := spline.NewBSpline[spline.Vec2](3)
	_, err := s.Evaluate([]spline.Vec2{spline.Vec(0, 0), spline.Vec(1, 1)}, 10, true)
	fmt.Println(errors.Is(err, spline.ErrInsufficientControlPoints))
	// Output:
	// true
}
