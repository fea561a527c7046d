package spline

import (
	"math"
	"testing"
)

func TestClampedKnots(t *testing.T) {
	tests := []struct {
		m, p int
		want KnotVector
	}{
		{4, 2, KnotVector{0, 0, 0, 0.5, 1, 1, 1}},
		{4, 3, KnotVector{0, 0, 0, 0, 1, 1, 1, 1}},
		{5, 1, KnotVector{0, 0, 0.25, 0.5, 0.75, 1, 1}},
		{2, 1, KnotVector{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ClampedKnots(tt.m, tt.p)
		if err != nil {
			t.Fatalf("ClampedKnots(%d, %d): %v", tt.m, tt.p, err)
		}
		if len(got) != tt.m+tt.p+1 {
			t.Errorf("ClampedKnots(%d, %d) has length %d, want %d", tt.m, tt.p, len(got), tt.m+tt.p+1)
		}
		diff(t, tt.want, got, approx)
	}
}

func TestClampedKnotsInvalid(t *testing.T) {
	_, err := ClampedKnots(4, 0)
	wantErr(t, err, ErrInvalidDegree)
	_, err = ClampedKnots(0, 2)
	wantErr(t, err, ErrEmptyControlPoints)
	_, err = ClampedKnots(3, 3)
	wantErr(t, err, ErrInsufficientControlPoints)
	_, err = ClampedKnots(1, 1)
	wantErr(t, err, ErrInsufficientControlPoints)
}

func TestKnotVectorFind(t *testing.T) {
	u := KnotVector{0, 0, 0, 0.5, 1, 1, 1}
	tests := []struct {
		x    float64
		k, s int
	}{
		{0, 2, 3},
		{0.25, 2, 0},
		{0.5, 3, 1},
		{0.75, 3, 0},
		{1, 6, 3},
	}
	for _, tt := range tests {
		k, s, err := u.Find(tt.x)
		if err != nil {
			t.Fatalf("Find(%g): %v", tt.x, err)
		}
		if k != tt.k || s != tt.s {
			t.Errorf("Find(%g) = (%d, %d), want (%d, %d)", tt.x, k, s, tt.k, tt.s)
		}
	}
}

func TestKnotVectorFindMultiplicity(t *testing.T) {
	// The multiplicity counts exact matches only, and the scan stops at the
	// first knot greater than x.
	tests := []struct {
		u    KnotVector
		x    float64
		k, s int
	}{
		// All knots equal.
		{KnotVector{1, 1, 1, 1}, 1, 3, 4},
		// Interior knot of multiplicity p+1 for p = 2.
		{KnotVector{0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1}, 0.5, 5, 3},
		// Interior knot of multiplicity p for p = 2.
		{KnotVector{0, 0, 0, 0.5, 0.5, 1, 1, 1}, 0.5, 4, 2},
		{KnotVector{0, 0, 0, 0.5, 0.5, 1, 1, 1}, math.Nextafter(0.5, 0), 2, 0},
		{KnotVector{0, 0, 0, 0.5, 0.5, 1, 1, 1}, math.Nextafter(0.5, 1), 4, 0},
	}
	for _, tt := range tests {
		k, s, err := tt.u.Find(tt.x)
		if err != nil {
			t.Fatalf("%v.Find(%g): %v", tt.u, tt.x, err)
		}
		if k != tt.k || s != tt.s {
			t.Errorf("%v.Find(%g) = (%d, %d), want (%d, %d)", tt.u, tt.x, k, s, tt.k, tt.s)
		}
	}
}

func TestKnotVectorFindOutOfDomain(t *testing.T) {
	u := KnotVector{0, 0, 1, 1}
	for _, x := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		_, _, err := u.Find(x)
		wantErr(t, err, ErrParameterOutOfDomain)
	}
	_, _, err := KnotVector(nil).Find(0)
	wantErr(t, err, ErrParameterOutOfDomain)
}

func TestKnotVectorMultiplicity(t *testing.T) {
	u := KnotVector{0, 0, 0, 0.5, 0.5, 1, 1, 1}
	for x, want := range map[float64]int{0: 3, 0.5: 2, 1: 3, 0.7: 0} {
		if got := u.Multiplicity(x); got != want {
			t.Errorf("Multiplicity(%g) = %d, want %d", x, got, want)
		}
	}
}

func TestKnotVectorValidate(t *testing.T) {
	if err := (KnotVector{0, 0, 0, 0.5, 0.5, 0.5, 1, 1, 1}).Validate(6, 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (KnotVector{0, 1, 2, 3, 4, 5, 6}).Validate(4, 2); err != nil {
		t.Errorf("unexpected error for unclamped knots: %v", err)
	}

	tests := []struct {
		u      KnotVector
		m, p   int
		target error
	}{
		{KnotVector{0, 0, 0, 0.5, 1, 1, 1}, 4, 0, ErrInvalidDegree},
		{KnotVector{0, 0, 0, 0.5, 1, 1, 1}, 5, 2, ErrKnotVectorMismatch},
		{KnotVector{0, 0, 0, 0.6, 0.4, 1, 1, 1}, 5, 2, ErrKnotVectorMismatch},
		{KnotVector{0, 0, 0, 0, 1, 1, 1}, 4, 2, ErrKnotVectorMismatch},
		{KnotVector{0, 0, 0, math.NaN(), 1, 1, 1}, 4, 2, ErrKnotVectorMismatch},
	}
	for _, tt := range tests {
		wantErr(t, tt.u.Validate(tt.m, tt.p), tt.target)
	}
}
