package spline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("got error %v, want %v", err, target)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

var vecNComparer = cmp.Comparer(func(a, b VecN) bool {
	return floats.EqualApprox(a.c, b.c, 1e-9)
})

var (
	// Control points used throughout the tests.
	arch2 = []Vec2{Vec(0, 0), Vec(1, 1), Vec(2, 1), Vec(3, 0)}
	zig2  = []Vec2{Vec(0, 0), Vec(1, 2), Vec(2, 0), Vec(3, 2), Vec(4, 0)}
)
