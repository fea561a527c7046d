package spline

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector describes the control point types that curves can be evaluated
// over. Curve evaluation only needs affine combinations of control points,
// so addition and scaling are sufficient.
//
// The zero value of a Vector must be the additive identity.
type Vector[V any] interface {
	Add(o V) V
	Mul(f float64) V
}

// dimensioner is implemented by vector types whose dimension is only known at
// run time, such as [VecN].
type dimensioner interface {
	Dim() int
}

var _ Vector[VecN] = VecN{}

// VecN is a vector of arbitrary dimension. It should be used when neither
// [Vec2] nor [Vec3] fit.
//
// VecN is immutable. The zero value has dimension 0 and acts as the zero
// vector of every dimension.
type VecN struct {
	c []float64
}

// VecOf returns a vector with the given components.
func VecOf(c ...float64) VecN {
	return VecN{c: slices.Clone(c)}
}

// Dim returns the number of components of v.
func (v VecN) Dim() int { return len(v.c) }

// At returns the ith component of v.
func (v VecN) At(i int) float64 { return v.c[i] }

// Components returns a copy of v's components.
func (v VecN) Components() []float64 { return slices.Clone(v.c) }

func (v VecN) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, f := range v.c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	sb.WriteString("⟩")
	return sb.String()
}

// Add adds two vectors. Adding vectors of different non-zero dimensions
// panics.
func (v VecN) Add(o VecN) VecN {
	switch {
	case v.c == nil:
		return o
	case o.c == nil:
		return v
	case len(v.c) != len(o.c):
		panic(fmt.Sprintf("spline: adding vectors of dimension %d and %d", len(v.c), len(o.c)))
	}
	return VecN{c: floats.AddTo(make([]float64, len(v.c)), v.c, o.c)}
}

func (v VecN) Mul(f float64) VecN {
	if v.c == nil {
		return v
	}
	return VecN{c: floats.ScaleTo(make([]float64, len(v.c)), f, v.c)}
}

// checkDims verifies that all control points agree in dimension, for vector
// types whose dimension isn't fixed by the type.
func checkDims[V any](c []V) error {
	if len(c) == 0 {
		return nil
	}
	first, ok := any(c[0]).(dimensioner)
	if !ok {
		return nil
	}
	want := first.Dim()
	for i, v := range c[1:] {
		if got := any(v).(dimensioner).Dim(); got != want {
			return fmt.Errorf("control point %d has dimension %d, want %d: %w", i+1, got, want, ErrDimensionMismatch)
		}
	}
	return nil
}
