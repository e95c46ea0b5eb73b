// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/field/bigfloat"
)

func scalars(F field.Field, xs ...float64) []field.Scalar {
	out := make([]field.Scalar, len(xs))
	for i, x := range xs {
		out[i] = F.FromFloat64(x)
	}
	return out
}

// A linear segment (n=1) must reproduce a straight line exactly.
func TestSegmentLinearReproducesLine(t *testing.T) {
	F := bigfloat.New(30)
	seg := NewSegment(F, F.FromFloat64(0), F.FromFloat64(2), scalars(F, 1, 5))

	for _, x := range []float64{0, 0.5, 1, 1.5, 2} {
		got := seg.Value(F.FromFloat64(x)).Float64()
		want := 1 + 2*x // linear interpolation between (0,1) and (2,5)
		assert.InDelta(t, want, got, 1e-9)
	}
}

// A segment whose ordinates are all equal to c is the constant function c,
// and all its derivatives vanish.
func TestSegmentConstant(t *testing.T) {
	F := bigfloat.New(30)
	seg := NewSegment(F, F.FromFloat64(0), F.FromFloat64(1), scalars(F, 3, 3, 3, 3))

	for _, x := range []float64{0, 0.3, 0.7, 1} {
		got := seg.Value(F.FromFloat64(x)).Float64()
		assert.InDelta(t, 3, got, 1e-9)
	}
	for nu := 1; nu <= 3; nu++ {
		got := seg.Derivative(F.FromFloat64(0.4), nu).Float64()
		assert.InDelta(t, 0, got, 1e-9)
	}
}

// For g(x) = x^3 expressed in the Bernstein basis of degree 3 on [0,1],
// the ordinates are b_j = j/n choose-weighted... the standard conversion
// of the monomial x^3 to Bernstein form of degree 3 gives ordinates
// (0, 0, 0, 1) since x^3 = B_3^3(x).
func TestSegmentMatchesCubicMonomial(t *testing.T) {
	F := bigfloat.New(30)
	seg := NewSegment(F, F.FromFloat64(0), F.FromFloat64(1), scalars(F, 0, 0, 0, 1))

	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := seg.Value(F.FromFloat64(x)).Float64()
		want := x * x * x
		assert.InDelta(t, want, got, 1e-9)
	}

	// d/dx x^3 = 3x^2
	for _, x := range []float64{0.25, 0.5, 0.75} {
		got := seg.Derivative(F.FromFloat64(x), 1).Float64()
		want := 3 * x * x
		assert.InDelta(t, want, got, 1e-8)
	}
	// d2/dx2 x^3 = 6x
	for _, x := range []float64{0.25, 0.5, 0.75} {
		got := seg.Derivative(F.FromFloat64(x), 2).Float64()
		want := 6 * x
		assert.InDelta(t, want, got, 1e-8)
	}
	// d3/dx3 x^3 = 6 (exercises the general nu>=3 path)
	got := seg.Derivative(F.FromFloat64(0.5), 3).Float64()
	assert.InDelta(t, 6, got, 1e-8)
	// d4/dx4 x^3 = 0 via the nu > n short-circuit.
	got4 := seg.Derivative(F.FromFloat64(0.5), 4).Float64()
	assert.InDelta(t, 0, got4, 1e-8)
}

// Cross-check the general nu>=3 formula against the branch-explicit
// nu=1,2 formulas on an overlapping case (nu=2 computed both ways via a
// degree-5 segment, comparing case 2's result to generalDerivative).
func TestSegmentGeneralMatchesExplicitAtOverlap(t *testing.T) {
	F := bigfloat.New(30)
	seg := NewSegment(F, F.FromFloat64(-1), F.FromFloat64(1), scalars(F, 2, -1, 3, 0, 4, 1))

	x := F.FromFloat64(0.3)
	explicit := seg.Derivative(x, 2).Float64()
	general := seg.generalDerivative(x, 2).Float64()
	assert.InDelta(t, explicit, general, 1e-12)
}

func TestSegmentPanicsOnDegenerateInterval(t *testing.T) {
	F := bigfloat.New(30)
	assert.Panics(t, func() {
		NewSegment(F, F.FromFloat64(1), F.FromFloat64(1), scalars(F, 0, 1))
	})
}

func TestSegmentDerivativeNegativeOrderPanics(t *testing.T) {
	F := bigfloat.New(30)
	seg := NewSegment(F, F.FromFloat64(0), F.FromFloat64(1), scalars(F, 0, 1))
	assert.Panics(t, func() {
		seg.Derivative(F.FromFloat64(0.5), -1)
	})
}

func TestSegmentOrdinatesAndIntervalAccessors(t *testing.T) {
	F := bigfloat.New(30)
	b := scalars(F, 1, 2, 3)
	seg := NewSegment(F, F.FromFloat64(0), F.FromFloat64(1), b)

	s, tt := seg.Interval()
	require.InDelta(t, 0, s.Float64(), 1e-12)
	require.InDelta(t, 1, tt.Float64(), 1e-12)
	require.Equal(t, 2, seg.Degree())

	out := seg.Ordinates()
	require.Len(t, out, 3)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, out[i].Float64(), 1e-12)
	}

	// Mutating the returned clone must not affect the segment.
	out[0] = F.FromFloat64(math.Inf(1))
	assert.InDelta(t, 1, seg.Ordinates()[0].Float64(), 1e-12)
}
