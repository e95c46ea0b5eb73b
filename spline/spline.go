// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spline assembles Bézier segments into the piecewise spline
// g of spec.md §4.6: an ordered sequence of l segments plus the
// length-(l+1) knot array, with segment i's domain [ξ_i, ξ_{i+1}].
//
// Grounded on gonum's interp.PiecewiseLinear / PiecewiseCubic pair
// (interp/interp.go, interp/cubic.go): both hold a knot vector plus
// one coefficient set per segment and dispatch Predict/
// PredictDerivative through the package-level findSegment helper,
// a sort.Search binary search over the knot vector. This package
// reuses that exact dispatch idiom, generalized from float64 knots to
// field.Scalar knots and from PiecewiseCubic's fixed basis to
// bezier.Segment.
package spline

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/numgo/bezcol/bezier"
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

// Spline is the piecewise Bernstein-Bézier spline g of spec.md §4.6.
type Spline struct {
	knots    []field.Scalar
	segments []bezier.Segment
}

// New builds a Spline from l segments and their shared length-(l+1)
// knot vector. It panics if len(knots) != len(segments)+1, a
// programmer error: every caller in this module (bezcol.Solve) is
// expected to build these two slices together.
func New(knots []field.Scalar, segments []bezier.Segment) Spline {
	if len(knots) != len(segments)+1 {
		panic("spline: len(knots) must equal len(segments)+1")
	}
	k := make([]field.Scalar, len(knots))
	copy(k, knots)
	segs := make([]bezier.Segment, len(segments))
	copy(segs, segments)
	return Spline{knots: k, segments: segs}
}

// L returns the number of segments.
func (g Spline) L() int { return len(g.segments) }

// Knots returns a clone of the knot vector.
func (g Spline) Knots() []field.Scalar {
	out := make([]field.Scalar, len(g.knots))
	copy(out, g.knots)
	return out
}

// findSegment returns the index of the segment whose domain contains
// x, left-extending below ξ_0 to segment 0 and right-extending above
// ξ_l to segment l−1, per spec.md §4.6. It is the binary-search
// analogue of gonum interp's package-level findSegment.
func (g Spline) findSegment(x field.Scalar) int {
	n := len(g.segments)
	// i is the index of the first knot strictly greater than x.
	i := sort.Search(len(g.knots), func(i int) bool {
		return g.knots[i].Greater(x)
	})
	switch {
	case i <= 0:
		return 0
	case i >= n+1:
		return n - 1
	default:
		return i - 1
	}
}

// Value evaluates g(x).
func (g Spline) Value(x field.Scalar) field.Scalar {
	return g.segments[g.findSegment(x)].Value(x)
}

// Derivative evaluates the ν-th derivative of g at x.
func (g Spline) Derivative(x field.Scalar, nu int) field.Scalar {
	return g.segments[g.findSegment(x)].Derivative(x, nu)
}

// Sample evaluates g at each of xs and returns the result as a
// column vector, the gonum/mat interop hook of spec.md §2: downstream
// code that wants to plot or further manipulate a solved spline with
// gonum's linear algebra can consume this without reimplementing
// segment dispatch.
func (g Spline) Sample(xs []float64) (*mat.Dense, error) {
	if len(g.segments) == 0 {
		return nil, &errs.InvalidArgument{Op: "spline.Sample", Reason: "spline has no segments"}
	}
	F := g.knots[0].Field()
	out := mat.NewDense(len(xs), 1, nil)
	for i, x := range xs {
		out.Set(i, 0, g.Value(F.FromFloat64(x)).Float64())
	}
	return out, nil
}
