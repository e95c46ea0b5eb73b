// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh builds the layer-adapted knot sequences ξ of spec.md §4.4:
// uniform, Shishkin (convection and reaction variants), Bakhvalov, and
// r-fold uniform refinement.
//
// Grounded on the Fitter/Predictor constructor idiom of gonum's
// interp package (a constructor validates its inputs by panicking with a
// named string constant, then builds an immutable value), generalized
// from float64 to field.Scalar and from interpolation data to a strictly
// increasing knot sequence. Unlike interp, the constructors here do not
// panic on bad input: they return an *errs.InvalidArgument error.
package mesh

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

const (
	invalidIntervalCount = "interval count l must be >= 1"
	nonAscendingBounds   = "s must be strictly less than t"
)

// Mesh is an immutable, strictly increasing knot sequence ξ_0=s < ξ_1 <
// ... < ξ_l=t over a field.Field.
type Mesh struct {
	xi []field.Scalar
}

// L returns the number of subintervals.
func (m Mesh) L() int { return len(m.xi) - 1 }

// Knots returns a clone of the knot sequence, per spec.md §3's "cloned on
// export" lifetime rule.
func (m Mesh) Knots() []field.Scalar {
	out := make([]field.Scalar, len(m.xi))
	copy(out, m.xi)
	return out
}

// At returns the i-th knot, 0 <= i <= L().
func (m Mesh) At(i int) field.Scalar { return m.xi[i] }

// newFromKnots validates and wraps a freshly computed knot slice. It
// panics if the monotonicity invariant of spec.md §3 ("ξ_i − ξ_{i−1} > 0
// ∀ i") does not hold; every constructor in this package is expected to
// have built xi correctly, so a violation here indicates a bug in the
// constructor, not a user input error.
func newFromKnots(xi []field.Scalar) Mesh {
	for i := 1; i < len(xi); i++ {
		if !xi[i].Greater(xi[i-1]) {
			panic("mesh: generated knots are not strictly increasing")
		}
	}
	return Mesh{xi: xi}
}

// validateBounds checks the common l>=1, s<t precondition of spec.md §6
// shared by every mesh constructor, returning an *errs.InvalidArgument on
// failure so callers can recover from bad input rather than crash.
func validateBounds(op string, l int, s, t field.Scalar) error {
	if l < 1 {
		return &errs.InvalidArgument{Op: op, Reason: invalidIntervalCount}
	}
	if !t.Greater(s) {
		return &errs.InvalidArgument{Op: op, Reason: nonAscendingBounds}
	}
	return nil
}
