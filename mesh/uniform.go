// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/numgo/bezcol/field"

// Uniform builds ξ_i = s + i·(t−s)/l, i=0..l, by additive accumulation
// (ξ_i = ξ_{i−1} + c) rather than repeated multiplication, to minimize
// roundoff per spec.md §4.4.
func Uniform(F field.Field, l int, s, t field.Scalar) (Mesh, error) {
	if err := validateBounds("mesh.Uniform", l, s, t); err != nil {
		return Mesh{}, err
	}
	return uniformPiece(F, l, s, t), nil
}

// uniformPiece builds a plain l-interval uniform mesh over [s,t] without
// re-validating l and bounds; used internally by the Shishkin and
// Bakhvalov constructors to stitch their piecewise-uniform segments
// together.
func uniformPiece(F field.Field, l int, s, t field.Scalar) Mesh {
	if l == 0 {
		// Degenerate zero-width fragment used only by the Shishkin/Bakhvalov
		// stitching helpers when a layer collapses to a single knot.
		return Mesh{xi: []field.Scalar{s}}
	}
	step := t.Sub(s).Quo(F.FromInt64(int64(l)))
	xi := make([]field.Scalar, l+1)
	xi[0] = s
	for i := 1; i < l; i++ {
		xi[i] = xi[i-1].Add(step)
	}
	xi[l] = t
	return newFromKnots(xi)
}
