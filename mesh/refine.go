// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

// Refine produces an r-fold uniformly subdivided copy of m: each of m's
// l subintervals is split into r equal pieces, yielding r·l+1 knots.
func Refine(F field.Field, m Mesh, r int) (Mesh, error) {
	if r < 1 {
		return Mesh{}, &errs.InvalidArgument{Op: "mesh.Refine", Reason: "refinement factor r must be >= 1"}
	}
	l := m.L()
	xi := make([]field.Scalar, 0, r*l+1)
	xi = append(xi, m.xi[0])
	for i := 0; i < l; i++ {
		piece := uniformPiece(F, r, m.xi[i], m.xi[i+1])
		xi = append(xi, piece.xi[1:]...)
	}
	return newFromKnots(xi), nil
}
