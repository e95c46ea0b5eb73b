// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gausslegendre produces Gauss-Legendre quadrature/collocation
// nodes as eigenvalues of the symmetric tridiagonal Jacobi matrix of
// spec.md §4.2.
//
// Grounded on the fixed-node-count generator shape of gonum's
// quad.Hermite.FixedLocations (a quadrature family builds its own
// node/weight table for a requested count) and on mat.EigenSym's
// Factorize-then-Values idiom for turning a matrix into sorted
// eigenvalues; unlike Hermite's cached/asymptotic tables, this package's
// nodes are produced freshly every call by tridiag.Eigenvalues, since the
// collocation degree k is typically tiny (≤ 12 per spec.md §8 Testable
// Property 8) and the eigensolver is exact in the caller's field.Field
// rather than limited to a precomputed float64 table.
package gausslegendre

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/tridiag"
)

// Nodes returns the k Gauss-Legendre nodes ρ_1 < ... < ρ_k in (-1,1), the
// eigenvalues of the k×k symmetric tridiagonal Jacobi matrix with zero
// main diagonal and sub/super-diagonal β_j = j/sqrt(4j²-1), j=1..k-1.
//
// Nodes panics if k < 1 (an InvalidArgument condition the caller is
// expected to have already validated, since k is a compile-time-known
// collocation degree in every caller of this package).
func Nodes(F field.Field, k int) ([]field.Scalar, error) {
	if k < 1 {
		panic(&errs.InvalidArgument{Op: "gausslegendre.Nodes", Reason: "k must be >= 1"})
	}

	d := make([]field.Scalar, k)
	e := make([]field.Scalar, k)
	for i := range d {
		d[i] = F.Zero()
	}
	four := F.FromInt64(4)
	one := F.One()
	for j := 1; j <= k-1; j++ {
		jf := F.FromInt64(int64(j))
		denom := four.Mul(jf).Mul(jf).Sub(one).Sqrt()
		e[j-1] = jf.Quo(denom)
	}
	// The k-th entry is the driver's formal "extra" term (spec.md §4.2);
	// it is never read by tridiag.Eigenvalues but must exist to keep d
	// and e the same length.
	e[k-1] = F.Zero()

	return tridiag.Eigenvalues(F, d, e)
}
