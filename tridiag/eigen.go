// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tridiag implements the implicit-QL-with-Wilkinson-shift
// eigensolver of spec.md §4.3 for symmetric tridiagonal matrices with a
// zero main diagonal, entirely in field.Scalar arithmetic.
//
// Grounded on gonum's native/dsteqr.go, which implements the full
// LAPACK Dsteqr (QL/QR branch selection, submatrix scaling, optional
// eigenvector accumulation via Dlartg/Dlasr rotations) over float64. The
// spec calls for the simpler, unscaled classic implicit-QL sweep (the
// algorithm LAPACK's Dsteqr itself specializes from) run in F-native
// arithmetic rather than float64, so this file reuses dsteqr.go's overall
// shape — find the smallest negligible subdiagonal, form a Wilkinson
// shift, chase it down with plane rotations, cap sweeps per eigenvalue,
// sort ascending at the end — without its LAPACK-specific scaling and
// QR-direction branch, and without eigenvector accumulation (this module
// only ever needs the eigenvalues, for Gauss-Legendre node placement).
package tridiag

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/internal/trace"
)

// maxSweeps is the hard per-eigenvalue sweep cap of spec.md §4.3 and §9.
const maxSweeps = 30

// Eigenvalues computes the eigenvalues of the symmetric tridiagonal matrix
// with main diagonal d and off-diagonal e, both length n, returned sorted
// ascending. e[n-1] is the driver's formal "extra" padding term described
// in spec.md §4.2 and is never read.
//
// d and e are not modified; Eigenvalues works on internal copies.
//
// Eigenvalues returns errs.ErrConvergenceFailed if any eigenvalue fails
// to converge within maxSweeps QL sweeps.
func Eigenvalues(F field.Field, d, e []field.Scalar) ([]field.Scalar, error) {
	n := len(d)
	if len(e) != n {
		return nil, &errs.DimensionMismatch{Op: "tridiag.Eigenvalues", Got: len(e), Expected: n}
	}
	if n == 0 {
		return nil, nil
	}

	dd := make([]field.Scalar, n)
	ee := make([]field.Scalar, n)
	copy(dd, d)
	copy(ee, e)
	if n > 0 {
		ee[n-1] = F.Zero()
	}

	two := F.FromInt64(2)
	one := F.One()

	for l := 0; l < n; l++ {
		sweeps := 0
		for {
			m := l
			for ; m < n-1; m++ {
				dSum := dd[m].Abs().Add(dd[m+1].Abs())
				// dsteqr.go tests negligibility by adding e(m) into dSum
				// and checking whether the sum changed. Here e(m) is
				// compared directly against one ULP above dSum at the
				// field's working precision, obtained with NextAfter;
				// e(m) counts as negligible when |e(m)| is at most that
				// ULP, a threshold within a factor of two of the one the
				// addition test applies.
				ulp := dSum.NextAfter(dSum.Add(one)).Sub(dSum)
				if !ee[m].Abs().Greater(ulp) {
					break
				}
			}
			if m == l {
				break
			}

			sweeps++
			if sweeps > maxSweeps {
				return nil, errs.ErrConvergenceFailed
			}
			trace.Log.Debug().Int("eigenvalue", l).Int("sweep", sweeps).Msg("tridiag QL sweep")

			q := dd[l+1].Sub(dd[l]).Quo(two.Mul(ee[l]))
			t := one.Add(q.Mul(q)).Sqrt()
			var denom field.Scalar
			if q.Less(F.Zero()) {
				denom = q.Sub(t)
			} else {
				denom = q.Add(t)
			}
			q = dd[m].Sub(dd[l]).Add(ee[l].Quo(denom))

			s := one
			c := one
			p := F.Zero()

			for i := m - 1; i >= l; i-- {
				f := s.Mul(ee[i])
				b := c.Mul(ee[i])
				r := f.Mul(f).Add(q.Mul(q)).Sqrt()
				ee[i+1] = r
				if r.IsZero() {
					dd[i+1] = dd[i+1].Sub(p)
					ee[m] = F.Zero()
					break
				}
				s = f.Quo(r)
				c = q.Quo(r)
				q = dd[i+1].Sub(p)
				r = dd[i].Sub(q).Mul(s).Add(two.Mul(c).Mul(b))
				p = s.Mul(r)
				dd[i+1] = q.Add(p)
				q = c.Mul(r).Sub(b)
			}
			dd[l] = dd[l].Sub(p)
			ee[l] = q
			ee[m] = F.Zero()
		}
	}

	sortAscending(dd)
	return dd, nil
}

// sortAscending is a stable insertion sort, matching spec.md §4.3's "sort
// ascending (stable insertion)" — n is small (the collocation degree) so
// this is never a performance concern.
func sortAscending(d []field.Scalar) {
	for i := 1; i < len(d); i++ {
		v := d[i]
		j := i - 1
		for j >= 0 && v.Less(d[j]) {
			d[j+1] = d[j]
			j--
		}
		d[j+1] = v
	}
}
