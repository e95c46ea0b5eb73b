// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colloc

import (
	"github.com/numgo/bezcol/combin"
	"github.com/numgo/bezcol/field"
)

// bernsteinValue returns B_c^n(μ(τ_{ik+j})) = C(n,c)·μ^c·(1−μ)^{n−c},
// using the cached μ powers; out-of-range c (c<0 or c>n) is defined as
// zero, which lets bernsteinDeriv1/2 below recurse across the basis
// without boundary-case branches.
func bernsteinValue(F field.Field, cache *MuCache, i, j, n, c int) field.Scalar {
	if c < 0 || c > n {
		return F.Zero()
	}
	coeff := F.FromInt64(combin.Binomial(n, c))
	return coeff.Mul(cache.Mu(i, j, c, false)).Mul(cache.Mu(i, j, n-c, true))
}

// bernsteinDeriv1 returns d/dμ B_c^n(μ), via the standard Bernstein
// basis recurrence B_c^{n}'(μ) = n·(B_{c-1}^{n-1}(μ) − B_c^{n-1}(μ)),
// the same recurrence bezier.Segment's de Casteljau reduction realizes
// for a concrete control polygon; here it is applied directly to the
// basis function instead of to one segment's ordinates, since the
// assembler needs every column's coefficient, not one segment's value.
func bernsteinDeriv1(F field.Field, cache *MuCache, i, j, n, c int) field.Scalar {
	if n == 0 {
		return F.Zero()
	}
	nf := F.FromInt64(int64(n))
	return nf.Mul(bernsteinValue(F, cache, i, j, n-1, c-1).Sub(bernsteinValue(F, cache, i, j, n-1, c)))
}

// bernsteinDeriv2 returns d²/dμ² B_c^n(μ) via the degree-(n−2) analogue
// of bernsteinDeriv1's recurrence.
func bernsteinDeriv2(F field.Field, cache *MuCache, i, j, n, c int) field.Scalar {
	if n <= 1 {
		return F.Zero()
	}
	nf := F.FromInt64(int64(n))
	nm1 := F.FromInt64(int64(n - 1))
	two := F.FromInt64(2)
	term := bernsteinValue(F, cache, i, j, n-2, c-2).
		Sub(two.Mul(bernsteinValue(F, cache, i, j, n-2, c-1))).
		Add(bernsteinValue(F, cache, i, j, n-2, c))
	return nf.Mul(nm1).Mul(term)
}
