// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colloc

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/mesh"
)

// MuCache is the μ-table and τ-table of spec.md §4.9: populated once
// after the mesh is fixed, it stores, for every collocation node
// τ_{ik+j}, the successive powers 1..k+1 of μ(τ) and of 1−μ(τ), so the
// assembler can fetch any power it needs (up to the segment degree
// n=k+1) by one slice index rather than recomputing it. Row r is
// built from row r−1 by one multiplication, per spec.md §4.9 ("row-r
// entries are row-0 multiplied by row-(r−1)").
type MuCache struct {
	k      int
	tau    []field.Scalar // flat, index i*k+j, j=0..k-1
	pow    [][]field.Scalar
	invPow [][]field.Scalar
}

// newMuCache builds the table for the l·k collocation nodes of m,
// mapped from the k Gauss-Legendre abscissae nodes (in (-1,1)) by
// spec.md §3: τ_{ik+j} = midpoint + halfwidth·ρ_j.
func newMuCache(F field.Field, k int, m mesh.Mesh, nodes []field.Scalar) *MuCache {
	l := m.L()
	c := &MuCache{
		k:      k,
		tau:    make([]field.Scalar, l*k),
		pow:    make([][]field.Scalar, l*k),
		invPow: make([][]field.Scalar, l*k),
	}
	one := F.One()
	two := F.FromInt64(2)
	for i := 0; i < l; i++ {
		xi0, xi1 := m.At(i), m.At(i+1)
		mid := xi0.Add(xi1).Quo(two)
		halfWidth := xi1.Sub(xi0).Quo(two)
		for j := 0; j < k; j++ {
			tau := mid.Add(halfWidth.Mul(nodes[j]))
			mu := tau.Sub(xi0).Quo(xi1.Sub(xi0))
			muInv := one.Sub(mu)

			idx := i*k + j
			c.tau[idx] = tau
			// Rows cache powers 1..k+1: the assembler's Bernstein basis
			// formulas need exponents up to degree n=k+1 (the segment
			// degree), one more than the collocation degree k.
			c.pow[idx] = powersRow(mu, k+1)
			c.invPow[idx] = powersRow(muInv, k+1)
		}
	}
	return c
}

func powersRow(base field.Scalar, k int) []field.Scalar {
	row := make([]field.Scalar, k)
	if k == 0 {
		return row
	}
	row[0] = base
	for r := 1; r < k; r++ {
		row[r] = row[r-1].Mul(base)
	}
	return row
}

// Tau returns τ_{ik+j}, i=0..l-1, j=0..k-1 (0-indexed j, i.e. the
// spec's j-1).
func (c *MuCache) Tau(i, j int) field.Scalar {
	idx := c.index("MuCache.Tau", i, j)
	return c.tau[idx]
}

// Mu returns getMu(i,j,r,invers) of spec.md §4.7: (μ(τ_{ik+j}))^r if
// !invers, (1−μ(τ_{ik+j}))^r if invers. r=0 always returns 1.
func (c *MuCache) Mu(i, j, r int, invers bool) field.Scalar {
	idx := c.index("MuCache.Mu", i, j)
	if r == 0 {
		return c.tau[idx].Field().One()
	}
	if r < 0 || r > c.k+1 {
		panic(&errs.IndexOutOfRange{Op: "MuCache.Mu", Index: r, Bound: c.k + 2})
	}
	if invers {
		return c.invPow[idx][r-1]
	}
	return c.pow[idx][r-1]
}

func (c *MuCache) index(op string, i, j int) int {
	if j < 0 || j >= c.k {
		panic(&errs.IndexOutOfRange{Op: op, Index: j, Bound: c.k})
	}
	idx := i*c.k + j
	if idx < 0 || idx >= len(c.tau) {
		panic(&errs.IndexOutOfRange{Op: op, Index: idx, Bound: len(c.tau)})
	}
	return idx
}
