// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colloc builds the Bézier collocation linear system of
// spec.md §4.7: the almost-block-diagonal matrix A and right-hand
// side v whose solution is the Bézier ordinates of the approximating
// spline.
//
// Grounded on gonum's mat/band.go row-compressed storage convention
// (a banded matrix only ever materializes the nonzero diagonal band,
// addressed by a row-relative offset) for the blocksolve.Banded
// target this package fills in, and on interp's constructor-validates
// pattern (panicking or erroring on a malformed k/mesh combination
// before doing any work) for Assemble's own argument checking.
package colloc

import (
	"github.com/numgo/bezcol/blocksolve"
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/gausslegendre"
	"github.com/numgo/bezcol/mesh"
)

// System is the collocation linear system of spec.md §3: a compact
// almost-block-diagonal matrix A and right-hand side V, N=l·(k+2)
// rows, one unknown per Bézier ordinate b_{i,j}.
type System struct {
	A *blocksolve.Banded
	V []field.Scalar
}

// Assemble builds the collocation system for
//
//	−ε·y″ − p·y′ + q·y = f,  y(s)=η₁, y(t)=η₂
//
// on mesh m with collocation degree k (k nodes per segment, segment
// degree k+1), per spec.md §4.7. Passing ε=−1 yields
// y″ − p·y′ + q·y = f; with p≡0 that is y″ + q·y = f.
func Assemble(F field.Field, k int, m mesh.Mesh, eps, eta1, eta2 field.Scalar, p, q, f func(field.Scalar) field.Scalar) (*System, error) {
	const op = "colloc.Assemble"
	if k < 1 {
		return nil, &errs.InvalidArgument{Op: op, Reason: "collocation degree k must be >= 1"}
	}
	l := m.L()

	nodes, err := gausslegendre.Nodes(F, k)
	if err != nil {
		return nil, err
	}
	cache := newMuCache(F, k, m, nodes)

	n := k + 1 // Bézier segment degree
	colCount := k + 2
	if k == 1 && l > 1 {
		colCount = k + 3
	}

	structure := buildStructure(k, l)
	A := blocksolve.NewBanded(F, colCount, structure)
	N := l * (k + 2)
	v := make([]field.Scalar, N)

	A.Set(0, 0, F.One())
	v[0] = eta1

	A.Set(N-1, k+1, F.One())
	v[N-1] = eta2

	for i := 0; i < l; i++ {
		xi0, xi1 := m.At(i), m.At(i+1)
		delta := xi1.Sub(xi0)
		delta2 := delta.Mul(delta)
		rowBase := i * (k + 2)

		for j := 0; j < k; j++ {
			tau := cache.Tau(i, j)
			pJ := p(tau)
			qJ := q(tau)
			row := rowBase + 1 + j

			for c := 0; c <= n; c++ {
				val := bernsteinValue(F, cache, i, j, n, c)
				d1 := bernsteinDeriv1(F, cache, i, j, n, c)
				d2 := bernsteinDeriv2(F, cache, i, j, n, c)

				coeff := eps.Neg().Mul(d2).Quo(delta2)
				coeff = coeff.Sub(pJ.Mul(d1).Quo(delta))
				coeff = coeff.Add(qJ.Mul(val))
				A.Set(row, c, coeff)
			}
			v[row] = f(tau)
		}
	}

	zero := F.Zero()
	one := F.One()
	for g := 0; g < l-1; g++ {
		deltaG := m.At(g + 1).Sub(m.At(g))
		deltaG1 := m.At(g + 2).Sub(m.At(g + 1))
		rowC1 := (g+1)*(k+2) - 1
		rowC0 := (g + 1) * (k + 2)

		A.Set(rowC1, 0, deltaG1)
		A.Set(rowC1, 1, deltaG.Add(deltaG1).Neg())
		A.Set(rowC1, 2, zero)
		A.Set(rowC1, 3, deltaG)
		v[rowC1] = zero

		A.Set(rowC0, 0, zero)
		A.Set(rowC0, 1, one)
		A.Set(rowC0, 2, one.Neg())
		A.Set(rowC0, 3, zero)
		v[rowC0] = zero
	}

	return &System{A: A, V: v}, nil
}

// buildStructure builds the structure array of spec.md §3: per-block
// (rows, permissible pivot steps) metadata the block banded solver
// consumes.
func buildStructure(k, l int) []blocksolve.Block {
	if l == 1 {
		return []blocksolve.Block{{Rows: k + 2, PivotSteps: k + 2}}
	}
	st := make([]blocksolve.Block, 0, 2*l)
	st = append(st, blocksolve.Block{Rows: k + 1, PivotSteps: k})
	for g := 1; g <= l-2; g++ {
		st = append(st, blocksolve.Block{Rows: 2, PivotSteps: 2})
		st = append(st, blocksolve.Block{Rows: k, PivotSteps: k})
	}
	st = append(st, blocksolve.Block{Rows: 2, PivotSteps: 2})
	st = append(st, blocksolve.Block{Rows: k + 1, PivotSteps: k + 2})
	return st
}
