// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bezcol computes Bernstein-Bézier collocation spline
// approximations of scalar linear two-point boundary value problems
//
//	−ε·y″(x) − p(x)·y′(x) + q(x)·y(x) = f(x),  x∈[s,t],  y(s)=η₁, y(t)=η₂
//
// on a user-chosen, optionally layer-adapted mesh, by orthogonal
// Gauss-Legendre collocation (package gausslegendre), assembled into
// an almost-block-diagonal linear system (package colloc) and solved
// by a specialized block banded solver (package blocksolve). The
// mesh variants of package mesh (uniform, Shishkin, Bakhvalov,
// refinement) target the boundary layers that appear as the
// perturbation parameter ε shrinks.
package bezcol

import (
	"github.com/numgo/bezcol/bezier"
	"github.com/numgo/bezcol/colloc"
	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/mesh"
	"github.com/numgo/bezcol/spline"
)

// Solve computes the Bézier collocation spline approximation of
//
//	−ε·y″ − p·y′ + q·y = f,  y(s)=η₁, y(t)=η₂
//
// on m, using collocation degree k (k Gauss-Legendre nodes per
// segment, segment polynomial degree k+1). Passing ε=−1 yields
// y″−p·y′+q·y=f, as colloc.Assemble documents.
//
// Solve returns an InvalidArgument, DimensionMismatch, or
// ConvergenceFailed error (propagated from the Gauss-Legendre node
// computation) without building a system, or a SingularMatrix error
// from the block banded solver if elimination hits a zero pivot.
func Solve(F field.Field, k int, m mesh.Mesh, eps, eta1, eta2 field.Scalar, p, q, f func(field.Scalar) field.Scalar) (spline.Spline, error) {
	system, err := colloc.Assemble(F, k, m, eps, eta1, eta2, p, q, f)
	if err != nil {
		return spline.Spline{}, err
	}

	x, err := system.A.Solve(system.V)
	if err != nil {
		return spline.Spline{}, err
	}

	l := m.L()
	width := k + 2
	segments := make([]bezier.Segment, l)
	for i := 0; i < l; i++ {
		ordinates := x[i*width : (i+1)*width]
		segments[i] = bezier.NewSegment(F, m.At(i), m.At(i+1), ordinates)
	}
	return spline.New(m.Knots(), segments), nil
}
