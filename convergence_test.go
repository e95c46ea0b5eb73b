// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezcol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/field/bigfloat"
	"github.com/numgo/bezcol/mesh"
)

// sampleMaxError evaluates two splines (or a spline and a closed-form
// reference) at the sample points xs and returns the largest absolute
// difference, the error measure the convergence scenarios below track.
func sampleMaxError(got func(float64) float64, want func(float64) float64, xs []float64) float64 {
	max := 0.0
	for _, x := range xs {
		d := math.Abs(got(x) - want(x))
		if d > max {
			max = d
		}
	}
	return max
}

// order computes the experimental convergence order of spec.md §8's S2:
// α_l = log(E_l/E_coarser) / log(1/2).
func order(finer, coarser float64) float64 {
	return math.Log(finer/coarser) / math.Log(0.5)
}

// S2: for the S1 problem (y″−4y=4cosh(1), exact solution
// u(x)=cosh(2x−1)−cosh(1)) at collocation degree k=2, the experimental
// order computed from l∈{1,2,4,8,16,32} converges to 2k=4 as l grows.
func TestScenarioS2ConvergenceOrder(t *testing.T) {
	const k = 2
	F := bigfloat.New(30)
	negOne := F.FromFloat64(-1)
	zero := F.Zero()
	e := F.E()
	f := F.FromFloat64(2).Mul(e.Add(e.Recip()))
	fFn := func(field.Scalar) field.Scalar { return f }
	qFn := constFn(F, -4)
	pFn := constFn(F, 0)

	exact := func(x float64) float64 {
		xs := F.FromFloat64(x)
		arg := F.FromInt64(2).Mul(xs).Sub(F.One())
		return arg.Cosh().Sub(F.One().Cosh()).Float64()
	}

	// A dense uniform grid, so the measured maximum does not depend on
	// where a handful of fixed points happen to fall inside each cell.
	xs := make([]float64, 1001)
	for i := range xs {
		xs[i] = float64(i) / 1000
	}

	lValues := []int{1, 2, 4, 8, 16, 32}
	errs := make([]float64, len(lValues))
	for i, l := range lValues {
		m, err := mesh.Uniform(F, l, F.FromFloat64(0), F.FromFloat64(1))
		require.NoError(t, err)
		sp, err := Solve(F, k, m, negOne, zero, zero, pFn, qFn, fFn)
		require.NoError(t, err)

		got := func(x float64) float64 { return sp.Value(F.FromFloat64(x)).Float64() }
		errs[i] = sampleMaxError(got, exact, xs)
	}

	// Errors should shrink monotonically as the mesh is refined.
	for i := 1; i < len(errs); i++ {
		assert.LessOrEqual(t, errs[i], errs[i-1]*1.01, "l=%d error did not decrease", lValues[i])
	}

	// The observed order at the finest refinement pair should have moved
	// well toward 2k=4, not stayed near the low order a coarse mesh shows.
	finalOrder := order(errs[len(errs)-1], errs[len(errs)-2])
	assert.True(t, finalOrder > 3.0 && finalOrder < 5.0,
		"expected experimental order near 2k=4 at the finest refinement, got %v", finalOrder)
	assert.False(t, floats.EqualWithinAbsOrRel(errs[0], errs[len(errs)-1], 1e-6, 1e-6),
		"refinement from l=%d to l=%d should materially reduce the error", lValues[0], lValues[len(lValues)-1])
}

// S3: reaction-diffusion on a Shishkin mesh (ε=1e-24) measured against a
// 7×-refined reference, at k=2; experimental order tends toward ≈4.
func TestScenarioS3ShishkinReactionOrder(t *testing.T) {
	const k = 2
	F := bigfloat.New(30)
	eps := F.FromFloat64(1e-24)
	zero := F.Zero()
	q0 := F.FromFloat64(0.25)
	q1 := F.FromFloat64(0.25)
	sigma0 := F.FromFloat64(4)
	sigma1 := F.FromFloat64(4)
	gamma := F.FromFloat64(2)

	qFn := func(xs field.Scalar) field.Scalar {
		return xs.Cos().Add(xs.Pow(2)).Add(F.One())
	}
	fFn := func(xs field.Scalar) field.Scalar {
		return xs.Pow(4).Mul(xs.Sqrt()).Add(xs.Sin())
	}
	pFn := constFn(F, 0)

	lValues := []int{8, 16, 32, 64}
	const refineFactor = 7
	xs := []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}

	solveOn := func(l int) (func(float64) float64, error) {
		m, err := mesh.ShishkinReaction(F, l, F.FromFloat64(0), F.FromFloat64(1), q0, q1, sigma0, sigma1, gamma, eps)
		if err != nil {
			return nil, err
		}
		sp, err := Solve(F, k, m, eps, zero, zero, pFn, qFn, fFn)
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return sp.Value(F.FromFloat64(x)).Float64() }, nil
	}

	reference, err := solveOn(lValues[len(lValues)-1] * refineFactor)
	require.NoError(t, err)

	errsByL := make([]float64, len(lValues))
	for i, l := range lValues {
		got, err := solveOn(l)
		require.NoError(t, err)
		errsByL[i] = sampleMaxError(got, reference, xs)
	}

	finalOrder := order(errsByL[len(errsByL)-1], errsByL[len(errsByL)-2])
	assert.True(t, finalOrder > 2.0 && finalOrder < 6.0,
		"expected experimental order to trend toward ~4 on the Shishkin reaction mesh, got %v", finalOrder)
}

// S4: convection-dominated problem on a Bakhvalov mesh (ε=1e-24) measured
// against a 7×-refined reference; experimental order α≈k+1.
func TestScenarioS4BakhvalovConvectionOrder(t *testing.T) {
	const k = 2
	F := bigfloat.New(30)
	eps := F.FromFloat64(1e-24)
	zero := F.Zero()
	q := F.FromFloat64(0.5)
	sigma := F.FromFloat64(1)
	beta := eps
	pFn := constFn(F, 1)
	qFn := constFn(F, 2)
	fFn := func(xs field.Scalar) field.Scalar { return xs.Sub(F.One()).Exp() }

	lValues := []int{8, 16, 32, 64}
	const refineFactor = 7
	xs := []float64{0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99}

	solveOn := func(l int) (func(float64) float64, error) {
		m, err := mesh.Bakhvalov(F, l, F.FromFloat64(0), F.FromFloat64(1), q, sigma, beta, eps)
		if err != nil {
			return nil, err
		}
		sp, err := Solve(F, k, m, eps, zero, zero, pFn, qFn, fFn)
		if err != nil {
			return nil, err
		}
		return func(x float64) float64 { return sp.Value(F.FromFloat64(x)).Float64() }, nil
	}

	reference, err := solveOn(lValues[len(lValues)-1] * refineFactor)
	require.NoError(t, err)

	errsByL := make([]float64, len(lValues))
	for i, l := range lValues {
		got, err := solveOn(l)
		require.NoError(t, err)
		errsByL[i] = sampleMaxError(got, reference, xs)
	}

	finalOrder := order(errsByL[len(errsByL)-1], errsByL[len(errsByL)-2])
	assert.True(t, finalOrder > float64(k)-0.5 && finalOrder < float64(k)+2.5,
		"expected experimental order near k+1=%d on the Bakhvalov convection mesh, got %v", k+1, finalOrder)
}
