// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bezier implements the Bernstein-Bézier segment of spec.md §4.5:
// a degree-n polynomial on [s,t] stored by its n+1 control ordinates,
// evaluated and differentiated by de Casteljau's algorithm.
//
// Grounded on gonum's interp.PiecewiseCubic (interp/cubic.go), which
// stores one segment's coefficients and exposes a Predict/
// PredictDerivative pair; this package generalizes that fixed-cubic-basis
// shape to an arbitrary-degree Bernstein basis and to field.Scalar
// arithmetic, and replaces PiecewiseCubic's closed-form cubic derivative
// with de Casteljau's reduction, per spec.md §4.5 and Design Notes (ν=1,2
// must stay branch-explicit hot paths; ν≥3 falls back to the general
// binomial-sum formula and is not exercised by the collocation assembler
// itself).
package bezier

import (
	"github.com/numgo/bezcol/combin"
	"github.com/numgo/bezcol/field"
)

// Segment is a single Bézier polynomial segment g_i(x) = Σ_j b_j·B_j^n(μ),
// μ=(x−s)/(t−s), on the interval [s,t].
type Segment struct {
	F    field.Field
	s, t field.Scalar
	b    []field.Scalar // control ordinates b_0..b_n

	delta      field.Scalar // t - s
	delta2     field.Scalar // (t-s)^2
	sOverDelta field.Scalar // s / (t-s), kept for parity with the source's precomputed fields; unused by Value/Derivative directly
}

// NewSegment builds a Segment of degree n=len(b)-1 over [s,t]. t must be
// strictly greater than s.
func NewSegment(F field.Field, s, t field.Scalar, b []field.Scalar) Segment {
	if !t.Greater(s) {
		panic("bezier: segment interval must have t > s")
	}
	ordinates := make([]field.Scalar, len(b))
	copy(ordinates, b)
	delta := t.Sub(s)
	return Segment{
		F:          F,
		s:          s,
		t:          t,
		b:          ordinates,
		delta:      delta,
		delta2:     delta.Mul(delta),
		sOverDelta: s.Quo(delta),
	}
}

// Degree returns n, the segment's polynomial degree.
func (seg Segment) Degree() int { return len(seg.b) - 1 }

// Interval returns the segment's domain endpoints.
func (seg Segment) Interval() (s, t field.Scalar) { return seg.s, seg.t }

// Ordinates returns a clone of the segment's Bézier control ordinates.
func (seg Segment) Ordinates() []field.Scalar {
	out := make([]field.Scalar, len(seg.b))
	copy(out, seg.b)
	return out
}

func (seg Segment) mu(x field.Scalar) field.Scalar {
	return x.Sub(seg.s).Quo(seg.delta)
}

// reduce runs r de Casteljau convex-combination steps starting from the
// control ordinates and returns the resulting row of n+1-r values,
// row[j] = b_j^{(r)} in spec.md §4.5 notation. It is run iteratively
// (never recursively) per spec.md §4.5's Design Notes, to keep the cost
// O(n^2) scalar operations without recursion-depth concerns.
func (seg Segment) reduce(x field.Scalar, r int) []field.Scalar {
	mu := seg.mu(x)
	one := seg.F.One()
	oneMinusMu := one.Sub(mu)

	row := make([]field.Scalar, len(seg.b))
	copy(row, seg.b)
	for step := 1; step <= r; step++ {
		n := len(seg.b) - step
		for i := 0; i < n; i++ {
			row[i] = mu.Mul(row[i+1]).Add(oneMinusMu.Mul(row[i]))
		}
	}
	return row[:len(seg.b)-r]
}

// Value evaluates g_i(x) via de Casteljau's algorithm.
func (seg Segment) Value(x field.Scalar) field.Scalar {
	return seg.reduce(x, seg.Degree())[0]
}

// Derivative returns the ν-th derivative of g_i at x. ν=1 and ν=2 are
// branch-explicit hot paths per spec.md Design Notes; ν≥3 uses the
// general binomial-sum formula and ν=0 is Value itself.
func (seg Segment) Derivative(x field.Scalar, nu int) field.Scalar {
	n := seg.Degree()
	if nu < 0 {
		panic("bezier: derivative order must be >= 0")
	}
	if nu > n {
		return seg.F.Zero()
	}
	switch nu {
	case 0:
		return seg.Value(x)
	case 1:
		row := seg.reduce(x, n-1) // [b_0^(n-1), b_1^(n-1)]
		nf := seg.F.FromInt64(int64(n))
		return nf.Quo(seg.delta).Mul(row[1].Sub(row[0]))
	case 2:
		row := seg.reduce(x, n-2) // [b_0^(n-2), b_1^(n-2), b_2^(n-2)]
		nf := seg.F.FromInt64(int64(n))
		nm1 := seg.F.FromInt64(int64(n - 1))
		two := seg.F.FromInt64(2)
		coeff := nf.Mul(nm1).Quo(seg.delta2)
		return coeff.Mul(row[0].Sub(two.Mul(row[1])).Add(row[2]))
	default:
		return seg.generalDerivative(x, nu)
	}
}

// generalDerivative implements the ν≥3 case of spec.md §4.5:
//
//	(n!/(n−ν)!) / Δ^ν · Σ_{j=0..ν} (−1)^{ν−j}·C(ν,j)·b_j^{(n−ν)}
func (seg Segment) generalDerivative(x field.Scalar, nu int) field.Scalar {
	n := seg.Degree()
	row := seg.reduce(x, n-nu) // ν+1 entries: b_0^(n-ν) .. b_ν^(n-ν)

	fallingFactorial := seg.F.One()
	for i := 0; i < nu; i++ {
		fallingFactorial = fallingFactorial.Mul(seg.F.FromInt64(int64(n - i)))
	}
	deltaPowInv := seg.delta.Pow(nu).Recip()
	coeff := fallingFactorial.Mul(deltaPowInv)

	binom := combin.ScalarRow(seg.F, nu)
	sum := seg.F.Zero()
	for j := 0; j <= nu; j++ {
		term := binom[j].Mul(row[j])
		if (nu-j)%2 != 0 {
			term = term.Neg()
		}
		sum = sum.Add(term)
	}
	return coeff.Mul(sum)
}
