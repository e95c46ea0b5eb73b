// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

// floorToInt converts a field.Scalar known to hold a small non-negative
// integer value (e.g. an interval count produced by Floor) to an int.
func floorToInt(s field.Scalar) int {
	return int(math.Round(s.Floor().Float64()))
}

func validateLayerParams(op string, l int, q, sigma, beta, eps field.Scalar) error {
	if l < 2 {
		return &errs.InvalidArgument{Op: op, Reason: "l must be >= 2 to place any layer nodes"}
	}
	zero := eps.Field().Zero()
	one := eps.Field().One()
	if !q.Greater(zero) || !q.Less(one) {
		return &errs.InvalidArgument{Op: op, Reason: "q must be in (0,1)"}
	}
	if !sigma.Greater(zero) {
		return &errs.InvalidArgument{Op: op, Reason: "sigma must be > 0"}
	}
	if !beta.Greater(zero) {
		return &errs.InvalidArgument{Op: op, Reason: "beta/gamma must be > 0"}
	}
	if !eps.Greater(zero) {
		return &errs.InvalidArgument{Op: op, Reason: "eps must be > 0"}
	}
	return nil
}

// Shishkin builds the convection-diffusion Shishkin mesh of spec.md
// §4.4: qL=floor(q·l) intervals uniformly covering the boundary layer
// [s, s+τ(t−s)], and l−qL intervals uniformly covering the remainder,
// where τ = σ·ε/β·log(l) clamped to at most q.
func Shishkin(F field.Field, l int, s, t, q, sigma, beta, eps field.Scalar) (Mesh, error) {
	const op = "mesh.Shishkin"
	if err := validateBounds(op, l, s, t); err != nil {
		return Mesh{}, err
	}
	if err := validateLayerParams(op, l, q, sigma, beta, eps); err != nil {
		return Mesh{}, err
	}

	qL := floorToInt(q.Mul(F.FromInt64(int64(l))))
	tau := sigma.Mul(eps).Quo(beta).Mul(F.FromInt64(int64(l)).Log())
	if tau.Greater(q) {
		tau = q
	}

	width := t.Sub(s)
	transition := s.Add(tau.Mul(width))

	return stitchTwoPieces(F, s, transition, t, qL, l-qL)
}

// ShishkinReaction builds the reaction-diffusion Shishkin mesh of
// spec.md §4.4: three uniform pieces over [s, s+τ₀(t−s)], the interior,
// and [t−τ₁(t−s), t], with q_iL=floor(q_i·l) and τ_i=σ_i·ε/γ·log(l)
// clamped to at most q_i.
func ShishkinReaction(F field.Field, l int, s, t, q0, q1, sigma0, sigma1, gamma, eps field.Scalar) (Mesh, error) {
	const op = "mesh.ShishkinReaction"
	if err := validateBounds(op, l, s, t); err != nil {
		return Mesh{}, err
	}
	if err := validateLayerParams(op, l, q0, sigma0, gamma, eps); err != nil {
		return Mesh{}, err
	}
	if err := validateLayerParams(op, l, q1, sigma1, gamma, eps); err != nil {
		return Mesh{}, err
	}

	lf := F.FromInt64(int64(l))
	q0L := floorToInt(q0.Mul(lf))
	q1L := floorToInt(q1.Mul(lf))
	if q0L+q1L >= l {
		return Mesh{}, &errs.InvalidArgument{Op: op, Reason: "q0L+q1L must leave at least one interior interval"}
	}

	tau0 := sigma0.Mul(eps).Quo(gamma).Mul(lf.Log())
	if tau0.Greater(q0) {
		tau0 = q0
	}
	tau1 := sigma1.Mul(eps).Quo(gamma).Mul(lf.Log())
	if tau1.Greater(q1) {
		tau1 = q1
	}

	width := t.Sub(s)
	left := s.Add(tau0.Mul(width))
	right := t.Sub(tau1.Mul(width))

	xi := make([]field.Scalar, 0, l+1)
	leftPiece := uniformPiece(F, q0L, s, left)
	xi = append(xi, leftPiece.xi...)

	midL := l - q0L - q1L
	midPiece := uniformPiece(F, midL, left, right)
	xi = append(xi, midPiece.xi[1:]...)

	rightPiece := uniformPiece(F, q1L, right, t)
	xi = append(xi, rightPiece.xi[1:]...)

	return newFromKnots(xi), nil
}

// stitchTwoPieces concatenates a qL-interval uniform piece over [s,mid]
// with an (l-qL)-interval uniform piece over [mid,t] into one Mesh.
func stitchTwoPieces(F field.Field, s, mid, t field.Scalar, qL, rest int) (Mesh, error) {
	left := uniformPiece(F, qL, s, mid)
	right := uniformPiece(F, rest, mid, t)
	xi := make([]field.Scalar, 0, qL+rest+1)
	xi = append(xi, left.xi...)
	xi = append(xi, right.xi[1:]...)
	return newFromKnots(xi), nil
}
