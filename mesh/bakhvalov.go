// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/internal/trace"
)

// maxBakhvalovIterations bounds the fixed-point search for τ so a
// pathological parameter choice cannot hang; spec.md §4.4 only specifies
// "iterate until two successive τ values coincide in F", with no
// explicit cap, but an unconditional loop is not acceptable in a
// library. 100 sweeps comfortably exceeds what the fixed point in
// practice needs even at 100-digit precision.
const maxBakhvalovIterations = 100

// Bakhvalov builds the graded Bakhvalov mesh of spec.md §4.4. If
// σ·ε ≥ β·q the boundary-layer generator degenerates and the mesh is
// global uniform with τ=0; otherwise τ is found by fixed-point iteration
// of τ = q − c·(1−τ_prev)/(1−χ(τ_prev)), c=σ·ε/β, χ(r)=−c·log((q−r)/q),
// and the knots are placed by the generating function χ inside the
// layer and uniformly outside it.
func Bakhvalov(F field.Field, l int, s, t, q, sigma, beta, eps field.Scalar) (Mesh, error) {
	const op = "mesh.Bakhvalov"
	if err := validateBounds(op, l, s, t); err != nil {
		return Mesh{}, err
	}
	if err := validateLayerParams(op, l, q, sigma, beta, eps); err != nil {
		return Mesh{}, err
	}

	c := sigma.Mul(eps).Quo(beta)
	if !sigma.Mul(eps).Less(beta.Mul(q)) {
		// σ·ε ≥ β·q: the generator degenerates.
		return uniformPiece(F, l, s, t), nil
	}

	chi := func(r field.Scalar) field.Scalar {
		return c.Neg().Mul(q.Sub(r).Quo(q).Log())
	}

	tau := F.Zero()
	for iter := 0; ; iter++ {
		if iter >= maxBakhvalovIterations {
			return Mesh{}, &errs.InvalidArgument{Op: op, Reason: "Bakhvalov transition point did not converge"}
		}
		chiPrev := chi(tau)
		one := F.One()
		tauNext := q.Sub(c.Mul(one.Sub(tau)).Quo(one.Sub(chiPrev)))
		trace.Log.Debug().Int("iteration", iter).Float64("tau", tauNext.Float64()).Msg("bakhvalov fixed point")
		if tauNext.Sub(tau).IsZero() {
			tau = tauNext
			break
		}
		tau = tauNext
	}

	lf := F.FromInt64(int64(l))
	width := t.Sub(s)
	xi := make([]field.Scalar, l+1)
	xi[0] = s

	iStar := l
	for i := 1; i <= l; i++ {
		r := F.FromInt64(int64(i)).Quo(lf)
		if !r.Less(tau) {
			iStar = i
			break
		}
		xi[i] = s.Add(chi(r).Mul(width))
	}

	if iStar <= l {
		r := F.FromInt64(int64(iStar)).Quo(lf)
		slope := c.Quo(q.Sub(tau))
		lambda := chi(tau).Add(slope.Mul(r.Sub(tau)))
		xi[iStar] = s.Add(lambda.Mul(width))

		rest := l - iStar
		if rest > 0 {
			step := t.Sub(xi[iStar]).Quo(F.FromInt64(int64(rest)))
			for i := iStar + 1; i < l; i++ {
				xi[i] = xi[i-1].Add(step)
			}
		}
	}
	xi[l] = t

	return newFromKnots(xi), nil
}
