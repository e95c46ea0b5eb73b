// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigfloat is the one reference realization of field.Field used by
// this module's own tests. The spec treats the scalar field F as an
// external, already-supplied arbitrary-precision real facility and puts its
// arithmetic out of scope; a Go module still needs a concrete type to
// compile and test against. math/big.Float is the standard library's
// arbitrary-precision binary float, the closest stdlib analogue to the
// spec's arbitrary-precision decimal real, so it is used here for the four
// field operations (+, −, ×, ÷) and for sqrt; the elementary transcendental
// functions (exp, log, sin, cos, sinh, cosh) are computed by round-tripping
// through float64 at the field's working precision, since math/big has no
// native implementation of them and none of the retrieved example repos
// carries one (see DESIGN.md). No other package in this module imports
// bigfloat directly; they are all written against field.Scalar/field.Field
// so a higher-fidelity F can be substituted later.
package bigfloat

import (
	"math"
	"math/big"

	"github.com/numgo/bezcol/errs"
	"github.com/numgo/bezcol/field"
)

const log2Of10 = 3.321928094887362

// guardBits pads the working precision beyond the nominal decimal digits
// for the arithmetic operations. It does not help the transcendental
// functions, which round-trip through float64 and so carry only float64
// accuracy.
const guardBits = 64

// Field is a field.Field backed by math/big.Float.
type Field struct {
	digits int
	bits   uint
}

var _ field.Field = (*Field)(nil)

// New returns a Field with the given working precision, expressed as a
// number of decimal digits (spec.md §3 says 45–100 is typical).
func New(digits int) *Field {
	if digits <= 0 {
		panic("bigfloat: precision must be positive")
	}
	bits := uint(float64(digits)*log2Of10) + guardBits
	return &Field{digits: digits, bits: bits}
}

func (f *Field) Precision() int { return f.digits }

func (f *Field) Clone() field.Field {
	return &Field{digits: f.digits, bits: f.bits}
}

func (f *Field) newBig(v *big.Float) *Scalar {
	v.SetPrec(f.bits)
	return &Scalar{v: v, f: f}
}

func (f *Field) Zero() field.Scalar { return f.newBig(new(big.Float)) }
func (f *Field) One() field.Scalar  { return f.newBig(new(big.Float).SetInt64(1)) }

func (f *Field) E() field.Scalar {
	return f.newBig(new(big.Float).SetFloat64(math.E))
}

func (f *Field) FromInt64(n int64) field.Scalar {
	return f.newBig(new(big.Float).SetInt64(n))
}

func (f *Field) FromFloat64(x float64) field.Scalar {
	return f.newBig(new(big.Float).SetFloat64(x))
}

// Scalar is a field.Scalar backed by a math/big.Float.
type Scalar struct {
	v *big.Float
	f *Field
}

var _ field.Scalar = (*Scalar)(nil)

func (s *Scalar) Field() field.Field { return s.f }
func (s *Scalar) Float64() float64   { f, _ := s.v.Float64(); return f }

func (s *Scalar) sameField(o field.Scalar) *Scalar {
	other, ok := o.(*Scalar)
	if !ok || other.f != s.f {
		panic(errs.ErrPrecisionMismatch)
	}
	return other
}

func (s *Scalar) Add(o field.Scalar) field.Scalar {
	other := s.sameField(o)
	return s.f.newBig(new(big.Float).Add(s.v, other.v))
}

func (s *Scalar) Sub(o field.Scalar) field.Scalar {
	other := s.sameField(o)
	return s.f.newBig(new(big.Float).Sub(s.v, other.v))
}

func (s *Scalar) Mul(o field.Scalar) field.Scalar {
	other := s.sameField(o)
	return s.f.newBig(new(big.Float).Mul(s.v, other.v))
}

func (s *Scalar) Quo(o field.Scalar) field.Scalar {
	other := s.sameField(o)
	return s.f.newBig(new(big.Float).Quo(s.v, other.v))
}

func (s *Scalar) Recip() field.Scalar {
	return s.f.newBig(new(big.Float).Quo(big.NewFloat(1), s.v))
}

func (s *Scalar) Neg() field.Scalar {
	return s.f.newBig(new(big.Float).Neg(s.v))
}

func (s *Scalar) Abs() field.Scalar {
	return s.f.newBig(new(big.Float).Abs(s.v))
}

func (s *Scalar) Sqrt() field.Scalar {
	return s.f.newBig(new(big.Float).Sqrt(s.v))
}

func (s *Scalar) Pow(n int) field.Scalar {
	if n == 0 {
		return s.f.One()
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := new(big.Float).SetPrec(s.f.bits).SetInt64(1)
	base := new(big.Float).Copy(s.v)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	if neg {
		result.Quo(big.NewFloat(1).SetPrec(s.f.bits), result)
	}
	return s.f.newBig(result)
}

// viaFloat64 round-trips through float64 to evaluate a transcendental
// function not natively supported by math/big.Float.
func (s *Scalar) viaFloat64(fn func(float64) float64) field.Scalar {
	x, _ := s.v.Float64()
	return s.f.newBig(new(big.Float).SetFloat64(fn(x)))
}

func (s *Scalar) Exp() field.Scalar  { return s.viaFloat64(math.Exp) }
func (s *Scalar) Log() field.Scalar  { return s.viaFloat64(math.Log) }
func (s *Scalar) Sin() field.Scalar  { return s.viaFloat64(math.Sin) }
func (s *Scalar) Cos() field.Scalar  { return s.viaFloat64(math.Cos) }
func (s *Scalar) Sinh() field.Scalar { return s.viaFloat64(math.Sinh) }
func (s *Scalar) Cosh() field.Scalar { return s.viaFloat64(math.Cosh) }

func (s *Scalar) Floor() field.Scalar {
	return s.f.newBig(func() *big.Float {
		fl, _ := s.v.Float64()
		return new(big.Float).SetFloat64(math.Floor(fl))
	}())
}

func (s *Scalar) NextAfter(to field.Scalar) field.Scalar {
	other := s.sameField(to)
	cmp := s.v.Cmp(other.v)
	if cmp == 0 {
		return s.f.newBig(new(big.Float).Copy(s.v))
	}
	// Step by one ULP at the field's working precision in the direction of to.
	ulp := new(big.Float).SetPrec(s.f.bits).SetMantExp(big.NewFloat(1).SetPrec(s.f.bits), s.v.MantExp(nil)-int(s.f.bits))
	if cmp < 0 {
		return s.f.newBig(new(big.Float).Add(s.v, ulp))
	}
	return s.f.newBig(new(big.Float).Sub(s.v, ulp))
}

func (s *Scalar) Less(o field.Scalar) bool {
	other := s.sameField(o)
	return s.v.Cmp(other.v) < 0
}

func (s *Scalar) Greater(o field.Scalar) bool {
	other := s.sameField(o)
	return s.v.Cmp(other.v) > 0
}

func (s *Scalar) Equal(o field.Scalar) bool {
	other := s.sameField(o)
	return s.v.Cmp(other.v) == 0
}

func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}
