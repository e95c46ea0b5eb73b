// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field declares the scalar-field contract the rest of this module
// is written against. It does not implement arbitrary-precision arithmetic
// itself: that facility is assumed external (see package field/bigfloat for
// the one reference realization used by this module's own tests).
package field

// Scalar is a single immutable value drawn from a Field. Every method
// returns a new Scalar; Scalar values are never mutated in place.
//
// Scalars produced by two different Field instances must never be combined;
// doing so is undefined behavior at the Field level (see Field.Clone) and
// implementations must panic with ErrPrecisionMismatch when they detect it.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Quo(Scalar) Scalar
	Recip() Scalar
	Neg() Scalar
	Abs() Scalar
	Sqrt() Scalar
	Pow(n int) Scalar

	Exp() Scalar
	Log() Scalar
	Sin() Scalar
	Cos() Scalar
	Sinh() Scalar
	Cosh() Scalar
	Floor() Scalar

	// NextAfter returns the Scalar nearest to the receiver in the direction
	// of to. Used by the tridiagonal eigensolver's negligibility test.
	NextAfter(to Scalar) Scalar

	Less(Scalar) bool
	Greater(Scalar) bool
	Equal(Scalar) bool
	IsZero() bool

	// Field returns the Field that produced this Scalar. Two Scalars may be
	// combined only if their Field pointers are identical.
	Field() Field

	// Float64 returns a float64 approximation of the receiver. It exists for
	// logging, diagnostics, and interop with float64-only packages such as
	// gonum.org/v1/gonum/mat; it must never be used inside an algorithm to
	// decide control flow that the spec requires to run in F-native
	// arithmetic (e.g. the eigensolver's negligibility test).
	Float64() float64
}

// Field is an ordered field of arbitrary-precision real numbers together
// with the elementary functions of spec.md §6. Precision is fixed at
// construction and inherited by every Scalar the Field produces.
type Field interface {
	// Precision returns the number of decimal digits of working precision.
	Precision() int

	Zero() Scalar
	One() Scalar
	E() Scalar

	FromInt64(int64) Scalar
	FromFloat64(float64) Scalar

	// Clone returns a fresh Field at the same precision with no shared
	// mutable state with the receiver. This is the Go realization of the
	// source's "newInstance": every constructor that allocates Scalar
	// values takes an explicit Field argument, so there is never a
	// process-wide Field singleton.
	Clone() Field
}
